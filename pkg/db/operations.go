package db

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dtnitsch/seo-copywriter/models"
)

// ErrNotFound is returned when no analysis matches the lookup.
var ErrNotFound = errors.New("analysis not found")

const reportColumns = `
	analysis_id, content_hash, product_name, source, description,
	keywords, meta_description, readability, readability_level,
	language, language_confidence, word_count, char_count, sentence_count, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

// InsertReport stores a report and returns its analysis_id. The report's ID
// is set on success.
func (db *DB) InsertReport(r *models.Report) (int64, error) {
	keywordsJSON, err := json.Marshal(r.Keywords)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal keywords: %w", err)
	}

	createdAt := r.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	result, err := db.Exec(`
		INSERT INTO analyses (
			content_hash, product_name, source, description,
			keywords, meta_description, readability, readability_level,
			language, language_confidence, word_count, char_count, sentence_count, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, r.ContentHash, r.ProductName, string(r.Source), r.Description,
		string(keywordsJSON), r.MetaDescription, r.Readability, r.ReadabilityLevel,
		r.Language, r.LanguageConfidence, r.WordCount, r.CharCount, r.SentenceCount, createdAt.UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to insert analysis: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get analysis ID: %w", err)
	}
	r.ID = id
	return id, nil
}

// GetReport loads one analysis by ID.
func (db *DB) GetReport(id int64) (*models.Report, error) {
	row := db.QueryRow("SELECT "+reportColumns+" FROM analyses WHERE analysis_id = ?", id)
	report, err := scanReport(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get analysis %d: %w", id, err)
	}
	return report, nil
}

// FindByHash returns the most recent analysis of identical text.
func (db *DB) FindByHash(hash string) (*models.Report, error) {
	row := db.QueryRow("SELECT "+reportColumns+` FROM analyses
		WHERE content_hash = ?
		ORDER BY created_at DESC, analysis_id DESC
		LIMIT 1`, hash)
	report, err := scanReport(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find analysis by hash: %w", err)
	}
	return report, nil
}

// ListReports returns the newest analyses first. A limit of 0 or less
// returns all of them.
func (db *DB) ListReports(limit int) ([]*models.Report, error) {
	query := "SELECT " + reportColumns + " FROM analyses ORDER BY created_at DESC, analysis_id DESC"
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var reports []*models.Report
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate analyses: %w", err)
	}
	return reports, nil
}

// DeleteReport removes one analysis.
func (db *DB) DeleteReport(id int64) error {
	result, err := db.Exec("DELETE FROM analyses WHERE analysis_id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete analysis %d: %w", id, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func scanReport(row rowScanner) (*models.Report, error) {
	var (
		r            models.Report
		productName  sql.NullString
		language     sql.NullString
		source       string
		keywordsJSON string
	)
	err := row.Scan(
		&r.ID, &r.ContentHash, &productName, &source, &r.Description,
		&keywordsJSON, &r.MetaDescription, &r.Readability, &r.ReadabilityLevel,
		&language, &r.LanguageConfidence, &r.WordCount, &r.CharCount, &r.SentenceCount, &r.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(keywordsJSON), &r.Keywords); err != nil {
		return nil, fmt.Errorf("failed to decode keywords: %w", err)
	}
	r.ProductName = productName.String
	r.Language = language.String
	r.Source = models.Source(source)
	return &r, nil
}

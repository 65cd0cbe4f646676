package db

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/dtnitsch/seo-copywriter/models"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	// Use in-memory database for tests
	database := &DB{path: ":memory:"}
	var err error
	database.DB, err = openDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := database.InitSchema(); err != nil {
		t.Fatalf("failed to initialize schema: %v", err)
	}

	return database
}

func sampleReport(hash string, createdAt time.Time) *models.Report {
	return &models.Report{
		ContentHash:        hash,
		ProductName:        "Sony Wireless Headphones",
		Source:             models.SourceGenerated,
		Description:        "Great sound. Long battery life.",
		Keywords:           []string{"long battery life", "great sound"},
		MetaDescription:    "Great sound. Long battery life.",
		Readability:        72.5,
		ReadabilityLevel:   "fairly easy",
		Language:           "en",
		LanguageConfidence: 0.93,
		WordCount:          5,
		CharCount:          31,
		SentenceCount:      2,
		CreatedAt:          createdAt,
	}
}

func TestInsertAndGetReport(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	created := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	report := sampleReport("hash-1", created)

	id, err := db.InsertReport(report)
	if err != nil {
		t.Fatalf("InsertReport() error = %v", err)
	}
	if id == 0 {
		t.Fatal("InsertReport() returned 0 ID")
	}
	if report.ID != id {
		t.Errorf("report.ID = %d, want %d", report.ID, id)
	}

	got, err := db.GetReport(id)
	if err != nil {
		t.Fatalf("GetReport() error = %v", err)
	}

	if !reflect.DeepEqual(got.Keywords, report.Keywords) {
		t.Errorf("Keywords = %v, want %v", got.Keywords, report.Keywords)
	}
	if got.ProductName != report.ProductName {
		t.Errorf("ProductName = %q, want %q", got.ProductName, report.ProductName)
	}
	if got.Source != models.SourceGenerated {
		t.Errorf("Source = %q, want %q", got.Source, models.SourceGenerated)
	}
	if got.Readability != 72.5 {
		t.Errorf("Readability = %v, want 72.5", got.Readability)
	}
	if got.Language != "en" || got.LanguageConfidence != 0.93 {
		t.Errorf("Language = %q (%v), want en (0.93)", got.Language, got.LanguageConfidence)
	}
	if got.WordCount != 5 || got.CharCount != 31 || got.SentenceCount != 2 {
		t.Errorf("counts = %d/%d/%d, want 5/31/2", got.WordCount, got.CharCount, got.SentenceCount)
	}
	if !got.CreatedAt.Equal(created) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, created)
	}
}

func TestGetReport_NotFound(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	_, err := db.GetReport(999)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("GetReport() error = %v, want ErrNotFound", err)
	}
}

func TestListReports(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		if _, err := db.InsertReport(sampleReport("hash", base.Add(time.Duration(i)*time.Hour))); err != nil {
			t.Fatalf("InsertReport() error = %v", err)
		}
	}

	all, err := db.ListReports(0)
	if err != nil {
		t.Fatalf("ListReports() error = %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("ListReports(0) returned %d reports, want 3", len(all))
	}
	if !all[0].CreatedAt.After(all[1].CreatedAt) {
		t.Error("ListReports() should return newest first")
	}

	limited, err := db.ListReports(2)
	if err != nil {
		t.Fatalf("ListReports(2) error = %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("ListReports(2) returned %d reports, want 2", len(limited))
	}
}

func TestFindByHash(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	older := sampleReport("same", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	newer := sampleReport("same", time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))
	db.InsertReport(older)
	newerID, _ := db.InsertReport(newer)

	got, err := db.FindByHash("same")
	if err != nil {
		t.Fatalf("FindByHash() error = %v", err)
	}
	if got.ID != newerID {
		t.Errorf("FindByHash() ID = %d, want newest %d", got.ID, newerID)
	}

	if _, err := db.FindByHash("other"); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindByHash(other) error = %v, want ErrNotFound", err)
	}
}

func TestDeleteReport(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	id, _ := db.InsertReport(sampleReport("h", time.Now()))

	if err := db.DeleteReport(id); err != nil {
		t.Fatalf("DeleteReport() error = %v", err)
	}
	if _, err := db.GetReport(id); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetReport() after delete error = %v, want ErrNotFound", err)
	}
	if err := db.DeleteReport(id); !errors.Is(err, ErrNotFound) {
		t.Errorf("second DeleteReport() error = %v, want ErrNotFound", err)
	}
}

func TestOpen_CreatesSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if db.Path() != path {
		t.Errorf("Path() = %q, want %q", db.Path(), path)
	}
	db.Close()

	// Reopening an initialized database must not fail
	db, err = Open(path)
	if err != nil {
		t.Fatalf("second Open() error = %v", err)
	}
	db.Close()
}

package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;
PRAGMA temp_store = MEMORY;

-- Analyses: one row per analyzed description
CREATE TABLE IF NOT EXISTS analyses (
    analysis_id INTEGER PRIMARY KEY AUTOINCREMENT,
    content_hash TEXT NOT NULL,
    product_name TEXT,
    source TEXT NOT NULL,
    description TEXT NOT NULL,

    -- Ranked keywords as a JSON array: ["phrase one", "phrase two", ...]
    keywords TEXT NOT NULL,
    meta_description TEXT NOT NULL,

    readability REAL NOT NULL,
    readability_level TEXT NOT NULL,
    language TEXT,
    language_confidence REAL DEFAULT 0,

    word_count INTEGER DEFAULT 0,
    char_count INTEGER DEFAULT 0,
    sentence_count INTEGER DEFAULT 0,

    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_analyses_hash ON analyses(content_hash);
CREATE INDEX IF NOT EXISTS idx_analyses_created ON analyses(created_at);
CREATE INDEX IF NOT EXISTS idx_analyses_product ON analyses(product_name);
`

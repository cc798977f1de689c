package sqlite

import (
	"context"
	"database/sql"

	_ "modernc.org/sqlite"

	"github.com/cognicore/rake/pkg/rake/internalerr"
	"github.com/cognicore/rake/pkg/rake/store"
)

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// OpenSQLite opens a SQLite database with WAL mode enabled.
func OpenSQLite(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS stoplist (
	lang TEXT NOT NULL,
	position INTEGER NOT NULL,
	token TEXT NOT NULL,
	PRIMARY KEY(lang, token)
);

CREATE INDEX IF NOT EXISTS idx_stoplist_lang_position ON stoplist(lang, position);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// UpsertStoplist replaces the stopword set for lang in a single transaction.
func (s *sqliteStore) UpsertStoplist(ctx context.Context, lang string, tokens []string) error {
	key := store.LanguageKey(lang)
	if key == "" {
		return internalerr.ErrInvalidInput
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM stoplist WHERE lang=?`, key); err != nil {
		return err
	}

	if len(tokens) > 0 {
		stmt, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO stoplist (lang, position, token) VALUES (?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()
		for i, tok := range tokens {
			if tok == "" {
				continue
			}
			if _, err := stmt.ExecContext(ctx, key, i, tok); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

// GetStoplist returns the stored list for lang in insertion order.
func (s *sqliteStore) GetStoplist(ctx context.Context, lang string) ([]string, bool, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT token FROM stoplist WHERE lang=? ORDER BY position`, store.LanguageKey(lang))
	if err != nil {
		return nil, false, err
	}
	defer rows.Close()

	var tokens []string
	for rows.Next() {
		var tok string
		if err := rows.Scan(&tok); err != nil {
			return nil, false, err
		}
		tokens = append(tokens, tok)
	}
	if err := rows.Err(); err != nil {
		return nil, false, err
	}
	if len(tokens) == 0 {
		return nil, false, nil
	}
	return tokens, true, nil
}

// DeleteStoplist removes the list for lang.
func (s *sqliteStore) DeleteStoplist(ctx context.Context, lang string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM stoplist WHERE lang=?`, store.LanguageKey(lang))
	return err
}

// Languages returns the stored language codes.
func (s *sqliteStore) Languages(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT lang FROM stoplist ORDER BY lang`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var langs []string
	for rows.Next() {
		var lang string
		if err := rows.Scan(&lang); err != nil {
			return nil, err
		}
		langs = append(langs, lang)
	}
	return langs, rows.Err()
}

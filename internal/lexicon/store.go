// Package lexicon persists transcriptions in a SQLite pronunciation lexicon
// so that results of earlier runs can be looked up and exported.
package lexicon

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"codeberg.org/snonux/wymowa/internal"
)

const schema = `
CREATE TABLE IF NOT EXISTS pronunciations (
	id         TEXT NOT NULL PRIMARY KEY,
	word       TEXT NOT NULL,
	language   TEXT NOT NULL,
	symbols    TEXT NOT NULL,
	ipa        TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL,
	UNIQUE (word, language)
)`

// Entry is one stored pronunciation
type Entry struct {
	Word      string
	Language  string
	Symbols   string // space separated symbolic phone names
	IPA       string
	UpdatedAt time.Time
}

// Store is a SQLite-backed lexicon. It is safe for concurrent use.
type Store struct {
	db *sql.DB
}

// Open opens or creates the lexicon database at path
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open lexicon: %w", err)
	}
	// sqlite serialises writers anyway
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create lexicon schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

// Put inserts an entry or replaces the pronunciation of an existing one
func (s *Store) Put(ctx context.Context, e Entry) error {
	if e.UpdatedAt.IsZero() {
		e.UpdatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO pronunciations (id, word, language, symbols, ipa, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			symbols = excluded.symbols,
			ipa = excluded.ipa,
			updated_at = excluded.updated_at`,
		internal.EntryID(e.Language, e.Word), e.Word, e.Language, e.Symbols, e.IPA, e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to store %q: %w", e.Word, err)
	}
	return nil
}

// Get looks up the pronunciation of word. The boolean is false if the word
// is not in the lexicon.
func (s *Store) Get(ctx context.Context, language, word string) (Entry, bool, error) {
	e := Entry{Word: word, Language: language}

	err := s.db.QueryRowContext(ctx,
		`SELECT symbols, ipa, updated_at FROM pronunciations WHERE id = ?`,
		internal.EntryID(language, word)).Scan(&e.Symbols, &e.IPA, &e.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, fmt.Errorf("failed to look up %q: %w", word, err)
	}
	return e, true, nil
}

// List returns all entries of a language ordered by word
func (s *Store) List(ctx context.Context, language string) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT word, symbols, ipa, updated_at FROM pronunciations WHERE language = ? ORDER BY word`,
		language)
	if err != nil {
		return nil, fmt.Errorf("failed to list lexicon: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		e := Entry{Language: language}
		if err := rows.Scan(&e.Word, &e.Symbols, &e.IPA, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to read lexicon row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Package countstore persists n-gram count tables in SQLite so that corpus
// shards can be counted separately and merged by summation.
package countstore

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/ieee0824/ngramlm/language"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS ngrams (
    n INTEGER NOT NULL,
    w1 TEXT NOT NULL,
    w2 TEXT NOT NULL DEFAULT '',
    w3 TEXT NOT NULL DEFAULT '',
    count INTEGER NOT NULL,
    PRIMARY KEY (n, w1, w2, w3)
);
`

const upsertSQL = `
INSERT INTO ngrams(n, w1, w2, w3, count) VALUES(?,?,?,?,?)
ON CONFLICT(n, w1, w2, w3) DO UPDATE SET count = count + excluded.count`

// Store is a SQLite-backed count table.
type Store struct {
	db *sql.DB
}

// Open opens or creates the store at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Add sums c into the stored counts in a single transaction.
func (s *Store) Add(c *language.Counts) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(upsertSQL)
	if err != nil {
		return fmt.Errorf("prepare upsert: %w", err)
	}
	defer stmt.Close()

	for w, n := range c.Unigrams {
		if _, err := stmt.Exec(1, w, "", "", n); err != nil {
			return fmt.Errorf("upsert unigram %q: %w", w, err)
		}
	}
	for k, n := range c.Bigrams {
		if _, err := stmt.Exec(2, k[0], k[1], "", n); err != nil {
			return fmt.Errorf("upsert bigram %q: %w", k, err)
		}
	}
	for k, n := range c.Trigrams {
		if _, err := stmt.Exec(3, k[0], k[1], k[2], n); err != nil {
			return fmt.Errorf("upsert trigram %q: %w", k, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// Load reads all stored counts.
func (s *Store) Load() (*language.Counts, error) {
	rows, err := s.db.Query(`SELECT n, w1, w2, w3, count FROM ngrams`)
	if err != nil {
		return nil, fmt.Errorf("query ngrams: %w", err)
	}
	defer rows.Close()

	c := language.NewCounts()
	for rows.Next() {
		var (
			n, count   int
			w1, w2, w3 string
		)
		if err := rows.Scan(&n, &w1, &w2, &w3, &count); err != nil {
			return nil, fmt.Errorf("scan ngram: %w", err)
		}
		switch n {
		case 1:
			c.Add([]string{w1}, count)
		case 2:
			c.Add([]string{w1, w2}, count)
		case 3:
			c.Add([]string{w1, w2, w3}, count)
		default:
			return nil, fmt.Errorf("stored n-gram of unsupported order %d", n)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read ngrams: %w", err)
	}
	return c, nil
}

// Len returns the number of distinct stored n-grams of the given order.
func (s *Store) Len(order int) (int, error) {
	row := s.db.QueryRow(`SELECT COUNT(*) FROM ngrams WHERE n = ?`, order)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("scan count: %w", err)
	}
	return count, nil
}

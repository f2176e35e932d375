package analytics

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

// Store provides database operations for page views.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at dbPath, ensures the
// parent directory exists, and creates the schema.
func NewStore(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, errors.Wrap(err, "create analytics dir")
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.Wrap(err, "open analytics db")
	}

	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	db.SetConnMaxLifetime(time.Hour)

	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "configure analytics db")
	}

	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "ensure schema")
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS page_views (
			title TEXT PRIMARY KEY,
			views INTEGER NOT NULL DEFAULT 0,
			last_viewed INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_page_views_views ON page_views(views);
	`)
	return err
}

// RecordView counts one view of title at the given time.
func (s *Store) RecordView(ctx context.Context, title string, at time.Time) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO page_views (title, views, last_viewed) VALUES (?, 1, ?)
		ON CONFLICT(title) DO UPDATE SET
			views = views + 1,
			last_viewed = excluded.last_viewed
	`, title, at.UTC().Unix())
	return err
}

// Views returns the view count of title, zero if it was never viewed.
func (s *Store) Views(ctx context.Context, title string) (int64, error) {
	var views int64
	err := s.db.QueryRowContext(ctx, `SELECT views FROM page_views WHERE title = ?`, title).Scan(&views)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	return views, err
}

// TopPages returns up to limit pages ordered by view count descending, ties
// broken by title.
func (s *Store) TopPages(ctx context.Context, limit int) ([]PageViews, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT title, views, last_viewed FROM page_views
		ORDER BY views DESC, title ASC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pages := []PageViews{}
	for rows.Next() {
		var p PageViews
		var last int64
		if err := rows.Scan(&p.Title, &p.Views, &last); err != nil {
			return nil, err
		}
		p.LastViewed = time.Unix(last, 0).UTC()
		pages = append(pages, p)
	}
	return pages, rows.Err()
}

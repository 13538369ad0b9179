package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"quizdesk/internal/quiz"
)

// Store implements quiz.Repository over a single SQLite file with one table
// per course. All store-level failures are mapped to the quiz package
// sentinels before they leave this package.
type Store struct {
	db *sql.DB
}

func NewStore(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		path = "quizdesk.db"
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, wrapStore(err)
	}

	// Desktop usage is single-user; one connection serializes all statements
	// and each repository call checks it out and returns it.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		`PRAGMA busy_timeout = 5000;`,
		`PRAGMA journal_mode = WAL;`,
		`PRAGMA synchronous = NORMAL;`,
		`PRAGMA foreign_keys = ON;`,
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, wrapStore(err)
		}
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// resolveTable checks the course name against sqlite_master before it is
// interpolated into SQL. Table names cannot be bound as parameters, so only
// names the store itself reports are ever spliced into a statement.
func (s *Store) resolveTable(ctx context.Context, course string) (string, error) {
	var name string
	err := s.db.QueryRowContext(
		ctx,
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ? AND name NOT LIKE 'sqlite_%'`,
		course,
	).Scan(&name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", quiz.ErrUnknownCourse
		}
		return "", wrapStore(err)
	}
	return name, nil
}

func wrapStore(err error) error {
	return fmt.Errorf("%w: %v", quiz.ErrStoreUnavailable, err)
}

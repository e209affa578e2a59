// Package sqlite implements the persistence ports on a local sqlite
// database. Every operation is a single statement (or a tightly scoped
// read-then-write); there are no cross-operation transactions.
package sqlite

import (
	"database/sql"
	_ "embed"
	"errors"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/bigcommunity/taskbot/internal/domain"
)

//go:embed schema.sql
var schema string

// timeLayout is the storage format for timestamps, kept compatible with the
// data written by earlier versions of the bot.
const timeLayout = "2006-01-02 15:04:05"

// Default seed rows. INSERT OR IGNORE keeps reruns from overwriting
// anything a user renamed or added.
var (
	defaultCategories          = []string{"XFCE", "Cinnamon", "GNOME", "Geral"}
	defaultChangelogCategories = []string{"Ashy Terminal", "GNOME", "XFCE", "Cinnamon", "All", "Geral"}
)

// Ensure Store implements the persistence ports.
var (
	_ domain.StoreInitializer    = (*Store)(nil)
	_ domain.TaskRepository      = (*Store)(nil)
	_ domain.CategoryRepository  = (*Store)(nil)
	_ domain.ChangelogRepository = (*Store)(nil)
	_ domain.SettingsRepository  = (*Store)(nil)
)

// Store is the sqlite-backed data store.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the database at path.
// Use ":memory:" for an ephemeral store in tests.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Initialize creates the schema and seeds the default category rows.
// Idempotent: safe to run on every startup.
func (s *Store) Initialize() error {
	if _, err := s.db.Exec(schema); err != nil {
		return err
	}
	for _, name := range defaultCategories {
		if _, err := s.db.Exec("INSERT OR IGNORE INTO categories (name) VALUES (?)", name); err != nil {
			return err
		}
	}
	for _, name := range defaultChangelogCategories {
		if _, err := s.db.Exec("INSERT OR IGNORE INTO changelog_categories (name) VALUES (?)", name); err != nil {
			return err
		}
	}
	return nil
}

// isUniqueViolation reports whether err is a sqlite unique-constraint error.
func isUniqueViolation(err error) bool {
	var serr sqlite3.Error
	return errors.As(err, &serr) && serr.Code == sqlite3.ErrConstraint
}

// formatTime renders a timestamp in the storage format.
func formatTime(t time.Time) string {
	return t.Format(timeLayout)
}

// parseTime parses a stored timestamp. Zero time on empty input.
func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.ParseInLocation(timeLayout, s, time.Local)
}

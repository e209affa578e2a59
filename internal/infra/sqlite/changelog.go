package sqlite

import (
	"database/sql"
	"strings"

	"github.com/bigcommunity/taskbot/internal/domain"
)

// CreateChangelog inserts a new entry. Entries always start unpinned.
func (s *Store) CreateChangelog(e *domain.ChangelogEntry) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO changelogs (category, description, author_id, author_name, created_at, pinned)
		VALUES (?, ?, ?, ?, ?, 0)
	`, e.Category, e.Description, e.AuthorID, e.AuthorName, formatTime(e.Created))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// GetChangelog retrieves an entry by id. Returns nil if not found.
func (s *Store) GetChangelog(id int64) (*domain.ChangelogEntry, error) {
	row := s.db.QueryRow(`
		SELECT id, category, description, author_id, author_name, created_at, pinned
		FROM changelogs WHERE id = ?
	`, id)
	e, err := scanChangelog(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return e, err
}

// ListChangelogs retrieves entries matching the filter: pinned first, then
// newest first.
func (s *Store) ListChangelogs(filter domain.ChangelogFilter) ([]*domain.ChangelogEntry, error) {
	query := `
		SELECT id, category, description, author_id, author_name, created_at, pinned
		FROM changelogs WHERE 1=1`
	var args []any

	if filter.Category != "" {
		query += " AND category = ?"
		args = append(args, filter.Category)
	}
	if filter.Pinned != nil {
		query += " AND pinned = ?"
		args = append(args, boolToInt(*filter.Pinned))
	}

	query += " ORDER BY pinned DESC, created_at DESC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*domain.ChangelogEntry
	for rows.Next() {
		e, err := scanChangelog(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// TogglePin flips the pinned flag. Returns false when the id is absent.
func (s *Store) TogglePin(id int64) (bool, error) {
	var pinned int
	err := s.db.QueryRow("SELECT pinned FROM changelogs WHERE id = ?", id).Scan(&pinned)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	_, err = s.db.Exec("UPDATE changelogs SET pinned = ? WHERE id = ?", boolToInt(pinned == 0), id)
	return err == nil, err
}

// UpdateChangelog applies a partial update. Nil fields are skipped; an
// empty description is a valid value here.
func (s *Store) UpdateChangelog(id int64, u domain.ChangelogUpdate) (bool, error) {
	var sets []string
	var args []any

	if u.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *u.Description)
	}
	if u.Category != nil {
		sets = append(sets, "category = ?")
		args = append(args, *u.Category)
	}
	if len(sets) == 0 {
		return false, domain.ErrNoFieldsToUpdate
	}

	args = append(args, id)
	res, err := s.db.Exec("UPDATE changelogs SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// DeleteChangelog removes an entry.
func (s *Store) DeleteChangelog(id int64) (bool, error) {
	res, err := s.db.Exec("DELETE FROM changelogs WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// ChangelogStats aggregates totals plus per-category and per-author counts.
func (s *Store) ChangelogStats() (*domain.ChangelogStats, error) {
	stats := &domain.ChangelogStats{
		ByCategory: make(map[string]int64),
		ByAuthor:   make(map[string]int64),
	}

	err := s.db.QueryRow(`
		SELECT COUNT(*), COALESCE(SUM(pinned), 0) FROM changelogs
	`).Scan(&stats.Total, &stats.Pinned)
	if err != nil {
		return nil, err
	}

	if err := s.countInto(stats.ByCategory, "SELECT category, COUNT(*) FROM changelogs GROUP BY category"); err != nil {
		return nil, err
	}
	if err := s.countInto(stats.ByAuthor, "SELECT author_name, COUNT(*) FROM changelogs GROUP BY author_name"); err != nil {
		return nil, err
	}
	return stats, nil
}

// CreateChangelogCategory inserts a suggestion category.
func (s *Store) CreateChangelogCategory(name string) error {
	_, err := s.db.Exec("INSERT INTO changelog_categories (name) VALUES (?)", name)
	if err != nil && isUniqueViolation(err) {
		return domain.ErrDuplicateCategory
	}
	return err
}

// ListChangelogCategories retrieves suggestion category names by name.
func (s *Store) ListChangelogCategories() ([]string, error) {
	rows, err := s.db.Query("SELECT name FROM changelog_categories ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (s *Store) countInto(dst map[string]int64, query string) error {
	rows, err := s.db.Query(query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		var n int64
		if err := rows.Scan(&key, &n); err != nil {
			return err
		}
		dst[key] = n
	}
	return rows.Err()
}

func scanChangelog(row rowScanner) (*domain.ChangelogEntry, error) {
	var (
		e       domain.ChangelogEntry
		created string
		pinned  int
	)
	err := row.Scan(&e.ID, &e.Category, &e.Description, &e.AuthorID, &e.AuthorName, &created, &pinned)
	if err != nil {
		return nil, err
	}
	if e.Created, err = parseTime(created); err != nil {
		return nil, err
	}
	e.Pinned = pinned != 0
	return &e, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

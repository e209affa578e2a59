package sqlite

import "github.com/bigcommunity/taskbot/internal/domain"

// CreateCategory inserts a task category. A name collision is an expected outcome
// and surfaces as domain.ErrDuplicateCategory.
func (s *Store) CreateCategory(name string) (int64, error) {
	res, err := s.db.Exec("INSERT INTO categories (name) VALUES (?)", name)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicateCategory
		}
		return 0, err
	}
	return res.LastInsertId()
}

// ListCategories retrieves all task categories ordered by name.
func (s *Store) ListCategories() ([]*domain.Category, error) {
	rows, err := s.db.Query("SELECT id, name FROM categories ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		categories = append(categories, &c)
	}
	return categories, rows.Err()
}

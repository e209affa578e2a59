package sqlite

import (
	"database/sql"
	"strings"
	"time"

	"github.com/bigcommunity/taskbot/internal/domain"
)

const taskColumns = `t.id, t.title, t.description, t.category_id, c.name,
	t.author_id, t.author_name, t.assignee_id, t.assignee_name,
	t.status, t.priority, t.image_id, t.created_at, t.completed_at`

// CreateTask inserts a new task. Status and completion are forced to their
// creation values regardless of what the caller set on t.
func (s *Store) CreateTask(t *domain.Task) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO tasks (title, description, category_id, author_id, author_name,
			assignee_id, assignee_name, priority, image_id, created_at, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 'pendente')
	`, t.Title, t.Description, t.CategoryID, t.AuthorID, t.AuthorName,
		t.AssigneeID, nullableString(t.AssigneeName), string(t.Priority),
		nullableString(t.ImageID), formatTime(t.Created))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// GetTask retrieves a task by id with its joined category name.
// Returns nil if not found.
func (s *Store) GetTask(id int64) (*domain.Task, error) {
	row := s.db.QueryRow(`
		SELECT `+taskColumns+`
		FROM tasks t
		LEFT JOIN categories c ON t.category_id = c.id
		WHERE t.id = ?
	`, id)
	t, err := scanTask(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return t, err
}

// ListTasks retrieves tasks matching the filter, newest first. Filters are
// conjunctive; unset fields impose no constraint.
func (s *Store) ListTasks(filter domain.TaskFilter) ([]*domain.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks t
		LEFT JOIN categories c ON t.category_id = c.id
		WHERE 1=1`
	var args []any

	if filter.CategoryID != nil {
		query += " AND t.category_id = ?"
		args = append(args, *filter.CategoryID)
	}
	if filter.Status != "" {
		query += " AND t.status = ?"
		args = append(args, string(filter.Status))
	}
	if filter.AuthorID != nil {
		query += " AND t.author_id = ?"
		args = append(args, *filter.AuthorID)
	}

	query += " ORDER BY t.id DESC"

	return s.queryTasks(query, args...)
}

// SearchTasks retrieves tasks whose title or description contains term,
// case-insensitively, newest first.
func (s *Store) SearchTasks(term string) ([]*domain.Task, error) {
	pattern := "%" + term + "%"
	return s.queryTasks(`
		SELECT `+taskColumns+`
		FROM tasks t
		LEFT JOIN categories c ON t.category_id = c.id
		WHERE t.title LIKE ? OR t.description LIKE ?
		ORDER BY t.id DESC
	`, pattern, pattern)
}

// UpdateStatus sets the status and rewrites the completion timestamp in the
// same statement. The timestamp column is always written: non-done statuses
// clear it, done stamps it, even when the status itself did not change.
func (s *Store) UpdateStatus(id int64, status domain.Status, completedAt *time.Time) (bool, error) {
	var completed any
	if completedAt != nil {
		completed = formatTime(*completedAt)
	}
	res, err := s.db.Exec(`
		UPDATE tasks SET status = ?, completed_at = ? WHERE id = ?
	`, string(status), completed, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// UpdateTaskFields applies a partial update. Empty fields are skipped, so this
// path cannot clear a title or description to empty; see domain.TaskUpdate.
func (s *Store) UpdateTaskFields(id int64, u domain.TaskUpdate) (bool, error) {
	var sets []string
	var args []any

	if u.Title != "" {
		sets = append(sets, "title = ?")
		args = append(args, u.Title)
	}
	if u.Description != "" {
		sets = append(sets, "description = ?")
		args = append(args, u.Description)
	}
	if u.Priority != "" {
		sets = append(sets, "priority = ?")
		args = append(args, string(u.Priority))
	}
	if len(sets) == 0 {
		return false, domain.ErrNoFieldsToUpdate
	}

	args = append(args, id)
	res, err := s.db.Exec("UPDATE tasks SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// DeleteTask removes a task. Comments cascade via the foreign key.
func (s *Store) DeleteTask(id int64) (bool, error) {
	res, err := s.db.Exec("DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// TaskStats aggregates task counts: totals per status plus pending counts per
// category (categories with no pending tasks are omitted).
func (s *Store) TaskStats() (*domain.TaskStats, error) {
	stats := &domain.TaskStats{}

	err := s.db.QueryRow(`
		SELECT COUNT(*),
			COALESCE(SUM(status = 'pendente'), 0),
			COALESCE(SUM(status = 'em_andamento'), 0),
			COALESCE(SUM(status = 'concluido'), 0)
		FROM tasks
	`).Scan(&stats.Total, &stats.Pending, &stats.InProgress, &stats.Done)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(`
		SELECT c.name, COUNT(*)
		FROM tasks t
		JOIN categories c ON t.category_id = c.id
		WHERE t.status = 'pendente'
		GROUP BY c.name
		ORDER BY c.name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var cc domain.CategoryCount
		if err := rows.Scan(&cc.Name, &cc.Count); err != nil {
			return nil, err
		}
		stats.PendingByCategory = append(stats.PendingByCategory, cc)
	}
	return stats, rows.Err()
}

func (s *Store) queryTasks(query string, args ...any) ([]*domain.Task, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []*domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var (
		t            domain.Task
		description  sql.NullString
		categoryName sql.NullString
		assigneeName sql.NullString
		imageID      sql.NullString
		created      string
		completed    sql.NullString
		status       string
		priority     string
	)
	err := row.Scan(&t.ID, &t.Title, &description, &t.CategoryID, &categoryName,
		&t.AuthorID, &t.AuthorName, &t.AssigneeID, &assigneeName,
		&status, &priority, &imageID, &created, &completed)
	if err != nil {
		return nil, err
	}

	t.Description = description.String
	t.CategoryName = categoryName.String
	t.AssigneeName = assigneeName.String
	t.ImageID = imageID.String
	t.Status = domain.Status(status)
	t.Priority = domain.Priority(priority)

	if t.Created, err = parseTime(created); err != nil {
		return nil, err
	}
	if completed.Valid && completed.String != "" {
		ts, err := parseTime(completed.String)
		if err != nil {
			return nil, err
		}
		t.CompletedAt = &ts
	}
	return &t, nil
}

// nullableString maps "" to NULL so optional columns stay NULL instead of
// accumulating empty strings.
func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

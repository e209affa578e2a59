package sqlite

import "github.com/bigcommunity/taskbot/internal/domain"

// AddComment inserts a comment. The task id is stored as given; a comment
// on a missing task simply never shows up anywhere.
func (s *Store) AddComment(c *domain.Comment) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO comments (task_id, author_id, author_name, body, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, c.TaskID, c.AuthorID, c.AuthorName, c.Text, formatTime(c.Created))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListComments retrieves a task's comments in chronological order.
func (s *Store) ListComments(taskID int64) ([]*domain.Comment, error) {
	rows, err := s.db.Query(`
		SELECT id, task_id, author_id, author_name, body, created_at
		FROM comments
		WHERE task_id = ?
		ORDER BY created_at ASC
	`, taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []*domain.Comment
	for rows.Next() {
		var (
			c       domain.Comment
			created string
		)
		if err := rows.Scan(&c.ID, &c.TaskID, &c.AuthorID, &c.AuthorName, &c.Text, &created); err != nil {
			return nil, err
		}
		if c.Created, err = parseTime(created); err != nil {
			return nil, err
		}
		comments = append(comments, &c)
	}
	return comments, rows.Err()
}

// Package domain contains core business entities and interfaces.
package domain

import "time"

// Task represents a unit of tracked work.
// Fields are ordered to minimize memory padding.
type Task struct {
	Created      time.Time  // Creation time, set once on insert
	CompletedAt  *time.Time // Non-nil iff Status == StatusDone
	CategoryID   *int64     // References Category (nullable; dangling ids allowed)
	AssigneeID   *int64     // Optional assignee (captured but unused by mutations)
	Title        string     // Title (required)
	Description  string     // Description (optional)
	CategoryName string     // Joined category name; empty when the reference dangles
	AuthorName   string     // Display name captured at creation, immutable
	AssigneeName string     // Optional assignee display name
	ImageID      string     // Opaque handle to an externally stored image
	Status       Status     // Current status
	Priority     Priority   // Current priority
	ID           int64      // Assigned on insert, ascending
	AuthorID     int64      // Platform user id captured at creation, immutable
}

// IsAuthor returns true if the given user created this task.
func (t *Task) IsAuthor(userID int64) bool {
	return t.AuthorID == userID
}

// Comment represents a note attached to a task.
type Comment struct {
	Created    time.Time
	AuthorName string
	Text       string
	ID         int64
	TaskID     int64
	AuthorID   int64
}

// Category is a named bucket for tasks. Names are unique and case-sensitive.
// Categories are seeded at first run and cannot be deleted.
type Category struct {
	Name string
	ID   int64
}

// TaskFilter specifies criteria for listing tasks.
// Nil/empty fields mean "no constraint"; set fields combine with AND.
type TaskFilter struct {
	CategoryID *int64
	AuthorID   *int64
	Status     Status
}

// TaskUpdate carries a partial update for UpdateTaskFields.
// An empty string means "not supplied": a title or description cannot be
// cleared to empty through this path. This mirrors the long-standing bot
// behavior and callers depend on it.
type TaskUpdate struct {
	Title       string
	Description string
	Priority    Priority
}

// IsZero returns true when the update carries no effective change.
func (u TaskUpdate) IsZero() bool {
	return u.Title == "" && u.Description == "" && u.Priority == ""
}

// CategoryCount pairs a category name with a task count.
type CategoryCount struct {
	Name  string
	Count int64
}

// TaskStats aggregates task counts for the stats views.
type TaskStats struct {
	PendingByCategory []CategoryCount // Only categories with at least one pending task
	Total             int64
	Pending           int64
	InProgress        int64
	Done              int64
}

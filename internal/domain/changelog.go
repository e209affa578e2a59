package domain

import "time"

// ChangelogEntry is a freestanding dated note about a project change.
// Category is a free-text label; the changelog_categories table is only a
// suggestion list, not a foreign key.
type ChangelogEntry struct {
	Created     time.Time
	Category    string
	Description string
	AuthorName  string
	ID          int64
	AuthorID    int64
	Pinned      bool
}

// IsAuthor returns true if the given user created this entry.
func (e *ChangelogEntry) IsAuthor(userID int64) bool {
	return e.AuthorID == userID
}

// ChangelogFilter specifies criteria for listing changelog entries.
type ChangelogFilter struct {
	Pinned   *bool
	Category string
}

// ChangelogUpdate carries a partial update for a changelog entry.
// Unlike TaskUpdate, nil means "not supplied", so a description can be
// intentionally set to the empty string. The asymmetry is inherited from
// the original update paths.
type ChangelogUpdate struct {
	Description *string
	Category    *string
}

// IsZero returns true when the update carries no effective change.
func (u ChangelogUpdate) IsZero() bool {
	return u.Description == nil && u.Category == nil
}

// ChangelogStats aggregates changelog counts.
type ChangelogStats struct {
	ByCategory map[string]int64
	ByAuthor   map[string]int64
	Total      int64
	Pinned     int64
}

package domain

import "time"

// StoreInitializer initializes the data store.
type StoreInitializer interface {
	// Initialize creates the schema if needed and seeds default rows.
	// Safe to call on every startup.
	Initialize() error
}

// TaskRepository manages task and comment persistence.
//
// Mutations that target a single row report whether the row existed via the
// bool result; false is the "not found" outcome, an error is a storage fault.
type TaskRepository interface {
	// CreateTask inserts a new task and returns its id.
	CreateTask(t *Task) (int64, error)

	// GetTask retrieves a task by id with its joined category name.
	// Returns nil if not found.
	GetTask(id int64) (*Task, error)

	// ListTasks retrieves tasks matching the filter, newest first.
	ListTasks(filter TaskFilter) ([]*Task, error)

	// SearchTasks retrieves tasks whose title or description contains the
	// term, case-insensitively, newest first.
	SearchTasks(term string) ([]*Task, error)

	// UpdateStatus sets the status and unconditionally rewrites the
	// completion timestamp (non-nil only when status is done).
	UpdateStatus(id int64, status Status, completedAt *time.Time) (bool, error)

	// UpdateTaskFields applies a partial update. Empty update fields are
	// skipped.
	UpdateTaskFields(id int64, u TaskUpdate) (bool, error)

	// DeleteTask removes a task; its comments go with it.
	DeleteTask(id int64) (bool, error)

	// TaskStats aggregates task counts.
	TaskStats() (*TaskStats, error)

	// AddComment inserts a comment and returns its id. The task id is not
	// checked for existence.
	AddComment(c *Comment) (int64, error)

	// ListComments retrieves a task's comments in chronological order.
	ListComments(taskID int64) ([]*Comment, error)
}

// CategoryRepository manages the task category set.
type CategoryRepository interface {
	// CreateCategory inserts a category. Returns ErrDuplicateCategory if
	// the name is already taken.
	CreateCategory(name string) (int64, error)

	// ListCategories retrieves all categories ordered by name.
	ListCategories() ([]*Category, error)
}

// ChangelogRepository manages changelog entries and their suggestion
// category list.
type ChangelogRepository interface {
	// CreateChangelog inserts a new entry (unpinned) and returns its id.
	CreateChangelog(e *ChangelogEntry) (int64, error)

	// GetChangelog retrieves an entry by id. Returns nil if not found.
	GetChangelog(id int64) (*ChangelogEntry, error)

	// ListChangelogs retrieves entries matching the filter, pinned first,
	// then newest first.
	ListChangelogs(filter ChangelogFilter) ([]*ChangelogEntry, error)

	// TogglePin flips the pinned flag.
	TogglePin(id int64) (bool, error)

	// UpdateChangelog applies a partial update.
	UpdateChangelog(id int64, u ChangelogUpdate) (bool, error)

	// DeleteChangelog removes an entry.
	DeleteChangelog(id int64) (bool, error)

	// ChangelogStats aggregates changelog counts.
	ChangelogStats() (*ChangelogStats, error)

	// CreateChangelogCategory inserts a suggestion category. Returns
	// ErrDuplicateCategory on a name collision.
	CreateChangelogCategory(name string) error

	// ListChangelogCategories retrieves suggestion category names ordered
	// by name.
	ListChangelogCategories() ([]string, error)
}

// SettingsRepository is a key-value configuration store with upsert
// semantics.
type SettingsRepository interface {
	// GetSetting retrieves a setting value; absent keys yield "".
	GetSetting(key string) (string, error)

	// SetSetting writes a setting value, overwriting any previous one.
	SetSetting(key, value string) error
}

// Clock provides the current time. Injected so tests can freeze it.
type Clock interface {
	Now() time.Time
}

// RealClock is the production Clock.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time { return time.Now() }

// Logger is the minimal logging surface used across the application.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

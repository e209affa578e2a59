// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"sort"
	"strings"
	"time"

	"github.com/bigcommunity/taskbot/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// NopLogger is a test double for domain.Logger that discards everything.
type NopLogger struct{}

func (NopLogger) Debug(string, string) {}
func (NopLogger) Info(string, string)  {}
func (NopLogger) Warn(string, string)  {}
func (NopLogger) Error(string, string) {}

// MockTaskRepository is an in-memory test double for domain.TaskRepository.
type MockTaskRepository struct {
	Tasks    map[int64]*domain.Task
	Comments map[int64][]*domain.Comment
	Err      error // returned from every method when set
	nextID   int64
}

// NewMockTaskRepository creates a MockTaskRepository with initialized maps.
func NewMockTaskRepository() *MockTaskRepository {
	return &MockTaskRepository{
		Tasks:    make(map[int64]*domain.Task),
		Comments: make(map[int64][]*domain.Comment),
		nextID:   1,
	}
}

// CreateTask inserts a task with creation-time defaults.
func (m *MockTaskRepository) CreateTask(t *domain.Task) (int64, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	cp := *t
	cp.ID = m.nextID
	cp.Status = domain.StatusPending
	cp.CompletedAt = nil
	m.nextID++
	m.Tasks[cp.ID] = &cp
	return cp.ID, nil
}

// GetTask retrieves a task by id; nil when absent.
func (m *MockTaskRepository) GetTask(id int64) (*domain.Task, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Tasks[id], nil
}

// ListTasks applies the filter and sorts newest first.
func (m *MockTaskRepository) ListTasks(filter domain.TaskFilter) ([]*domain.Task, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var tasks []*domain.Task
	for _, t := range m.Tasks {
		if filter.CategoryID != nil && (t.CategoryID == nil || *t.CategoryID != *filter.CategoryID) {
			continue
		}
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		if filter.AuthorID != nil && t.AuthorID != *filter.AuthorID {
			continue
		}
		tasks = append(tasks, t)
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID > tasks[j].ID })
	return tasks, nil
}

// SearchTasks matches the term against title and description.
func (m *MockTaskRepository) SearchTasks(term string) ([]*domain.Task, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	term = strings.ToLower(term)
	var tasks []*domain.Task
	for _, t := range m.Tasks {
		if strings.Contains(strings.ToLower(t.Title), term) ||
			strings.Contains(strings.ToLower(t.Description), term) {
			tasks = append(tasks, t)
		}
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID > tasks[j].ID })
	return tasks, nil
}

// UpdateStatus rewrites status and completion timestamp.
func (m *MockTaskRepository) UpdateStatus(id int64, status domain.Status, completedAt *time.Time) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	t, ok := m.Tasks[id]
	if !ok {
		return false, nil
	}
	t.Status = status
	t.CompletedAt = completedAt
	return true, nil
}

// UpdateTaskFields applies non-empty fields only.
func (m *MockTaskRepository) UpdateTaskFields(id int64, u domain.TaskUpdate) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	if u.IsZero() {
		return false, domain.ErrNoFieldsToUpdate
	}
	t, ok := m.Tasks[id]
	if !ok {
		return false, nil
	}
	if u.Title != "" {
		t.Title = u.Title
	}
	if u.Description != "" {
		t.Description = u.Description
	}
	if u.Priority != "" {
		t.Priority = u.Priority
	}
	return true, nil
}

// DeleteTask removes a task and its comments.
func (m *MockTaskRepository) DeleteTask(id int64) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	if _, ok := m.Tasks[id]; !ok {
		return false, nil
	}
	delete(m.Tasks, id)
	delete(m.Comments, id)
	return true, nil
}

// TaskStats counts tasks by status.
func (m *MockTaskRepository) TaskStats() (*domain.TaskStats, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	stats := &domain.TaskStats{}
	pending := make(map[string]int64)
	for _, t := range m.Tasks {
		stats.Total++
		switch t.Status {
		case domain.StatusPending:
			stats.Pending++
			if t.CategoryName != "" {
				pending[t.CategoryName]++
			}
		case domain.StatusInProgress:
			stats.InProgress++
		case domain.StatusDone:
			stats.Done++
		}
	}
	names := make([]string, 0, len(pending))
	for name := range pending {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		stats.PendingByCategory = append(stats.PendingByCategory, domain.CategoryCount{Name: name, Count: pending[name]})
	}
	return stats, nil
}

// AddComment appends a comment without checking the task id.
func (m *MockTaskRepository) AddComment(c *domain.Comment) (int64, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	cp := *c
	cp.ID = int64(len(m.Comments[c.TaskID]) + 1)
	m.Comments[c.TaskID] = append(m.Comments[c.TaskID], &cp)
	return cp.ID, nil
}

// ListComments returns comments in insertion (chronological) order.
func (m *MockTaskRepository) ListComments(taskID int64) ([]*domain.Comment, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Comments[taskID], nil
}

// MockCategoryRepository is an in-memory test double for
// domain.CategoryRepository.
type MockCategoryRepository struct {
	Categories []*domain.Category
	Err        error
	nextID     int64
}

// NewMockCategoryRepository creates a repository seeded with the given names.
func NewMockCategoryRepository(names ...string) *MockCategoryRepository {
	m := &MockCategoryRepository{nextID: 1}
	for _, name := range names {
		_, _ = m.CreateCategory(name)
	}
	return m
}

// CreateCategory appends a category, rejecting duplicate names.
func (m *MockCategoryRepository) CreateCategory(name string) (int64, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	for _, c := range m.Categories {
		if c.Name == name {
			return 0, domain.ErrDuplicateCategory
		}
	}
	c := &domain.Category{ID: m.nextID, Name: name}
	m.nextID++
	m.Categories = append(m.Categories, c)
	return c.ID, nil
}

// ListCategories returns the categories ordered by name.
func (m *MockCategoryRepository) ListCategories() ([]*domain.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]*domain.Category, len(m.Categories))
	copy(out, m.Categories)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// MockChangelogRepository is an in-memory test double for
// domain.ChangelogRepository.
type MockChangelogRepository struct {
	Entries    map[int64]*domain.ChangelogEntry
	Categories []string
	Err        error
	nextID     int64
}

// NewMockChangelogRepository creates a MockChangelogRepository.
func NewMockChangelogRepository() *MockChangelogRepository {
	return &MockChangelogRepository{
		Entries: make(map[int64]*domain.ChangelogEntry),
		nextID:  1,
	}
}

// CreateChangelog inserts an unpinned entry.
func (m *MockChangelogRepository) CreateChangelog(e *domain.ChangelogEntry) (int64, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	cp := *e
	cp.ID = m.nextID
	cp.Pinned = false
	m.nextID++
	m.Entries[cp.ID] = &cp
	return cp.ID, nil
}

// GetChangelog retrieves an entry; nil when absent.
func (m *MockChangelogRepository) GetChangelog(id int64) (*domain.ChangelogEntry, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Entries[id], nil
}

// ListChangelogs filters and orders pinned-first, newest-first.
func (m *MockChangelogRepository) ListChangelogs(filter domain.ChangelogFilter) ([]*domain.ChangelogEntry, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var entries []*domain.ChangelogEntry
	for _, e := range m.Entries {
		if filter.Category != "" && e.Category != filter.Category {
			continue
		}
		if filter.Pinned != nil && e.Pinned != *filter.Pinned {
			continue
		}
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Pinned != entries[j].Pinned {
			return entries[i].Pinned
		}
		return entries[i].Created.After(entries[j].Created)
	})
	return entries, nil
}

// TogglePin flips the pinned flag.
func (m *MockChangelogRepository) TogglePin(id int64) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	e, ok := m.Entries[id]
	if !ok {
		return false, nil
	}
	e.Pinned = !e.Pinned
	return true, nil
}

// UpdateChangelog applies non-nil fields only.
func (m *MockChangelogRepository) UpdateChangelog(id int64, u domain.ChangelogUpdate) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	if u.IsZero() {
		return false, domain.ErrNoFieldsToUpdate
	}
	e, ok := m.Entries[id]
	if !ok {
		return false, nil
	}
	if u.Description != nil {
		e.Description = *u.Description
	}
	if u.Category != nil {
		e.Category = *u.Category
	}
	return true, nil
}

// DeleteChangelog removes an entry.
func (m *MockChangelogRepository) DeleteChangelog(id int64) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	if _, ok := m.Entries[id]; !ok {
		return false, nil
	}
	delete(m.Entries, id)
	return true, nil
}

// ChangelogStats counts entries.
func (m *MockChangelogRepository) ChangelogStats() (*domain.ChangelogStats, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	stats := &domain.ChangelogStats{
		ByCategory: make(map[string]int64),
		ByAuthor:   make(map[string]int64),
	}
	for _, e := range m.Entries {
		stats.Total++
		if e.Pinned {
			stats.Pinned++
		}
		stats.ByCategory[e.Category]++
		stats.ByAuthor[e.AuthorName]++
	}
	return stats, nil
}

// CreateChangelogCategory appends a suggestion category name.
func (m *MockChangelogRepository) CreateChangelogCategory(name string) error {
	if m.Err != nil {
		return m.Err
	}
	for _, n := range m.Categories {
		if n == name {
			return domain.ErrDuplicateCategory
		}
	}
	m.Categories = append(m.Categories, name)
	return nil
}

// ListChangelogCategories returns the suggestion names ordered by name.
func (m *MockChangelogRepository) ListChangelogCategories() ([]string, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]string, len(m.Categories))
	copy(out, m.Categories)
	sort.Strings(out)
	return out, nil
}

// MockSettingsRepository is an in-memory test double for
// domain.SettingsRepository.
type MockSettingsRepository struct {
	Values map[string]string
	Err    error
}

// NewMockSettingsRepository creates a MockSettingsRepository.
func NewMockSettingsRepository() *MockSettingsRepository {
	return &MockSettingsRepository{Values: make(map[string]string)}
}

// GetSetting retrieves a value; "" when absent.
func (m *MockSettingsRepository) GetSetting(key string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	return m.Values[key], nil
}

// SetSetting upserts a value.
func (m *MockSettingsRepository) SetSetting(key, value string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Values[key] = value
	return nil
}

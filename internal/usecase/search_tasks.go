package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/bigcommunity/taskbot/internal/domain"
)

// SearchTasksInput contains the search term.
type SearchTasksInput struct {
	Term string
}

// SearchTasksOutput contains the matching tasks, newest first.
type SearchTasksOutput struct {
	Tasks []*domain.Task
}

// SearchTasks is the use case for substring search over titles and
// descriptions.
type SearchTasks struct {
	tasks domain.TaskRepository
}

// NewSearchTasks creates a new SearchTasks use case.
func NewSearchTasks(tasks domain.TaskRepository) *SearchTasks {
	return &SearchTasks{tasks: tasks}
}

// Execute searches case-insensitively for the term.
func (uc *SearchTasks) Execute(_ context.Context, in SearchTasksInput) (*SearchTasksOutput, error) {
	term := strings.TrimSpace(in.Term)
	if term == "" {
		return nil, domain.ErrEmptyText
	}
	tasks, err := uc.tasks.SearchTasks(term)
	if err != nil {
		return nil, fmt.Errorf("search tasks: %w", err)
	}
	return &SearchTasksOutput{Tasks: tasks}, nil
}

package usecase

import (
	"context"
	"fmt"

	"github.com/bigcommunity/taskbot/internal/domain"
)

// ListTasksInput carries the optional filters. They are conjunctive: every
// set filter must match.
type ListTasksInput struct {
	CategoryID *int64
	AuthorID   *int64
	Status     domain.Status
}

// ListTasksOutput contains the matching tasks, newest first.
type ListTasksOutput struct {
	Tasks []*domain.Task
}

// ListTasks is the use case for listing and filtering tasks.
type ListTasks struct {
	tasks domain.TaskRepository
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(tasks domain.TaskRepository) *ListTasks {
	return &ListTasks{tasks: tasks}
}

// Execute lists tasks matching the filters.
func (uc *ListTasks) Execute(_ context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	if in.Status != "" && !in.Status.IsValid() {
		return nil, domain.ErrInvalidStatus
	}
	tasks, err := uc.tasks.ListTasks(domain.TaskFilter{
		CategoryID: in.CategoryID,
		AuthorID:   in.AuthorID,
		Status:     in.Status,
	})
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return &ListTasksOutput{Tasks: tasks}, nil
}

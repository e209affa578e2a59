// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/bigcommunity/taskbot/internal/domain"
)

// NewTaskInput contains the parameters for creating a new task.
type NewTaskInput struct {
	CategoryID  *int64          // Category reference (optional)
	Title       string          // Task title (required)
	Description string          // Task description (optional)
	AuthorName  string          // Display name of the creator
	ImageID     string          // Attached image handle (optional)
	Priority    domain.Priority // Defaults to media when empty
	AuthorID    int64           // Platform user id of the creator
}

// NewTaskOutput contains the result of creating a new task.
type NewTaskOutput struct {
	Task *domain.Task // The created task as stored
}

// NewTask is the use case for creating a new task.
type NewTask struct {
	tasks domain.TaskRepository
	clock domain.Clock
}

// NewNewTask creates a new NewTask use case.
func NewNewTask(tasks domain.TaskRepository, clock domain.Clock) *NewTask {
	return &NewTask{tasks: tasks, clock: clock}
}

// Execute creates a new task. The task starts pending with no completion
// timestamp. The category reference is stored as given; a dangling id is
// not an error.
func (uc *NewTask) Execute(_ context.Context, in NewTaskInput) (*NewTaskOutput, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, domain.ErrEmptyTitle
	}

	priority := in.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}
	if !priority.IsValid() {
		return nil, domain.ErrInvalidPriority
	}

	task := &domain.Task{
		Title:       title,
		Description: in.Description,
		CategoryID:  in.CategoryID,
		AuthorID:    in.AuthorID,
		AuthorName:  in.AuthorName,
		Priority:    priority,
		ImageID:     in.ImageID,
		Created:     uc.clock.Now(),
	}

	id, err := uc.tasks.CreateTask(task)
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	created, err := uc.tasks.GetTask(id)
	if err != nil {
		return nil, fmt.Errorf("reload task: %w", err)
	}
	return &NewTaskOutput{Task: created}, nil
}

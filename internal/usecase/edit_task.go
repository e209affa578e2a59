package usecase

import (
	"context"
	"fmt"

	"github.com/bigcommunity/taskbot/internal/domain"
)

// EditTaskInput contains the parameters for editing a task. Fields follow
// domain.TaskUpdate semantics: empty means "leave alone".
type EditTaskInput struct {
	Title       string
	Description string
	Priority    domain.Priority
	TaskID      int64
}

// EditTaskOutput contains the result of editing a task.
type EditTaskOutput struct {
	Task *domain.Task // The task after the update
}

// EditTask is the use case for partially updating a task's fields.
type EditTask struct {
	tasks domain.TaskRepository
}

// NewEditTask creates a new EditTask use case.
func NewEditTask(tasks domain.TaskRepository) *EditTask {
	return &EditTask{tasks: tasks}
}

// Execute applies the supplied fields. An update with no effective fields
// fails with ErrNoFieldsToUpdate, which is distinct from ErrTaskNotFound.
func (uc *EditTask) Execute(_ context.Context, in EditTaskInput) (*EditTaskOutput, error) {
	update := domain.TaskUpdate{
		Title:       in.Title,
		Description: in.Description,
		Priority:    in.Priority,
	}
	if update.IsZero() {
		return nil, domain.ErrNoFieldsToUpdate
	}
	if update.Priority != "" && !update.Priority.IsValid() {
		return nil, domain.ErrInvalidPriority
	}

	found, err := uc.tasks.UpdateTaskFields(in.TaskID, update)
	if err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	if !found {
		return nil, domain.ErrTaskNotFound
	}

	task, err := uc.tasks.GetTask(in.TaskID)
	if err != nil {
		return nil, fmt.Errorf("reload task: %w", err)
	}
	return &EditTaskOutput{Task: task}, nil
}

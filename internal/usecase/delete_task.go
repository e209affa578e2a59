package usecase

import (
	"context"
	"fmt"

	"github.com/bigcommunity/taskbot/internal/domain"
)

// DeleteTaskInput contains the parameters for deleting a task.
type DeleteTaskInput struct {
	TaskID int64
}

// DeleteTask is the use case for deleting a task and its comments.
type DeleteTask struct {
	tasks domain.TaskRepository
}

// NewDeleteTask creates a new DeleteTask use case.
func NewDeleteTask(tasks domain.TaskRepository) *DeleteTask {
	return &DeleteTask{tasks: tasks}
}

// Execute hard-deletes the task; comments cascade at the storage level.
func (uc *DeleteTask) Execute(_ context.Context, in DeleteTaskInput) error {
	found, err := uc.tasks.DeleteTask(in.TaskID)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if !found {
		return domain.ErrTaskNotFound
	}
	return nil
}

package usecase

import (
	"context"
	"fmt"

	"github.com/bigcommunity/taskbot/internal/domain"
)

// ShowTaskInput contains the parameters for fetching a single task.
type ShowTaskInput struct {
	TaskID int64
}

// ShowTaskOutput contains the fetched task.
type ShowTaskOutput struct {
	Task *domain.Task
}

// ShowTask is the use case for fetching one task.
type ShowTask struct {
	tasks domain.TaskRepository
}

// NewShowTask creates a new ShowTask use case.
func NewShowTask(tasks domain.TaskRepository) *ShowTask {
	return &ShowTask{tasks: tasks}
}

// Execute fetches the task or reports ErrTaskNotFound.
func (uc *ShowTask) Execute(_ context.Context, in ShowTaskInput) (*ShowTaskOutput, error) {
	task, err := uc.tasks.GetTask(in.TaskID)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	if task == nil {
		return nil, domain.ErrTaskNotFound
	}
	return &ShowTaskOutput{Task: task}, nil
}

package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/bigcommunity/taskbot/internal/domain"
)

// ChangeStatusInput contains the parameters for a status change.
type ChangeStatusInput struct {
	Status domain.Status
	TaskID int64
}

// ChangeStatusOutput contains the result of a status change.
type ChangeStatusOutput struct {
	Task *domain.Task // The task after the update
}

// ChangeStatus is the use case for moving a task between statuses.
type ChangeStatus struct {
	tasks domain.TaskRepository
	clock domain.Clock
}

// NewChangeStatus creates a new ChangeStatus use case.
func NewChangeStatus(tasks domain.TaskRepository, clock domain.Clock) *ChangeStatus {
	return &ChangeStatus{tasks: tasks, clock: clock}
}

// Execute sets the task's status. The completion timestamp is recomputed on
// every call: moving to done stamps it with the current time, any other
// target clears it, regardless of the previous status.
func (uc *ChangeStatus) Execute(_ context.Context, in ChangeStatusInput) (*ChangeStatusOutput, error) {
	if !in.Status.IsValid() {
		return nil, domain.ErrInvalidStatus
	}

	var completedAt *time.Time
	if in.Status == domain.StatusDone {
		now := uc.clock.Now()
		completedAt = &now
	}

	found, err := uc.tasks.UpdateStatus(in.TaskID, in.Status, completedAt)
	if err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}
	if !found {
		return nil, domain.ErrTaskNotFound
	}

	task, err := uc.tasks.GetTask(in.TaskID)
	if err != nil {
		return nil, fmt.Errorf("reload task: %w", err)
	}
	return &ChangeStatusOutput{Task: task}, nil
}

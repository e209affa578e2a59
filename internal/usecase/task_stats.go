package usecase

import (
	"context"
	"fmt"

	"github.com/bigcommunity/taskbot/internal/domain"
)

// TaskStatsOutput contains the aggregated task counters.
type TaskStatsOutput struct {
	Stats *domain.TaskStats
}

// TaskStatsUseCase is the use case for the task statistics report.
type TaskStatsUseCase struct {
	tasks domain.TaskRepository
}

// NewTaskStats creates a new TaskStatsUseCase.
func NewTaskStats(tasks domain.TaskRepository) *TaskStatsUseCase {
	return &TaskStatsUseCase{tasks: tasks}
}

// Execute returns totals per status plus the pending count per category.
// Categories without pending tasks are absent from the breakdown.
func (uc *TaskStatsUseCase) Execute(_ context.Context) (*TaskStatsOutput, error) {
	stats, err := uc.tasks.TaskStats()
	if err != nil {
		return nil, fmt.Errorf("task stats: %w", err)
	}
	return &TaskStatsOutput{Stats: stats}, nil
}

package usecase

import (
	"context"
	"fmt"

	"github.com/bigcommunity/taskbot/internal/domain"
)

// ChangelogStatsOutput contains the aggregated changelog counters.
type ChangelogStatsOutput struct {
	Stats *domain.ChangelogStats
}

// ChangelogStatsUseCase is the use case for the changelog statistics report.
type ChangelogStatsUseCase struct {
	changelogs domain.ChangelogRepository
}

// NewChangelogStats creates a new ChangelogStatsUseCase.
func NewChangelogStats(changelogs domain.ChangelogRepository) *ChangelogStatsUseCase {
	return &ChangelogStatsUseCase{changelogs: changelogs}
}

// Execute returns totals plus per-category and per-author breakdowns.
func (uc *ChangelogStatsUseCase) Execute(_ context.Context) (*ChangelogStatsOutput, error) {
	stats, err := uc.changelogs.ChangelogStats()
	if err != nil {
		return nil, fmt.Errorf("changelog stats: %w", err)
	}
	return &ChangelogStatsOutput{Stats: stats}, nil
}

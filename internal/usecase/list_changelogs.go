package usecase

import (
	"context"
	"fmt"

	"github.com/bigcommunity/taskbot/internal/domain"
)

// ListChangelogsInput contains the optional filters for a changelog listing.
type ListChangelogsInput struct {
	Filter domain.ChangelogFilter
}

// ListChangelogsOutput contains the entries, pinned first, newest first.
type ListChangelogsOutput struct {
	Entries []*domain.ChangelogEntry
}

// ListChangelogs is the use case for listing changelog entries.
type ListChangelogs struct {
	changelogs domain.ChangelogRepository
}

// NewListChangelogs creates a new ListChangelogs use case.
func NewListChangelogs(changelogs domain.ChangelogRepository) *ListChangelogs {
	return &ListChangelogs{changelogs: changelogs}
}

// Execute returns the entries matching the filter. Pinned entries come
// before unpinned ones, then newest first within each group.
func (uc *ListChangelogs) Execute(_ context.Context, in ListChangelogsInput) (*ListChangelogsOutput, error) {
	entries, err := uc.changelogs.ListChangelogs(in.Filter)
	if err != nil {
		return nil, fmt.Errorf("list changelogs: %w", err)
	}
	return &ListChangelogsOutput{Entries: entries}, nil
}

package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bigcommunity/taskbot/internal/domain"
	"github.com/bigcommunity/taskbot/internal/testutil"
)

func TestNewTask_Execute(t *testing.T) {
	// Setup
	repo := testutil.NewMockTaskRepository()
	clock := &testutil.MockClock{NowTime: time.Date(2024, 3, 10, 12, 0, 0, 0, time.Local)}
	uc := NewNewTask(repo, clock)

	// Execute
	out, err := uc.Execute(context.Background(), NewTaskInput{
		Title:      "Fix panel crash",
		AuthorID:   42,
		AuthorName: "alice",
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Fix panel crash", out.Task.Title)
	assert.Equal(t, domain.StatusPending, out.Task.Status)
	assert.Equal(t, domain.PriorityMedium, out.Task.Priority)
	assert.Nil(t, out.Task.CompletedAt)
	assert.Equal(t, clock.NowTime, out.Task.Created)
}

func TestNewTask_Execute_EmptyTitle(t *testing.T) {
	// Setup
	repo := testutil.NewMockTaskRepository()
	uc := NewNewTask(repo, &testutil.MockClock{})

	// Execute
	_, err := uc.Execute(context.Background(), NewTaskInput{Title: "   "})

	// Assert
	assert.ErrorIs(t, err, domain.ErrEmptyTitle)
	assert.Empty(t, repo.Tasks)
}

func TestNewTask_Execute_InvalidPriority(t *testing.T) {
	// Setup
	repo := testutil.NewMockTaskRepository()
	uc := NewNewTask(repo, &testutil.MockClock{})

	// Execute
	_, err := uc.Execute(context.Background(), NewTaskInput{
		Title:    "Fix panel crash",
		Priority: "urgentissima",
	})

	// Assert
	assert.ErrorIs(t, err, domain.ErrInvalidPriority)
}

func TestNewTask_Execute_ExplicitPriority(t *testing.T) {
	// Setup
	repo := testutil.NewMockTaskRepository()
	uc := NewNewTask(repo, &testutil.MockClock{NowTime: time.Now()})

	// Execute
	out, err := uc.Execute(context.Background(), NewTaskInput{
		Title:    "Fix panel crash",
		Priority: domain.PriorityHigh,
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, domain.PriorityHigh, out.Task.Priority)
}

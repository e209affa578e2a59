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

func TestChangeStatus_Execute_StampsCompletion(t *testing.T) {
	// Setup
	repo := testutil.NewMockTaskRepository()
	id, err := repo.CreateTask(&domain.Task{Title: "Fix crash"})
	require.NoError(t, err)
	clock := &testutil.MockClock{NowTime: time.Date(2024, 3, 10, 12, 0, 0, 0, time.Local)}
	uc := NewChangeStatus(repo, clock)

	// Execute
	out, err := uc.Execute(context.Background(), ChangeStatusInput{TaskID: id, Status: domain.StatusDone})

	// Assert
	require.NoError(t, err)
	require.NotNil(t, out.Task.CompletedAt)
	assert.Equal(t, clock.NowTime, *out.Task.CompletedAt)
	assert.Equal(t, domain.StatusDone, out.Task.Status)
}

func TestChangeStatus_Execute_ClearsCompletionOnReopen(t *testing.T) {
	// Setup
	repo := testutil.NewMockTaskRepository()
	id, err := repo.CreateTask(&domain.Task{Title: "Fix crash"})
	require.NoError(t, err)
	clock := &testutil.MockClock{NowTime: time.Date(2024, 3, 10, 12, 0, 0, 0, time.Local)}
	uc := NewChangeStatus(repo, clock)
	_, err = uc.Execute(context.Background(), ChangeStatusInput{TaskID: id, Status: domain.StatusDone})
	require.NoError(t, err)

	// Execute
	out, err := uc.Execute(context.Background(), ChangeStatusInput{TaskID: id, Status: domain.StatusPending})

	// Assert
	require.NoError(t, err)
	assert.Nil(t, out.Task.CompletedAt)
	assert.Equal(t, domain.StatusPending, out.Task.Status)
}

func TestChangeStatus_Execute_RestampsOnSecondCompletion(t *testing.T) {
	// Setup
	repo := testutil.NewMockTaskRepository()
	id, err := repo.CreateTask(&domain.Task{Title: "Fix crash"})
	require.NoError(t, err)
	clock := &testutil.MockClock{NowTime: time.Date(2024, 3, 10, 12, 0, 0, 0, time.Local)}
	uc := NewChangeStatus(repo, clock)
	ctx := context.Background()
	_, err = uc.Execute(ctx, ChangeStatusInput{TaskID: id, Status: domain.StatusDone})
	require.NoError(t, err)
	_, err = uc.Execute(ctx, ChangeStatusInput{TaskID: id, Status: domain.StatusPending})
	require.NoError(t, err)
	clock.NowTime = clock.NowTime.Add(48 * time.Hour)

	// Execute
	out, err := uc.Execute(ctx, ChangeStatusInput{TaskID: id, Status: domain.StatusDone})

	// Assert
	require.NoError(t, err)
	require.NotNil(t, out.Task.CompletedAt)
	assert.Equal(t, clock.NowTime, *out.Task.CompletedAt)
}

func TestChangeStatus_Execute_InvalidStatus(t *testing.T) {
	// Setup
	uc := NewChangeStatus(testutil.NewMockTaskRepository(), &testutil.MockClock{})

	// Execute
	_, err := uc.Execute(context.Background(), ChangeStatusInput{TaskID: 1, Status: "arquivada"})

	// Assert
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestChangeStatus_Execute_NotFound(t *testing.T) {
	// Setup
	uc := NewChangeStatus(testutil.NewMockTaskRepository(), &testutil.MockClock{})

	// Execute
	_, err := uc.Execute(context.Background(), ChangeStatusInput{TaskID: 99, Status: domain.StatusInProgress})

	// Assert
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

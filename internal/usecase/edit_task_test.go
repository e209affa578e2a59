package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bigcommunity/taskbot/internal/domain"
	"github.com/bigcommunity/taskbot/internal/testutil"
)

func TestEditTask_Execute_PartialUpdate(t *testing.T) {
	// Setup
	repo := testutil.NewMockTaskRepository()
	id, err := repo.CreateTask(&domain.Task{Title: "Old title", Description: "Old body", Priority: domain.PriorityLow})
	require.NoError(t, err)
	uc := NewEditTask(repo)

	// Execute
	out, err := uc.Execute(context.Background(), EditTaskInput{TaskID: id, Title: "New title"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "New title", out.Task.Title)
	assert.Equal(t, "Old body", out.Task.Description)
	assert.Equal(t, domain.PriorityLow, out.Task.Priority)
}

func TestEditTask_Execute_NoFields(t *testing.T) {
	// Setup
	repo := testutil.NewMockTaskRepository()
	_, err := repo.CreateTask(&domain.Task{Title: "Old title"})
	require.NoError(t, err)
	uc := NewEditTask(repo)

	// Execute
	_, err = uc.Execute(context.Background(), EditTaskInput{TaskID: 1})

	// Assert
	assert.ErrorIs(t, err, domain.ErrNoFieldsToUpdate)
}

func TestEditTask_Execute_InvalidPriority(t *testing.T) {
	// Setup
	uc := NewEditTask(testutil.NewMockTaskRepository())

	// Execute
	_, err := uc.Execute(context.Background(), EditTaskInput{TaskID: 1, Priority: "critica"})

	// Assert
	assert.ErrorIs(t, err, domain.ErrInvalidPriority)
}

func TestEditTask_Execute_NotFound(t *testing.T) {
	// Setup
	uc := NewEditTask(testutil.NewMockTaskRepository())

	// Execute
	_, err := uc.Execute(context.Background(), EditTaskInput{TaskID: 99, Title: "New title"})

	// Assert
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

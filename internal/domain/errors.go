package domain

import "errors"

// Domain errors. Expected conditions (missing ids, duplicate names, empty
// updates) are sentinels so callers can branch on them; anything else coming
// out of a repository is a storage fault and propagates as-is.
var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrChangelogNotFound = errors.New("changelog entry not found")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrDuplicateCategory = errors.New("category already exists")
	ErrEmptyTitle        = errors.New("title cannot be empty")
	ErrEmptyText         = errors.New("text cannot be empty")
	ErrNoFieldsToUpdate  = errors.New("no fields to update")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrInvalidPriority   = errors.New("invalid priority")
)

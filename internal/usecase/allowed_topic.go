package usecase

import (
	"context"
	"fmt"
	"strconv"

	"github.com/bigcommunity/taskbot/internal/domain"
)

// AllowedTopicOutput reports the topic restriction currently in effect.
type AllowedTopicOutput struct {
	// Value is the raw stored setting: a thread id, "off", or "" when the
	// setting was never written.
	Value string
	// Restricted is true when a specific thread id is configured.
	Restricted bool
	// ThreadID is the configured thread id, valid only when Restricted.
	ThreadID int64
}

// AllowedTopic is the use case for reading the topic restriction.
type AllowedTopic struct {
	settings domain.SettingsRepository
}

// NewAllowedTopic creates a new AllowedTopic use case.
func NewAllowedTopic(settings domain.SettingsRepository) *AllowedTopic {
	return &AllowedTopic{settings: settings}
}

// Execute reads the restriction. An absent setting, the "off" sentinel, or a
// value that does not parse as an id all mean the bot answers everywhere.
func (uc *AllowedTopic) Execute(_ context.Context) (*AllowedTopicOutput, error) {
	value, err := uc.settings.GetSetting(domain.SettingAllowedTopic)
	if err != nil {
		return nil, fmt.Errorf("get allowed topic: %w", err)
	}

	out := &AllowedTopicOutput{Value: value}
	if value == "" || value == domain.SettingTopicOff {
		return out, nil
	}
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return out, nil
	}
	out.Restricted = true
	out.ThreadID = id
	return out, nil
}

// SetAllowedTopicInput contains the parameters for changing the restriction.
type SetAllowedTopicInput struct {
	// ThreadID is the thread to restrict to. Ignored when Off is set.
	ThreadID int64
	// Off disables the restriction entirely.
	Off bool
}

// SetAllowedTopic is the use case for changing the topic restriction.
type SetAllowedTopic struct {
	settings domain.SettingsRepository
}

// NewSetAllowedTopic creates a new SetAllowedTopic use case.
func NewSetAllowedTopic(settings domain.SettingsRepository) *SetAllowedTopic {
	return &SetAllowedTopic{settings: settings}
}

// Execute stores the restriction, replacing any previous value.
func (uc *SetAllowedTopic) Execute(_ context.Context, in SetAllowedTopicInput) error {
	value := domain.SettingTopicOff
	if !in.Off {
		value = strconv.FormatInt(in.ThreadID, 10)
	}
	if err := uc.settings.SetSetting(domain.SettingAllowedTopic, value); err != nil {
		return fmt.Errorf("set allowed topic: %w", err)
	}
	return nil
}

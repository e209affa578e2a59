// Package app provides the dependency injection container for the application.
package app

import (
	"fmt"

	"github.com/bigcommunity/taskbot/internal/bot"
	"github.com/bigcommunity/taskbot/internal/domain"
	"github.com/bigcommunity/taskbot/internal/infra/config"
	"github.com/bigcommunity/taskbot/internal/infra/logging"
	"github.com/bigcommunity/taskbot/internal/infra/sqlite"
	"github.com/bigcommunity/taskbot/internal/usecase"
)

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Tasks            domain.TaskRepository
	Categories       domain.CategoryRepository
	Changelogs       domain.ChangelogRepository
	Settings         domain.SettingsRepository
	StoreInitializer domain.StoreInitializer
	Clock            domain.Clock
	Logger           domain.Logger

	// Pointer fields
	store  *sqlite.Store
	logger *logging.Logger

	// Configuration
	Config *domain.Config
}

// New creates a new Container from the config file at configPath. An empty
// path uses defaults plus environment overrides.
func New(configPath string) (*Container, error) {
	cfg, err := config.NewLoader(configPath).Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	logger := logging.New(cfg.LogDir, logging.ParseLevel(cfg.LogLevel))

	return &Container{
		Tasks:            store,
		Categories:       store,
		Changelogs:       store,
		Settings:         store,
		StoreInitializer: store,
		Clock:            domain.RealClock{},
		Logger:           logger,
		store:            store,
		logger:           logger,
		Config:           cfg,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg *domain.Config, tasks domain.TaskRepository, categories domain.CategoryRepository,
	changelogs domain.ChangelogRepository, settings domain.SettingsRepository,
	clock domain.Clock, logger domain.Logger) *Container {
	return &Container{
		Tasks:      tasks,
		Categories: categories,
		Changelogs: changelogs,
		Settings:   settings,
		Clock:      clock,
		Logger:     logger,
		Config:     cfg,
	}
}

// Close releases the store and the log file.
func (c *Container) Close() error {
	var lastErr error
	if c.store != nil {
		if err := c.store.Close(); err != nil {
			lastErr = err
		}
	}
	if c.logger != nil {
		if err := c.logger.Close(); err != nil {
			lastErr = err
		}
	}
	return lastErr
}

// Usecases builds the full bundle the router dispatches to.
func (c *Container) Usecases() bot.Usecases {
	return bot.Usecases{
		NewTask:                 usecase.NewNewTask(c.Tasks, c.Clock),
		ChangeStatus:            usecase.NewChangeStatus(c.Tasks, c.Clock),
		EditTask:                usecase.NewEditTask(c.Tasks),
		DeleteTask:              usecase.NewDeleteTask(c.Tasks),
		ShowTask:                usecase.NewShowTask(c.Tasks),
		ListTasks:               usecase.NewListTasks(c.Tasks),
		SearchTasks:             usecase.NewSearchTasks(c.Tasks),
		AddComment:              usecase.NewAddComment(c.Tasks, c.Clock),
		ListComments:            usecase.NewListComments(c.Tasks),
		TaskStats:               usecase.NewTaskStats(c.Tasks),
		NewCategory:             usecase.NewNewCategory(c.Categories),
		ListCategories:          usecase.NewListCategories(c.Categories),
		AllowedTopic:            usecase.NewAllowedTopic(c.Settings),
		SetAllowedTopic:         usecase.NewSetAllowedTopic(c.Settings),
		NewChangelog:            usecase.NewNewChangelog(c.Changelogs, c.Clock),
		ListChangelogs:          usecase.NewListChangelogs(c.Changelogs),
		ShowChangelog:           usecase.NewShowChangelog(c.Changelogs),
		TogglePin:               usecase.NewTogglePin(c.Changelogs),
		EditChangelog:           usecase.NewEditChangelog(c.Changelogs),
		DeleteChangelog:         usecase.NewDeleteChangelog(c.Changelogs),
		ChangelogStats:          usecase.NewChangelogStats(c.Changelogs),
		NewChangelogCategory:    usecase.NewNewChangelogCategory(c.Changelogs),
		ListChangelogCategories: usecase.NewListChangelogCategories(c.Changelogs),
	}
}

// Router builds the event router over the use case bundle.
func (c *Container) Router() *bot.Router {
	return bot.NewRouter(c.Usecases(), c.Logger)
}

// TaskStatsUseCase returns a new TaskStats use case.
func (c *Container) TaskStatsUseCase() *usecase.TaskStatsUseCase {
	return usecase.NewTaskStats(c.Tasks)
}

// ChangelogStatsUseCase returns a new ChangelogStats use case.
func (c *Container) ChangelogStatsUseCase() *usecase.ChangelogStatsUseCase {
	return usecase.NewChangelogStats(c.Changelogs)
}

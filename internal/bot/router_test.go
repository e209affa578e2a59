package bot

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bigcommunity/taskbot/internal/domain"
	"github.com/bigcommunity/taskbot/internal/testutil"
	"github.com/bigcommunity/taskbot/internal/usecase"
)

type routerFixture struct {
	router     *Router
	tasks      *testutil.MockTaskRepository
	categories *testutil.MockCategoryRepository
	changelogs *testutil.MockChangelogRepository
	settings   *testutil.MockSettingsRepository
	clock      *testutil.MockClock
}

func newRouterFixture() *routerFixture {
	tasks := testutil.NewMockTaskRepository()
	categories := testutil.NewMockCategoryRepository("Cinnamon", "GNOME", "Geral", "XFCE")
	changelogs := testutil.NewMockChangelogRepository()
	settings := testutil.NewMockSettingsRepository()
	clock := &testutil.MockClock{NowTime: time.Date(2024, 3, 10, 12, 0, 0, 0, time.Local)}

	uc := Usecases{
		NewTask:                 usecase.NewNewTask(tasks, clock),
		ChangeStatus:            usecase.NewChangeStatus(tasks, clock),
		EditTask:                usecase.NewEditTask(tasks),
		DeleteTask:              usecase.NewDeleteTask(tasks),
		ShowTask:                usecase.NewShowTask(tasks),
		ListTasks:               usecase.NewListTasks(tasks),
		SearchTasks:             usecase.NewSearchTasks(tasks),
		AddComment:              usecase.NewAddComment(tasks, clock),
		ListComments:            usecase.NewListComments(tasks),
		TaskStats:               usecase.NewTaskStats(tasks),
		NewCategory:             usecase.NewNewCategory(categories),
		ListCategories:          usecase.NewListCategories(categories),
		AllowedTopic:            usecase.NewAllowedTopic(settings),
		SetAllowedTopic:         usecase.NewSetAllowedTopic(settings),
		NewChangelog:            usecase.NewNewChangelog(changelogs, clock),
		ListChangelogs:          usecase.NewListChangelogs(changelogs),
		ShowChangelog:           usecase.NewShowChangelog(changelogs),
		TogglePin:               usecase.NewTogglePin(changelogs),
		EditChangelog:           usecase.NewEditChangelog(changelogs),
		DeleteChangelog:         usecase.NewDeleteChangelog(changelogs),
		ChangelogStats:          usecase.NewChangelogStats(changelogs),
		NewChangelogCategory:    usecase.NewNewChangelogCategory(changelogs),
		ListChangelogCategories: usecase.NewListChangelogCategories(changelogs),
	}
	return &routerFixture{
		router:     NewRouter(uc, testutil.NopLogger{}),
		tasks:      tasks,
		categories: categories,
		changelogs: changelogs,
		settings:   settings,
		clock:      clock,
	}
}

func msg(text string) Event {
	return Event{Text: text, ChatID: 100, UserID: 42, UserName: "alice"}
}

func cmd(name, args string) Event {
	return Event{Command: name, Args: args, ChatID: 100, UserID: 42, UserName: "alice"}
}

func cb(data string) Event {
	return Event{Callback: data, ChatID: 100, UserID: 42, UserName: "alice"}
}

func TestRouter_NewTaskFlow(t *testing.T) {
	// Setup
	f := newRouterFixture()
	ctx := context.Background()

	// Execute: walk the whole creation conversation
	replies := f.router.Handle(ctx, cmd("nova", ""))
	require.Len(t, replies, 1)
	assert.Contains(t, replies[0].Text, "título")

	replies = f.router.Handle(ctx, msg("Corrigir crash do painel"))
	require.Len(t, replies, 1)
	assert.Contains(t, replies[0].Text, "descreva")

	replies = f.router.Handle(ctx, msg("Crash ao restaurar sessão"))
	require.Len(t, replies, 1)
	assert.Contains(t, replies[0].Text, "categoria")
	require.NotEmpty(t, replies[0].Keyboard)

	replies = f.router.Handle(ctx, cb("newcat_1"))
	require.Len(t, replies, 1)
	assert.Contains(t, replies[0].Text, "prioridade")

	replies = f.router.Handle(ctx, cb("prior_alta"))
	require.Len(t, replies, 1)
	assert.Contains(t, replies[0].Text, "imagem")

	replies = f.router.Handle(ctx, cb("pular_imagem"))
	require.Len(t, replies, 1)

	// Assert
	assert.Contains(t, replies[0].Text, "Tarefa criada com sucesso")
	require.Len(t, f.tasks.Tasks, 1)
	created := f.tasks.Tasks[1]
	assert.Equal(t, "Corrigir crash do painel", created.Title)
	assert.Equal(t, domain.PriorityHigh, created.Priority)
	assert.Equal(t, domain.StatusPending, created.Status)
}

func TestRouter_NewTaskFlow_ForwardOnly(t *testing.T) {
	// Setup: a priority press before the category step must be ignored
	f := newRouterFixture()
	ctx := context.Background()
	f.router.Handle(ctx, cmd("nova", ""))
	f.router.Handle(ctx, msg("Título"))

	// Execute
	replies := f.router.Handle(ctx, cb("prior_alta"))

	// Assert
	assert.Empty(t, replies)
	assert.Empty(t, f.tasks.Tasks)
}

func TestRouter_NewTaskFlow_Cancel(t *testing.T) {
	// Setup
	f := newRouterFixture()
	ctx := context.Background()
	f.router.Handle(ctx, cmd("nova", ""))
	f.router.Handle(ctx, msg("Título"))

	// Execute
	replies := f.router.Handle(ctx, cmd("cancelar", ""))

	// Assert: the draft is gone, free text is plain chatter again
	require.Len(t, replies, 1)
	assert.Contains(t, replies[0].Text, "cancelada")
	assert.Empty(t, f.router.Handle(ctx, msg("qualquer coisa")))
	assert.Empty(t, f.tasks.Tasks)
}

func TestRouter_SkipDescription(t *testing.T) {
	// Setup
	f := newRouterFixture()
	ctx := context.Background()
	f.router.Handle(ctx, cmd("nova", ""))
	f.router.Handle(ctx, msg("Título"))

	// Execute
	replies := f.router.Handle(ctx, cmd("pular", ""))

	// Assert: straight to category selection
	require.Len(t, replies, 1)
	assert.Contains(t, replies[0].Text, "categoria")
}

func TestRouter_PendingEditTitle(t *testing.T) {
	// Setup
	f := newRouterFixture()
	ctx := context.Background()
	id, err := f.tasks.CreateTask(&domain.Task{Title: "Velho", AuthorID: 42})
	require.NoError(t, err)
	f.router.Handle(ctx, cb("edit_titulo_1"))

	// Execute
	replies := f.router.Handle(ctx, msg("Novo título"))

	// Assert: updated, marker cleared, task shown again
	require.NotEmpty(t, replies)
	assert.Contains(t, replies[0].Text, "atualizado")
	assert.Equal(t, "Novo título", f.tasks.Tasks[id].Title)
	assert.Empty(t, f.router.Handle(ctx, msg("texto solto")))
}

func TestRouter_PendingComment(t *testing.T) {
	// Setup
	f := newRouterFixture()
	ctx := context.Background()
	_, err := f.tasks.CreateTask(&domain.Task{Title: "Tarefa", AuthorID: 7})
	require.NoError(t, err)
	f.router.Handle(ctx, cb("add_comentario_1"))

	// Execute
	replies := f.router.Handle(ctx, msg("Já estou olhando"))

	// Assert
	require.NotEmpty(t, replies)
	assert.Contains(t, replies[0].Text, "Comentário adicionado")
	comments, err := f.tasks.ListComments(1)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "Já estou olhando", comments[0].Text)
}

func TestRouter_TopicGate(t *testing.T) {
	// Setup
	f := newRouterFixture()
	ctx := context.Background()
	f.settings.Values[domain.SettingAllowedTopic] = "555"

	// Execute: outside the allowed topic
	blocked := f.router.Handle(ctx, cmd("tarefas", ""))

	// Assert
	require.Len(t, blocked, 1)
	assert.Contains(t, blocked[0].Text, "Uso restrito")

	// Execute: inside the allowed topic
	ev := cmd("tarefas", "")
	ev.IsTopic = true
	ev.ThreadID = 555
	allowed := f.router.Handle(ctx, ev)

	// Assert
	require.Len(t, allowed, 1)
	assert.NotContains(t, allowed[0].Text, "Uso restrito")
}

func TestRouter_TopicGate_ManagementCommandsBypass(t *testing.T) {
	// Setup
	f := newRouterFixture()
	ctx := context.Background()
	f.settings.Values[domain.SettingAllowedTopic] = "555"

	// Execute
	replies := f.router.Handle(ctx, cmd("settopico", "off"))

	// Assert
	require.Len(t, replies, 1)
	assert.Contains(t, replies[0].Text, "configurado com sucesso")
	assert.Equal(t, domain.SettingTopicOff, f.settings.Values[domain.SettingAllowedTopic])
}

func TestRouter_CallbackBypassesTopicGate(t *testing.T) {
	// Setup
	f := newRouterFixture()
	ctx := context.Background()
	f.settings.Values[domain.SettingAllowedTopic] = "555"
	_, err := f.tasks.CreateTask(&domain.Task{Title: "Tarefa", AuthorID: 42})
	require.NoError(t, err)

	// Execute
	replies := f.router.Handle(ctx, cb("ver_1"))

	// Assert
	require.Len(t, replies, 1)
	assert.Contains(t, replies[0].Text, "Tarefa #1")
}

func TestRouter_DeleteRequiresAuthor(t *testing.T) {
	// Setup
	f := newRouterFixture()
	ctx := context.Background()
	_, err := f.tasks.CreateTask(&domain.Task{Title: "Tarefa", AuthorID: 7})
	require.NoError(t, err)

	// Execute: viewer 42 confirms deletion of someone else's task
	replies := f.router.Handle(ctx, cb("confirma_del_1"))

	// Assert
	require.Len(t, replies, 1)
	assert.Contains(t, replies[0].Toast, "permissão")
	assert.Len(t, f.tasks.Tasks, 1)
}

func TestRouter_ChangeStatusCallback(t *testing.T) {
	// Setup
	f := newRouterFixture()
	ctx := context.Background()
	_, err := f.tasks.CreateTask(&domain.Task{Title: "Tarefa", AuthorID: 42})
	require.NoError(t, err)

	// Execute
	replies := f.router.Handle(ctx, cb("status_1_concluido"))

	// Assert: toast plus refreshed detail view
	require.Len(t, replies, 2)
	assert.Contains(t, replies[0].Toast, "Status atualizado")
	assert.Contains(t, replies[1].Text, "Concluída em")
	require.NotNil(t, f.tasks.Tasks[1].CompletedAt)
}

func TestRouter_MalformedSelector(t *testing.T) {
	// Setup
	f := newRouterFixture()

	// Execute
	replies := f.router.Handle(context.Background(), cb("status_abc"))

	// Assert
	require.Len(t, replies, 1)
	assert.Contains(t, replies[0].Toast, "desconhecida")
}

func TestRouter_ChangelogCreateFlow(t *testing.T) {
	// Setup
	f := newRouterFixture()
	ctx := context.Background()
	require.NoError(t, f.changelogs.CreateChangelogCategory("GNOME"))
	require.NoError(t, f.changelogs.CreateChangelogCategory("XFCE"))

	// Execute: pick the second category by index, then send the description
	replies := f.router.Handle(ctx, cb("newlog_idx_1"))
	require.Len(t, replies, 2)
	assert.Contains(t, replies[1].Text, "XFCE")

	replies = f.router.Handle(ctx, msg("Atualização do tema"))

	// Assert
	require.Len(t, replies, 1)
	assert.Contains(t, replies[0].Text, "Changelog criado com sucesso")
	require.Len(t, f.changelogs.Entries, 1)
	assert.Equal(t, "XFCE", f.changelogs.Entries[1].Category)
}

func TestRouter_ChangelogInvalidCategoryIndex(t *testing.T) {
	// Setup
	f := newRouterFixture()

	// Execute
	replies := f.router.Handle(context.Background(), cb("newlog_idx_9"))

	// Assert
	require.Len(t, replies, 1)
	assert.Contains(t, replies[0].Toast, "inválida")
	assert.True(t, replies[0].Alert)
}

func TestRouter_CommentCommand(t *testing.T) {
	// Setup
	f := newRouterFixture()
	ctx := context.Background()
	_, err := f.tasks.CreateTask(&domain.Task{Title: "Tarefa", AuthorID: 7})
	require.NoError(t, err)

	// Execute
	replies := f.router.Handle(ctx, cmd("comentar", "1 Já comecei a trabalhar nisso!"))

	// Assert
	require.Len(t, replies, 1)
	assert.Contains(t, replies[0].Text, "Comentário adicionado à tarefa #1")
}

func TestRouter_CommentCommand_MissingTask(t *testing.T) {
	// Setup
	f := newRouterFixture()

	// Execute
	replies := f.router.Handle(context.Background(), cmd("comentar", "99 oi"))

	// Assert
	require.Len(t, replies, 1)
	assert.Contains(t, replies[0].Text, "não encontrada")
}

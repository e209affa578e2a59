package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bigcommunity/taskbot/internal/domain"
	"github.com/bigcommunity/taskbot/internal/format"
	"github.com/bigcommunity/taskbot/internal/usecase"
)

const logCategory = "router"

// Usecases bundles everything the router can invoke.
type Usecases struct {
	NewTask                 *usecase.NewTask
	ChangeStatus            *usecase.ChangeStatus
	EditTask                *usecase.EditTask
	DeleteTask              *usecase.DeleteTask
	ShowTask                *usecase.ShowTask
	ListTasks               *usecase.ListTasks
	SearchTasks             *usecase.SearchTasks
	AddComment              *usecase.AddComment
	ListComments            *usecase.ListComments
	TaskStats               *usecase.TaskStatsUseCase
	NewCategory             *usecase.NewCategory
	ListCategories          *usecase.ListCategories
	AllowedTopic            *usecase.AllowedTopic
	SetAllowedTopic         *usecase.SetAllowedTopic
	NewChangelog            *usecase.NewChangelog
	ListChangelogs          *usecase.ListChangelogs
	ShowChangelog           *usecase.ShowChangelog
	TogglePin               *usecase.TogglePin
	EditChangelog           *usecase.EditChangelog
	DeleteChangelog         *usecase.DeleteChangelog
	ChangelogStats          *usecase.ChangelogStatsUseCase
	NewChangelogCategory    *usecase.NewChangelogCategory
	ListChangelogCategories *usecase.ListChangelogCategories
}

// Router dispatches chat events to use cases and renders replies. It owns
// the per-conversation state map.
type Router struct {
	uc       Usecases
	log      domain.Logger
	sessions *sessionStore
}

// NewRouter creates a new Router.
func NewRouter(uc Usecases, log domain.Logger) *Router {
	return &Router{uc: uc, log: log, sessions: newSessionStore()}
}

// Handle processes one inbound event and returns the replies to send.
// Callback queries bypass the topic gate; commands do not.
func (r *Router) Handle(ctx context.Context, ev Event) []Reply {
	switch {
	case ev.Callback != "":
		return r.handleCallback(ctx, ev)
	case ev.Command != "":
		return r.handleCommand(ctx, ev)
	default:
		return r.handleText(ctx, ev)
	}
}

func (r *Router) handleCommand(ctx context.Context, ev Event) []Reply {
	// Topic management commands stay reachable everywhere, otherwise a
	// wrong restriction could never be fixed.
	switch ev.Command {
	case "topicoid":
		return r.cmdTopicID(ev)
	case "settopico":
		return r.cmdSetTopic(ctx, ev)
	}

	if reply, ok := r.gateTopic(ctx, ev); !ok {
		return []Reply{reply}
	}

	switch ev.Command {
	case "start":
		return []Reply{textReply(format.Welcome(ev.UserName))}
	case "ajuda":
		return []Reply{textReply(format.Help())}
	case "menu":
		text, kb := format.MainMenu()
		return []Reply{keyboardReply(text, kb)}
	case "nova":
		return r.startDraft(ev)
	case "tarefas":
		return r.cmdTaskBoard(ctx)
	case "minhas":
		return r.cmdMyTasks(ctx, ev)
	case "buscar":
		return r.cmdSearch(ctx, ev)
	case "comentar":
		return r.cmdComment(ctx, ev)
	case "addcategoria":
		return r.cmdAddCategory(ctx, ev)
	case "stats":
		return r.cmdStats(ctx)
	case "changelog":
		text, kb := format.ChangelogMenu()
		return []Reply{keyboardReply(text, kb)}
	case "cancelar":
		r.sessions.clear(ev.ChatID, ev.UserID)
		return []Reply{textReply("❌ Operação cancelada.")}
	case "pular":
		return r.skipDraftStep(ctx, ev)
	default:
		return nil
	}
}

// gateTopic checks the allowed-topic restriction. The returned Reply is only
// meaningful when ok is false.
func (r *Router) gateTopic(ctx context.Context, ev Event) (Reply, bool) {
	out, err := r.uc.AllowedTopic.Execute(ctx)
	if err != nil {
		r.log.Error(logCategory, "allowed topic lookup: "+err.Error())
		return Reply{}, true
	}
	if !out.Restricted {
		return Reply{}, true
	}
	if ev.IsTopic && ev.ThreadID == out.ThreadID {
		return Reply{}, true
	}
	return textReply(format.TopicRestricted(out.Value)), false
}

func (r *Router) cmdTopicID(ev Event) []Reply {
	if !ev.IsTopic {
		return []Reply{textReply(format.TopicInfoUnavailable())}
	}
	return []Reply{textReply(format.TopicInfo(ev.ThreadID))}
}

func (r *Router) cmdSetTopic(ctx context.Context, ev Event) []Reply {
	arg := strings.TrimSpace(ev.Args)
	if arg == "" {
		return []Reply{textReply("⚠️ Use: `/settopico <ID_do_tópico>`\n\nPara descobrir o ID, use /topicoid dentro do tópico desejado.")}
	}

	in := usecase.SetAllowedTopicInput{}
	if arg == domain.SettingTopicOff {
		in.Off = true
	} else {
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return []Reply{textReply("❌ ID de tópico inválido")}
		}
		in.ThreadID = id
	}
	if err := r.uc.SetAllowedTopic.Execute(ctx, in); err != nil {
		return r.failure(err)
	}
	value := arg
	return []Reply{textReply(format.TopicConfigured(value))}
}

func (r *Router) cmdTaskBoard(ctx context.Context) []Reply {
	out, err := r.uc.ListTasks.Execute(ctx, usecase.ListTasksInput{})
	if err != nil {
		return r.failure(err)
	}
	if len(out.Tasks) == 0 {
		return []Reply{textReply("📋 Nenhuma tarefa cadastrada ainda.\n\nUse /nova para criar a primeira tarefa!")}
	}
	return []Reply{keyboardReply(format.TaskOverview(out.Tasks), format.StatusFilters())}
}

func (r *Router) cmdMyTasks(ctx context.Context, ev Event) []Reply {
	out, err := r.uc.ListTasks.Execute(ctx, usecase.ListTasksInput{AuthorID: &ev.UserID})
	if err != nil {
		return r.failure(err)
	}
	if len(out.Tasks) == 0 {
		return []Reply{textReply("📋 Você ainda não criou nenhuma tarefa.\n\nUse /nova para criar uma!")}
	}
	return []Reply{textReply(format.MyTasks(out.Tasks))}
}

func (r *Router) cmdSearch(ctx context.Context, ev Event) []Reply {
	term := strings.TrimSpace(ev.Args)
	if term == "" {
		return []Reply{textReply("Use: /buscar [termo]")}
	}
	out, err := r.uc.SearchTasks.Execute(ctx, usecase.SearchTasksInput{Term: term})
	if err != nil {
		return r.failure(err)
	}
	return []Reply{textReply(format.SearchResults(term, out.Tasks))}
}

func (r *Router) cmdComment(ctx context.Context, ev Event) []Reply {
	id, text, found := strings.Cut(strings.TrimSpace(ev.Args), " ")
	if !found || strings.TrimSpace(text) == "" {
		return []Reply{textReply("Use: `/comentar [id_tarefa] [comentário]`\n\n*Exemplo:* `/comentar 1 Já comecei a trabalhar nisso!`")}
	}
	taskID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return []Reply{textReply("❌ ID da tarefa inválido")}
	}
	if _, err := r.uc.ShowTask.Execute(ctx, usecase.ShowTaskInput{TaskID: taskID}); err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			return []Reply{textReply("❌ Tarefa não encontrada")}
		}
		return r.failure(err)
	}
	_, err = r.uc.AddComment.Execute(ctx, usecase.AddCommentInput{
		TaskID:     taskID,
		AuthorID:   ev.UserID,
		AuthorName: ev.UserName,
		Text:       text,
	})
	if err != nil {
		return r.failure(err)
	}
	return []Reply{textReply(fmt.Sprintf("✅ Comentário adicionado à tarefa #%d!", taskID))}
}

func (r *Router) cmdAddCategory(ctx context.Context, ev Event) []Reply {
	name := strings.TrimSpace(ev.Args)
	if name == "" {
		return []Reply{textReply("Use: /addcategoria [nome da categoria]")}
	}
	_, err := r.uc.NewCategory.Execute(ctx, usecase.NewCategoryInput{Name: name})
	if errors.Is(err, domain.ErrDuplicateCategory) {
		return []Reply{textReply(fmt.Sprintf("❌ Categoria '%s' já existe!", name))}
	}
	if err != nil {
		return r.failure(err)
	}
	return []Reply{textReply(fmt.Sprintf("✅ Categoria '%s' adicionada com sucesso!", name))}
}

func (r *Router) cmdStats(ctx context.Context) []Reply {
	out, err := r.uc.TaskStats.Execute(ctx)
	if err != nil {
		return r.failure(err)
	}
	return []Reply{textReply(format.TaskStats(out.Stats))}
}

// startDraft begins the task creation conversation.
func (r *Router) startDraft(ev Event) []Reply {
	sess := r.sessions.get(ev.ChatID, ev.UserID)
	sess.draft = &taskDraft{state: draftTitle}
	sess.pending = pendingInput{}
	return []Reply{textReply("📝 *Nova Tarefa*\n\n_Qual é o *título* da tarefa?_")}
}

// skipDraftStep handles /pular inside the creation flow.
func (r *Router) skipDraftStep(ctx context.Context, ev Event) []Reply {
	sess := r.sessions.get(ev.ChatID, ev.UserID)
	if sess.draft == nil {
		return nil
	}
	switch sess.draft.state {
	case draftDescription:
		sess.draft.description = ""
		return r.askCategory(ctx, sess)
	case draftImage:
		return r.finalizeDraft(ctx, ev, sess)
	default:
		return nil
	}
}

func (r *Router) handleText(ctx context.Context, ev Event) []Reply {
	sess := r.sessions.get(ev.ChatID, ev.UserID)

	if sess.draft != nil {
		return r.advanceDraft(ctx, ev, sess)
	}
	if sess.pending.kind != pendingNone {
		return r.applyPending(ctx, ev, sess)
	}
	return nil
}

// advanceDraft feeds one free-text (or photo) message into the creation flow.
func (r *Router) advanceDraft(ctx context.Context, ev Event, sess *session) []Reply {
	switch sess.draft.state {
	case draftTitle:
		if strings.TrimSpace(ev.Text) == "" {
			return []Reply{textReply("📝 *Nova Tarefa*\n\n_Qual é o *título* da tarefa?_")}
		}
		sess.draft.title = ev.Text
		sess.draft.state = draftDescription
		return []Reply{textReply("📄 _Agora, descreva o problema/tarefa com mais detalhes:_\n\n_(Ou envie /pular para pular esta etapa)_")}
	case draftDescription:
		sess.draft.description = ev.Text
		return r.askCategory(ctx, sess)
	case draftImage:
		if ev.PhotoID != "" {
			sess.draft.imageID = ev.PhotoID
		}
		return r.finalizeDraft(ctx, ev, sess)
	default:
		// Category and priority are answered through buttons.
		return nil
	}
}

func (r *Router) askCategory(ctx context.Context, sess *session) []Reply {
	out, err := r.uc.ListCategories.Execute(ctx)
	if err != nil {
		return r.failure(err)
	}
	sess.draft.state = draftCategory
	return []Reply{keyboardReply("📁 Selecione a categoria:", format.NewTaskCategoryPicker(out.Categories))}
}

func (r *Router) finalizeDraft(ctx context.Context, ev Event, sess *session) []Reply {
	draft := sess.draft
	out, err := r.uc.NewTask.Execute(ctx, usecase.NewTaskInput{
		Title:       draft.title,
		Description: draft.description,
		CategoryID:  &draft.categoryID,
		Priority:    draft.priority,
		ImageID:     draft.imageID,
		AuthorID:    ev.UserID,
		AuthorName:  ev.UserName,
	})
	if err != nil {
		return r.failure(err)
	}
	r.sessions.clear(ev.ChatID, ev.UserID)
	return []Reply{textReply(format.TaskCreated(out.Task))}
}

// applyPending routes a free-text message to the marked update and clears
// the marker.
func (r *Router) applyPending(ctx context.Context, ev Event, sess *session) []Reply {
	pending := sess.pending
	sess.pending = pendingInput{}

	switch pending.kind {
	case pendingEditTitle:
		_, err := r.uc.EditTask.Execute(ctx, usecase.EditTaskInput{TaskID: pending.taskID, Title: ev.Text})
		if err != nil {
			return r.failure(err)
		}
		return append(
			[]Reply{textReply(fmt.Sprintf("✅ Título da tarefa #%d atualizado!", pending.taskID))},
			r.taskView(ctx, pending.taskID, ev.UserID)...)
	case pendingEditDescription:
		_, err := r.uc.EditTask.Execute(ctx, usecase.EditTaskInput{TaskID: pending.taskID, Description: ev.Text})
		if err != nil {
			return r.failure(err)
		}
		return append(
			[]Reply{textReply(fmt.Sprintf("✅ Descrição da tarefa #%d atualizada!", pending.taskID))},
			r.taskView(ctx, pending.taskID, ev.UserID)...)
	case pendingComment:
		_, err := r.uc.AddComment.Execute(ctx, usecase.AddCommentInput{
			TaskID:     pending.taskID,
			AuthorID:   ev.UserID,
			AuthorName: ev.UserName,
			Text:       ev.Text,
		})
		if err != nil {
			return r.failure(err)
		}
		return append(
			[]Reply{textReply(fmt.Sprintf("✅ Comentário adicionado à tarefa #%d!", pending.taskID))},
			r.taskView(ctx, pending.taskID, ev.UserID)...)
	case pendingChangelogDescription:
		desc := ev.Text
		_, err := r.uc.EditChangelog.Execute(ctx, usecase.EditChangelogInput{ID: pending.entryID, Description: &desc})
		if err != nil {
			return r.failure(err)
		}
		return []Reply{textReply(fmt.Sprintf("✅ Descrição do changelog #%d atualizada!", pending.entryID))}
	case pendingNewChangelogDescription:
		out, err := r.uc.NewChangelog.Execute(ctx, usecase.NewChangelogInput{
			Category:    pending.category,
			Description: ev.Text,
			AuthorID:    ev.UserID,
			AuthorName:  ev.UserName,
		})
		if err != nil {
			return r.failure(err)
		}
		text, kb := format.ChangelogCreated(out.Entry)
		return []Reply{keyboardReply(text, kb)}
	case pendingNewChangelogCategory:
		err := r.uc.NewChangelogCategory.Execute(ctx, usecase.NewChangelogCategoryInput{Name: ev.Text})
		if errors.Is(err, domain.ErrDuplicateCategory) {
			return []Reply{keyboardReply(
				fmt.Sprintf("❌ Categoria *%s* já existe!", ev.Text),
				format.Keyboard{{{Label: "🔙 Menu", Data: "changelog_menu"}}})}
		}
		if err != nil {
			return r.failure(err)
		}
		return []Reply{keyboardReply(
			fmt.Sprintf("✅ Categoria *%s* criada com sucesso!", ev.Text),
			format.Keyboard{{
				{Label: "📝 Criar Changelog", Data: "changelog_novo"},
				{Label: "🔙 Menu", Data: "changelog_menu"},
			}})}
	case pendingNewTaskCategoryName:
		name := strings.TrimSpace(ev.Text)
		_, err := r.uc.NewCategory.Execute(ctx, usecase.NewCategoryInput{Name: name})
		if errors.Is(err, domain.ErrDuplicateCategory) {
			return []Reply{textReply(fmt.Sprintf("❌ Categoria '%s' já existe!", name))}
		}
		if err != nil {
			return r.failure(err)
		}
		return []Reply{textReply(fmt.Sprintf("✅ Categoria '%s' adicionada com sucesso!", name))}
	default:
		return nil
	}
}

// taskView fetches a task and renders its detail card with actions.
func (r *Router) taskView(ctx context.Context, taskID, viewerID int64) []Reply {
	out, err := r.uc.ShowTask.Execute(ctx, usecase.ShowTaskInput{TaskID: taskID})
	if errors.Is(err, domain.ErrTaskNotFound) {
		return []Reply{textReply("❌ Tarefa não encontrada.")}
	}
	if err != nil {
		return r.failure(err)
	}
	reply := Reply{
		Text:     format.TaskDetail(out.Task),
		Keyboard: format.TaskActions(out.Task, viewerID),
		PhotoID:  out.Task.ImageID,
	}
	return []Reply{reply}
}

// changelogView fetches an entry and renders its detail card with actions.
func (r *Router) changelogView(ctx context.Context, entryID, viewerID int64) []Reply {
	out, err := r.uc.ShowChangelog.Execute(ctx, usecase.ShowChangelogInput{ID: entryID})
	if errors.Is(err, domain.ErrChangelogNotFound) {
		return []Reply{textReply("❌ Changelog não encontrado.")}
	}
	if err != nil {
		return r.failure(err)
	}
	return []Reply{keyboardReply(format.ChangelogDetail(out.Entry), format.ChangelogActions(out.Entry, viewerID))}
}

// failure logs an unexpected error and renders a generic apology.
func (r *Router) failure(err error) []Reply {
	r.log.Error(logCategory, err.Error())
	return []Reply{textReply("❌ Algo deu errado. Tente novamente.")}
}

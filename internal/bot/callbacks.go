package bot

import (
	"context"
	"errors"
	"fmt"

	"github.com/bigcommunity/taskbot/internal/domain"
	"github.com/bigcommunity/taskbot/internal/format"
	"github.com/bigcommunity/taskbot/internal/usecase"
)

func (r *Router) handleCallback(ctx context.Context, ev Event) []Reply {
	action, ok := ParseSelector(ev.Callback)
	if !ok {
		r.log.Warn(logCategory, "malformed selector: "+ev.Callback)
		return []Reply{toastReply("❌ Ação desconhecida", false)}
	}

	switch action.Kind {
	case ActionIgnore:
		return nil
	case ActionMainMenu:
		text, kb := format.MainMenu()
		return []Reply{keyboardReply(text, kb)}
	case ActionTaskBoard:
		return r.cmdTaskBoard(ctx)
	case ActionMyTasks:
		return r.myTaskButtons(ctx, ev)
	case ActionTaskStats:
		return r.cmdStats(ctx)
	case ActionHelp:
		return []Reply{textReply(format.Help())}
	case ActionCategoryMenu:
		return r.categoryMenu(ctx)
	case ActionStatusFilter:
		return r.statusFilter(ctx, action.Status)
	case ActionCategoryFilter:
		return r.categoryFilter(ctx, action.CategoryID)
	case ActionViewTask:
		return r.taskView(ctx, action.TaskID, ev.UserID)
	case ActionChangeStatus:
		return r.changeStatus(ctx, ev, action)
	case ActionDeletePrompt:
		return r.deletePrompt(ctx, action.TaskID)
	case ActionDeleteConfirm:
		return r.deleteConfirm(ctx, ev, action.TaskID)
	case ActionDeleteCancel:
		return r.taskView(ctx, action.TaskID, ev.UserID)
	case ActionEditMenu:
		text, kb := format.TaskEditMenu(action.TaskID)
		return []Reply{keyboardReply(text, kb)}
	case ActionEditTitle:
		sess := r.sessions.get(ev.ChatID, ev.UserID)
		sess.pending = pendingInput{kind: pendingEditTitle, taskID: action.TaskID}
		return []Reply{
			toastReply("✍️ Digite o novo título...", false),
			textReply(fmt.Sprintf("📝 *Editar Título da Tarefa #%d*\n\n_Digite o novo título e envie:_", action.TaskID)),
		}
	case ActionEditDescription:
		sess := r.sessions.get(ev.ChatID, ev.UserID)
		sess.pending = pendingInput{kind: pendingEditDescription, taskID: action.TaskID}
		return []Reply{
			toastReply("✍️ Digite a nova descrição...", false),
			textReply(fmt.Sprintf("📄 *Editar Descrição da Tarefa #%d*\n\n_Digite a nova descrição e envie:_", action.TaskID)),
		}
	case ActionEditPriority:
		text, kb := format.PriorityPicker(action.TaskID)
		return []Reply{keyboardReply(text, kb)}
	case ActionSetPriority:
		return r.setPriority(ctx, ev, action)
	case ActionComments:
		return r.comments(ctx, action.TaskID)
	case ActionAddComment:
		sess := r.sessions.get(ev.ChatID, ev.UserID)
		sess.pending = pendingInput{kind: pendingComment, taskID: action.TaskID}
		return []Reply{
			toastReply("✍️ Digite seu comentário agora...", false),
			textReply(fmt.Sprintf("💬 *Comentar na Tarefa #%d*\n\n_Digite seu comentário abaixo e envie:_", action.TaskID)),
		}
	case ActionNewTaskStart:
		return r.startDraft(ev)
	case ActionNewTaskCategory:
		return r.draftCategoryChosen(ctx, ev, action.CategoryID)
	case ActionNewTaskPriority:
		return r.draftPriorityChosen(ev, action.Priority)
	case ActionNewTaskSkipImage:
		sess := r.sessions.get(ev.ChatID, ev.UserID)
		if sess.draft == nil || sess.draft.state != draftImage {
			return nil
		}
		return r.finalizeDraft(ctx, ev, sess)
	case ActionNewTaskCancel:
		r.sessions.clear(ev.ChatID, ev.UserID)
		return []Reply{textReply("❌ Criação de tarefa cancelada.")}
	case ActionNewCategoryPrompt:
		sess := r.sessions.get(ev.ChatID, ev.UserID)
		sess.pending = pendingInput{kind: pendingNewTaskCategoryName}
		return []Reply{
			toastReply("✍️ Digite o nome da nova categoria...", false),
			textReply("➕ *Nova Categoria*\n\n_Digite o nome da nova categoria:_"),
		}
	case ActionChangelogMenu:
		text, kb := format.ChangelogMenu()
		return []Reply{keyboardReply(text, kb)}
	case ActionChangelogNew:
		return r.changelogNew(ctx)
	case ActionChangelogNewCategory:
		sess := r.sessions.get(ev.ChatID, ev.UserID)
		sess.pending = pendingInput{kind: pendingNewChangelogCategory}
		return []Reply{
			toastReply("✍️ Digite o nome da nova categoria...", false),
			textReply("➕ *Nova Categoria de Changelog*\n\n_Digite o nome da nova categoria:_"),
		}
	case ActionChangelogPickCategory:
		return r.changelogCategoryChosen(ctx, ev, action.CategoryIdx)
	case ActionChangelogListAll:
		return r.changelogList(ctx, domain.ChangelogFilter{}, "📋 *Todos os Changelogs*")
	case ActionChangelogListPinned:
		pinned := true
		return r.changelogList(ctx, domain.ChangelogFilter{Pinned: &pinned}, "📌 *Changelogs Pinados*")
	case ActionChangelogCategories:
		return r.changelogCategoryFilterMenu(ctx)
	case ActionChangelogFilterCategory:
		return r.changelogFilterByIdx(ctx, action.CategoryIdx)
	case ActionChangelogStats:
		return r.changelogStats(ctx)
	case ActionChangelogView:
		return r.changelogView(ctx, action.EntryID, ev.UserID)
	case ActionChangelogPin:
		return r.changelogPin(ctx, ev, action.EntryID)
	case ActionChangelogEditMenu:
		text, kb := format.ChangelogEditMenu(action.EntryID)
		return []Reply{keyboardReply(text, kb)}
	case ActionChangelogEditDescription:
		sess := r.sessions.get(ev.ChatID, ev.UserID)
		sess.pending = pendingInput{kind: pendingChangelogDescription, entryID: action.EntryID}
		return []Reply{
			toastReply("✍️ Digite a nova descrição...", false),
			textReply(fmt.Sprintf("📝 *Editar Descrição - Changelog #%d*\n\n_Digite a nova descrição:_", action.EntryID)),
		}
	case ActionChangelogEditCategory:
		return r.changelogEditCategory(ctx, action.EntryID)
	case ActionChangelogSetCategory:
		return r.changelogSetCategory(ctx, ev, action)
	case ActionChangelogDeletePrompt:
		return r.changelogDeletePrompt(ctx, ev, action.EntryID)
	case ActionChangelogDeleteConfirm:
		return r.changelogDeleteConfirm(ctx, ev, action.EntryID)
	default:
		return nil
	}
}

func (r *Router) myTaskButtons(ctx context.Context, ev Event) []Reply {
	out, err := r.uc.ListTasks.Execute(ctx, usecase.ListTasksInput{AuthorID: &ev.UserID})
	if err != nil {
		return r.failure(err)
	}
	if len(out.Tasks) == 0 {
		return []Reply{keyboardReply(
			"📋 *Minhas Tarefas*\n\n❌ Você ainda não criou nenhuma tarefa.\n\nUse /nova para criar uma!",
			format.Keyboard{{{Label: "🔙 Voltar ao Menu", Data: "menu_voltar"}}})}
	}
	title := fmt.Sprintf("📋 Suas tarefas (%d)", len(out.Tasks))
	text, kb := format.TaskList(title, out.Tasks, "menu_voltar")
	return []Reply{keyboardReply(text, kb)}
}

func (r *Router) categoryMenu(ctx context.Context) []Reply {
	out, err := r.uc.ListCategories.Execute(ctx)
	if err != nil {
		return r.failure(err)
	}
	return []Reply{keyboardReply("*🖥️ Selecione uma categoria:*", format.CategoryPicker(out.Categories, "menu_voltar"))}
}

func (r *Router) statusFilter(ctx context.Context, status domain.Status) []Reply {
	out, err := r.uc.ListTasks.Execute(ctx, usecase.ListTasksInput{Status: status})
	if err != nil {
		return r.failure(err)
	}
	title := fmt.Sprintf("%s %s", format.StatusEmoji(status), status.Display())
	text, kb := format.TaskList(title, out.Tasks, "voltar_filtros")
	return []Reply{keyboardReply(text, kb)}
}

func (r *Router) categoryFilter(ctx context.Context, categoryID int64) []Reply {
	cats, err := r.uc.ListCategories.Execute(ctx)
	if err != nil {
		return r.failure(err)
	}
	name := "Desconhecida"
	for _, c := range cats.Categories {
		if c.ID == categoryID {
			name = c.Name
			break
		}
	}
	out, err := r.uc.ListTasks.Execute(ctx, usecase.ListTasksInput{CategoryID: &categoryID})
	if err != nil {
		return r.failure(err)
	}
	text, kb := format.TaskList("📁 Categoria: "+name, out.Tasks, "voltar_filtros")
	return []Reply{keyboardReply(text, kb)}
}

func (r *Router) changeStatus(ctx context.Context, ev Event, action Action) []Reply {
	out, err := r.uc.ChangeStatus.Execute(ctx, usecase.ChangeStatusInput{TaskID: action.TaskID, Status: action.Status})
	if errors.Is(err, domain.ErrTaskNotFound) {
		return []Reply{toastReply("❌ Tarefa não encontrada", true)}
	}
	if err != nil {
		return r.failure(err)
	}
	toast := fmt.Sprintf("%s Status atualizado para: %s", format.StatusEmoji(out.Task.Status), out.Task.Status.Display())
	return append([]Reply{toastReply(toast, false)}, r.taskView(ctx, action.TaskID, ev.UserID)...)
}

func (r *Router) setPriority(ctx context.Context, ev Event, action Action) []Reply {
	_, err := r.uc.EditTask.Execute(ctx, usecase.EditTaskInput{TaskID: action.TaskID, Priority: action.Priority})
	if errors.Is(err, domain.ErrTaskNotFound) {
		return []Reply{toastReply("❌ Tarefa não encontrada", true)}
	}
	if err != nil {
		return r.failure(err)
	}
	toast := fmt.Sprintf("✅ Prioridade atualizada para %s!", action.Priority)
	return append([]Reply{toastReply(toast, false)}, r.taskView(ctx, action.TaskID, ev.UserID)...)
}

func (r *Router) deletePrompt(ctx context.Context, taskID int64) []Reply {
	out, err := r.uc.ShowTask.Execute(ctx, usecase.ShowTaskInput{TaskID: taskID})
	if errors.Is(err, domain.ErrTaskNotFound) {
		return []Reply{textReply("❌ Tarefa não encontrada.")}
	}
	if err != nil {
		return r.failure(err)
	}
	text, kb := format.DeleteConfirm(out.Task)
	return []Reply{keyboardReply(text, kb)}
}

func (r *Router) deleteConfirm(ctx context.Context, ev Event, taskID int64) []Reply {
	out, err := r.uc.ShowTask.Execute(ctx, usecase.ShowTaskInput{TaskID: taskID})
	if errors.Is(err, domain.ErrTaskNotFound) {
		return []Reply{textReply("❌ Tarefa não encontrada.")}
	}
	if err != nil {
		return r.failure(err)
	}
	if !out.Task.IsAuthor(ev.UserID) {
		return []Reply{toastReply("❌ Você não tem permissão para deletar esta tarefa", true)}
	}
	if err := r.uc.DeleteTask.Execute(ctx, usecase.DeleteTaskInput{TaskID: taskID}); err != nil {
		return r.failure(err)
	}
	return []Reply{keyboardReply(
		fmt.Sprintf("✅ Tarefa #%d deletada com sucesso!", taskID),
		format.Keyboard{{{Label: "📋 Ver tarefas", Data: "voltar_lista"}}})}
}

func (r *Router) comments(ctx context.Context, taskID int64) []Reply {
	out, err := r.uc.ListComments.Execute(ctx, usecase.ListCommentsInput{TaskID: taskID})
	if err != nil {
		return r.failure(err)
	}
	text, kb := format.Comments(taskID, out.Comments)
	return []Reply{keyboardReply(text, kb)}
}

func (r *Router) draftCategoryChosen(ctx context.Context, ev Event, categoryID int64) []Reply {
	sess := r.sessions.get(ev.ChatID, ev.UserID)
	if sess.draft == nil || sess.draft.state != draftCategory {
		return nil
	}
	sess.draft.categoryID = categoryID
	sess.draft.state = draftPriority

	cats, err := r.uc.ListCategories.Execute(ctx)
	if err != nil {
		return r.failure(err)
	}
	name := "Desconhecida"
	for _, c := range cats.Categories {
		if c.ID == categoryID {
			name = c.Name
			break
		}
	}
	return []Reply{keyboardReply(
		fmt.Sprintf("✅ Categoria: *%s*\n\n⚡ Selecione a prioridade:", name),
		format.NewTaskPriorityPicker())}
}

func (r *Router) draftPriorityChosen(ev Event, priority domain.Priority) []Reply {
	sess := r.sessions.get(ev.ChatID, ev.UserID)
	if sess.draft == nil || sess.draft.state != draftPriority {
		return nil
	}
	sess.draft.priority = priority
	sess.draft.state = draftImage
	return []Reply{keyboardReply(
		fmt.Sprintf("✅ Prioridade: *%s*\n\n_🖼️ Envie uma imagem (opcional) ou clique em Pular:_", priority),
		format.Keyboard{{{Label: "⏭️ Pular", Data: "pular_imagem"}}})}
}

func (r *Router) changelogNew(ctx context.Context) []Reply {
	out, err := r.uc.ListChangelogCategories.Execute(ctx)
	if err != nil {
		return r.failure(err)
	}
	var kb format.Keyboard
	for idx, name := range out.Names {
		kb = append(kb, []format.Button{{Label: "📍 " + name, Data: fmt.Sprintf("newlog_idx_%d", idx)}})
	}
	kb = append(kb, []format.Button{{Label: "➕ Nova Categoria", Data: "changelog_nova_cat"}})
	kb = append(kb, []format.Button{{Label: "❌ Cancelar", Data: "changelog_menu"}})
	return []Reply{keyboardReply("📝 *Novo Changelog*\n\n_Selecione a categoria:_", kb)}
}

func (r *Router) changelogCategoryChosen(ctx context.Context, ev Event, idx int) []Reply {
	out, err := r.uc.ListChangelogCategories.Execute(ctx)
	if err != nil {
		return r.failure(err)
	}
	if idx >= len(out.Names) {
		return []Reply{toastReply("❌ Categoria inválida!", true)}
	}
	category := out.Names[idx]
	sess := r.sessions.get(ev.ChatID, ev.UserID)
	sess.pending = pendingInput{kind: pendingNewChangelogDescription, category: category}
	return []Reply{
		toastReply("✍️ Digite a descrição do changelog...", false),
		textReply(fmt.Sprintf("📝 *Novo Changelog - %s*\n\n_Digite a descrição da mudança:_", category)),
	}
}

func (r *Router) changelogList(ctx context.Context, filter domain.ChangelogFilter, title string) []Reply {
	out, err := r.uc.ListChangelogs.Execute(ctx, usecase.ListChangelogsInput{Filter: filter})
	if err != nil {
		return r.failure(err)
	}
	text, kb := format.ChangelogList(title, out.Entries)
	return []Reply{keyboardReply(text, kb)}
}

func (r *Router) changelogCategoryFilterMenu(ctx context.Context) []Reply {
	out, err := r.uc.ListChangelogCategories.Execute(ctx)
	if err != nil {
		return r.failure(err)
	}
	kb := format.ChangelogCategoryPicker(out.Names, "changelog_catidx_", "🔙 Voltar", "changelog_menu")
	return []Reply{keyboardReply("*🖥️ Filtrar por Categoria:*", kb)}
}

func (r *Router) changelogFilterByIdx(ctx context.Context, idx int) []Reply {
	out, err := r.uc.ListChangelogCategories.Execute(ctx)
	if err != nil {
		return r.failure(err)
	}
	if idx >= len(out.Names) {
		return []Reply{toastReply("❌ Categoria inválida!", true)}
	}
	category := out.Names[idx]
	return r.changelogList(ctx, domain.ChangelogFilter{Category: category}, fmt.Sprintf("📍 *Changelog - %s*", category))
}

func (r *Router) changelogStats(ctx context.Context) []Reply {
	out, err := r.uc.ChangelogStats.Execute(ctx)
	if err != nil {
		return r.failure(err)
	}
	return []Reply{keyboardReply(
		format.ChangelogStats(out.Stats),
		format.Keyboard{{{Label: "🔙 Voltar", Data: "changelog_menu"}}})}
}

func (r *Router) changelogPin(ctx context.Context, ev Event, entryID int64) []Reply {
	out, err := r.uc.TogglePin.Execute(ctx, usecase.TogglePinInput{ID: entryID})
	if errors.Is(err, domain.ErrChangelogNotFound) {
		return []Reply{toastReply("❌ Changelog não encontrado", true)}
	}
	if err != nil {
		return r.failure(err)
	}
	toast := "✅ Changelog despinado!"
	if out.Entry.Pinned {
		toast = "✅ Changelog pinado!"
	}
	return append([]Reply{toastReply(toast, false)}, r.changelogView(ctx, entryID, ev.UserID)...)
}

func (r *Router) changelogEditCategory(ctx context.Context, entryID int64) []Reply {
	out, err := r.uc.ListChangelogCategories.Execute(ctx)
	if err != nil {
		return r.failure(err)
	}
	prefix := fmt.Sprintf("changelog_setcatidx_%d_", entryID)
	kb := format.ChangelogCategoryPicker(out.Names, prefix, "❌ Cancelar", fmt.Sprintf("changelog_ver_%d", entryID))
	return []Reply{keyboardReply(
		fmt.Sprintf("📁 *Editar Categoria - Changelog #%d*\n\n_Selecione a nova categoria:_", entryID), kb)}
}

func (r *Router) changelogSetCategory(ctx context.Context, ev Event, action Action) []Reply {
	out, err := r.uc.ListChangelogCategories.Execute(ctx)
	if err != nil {
		return r.failure(err)
	}
	if action.CategoryIdx >= len(out.Names) {
		return []Reply{toastReply("❌ Categoria inválida!", true)}
	}
	category := out.Names[action.CategoryIdx]
	_, err = r.uc.EditChangelog.Execute(ctx, usecase.EditChangelogInput{ID: action.EntryID, Category: &category})
	if errors.Is(err, domain.ErrChangelogNotFound) {
		return []Reply{toastReply("❌ Changelog não encontrado", true)}
	}
	if err != nil {
		return r.failure(err)
	}
	toast := fmt.Sprintf("✅ Categoria atualizada para %s!", category)
	return append([]Reply{toastReply(toast, false)}, r.changelogView(ctx, action.EntryID, ev.UserID)...)
}

func (r *Router) changelogDeletePrompt(ctx context.Context, ev Event, entryID int64) []Reply {
	out, err := r.uc.ShowChangelog.Execute(ctx, usecase.ShowChangelogInput{ID: entryID})
	if errors.Is(err, domain.ErrChangelogNotFound) {
		return []Reply{textReply("❌ Changelog não encontrado.")}
	}
	if err != nil {
		return r.failure(err)
	}
	if !out.Entry.IsAuthor(ev.UserID) {
		return []Reply{toastReply("❌ Você não tem permissão para deletar este changelog", true)}
	}
	text, kb := format.ChangelogDeleteConfirm(out.Entry)
	return []Reply{keyboardReply(text, kb)}
}

func (r *Router) changelogDeleteConfirm(ctx context.Context, ev Event, entryID int64) []Reply {
	out, err := r.uc.ShowChangelog.Execute(ctx, usecase.ShowChangelogInput{ID: entryID})
	if errors.Is(err, domain.ErrChangelogNotFound) {
		return []Reply{textReply("❌ Changelog não encontrado.")}
	}
	if err != nil {
		return r.failure(err)
	}
	if !out.Entry.IsAuthor(ev.UserID) {
		return []Reply{toastReply("❌ Você não tem permissão para deletar este changelog", true)}
	}
	if err := r.uc.DeleteChangelog.Execute(ctx, usecase.DeleteChangelogInput{ID: entryID}); err != nil {
		return r.failure(err)
	}
	return []Reply{keyboardReply(
		fmt.Sprintf("✅ Changelog #%d deletado com sucesso!", entryID),
		format.Keyboard{{{Label: "🔙 Menu Changelog", Data: "changelog_menu"}}})}
}

package bot

import (
	"strconv"
	"strings"

	"github.com/bigcommunity/taskbot/internal/domain"
)

// ActionKind identifies what a pressed button asks for.
type ActionKind int

const (
	ActionUnknown ActionKind = iota
	ActionIgnore
	ActionMainMenu
	ActionTaskBoard
	ActionMyTasks
	ActionTaskStats
	ActionHelp
	ActionCategoryMenu
	ActionStatusFilter
	ActionCategoryFilter
	ActionViewTask
	ActionChangeStatus
	ActionDeletePrompt
	ActionDeleteConfirm
	ActionDeleteCancel
	ActionEditMenu
	ActionEditTitle
	ActionEditDescription
	ActionEditPriority
	ActionSetPriority
	ActionComments
	ActionAddComment
	ActionNewTaskStart
	ActionNewTaskCategory
	ActionNewTaskPriority
	ActionNewTaskSkipImage
	ActionNewTaskCancel
	ActionNewCategoryPrompt
	ActionChangelogMenu
	ActionChangelogNew
	ActionChangelogNewCategory
	ActionChangelogPickCategory
	ActionChangelogListAll
	ActionChangelogListPinned
	ActionChangelogCategories
	ActionChangelogFilterCategory
	ActionChangelogStats
	ActionChangelogView
	ActionChangelogPin
	ActionChangelogEditMenu
	ActionChangelogEditDescription
	ActionChangelogEditCategory
	ActionChangelogSetCategory
	ActionChangelogDeletePrompt
	ActionChangelogDeleteConfirm
)

// Action is a parsed button selector. Only the fields relevant to the Kind
// carry meaning; the rest are zero.
type Action struct {
	Status      domain.Status
	Priority    domain.Priority
	TaskID      int64
	EntryID     int64
	CategoryID  int64
	CategoryIdx int
	Kind        ActionKind
}

var exactSelectors = map[string]ActionKind{
	"ignore":                   ActionIgnore,
	"voltar_menu":              ActionMainMenu,
	"menu_voltar":              ActionMainMenu,
	"voltar_lista":             ActionTaskBoard,
	"voltar_filtros":           ActionTaskBoard,
	"filtro_refresh":           ActionTaskBoard,
	"menu_tarefas":             ActionTaskBoard,
	"menu_minhas":              ActionMyTasks,
	"menu_stats":               ActionTaskStats,
	"menu_ajuda":               ActionHelp,
	"menu_categorias":          ActionCategoryMenu,
	"filtro_categorias":        ActionCategoryMenu,
	"menu_nova":                ActionNewTaskStart,
	"pular_imagem":             ActionNewTaskSkipImage,
	"cancelar_nova":            ActionNewTaskCancel,
	"nova_categoria":           ActionNewCategoryPrompt,
	"changelog_menu":           ActionChangelogMenu,
	"changelog_novo":           ActionChangelogNew,
	"changelog_nova_cat":       ActionChangelogNewCategory,
	"changelog_listar_todos":   ActionChangelogListAll,
	"changelog_listar_pinados": ActionChangelogListPinned,
	"changelog_categorias":     ActionChangelogCategories,
	"changelog_stats":          ActionChangelogStats,
}

// ParseSelector decodes callback data into an Action. Each selector shape is
// matched exactly once, so overlapping prefixes cannot shadow each other.
// The boolean is false for malformed or unknown data.
func ParseSelector(data string) (Action, bool) {
	if kind, ok := exactSelectors[data]; ok {
		return Action{Kind: kind}, true
	}

	if rest, ok := strings.CutPrefix(data, "menu_filtro_"); ok {
		return statusAction(ActionStatusFilter, 0, rest)
	}
	if rest, ok := strings.CutPrefix(data, "filtro_status_"); ok {
		return statusAction(ActionStatusFilter, 0, rest)
	}
	if rest, ok := strings.CutPrefix(data, "cat_"); ok {
		return idAction(ActionCategoryFilter, rest)
	}
	if rest, ok := strings.CutPrefix(data, "ver_"); ok {
		return idAction(ActionViewTask, rest)
	}
	if rest, ok := strings.CutPrefix(data, "status_"); ok {
		id, tail, ok := splitID(rest)
		if !ok {
			return Action{}, false
		}
		return statusAction(ActionChangeStatus, id, tail)
	}
	if rest, ok := strings.CutPrefix(data, "deletar_"); ok {
		return idAction(ActionDeletePrompt, rest)
	}
	if rest, ok := strings.CutPrefix(data, "confirma_del_"); ok {
		return idAction(ActionDeleteConfirm, rest)
	}
	if rest, ok := strings.CutPrefix(data, "cancelar_del_"); ok {
		return idAction(ActionDeleteCancel, rest)
	}
	if rest, ok := strings.CutPrefix(data, "editar_"); ok {
		return idAction(ActionEditMenu, rest)
	}
	if rest, ok := strings.CutPrefix(data, "edit_titulo_"); ok {
		return idAction(ActionEditTitle, rest)
	}
	if rest, ok := strings.CutPrefix(data, "edit_desc_"); ok {
		return idAction(ActionEditDescription, rest)
	}
	if rest, ok := strings.CutPrefix(data, "edit_prior_"); ok {
		return idAction(ActionEditPriority, rest)
	}
	if rest, ok := strings.CutPrefix(data, "set_prior_"); ok {
		id, tail, ok := splitID(rest)
		if !ok {
			return Action{}, false
		}
		p := domain.Priority(tail)
		if !p.IsValid() {
			return Action{}, false
		}
		return Action{Kind: ActionSetPriority, TaskID: id, Priority: p}, true
	}
	if rest, ok := strings.CutPrefix(data, "comentarios_"); ok {
		return idAction(ActionComments, rest)
	}
	if rest, ok := strings.CutPrefix(data, "add_comentario_"); ok {
		return idAction(ActionAddComment, rest)
	}
	if rest, ok := strings.CutPrefix(data, "newcat_"); ok {
		return idAction(ActionNewTaskCategory, rest)
	}
	if rest, ok := strings.CutPrefix(data, "prior_"); ok {
		p := domain.Priority(rest)
		if !p.IsValid() {
			return Action{}, false
		}
		return Action{Kind: ActionNewTaskPriority, Priority: p}, true
	}
	if rest, ok := strings.CutPrefix(data, "newlog_idx_"); ok {
		return idxAction(ActionChangelogPickCategory, rest)
	}
	if rest, ok := strings.CutPrefix(data, "changelog_catidx_"); ok {
		return idxAction(ActionChangelogFilterCategory, rest)
	}
	if rest, ok := strings.CutPrefix(data, "changelog_ver_"); ok {
		return entryAction(ActionChangelogView, rest)
	}
	if rest, ok := strings.CutPrefix(data, "changelog_pin_"); ok {
		return entryAction(ActionChangelogPin, rest)
	}
	if rest, ok := strings.CutPrefix(data, "changelog_editar_"); ok {
		return entryAction(ActionChangelogEditMenu, rest)
	}
	if rest, ok := strings.CutPrefix(data, "changelog_edit_desc_"); ok {
		return entryAction(ActionChangelogEditDescription, rest)
	}
	if rest, ok := strings.CutPrefix(data, "changelog_edit_cat_"); ok {
		return entryAction(ActionChangelogEditCategory, rest)
	}
	if rest, ok := strings.CutPrefix(data, "changelog_setcatidx_"); ok {
		id, tail, ok := splitID(rest)
		if !ok {
			return Action{}, false
		}
		idx, err := strconv.Atoi(tail)
		if err != nil || idx < 0 {
			return Action{}, false
		}
		return Action{Kind: ActionChangelogSetCategory, EntryID: id, CategoryIdx: idx}, true
	}
	if rest, ok := strings.CutPrefix(data, "changelog_deletar_"); ok {
		return entryAction(ActionChangelogDeletePrompt, rest)
	}
	if rest, ok := strings.CutPrefix(data, "changelog_confirma_del_"); ok {
		return entryAction(ActionChangelogDeleteConfirm, rest)
	}

	return Action{}, false
}

func idAction(kind ActionKind, raw string) (Action, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return Action{}, false
	}
	a := Action{Kind: kind, TaskID: id}
	if kind == ActionCategoryFilter {
		a = Action{Kind: kind, CategoryID: id}
	}
	if kind == ActionNewTaskCategory {
		a = Action{Kind: kind, CategoryID: id}
	}
	return a, true
}

func entryAction(kind ActionKind, raw string) (Action, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return Action{}, false
	}
	return Action{Kind: kind, EntryID: id}, true
}

func idxAction(kind ActionKind, raw string) (Action, bool) {
	idx, err := strconv.Atoi(raw)
	if err != nil || idx < 0 {
		return Action{}, false
	}
	return Action{Kind: kind, CategoryIdx: idx}, true
}

func statusAction(kind ActionKind, taskID int64, raw string) (Action, bool) {
	s := domain.Status(raw)
	if !s.IsValid() {
		return Action{}, false
	}
	return Action{Kind: kind, TaskID: taskID, Status: s}, true
}

// splitID cuts a leading decimal id off "id_rest" shaped data. The tail may
// itself contain underscores (em_andamento).
func splitID(raw string) (int64, string, bool) {
	head, tail, found := strings.Cut(raw, "_")
	if !found {
		return 0, "", false
	}
	id, err := strconv.ParseInt(head, 10, 64)
	if err != nil {
		return 0, "", false
	}
	return id, tail, true
}

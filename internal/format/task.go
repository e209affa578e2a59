package format

import (
	"fmt"
	"strings"

	"github.com/bigcommunity/taskbot/internal/domain"
)

// TaskDetail renders the full card for a single task.
func TaskDetail(t *domain.Task) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*Tarefa #%d*\n\n", t.ID)
	fmt.Fprintf(&b, "📝 *Título:* %s\n", t.Title)
	fmt.Fprintf(&b, "📄 *Descrição:* %s\n\n", t.Description)
	fmt.Fprintf(&b, "📁 *Categoria:* `%s`\n", t.CategoryName)
	fmt.Fprintf(&b, "%s *Status:* `%s`\n", StatusEmoji(t.Status), t.Status.Display())
	fmt.Fprintf(&b, "%s *Prioridade:* `%s`\n", PriorityEmoji(t.Priority), t.Priority.Display())
	fmt.Fprintf(&b, "👤 *Criada por:* `%s`\n", t.AuthorName)
	fmt.Fprintf(&b, "📅 *Criada em:* `%s`\n", t.Created.Format(dateTimeLayout))
	if t.CompletedAt != nil {
		fmt.Fprintf(&b, "✅ *Concluída em:* `%s`\n", t.CompletedAt.Format(dateTimeLayout))
	}
	return b.String()
}

// TaskSummary renders the compact block used in plain-text listings.
func TaskSummary(t *domain.Task, showDescription bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*#%d - %s*\n", t.ID, t.Title)
	fmt.Fprintf(&b, "%s Status: %s\n", StatusEmoji(t.Status), t.Status.Display())
	fmt.Fprintf(&b, "%s Prioridade: %s\n", PriorityEmoji(t.Priority), t.Priority.Display())
	fmt.Fprintf(&b, "🖥️ Categoria: %s\n", t.CategoryName)
	fmt.Fprintf(&b, "👤 Criado por: %s\n", t.AuthorName)
	if t.AssigneeName != "" {
		fmt.Fprintf(&b, "👥 Atribuído: %s\n", t.AssigneeName)
	}
	fmt.Fprintf(&b, "📅 Data: %s\n", t.Created.Format(dateTimeLayout))
	if showDescription && t.Description != "" {
		fmt.Fprintf(&b, "\n📝 *Descrição:*\n%s\n", t.Description)
	}
	return b.String()
}

// TaskButtonLabel renders the one-line label used on list buttons.
func TaskButtonLabel(t *domain.Task) string {
	return fmt.Sprintf("%s %s #%d - %s",
		StatusEmoji(t.Status), PriorityEmoji(t.Priority), t.ID, truncate(t.Title, titleLabelLimit))
}

// MyTasks renders the /minhas listing, capped at ten tasks.
func MyTasks(tasks []*domain.Task) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📋 *Suas tarefas (%d)*\n\n", len(tasks))
	for _, t := range tasks[:min(len(tasks), ownTasksLimit)] {
		fmt.Fprintf(&b, "%s #%d - %s\n", StatusEmoji(t.Status), t.ID, t.Title)
		fmt.Fprintf(&b, "   %s %s | %s\n\n", PriorityEmoji(t.Priority), t.CategoryName, t.Status.Display())
	}
	if len(tasks) > ownTasksLimit {
		fmt.Fprintf(&b, "... e mais %d tarefas.\n", len(tasks)-ownTasksLimit)
	}
	return b.String()
}

// SearchResults renders the /buscar listing, capped at ten tasks.
func SearchResults(term string, tasks []*domain.Task) string {
	if len(tasks) == 0 {
		return fmt.Sprintf("Nenhuma tarefa encontrada para '%s'", term)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "*🔍 Resultados para '%s':*\n\n", term)
	for _, t := range tasks[:min(len(tasks), ownTasksLimit)] {
		b.WriteString(TaskSummary(t, false))
		b.WriteString(strings.Repeat("─", 30) + "\n")
	}
	if len(tasks) > ownTasksLimit {
		fmt.Fprintf(&b, "\n_...e mais %d resultados_", len(tasks)-ownTasksLimit)
	}
	return b.String()
}

// TaskList renders a titled button listing, capped at twenty tasks.
func TaskList(title string, tasks []*domain.Task, backData string) (string, Keyboard) {
	if len(tasks) == 0 {
		text := fmt.Sprintf("*%s*\n\n❌ Nenhuma tarefa encontrada.", title)
		return text, Keyboard{{{Label: "🔙 Voltar", Data: backData}}}
	}
	text := fmt.Sprintf("*%s*\n\n", title)
	var kb Keyboard
	for _, t := range tasks[:min(len(tasks), categoryListLimit)] {
		kb = append(kb, []Button{{Label: TaskButtonLabel(t), Data: fmt.Sprintf("ver_%d", t.ID)}})
	}
	kb = append(kb, []Button{{Label: "🔙 Voltar", Data: backData}})
	return text, kb
}

// TaskActions builds the action keyboard for a task detail view. Status
// changes are open to everyone; edit and delete only show for the author.
func TaskActions(t *domain.Task, viewerID int64) Keyboard {
	kb := Keyboard{
		{
			{Label: "⏳ Pendente", Data: fmt.Sprintf("status_%d_pendente", t.ID)},
			{Label: "🔄 Em Andamento", Data: fmt.Sprintf("status_%d_em_andamento", t.ID)},
		},
		{
			{Label: "✅ Concluir", Data: fmt.Sprintf("status_%d_concluido", t.ID)},
		},
	}
	if t.IsAuthor(viewerID) {
		kb = append(kb, []Button{
			{Label: "✏️ Editar", Data: fmt.Sprintf("editar_%d", t.ID)},
			{Label: "🗑️ Deletar", Data: fmt.Sprintf("deletar_%d", t.ID)},
		})
	}
	kb = append(kb, []Button{{Label: "💬 Ver Comentários", Data: fmt.Sprintf("comentarios_%d", t.ID)}})
	kb = append(kb, []Button{{Label: "⬅️ Voltar", Data: "voltar_menu"}})
	return kb
}

// TaskEditMenu builds the edit option keyboard for a task.
func TaskEditMenu(taskID int64) (string, Keyboard) {
	text := fmt.Sprintf("✏️ *Editar Tarefa #%d*\n\nSelecione o que deseja editar:", taskID)
	kb := Keyboard{
		{{Label: "📝 Editar Título", Data: fmt.Sprintf("edit_titulo_%d", taskID)}},
		{{Label: "📄 Editar Descrição", Data: fmt.Sprintf("edit_desc_%d", taskID)}},
		{{Label: "🎯 Editar Prioridade", Data: fmt.Sprintf("edit_prior_%d", taskID)}},
		{{Label: "⬅️ Cancelar", Data: fmt.Sprintf("ver_%d", taskID)}},
	}
	return text, kb
}

// PriorityPicker builds the priority selection keyboard for an existing task.
func PriorityPicker(taskID int64) (string, Keyboard) {
	text := fmt.Sprintf("🎯 *Editar Prioridade da Tarefa #%d*\n\nSelecione a nova prioridade:", taskID)
	kb := Keyboard{
		{{Label: "🔴 Alta", Data: fmt.Sprintf("set_prior_%d_alta", taskID)}},
		{{Label: "🟡 Média", Data: fmt.Sprintf("set_prior_%d_media", taskID)}},
		{{Label: "🟢 Baixa", Data: fmt.Sprintf("set_prior_%d_baixa", taskID)}},
		{{Label: "❌ Cancelar", Data: fmt.Sprintf("ver_%d", taskID)}},
	}
	return text, kb
}

// DeleteConfirm builds the task deletion confirmation prompt.
func DeleteConfirm(t *domain.Task) (string, Keyboard) {
	text := fmt.Sprintf("⚠️ *Confirmar exclusão*\n\nTem certeza que deseja deletar a tarefa:\n\n#%d - %s\n\nEsta ação não pode ser desfeita!", t.ID, t.Title)
	kb := Keyboard{{
		{Label: "✅ Sim, deletar", Data: fmt.Sprintf("confirma_del_%d", t.ID)},
		{Label: "❌ Cancelar", Data: fmt.Sprintf("cancelar_del_%d", t.ID)},
	}}
	return text, kb
}

// Comments renders a task's comment thread, oldest first.
func Comments(taskID int64, comments []*domain.Comment) (string, Keyboard) {
	var b strings.Builder
	fmt.Fprintf(&b, "💬 *Comentários da Tarefa #%d*\n\n", taskID)
	if len(comments) == 0 {
		b.WriteString("Nenhum comentário ainda.\n")
	} else {
		for _, c := range comments {
			fmt.Fprintf(&b, "👤 *%s* - `%s`\n", c.AuthorName, c.Created.Format(shortDateLayout))
			fmt.Fprintf(&b, "%s\n\n", c.Text)
		}
	}
	kb := Keyboard{
		{{Label: "➕ Adicionar Comentário", Data: fmt.Sprintf("add_comentario_%d", taskID)}},
		{{Label: "⬅️ Voltar", Data: fmt.Sprintf("ver_%d", taskID)}},
	}
	return b.String(), kb
}

// TaskStats renders the statistics report: per-status counts plus the
// categories that still have pending work.
func TaskStats(stats *domain.TaskStats) string {
	var b strings.Builder
	b.WriteString("📊 *Estatísticas do BigCommunity*\n\n")
	fmt.Fprintf(&b, "📋 Total de tarefas: `%d`\n\n", stats.Total)
	fmt.Fprintf(&b, "⏳ Pendentes: `%d`\n", stats.Pending)
	fmt.Fprintf(&b, "🔄 Em andamento: `%d`\n", stats.InProgress)
	fmt.Fprintf(&b, "✅ Resolvidas: `%d`\n", stats.Done)
	for _, cc := range stats.PendingByCategory {
		fmt.Fprintf(&b, "\n%s: `%d` pendente(s)", cc.Name, cc.Count)
	}
	return b.String()
}

// TaskOverview renders the /tarefas summary with one counter per status.
func TaskOverview(tasks []*domain.Task) string {
	var b strings.Builder
	b.WriteString("📋 *Tarefas do BigCommunity*\n\n")
	b.WriteString("_Use os filtros abaixo para organizar:_\n\n")
	counts := make(map[domain.Status]int)
	for _, t := range tasks {
		counts[t.Status]++
	}
	for _, s := range domain.AllStatuses() {
		fmt.Fprintf(&b, "%s %s: `%d`\n", StatusEmoji(s), s.Display(), counts[s])
	}
	return b.String()
}

// StatusFilters builds the filter keyboard shown under the task overview.
func StatusFilters() Keyboard {
	return Keyboard{
		{{Label: "📋 Todas", Data: "filtro_refresh"}},
		{
			{Label: "⏳ Pendentes", Data: "filtro_status_pendente"},
			{Label: "🔄 Em Andamento", Data: "filtro_status_em_andamento"},
		},
		{{Label: "✅ Concluídas", Data: "filtro_status_concluido"}},
		{{Label: "🖥️ Por Categoria", Data: "filtro_categorias"}},
	}
}

// CategoryPicker builds the keyboard for filtering tasks by category.
func CategoryPicker(categories []*domain.Category, backData string) Keyboard {
	var kb Keyboard
	for _, c := range categories {
		kb = append(kb, []Button{{Label: "🖥️ " + c.Name, Data: fmt.Sprintf("cat_%d", c.ID)}})
	}
	kb = append(kb, []Button{{Label: "➕ Nova Categoria", Data: "nova_categoria"}})
	kb = append(kb, []Button{{Label: "🔙 Voltar", Data: backData}})
	return kb
}

// NewTaskCategoryPicker builds the category keyboard for the creation flow.
func NewTaskCategoryPicker(categories []*domain.Category) Keyboard {
	var kb Keyboard
	for _, c := range categories {
		kb = append(kb, []Button{{Label: c.Name, Data: fmt.Sprintf("newcat_%d", c.ID)}})
	}
	kb = append(kb, []Button{{Label: "❌ Cancelar", Data: "cancelar_nova"}})
	return kb
}

// NewTaskPriorityPicker builds the priority keyboard for the creation flow.
func NewTaskPriorityPicker() Keyboard {
	return Keyboard{{
		{Label: "🔴 Alta", Data: "prior_alta"},
		{Label: "🟡 Média", Data: "prior_media"},
		{Label: "🟢 Baixa", Data: "prior_baixa"},
	}}
}

// TaskCreated renders the confirmation shown after the creation flow.
func TaskCreated(t *domain.Task) string {
	var b strings.Builder
	b.WriteString("✅ *Tarefa criada com sucesso!*\n\n")
	fmt.Fprintf(&b, "🆔 *ID:* #%d\n", t.ID)
	fmt.Fprintf(&b, "📝 *Título:* %s\n", t.Title)
	fmt.Fprintf(&b, "📁 *Categoria:* %s\n", t.CategoryName)
	fmt.Fprintf(&b, "⚡ *Prioridade:* %s %s\n", PriorityEmoji(t.Priority), t.Priority)
	fmt.Fprintf(&b, "👤 *Criada por:* %s\n", t.AuthorName)
	return b.String()
}

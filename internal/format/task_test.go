package format

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bigcommunity/taskbot/internal/domain"
)

func sampleTask() *domain.Task {
	created := time.Date(2024, 3, 10, 14, 30, 0, 0, time.Local)
	return &domain.Task{
		ID:           7,
		Title:        "Corrigir crash do painel",
		Description:  "Crash ao restaurar sessão",
		CategoryName: "XFCE",
		Status:       domain.StatusPending,
		Priority:     domain.PriorityHigh,
		AuthorID:     42,
		AuthorName:   "alice",
		Created:      created,
	}
}

func TestTaskDetail(t *testing.T) {
	// Setup
	task := sampleTask()

	// Execute
	text := TaskDetail(task)

	// Assert
	assert.Contains(t, text, "*Tarefa #7*")
	assert.Contains(t, text, "📝 *Título:* Corrigir crash do painel")
	assert.Contains(t, text, "⏳ *Status:* `Pendente`")
	assert.Contains(t, text, "🔴 *Prioridade:* `Alta`")
	assert.Contains(t, text, "📅 *Criada em:* `10/03/2024 14:30`")
	assert.NotContains(t, text, "Concluída em")
}

func TestTaskDetail_CompletedTimestamp(t *testing.T) {
	// Setup
	task := sampleTask()
	done := time.Date(2024, 3, 12, 9, 0, 0, 0, time.Local)
	task.Status = domain.StatusDone
	task.CompletedAt = &done

	// Execute
	text := TaskDetail(task)

	// Assert
	assert.Contains(t, text, "✅ *Concluída em:* `12/03/2024 09:00`")
}

func TestTaskDetail_Deterministic(t *testing.T) {
	// Setup
	task := sampleTask()

	// Execute & Assert
	assert.Equal(t, TaskDetail(task), TaskDetail(task))
}

func TestTaskSummary_HidesEmptyDescription(t *testing.T) {
	// Setup
	task := sampleTask()
	task.Description = ""

	// Execute
	text := TaskSummary(task, true)

	// Assert
	assert.NotContains(t, text, "Descrição")
}

func TestTaskButtonLabel_TruncatesTitle(t *testing.T) {
	// Setup
	task := sampleTask()
	task.Title = strings.Repeat("x", 50)

	// Execute
	label := TaskButtonLabel(task)

	// Assert
	assert.Contains(t, label, "#7 - "+strings.Repeat("x", 30))
	assert.NotContains(t, label, strings.Repeat("x", 31))
}

func TestStatusEmoji_Unknown(t *testing.T) {
	assert.Equal(t, "❓", StatusEmoji("arquivada"))
	assert.Equal(t, "⚪", PriorityEmoji("critica"))
}

func TestMyTasks_Truncation(t *testing.T) {
	// Setup
	var tasks []*domain.Task
	for i := 0; i < 13; i++ {
		task := sampleTask()
		task.ID = int64(i + 1)
		tasks = append(tasks, task)
	}

	// Execute
	text := MyTasks(tasks)

	// Assert
	assert.Contains(t, text, "Suas tarefas (13)")
	assert.Contains(t, text, "... e mais 3 tarefas.")
	assert.Contains(t, text, "#10 -")
	assert.NotContains(t, text, "#11 -")
}

func TestTaskActions_AuthorOnly(t *testing.T) {
	// Setup
	task := sampleTask()

	// Execute
	asAuthor := TaskActions(task, 42)
	asViewer := TaskActions(task, 99)

	// Assert
	require.Len(t, asAuthor, 5)
	assert.Equal(t, "✏️ Editar", asAuthor[2][0].Label)
	require.Len(t, asViewer, 4)
	for _, row := range asViewer {
		for _, b := range row {
			assert.NotContains(t, b.Label, "Editar")
			assert.NotContains(t, b.Label, "Deletar")
		}
	}
}

func TestTaskList_CapsAtTwenty(t *testing.T) {
	// Setup
	var tasks []*domain.Task
	for i := 0; i < 25; i++ {
		task := sampleTask()
		task.ID = int64(i + 1)
		tasks = append(tasks, task)
	}

	// Execute
	_, kb := TaskList("⏳ Pendentes", tasks, "menu_voltar")

	// Assert: 20 task buttons plus the back row
	assert.Len(t, kb, 21)
}

func TestTaskStats(t *testing.T) {
	// Setup
	stats := &domain.TaskStats{
		Total:      5,
		Pending:    2,
		InProgress: 1,
		Done:       2,
		PendingByCategory: []domain.CategoryCount{
			{Name: "GNOME", Count: 1},
			{Name: "XFCE", Count: 1},
		},
	}

	// Execute
	text := TaskStats(stats)

	// Assert
	assert.Contains(t, text, "📋 Total de tarefas: `5`")
	assert.Contains(t, text, "⏳ Pendentes: `2`")
	assert.Contains(t, text, "GNOME: `1` pendente(s)")
}

package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bigcommunity/taskbot/internal/domain"
)

func TestParseSelector_StatusWithUnderscore(t *testing.T) {
	// Execute
	a, ok := ParseSelector("status_12_em_andamento")

	// Assert
	require.True(t, ok)
	assert.Equal(t, ActionChangeStatus, a.Kind)
	assert.Equal(t, int64(12), a.TaskID)
	assert.Equal(t, domain.StatusInProgress, a.Status)
}

func TestParseSelector_OverlappingPrefixes(t *testing.T) {
	// edit_desc_ and editar_ must not shadow each other, same for the
	// changelog edit selectors.
	a, ok := ParseSelector("editar_3")
	require.True(t, ok)
	assert.Equal(t, ActionEditMenu, a.Kind)
	assert.Equal(t, int64(3), a.TaskID)

	a, ok = ParseSelector("edit_desc_3")
	require.True(t, ok)
	assert.Equal(t, ActionEditDescription, a.Kind)

	a, ok = ParseSelector("changelog_editar_9")
	require.True(t, ok)
	assert.Equal(t, ActionChangelogEditMenu, a.Kind)
	assert.Equal(t, int64(9), a.EntryID)

	a, ok = ParseSelector("changelog_edit_desc_9")
	require.True(t, ok)
	assert.Equal(t, ActionChangelogEditDescription, a.Kind)
}

func TestParseSelector_ExactSelectors(t *testing.T) {
	for data, kind := range map[string]ActionKind{
		"ignore":            ActionIgnore,
		"voltar_menu":       ActionMainMenu,
		"menu_voltar":       ActionMainMenu,
		"filtro_refresh":    ActionTaskBoard,
		"pular_imagem":      ActionNewTaskSkipImage,
		"changelog_menu":    ActionChangelogMenu,
		"changelog_novo":    ActionChangelogNew,
		"filtro_categorias": ActionCategoryMenu,
	} {
		a, ok := ParseSelector(data)
		require.True(t, ok, data)
		assert.Equal(t, kind, a.Kind, data)
	}
}

func TestParseSelector_SetPriority(t *testing.T) {
	// Execute
	a, ok := ParseSelector("set_prior_4_alta")

	// Assert
	require.True(t, ok)
	assert.Equal(t, ActionSetPriority, a.Kind)
	assert.Equal(t, int64(4), a.TaskID)
	assert.Equal(t, domain.PriorityHigh, a.Priority)
}

func TestParseSelector_ChangelogSetCategory(t *testing.T) {
	// Execute
	a, ok := ParseSelector("changelog_setcatidx_7_2")

	// Assert
	require.True(t, ok)
	assert.Equal(t, ActionChangelogSetCategory, a.Kind)
	assert.Equal(t, int64(7), a.EntryID)
	assert.Equal(t, 2, a.CategoryIdx)
}

func TestParseSelector_Malformed(t *testing.T) {
	for _, data := range []string{
		"",
		"garbage",
		"ver_abc",
		"status_12",
		"status_x_pendente",
		"status_12_arquivada",
		"set_prior_4_urgente",
		"prior_urgente",
		"newlog_idx_-1",
		"changelog_setcatidx_7",
		"cat_",
	} {
		_, ok := ParseSelector(data)
		assert.False(t, ok, data)
	}
}

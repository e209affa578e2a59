package format

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bigcommunity/taskbot/internal/domain"
)

const changelogPreviewLimit = 80

// ChangelogDetail renders the full card for one changelog entry.
func ChangelogDetail(e *domain.ChangelogEntry) string {
	var b strings.Builder
	if e.Pinned {
		b.WriteString("📌 ")
	}
	fmt.Fprintf(&b, "*Changelog #%d*\n\n", e.ID)
	fmt.Fprintf(&b, "📍 *Categoria:* `%s`\n", e.Category)
	fmt.Fprintf(&b, "👤 *Autor:* `%s`\n", e.AuthorName)
	fmt.Fprintf(&b, "📅 *Data:* `%s`\n\n", e.Created.Format(dateTimeLayout))
	fmt.Fprintf(&b, "📝 *Descrição:*\n%s", e.Description)
	return b.String()
}

// ChangelogLine renders the two-line listing block for one entry, with the
// description cut at eighty runes.
func ChangelogLine(e *domain.ChangelogEntry) string {
	pin := ""
	if e.Pinned {
		pin = "📌 "
	}
	desc := e.Description
	if len([]rune(desc)) > changelogPreviewLimit {
		desc = truncate(desc, changelogPreviewLimit) + "..."
	}
	return fmt.Sprintf("%s📍 `%s` - *%s*\n*%s:* %s\n\n",
		pin, e.Created.Format(dateTimeLayout), e.AuthorName, e.Category, desc)
}

// ChangelogButtonLabel renders the one-line label used on list buttons.
func ChangelogButtonLabel(e *domain.ChangelogEntry) string {
	pin := ""
	if e.Pinned {
		pin = "📌 "
	}
	return fmt.Sprintf("%s#%d - %s (%s)", pin, e.ID, e.Category, e.Created.Format(shortDateLayout))
}

// ChangelogList renders a titled listing, capped at fifteen entries, with
// one button per entry.
func ChangelogList(title string, entries []*domain.ChangelogEntry) (string, Keyboard) {
	if len(entries) == 0 {
		text := fmt.Sprintf("%s\n\n❌ Nenhum changelog encontrado.", title)
		return text, Keyboard{{{Label: "🔙 Voltar", Data: "changelog_menu"}}}
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", title)
	var kb Keyboard
	for _, e := range entries[:min(len(entries), changelogListLimit)] {
		b.WriteString(ChangelogLine(e))
		kb = append(kb, []Button{{
			Label: ChangelogButtonLabel(e),
			Data:  fmt.Sprintf("changelog_ver_%d", e.ID),
		}})
	}
	kb = append(kb, []Button{{Label: "🔙 Voltar", Data: "changelog_menu"}})
	return b.String(), kb
}

// ChangelogActions builds the action keyboard for a changelog detail view.
// Pinning is open to everyone; edit and delete only show for the author.
func ChangelogActions(e *domain.ChangelogEntry, viewerID int64) Keyboard {
	pinLabel := "📌 Pinar"
	if e.Pinned {
		pinLabel = "📍 Despinar"
	}
	kb := Keyboard{
		{{Label: pinLabel, Data: fmt.Sprintf("changelog_pin_%d", e.ID)}},
	}
	if e.IsAuthor(viewerID) {
		kb = append(kb, []Button{
			{Label: "✏️ Editar", Data: fmt.Sprintf("changelog_editar_%d", e.ID)},
			{Label: "🗑️ Deletar", Data: fmt.Sprintf("changelog_deletar_%d", e.ID)},
		})
	}
	kb = append(kb, []Button{{Label: "🔙 Voltar", Data: "changelog_menu"}})
	return kb
}

// ChangelogEditMenu builds the edit option keyboard for a changelog entry.
func ChangelogEditMenu(entryID int64) (string, Keyboard) {
	text := fmt.Sprintf("✏️ *Editar Changelog #%d*\n\n_Selecione o que deseja editar:_", entryID)
	kb := Keyboard{
		{{Label: "📝 Editar Descrição", Data: fmt.Sprintf("changelog_edit_desc_%d", entryID)}},
		{{Label: "📁 Editar Categoria", Data: fmt.Sprintf("changelog_edit_cat_%d", entryID)}},
		{{Label: "⬅️ Cancelar", Data: fmt.Sprintf("changelog_ver_%d", entryID)}},
	}
	return text, kb
}

// ChangelogDeleteConfirm builds the deletion confirmation prompt.
func ChangelogDeleteConfirm(e *domain.ChangelogEntry) (string, Keyboard) {
	var b strings.Builder
	b.WriteString("⚠️ *Confirmar exclusão*\n\n")
	b.WriteString("Tem certeza que deseja deletar o changelog:\n\n")
	fmt.Fprintf(&b, "#%d - %s\n", e.ID, e.Category)
	fmt.Fprintf(&b, "%s...\n\n", truncate(e.Description, 100))
	b.WriteString("Esta ação não pode ser desfeita!")
	kb := Keyboard{{
		{Label: "✅ Sim, deletar", Data: fmt.Sprintf("changelog_confirma_del_%d", e.ID)},
		{Label: "❌ Cancelar", Data: fmt.Sprintf("changelog_ver_%d", e.ID)},
	}}
	return b.String(), kb
}

// ChangelogCategoryPicker builds a category keyboard for changelog flows.
// Categories are addressed by index since names carry arbitrary characters.
func ChangelogCategoryPicker(names []string, dataPrefix, cancelLabel, cancelData string) Keyboard {
	var kb Keyboard
	for idx, name := range names {
		kb = append(kb, []Button{{
			Label: "📍 " + name,
			Data:  fmt.Sprintf("%s%d", dataPrefix, idx),
		}})
	}
	kb = append(kb, []Button{{Label: cancelLabel, Data: cancelData}})
	return kb
}

// ChangelogCreated renders the confirmation shown after publishing an entry.
func ChangelogCreated(e *domain.ChangelogEntry) (string, Keyboard) {
	var b strings.Builder
	b.WriteString("✅ *Changelog criado com sucesso!*\n\n")
	fmt.Fprintf(&b, "📍 *Categoria:* %s\n", e.Category)
	fmt.Fprintf(&b, "📝 *Descrição:* %s\n", e.Description)
	fmt.Fprintf(&b, "👤 *Por:* %s", e.AuthorName)
	kb := Keyboard{
		{{Label: "📝 Ver Changelog", Data: fmt.Sprintf("changelog_ver_%d", e.ID)}},
		{{Label: "🔙 Menu Changelog", Data: "changelog_menu"}},
	}
	return b.String(), kb
}

// ChangelogStats renders the changelog statistics report. Map breakdowns
// are printed in sorted key order so the output is stable.
func ChangelogStats(stats *domain.ChangelogStats) string {
	var b strings.Builder
	b.WriteString("📊 *Estatísticas de Changelog*\n\n")
	fmt.Fprintf(&b, "📋 *Total de changelogs:* `%d`\n", stats.Total)
	fmt.Fprintf(&b, "📌 *Pinados:* `%d`\n\n", stats.Pinned)
	if len(stats.ByCategory) > 0 {
		b.WriteString("*📁 Por Categoria:*\n")
		for _, name := range sortedKeys(stats.ByCategory) {
			fmt.Fprintf(&b, "• %s: `%d`\n", name, stats.ByCategory[name])
		}
		b.WriteString("\n")
	}
	if len(stats.ByAuthor) > 0 {
		b.WriteString("*👥 Por Autor:*\n")
		for _, name := range sortedKeys(stats.ByAuthor) {
			fmt.Fprintf(&b, "• %s: `%d`\n", name, stats.ByAuthor[name])
		}
	}
	return b.String()
}

func sortedKeys(m map[string]int64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

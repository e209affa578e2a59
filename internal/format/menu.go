package format

import "fmt"

// Welcome renders the /start greeting.
func Welcome(firstName string) string {
	return fmt.Sprintf(`👋 Olá %s!

Bem-vindo ao *BigCommunity Task Manager*! 🚀

Este bot ajuda a organizar as tarefas da equipe de desenvolvimento.

*Comandos disponíveis:*
/nova - Criar nova tarefa
/tarefas - Ver todas as tarefas
/minhas - Ver suas tarefas
/buscar - Buscar tarefas
/changelog - Gerenciar mudanças do projeto
/stats - Ver estatísticas
/menu - Abrir menu principal
/topicoid - Ver ID do tópico atual
/settopico - Configurar tópico permitido
/ajuda - Ver esta mensagem

Use os botões inline para interagir com as tarefas! ✨`, firstName)
}

// Help renders the /ajuda text.
func Help() string {
	return `*📋 Comandos disponíveis:*

/nova - Criar uma nova tarefa
/tarefas - Listar todas as tarefas
/minhas - Ver apenas suas tarefas
/buscar - Buscar tarefas por termo
/changelog - Gerenciar mudanças do projeto
/stats - Ver estatísticas do projeto
/menu - Abrir menu principal
/topicoid - Ver ID do tópico atual
/settopico - Configurar tópico permitido
/ajuda - Mostrar esta mensagem

*🎯 Como usar:*

1️⃣ *Criar tarefa:* Use /nova e siga os passos
2️⃣ *Ver tarefas:* Use /tarefas e filtre por categoria/status
3️⃣ *Gerenciar:* Clique na tarefa para ver opções
4️⃣ *Atualizar status:* Use os botões 🔄 ou ✅
5️⃣ *Editar/Deletar:* Botões ✏️ e 🗑️

*📌 Configurar Tópico:*
1️⃣ Entre no tópico desejado e use /topicoid
2️⃣ Copie o ID do tópico mostrado
3️⃣ Use /settopico [ID] para configurar
4️⃣ Para desabilitar: /settopico off

*🏷️ Categorias:*
• XFCE, Cinnamon, GNOME, Geral

*📊 Status:*
• ⏳ Pendente
• 🔄 Em andamento
• ✅ Resolvido

*⚡ Prioridades:*
• 🔴 Alta
• 🟡 Média
• 🟢 Baixa`
}

// MainMenu renders the /menu navigation screen.
func MainMenu() (string, Keyboard) {
	text := "🏠 *Menu Principal - BigCommunity Task Manager*\n\n_Escolha uma das opções abaixo para navegar:_"
	kb := Keyboard{
		{{Label: "➕ Nova Tarefa", Data: "menu_nova"}},
		{
			{Label: "📋 Todas as Tarefas", Data: "menu_tarefas"},
			{Label: "👤 Minhas Tarefas", Data: "menu_minhas"},
		},
		{
			{Label: "📝 Changelog", Data: "changelog_menu"},
			{Label: "📊 Estatísticas", Data: "menu_stats"},
		},
		{
			{Label: "⏳ Pendentes", Data: "menu_filtro_pendente"},
			{Label: "🔄 Em Andamento", Data: "menu_filtro_em_andamento"},
		},
		{
			{Label: "✅ Concluídas", Data: "menu_filtro_concluido"},
			{Label: "🖥️ Por Categoria", Data: "menu_categorias"},
		},
		{{Label: "❓ Ajuda", Data: "menu_ajuda"}},
	}
	return text, kb
}

// ChangelogMenu renders the /changelog navigation screen.
func ChangelogMenu() (string, Keyboard) {
	text := "📝 *Changelog - BigCommunity*\n\n_Gerencie as mudanças e atualizações do projeto:_"
	kb := Keyboard{
		{{Label: "📝 Novo Changelog", Data: "changelog_novo"}},
		{
			{Label: "📋 Todos", Data: "changelog_listar_todos"},
			{Label: "📌 Pinados", Data: "changelog_listar_pinados"},
		},
		{
			{Label: "🖥️ Por Categoria", Data: "changelog_categorias"},
			{Label: "📊 Estatísticas", Data: "changelog_stats"},
		},
		{{Label: "🔙 Voltar ao Menu", Data: "menu_voltar"}},
	}
	return text, kb
}

// TopicRestricted renders the refusal sent outside the allowed topic.
func TopicRestricted(topicValue string) string {
	return fmt.Sprintf("⚠️ *Uso restrito*\n\nEste bot só funciona no tópico configurado (ID: `%s`).\nPor favor, use os comandos dentro do tópico apropriado.", topicValue)
}

// TopicInfo renders the /topicoid reply inside a topic.
func TopicInfo(threadID int64) string {
	return fmt.Sprintf("🔍 *Informações do Tópico*\n\n📌 ID do Tópico: `%d`\n\n_Use este ID para configurar o bot com /settopico %d_", threadID, threadID)
}

// TopicInfoUnavailable renders the /topicoid reply outside a topic.
func TopicInfoUnavailable() string {
	return "⚠️ *Este não é um tópico*\n\nEste comando só funciona dentro de um tópico do grupo.\nPor favor, execute-o dentro do tópico desejado."
}

// TopicConfigured renders the /settopico confirmation.
func TopicConfigured(value string) string {
	return fmt.Sprintf("✅ *Tópico configurado com sucesso!*\n\n📌 ID do tópico permitido: `%s`\n\nO bot agora só responderá comandos neste tópico.\nPara desabilitar, use: `/settopico off`", value)
}

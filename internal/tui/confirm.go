package tui

type confirmModel struct {
	message string
}

func (m confirmModel) View() string {
	name := m.message
	if name == "" {
		name = unnamedField
	}
	content := "Удалить поле \"" + name + "\"?\n\n"
	content += "y да    n нет"
	return overlayBoxStyle.Render(content)
}

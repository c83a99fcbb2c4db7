package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	formFieldName = iota
	formFieldValue
	formFieldCount
)

type formFieldModel struct {
	inputs   []textinput.Model
	focus    int
	maskable bool
	err      string
}

func newFormFieldModel(width int) formFieldModel {
	inputs := make([]textinput.Model, formFieldCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Prompt = ""
		inputs[i].Width = width
	}
	inputs[formFieldName].Focus()

	return formFieldModel{inputs: inputs}
}

func (m formFieldModel) name() string  { return m.inputs[formFieldName].Value() }
func (m formFieldModel) value() string { return m.inputs[formFieldValue].Value() }

func (m formFieldModel) nextFocus(step int) (formFieldModel, tea.Cmd) {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + step + formFieldCount) % formFieldCount
	return m, m.inputs[m.focus].Focus()
}

func (m formFieldModel) toggleMaskable() formFieldModel {
	m.maskable = !m.maskable
	if m.maskable {
		m.inputs[formFieldValue].EchoMode = textinput.EchoPassword
		m.inputs[formFieldValue].EchoCharacter = '*'
	} else {
		m.inputs[formFieldValue].EchoMode = textinput.EchoNormal
	}
	return m
}

func (m formFieldModel) update(msg tea.Msg) (formFieldModel, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m formFieldModel) View() string {
	protected := "нет"
	if m.maskable {
		protected = "да"
	}

	out := titleStyle.Render("Новое поле") + "\n\n"
	out += "Название:  [" + m.inputs[formFieldName].View() + "]\n"
	out += "Значение:  [" + m.inputs[formFieldValue].View() + "]\n"
	out += "Скрывать:  " + protected + "\n"
	if m.err != "" {
		out += "\n" + errorStyle.Render(m.err) + "\n"
	}
	out += "\n" + helpStyle.Render("esc отмена  tab следующее поле  ctrl+p скрывать  enter сохранить")
	return out
}

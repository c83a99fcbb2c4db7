package tui

import (
	"strings"

	"github.com/MKhiriev/go-pass-fields/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	rowIndent     = "  "
	emptyValue    = "—"
	unnamedField  = "(без имени)"
	minValueWidth = 8
)

// clipboardWrite is replaced in tests.
var clipboardWrite = clipboard.WriteAll

// HeightObserver is notified when a row's rendered height may have changed
// and the hosting list must re-measure it. The notification carries no
// payload and is delivered synchronously on the caller's goroutine.
type HeightObserver interface {
	FieldRowHeightChanged()
}

// HeightObserverFunc adapts a plain function to [HeightObserver].
type HeightObserverFunc func()

// FieldRowHeightChanged calls f.
func (f HeightObserverFunc) FieldRowHeightChanged() { f() }

// FieldRow displays and edits one custom field.
// It holds a non-owning reference to the field; the record owns it.
//
// Signal policy: every effective mask toggle of a maskable field raises
// exactly one height-changed notification. Toggling a non-maskable field is a
// no-op and raises none. Any other change (entering or leaving edit mode,
// committing a value, resizing) raises one notification only when the
// rendered height actually changed.
type FieldRow struct {
	field    *models.CustomField
	observer HeightObserver
	mask     string
	width    int

	editing bool
	input   textinput.Model
}

// NewFieldRow creates a row for field. observer may be nil.
func NewFieldRow(field *models.CustomField, observer HeightObserver, mask string, width int) *FieldRow {
	input := textinput.New()
	input.Prompt = ""
	input.EchoCharacter = '*'

	r := &FieldRow{
		field:    field,
		observer: observer,
		mask:     mask,
		width:    width,
		input:    input,
	}
	r.input.Width = r.valueWidth()
	return r
}

// Field returns the displayed field.
func (r *FieldRow) Field() *models.CustomField {
	return r.field
}

// Editing reports whether the value editor is open.
func (r *FieldRow) Editing() bool {
	return r.editing
}

// ToggleMask flips the masked state of a maskable field and notifies the
// observer once. It reports false and does nothing for non-maskable fields.
func (r *FieldRow) ToggleMask() bool {
	if !r.field.IsMaskable() {
		return false
	}

	r.field.SetMasked(!r.field.IsMasked())
	if r.editing {
		r.applyEchoMode()
	}
	r.notify()
	return true
}

// SetWidth changes the row width. Revealed values re-wrap at the new width.
func (r *FieldRow) SetWidth(width int) {
	r.remeasure(func() {
		r.width = width
		r.input.Width = r.valueWidth()
	})
}

// StartEdit opens the value editor pre-filled with the current value.
// A hidden value is edited with echo masking.
func (r *FieldRow) StartEdit() tea.Cmd {
	if r.editing {
		return nil
	}

	var cmd tea.Cmd
	r.remeasure(func() {
		r.editing = true
		r.input.SetValue(r.field.GetValue())
		r.input.CursorEnd()
		r.applyEchoMode()
		cmd = r.input.Focus()
	})
	return cmd
}

// CancelEdit closes the editor and keeps the stored value.
func (r *FieldRow) CancelEdit() {
	if !r.editing {
		return
	}
	r.remeasure(r.closeEditor)
}

// CommitEdit stores the edited value and closes the editor.
// It reports whether the value changed.
func (r *FieldRow) CommitEdit() bool {
	if !r.editing {
		return false
	}
	return r.CommitValue(r.input.Value())
}

// CommitValue stores v as the field value, closing the editor if it is open.
// It reports whether the value changed.
func (r *FieldRow) CommitValue(v string) bool {
	changed := v != r.field.GetValue()
	r.remeasure(func() {
		r.field.SetValue(v)
		r.closeEditor()
	})
	return changed
}

// Update handles a key press addressed to this row. The returned command
// reports the outcome to the hosting list.
func (r *FieldRow) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if r.editing {
			var cmd tea.Cmd
			r.input, cmd = r.input.Update(msg)
			return cmd
		}
		return nil
	}

	if r.editing {
		switch {
		case key.Matches(keyMsg, keys.enter):
			if r.CommitEdit() {
				return emit(fieldChangedMsg{})
			}
			return nil
		case key.Matches(keyMsg, keys.esc):
			r.CancelEdit()
			return nil
		}

		var cmd tea.Cmd
		r.input, cmd = r.input.Update(msg)
		return cmd
	}

	switch {
	case key.Matches(keyMsg, keys.toggle):
		if !r.ToggleMask() {
			return emit(statusMsg{text: "Поле нельзя скрыть"})
		}
		return nil
	case key.Matches(keyMsg, keys.enter):
		return r.StartEdit()
	case key.Matches(keyMsg, keys.copy):
		return r.copyValue()
	}

	return nil
}

// View renders the field name on the first line followed by either the mask
// on a single line, the editor, or the revealed value wrapped to the row
// width.
func (r *FieldRow) View() string {
	var b strings.Builder

	name := r.field.GetName()
	if name == "" {
		name = unnamedField
	}
	b.WriteString(fieldNameStyle.Render(name))
	if r.field.IsMaskable() {
		badge := "[открыто]"
		if r.field.IsHidden() {
			badge = "[скрыто]"
		}
		b.WriteString(" ")
		b.WriteString(helpStyle.Render(badge))
	}
	b.WriteString("\n")

	switch {
	case r.editing:
		b.WriteString(rowIndent + "[" + r.input.View() + "]")
	case r.field.IsHidden():
		b.WriteString(rowIndent + r.mask)
	default:
		b.WriteString(indentLines(r.wrappedValue(), rowIndent))
	}

	return b.String()
}

// Height returns the number of lines View occupies.
func (r *FieldRow) Height() int {
	return lipgloss.Height(r.View())
}

func (r *FieldRow) wrappedValue() string {
	value := r.field.GetValue()
	if value == "" {
		return emptyValue
	}

	lines := strings.Split(lipgloss.NewStyle().Width(r.valueWidth()).Render(value), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Join(lines, "\n")
}

func (r *FieldRow) valueWidth() int {
	w := r.width - len(rowIndent)
	if w < minValueWidth {
		return minValueWidth
	}
	return w
}

func (r *FieldRow) applyEchoMode() {
	if r.field.IsHidden() {
		r.input.EchoMode = textinput.EchoPassword
		return
	}
	r.input.EchoMode = textinput.EchoNormal
}

func (r *FieldRow) closeEditor() {
	r.editing = false
	r.input.Blur()
	r.input.Reset()
}

func (r *FieldRow) copyValue() tea.Cmd {
	value := r.field.GetValue()
	if value == "" {
		return emit(statusMsg{text: "Нечего копировать"})
	}
	if err := clipboardWrite(value); err != nil {
		return emit(statusMsg{text: "Ошибка копирования: " + err.Error(), isErr: true})
	}
	return emit(statusMsg{text: "Скопировано"})
}

// remeasure applies change and notifies the observer if the rendered
// height differs afterwards.
func (r *FieldRow) remeasure(change func()) {
	before := r.Height()
	change()
	if r.Height() != before {
		r.notify()
	}
}

func (r *FieldRow) notify() {
	if r.observer != nil {
		r.observer.FieldRowHeightChanged()
	}
}

func indentLines(s, indent string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = indent + line
	}
	return strings.Join(lines, "\n")
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

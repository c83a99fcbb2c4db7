package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-pass-fields/internal/config"
	"github.com/MKhiriev/go-pass-fields/internal/logger"
	"github.com/MKhiriev/go-pass-fields/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type listMode int

const (
	modeBrowse listMode = iota
	modeSearch
	modeAdd
	modeConfirmDelete
	modeError
)

const (
	statusTTL    = 3 * time.Second
	cursorPrefix = "> "
	blankPrefix  = "  "
	// title, dividers, status, hotkeys and padding around the viewport.
	chromeLines = 10
	chromeCols  = 8
)

// FieldsModel is the terminal list hosting one [FieldRow] per custom field
// of the edited record. It re-measures its rows whenever one of them raises
// a height-changed notification.
type FieldsModel struct {
	ctx     context.Context
	service service.FieldService
	logger  *logger.Logger
	cfg     config.UI

	rows       []*FieldRow
	heights    []int
	offsets    []int
	idx        int
	rowWidth   int
	viewport   viewport.Model
	remeasures int

	mode   listMode
	search textinput.Model
	form   formFieldModel

	status string
	errMsg string
}

// NewFieldsModel builds the list over the working collection of svc.
func NewFieldsModel(ctx context.Context, svc service.FieldService, cfg config.UI, log *logger.Logger) *FieldsModel {
	search := textinput.New()
	search.Prompt = "/"
	search.Placeholder = "название поля"

	m := &FieldsModel{
		ctx:      ctx,
		service:  svc,
		logger:   log,
		cfg:      cfg,
		rowWidth: cfg.Width,
		viewport: viewport.New(cfg.Width+len(cursorPrefix), cfg.Height),
		search:   search,
	}
	m.rebuildRows()
	return m
}

// FieldRowHeightChanged implements [HeightObserver].
func (m *FieldsModel) FieldRowHeightChanged() {
	m.remeasures++
	m.relayout()
}

func (m *FieldsModel) Init() tea.Cmd {
	return nil
}

func (m *FieldsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case fieldChangedMsg:
		m.service.MarkModified()
		m.relayout()
		return m, m.setStatus("Поле изменено")
	case statusMsg:
		if msg.isErr {
			m.showError(msg.text)
			return m, nil
		}
		return m, m.setStatus(msg.text)
	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.forward(msg)
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case modeError:
		if key.Matches(keyMsg, keys.enter) || key.Matches(keyMsg, keys.esc) {
			m.mode = modeBrowse
			m.errMsg = ""
		}
		return m, nil
	case modeConfirmDelete:
		return m.updateConfirmDelete(keyMsg)
	case modeSearch:
		return m.updateSearch(keyMsg)
	case modeAdd:
		return m.updateAdd(keyMsg)
	}

	return m.updateBrowse(keyMsg)
}

func (m *FieldsModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	row := m.current()
	if row != nil && row.Editing() {
		cmd := row.Update(msg)
		m.relayout()
		return m, cmd
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		m.selectRow(m.idx - 1)
	case key.Matches(msg, keys.down):
		m.selectRow(m.idx + 1)
	case key.Matches(msg, keys.moveUp):
		m.moveRow(-1)
	case key.Matches(msg, keys.moveDown):
		m.moveRow(1)
	case key.Matches(msg, keys.newItem):
		m.mode = modeAdd
		m.form = newFormFieldModel(m.rowWidth - len(rowIndent))
		return m, textinput.Blink
	case key.Matches(msg, keys.delete):
		if row == nil {
			return m, m.setStatus("Нет полей")
		}
		m.mode = modeConfirmDelete
	case key.Matches(msg, keys.search):
		m.mode = modeSearch
		m.search.Reset()
		return m, m.search.Focus()
	case key.Matches(msg, keys.save):
		return m, m.save()
	case key.Matches(msg, keys.toggle) && row != nil && row.Field().IsMaskable():
		// the masked flag is part of the stored field
		row.ToggleMask()
		m.service.MarkModified()
		m.relayout()
	default:
		if row == nil {
			return m, nil
		}
		cmd := row.Update(msg)
		m.relayout()
		return m, cmd
	}

	return m, nil
}

func (m *FieldsModel) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.mode = modeBrowse
		row := m.current()
		if row == nil {
			return m, nil
		}
		name := row.Field().GetName()
		if !m.service.Fields().Remove(m.idx) {
			return m, nil
		}
		m.service.MarkModified()
		m.logger.Debug().Str("field", name).Msg("custom field deleted from list")
		m.rebuildRows()
		return m, m.setStatus("Поле удалено")
	case key.Matches(msg, keys.no):
		m.mode = modeBrowse
	}
	return m, nil
}

func (m *FieldsModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.mode = modeBrowse
		m.search.Blur()
		return m, nil
	case key.Matches(msg, keys.enter):
		m.mode = modeBrowse
		m.search.Blur()
		return m, m.jumpTo(m.search.Value())
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m *FieldsModel) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch {
	case key.Matches(msg, keys.esc):
		m.mode = modeBrowse
		return m, nil
	case key.Matches(msg, keys.tab):
		m.form, cmd = m.form.nextFocus(1)
		return m, cmd
	case key.Matches(msg, keys.backtab):
		m.form, cmd = m.form.nextFocus(-1)
		return m, cmd
	case key.Matches(msg, keys.protect):
		m.form = m.form.toggleMaskable()
		return m, nil
	case key.Matches(msg, keys.enter):
		return m.submitAdd()
	}

	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m *FieldsModel) submitAdd() (tea.Model, tea.Cmd) {
	name := strings.TrimSpace(m.form.name())
	if name == "" {
		m.form.err = "Название не может быть пустым"
		return m, nil
	}

	_, err := m.service.Add(name, m.form.value(), m.form.maskable)
	if errors.Is(err, service.ErrFieldExists) {
		m.form.err = "Поле с таким названием уже есть"
		return m, nil
	}
	if err != nil {
		m.form.err = err.Error()
		return m, nil
	}

	m.mode = modeBrowse
	m.rebuildRows()
	m.selectRow(len(m.rows) - 1)
	return m, m.setStatus("Поле добавлено")
}

// jumpTo selects the first field whose name matches query ignoring case.
func (m *FieldsModel) jumpTo(query string) tea.Cmd {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	i := m.service.Fields().IndexOf(query)
	if i < 0 {
		return m.setStatus(fmt.Sprintf("Поле «%s» не найдено", query))
	}

	m.selectRow(i)
	return m.setStatus("Найдено: " + m.rows[i].Field().GetName())
}

func (m *FieldsModel) save() tea.Cmd {
	if err := m.service.Save(m.ctx); err != nil {
		m.logger.Error().Err(err).Msg("error saving custom fields")
		m.showError("Ошибка сохранения: " + humanizeStoreError(err))
		return nil
	}
	return m.setStatus("Сохранено")
}

func (m *FieldsModel) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.mode {
	case modeSearch:
		m.search, cmd = m.search.Update(msg)
	case modeAdd:
		m.form, cmd = m.form.update(msg)
	case modeBrowse:
		if row := m.current(); row != nil && row.Editing() {
			cmd = row.Update(msg)
			m.relayout()
		}
	}
	return m, cmd
}

func (m *FieldsModel) resize(width, height int) {
	if h := height - chromeLines; h >= 3 {
		m.viewport.Height = h
	}

	w := m.cfg.Width
	if avail := width - chromeCols; avail < w {
		w = avail
	}
	if w < minValueWidth+len(rowIndent) {
		w = minValueWidth + len(rowIndent)
	}

	m.rowWidth = w
	m.viewport.Width = w + len(cursorPrefix)
	for _, r := range m.rows {
		r.SetWidth(w)
	}
	m.relayout()
}

func (m *FieldsModel) moveRow(step int) {
	to := m.idx + step
	if !m.service.Fields().Move(m.idx, to) {
		return
	}
	m.service.MarkModified()
	m.idx = to
	m.rebuildRows()
}

func (m *FieldsModel) selectRow(i int) {
	if i < 0 || i >= len(m.rows) {
		return
	}
	m.idx = i
	m.relayout()
}

func (m *FieldsModel) current() *FieldRow {
	if m.idx < 0 || m.idx >= len(m.rows) {
		return nil
	}
	return m.rows[m.idx]
}

// rebuildRows recreates the rows from the working collection.
func (m *FieldsModel) rebuildRows() {
	fields := m.service.Fields()
	m.rows = make([]*FieldRow, 0, fields.Len())
	for _, f := range fields.All() {
		m.rows = append(m.rows, NewFieldRow(f, m, m.cfg.Mask, m.rowWidth))
	}

	if m.idx >= len(m.rows) {
		m.idx = len(m.rows) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
	m.relayout()
}

// relayout measures every row, renders the list into the viewport and
// scrolls so that the selected row is fully visible.
func (m *FieldsModel) relayout() {
	m.heights = m.heights[:0]
	m.offsets = m.offsets[:0]

	if len(m.rows) == 0 {
		m.viewport.SetContent("Нет полей. n добавить")
		m.viewport.GotoTop()
		return
	}

	var b strings.Builder
	line := 0
	for i, r := range m.rows {
		if i > 0 {
			b.WriteString("\n\n")
			line++
		}

		view := r.View()
		h := lipgloss.Height(view)
		m.offsets = append(m.offsets, line)
		m.heights = append(m.heights, h)
		line += h

		b.WriteString(prefixRow(view, i == m.idx))
	}

	m.viewport.SetContent(b.String())
	m.scrollToSelected()
}

func (m *FieldsModel) scrollToSelected() {
	top := m.offsets[m.idx]
	bottom := top + m.heights[m.idx]

	switch {
	case top < m.viewport.YOffset:
		m.viewport.SetYOffset(top)
	case bottom > m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(bottom - m.viewport.Height)
	}
}

func (m *FieldsModel) setStatus(text string) tea.Cmd {
	m.status = text
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m *FieldsModel) showError(text string) {
	m.errMsg = text
	m.mode = modeError
}

func (m *FieldsModel) View() string {
	switch m.mode {
	case modeError:
		return appStyle.Render(errorOverlayModel{message: m.errMsg}.View())
	case modeConfirmDelete:
		name := ""
		if row := m.current(); row != nil {
			name = row.Field().GetName()
		}
		return appStyle.Render(confirmModel{message: name}.View())
	case modeAdd:
		return appStyle.Render(m.form.View())
	}

	title := fmt.Sprintf("ДОПОЛНИТЕЛЬНЫЕ ПОЛЯ (%d)", len(m.rows))
	if m.service.Modified() {
		title += " *"
	}

	data := m.viewport.View()
	if m.mode == modeSearch {
		data += "\n\n" + m.search.View()
	}
	if m.status != "" {
		data += "\n\n" + helpStyle.Render(fitText(m.status, m.rowWidth))
	}

	hotKeys := "↑/↓ выбор  space скрыть/показать  enter редакт.  c копир.\n" +
		"  n новое  ctrl+d удалить  / поиск  ctrl+s сохранить  q выход"

	return appStyle.Render(renderPage(titleStyle.Render(title), data, hotKeys))
}

// prefixRow marks the first line of the selected row with the cursor and
// pads every other line to keep columns aligned.
func prefixRow(view string, selected bool) string {
	lines := strings.Split(view, "\n")
	for i, line := range lines {
		prefix := blankPrefix
		if i == 0 && selected {
			prefix = cursorPrefix
		}
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}

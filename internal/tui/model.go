package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/trep/trep/internal/utils"
	"github.com/trep/trep/pkg/record"
	"github.com/trep/trep/pkg/session"
	"github.com/trep/trep/pkg/timetable"
)

// Model is the root bubbletea model: it renders the table core's rows and
// relays key presses back into it. All mutations of the table happen
// synchronously inside Update, matching the single-threaded discipline the
// core expects.
type Model struct {
	table    *timetable.Table
	settings *session.Settings
	store    *record.Store
	clock    utils.Clock

	recordsPath string

	width  int
	height int
	cursor int

	editing   bool
	editField timetable.Field
	input     string

	status  string
	isError bool

	periodLabel string
}

func NewModel(
	table *timetable.Table,
	settings *session.Settings,
	store *record.Store,
	clock utils.Clock,
	recordsPath string,
) *Model {
	m := &Model{
		table:       table,
		settings:    settings,
		store:       store,
		clock:       clock,
		recordsPath: recordsPath,
		periodLabel: table.PeriodLabel(),
	}
	table.OnRowsChanged(func(change timetable.RangeChange) {
		m.periodLabel = timetable.PeriodLabel(settings.TimeViewType, change.Anchor, change.Start, change.End)
	})
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.settings.WindowSize = session.WindowSize{W: msg.Width, H: msg.Height}
	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}
		return m.updateBrowsing(msg)
	}
	return m, nil
}

func (m *Model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keyQuit, "ctrl+c", "esc":
		return m, tea.Quit
	case keyDayView:
		m.table.SetViewType(session.ViewDay)
	case keyWeekView:
		m.table.SetViewType(session.ViewWeek)
	case keyMonth:
		m.table.SetViewType(session.ViewMonth)
	case keyAround:
		m.table.SetViewType(session.ViewAroundDay)
	case keyPrev:
		m.table.Page(false)
	case keyNext:
		m.table.Page(true)
	case keyToday:
		m.table.JumpToToday()
	case keyPresence:
		m.table.RecordPresenceNow()
		m.setStatus("Recorded presence for today", false)
	case keySave:
		if err := m.store.SaveToFile(m.recordsPath); err != nil {
			m.setStatus(fmt.Sprintf("Save failed: %v", err), true)
		} else {
			m.settings.AddRecentFile(m.recordsPath)
			m.setStatus("Saved database", false)
		}
	case keyUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case keyDown:
		if m.cursor < len(m.table.Rows())-1 {
			m.cursor++
		}
	case keyEditCame:
		m.startEdit(timetable.FieldCame)
	case keyEditWent:
		m.startEdit(timetable.FieldWent)
	case keyEditNote:
		m.startEdit(timetable.FieldNote)
	}
	m.clampCursor()
	return m, nil
}

func (m *Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = false
		m.input = ""
	case "enter":
		row := m.table.Rows()[m.cursor]
		if err := m.table.Edit(row.Date, m.editField, m.input); err != nil {
			m.setStatus(fmt.Sprintf("Invalid value: %v", err), true)
		} else {
			m.setStatus("", false)
		}
		m.editing = false
		m.input = ""
	case "backspace":
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	default:
		if msg.Type == tea.KeyRunes || msg.String() == " " {
			m.input += msg.String()
		}
	}
	return m, nil
}

func (m *Model) startEdit(field timetable.Field) {
	if len(m.table.Rows()) == 0 {
		return
	}
	row := m.table.Rows()[m.cursor]
	m.editing = true
	m.editField = field
	switch field {
	case timetable.FieldCame:
		m.input = formatTime(row.Came)
	case timetable.FieldWent:
		m.input = formatTime(row.Went)
	case timetable.FieldNote:
		m.input = row.Note
	}
}

func (m *Model) clampCursor() {
	if n := len(m.table.Rows()); m.cursor >= n && n > 0 {
		m.cursor = n - 1
	} else if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) setStatus(text string, isError bool) {
	m.status = text
	m.isError = isError
}

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.periodLabel))
	b.WriteString("\n\n")
	b.WriteString(headerStyle.Render(fmt.Sprintf(
		"  %-12s %-4s %-10s %-10s %-10s %-10s %s",
		"Date", "Week", "Weekday", "Came", "Went", "Total", "Note",
	)))
	b.WriteString("\n")

	today := utils.Today(m.clock)
	for i, row := range m.table.Rows() {
		line := fmt.Sprintf(
			"%s %-12s %-4d %-10s %-10s %-10s %-10s %s",
			markSymbol(row.Mark(today)),
			row.Date.Format(utils.DateFormat),
			row.Week,
			row.Weekday,
			formatTimeCell(row.Came),
			formatTimeCell(row.Went),
			formatTotal(row),
			row.Note,
		)
		switch {
		case i == m.cursor:
			line = selectedStyle.Render(line)
		case timetable.Classify(row.Date, today) == timetable.RowToday:
			line = todayStyle.Render(line)
		case timetable.Classify(row.Date, today) == timetable.RowWeekend:
			line = weekendStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.editing {
		b.WriteString(editStyle.Render(fmt.Sprintf("Edit %s: %s█", m.editField, m.input)))
	} else {
		b.WriteString(statusStyle.Render(helpLine))
	}
	b.WriteString("\n")

	if m.status != "" {
		style := statusStyle
		if m.isError {
			style = errorStyle
		}
		b.WriteString(style.Render(m.status))
		b.WriteString("\n")
	}
	if m.store.Dirty() {
		b.WriteString(dirtyStyle.Render("● unsaved changes"))
		b.WriteString("\n")
	}

	return b.String()
}

func markSymbol(mark timetable.RowMark) string {
	switch mark {
	case timetable.MarkComplete:
		return "✓"
	case timetable.MarkMissing:
		return "!"
	default:
		return " "
	}
}

func formatTime(t *record.TimeOfDay) string {
	if t == nil {
		return ""
	}
	return t.String()
}

func formatTimeCell(t *record.TimeOfDay) string {
	if t == nil {
		return "---"
	}
	return t.String()
}

func formatTotal(row timetable.Row) string {
	if !row.HasTotal {
		return ""
	}
	return timetable.FormatDuration(row.Total)
}

// Package quicknotes is the freeform notes view: a simple list with
// an embedded create/edit form. Quick notes live independently of
// meetings and are persisted under their own key.
package quicknotes

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mtran/meeting-tracker/internal/keys"
	"github.com/mtran/meeting-tracker/internal/model"
	"github.com/mtran/meeting-tracker/internal/theme"
)

// SubmittedMsg is dispatched when the note form completes.
type SubmittedMsg struct {
	Note model.QuickNote
	Edit bool
}

// DeleteRequestMsg is sent when the user deletes the selected note.
type DeleteRequestMsg struct {
	NoteID string
}

// Model is the quick notes view component.
type Model struct {
	keys    *keys.KeyMap
	notes   []model.QuickNote
	cursor  int
	form    *noteForm
	width   int
	height  int
}

// New creates a new quick notes model.
func New(k *keys.KeyMap, width, height int) Model {
	return Model{keys: k, width: width, height: height}
}

// SetNotes replaces the backing data, clamping the cursor.
func (m *Model) SetNotes(notes []model.QuickNote) {
	m.notes = notes
	if m.cursor >= len(notes) {
		m.cursor = len(notes) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Editing reports whether the embedded form is active; while it is,
// global keys must not be intercepted.
func (m Model) Editing() bool {
	return m.form != nil
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the quick notes view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form != nil {
		return m.updateForm(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.notes)-1 {
			m.cursor++
		}
	case "n":
		f := newNoteForm(model.QuickNote{}, false, m.width)
		m.form = f
		return m, f.Init()
	case "e":
		if m.cursor < len(m.notes) {
			f := newNoteForm(m.notes[m.cursor], true, m.width)
			m.form = f
			return m, f.Init()
		}
	case "d":
		if m.cursor < len(m.notes) {
			id := m.notes[m.cursor].ID
			return m, func() tea.Msg { return DeleteRequestMsg{NoteID: id} }
		}
	}

	return m, nil
}

// updateForm routes messages to the embedded form while it is active.
func (m Model) updateForm(msg tea.Msg) (Model, tea.Cmd) {
	done, result, cmd := m.form.Update(msg)
	if !done {
		return m, cmd
	}

	m.form = nil
	if result == nil {
		return m, nil
	}
	return m, func() tea.Msg { return *result }
}

// View renders either the note list or the active form.
func (m Model) View(t theme.Theme) string {
	if m.form != nil {
		return m.form.View(t)
	}

	title := t.Title.Render("Quick Notes")

	var rows []string
	if len(m.notes) == 0 {
		rows = append(rows, t.Help.Render("no notes yet, press n to jot one down"))
	}
	for i, n := range m.notes {
		label := n.Title
		if label == "" {
			label = firstLine(n.Content)
		}
		line := fmt.Sprintf("%s  %s", label, t.Subtle.Render(n.CreatedAt))

		if i == m.cursor {
			line = t.SelectedItem.Render(line)
		} else {
			line = t.ListItem.Render(line)
		}
		rows = append(rows, line)

		if i == m.cursor {
			rows = append(rows, t.Subtle.Render("    "+n.Content))
		}
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(
		lipgloss.JoinVertical(lipgloss.Left, append([]string{title}, rows...)...),
	)
}

// firstLine returns the first line of s, truncated for list display.
func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i]
		}
		if i > 60 {
			return s[:i] + "…"
		}
	}
	return s
}

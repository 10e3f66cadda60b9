// Package detail renders a single meeting with its issue list.
package detail

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mtran/meeting-tracker/internal/keys"
	"github.com/mtran/meeting-tracker/internal/model"
	"github.com/mtran/meeting-tracker/internal/theme"
)

// BackMsg is sent when the user leaves the detail view.
type BackMsg struct{}

// NewIssueRequestMsg is sent when the user wants to add an issue.
type NewIssueRequestMsg struct {
	MeetingID string
}

// EditIssueRequestMsg is sent when the user wants to edit the selected
// issue.
type EditIssueRequestMsg struct {
	MeetingID string
	Issue     model.Issue
}

// DeleteIssueRequestMsg is sent when the user deletes the selected
// issue.
type DeleteIssueRequestMsg struct {
	MeetingID string
	IssueID   string
}

// Model is the meeting detail view component.
type Model struct {
	keys    *keys.KeyMap
	meeting model.Meeting
	cursor  int
	width   int
	height  int
}

// New creates a new detail model.
func New(k *keys.KeyMap, width, height int) Model {
	return Model{keys: k, width: width, height: height}
}

// SetMeeting replaces the displayed meeting, clamping the cursor.
func (m *Model) SetMeeting(mtg model.Meeting) {
	m.meeting = mtg
	if m.cursor >= len(mtg.Issues) {
		m.cursor = len(mtg.Issues) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// MeetingID returns the id of the displayed meeting.
func (m Model) MeetingID() string {
	return m.meeting.ID
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the detail view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
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
		if m.cursor < len(m.meeting.Issues)-1 {
			m.cursor++
		}
	case "esc":
		return m, func() tea.Msg { return BackMsg{} }
	case "n":
		id := m.meeting.ID
		return m, func() tea.Msg { return NewIssueRequestMsg{MeetingID: id} }
	case "e":
		if m.cursor < len(m.meeting.Issues) {
			id := m.meeting.ID
			is := m.meeting.Issues[m.cursor]
			return m, func() tea.Msg { return EditIssueRequestMsg{MeetingID: id, Issue: is} }
		}
	case "d":
		if m.cursor < len(m.meeting.Issues) {
			id := m.meeting.ID
			issueID := m.meeting.Issues[m.cursor].ID
			return m, func() tea.Msg { return DeleteIssueRequestMsg{MeetingID: id, IssueID: issueID} }
		}
	}

	return m, nil
}

// View renders the meeting header and its issues.
func (m Model) View(t theme.Theme) string {
	header := t.Title.Render(m.meeting.Title)
	meta := t.Subtle.Render(fmt.Sprintf("%s · %s", m.meeting.Date, m.meeting.Client))

	var rows []string
	if len(m.meeting.Issues) == 0 {
		rows = append(rows, t.Help.Render("no issues yet — press n to add one"))
	}
	for i, is := range m.meeting.Issues {
		status := t.Status(is.Status).Render(is.Status)
		priority := t.Priority(is.Priority).Render(is.Priority)

		line := fmt.Sprintf("%s  [%s/%s]", is.Topic, status, priority)
		if is.Assignee != "" {
			line += t.Subtle.Render("  @" + is.Assignee)
		}
		if is.Solution != "" {
			line += t.Subtle.Render("  → " + is.Solution)
		}

		if i == m.cursor {
			line = t.SelectedItem.Render(line)
		} else {
			line = t.ListItem.Render(line)
		}
		rows = append(rows, line)
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		append([]string{header, meta, ""}, rows...)...)

	return t.Panel.
		Width(m.width - 4).
		Render(body)
}

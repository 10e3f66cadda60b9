// Package meetinglist is the meeting overview: a searchable list
// sorted newest first. Sorting is presentation only and never touches
// stored order.
package meetinglist

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mtran/meeting-tracker/internal/keys"
	"github.com/mtran/meeting-tracker/internal/model"
	"github.com/mtran/meeting-tracker/internal/theme"
)

// SelectedMeetingMsg is sent when the user opens a meeting.
type SelectedMeetingMsg struct {
	MeetingID string
}

// NewRequestMsg is sent when the user wants to create a meeting.
type NewRequestMsg struct{}

// EditRequestMsg is sent when the user wants to edit a meeting.
type EditRequestMsg struct {
	MeetingID string
}

// DeleteRequestMsg is sent when the user deletes a meeting.
type DeleteRequestMsg struct {
	MeetingID string
}

// Model is the meeting list view component.
type Model struct {
	list        list.Model
	keys        *keys.KeyMap
	theme       theme.Theme
	meetings    []model.Meeting
	query       string
	searchMode  bool
	searchInput textinput.Model
	width       int
	height      int
}

// New creates a new meeting list model.
func New(k *keys.KeyMap, t theme.Theme, width, height int) Model {
	l := list.New([]list.Item{}, ItemDelegate{theme: t}, width, height-2)
	l.Title = "Meetings"
	l.SetShowStatusBar(true)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = t.Header

	si := textinput.New()
	si.Placeholder = "search meetings..."
	si.Prompt = "/ "
	si.Width = width - 4

	return Model{
		list:        l,
		keys:        k,
		theme:       t,
		searchInput: si,
		width:       width,
		height:      height,
	}
}

// SetTheme restyles the list after a display-mode change.
func (m *Model) SetTheme(t theme.Theme) {
	m.theme = t
	m.list.SetDelegate(ItemDelegate{theme: t})
	m.list.Styles.Title = t.Header
}

// SetMeetings replaces the backing data and re-renders the list.
func (m *Model) SetMeetings(meetings []model.Meeting) {
	m.meetings = meetings
	m.refresh()
}

// refresh rebuilds the visible items from the backing data, applying
// the search query and the newest-first presentation sort.
func (m *Model) refresh() {
	visible := make([]model.Meeting, 0, len(m.meetings))
	q := strings.ToLower(m.query)
	for _, mtg := range m.meetings {
		if q == "" ||
			strings.Contains(strings.ToLower(mtg.Title), q) ||
			strings.Contains(strings.ToLower(mtg.Client), q) {
			visible = append(visible, mtg)
		}
	}

	// ISO dates sort lexicographically; stable keeps stored order for
	// equal dates.
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].Date > visible[j].Date
	})

	items := make([]list.Item, len(visible))
	for i, mtg := range visible {
		items[i] = MeetingItem{Meeting: mtg}
	}
	m.list.SetItems(items)
}

// Searching reports whether the search input has focus; while it
// does, global keys must not be intercepted.
func (m Model) Searching() bool {
	return m.searchMode
}

// Selected returns the currently highlighted meeting id, if any.
func (m Model) Selected() (string, bool) {
	item, ok := m.list.SelectedItem().(MeetingItem)
	if !ok {
		return "", false
	}
	return item.Meeting.ID, true
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(width, height-2)
	m.searchInput.Width = width - 4
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the meeting list view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if m.searchMode {
			return m.handleSearchKeys(keyMsg)
		}
		return m.handleNormalKeys(keyMsg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// handleSearchKeys processes key input while in search mode.
func (m Model) handleSearchKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searchMode = false
		m.query = m.searchInput.Value()
		m.refresh()
		return m, nil
	case "esc":
		m.searchMode = false
		m.query = ""
		m.searchInput.SetValue("")
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// handleNormalKeys processes key input in list mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "/":
		m.searchMode = true
		m.searchInput.Focus()
		return m, textinput.Blink

	case "enter":
		if id, ok := m.Selected(); ok {
			return m, func() tea.Msg { return SelectedMeetingMsg{MeetingID: id} }
		}
		return m, nil

	case "n":
		return m, func() tea.Msg { return NewRequestMsg{} }

	case "e":
		if id, ok := m.Selected(); ok {
			return m, func() tea.Msg { return EditRequestMsg{MeetingID: id} }
		}
		return m, nil

	case "d":
		if id, ok := m.Selected(); ok {
			return m, func() tea.Msg { return DeleteRequestMsg{MeetingID: id} }
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the meeting list and, when active, the search input.
func (m Model) View() string {
	if m.searchMode {
		return lipgloss.JoinVertical(
			lipgloss.Left,
			m.searchInput.View(),
			m.list.View(),
		)
	}
	return m.list.View()
}

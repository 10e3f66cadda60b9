// Package issueform is the create/edit form for issues within a
// meeting.
package issueform

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/mtran/meeting-tracker/internal/identifier"
	"github.com/mtran/meeting-tracker/internal/model"
	"github.com/mtran/meeting-tracker/internal/theme"
)

// SubmittedMsg is dispatched when the form completes.
type SubmittedMsg struct {
	MeetingID string
	Issue     model.Issue
	Edit      bool
}

// CancelMsg is dispatched when the user aborts the form.
type CancelMsg struct{}

// formBindings holds form field values on the heap so that huh's
// Value() pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	topic    string
	status   string
	priority string
	assignee string
	solution string
	note     string
}

// Model is the Bubble Tea model for the issue create/edit form.
type Model struct {
	form      *huh.Form
	fb        *formBindings
	editMode  bool
	editID    string
	meetingID string
	width     int
	height    int
}

// New creates a new issue form model.
func New(width, height int) Model {
	return Model{
		fb:     &formBindings{status: model.StatusPending, priority: model.PriorityMedium},
		width:  width,
		height: height,
	}
}

// StartCreate initializes the form for adding an issue to meetingID.
func (m *Model) StartCreate(meetingID string) tea.Cmd {
	m.editMode = false
	m.editID = ""
	m.meetingID = meetingID
	m.fb.topic = ""
	m.fb.status = model.StatusPending
	m.fb.priority = model.PriorityMedium
	m.fb.assignee = ""
	m.fb.solution = ""
	m.fb.note = ""
	m.form = m.buildForm()
	return m.form.Init()
}

// StartEdit initializes the form for editing an existing issue.
func (m *Model) StartEdit(meetingID string, is model.Issue) tea.Cmd {
	m.editMode = true
	m.editID = is.ID
	m.meetingID = meetingID
	m.fb.topic = is.Topic
	m.fb.status = is.Status
	m.fb.priority = is.Priority
	m.fb.assignee = is.Assignee
	m.fb.solution = is.Solution
	m.fb.note = is.Note
	m.form = m.buildForm()
	return m.form.Init()
}

// buildForm constructs the huh form over the current bindings.
func (m *Model) buildForm() *huh.Form {
	statusOpts := make([]huh.Option[string], len(model.Statuses))
	for i, s := range model.Statuses {
		statusOpts[i] = huh.NewOption(s, s)
	}
	priorityOpts := make([]huh.Option[string], len(model.Priorities))
	for i, p := range model.Priorities {
		priorityOpts[i] = huh.NewOption(p, p)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Topic").
				Value(&m.fb.topic).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("topic is required")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Status").
				Options(statusOpts...).
				Value(&m.fb.status),
			huh.NewSelect[string]().
				Title("Priority").
				Options(priorityOpts...).
				Value(&m.fb.priority),
			huh.NewInput().
				Title("Assignee").
				Value(&m.fb.assignee),
			huh.NewInput().
				Title("Solution").
				Value(&m.fb.solution),
			huh.NewText().
				Title("Note").
				Value(&m.fb.note),
		),
	).WithWidth(m.width - 4)
}

// Update handles messages for the issue form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		return m, m.handleSubmit()
	}
	if m.form.State == huh.StateAborted {
		return m, func() tea.Msg { return CancelMsg{} }
	}

	return m, cmd
}

// handleSubmit builds the result issue and emits SubmittedMsg.
func (m Model) handleSubmit() tea.Cmd {
	id := m.editID
	if !m.editMode {
		id = identifier.New(identifier.PrefixIssue)
	}

	is := model.Issue{
		ID:       id,
		Topic:    strings.TrimSpace(m.fb.topic),
		Status:   m.fb.status,
		Priority: m.fb.priority,
		Assignee: strings.TrimSpace(m.fb.assignee),
		Solution: strings.TrimSpace(m.fb.solution),
		Note:     strings.TrimSpace(m.fb.note),
	}

	meetingID := m.meetingID
	edit := m.editMode
	return func() tea.Msg {
		return SubmittedMsg{MeetingID: meetingID, Issue: is, Edit: edit}
	}
}

// View renders the issue form.
func (m Model) View(t theme.Theme) string {
	if m.form == nil {
		return ""
	}

	titleText := "New Issue"
	if m.editMode {
		titleText = "Edit Issue"
	}

	return t.Title.Render(titleText) + "\n" + m.form.View()
}

// SetSize updates the form dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

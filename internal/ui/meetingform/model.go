// Package meetingform is the create/edit form for meetings.
package meetingform

import (
	"errors"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/mtran/meeting-tracker/internal/identifier"
	"github.com/mtran/meeting-tracker/internal/model"
	"github.com/mtran/meeting-tracker/internal/theme"
)

// SubmittedMsg is dispatched when the form completes. Edit is true
// when an existing meeting was modified rather than created.
type SubmittedMsg struct {
	Meeting model.Meeting
	Edit    bool
}

// CancelMsg is dispatched when the user aborts the form.
type CancelMsg struct{}

// formBindings holds form field values on the heap so that huh's
// Value() pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	title  string
	date   string
	client string
}

// Model is the Bubble Tea model for the meeting create/edit form.
type Model struct {
	form     *huh.Form
	fb       *formBindings
	editMode bool
	editing  model.Meeting
	width    int
	height   int
}

// New creates a new meeting form model.
func New(width, height int) Model {
	return Model{
		fb:     &formBindings{},
		width:  width,
		height: height,
	}
}

// StartCreate initializes the form for creating a new meeting.
func (m *Model) StartCreate() tea.Cmd {
	m.editMode = false
	m.editing = model.Meeting{}
	m.fb.title = ""
	m.fb.date = time.Now().Format("2006-01-02")
	m.fb.client = ""
	m.form = m.buildForm()
	return m.form.Init()
}

// StartEdit initializes the form for editing an existing meeting.
func (m *Model) StartEdit(mtg model.Meeting) tea.Cmd {
	m.editMode = true
	m.editing = mtg
	m.fb.title = mtg.Title
	m.fb.date = mtg.Date
	m.fb.client = mtg.Client
	m.form = m.buildForm()
	return m.form.Init()
}

// buildForm constructs the huh form over the current bindings.
func (m *Model) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&m.fb.title).
				Validate(requireNonEmpty("title")),
			huh.NewInput().
				Title("Date").
				Description("YYYY-MM-DD").
				Value(&m.fb.date).
				Validate(validateDate),
			huh.NewInput().
				Title("Client").
				Value(&m.fb.client),
		),
	).WithWidth(m.width - 4)
}

// Update handles messages for the meeting form.
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

// handleSubmit builds the result meeting and emits SubmittedMsg. On
// create a fresh id is generated; on edit the id and the owned issues
// are carried over untouched.
func (m Model) handleSubmit() tea.Cmd {
	mtg := m.editing
	if !m.editMode {
		mtg = model.Meeting{
			ID:     identifier.New(identifier.PrefixMeeting),
			Issues: []model.Issue{},
		}
	}
	mtg.Title = strings.TrimSpace(m.fb.title)
	mtg.Date = strings.TrimSpace(m.fb.date)
	mtg.Client = strings.TrimSpace(m.fb.client)

	edit := m.editMode
	return func() tea.Msg {
		return SubmittedMsg{Meeting: mtg, Edit: edit}
	}
}

// View renders the meeting form.
func (m Model) View(t theme.Theme) string {
	if m.form == nil {
		return ""
	}

	titleText := "New Meeting"
	if m.editMode {
		titleText = "Edit Meeting"
	}

	return t.Title.Render(titleText) + "\n" + m.form.View()
}

// SetSize updates the form dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// requireNonEmpty rejects blank required fields before a command is
// ever constructed; the store itself does not validate.
func requireNonEmpty(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(field + " is required")
		}
		return nil
	}
}

// validateDate requires an ISO-8601 calendar date.
func validateDate(s string) error {
	if _, err := time.Parse("2006-01-02", strings.TrimSpace(s)); err != nil {
		return errors.New("date must be YYYY-MM-DD")
	}
	return nil
}

// Package app is the root Bubble Tea model: it routes messages
// between views, translates view intents into store commands, and
// re-renders every view from the store's latest snapshot.
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mtran/meeting-tracker/internal/keys"
	"github.com/mtran/meeting-tracker/internal/model"
	"github.com/mtran/meeting-tracker/internal/stats"
	"github.com/mtran/meeting-tracker/internal/store"
	"github.com/mtran/meeting-tracker/internal/theme"
	"github.com/mtran/meeting-tracker/internal/ui"
	"github.com/mtran/meeting-tracker/internal/ui/dashboard"
	"github.com/mtran/meeting-tracker/internal/ui/detail"
	"github.com/mtran/meeting-tracker/internal/ui/helpview"
	"github.com/mtran/meeting-tracker/internal/ui/issueform"
	"github.com/mtran/meeting-tracker/internal/ui/meetingform"
	"github.com/mtran/meeting-tracker/internal/ui/meetinglist"
	"github.com/mtran/meeting-tracker/internal/ui/quicknotes"
)

// ViewState represents the current active view in the application.
type ViewState int

const (
	ViewDashboard ViewState = iota
	ViewMeetings
	ViewDetail
	ViewMeetingForm
	ViewIssueForm
	ViewNotes
	ViewHelp
)

// Model is the root Bubble Tea model.
type Model struct {
	currentView  ViewState
	previousView ViewState
	layout       ui.Layout
	store        *store.Store
	cfg          *model.AppConfig
	keys         *keys.KeyMap
	theme        theme.Theme

	dashboardView dashboard.Model
	meetingList   meetinglist.Model
	detailView    detail.Model
	meetingForm   meetingform.Model
	issueForm     issueform.Model
	notesView     quicknotes.Model
	helpView      helpview.Model

	ready         bool
	statusMessage string
}

// New creates the root application model over an already-loaded store.
func New(s *store.Store, cfg *model.AppConfig) Model {
	k := keys.DefaultKeyMap()
	t := theme.New(s.State().DarkMode)

	m := Model{
		currentView:   startView(cfg.Display.StartView),
		store:         s,
		cfg:           cfg,
		keys:          k,
		theme:         t,
		dashboardView: dashboard.New(80, 24),
		meetingList:   meetinglist.New(k, t, 80, 24),
		detailView:    detail.New(k, 80, 24),
		meetingForm:   meetingform.New(80, 24),
		issueForm:     issueform.New(80, 24),
		notesView:     quicknotes.New(k, 80, 24),
		helpView:      helpview.New(k, 80, 24),
	}
	m.refreshViews()
	return m
}

// startView maps the configured start view name to a ViewState.
func startView(name string) ViewState {
	switch name {
	case "meetings":
		return ViewMeetings
	case "notes":
		return ViewNotes
	default:
		return ViewDashboard
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// refreshViews pushes the current state snapshot into every view.
func (m *Model) refreshViews() {
	state := m.store.State()
	m.meetingList.SetMeetings(state.Data.Meetings)
	m.dashboardView.SetStats(stats.Compute(state.Data))
	m.notesView.SetNotes(state.QuickNotes)

	if id := m.detailView.MeetingID(); id != "" {
		for _, mtg := range state.Data.Meetings {
			if mtg.ID == id {
				m.detailView.SetMeeting(mtg)
				break
			}
		}
	}
}

// dispatch applies a command through the store and refreshes all views
// from the resulting snapshot.
func (m *Model) dispatch(cmd store.Command) {
	m.store.Dispatch(cmd)
	m.refreshViews()
}

// inputCaptured reports whether the active view owns all key input
// (forms, search), so global shortcuts must stay out of the way.
func (m Model) inputCaptured() bool {
	switch m.currentView {
	case ViewMeetingForm, ViewIssueForm:
		return true
	case ViewMeetings:
		return m.meetingList.Searching()
	case ViewNotes:
		return m.notesView.Editing()
	}
	return false
}

// Update handles messages and dispatches to the active view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayout(msg.Width, msg.Height)
		m.ready = true
		w := m.layout.ContentWidth()
		h := m.layout.ContentHeight()
		m.dashboardView.SetSize(w, h)
		m.meetingList.SetSize(w, h)
		m.detailView.SetSize(w, h)
		m.meetingForm.SetSize(w, h)
		m.issueForm.SetSize(w, h)
		m.notesView.SetSize(w, h)
		m.helpView.SetSize(w, h)
		return m.updateActiveView(msg)

	case meetinglist.SelectedMeetingMsg:
		if mtg, ok := m.findMeeting(msg.MeetingID); ok {
			m.detailView.SetMeeting(mtg)
			m.previousView = m.currentView
			m.currentView = ViewDetail
		}
		return m, nil

	case meetinglist.NewRequestMsg:
		m.previousView = m.currentView
		m.currentView = ViewMeetingForm
		return m, m.meetingForm.StartCreate()

	case meetinglist.EditRequestMsg:
		if mtg, ok := m.findMeeting(msg.MeetingID); ok {
			m.previousView = m.currentView
			m.currentView = ViewMeetingForm
			return m, m.meetingForm.StartEdit(mtg)
		}
		return m, nil

	case meetinglist.DeleteRequestMsg:
		m.dispatch(store.DeleteMeeting{ID: msg.MeetingID})
		m.statusMessage = "meeting deleted"
		return m, nil

	case meetingform.SubmittedMsg:
		if msg.Edit {
			m.dispatch(store.UpdateMeeting{Meeting: msg.Meeting})
			m.statusMessage = "meeting updated"
		} else {
			m.dispatch(store.AddMeeting{Meeting: msg.Meeting})
			m.statusMessage = "meeting created"
		}
		m.currentView = ViewMeetings
		return m, nil

	case meetingform.CancelMsg:
		m.currentView = m.previousView
		return m, nil

	case detail.BackMsg:
		m.currentView = ViewMeetings
		return m, nil

	case detail.NewIssueRequestMsg:
		m.previousView = m.currentView
		m.currentView = ViewIssueForm
		return m, m.issueForm.StartCreate(msg.MeetingID)

	case detail.EditIssueRequestMsg:
		m.previousView = m.currentView
		m.currentView = ViewIssueForm
		return m, m.issueForm.StartEdit(msg.MeetingID, msg.Issue)

	case detail.DeleteIssueRequestMsg:
		m.dispatch(store.DeleteIssue{MeetingID: msg.MeetingID, IssueID: msg.IssueID})
		m.statusMessage = "issue deleted"
		return m, nil

	case issueform.SubmittedMsg:
		if msg.Edit {
			m.dispatch(store.UpdateIssue{MeetingID: msg.MeetingID, Issue: msg.Issue})
			m.statusMessage = "issue updated"
		} else {
			m.dispatch(store.AddIssue{MeetingID: msg.MeetingID, Issue: msg.Issue})
			m.statusMessage = "issue added"
		}
		m.currentView = ViewDetail
		return m, nil

	case issueform.CancelMsg:
		m.currentView = ViewDetail
		return m, nil

	case quicknotes.SubmittedMsg:
		if msg.Edit {
			m.dispatch(store.UpdateQuickNote{Note: msg.Note})
			m.statusMessage = "note updated"
		} else {
			m.dispatch(store.AddQuickNote{Note: msg.Note})
			m.statusMessage = "note saved"
		}
		return m, nil

	case quicknotes.DeleteRequestMsg:
		m.dispatch(store.DeleteQuickNote{ID: msg.NoteID})
		m.statusMessage = "note deleted"
		return m, nil

	case tea.KeyMsg:
		if handled, mdl, cmd := m.handleGlobalKeys(msg); handled {
			return mdl, cmd
		}
		return m.updateActiveView(msg)
	}

	return m.updateActiveView(msg)
}

// handleGlobalKeys processes shortcuts that work from any browsing
// view. Returns handled=false when the active view owns input.
func (m Model) handleGlobalKeys(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return true, m, tea.Quit
	}
	if m.inputCaptured() {
		return false, m, nil
	}

	switch msg.String() {
	case "q":
		if m.currentView == ViewHelp {
			m.currentView = m.previousView
			return true, m, nil
		}
		return true, m, tea.Quit

	case "?":
		if m.currentView == ViewHelp {
			m.currentView = m.previousView
		} else {
			m.previousView = m.currentView
			m.currentView = ViewHelp
		}
		return true, m, nil

	case "1":
		m.currentView = ViewDashboard
		return true, m, nil

	case "2":
		m.currentView = ViewMeetings
		return true, m, nil

	case "3":
		m.currentView = ViewNotes
		return true, m, nil

	case "D":
		m.dispatch(store.ToggleDarkMode{})
		m.theme = theme.New(m.store.State().DarkMode)
		m.meetingList.SetTheme(m.theme)
		return true, m, nil

	case "x":
		m.statusMessage = m.exportJSON()
		return true, m, nil

	case "X":
		m.statusMessage = m.exportCSV()
		return true, m, nil
	}

	return false, m, nil
}

// updateActiveView forwards msg to the view that currently has focus.
func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.currentView {
	case ViewDashboard:
		m.dashboardView, cmd = m.dashboardView.Update(msg)
	case ViewMeetings:
		m.meetingList, cmd = m.meetingList.Update(msg)
	case ViewDetail:
		m.detailView, cmd = m.detailView.Update(msg)
	case ViewMeetingForm:
		m.meetingForm, cmd = m.meetingForm.Update(msg)
	case ViewIssueForm:
		m.issueForm, cmd = m.issueForm.Update(msg)
	case ViewNotes:
		m.notesView, cmd = m.notesView.Update(msg)
	case ViewHelp:
		m.helpView, cmd = m.helpView.Update(msg)
	}
	return m, cmd
}

// findMeeting looks up a meeting by id in the current snapshot.
func (m Model) findMeeting(id string) (model.Meeting, bool) {
	for _, mtg := range m.store.State().Data.Meetings {
		if mtg.ID == id {
			return mtg, true
		}
	}
	return model.Meeting{}, false
}

// viewName returns the header label for the active view.
func (m Model) viewName() string {
	switch m.currentView {
	case ViewDashboard:
		return "dashboard"
	case ViewMeetings:
		return "meetings"
	case ViewDetail:
		return "meeting"
	case ViewMeetingForm, ViewIssueForm:
		return "edit"
	case ViewNotes:
		return "quick notes"
	case ViewHelp:
		return "help"
	}
	return ""
}

// View renders the full application frame.
func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	var content string
	switch m.currentView {
	case ViewDashboard:
		content = m.dashboardView.View(m.theme)
	case ViewMeetings:
		content = m.meetingList.View()
	case ViewDetail:
		content = m.detailView.View(m.theme)
	case ViewMeetingForm:
		content = m.meetingForm.View(m.theme)
	case ViewIssueForm:
		content = m.issueForm.View(m.theme)
	case ViewNotes:
		content = m.notesView.View(m.theme)
	case ViewHelp:
		content = m.helpView.View(m.theme)
	}

	hints := m.statusMessage
	if hints == "" {
		hints = "1 dashboard · 2 meetings · 3 notes · ? help · q quit"
	}

	header := m.layout.RenderHeader(m.theme, "Meeting Tracker", m.viewName())
	statusBar := m.layout.RenderStatusBar(m.theme, hints)
	return m.layout.RenderWithFrame(header, content, statusBar)
}

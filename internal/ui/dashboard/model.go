// Package dashboard renders the aggregate statistics view.
package dashboard

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mtran/meeting-tracker/internal/model"
	"github.com/mtran/meeting-tracker/internal/theme"
)

// Model is the dashboard view showing derived statistics.
type Model struct {
	stats  model.DashboardStats
	width  int
	height int
}

// New creates a new dashboard model.
func New(width, height int) Model {
	return Model{width: width, height: height}
}

// SetStats replaces the displayed statistics. The app recomputes them
// from the current state snapshot after every command.
func (m *Model) SetStats(s model.DashboardStats) {
	m.stats = s
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

// Update handles messages for the dashboard view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m, nil
}

// View renders the statistics cards.
func (m Model) View(t theme.Theme) string {
	cards := []string{
		m.card(t, "Meetings", m.stats.TotalMeetings, lipgloss.NewStyle()),
		m.card(t, "Issues", m.stats.TotalIssues, lipgloss.NewStyle()),
		m.card(t, "Pending", m.stats.PendingIssues, t.Status(model.StatusPending)),
		m.card(t, "In Progress", m.stats.InProgressIssues, t.Status(model.StatusInProgress)),
		m.card(t, "Solved", m.stats.SolvedIssues, t.Status(model.StatusSolved)),
		m.card(t, "Archived", m.stats.ArchivedIssues, t.Status(model.StatusArchived)),
	}

	row1 := lipgloss.JoinHorizontal(lipgloss.Top, cards[:3]...)
	row2 := lipgloss.JoinHorizontal(lipgloss.Top, cards[3:]...)

	title := t.Title.Render("Dashboard")
	body := lipgloss.JoinVertical(lipgloss.Left, title, row1, row2)

	return lipgloss.NewStyle().Padding(1, 2).Render(body)
}

// card renders one labeled count.
func (m Model) card(t theme.Theme, label string, n int, numStyle lipgloss.Style) string {
	num := numStyle.Bold(true).Render(fmt.Sprintf("%d", n))
	lbl := t.Subtle.Render(label)
	return t.StatCard.Render(lipgloss.JoinVertical(lipgloss.Center, num, lbl))
}

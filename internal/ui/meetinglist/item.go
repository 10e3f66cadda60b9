package meetinglist

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mtran/meeting-tracker/internal/model"
	"github.com/mtran/meeting-tracker/internal/theme"
)

// MeetingItem wraps a model.Meeting so it can be used in a bubbles/list.
type MeetingItem struct {
	Meeting model.Meeting
}

// FilterValue returns the string used for filtering.
func (i MeetingItem) FilterValue() string {
	return i.Meeting.Title + " " + i.Meeting.Client
}

// ItemDelegate implements list.ItemDelegate for rendering meetings.
type ItemDelegate struct {
	theme theme.Theme
}

// Height returns the number of lines each item takes.
func (d ItemDelegate) Height() int { return 1 }

// Spacing returns the number of blank lines between items.
func (d ItemDelegate) Spacing() int { return 0 }

// Update handles per-item messages (unused).
func (d ItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render draws a single meeting line: date, title, client, and the
// number of open issues.
func (d ItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	mi, ok := item.(MeetingItem)
	if !ok {
		return
	}

	mtg := mi.Meeting
	open := 0
	for _, is := range mtg.Issues {
		if is.Status == model.StatusPending || is.Status == model.StatusInProgress {
			open++
		}
	}

	date := d.theme.Subtle.Render(mtg.Date)
	client := d.theme.Subtle.Render(mtg.Client)
	counts := fmt.Sprintf("%d issues", len(mtg.Issues))
	if open > 0 {
		counts += d.theme.Status(model.StatusPending).Render(fmt.Sprintf(" (%d open)", open))
	}

	line := fmt.Sprintf("%s  %s  %s  %s", date, mtg.Title, client, counts)

	if index == m.Index() {
		line = d.theme.SelectedItem.Render(line)
	} else {
		line = d.theme.ListItem.Render(line)
	}

	fmt.Fprint(w, line)
}

package store

import "github.com/mtran/meeting-tracker/internal/model"

// State is a snapshot of everything the store owns: the meeting
// aggregate, the quick-notes collection, and the persisted dark-mode
// flag.
type State struct {
	Data       model.AppData
	QuickNotes []model.QuickNote
	DarkMode   bool
}

// NewState returns an empty initial state.
func NewState() State {
	return State{
		Data:       model.DefaultData(),
		QuickNotes: []model.QuickNote{},
	}
}

// Apply produces the state that results from applying cmd to state.
// It is a pure function: the input state is never mutated, so callers
// can keep old snapshots for change detection. Commands referencing a
// missing meeting, issue, or note id are no-ops returning an
// equivalent state; Apply is total over the command set.
func Apply(state State, cmd Command) State {
	switch c := cmd.(type) {
	case ReplaceAllData:
		state.Data = c.Data
		return state

	case AddMeeting:
		if _, ok := findMeeting(state.Data.Meetings, c.Meeting.ID); ok {
			return state
		}
		meetings := append(cloneMeetings(state.Data.Meetings), c.Meeting)
		state.Data = model.AppData{Meetings: meetings}
		return state

	case UpdateMeeting:
		i, ok := findMeeting(state.Data.Meetings, c.Meeting.ID)
		if !ok {
			return state
		}
		meetings := cloneMeetings(state.Data.Meetings)
		meetings[i] = c.Meeting
		state.Data = model.AppData{Meetings: meetings}
		return state

	case DeleteMeeting:
		meetings := make([]model.Meeting, 0, len(state.Data.Meetings))
		for _, m := range state.Data.Meetings {
			if m.ID != c.ID {
				meetings = append(meetings, m)
			}
		}
		state.Data = model.AppData{Meetings: meetings}
		return state

	case AddIssue:
		i, ok := findMeeting(state.Data.Meetings, c.MeetingID)
		if !ok {
			return state
		}
		meetings := cloneMeetings(state.Data.Meetings)
		m := meetings[i]
		m.Issues = append(cloneIssues(m.Issues), c.Issue)
		meetings[i] = m
		state.Data = model.AppData{Meetings: meetings}
		return state

	case UpdateIssue:
		mi, ok := findMeeting(state.Data.Meetings, c.MeetingID)
		if !ok {
			return state
		}
		ii, ok := findIssue(state.Data.Meetings[mi].Issues, c.Issue.ID)
		if !ok {
			return state
		}
		meetings := cloneMeetings(state.Data.Meetings)
		m := meetings[mi]
		issues := cloneIssues(m.Issues)
		issues[ii] = c.Issue
		m.Issues = issues
		meetings[mi] = m
		state.Data = model.AppData{Meetings: meetings}
		return state

	case DeleteIssue:
		mi, ok := findMeeting(state.Data.Meetings, c.MeetingID)
		if !ok {
			return state
		}
		meetings := cloneMeetings(state.Data.Meetings)
		m := meetings[mi]
		issues := make([]model.Issue, 0, len(m.Issues))
		for _, is := range m.Issues {
			if is.ID != c.IssueID {
				issues = append(issues, is)
			}
		}
		m.Issues = issues
		meetings[mi] = m
		state.Data = model.AppData{Meetings: meetings}
		return state

	case ToggleDarkMode:
		state.DarkMode = !state.DarkMode
		return state

	case AddQuickNote:
		if _, ok := findNote(state.QuickNotes, c.Note.ID); ok {
			return state
		}
		state.QuickNotes = append(cloneNotes(state.QuickNotes), c.Note)
		return state

	case UpdateQuickNote:
		i, ok := findNote(state.QuickNotes, c.Note.ID)
		if !ok {
			return state
		}
		notes := cloneNotes(state.QuickNotes)
		notes[i] = c.Note
		state.QuickNotes = notes
		return state

	case DeleteQuickNote:
		notes := make([]model.QuickNote, 0, len(state.QuickNotes))
		for _, n := range state.QuickNotes {
			if n.ID != c.ID {
				notes = append(notes, n)
			}
		}
		state.QuickNotes = notes
		return state

	case ReplaceAllQuickNotes:
		if c.Notes == nil {
			state.QuickNotes = []model.QuickNote{}
		} else {
			state.QuickNotes = c.Notes
		}
		return state
	}

	return state
}

func findMeeting(meetings []model.Meeting, id string) (int, bool) {
	for i, m := range meetings {
		if m.ID == id {
			return i, true
		}
	}
	return 0, false
}

func findIssue(issues []model.Issue, id string) (int, bool) {
	for i, is := range issues {
		if is.ID == id {
			return i, true
		}
	}
	return 0, false
}

func findNote(notes []model.QuickNote, id string) (int, bool) {
	for i, n := range notes {
		if n.ID == id {
			return i, true
		}
	}
	return 0, false
}

func cloneMeetings(meetings []model.Meeting) []model.Meeting {
	out := make([]model.Meeting, len(meetings))
	copy(out, meetings)
	return out
}

func cloneIssues(issues []model.Issue) []model.Issue {
	out := make([]model.Issue, len(issues))
	copy(out, issues)
	return out
}

func cloneNotes(notes []model.QuickNote) []model.QuickNote {
	out := make([]model.QuickNote, len(notes))
	copy(out, notes)
	return out
}

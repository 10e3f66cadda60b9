package store

import "github.com/mtran/meeting-tracker/internal/model"

// Command is a single named intent to mutate store state. The set of
// commands is closed: every variant is a struct in this file, and
// Apply handles all of them.
type Command interface {
	isCommand()
}

// ReplaceAllData replaces the meeting aggregate wholesale. Used by
// startup load and JSON import.
type ReplaceAllData struct {
	Data model.AppData
}

// AddMeeting appends a new meeting.
type AddMeeting struct {
	Meeting model.Meeting
}

// UpdateMeeting replaces the meeting with the same id, keeping its
// position.
type UpdateMeeting struct {
	Meeting model.Meeting
}

// DeleteMeeting removes a meeting and, with it, every issue it owns.
type DeleteMeeting struct {
	ID string
}

// AddIssue appends an issue to the given meeting.
type AddIssue struct {
	MeetingID string
	Issue     model.Issue
}

// UpdateIssue replaces the issue with the same id within the given
// meeting, keeping its position.
type UpdateIssue struct {
	MeetingID string
	Issue     model.Issue
}

// DeleteIssue removes an issue from the given meeting.
type DeleteIssue struct {
	MeetingID string
	IssueID   string
}

// ToggleDarkMode flips the persisted display-mode flag.
type ToggleDarkMode struct{}

// AddQuickNote appends a new quick note.
type AddQuickNote struct {
	Note model.QuickNote
}

// UpdateQuickNote replaces the quick note with the same id, keeping
// its position.
type UpdateQuickNote struct {
	Note model.QuickNote
}

// DeleteQuickNote removes a quick note by id.
type DeleteQuickNote struct {
	ID string
}

// ReplaceAllQuickNotes replaces the quick-notes collection wholesale.
// Used by startup load.
type ReplaceAllQuickNotes struct {
	Notes []model.QuickNote
}

func (ReplaceAllData) isCommand()       {}
func (AddMeeting) isCommand()           {}
func (UpdateMeeting) isCommand()        {}
func (DeleteMeeting) isCommand()        {}
func (AddIssue) isCommand()             {}
func (UpdateIssue) isCommand()          {}
func (DeleteIssue) isCommand()          {}
func (ToggleDarkMode) isCommand()       {}
func (AddQuickNote) isCommand()         {}
func (UpdateQuickNote) isCommand()      {}
func (DeleteQuickNote) isCommand()      {}
func (ReplaceAllQuickNotes) isCommand() {}

// Package store holds the canonical in-memory application state and
// the closed set of commands that mutate it. Apply is the pure
// reducer; Store wraps it with write-through persistence so that
// every mutating command is durable before the dispatcher returns.
package store

import (
	"github.com/mtran/meeting-tracker/internal/storage"
)

// Store binds the current state snapshot to the persistence adapter.
// It is the single source of truth for the running application; the
// view layer reads State() and mutates exclusively through Dispatch.
type Store struct {
	state   State
	adapter *storage.Adapter
}

// New creates a store whose initial state is loaded from the adapter.
func New(adapter *storage.Adapter) *Store {
	s := &Store{state: NewState(), adapter: adapter}
	s.state = Apply(s.state, ReplaceAllData{Data: adapter.LoadData()})
	s.state = Apply(s.state, ReplaceAllQuickNotes{Notes: adapter.LoadQuickNotes()})
	if adapter.LoadDarkMode() {
		s.state = Apply(s.state, ToggleDarkMode{})
	}
	return s
}

// State returns the current state snapshot.
func (s *Store) State() State {
	return s.state
}

// Dispatch applies cmd to the current state and synchronously
// persists the aggregate the command touched: the full AppData for
// meeting and issue commands, the full quick-notes collection for
// note commands, and the flag itself for ToggleDarkMode. The updated
// snapshot is returned.
func (s *Store) Dispatch(cmd Command) State {
	s.state = Apply(s.state, cmd)

	switch cmd.(type) {
	case ReplaceAllData, AddMeeting, UpdateMeeting, DeleteMeeting,
		AddIssue, UpdateIssue, DeleteIssue:
		s.adapter.SaveData(s.state.Data)
	case AddQuickNote, UpdateQuickNote, DeleteQuickNote, ReplaceAllQuickNotes:
		s.adapter.SaveQuickNotes(s.state.QuickNotes)
	case ToggleDarkMode:
		s.adapter.SaveDarkMode(s.state.DarkMode)
	}

	return s.state
}

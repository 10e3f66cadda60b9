package store_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtran/meeting-tracker/internal/model"
	"github.com/mtran/meeting-tracker/internal/store"
	"github.com/mtran/meeting-tracker/tests/testutil"
)

func meeting(id, title string, issues ...model.Issue) model.Meeting {
	if issues == nil {
		issues = []model.Issue{}
	}
	return model.Meeting{
		ID:     id,
		Title:  title,
		Date:   "2025-03-14",
		Client: "Acme Corp",
		Issues: issues,
	}
}

func issue(id, topic, status string) model.Issue {
	is := model.NewIssue(id, topic)
	is.Status = status
	return is
}

func TestApplyAddMeeting(t *testing.T) {
	s := store.NewState()

	s = store.Apply(s, store.AddMeeting{Meeting: meeting("mtg-1", "Kickoff")})
	s = store.Apply(s, store.AddMeeting{Meeting: meeting("mtg-2", "Review")})

	require.Len(t, s.Data.Meetings, 2)
	assert.Equal(t, "mtg-1", s.Data.Meetings[0].ID)
	assert.Equal(t, "mtg-2", s.Data.Meetings[1].ID)
}

func TestApplyAddMeetingDuplicateIDIsNoOp(t *testing.T) {
	s := store.NewState()
	s = store.Apply(s, store.AddMeeting{Meeting: meeting("mtg-1", "Kickoff")})

	s = store.Apply(s, store.AddMeeting{Meeting: meeting("mtg-1", "Impostor")})

	require.Len(t, s.Data.Meetings, 1)
	assert.Equal(t, "Kickoff", s.Data.Meetings[0].Title)
}

func TestApplyNeverMutatesInput(t *testing.T) {
	s0 := store.NewState()
	s0 = store.Apply(s0, store.AddMeeting{
		Meeting: meeting("mtg-1", "Kickoff", issue("iss-1", "budget", model.StatusPending)),
	})
	before, err := json.Marshal(s0)
	require.NoError(t, err)

	_ = store.Apply(s0, store.UpdateIssue{
		MeetingID: "mtg-1",
		Issue:     issue("iss-1", "budget revisited", model.StatusSolved),
	})
	_ = store.Apply(s0, store.DeleteMeeting{ID: "mtg-1"})
	_ = store.Apply(s0, store.AddIssue{MeetingID: "mtg-1", Issue: issue("iss-2", "staffing", model.StatusPending)})

	after, err := json.Marshal(s0)
	require.NoError(t, err)
	assert.JSONEq(t, string(before), string(after))
}

func TestApplyUpdateMeetingPreservesPosition(t *testing.T) {
	s := store.NewState()
	s = store.Apply(s, store.AddMeeting{Meeting: meeting("mtg-1", "Kickoff")})
	s = store.Apply(s, store.AddMeeting{Meeting: meeting("mtg-2", "Review")})
	s = store.Apply(s, store.AddMeeting{Meeting: meeting("mtg-3", "Retro")})

	updated := meeting("mtg-2", "Review (rescheduled)")
	s = store.Apply(s, store.UpdateMeeting{Meeting: updated})

	require.Len(t, s.Data.Meetings, 3)
	assert.Equal(t, "Review (rescheduled)", s.Data.Meetings[1].Title)
	assert.Equal(t, "mtg-1", s.Data.Meetings[0].ID)
	assert.Equal(t, "mtg-3", s.Data.Meetings[2].ID)
}

func TestApplyUpdateMeetingMissingIDIsNoOp(t *testing.T) {
	s := store.NewState()
	s = store.Apply(s, store.AddMeeting{Meeting: meeting("mtg-1", "Kickoff")})

	s2 := store.Apply(s, store.UpdateMeeting{Meeting: meeting("mtg-404", "Ghost")})

	assert.Equal(t, s, s2)
}

func TestApplyDeleteMeetingCascades(t *testing.T) {
	s := store.NewState()
	s = store.Apply(s, store.AddMeeting{Meeting: meeting("mtg-1", "Kickoff",
		issue("iss-1", "budget", model.StatusPending),
		issue("iss-2", "timeline", model.StatusSolved),
	)})
	s = store.Apply(s, store.AddMeeting{Meeting: meeting("mtg-2", "Review")})

	s = store.Apply(s, store.DeleteMeeting{ID: "mtg-1"})

	require.Len(t, s.Data.Meetings, 1)
	assert.Equal(t, "mtg-2", s.Data.Meetings[0].ID)
	// No issue owned by the deleted meeting survives anywhere.
	for _, m := range s.Data.Meetings {
		for _, is := range m.Issues {
			assert.NotEqual(t, "iss-1", is.ID)
			assert.NotEqual(t, "iss-2", is.ID)
		}
	}
}

func TestApplyDeleteMeetingAbsentIsNoOp(t *testing.T) {
	s := store.NewState()
	s = store.Apply(s, store.AddMeeting{Meeting: meeting("mtg-1", "Kickoff")})

	s2 := store.Apply(s, store.DeleteMeeting{ID: "mtg-404"})

	assert.Equal(t, s.Data, s2.Data)
}

func TestApplyAddIssue(t *testing.T) {
	s := store.NewState()
	s = store.Apply(s, store.AddMeeting{Meeting: meeting("mtg-1", "Kickoff")})

	s = store.Apply(s, store.AddIssue{MeetingID: "mtg-1", Issue: model.NewIssue("iss-1", "budget")})

	require.Len(t, s.Data.Meetings[0].Issues, 1)
	got := s.Data.Meetings[0].Issues[0]
	assert.Equal(t, "budget", got.Topic)
	assert.Equal(t, model.StatusPending, got.Status)
	assert.Equal(t, model.PriorityMedium, got.Priority)
}

func TestApplyAddIssueMissingMeetingLeavesAggregateUnchanged(t *testing.T) {
	s := store.NewState()
	s = store.Apply(s, store.AddMeeting{Meeting: meeting("mtg-1", "Kickoff",
		issue("iss-1", "budget", model.StatusPending))})
	before, err := json.Marshal(s.Data)
	require.NoError(t, err)

	s = store.Apply(s, store.AddIssue{MeetingID: "mtg-404", Issue: model.NewIssue("iss-2", "ghost")})

	after, err := json.Marshal(s.Data)
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}

func TestApplyUpdateIssuePreservesPosition(t *testing.T) {
	s := store.NewState()
	s = store.Apply(s, store.AddMeeting{Meeting: meeting("mtg-1", "Kickoff",
		issue("iss-1", "budget", model.StatusPending),
		issue("iss-2", "timeline", model.StatusPending),
		issue("iss-3", "staffing", model.StatusPending),
	)})

	updated := issue("iss-2", "timeline", model.StatusSolved)
	updated.Solution = "moved the deadline"
	s = store.Apply(s, store.UpdateIssue{MeetingID: "mtg-1", Issue: updated})

	issues := s.Data.Meetings[0].Issues
	require.Len(t, issues, 3)
	assert.Equal(t, "iss-1", issues[0].ID)
	assert.Equal(t, "iss-2", issues[1].ID)
	assert.Equal(t, "iss-3", issues[2].ID)
	assert.Equal(t, model.StatusSolved, issues[1].Status)
	assert.Equal(t, "moved the deadline", issues[1].Solution)
}

func TestApplyUpdateIssueMissingIssueIsNoOp(t *testing.T) {
	s := store.NewState()
	s = store.Apply(s, store.AddMeeting{Meeting: meeting("mtg-1", "Kickoff",
		issue("iss-1", "budget", model.StatusPending))})

	s2 := store.Apply(s, store.UpdateIssue{MeetingID: "mtg-1", Issue: issue("iss-404", "ghost", model.StatusSolved)})

	assert.Equal(t, s.Data, s2.Data)
}

func TestApplyDeleteIssue(t *testing.T) {
	s := store.NewState()
	s = store.Apply(s, store.AddMeeting{Meeting: meeting("mtg-1", "Kickoff",
		issue("iss-1", "budget", model.StatusPending),
		issue("iss-2", "timeline", model.StatusPending),
	)})

	s = store.Apply(s, store.DeleteIssue{MeetingID: "mtg-1", IssueID: "iss-1"})

	issues := s.Data.Meetings[0].Issues
	require.Len(t, issues, 1)
	assert.Equal(t, "iss-2", issues[0].ID)
}

func TestApplyToggleDarkMode(t *testing.T) {
	s := store.NewState()
	assert.False(t, s.DarkMode)

	s = store.Apply(s, store.ToggleDarkMode{})
	assert.True(t, s.DarkMode)

	s = store.Apply(s, store.ToggleDarkMode{})
	assert.False(t, s.DarkMode)
}

func TestApplyQuickNoteLifecycle(t *testing.T) {
	s := store.NewState()

	n1 := model.QuickNote{ID: "note-1", Content: "call back the vendor", CreatedAt: "2025-03-14T10:00:00Z"}
	n2 := model.QuickNote{ID: "note-2", Content: "send the slides", CreatedAt: "2025-03-14T11:00:00Z"}

	s = store.Apply(s, store.AddQuickNote{Note: n1})
	s = store.Apply(s, store.AddQuickNote{Note: n2})
	require.Len(t, s.QuickNotes, 2)

	// Duplicate id: no-op.
	s = store.Apply(s, store.AddQuickNote{Note: model.QuickNote{ID: "note-1", Content: "dup"}})
	require.Len(t, s.QuickNotes, 2)

	// Edit keeps position and CreatedAt.
	edited := n1
	edited.Content = "vendor called back already"
	s = store.Apply(s, store.UpdateQuickNote{Note: edited})
	assert.Equal(t, "vendor called back already", s.QuickNotes[0].Content)
	assert.Equal(t, "2025-03-14T10:00:00Z", s.QuickNotes[0].CreatedAt)

	s = store.Apply(s, store.DeleteQuickNote{ID: "note-1"})
	require.Len(t, s.QuickNotes, 1)
	assert.Equal(t, "note-2", s.QuickNotes[0].ID)

	s = store.Apply(s, store.DeleteQuickNote{ID: "note-404"})
	require.Len(t, s.QuickNotes, 1)
}

func TestApplyIDUniquenessUnderCommandSequences(t *testing.T) {
	s := store.NewState()

	cmds := []store.Command{
		store.AddMeeting{Meeting: meeting("mtg-1", "A")},
		store.AddMeeting{Meeting: meeting("mtg-2", "B")},
		store.AddMeeting{Meeting: meeting("mtg-1", "A again")},
		store.UpdateMeeting{Meeting: meeting("mtg-2", "B2")},
		store.DeleteMeeting{ID: "mtg-1"},
		store.AddMeeting{Meeting: meeting("mtg-1", "A reborn")},
		store.AddIssue{MeetingID: "mtg-2", Issue: model.NewIssue("iss-1", "x")},
		store.AddIssue{MeetingID: "mtg-9", Issue: model.NewIssue("iss-2", "orphan")},
		store.DeleteIssue{MeetingID: "mtg-2", IssueID: "iss-404"},
	}
	for _, cmd := range cmds {
		s = store.Apply(s, cmd)
	}

	seen := map[string]bool{}
	for _, m := range s.Data.Meetings {
		assert.False(t, seen[m.ID], "duplicate meeting id %s", m.ID)
		seen[m.ID] = true
	}
}

func TestDispatchWritesThrough(t *testing.T) {
	adapter := testutil.NewTestAdapter(t)
	st := store.New(adapter)

	st.Dispatch(store.AddMeeting{Meeting: meeting("mtg-1", "Kickoff")})
	st.Dispatch(store.AddIssue{MeetingID: "mtg-1", Issue: model.NewIssue("iss-1", "budget")})
	st.Dispatch(store.AddQuickNote{Note: model.QuickNote{ID: "note-1", Content: "hi", CreatedAt: "2025-03-14T10:00:00Z"}})
	st.Dispatch(store.ToggleDarkMode{})

	// A fresh store over the same adapter sees everything.
	st2 := store.New(adapter)
	s := st2.State()
	require.Len(t, s.Data.Meetings, 1)
	require.Len(t, s.Data.Meetings[0].Issues, 1)
	require.Len(t, s.QuickNotes, 1)
	assert.True(t, s.DarkMode)
}

func TestDispatchDeleteMeetingPersistsCascade(t *testing.T) {
	adapter := testutil.NewTestAdapter(t)
	st := store.New(adapter)

	st.Dispatch(store.AddMeeting{Meeting: meeting("mtg-1", "Kickoff",
		issue("iss-1", "budget", model.StatusPending))})
	st.Dispatch(store.DeleteMeeting{ID: "mtg-1"})

	st2 := store.New(adapter)
	assert.Empty(t, st2.State().Data.Meetings)
}

package storage_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtran/meeting-tracker/internal/model"
	"github.com/mtran/meeting-tracker/internal/storage"
	"github.com/mtran/meeting-tracker/tests/testutil"
)

func sampleData() model.AppData {
	return model.AppData{Meetings: []model.Meeting{
		{
			ID: "mtg-1", Title: "Kickoff", Date: "2025-03-14", Client: "Acme Corp",
			Issues: []model.Issue{
				{
					ID: "iss-1", Topic: "budget", Status: model.StatusPending,
					Priority: model.PriorityHigh, Assignee: "dana",
				},
				// Empty optional strings must survive the round trip.
				{ID: "iss-2", Topic: "timeline", Status: model.StatusSolved, Priority: model.PriorityLow},
			},
		},
		{ID: "mtg-2", Title: "Review", Date: "2025-04-01", Client: "Globex", Issues: []model.Issue{}},
	}}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	a := testutil.NewTestAdapter(t)

	data := sampleData()
	a.SaveData(data)

	got := a.LoadData()
	assert.Equal(t, data, got)
}

func TestLoadDataDefaultsWhenAbsent(t *testing.T) {
	a := testutil.NewTestAdapter(t)

	got := a.LoadData()
	assert.Equal(t, model.DefaultData(), got)
	assert.NotNil(t, got.Meetings)
}

func TestLoadDataDefaultsOnMalformedJSON(t *testing.T) {
	kv := testutil.NewTestKV(t)
	require.NoError(t, kv.Set(storage.DataKey, "{not json"))
	a := storage.New(kv, slog.Default())

	got := a.LoadData()
	assert.Equal(t, model.DefaultData(), got)
}

func TestQuickNotesRoundTrip(t *testing.T) {
	a := testutil.NewTestAdapter(t)

	notes := []model.QuickNote{
		{ID: "note-1", Content: "call back the vendor", CreatedAt: "2025-03-14T10:00:00Z", Title: "vendor"},
		{ID: "note-2", Content: "send the slides", CreatedAt: "2025-03-14T11:00:00Z"},
	}
	a.SaveQuickNotes(notes)

	got := a.LoadQuickNotes()
	assert.Equal(t, notes, got)
}

func TestQuickNotesDefaultEmpty(t *testing.T) {
	a := testutil.NewTestAdapter(t)
	assert.Empty(t, a.LoadQuickNotes())
}

func TestDarkModeFlag(t *testing.T) {
	a := testutil.NewTestAdapter(t)

	assert.False(t, a.LoadDarkMode())

	a.SaveDarkMode(true)
	assert.True(t, a.LoadDarkMode())

	a.SaveDarkMode(false)
	assert.False(t, a.LoadDarkMode())
}

func TestDarkModeDefaultsOnMalformedJSON(t *testing.T) {
	kv := testutil.NewTestKV(t)
	require.NoError(t, kv.Set(storage.DarkModeKey, "maybe"))
	a := storage.New(kv, slog.Default())

	assert.False(t, a.LoadDarkMode())
}

func TestClearAllKeepsDarkMode(t *testing.T) {
	a := testutil.NewTestAdapter(t)

	a.SaveData(sampleData())
	a.SaveQuickNotes([]model.QuickNote{{ID: "note-1", Content: "x", CreatedAt: "2025-03-14T10:00:00Z"}})
	a.SaveDarkMode(true)

	a.ClearAll()

	assert.Equal(t, model.DefaultData(), a.LoadData())
	assert.Empty(t, a.LoadQuickNotes())
	assert.True(t, a.LoadDarkMode())
}

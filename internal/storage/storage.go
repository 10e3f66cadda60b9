// Package storage maps the in-memory aggregates onto the local
// key-value store. Reads fall back to empty defaults and writes are
// logged-and-swallowed: the in-memory state stays authoritative for
// the session even if durability is lost.
package storage

import (
	"encoding/json"
	"log/slog"

	"github.com/mtran/meeting-tracker/internal/kvstore"
	"github.com/mtran/meeting-tracker/internal/model"
)

// Storage keys. These match the keys used by earlier versions of the
// tracker, so an existing database keeps loading.
const (
	DataKey       = "meeting-tracker-data"
	QuickNotesKey = "meeting-tracker-quick-notes"
	DarkModeKey   = "meeting-tracker-dark-mode"
)

// Adapter persists the application aggregates under fixed keys in a
// KVStore.
type Adapter struct {
	kv  *kvstore.KVStore
	log *slog.Logger
}

// New creates an adapter over the given store. If logger is nil,
// slog.Default() is used.
func New(kv *kvstore.KVStore, logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Adapter{kv: kv, log: logger}
}

// LoadData reads the meeting aggregate. An absent key or a value that
// fails to parse yields the default empty aggregate; errors are logged
// but never returned.
func (a *Adapter) LoadData() model.AppData {
	raw, ok, err := a.kv.Get(DataKey)
	if err != nil {
		a.log.Error("loading data", "key", DataKey, "error", err)
		return model.DefaultData()
	}
	if !ok {
		return model.DefaultData()
	}

	var data model.AppData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		a.log.Error("parsing stored data", "key", DataKey, "error", err)
		return model.DefaultData()
	}
	if data.Meetings == nil {
		data.Meetings = []model.Meeting{}
	}
	return data
}

// SaveData writes the meeting aggregate. Failures are logged and
// swallowed; no retry is attempted.
func (a *Adapter) SaveData(data model.AppData) {
	raw, err := json.Marshal(data)
	if err != nil {
		a.log.Error("encoding data", "key", DataKey, "error", err)
		return
	}
	if err := a.kv.Set(DataKey, string(raw)); err != nil {
		a.log.Error("saving data", "key", DataKey, "error", err)
	}
}

// LoadQuickNotes reads the quick-notes collection, defaulting to an
// empty slice on absence or parse failure.
func (a *Adapter) LoadQuickNotes() []model.QuickNote {
	raw, ok, err := a.kv.Get(QuickNotesKey)
	if err != nil {
		a.log.Error("loading quick notes", "key", QuickNotesKey, "error", err)
		return []model.QuickNote{}
	}
	if !ok {
		return []model.QuickNote{}
	}

	var notes []model.QuickNote
	if err := json.Unmarshal([]byte(raw), &notes); err != nil {
		a.log.Error("parsing stored quick notes", "key", QuickNotesKey, "error", err)
		return []model.QuickNote{}
	}
	if notes == nil {
		notes = []model.QuickNote{}
	}
	return notes
}

// SaveQuickNotes writes the quick-notes collection. Failures are
// logged and swallowed.
func (a *Adapter) SaveQuickNotes(notes []model.QuickNote) {
	raw, err := json.Marshal(notes)
	if err != nil {
		a.log.Error("encoding quick notes", "key", QuickNotesKey, "error", err)
		return
	}
	if err := a.kv.Set(QuickNotesKey, string(raw)); err != nil {
		a.log.Error("saving quick notes", "key", QuickNotesKey, "error", err)
	}
}

// LoadDarkMode reads the dark-mode flag, defaulting to false.
func (a *Adapter) LoadDarkMode() bool {
	raw, ok, err := a.kv.Get(DarkModeKey)
	if err != nil {
		a.log.Error("loading dark mode flag", "key", DarkModeKey, "error", err)
		return false
	}
	if !ok {
		return false
	}

	var dark bool
	if err := json.Unmarshal([]byte(raw), &dark); err != nil {
		a.log.Error("parsing dark mode flag", "key", DarkModeKey, "error", err)
		return false
	}
	return dark
}

// SaveDarkMode writes the dark-mode flag. Failures are logged and
// swallowed.
func (a *Adapter) SaveDarkMode(dark bool) {
	raw, err := json.Marshal(dark)
	if err != nil {
		a.log.Error("encoding dark mode flag", "key", DarkModeKey, "error", err)
		return
	}
	if err := a.kv.Set(DarkModeKey, string(raw)); err != nil {
		a.log.Error("saving dark mode flag", "key", DarkModeKey, "error", err)
	}
}

// ClearAll removes the meeting aggregate and quick-notes keys. The
// dark-mode preference is kept.
func (a *Adapter) ClearAll() {
	if err := a.kv.Delete(DataKey); err != nil {
		a.log.Error("clearing data", "key", DataKey, "error", err)
	}
	if err := a.kv.Delete(QuickNotesKey); err != nil {
		a.log.Error("clearing quick notes", "key", QuickNotesKey, "error", err)
	}
}

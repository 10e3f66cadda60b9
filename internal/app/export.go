package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mtran/meeting-tracker/internal/export"
)

// exportJSON writes the current aggregate as JSON into the configured
// export directory and returns a status-bar message.
func (m *Model) exportJSON() string {
	path := m.exportPath("json")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Sprintf("export failed: %v", err)
	}
	defer f.Close()

	if err := export.WriteJSON(f, m.store.State().Data); err != nil {
		return fmt.Sprintf("export failed: %v", err)
	}
	return "exported " + path
}

// exportCSV writes the current aggregate as CSV into the configured
// export directory and returns a status-bar message.
func (m *Model) exportCSV() string {
	path := m.exportPath("csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Sprintf("export failed: %v", err)
	}
	defer f.Close()

	if err := export.WriteCSV(f, m.store.State().Data); err != nil {
		return fmt.Sprintf("export failed: %v", err)
	}
	return "exported " + path
}

// exportPath builds a timestamped file name under the export dir.
func (m *Model) exportPath(ext string) string {
	name := fmt.Sprintf("meeting-tracker-%s.%s",
		time.Now().Format("2006-01-02T15-04-05"), ext)
	return filepath.Join(m.cfg.Export.Dir, name)
}

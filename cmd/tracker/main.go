package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mtran/meeting-tracker/internal/app"
	"github.com/mtran/meeting-tracker/internal/export"
	"github.com/mtran/meeting-tracker/internal/kvstore"
	"github.com/mtran/meeting-tracker/internal/logging"
	"github.com/mtran/meeting-tracker/internal/model"
	"github.com/mtran/meeting-tracker/internal/storage"
	"github.com/mtran/meeting-tracker/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", model.DefaultConfigPath(), "path to config file")
	importPath := flag.String("import", "", "import meetings from a JSON file and exit")
	exportJSONPath := flag.String("export-json", "", "export meetings to a JSON file and exit")
	exportCSVPath := flag.String("export-csv", "", "export meetings to a CSV file and exit")
	debugExportPath := flag.String("debug-export", "", "export meetings with debug metadata and exit")
	reset := flag.Bool("reset", false, "clear all stored meetings and quick notes, then exit")
	flag.Parse()

	cfg, err := model.LoadConfig(*configPath)
	if err != nil {
		return err
	}

	logger, logFile, err := logging.Setup(cfg.Log.Dir, cfg.Log.MaxFiles)
	if err != nil {
		// The tracker still works without a log file.
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		logger = slog.New(slog.DiscardHandler)
	} else {
		defer logFile.Close()
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	kv, err := kvstore.Open(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer kv.Close()

	adapter := storage.New(kv, logger)
	st := store.New(adapter)

	switch {
	case *importPath != "":
		return runImport(st, *importPath)
	case *exportJSONPath != "":
		return runExport(*exportJSONPath, func(f *os.File) error {
			return export.WriteJSON(f, st.State().Data)
		})
	case *exportCSVPath != "":
		return runExport(*exportCSVPath, func(f *os.File) error {
			return export.WriteCSV(f, st.State().Data)
		})
	case *debugExportPath != "":
		return runExport(*debugExportPath, func(f *os.File) error {
			return export.WriteDebugJSON(f, st.State().Data, adapter.LoadData())
		})
	case *reset:
		adapter.ClearAll()
		fmt.Println("all meetings and quick notes cleared")
		return nil
	}

	p := tea.NewProgram(app.New(st, cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running ui: %w", err)
	}
	return nil
}

// runImport replaces the stored aggregate with the file's contents.
// A file that fails to parse leaves existing data untouched.
func runImport(st *store.Store, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening import file: %w", err)
	}
	defer f.Close()

	data, err := export.ReadJSON(f)
	if err != nil {
		return fmt.Errorf("import aborted, existing data unchanged: %w", err)
	}

	st.Dispatch(store.ReplaceAllData{Data: data})
	fmt.Printf("imported %d meetings from %s\n", len(data.Meetings), path)
	return nil
}

// runExport writes one export file via the provided writer func.
func runExport(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()

	if err := write(f); err != nil {
		return err
	}
	fmt.Printf("exported to %s\n", path)
	return nil
}

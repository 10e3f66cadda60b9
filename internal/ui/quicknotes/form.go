package quicknotes

import (
	"errors"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/mtran/meeting-tracker/internal/identifier"
	"github.com/mtran/meeting-tracker/internal/model"
	"github.com/mtran/meeting-tracker/internal/theme"
)

// noteForm is the embedded create/edit form for a quick note. Bindings
// live on the heap so huh's Value() pointers survive model copies.
type noteForm struct {
	form    *huh.Form
	title   *string
	content *string
	edit    bool
	editing model.QuickNote
}

// newNoteForm builds a form pre-filled from note (zero value for
// create mode).
func newNoteForm(note model.QuickNote, edit bool, width int) *noteForm {
	title := note.Title
	content := note.Content

	f := &noteForm{
		title:   &title,
		content: &content,
		edit:    edit,
		editing: note,
	}

	f.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Description("optional").
				Value(f.title),
			huh.NewText().
				Title("Content").
				Value(f.content).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("content is required")
					}
					return nil
				}),
		),
	).WithWidth(width - 4)

	return f
}

// Init starts the form.
func (f *noteForm) Init() tea.Cmd {
	return f.form.Init()
}

// Update advances the form. done is true when the form finished;
// result is nil when it was aborted.
func (f *noteForm) Update(msg tea.Msg) (done bool, result *SubmittedMsg, cmd tea.Cmd) {
	mdl, cmd := f.form.Update(msg)
	if frm, ok := mdl.(*huh.Form); ok {
		f.form = frm
	}

	if f.form.State == huh.StateAborted {
		return true, nil, nil
	}
	if f.form.State != huh.StateCompleted {
		return false, nil, cmd
	}

	note := f.editing
	if !f.edit {
		note = model.QuickNote{
			ID:        identifier.New(identifier.PrefixQuickNote),
			CreatedAt: time.Now().UTC().Format(time.RFC3339),
		}
	}
	// CreatedAt is set once at creation and survives edits untouched.
	note.Title = strings.TrimSpace(*f.title)
	note.Content = strings.TrimSpace(*f.content)

	return true, &SubmittedMsg{Note: note, Edit: f.edit}, nil
}

// View renders the form.
func (f *noteForm) View(t theme.Theme) string {
	titleText := "New Quick Note"
	if f.edit {
		titleText = "Edit Quick Note"
	}
	return t.Title.Render(titleText) + "\n" + f.form.View()
}

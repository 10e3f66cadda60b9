// Package export serializes the meeting aggregate for file export and
// parses it back on import. JSON is the canonical interchange format;
// CSV is a flattened, spreadsheet-friendly rendering.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mtran/meeting-tracker/internal/model"
)

// csvHeader is the fixed column order of the CSV export.
var csvHeader = []string{
	"Meeting ID", "Meeting Title", "Date", "Client",
	"Issue ID", "Topic", "Status", "Priority",
	"Assignee", "Solution", "Note",
}

// WriteJSON writes data as an indented JSON document with the exact
// shape of AppData.
func WriteJSON(w io.Writer, data model.AppData) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("encoding export: %w", err)
	}
	return nil
}

// debugMeta is the extra metadata block attached to debug exports.
type debugMeta struct {
	Timestamp     string        `json:"timestamp"`
	TotalMeetings int           `json:"totalMeetings"`
	TotalIssues   int           `json:"totalIssues"`
	Stored        model.AppData `json:"localStorage"`
}

// debugExport wraps the live aggregate with a _debug metadata block.
type debugExport struct {
	Meetings []model.Meeting `json:"meetings"`
	Debug    debugMeta       `json:"_debug"`
}

// WriteDebugJSON writes data together with a `_debug` wrapper holding
// an export timestamp, entity counts, and the aggregate as currently
// persisted (which can differ from memory if writes have been
// failing).
func WriteDebugJSON(w io.Writer, data, stored model.AppData) error {
	totalIssues := 0
	for _, m := range data.Meetings {
		totalIssues += len(m.Issues)
	}

	out := debugExport{
		Meetings: data.Meetings,
		Debug: debugMeta{
			Timestamp:     time.Now().UTC().Format(time.RFC3339),
			TotalMeetings: len(data.Meetings),
			TotalIssues:   totalIssues,
			Stored:        stored,
		},
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encoding debug export: %w", err)
	}
	return nil
}

// WriteCSV writes one row per issue, repeating the owning meeting's
// fields on each row. A meeting with no issues still gets one row,
// with the issue columns empty. Every field is double-quoted, with
// embedded quotes escaped by doubling.
//
// encoding/csv is deliberately not used here: it quotes fields only
// when necessary, while this format quotes unconditionally to stay
// byte-compatible with exports produced by earlier versions.
func WriteCSV(w io.Writer, data model.AppData) error {
	var sb strings.Builder
	writeRow(&sb, csvHeader)

	for _, m := range data.Meetings {
		if len(m.Issues) == 0 {
			writeRow(&sb, []string{m.ID, m.Title, m.Date, m.Client, "", "", "", "", "", "", ""})
			continue
		}
		for _, is := range m.Issues {
			writeRow(&sb, []string{
				m.ID, m.Title, m.Date, m.Client,
				is.ID, is.Topic, is.Status, is.Priority,
				is.Assignee, is.Solution, is.Note,
			})
		}
	}

	if _, err := io.WriteString(w, strings.TrimSuffix(sb.String(), "\n")); err != nil {
		return fmt.Errorf("writing csv export: %w", err)
	}
	return nil
}

// writeRow appends one quoted, comma-separated row plus newline.
func writeRow(sb *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte('"')
		sb.WriteString(strings.ReplaceAll(f, `"`, `""`))
		sb.WriteByte('"')
	}
	sb.WriteByte('\n')
}

// ReadJSON parses an AppData-shaped JSON document. A document that is
// not valid JSON yields an error; the caller decides whether to apply
// the result. Beyond parseability no schema validation is performed:
// fields absent from the document come back as zero values, and a
// missing meetings list is coerced to empty.
func ReadJSON(r io.Reader) (model.AppData, error) {
	var data model.AppData
	dec := json.NewDecoder(r)
	if err := dec.Decode(&data); err != nil {
		return model.AppData{}, fmt.Errorf("parsing import: %w", err)
	}
	if data.Meetings == nil {
		data.Meetings = []model.Meeting{}
	}
	return data, nil
}

package export_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtran/meeting-tracker/internal/export"
	"github.com/mtran/meeting-tracker/internal/model"
)

func sampleData() model.AppData {
	return model.AppData{Meetings: []model.Meeting{
		{
			ID: "mtg-1", Title: "Kickoff", Date: "2025-03-14", Client: "Acme Corp",
			Issues: []model.Issue{
				{
					ID: "iss-1", Topic: "budget", Status: model.StatusPending,
					Priority: model.PriorityHigh, Assignee: "dana",
					Solution: "", Note: "",
				},
				{
					ID: "iss-2", Topic: "timeline", Status: model.StatusSolved,
					Priority: model.PriorityLow, Solution: "pushed a week",
				},
			},
		},
		{ID: "mtg-2", Title: "Review", Date: "2025-04-01", Client: "Globex", Issues: []model.Issue{}},
	}}
}

func TestJSONRoundTrip(t *testing.T) {
	data := sampleData()

	var buf bytes.Buffer
	require.NoError(t, export.WriteJSON(&buf, data))

	got, err := export.ReadJSON(&buf)
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestReadJSONRejectsInvalidJSON(t *testing.T) {
	_, err := export.ReadJSON(strings.NewReader("{meetings: oops"))
	require.Error(t, err)
}

func TestReadJSONCoercesMissingMeetings(t *testing.T) {
	got, err := export.ReadJSON(strings.NewReader(`{}`))
	require.NoError(t, err)
	assert.NotNil(t, got.Meetings)
	assert.Empty(t, got.Meetings)
}

func TestWriteCSVHeaderAndRowCounts(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteCSV(&buf, sampleData()))

	lines := strings.Split(buf.String(), "\n")
	// Header + two issue rows for mtg-1 + one empty-issue row for mtg-2.
	require.Len(t, lines, 4)
	assert.Equal(t,
		`"Meeting ID","Meeting Title","Date","Client","Issue ID","Topic","Status","Priority","Assignee","Solution","Note"`,
		lines[0])

	// Meeting fields repeat on every issue row.
	assert.True(t, strings.HasPrefix(lines[1], `"mtg-1","Kickoff","2025-03-14","Acme Corp","iss-1"`))
	assert.True(t, strings.HasPrefix(lines[2], `"mtg-1","Kickoff","2025-03-14","Acme Corp","iss-2"`))

	// Zero-issue meeting: one row, issue columns all empty.
	assert.Equal(t, `"mtg-2","Review","2025-04-01","Globex","","","","","","",""`, lines[3])
}

func TestWriteCSVEscapesQuotes(t *testing.T) {
	data := model.AppData{Meetings: []model.Meeting{
		{
			ID: "mtg-1", Title: `Sync re: "phase 2"`, Date: "2025-03-14", Client: "Acme",
			Issues: []model.Issue{
				{ID: "iss-1", Topic: `the "big" one`, Status: model.StatusPending, Priority: model.PriorityMedium},
			},
		},
	}}

	var buf bytes.Buffer
	require.NoError(t, export.WriteCSV(&buf, data))

	assert.Contains(t, buf.String(), `"Sync re: ""phase 2"""`)
	assert.Contains(t, buf.String(), `"the ""big"" one"`)
}

func TestWriteDebugJSONIncludesMetadata(t *testing.T) {
	data := sampleData()
	stored := model.DefaultData()

	var buf bytes.Buffer
	require.NoError(t, export.WriteDebugJSON(&buf, data, stored))

	var out struct {
		Meetings []model.Meeting `json:"meetings"`
		Debug    struct {
			Timestamp     string        `json:"timestamp"`
			TotalMeetings int           `json:"totalMeetings"`
			TotalIssues   int           `json:"totalIssues"`
			Stored        model.AppData `json:"localStorage"`
		} `json:"_debug"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	assert.Len(t, out.Meetings, 2)
	assert.Equal(t, 2, out.Debug.TotalMeetings)
	assert.Equal(t, 2, out.Debug.TotalIssues)
	assert.NotEmpty(t, out.Debug.Timestamp)
	assert.Empty(t, out.Debug.Stored.Meetings)
}

package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mtran/meeting-tracker/internal/model"
	"github.com/mtran/meeting-tracker/internal/stats"
)

func TestComputeEmpty(t *testing.T) {
	got := stats.Compute(model.AppData{Meetings: []model.Meeting{}})
	assert.Equal(t, model.DashboardStats{}, got)
}

func TestComputeCountsPerStatus(t *testing.T) {
	data := model.AppData{Meetings: []model.Meeting{
		{
			ID: "mtg-1", Title: "M1",
			Issues: []model.Issue{
				{ID: "iss-1", Topic: "a", Status: model.StatusPending},
				{ID: "iss-2", Topic: "b", Status: model.StatusPending},
			},
		},
		{
			ID: "mtg-2", Title: "M2",
			Issues: []model.Issue{
				{ID: "iss-3", Topic: "c", Status: model.StatusSolved},
				{ID: "iss-4", Topic: "d", Status: model.StatusArchived},
			},
		},
	}}

	got := stats.Compute(data)

	assert.Equal(t, model.DashboardStats{
		TotalMeetings:    2,
		TotalIssues:      4,
		PendingIssues:    2,
		InProgressIssues: 0,
		SolvedIssues:     1,
		ArchivedIssues:   1,
	}, got)
}

func TestComputeMeetingWithoutIssues(t *testing.T) {
	data := model.AppData{Meetings: []model.Meeting{
		{ID: "mtg-1", Title: "M1", Issues: []model.Issue{}},
	}}

	got := stats.Compute(data)

	assert.Equal(t, 1, got.TotalMeetings)
	assert.Equal(t, 0, got.TotalIssues)
}

// Package stats derives dashboard aggregates from the meeting data.
package stats

import "github.com/mtran/meeting-tracker/internal/model"

// Compute flattens all issues across all meetings and counts totals
// and per-status tallies. It is pure and cheap enough to recompute on
// every state change; the result is never persisted. An empty
// aggregate yields all zeros.
func Compute(data model.AppData) model.DashboardStats {
	s := model.DashboardStats{
		TotalMeetings: len(data.Meetings),
	}

	for _, m := range data.Meetings {
		s.TotalIssues += len(m.Issues)
		for _, issue := range m.Issues {
			switch issue.Status {
			case model.StatusPending:
				s.PendingIssues++
			case model.StatusInProgress:
				s.InProgressIssues++
			case model.StatusSolved:
				s.SolvedIssues++
			case model.StatusArchived:
				s.ArchivedIssues++
			}
		}
	}

	return s
}

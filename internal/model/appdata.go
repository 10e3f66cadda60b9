package model

// AppData is the full persisted aggregate: everything the tracker
// knows about meetings and their issues. It is the unit of
// persistence and of JSON import/export.
type AppData struct {
	Meetings []Meeting `json:"meetings"`
}

// DefaultData returns the empty aggregate used when nothing has been
// stored yet or when the stored value cannot be read.
func DefaultData() AppData {
	return AppData{Meetings: []Meeting{}}
}

// DashboardStats holds aggregate counts derived from AppData. It is
// recomputed on demand and never persisted.
type DashboardStats struct {
	TotalMeetings    int `json:"totalMeetings"`
	TotalIssues      int `json:"totalIssues"`
	PendingIssues    int `json:"pendingIssues"`
	InProgressIssues int `json:"inProgressIssues"`
	SolvedIssues     int `json:"solvedIssues"`
	ArchivedIssues   int `json:"archivedIssues"`
}

package model

// Issue status constants. The string values are part of the stored
// format and must not change.
const (
	StatusPending    = "pending"
	StatusInProgress = "in progress"
	StatusSolved     = "solved"
	StatusArchived   = "archived"
)

// Issue priority constants.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Statuses lists all issue statuses in display order.
var Statuses = []string{StatusPending, StatusInProgress, StatusSolved, StatusArchived}

// Priorities lists all issue priorities in display order.
var Priorities = []string{PriorityLow, PriorityMedium, PriorityHigh}

// Issue is a single discussion point or action item raised in a meeting.
// An issue belongs to exactly one meeting; it is never shared or moved.
type Issue struct {
	// ID is unique within the owning meeting, immutable once created.
	ID string `json:"id"`

	// Topic is the required short description of the issue.
	Topic string `json:"topic"`

	// Status is one of the Status* constants. New issues start pending.
	Status string `json:"status"`

	// Solution records how the issue was resolved.
	Solution string `json:"solution"`

	// Priority is one of the Priority* constants. Defaults to medium.
	Priority string `json:"priority"`

	// Assignee is the person responsible for the issue.
	Assignee string `json:"assignee"`

	// Note holds any additional freeform text.
	Note string `json:"note"`
}

// Meeting is one client meeting together with the issues it owns.
// Deleting a meeting deletes all of its issues.
type Meeting struct {
	// ID is unique across all meetings, immutable once created.
	ID string `json:"id"`

	// Title is the meeting's display name.
	Title string `json:"title"`

	// Date is an ISO-8601 calendar date string (YYYY-MM-DD).
	Date string `json:"date"`

	// Client is the client the meeting was held with.
	Client string `json:"client"`

	// Issues is the ordered list of issues discussed in this meeting.
	Issues []Issue `json:"issues"`
}

// NewIssue returns an issue with the given topic and creation defaults
// applied. The caller is responsible for validating that topic is
// non-empty before constructing a command with the result.
func NewIssue(id, topic string) Issue {
	return Issue{
		ID:       id,
		Topic:    topic,
		Status:   StatusPending,
		Priority: PriorityMedium,
	}
}

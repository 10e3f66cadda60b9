package model

// QuickNote is a freeform note independent of any meeting. Quick notes
// are persisted separately from the meeting aggregate.
type QuickNote struct {
	// ID is unique across all quick notes, immutable once created.
	ID string `json:"id"`

	// Content is the required note body.
	Content string `json:"content"`

	// CreatedAt is an ISO-8601 timestamp set once at creation and
	// never changed by later edits.
	CreatedAt string `json:"createdAt"`

	// Title is an optional display name.
	Title string `json:"title,omitempty"`
}

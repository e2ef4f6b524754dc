package models

// Card carries the scheduling state for one note. A note may own zero or
// more cards; in practice there is at most one, but nothing may rely on
// that.
type Card struct {
	// ID is the server-assigned card identifier.
	ID int64 `json:"id"`

	// NoteID references the owning note.
	NoteID int64 `json:"noteId"`

	// DueAt is the next review time in Unix milliseconds.
	DueAt int64 `json:"dueAt"`

	// IntervalDays is the current repetition interval.
	IntervalDays int `json:"intervalDays"`

	// Ease is the SRS ease factor.
	Ease float64 `json:"ease"`

	// Reps counts completed reviews.
	Reps int `json:"reps"`

	// Lapses counts times the card fell back to relearning.
	Lapses int `json:"lapses"`

	// Status is the scheduler state label (new/learning/review/...). The
	// client stores it verbatim; only the server interprets it.
	Status string `json:"status"`

	// UpdatedAt is the last modification time in Unix milliseconds.
	UpdatedAt int64 `json:"updatedAt"`

	// Deleted marks a tombstone in a sync delta.
	Deleted bool `json:"deleted,omitempty"`
}

// TableName returns the name of the database table
// associated with the Card model.
func (c *Card) TableName() string {
	return "cards"
}

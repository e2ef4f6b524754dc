package models

// Deck is a named collection of notes. Deck identifiers are assigned by the
// server; the client never invents deck IDs outside of mock seeding.
type Deck struct {
	// ID is the server-assigned deck identifier.
	ID int64 `json:"id"`

	// Name is the human-readable deck name.
	Name string `json:"name"`

	// Deleted marks a tombstone in a sync delta. A deleted deck must be
	// removed locally instead of stored.
	Deleted bool `json:"deleted,omitempty"`
}

// TableName returns the name of the database table
// associated with the Deck model.
func (d *Deck) TableName() string {
	return "decks"
}

package models

// Note is a single fact stored in a deck: the front/back text pair plus
// optional language metadata. A note belongs to exactly one deck via DeckID.
// The reference is soft: a dangling DeckID after a partial delete is
// tolerated, not enforced.
type Note struct {
	// ID is the server-assigned note identifier.
	ID int64 `json:"id"`

	// DeckID references the owning deck.
	DeckID int64 `json:"deckId"`

	// Front is the prompt side of the note.
	Front string `json:"front"`

	// Back is the answer side of the note.
	Back string `json:"back"`

	// Reading is an optional pronunciation hint (e.g. kana for kanji).
	Reading *string `json:"reading,omitempty"`

	// Pos is an optional part-of-speech label.
	Pos *string `json:"pos,omitempty"`

	// Examples holds optional example sentences.
	Examples *string `json:"examples,omitempty"`

	// Tags holds optional comma-separated user tags.
	Tags *string `json:"tags,omitempty"`

	// UpdatedAt is the last modification time in Unix milliseconds.
	// Remote upserts carry their own value; local edits stamp it to now.
	UpdatedAt int64 `json:"updatedAt"`

	// Deleted marks a tombstone in a sync delta.
	Deleted bool `json:"deleted,omitempty"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n *Note) TableName() string {
	return "notes"
}

// NotePatch describes a partial local edit of a note. Nil fields are left
// untouched.
type NotePatch struct {
	Front    *string
	Back     *string
	Reading  *string
	Pos      *string
	Examples *string
	Tags     *string
}

package models

// DeckSummary is a deck joined with its aggregate counters, computed by
// full scan at personal-dataset scale.
type DeckSummary struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	NotesCount int    `json:"notesCount"`
	CardsCount int    `json:"cardsCount"`
	DueCount   int    `json:"dueCount"`
}

// StudyCard is a card joined with the note fields needed to present it.
type StudyCard struct {
	CardID   int64   `json:"cardId"`
	NoteID   int64   `json:"noteId"`
	Front    string  `json:"front"`
	Back     string  `json:"back"`
	Reading  *string `json:"reading,omitempty"`
	Pos      *string `json:"pos,omitempty"`
	Examples *string `json:"examples,omitempty"`
	DueAt    int64   `json:"dueAt"`
}

// CardDetail is the full card view: scheduling state plus every note field.
type CardDetail struct {
	CardID       int64   `json:"cardId"`
	NoteID       int64   `json:"noteId"`
	Front        string  `json:"front"`
	Back         string  `json:"back"`
	Reading      *string `json:"reading,omitempty"`
	Pos          *string `json:"pos,omitempty"`
	Examples     *string `json:"examples,omitempty"`
	Tags         *string `json:"tags,omitempty"`
	DueAt        int64   `json:"dueAt"`
	IntervalDays int     `json:"intervalDays"`
	Ease         float64 `json:"ease"`
	Reps         int     `json:"reps"`
	Lapses       int     `json:"lapses"`
	Status       string  `json:"status"`
}

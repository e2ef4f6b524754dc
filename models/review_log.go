package models

// ReviewLog is an append-only outbox record of a completed review. Logs are
// created exclusively by local rating actions and are never updated except
// to flip Synced from 0 to 1 once the server has acknowledged them.
type ReviewLog struct {
	// ID is the local auto-increment identifier. It never leaves the device.
	ID int64 `json:"id"`

	// CardID references the reviewed card. A non-positive value marks a
	// corrupt legacy record: excluded from transmission and eligible for the
	// one-time purge.
	CardID int64 `json:"cardId"`

	// Rating is the stored rating value. Legacy rows may carry a symbolic
	// label (AGAIN/HARD/GOOD/EASY) instead of a numeric code; use
	// [NormalizeRating] before transmitting.
	Rating string `json:"rating"`

	// Ts is the review time in Unix milliseconds.
	Ts int64 `json:"ts"`

	// LatencyMs is the optional answer latency.
	LatencyMs *int64 `json:"latencyMs,omitempty"`

	// UUID is the globally unique idempotency key the server uses to
	// deduplicate retransmissions.
	UUID string `json:"uuid"`

	// Synced is 0 while the record sits in the outbox and 1 once the server
	// has acknowledged it. The transition never reverses.
	Synced int `json:"synced"`
}

// TableName returns the name of the database table
// associated with the ReviewLog model.
func (r *ReviewLog) TableName() string {
	return "review_logs"
}

package models

// SyncRequest is the body of the unified POST /api/sync call: the client's
// watermark plus the full pending outbox in one round trip.
type SyncRequest struct {
	// LastSyncTimestamp is the watermark of the last reconciled point in
	// Unix milliseconds; 0 requests a full pull.
	LastSyncTimestamp int64 `json:"lastSyncTimestamp"`

	// ReviewLogs is the pending outbox, ratings already normalized.
	ReviewLogs []ReviewUpload `json:"reviewLogs"`
}

// ReviewUpload is a single outbox entry on the unified sync wire.
type ReviewUpload struct {
	CardID     int64  `json:"cardId"`
	Rating     Rating `json:"rating"`
	ReviewedAt int64  `json:"reviewedAt"`
	LatencyMs  *int64 `json:"latencyMs,omitempty"`
	UUID       string `json:"uuid,omitempty"`
}

// SyncDelta is the set of remote changes returned by the unified sync
// endpoint. Every record is a whole-record replacement; entries carrying the
// Deleted marker are tombstones.
type SyncDelta struct {
	Decks []Deck `json:"decks"`
	Notes []Note `json:"notes"`
	Cards []Card `json:"cards"`
}

// SyncResponse is the body returned by POST /api/sync.
type SyncResponse struct {
	// Data holds the delta to apply locally.
	Data SyncDelta `json:"data"`

	// SyncTimestamp is the server's clock at the time of the sync. It
	// becomes the new watermark, keeping client clock skew out of
	// watermark progression.
	SyncTimestamp int64 `json:"syncTimestamp"`
}

// ReviewPush is a single outbox entry on the legacy POST /api/reviews wire.
// The legacy endpoint names the review time "ts" where the unified one uses
// "reviewedAt".
type ReviewPush struct {
	CardID    int64  `json:"cardId"`
	Rating    Rating `json:"rating"`
	Ts        int64  `json:"ts"`
	LatencyMs *int64 `json:"latencyMs,omitempty"`
	UUID      string `json:"uuid,omitempty"`
}

// ReviewsAck is the acknowledgment returned by the legacy reviews endpoint.
type ReviewsAck struct {
	OK        bool `json:"ok"`
	Processed int  `json:"processed"`
}

// SyncCounts reports what a single sync cycle applied and pushed.
type SyncCounts struct {
	Decks  int `json:"decks"`
	Notes  int `json:"notes"`
	Cards  int `json:"cards"`
	Pushed int `json:"pushed"`
}

// ServerInfo is the unauthenticated identity document served at
// /api/server/info. ServerID is the fingerprint used to detect that the
// same URL now points at a different dataset.
type ServerInfo struct {
	ServerID string `json:"serverId"`
}

// PairVerifyResponse is the body returned by GET /pair/verify.
type PairVerifyResponse struct {
	OK bool `json:"ok"`
}

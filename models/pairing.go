package models

// PairingConfig is the association between this client and one remote
// endpoint. Both fields must be non-empty for any sync to run.
type PairingConfig struct {
	ServerURL string `json:"server_url"`
	Token     string `json:"token"`
}

// Paired reports whether both the endpoint and the token are configured.
func (p PairingConfig) Paired() bool {
	return p.ServerURL != "" && p.Token != ""
}

// LocalCounts is a snapshot of the local dataset size plus the current
// watermark, shown on status screens.
type LocalCounts struct {
	Decks      int   `json:"decks"`
	Notes      int   `json:"notes"`
	Cards      int   `json:"cards"`
	LastSyncTs int64 `json:"lastSyncTs"`
}

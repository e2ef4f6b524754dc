package models

// SettingEntry is a single row of the key/value settings collection.
type SettingEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Recognized settings keys. Key strings are part of the persisted layout and
// must not change between releases.
const (
	// SettingServerURL is the paired remote endpoint base URL.
	SettingServerURL = "serverUrl"

	// SettingToken is the pairing auth token sent in the X-Token header.
	SettingToken = "token"

	// SettingServerID is the remote identity fingerprint last seen at boot.
	SettingServerID = "serverId"

	// SettingLastSyncTs is the reconciliation watermark in Unix
	// milliseconds. Delta pulls request records changed after it; 0 forces
	// a full pull.
	SettingLastSyncTs = "lastSyncTs"

	// SettingDailyTarget is the user's daily review goal.
	SettingDailyTarget = "dailyTarget"

	// SettingMockSeeded is "1" once the demo dataset has been inserted.
	SettingMockSeeded = "mock_seeded"

	// SettingMockClearDone is "1" once the demo dataset has been replaced
	// by real synced data. The clear runs exactly once.
	SettingMockClearDone = "mock_clear_done"

	// SettingCleanupV1Done is "1" once the legacy review-log purge has run.
	SettingCleanupV1Done = "cleanup_v1_done"

	// SettingCleanupV1Deleted records how many rows the legacy purge
	// removed.
	SettingCleanupV1Deleted = "cleanup_v1_deleted"
)

// DefaultDailyTarget is used when no dailyTarget setting is stored.
const DefaultDailyTarget = 50

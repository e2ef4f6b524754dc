package service

import "errors"

var (
	// ErrNotPaired is returned by a sync attempt when no endpoint or token
	// is configured. The attempt performs no I/O.
	ErrNotPaired = errors.New("client is not paired with a server")

	// ErrPairingRejected is returned by Pair when the server does not
	// accept the offered token.
	ErrPairingRejected = errors.New("pairing rejected by server")

	// errMalformedSyncResponse marks a unified sync response that decoded
	// but carries no server timestamp. It triggers the legacy fallback.
	errMalformedSyncResponse = errors.New("unified sync response has no server timestamp")
)

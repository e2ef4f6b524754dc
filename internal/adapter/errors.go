package adapter

import "errors"

var (
	// ErrUnauthorized is returned when the server rejects the pairing token
	// with a 401 status.
	ErrUnauthorized = errors.New("client unauthorized")
)

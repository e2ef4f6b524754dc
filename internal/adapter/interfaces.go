// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating
// with the remote flashcard server.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/JSON
// implementation ([NewHTTPServerAdapter]) speaking the fixed endpoint table
// of the sync protocol: the unified /api/sync call plus the legacy
// per-collection endpoints it falls back to.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling.
package adapter

import (
	"context"

	"github.com/MKhiriev/memo-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the remote
// flashcard server. Implementations are responsible for serialisation,
// auth-header management, and mapping transport-level errors to the sentinel
// values defined in this package.
//
// Authenticated calls use the endpoint set via SetEndpoint; the pairing
// service owns the endpoint and refreshes it before every sync cycle, so a
// re-pair takes effect without rebuilding the adapter.
type ServerAdapter interface {
	// SetEndpoint stores the base URL and token attached to all subsequent
	// authenticated requests.
	SetEndpoint(serverURL string, token string)

	// Endpoint returns the currently configured base URL and token.
	Endpoint() (serverURL string, token string)

	// VerifyPairing checks a candidate endpoint/token pair against the
	// public /pair/verify endpoint before anything is persisted. The URL is
	// explicit because the adapter is not yet pointed at the server.
	VerifyPairing(ctx context.Context, serverURL string, token string) (bool, error)

	// FetchServerInfo retrieves the unauthenticated identity document of
	// the given endpoint, used for the boot-time fingerprint check.
	FetchServerInfo(ctx context.Context, serverURL string) (models.ServerInfo, error)

	// FetchDecks retrieves the full remote deck list (legacy sync path).
	FetchDecks(ctx context.Context) ([]models.Deck, error)

	// FetchNotes retrieves notes changed after since (Unix milliseconds);
	// since <= 0 requests the full collection.
	FetchNotes(ctx context.Context, since int64) ([]models.Note, error)

	// FetchCards retrieves cards changed after since; since <= 0 requests
	// the full collection.
	FetchCards(ctx context.Context, since int64) ([]models.Card, error)

	// PostReviews pushes the pending outbox on the legacy wire and returns
	// the server acknowledgment.
	PostReviews(ctx context.Context, items []models.ReviewPush) (models.ReviewsAck, error)

	// PostSync performs the unified sync call: one request carrying the
	// watermark and the outbox, one response carrying the delta and the
	// server clock.
	PostSync(ctx context.Context, req models.SyncRequest) (models.SyncResponse, error)
}

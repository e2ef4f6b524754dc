package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/memo-sync/internal/config"
	"github.com/MKhiriev/memo-sync/internal/logger"
	"github.com/MKhiriev/memo-sync/models"
)

// tokenHeader carries the pairing token on every authenticated endpoint.
const tokenHeader = "X-Token"

type httpServerAdapter struct {
	client *resty.Client
	logger *logger.Logger

	mu        sync.RWMutex
	serverURL string
	token     string
}

// NewHTTPServerAdapter constructs an HTTP/JSON implementation of
// [ServerAdapter]. The base URL and token are not required up front: an
// unpaired client builds the adapter first and points it at a server once
// pairing completes.
func NewHTTPServerAdapter(cfg config.ClientAdapter, log *logger.Logger) ServerAdapter {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	cli := resty.New().SetTimeout(timeout)

	return &httpServerAdapter{client: cli, logger: log}
}

func (h *httpServerAdapter) SetEndpoint(serverURL string, token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.serverURL = strings.TrimRight(strings.TrimSpace(serverURL), "/")
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Endpoint() (string, string) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.serverURL, h.token
}

func (h *httpServerAdapter) VerifyPairing(ctx context.Context, serverURL string, token string) (bool, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("token", token).
		Get(strings.TrimRight(serverURL, "/") + "/pair/verify")
	if err != nil {
		return false, fmt.Errorf("verify pairing request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}

	var body models.PairVerifyResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return false, fmt.Errorf("decode verify pairing response: %w", err)
	}
	return body.OK, nil
}

func (h *httpServerAdapter) FetchServerInfo(ctx context.Context, serverURL string) (models.ServerInfo, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(strings.TrimRight(serverURL, "/") + "/api/server/info")
	if err != nil {
		return models.ServerInfo{}, fmt.Errorf("server info request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ServerInfo{}, err
	}

	var info models.ServerInfo
	if err = json.Unmarshal(resp.Body(), &info); err != nil {
		return models.ServerInfo{}, fmt.Errorf("decode server info response: %w", err)
	}
	return info, nil
}

func (h *httpServerAdapter) FetchDecks(ctx context.Context) ([]models.Deck, error) {
	resp, err := h.authedRequest(ctx).Get(h.url("/api/decks"))
	if err != nil {
		return nil, fmt.Errorf("decks request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var items []models.Deck
	if err = json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("decode decks response: %w", err)
	}
	return items, nil
}

func (h *httpServerAdapter) FetchNotes(ctx context.Context, since int64) ([]models.Note, error) {
	req := h.authedRequest(ctx)
	if since > 0 {
		req.SetQueryParam("since", strconv.FormatInt(since, 10))
	}

	resp, err := req.Get(h.url("/api/notes"))
	if err != nil {
		return nil, fmt.Errorf("notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var items []models.Note
	if err = json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("decode notes response: %w", err)
	}
	return items, nil
}

func (h *httpServerAdapter) FetchCards(ctx context.Context, since int64) ([]models.Card, error) {
	req := h.authedRequest(ctx)
	if since > 0 {
		req.SetQueryParam("since", strconv.FormatInt(since, 10))
	}

	resp, err := req.Get(h.url("/api/cards"))
	if err != nil {
		return nil, fmt.Errorf("cards request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var items []models.Card
	if err = json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("decode cards response: %w", err)
	}
	return items, nil
}

func (h *httpServerAdapter) PostReviews(ctx context.Context, items []models.ReviewPush) (models.ReviewsAck, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(items).
		Post(h.url("/api/reviews"))
	if err != nil {
		return models.ReviewsAck{}, fmt.Errorf("reviews request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ReviewsAck{}, err
	}

	var ack models.ReviewsAck
	if err = json.Unmarshal(resp.Body(), &ack); err != nil {
		return models.ReviewsAck{}, fmt.Errorf("decode reviews response: %w", err)
	}
	return ack, nil
}

func (h *httpServerAdapter) PostSync(ctx context.Context, req models.SyncRequest) (models.SyncResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(h.url("/api/sync"))
	if err != nil {
		return models.SyncResponse{}, fmt.Errorf("sync request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SyncResponse{}, err
	}

	var sr models.SyncResponse
	if err = json.Unmarshal(resp.Body(), &sr); err != nil {
		return models.SyncResponse{}, fmt.Errorf("decode sync response: %w", err)
	}
	return sr, nil
}

func (h *httpServerAdapter) url(path string) string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.serverURL + path
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	h.mu.RLock()
	token := h.token
	h.mu.RUnlock()
	if token != "" {
		req.SetHeader(tokenHeader, token)
	}
	return req
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	if resp.StatusCode() == http.StatusUnauthorized {
		return ErrUnauthorized
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
}

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/MKhiriev/memo-sync/internal/adapter"
	"github.com/MKhiriev/memo-sync/internal/logger"
	"github.com/MKhiriev/memo-sync/internal/store"
	"github.com/MKhiriev/memo-sync/models"
)

type pairingService struct {
	local      store.LocalRepository
	adapter    adapter.ServerAdapter
	mirrorPath string
}

// NewPairingService builds the two-tier pairing store. mirrorPath is the
// JSON fallback file written on every Save and consulted when the primary
// tier is missing a field.
func NewPairingService(local store.LocalRepository, serverAdapter adapter.ServerAdapter, mirrorPath string) PairingService {
	return &pairingService{local: local, adapter: serverAdapter, mirrorPath: mirrorPath}
}

func (p *pairingService) Get(ctx context.Context) (models.PairingConfig, error) {
	cfg := models.PairingConfig{}

	var err error
	if cfg.ServerURL, err = p.getSetting(ctx, models.SettingServerURL); err != nil {
		return models.PairingConfig{}, fmt.Errorf("read server url: %w", err)
	}
	if cfg.Token, err = p.getSetting(ctx, models.SettingToken); err != nil {
		return models.PairingConfig{}, fmt.Errorf("read token: %w", err)
	}
	if cfg.Paired() {
		return cfg, nil
	}

	mirror, ok := p.loadMirror(ctx)
	if !ok {
		return cfg, nil
	}

	// Repair the primary tier field by field so both tiers converge after
	// one successful read.
	if cfg.ServerURL == "" && mirror.ServerURL != "" {
		if err = p.local.PutSetting(ctx, models.SettingServerURL, mirror.ServerURL); err != nil {
			return models.PairingConfig{}, fmt.Errorf("repair server url: %w", err)
		}
		cfg.ServerURL = mirror.ServerURL
	}
	if cfg.Token == "" && mirror.Token != "" {
		if err = p.local.PutSetting(ctx, models.SettingToken, mirror.Token); err != nil {
			return models.PairingConfig{}, fmt.Errorf("repair token: %w", err)
		}
		cfg.Token = mirror.Token
	}

	return cfg, nil
}

func (p *pairingService) Save(ctx context.Context, cfg models.PairingConfig) error {
	if err := p.local.PutSetting(ctx, models.SettingServerURL, cfg.ServerURL); err != nil {
		return fmt.Errorf("save server url: %w", err)
	}
	if err := p.local.PutSetting(ctx, models.SettingToken, cfg.Token); err != nil {
		return fmt.Errorf("save token: %w", err)
	}

	if err := p.writeMirror(cfg); err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "pairingService.Save").
			Str("path", p.mirrorPath).
			Msg("pairing mirror write failed")
	}
	return nil
}

func (p *pairingService) Pair(ctx context.Context, serverURL string, token string) error {
	ok, err := p.adapter.VerifyPairing(ctx, serverURL, token)
	if err != nil {
		return fmt.Errorf("verify pairing: %w", err)
	}
	if !ok {
		return ErrPairingRejected
	}

	cfg := models.PairingConfig{ServerURL: serverURL, Token: token}
	if err = p.Save(ctx, cfg); err != nil {
		return err
	}

	p.adapter.SetEndpoint(cfg.ServerURL, cfg.Token)
	return nil
}

func (p *pairingService) GetServerID(ctx context.Context) (string, error) {
	return p.getSetting(ctx, models.SettingServerID)
}

func (p *pairingService) SetServerID(ctx context.Context, id string) error {
	return p.local.PutSetting(ctx, models.SettingServerID, id)
}

func (p *pairingService) GetLastSyncTs(ctx context.Context) (int64, error) {
	raw, err := p.getSetting(ctx, models.SettingLastSyncTs)
	if err != nil {
		return 0, fmt.Errorf("read watermark: %w", err)
	}
	if raw == "" {
		return 0, nil
	}

	ts, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse watermark %q: %w", raw, err)
	}
	return ts, nil
}

func (p *pairingService) SetLastSyncTs(ctx context.Context, ts int64) error {
	return p.local.PutSetting(ctx, models.SettingLastSyncTs, strconv.FormatInt(ts, 10))
}

func (p *pairingService) FullRefresh(ctx context.Context) error {
	return p.SetLastSyncTs(ctx, 0)
}

func (p *pairingService) GetDailyTarget(ctx context.Context) (int, error) {
	raw, err := p.getSetting(ctx, models.SettingDailyTarget)
	if err != nil {
		return 0, fmt.Errorf("read daily target: %w", err)
	}

	target, err := strconv.Atoi(raw)
	if err != nil || target <= 0 {
		return models.DefaultDailyTarget, nil
	}
	return target, nil
}

// getSetting maps an absent key to the empty string so callers only see
// real storage failures.
func (p *pairingService) getSetting(ctx context.Context, key string) (string, error) {
	val, err := p.local.GetSetting(ctx, key)
	if errors.Is(err, store.ErrSettingNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (p *pairingService) loadMirror(ctx context.Context) (models.PairingConfig, bool) {
	raw, err := os.ReadFile(p.mirrorPath)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.FromContext(ctx).Warn().Err(err).
				Str("func", "pairingService.loadMirror").
				Str("path", p.mirrorPath).
				Msg("pairing mirror read failed")
		}
		return models.PairingConfig{}, false
	}

	var cfg models.PairingConfig
	if err = json.Unmarshal(raw, &cfg); err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "pairingService.loadMirror").
			Str("path", p.mirrorPath).
			Msg("pairing mirror is malformed")
		return models.PairingConfig{}, false
	}
	return cfg, true
}

func (p *pairingService) writeMirror(cfg models.PairingConfig) error {
	raw, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal pairing mirror: %w", err)
	}

	if dir := filepath.Dir(p.mirrorPath); dir != "." {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create pairing mirror dir: %w", err)
		}
	}
	if err = os.WriteFile(p.mirrorPath, raw, 0o600); err != nil {
		return fmt.Errorf("write pairing mirror: %w", err)
	}
	return nil
}

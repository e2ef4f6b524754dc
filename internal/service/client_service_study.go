package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/memo-sync/internal/store"
	"github.com/MKhiriev/memo-sync/models"
)

type studyService struct {
	local   store.LocalRepository
	pairing PairingService

	now func() int64
}

// NewClientStudyService builds the local review loop service.
func NewClientStudyService(local store.LocalRepository, pairing PairingService) ClientStudyService {
	return &studyService{
		local:   local,
		pairing: pairing,
		now:     func() int64 { return time.Now().UnixMilli() },
	}
}

func (s *studyService) NextDue(ctx context.Context, deckID int64, limit int) ([]models.StudyCard, error) {
	cards, err := s.local.NextDueCards(ctx, deckID, limit)
	if err != nil {
		return nil, fmt.Errorf("load due cards: %w", err)
	}
	return cards, nil
}

func (s *studyService) RecordReview(ctx context.Context, cardID int64, rating string, latencyMs *int64) (int64, error) {
	grade, err := models.NormalizeRating(rating)
	if err != nil {
		return 0, err
	}

	now := s.now()
	id, err := s.local.AddReviewLog(ctx, models.ReviewLog{
		CardID:    cardID,
		Rating:    strconv.Itoa(int(grade)),
		Ts:        now,
		LatencyMs: latencyMs,
		UUID:      uuid.NewString(),
		Synced:    0,
	})
	if err != nil {
		return 0, fmt.Errorf("append review log: %w", err)
	}

	if err = s.local.BumpCardDue(ctx, cardID, now+bumpInterval(grade).Milliseconds(), now); err != nil {
		return 0, fmt.Errorf("bump card due: %w", err)
	}
	return id, nil
}

func (s *studyService) CardDetail(ctx context.Context, cardID int64) (models.CardDetail, error) {
	detail, err := s.local.CardDetail(ctx, cardID)
	if err != nil {
		return models.CardDetail{}, fmt.Errorf("load card detail: %w", err)
	}
	return detail, nil
}

func (s *studyService) TodayProgress(ctx context.Context, deckID int64) (int, int, error) {
	dayStart, dayEnd := dayBounds(time.UnixMilli(s.now()))

	done, err := s.local.TodayReviewCount(ctx, deckID, dayStart, dayEnd)
	if err != nil {
		return 0, 0, fmt.Errorf("count today's reviews: %w", err)
	}

	target, err := s.pairing.GetDailyTarget(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("load daily target: %w", err)
	}
	return done, target, nil
}

// bumpInterval is the minimal local reschedule applied after a rating. The
// real interval is recomputed by the server's scheduler on the next sync;
// this only keeps a just-rated card from resurfacing immediately.
func bumpInterval(grade models.Rating) time.Duration {
	switch grade {
	case models.RatingAgain:
		return time.Minute
	case models.RatingHard:
		return 5 * time.Minute
	case models.RatingGood:
		return 30 * time.Minute
	default:
		return 2 * time.Hour
	}
}

func dayBounds(t time.Time) (int64, int64) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	end := start.Add(24*time.Hour - time.Millisecond)
	return start.UnixMilli(), end.UnixMilli()
}

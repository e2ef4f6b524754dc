package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/MKhiriev/memo-sync/internal/logger"
	"github.com/MKhiriev/memo-sync/models"
)

func newTestRepo(t *testing.T) (*localRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &localRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

// ── settings ─────────────────────────────────────────────────────────────────

func TestGetSetting_Found(t *testing.T) {
	repo, mock, db := newTestRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"value"}).AddRow("http://srv")
	mock.ExpectQuery("SELECT value FROM settings").
		WithArgs(models.SettingServerURL).
		WillReturnRows(rows)

	val, err := repo.GetSetting(context.Background(), models.SettingServerURL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if val != "http://srv" {
		t.Errorf("expected http://srv, got %s", val)
	}
}

func TestGetSetting_NotFound(t *testing.T) {
	repo, mock, db := newTestRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT value FROM settings").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetSetting(context.Background(), "missing")
	if !errors.Is(err, ErrSettingNotFound) {
		t.Errorf("expected ErrSettingNotFound, got %v", err)
	}
}

func TestPutSetting_Upsert(t *testing.T) {
	repo, mock, db := newTestRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO settings").
		WithArgs(models.SettingLastSyncTs, "5000").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.PutSetting(context.Background(), models.SettingLastSyncTs, "5000"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

// ── decks ────────────────────────────────────────────────────────────────────

func TestUpsertDecks_InsertAndTombstone(t *testing.T) {
	repo, mock, db := newTestRepo(t)
	defer db.Close()

	// один живой + один tombstone в одной транзакции
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO decks").
		WithArgs(int64(1), "Japanese N5").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM decks").
		WithArgs(int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	items := []models.Deck{
		{ID: 1, Name: "Japanese N5"},
		{ID: 2, Name: "gone", Deleted: true},
	}
	n, err := repo.UpsertDecks(context.Background(), items)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 processed, got %d", n)
	}
	if err = mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestUpsertDecks_RollbackOnError(t *testing.T) {
	repo, mock, db := newTestRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO decks").
		WithArgs(int64(1), "broken").
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	_, err := repo.UpsertDecks(context.Background(), []models.Deck{{ID: 1, Name: "broken"}})
	if err == nil {
		t.Fatal("expected error")
	}
	if err = mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestUpsertDecks_EmptyDelta(t *testing.T) {
	repo, mock, db := newTestRepo(t)
	defer db.Close()

	// пустая дельта не должна трогать БД
	n, err := repo.UpsertDecks(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 0 {
		t.Errorf("expected 0, got %d", n)
	}
	if err = mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected db activity: %v", err)
	}
}

func TestDeleteDeckCascade(t *testing.T) {
	repo, mock, db := newTestRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM cards WHERE note_id IN").
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("DELETE FROM notes WHERE deck_id").
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM decks WHERE id").
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.DeleteDeckCascade(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

// ── review logs ──────────────────────────────────────────────────────────────

func TestAddReviewLog_ReturnsLocalID(t *testing.T) {
	repo, mock, db := newTestRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO review_logs").
		WithArgs(int64(1001), "3", int64(12345), nil, "u1", 0).
		WillReturnResult(sqlmock.NewResult(7, 1))

	id, err := repo.AddReviewLog(context.Background(), models.ReviewLog{
		CardID: 1001,
		Rating: "3",
		Ts:     12345,
		UUID:   "u1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 7 {
		t.Errorf("expected id=7, got %d", id)
	}
}

func TestPendingReviews_FiltersSynced(t *testing.T) {
	repo, mock, db := newTestRepo(t)
	defer db.Close()

	rows := sqlmock.
		NewRows([]string{"id", "card_id", "rating", "ts", "latency_ms", "uuid", "synced"}).
		AddRow(1, 1001, "GOOD", 100, nil, "u1", 0).
		AddRow(2, -1, "3", 200, nil, "u2", 0)

	mock.ExpectQuery("SELECT id, card_id, rating, ts, latency_ms, uuid, synced FROM review_logs").
		WithArgs(0).
		WillReturnRows(rows)

	items, err := repo.PendingReviews(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// фильтрация по card_id — забота сервиса, стор отдаёт всё с synced=0
	if len(items) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(items))
	}
	if items[0].UUID != "u1" || items[1].CardID != -1 {
		t.Errorf("rows scanned in wrong order: %+v", items)
	}
}

func TestMarkReviewsSynced_NoIDs(t *testing.T) {
	repo, mock, db := newTestRepo(t)
	defer db.Close()

	if err := repo.MarkReviewsSynced(context.Background(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected db activity: %v", err)
	}
}

func TestMarkReviewsSynced_FlipsInTx(t *testing.T) {
	repo, mock, db := newTestRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE review_logs SET synced").
		WithArgs(int64(1), int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	if err := repo.MarkReviewsSynced(context.Background(), []int64{1, 3}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

// ── maintenance ──────────────────────────────────────────────────────────────

func TestClearAllData_WipesAndResetsWatermark(t *testing.T) {
	repo, mock, db := newTestRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	for range [4]struct{}{} {
		mock.ExpectExec("DELETE FROM").WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectExec("INSERT INTO settings").
		WithArgs(models.SettingMockSeeded, "0").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO settings").
		WithArgs(models.SettingMockClearDone, "1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO settings").
		WithArgs(models.SettingLastSyncTs, "0").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.ClearAllData(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPurgeInvalidReviewLogs_CountsDeleted(t *testing.T) {
	repo, mock, db := newTestRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM review_logs").
		WillReturnResult(sqlmock.NewResult(0, 5))
	mock.ExpectExec("INSERT INTO settings").
		WithArgs(models.SettingCleanupV1Done, "1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO settings").
		WithArgs(models.SettingCleanupV1Deleted, "5").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	n, err := repo.PurgeInvalidReviewLogs(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 5 {
		t.Errorf("expected 5 deleted, got %d", n)
	}
}

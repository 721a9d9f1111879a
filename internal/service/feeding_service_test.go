package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"feedtrack/internal/model"
	"feedtrack/internal/repository"
)

func newTestService(t *testing.T) (*FeedingService, *model.User) {
	t.Helper()

	db, err := repository.NewDB(":memory:")
	if err != nil {
		t.Fatalf("NewDB() error: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	user := &model.User{TelegramID: 42, FirstName: "Test"}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}

	return NewFeedingService(repository.NewFeedingRepository(db)), user
}

func TestLog_validation(t *testing.T) {
	svc, user := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		category string
		amount   int
		cause    error
	}{
		{"empty category", "", 100, ErrEmptyCategory},
		{"whitespace category", "   ", 100, ErrEmptyCategory},
		{"zero amount", "분유", 0, ErrNonPositiveAmount},
		{"negative amount", "분유", -5, ErrNonPositiveAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Log(ctx, user, tt.category, tt.amount)
			if err == nil {
				t.Fatal("Log() expected validation error")
			}
			var validation *ValidationError
			if !errors.As(err, &validation) {
				t.Fatalf("Log() error = %v, want *ValidationError", err)
			}
			if !errors.Is(err, tt.cause) {
				t.Errorf("Log() error = %v, want cause %v", err, tt.cause)
			}
		})
	}

	// Failed adds leave the collection unchanged.
	records, err := svc.List(ctx, user)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("len(records) = %d, want 0 after rejected adds", len(records))
	}
}

func TestLog_success(t *testing.T) {
	svc, user := newTestService(t)
	ctx := context.Background()

	now := time.Date(2026, 8, 20, 14, 30, 0, 0, time.UTC)
	svc.WithClock(func() time.Time { return now })

	record, err := svc.Log(ctx, user, "  분유  ", 160)
	if err != nil {
		t.Fatalf("Log() error: %v", err)
	}
	if record.ID == 0 {
		t.Error("Log() record.ID = 0, want assigned id")
	}
	if record.Category != "분유" {
		t.Errorf("Category = %q, want trimmed %q", record.Category, "분유")
	}
	if record.Amount != 160 {
		t.Errorf("Amount = %d, want 160", record.Amount)
	}
	if !record.OccurredAt.Equal(now) {
		t.Errorf("OccurredAt = %v, want %v", record.OccurredAt, now)
	}
}

func TestLog_idsMonotonic(t *testing.T) {
	svc, user := newTestService(t)
	ctx := context.Background()

	var previous uint
	for i := 0; i < 5; i++ {
		record, err := svc.Log(ctx, user, "분유", 100)
		if err != nil {
			t.Fatalf("Log() error: %v", err)
		}
		if record.ID <= previous {
			t.Fatalf("id %d not greater than previous %d", record.ID, previous)
		}
		previous = record.ID
	}
}

func TestSortInvariant_afterAddAndDelete(t *testing.T) {
	svc, user := newTestService(t)
	ctx := context.Background()

	times := []time.Time{
		time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 20, 13, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 20, 11, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 20, 7, 0, 0, 0, time.UTC),
	}
	for _, at := range times {
		at := at
		svc.WithClock(func() time.Time { return at })
		if _, err := svc.Log(ctx, user, "분유", 120); err != nil {
			t.Fatalf("Log() error: %v", err)
		}
	}

	assertSorted := func() []model.FeedingRecord {
		t.Helper()
		records, err := svc.List(ctx, user)
		if err != nil {
			t.Fatalf("List() error: %v", err)
		}
		for i := 1; i < len(records); i++ {
			if records[i].OccurredAt.After(records[i-1].OccurredAt) {
				t.Fatalf("records out of order at %d", i)
			}
		}
		return records
	}

	records := assertSorted()
	if len(records) != 4 {
		t.Fatalf("len(records) = %d, want 4", len(records))
	}

	// Deleting the newest record keeps the rest sorted.
	if err := svc.Delete(ctx, user, records[0].ID); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	records = assertSorted()
	if len(records) != 3 {
		t.Fatalf("len(records) = %d after delete, want 3", len(records))
	}
}

func TestLatest_empty(t *testing.T) {
	svc, user := newTestService(t)

	record, err := svc.Latest(context.Background(), user)
	if err != nil {
		t.Fatalf("Latest() error: %v", err)
	}
	if record != nil {
		t.Errorf("Latest() = %+v, want nil for empty collection", record)
	}
}

func TestNextFeeding_emptyState(t *testing.T) {
	svc, user := newTestService(t)

	_, ok, err := svc.NextFeeding(context.Background(), user)
	if err != nil {
		t.Fatalf("NextFeeding() error: %v", err)
	}
	if ok {
		t.Error("NextFeeding() ok = true, want false with no records")
	}
}

func TestNextFeeding_usesLatestRecord(t *testing.T) {
	svc, user := newTestService(t)
	ctx := context.Background()

	older := time.Date(2026, 8, 20, 6, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)

	svc.WithClock(func() time.Time { return older })
	if _, err := svc.Log(ctx, user, "이유식", 200); err != nil {
		t.Fatalf("Log() error: %v", err)
	}
	svc.WithClock(func() time.Time { return newer })
	if _, err := svc.Log(ctx, user, "분유", 120); err != nil {
		t.Fatalf("Log() error: %v", err)
	}

	estimate, ok, err := svc.NextFeeding(ctx, user)
	if err != nil {
		t.Fatalf("NextFeeding() error: %v", err)
	}
	if !ok {
		t.Fatal("NextFeeding() ok = false, want true")
	}
	if want := newer.Add(3 * time.Hour); !estimate.NextAt.Equal(want) {
		t.Errorf("NextAt = %v, want %v", estimate.NextAt, want)
	}
}

func TestSnapshot_roundTrip(t *testing.T) {
	svc, user := newTestService(t)
	ctx := context.Background()

	times := []time.Time{
		time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 20, 12, 30, 0, 0, time.UTC),
	}
	categories := []string{"분유", "이유식"}
	amounts := []int{120, 200}
	for i := range times {
		at := times[i]
		svc.WithClock(func() time.Time { return at })
		if _, err := svc.Log(ctx, user, categories[i], amounts[i]); err != nil {
			t.Fatalf("Log() error: %v", err)
		}
	}

	originals, err := svc.List(ctx, user)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}

	data, err := svc.Snapshot(ctx, user)
	if err != nil {
		t.Fatalf("Snapshot() error: %v", err)
	}

	decoded, err := RestoreSnapshot(data)
	if err != nil {
		t.Fatalf("RestoreSnapshot() error: %v", err)
	}
	if len(decoded) != len(originals) {
		t.Fatalf("len(decoded) = %d, want %d", len(decoded), len(originals))
	}
	for i := range decoded {
		if decoded[i].ID != originals[i].ID {
			t.Errorf("decoded[%d].ID = %d, want %d", i, decoded[i].ID, originals[i].ID)
		}
		if decoded[i].Category != originals[i].Category {
			t.Errorf("decoded[%d].Category = %q, want %q", i, decoded[i].Category, originals[i].Category)
		}
		if decoded[i].Amount != originals[i].Amount {
			t.Errorf("decoded[%d].Amount = %d, want %d", i, decoded[i].Amount, originals[i].Amount)
		}
		if !decoded[i].OccurredAt.Equal(originals[i].OccurredAt) {
			t.Errorf("decoded[%d].OccurredAt = %v, want %v", i, decoded[i].OccurredAt, originals[i].OccurredAt)
		}
	}
}

func TestRestoreSnapshot_malformed(t *testing.T) {
	if _, err := RestoreSnapshot([]byte("{not json")); err == nil {
		t.Error("RestoreSnapshot() expected error for malformed data")
	}
	if _, err := RestoreSnapshot([]byte(`[{"id":1,"type":"분유","amount":120,"time":"yesterday"}]`)); err == nil {
		t.Error("RestoreSnapshot() expected error for bad timestamp")
	}
}

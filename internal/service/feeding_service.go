package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"feedtrack/internal/model"
	"feedtrack/internal/repository"
)

// Validation causes, matchable with errors.Is through ValidationError.
var (
	ErrEmptyCategory     = errors.New("category is empty")
	ErrNonPositiveAmount = errors.New("amount must be a positive number")
)

// ValidationError marks user input that cannot be saved. It is surfaced as a
// message and never crashes the caller; the collection stays unchanged.
type ValidationError struct {
	Cause error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid feeding input: %v", e.Cause)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// FeedingService wraps record-keeping business logic.
type FeedingService struct {
	records *repository.FeedingRepository
	clock   func() time.Time
}

func NewFeedingService(records *repository.FeedingRepository) *FeedingService {
	return &FeedingService{records: records, clock: time.Now}
}

// WithClock overrides the time source, used by tests.
func (s *FeedingService) WithClock(clock func() time.Time) *FeedingService {
	s.clock = clock
	return s
}

// Log validates and persists a new feeding record with OccurredAt set to now.
func (s *FeedingService) Log(ctx context.Context, user *model.User, category string, amount int) (*model.FeedingRecord, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, &ValidationError{Cause: ErrEmptyCategory}
	}
	if amount <= 0 {
		return nil, &ValidationError{Cause: ErrNonPositiveAmount}
	}

	record := model.FeedingRecord{
		UserID:     user.ID,
		Category:   category,
		Amount:     amount,
		OccurredAt: s.clock(),
	}

	if err := s.records.Create(ctx, &record); err != nil {
		return nil, err
	}

	return &record, nil
}

// List returns the user's records newest-first.
func (s *FeedingService) List(ctx context.Context, user *model.User) ([]model.FeedingRecord, error) {
	return s.records.ListByUser(ctx, user.ID)
}

// Latest returns the most recent record, or nil when nothing is logged yet.
func (s *FeedingService) Latest(ctx context.Context, user *model.User) (*model.FeedingRecord, error) {
	record, err := s.records.Latest(ctx, user.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return record, nil
}

// Delete removes a record by id. A missing id is a silent no-op.
func (s *FeedingService) Delete(ctx context.Context, user *model.User, recordID uint) error {
	return s.records.Delete(ctx, user.ID, recordID)
}

// NextFeeding estimates the next feeding from the most recent record.
// ok is false when nothing is logged yet.
func (s *FeedingService) NextFeeding(ctx context.Context, user *model.User) (Estimate, bool, error) {
	record, err := s.Latest(ctx, user)
	if err != nil {
		return Estimate{}, false, err
	}
	if record == nil {
		return Estimate{}, false, nil
	}
	return EstimateNext(*record), true, nil
}

// wireRecord is the serialized form of a record: {id, type, amount, time}.
type wireRecord struct {
	ID     uint   `json:"id"`
	Type   string `json:"type"`
	Amount int    `json:"amount"`
	Time   string `json:"time"`
}

// Snapshot serializes the user's full collection, newest-first.
func (s *FeedingService) Snapshot(ctx context.Context, user *model.User) ([]byte, error) {
	records, err := s.List(ctx, user)
	if err != nil {
		return nil, err
	}

	wire := make([]wireRecord, 0, len(records))
	for _, record := range records {
		wire = append(wire, wireRecord{
			ID:     record.ID,
			Type:   record.Category,
			Amount: record.Amount,
			Time:   record.OccurredAt.Format(time.RFC3339),
		})
	}

	data, err := json.MarshalIndent(wire, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// RestoreSnapshot parses a snapshot produced by Snapshot back into records.
// Ids, categories, amounts and timestamps survive the round trip.
func RestoreSnapshot(data []byte) ([]model.FeedingRecord, error) {
	var wire []wireRecord
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("restore snapshot: %w", err)
	}

	records := make([]model.FeedingRecord, 0, len(wire))
	for _, entry := range wire {
		occurredAt, err := time.Parse(time.RFC3339, entry.Time)
		if err != nil {
			return nil, fmt.Errorf("restore snapshot time %q: %w", entry.Time, err)
		}
		records = append(records, model.FeedingRecord{
			ID:         entry.ID,
			Category:   entry.Type,
			Amount:     entry.Amount,
			OccurredAt: occurredAt,
		})
	}
	return records, nil
}

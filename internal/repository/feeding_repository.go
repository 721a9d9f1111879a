package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"feedtrack/internal/model"
)

// FeedingRepository handles CRUD for feeding records.
type FeedingRepository struct {
	db *gorm.DB
}

func NewFeedingRepository(db *gorm.DB) *FeedingRepository {
	return &FeedingRepository{db: db}
}

func (r *FeedingRepository) Create(ctx context.Context, record *model.FeedingRecord) error {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("create feeding record: %w", err)
	}
	return nil
}

// ListByUser returns the user's records newest-first. Ties on occurred_at are
// broken by id so records logged at the same instant still order newest-first.
func (r *FeedingRepository) ListByUser(ctx context.Context, userID uint) ([]model.FeedingRecord, error) {
	var records []model.FeedingRecord
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("occurred_at DESC, id DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// Latest returns the most recent record or gorm.ErrRecordNotFound.
func (r *FeedingRepository) Latest(ctx context.Context, userID uint) (*model.FeedingRecord, error) {
	var record model.FeedingRecord
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("occurred_at DESC, id DESC").
		First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// Delete removes a record by id. Deleting an id that does not exist is a
// no-op, not an error.
func (r *FeedingRepository) Delete(ctx context.Context, userID, recordID uint) error {
	if err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, recordID).
		Delete(&model.FeedingRecord{}).Error; err != nil {
		return fmt.Errorf("delete feeding record: %w", err)
	}
	return nil
}

func (r *FeedingRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.FeedingRecord{}).
		Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CategoryTotal aggregates feedings of one category.
type CategoryTotal struct {
	Category string
	Count    int64
	Total    int64
}

// TotalsSince aggregates the user's records with occurred_at >= since,
// grouped by category.
func (r *FeedingRepository) TotalsSince(ctx context.Context, userID uint, since time.Time) ([]CategoryTotal, error) {
	var totals []CategoryTotal
	if err := r.db.WithContext(ctx).Model(&model.FeedingRecord{}).
		Select("category, COUNT(*) AS count, SUM(amount) AS total").
		Where("user_id = ? AND occurred_at >= ?", userID, since).
		Group("category").
		Order("count DESC, category ASC").
		Scan(&totals).Error; err != nil {
		return nil, err
	}
	return totals, nil
}

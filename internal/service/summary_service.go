package service

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"gorm.io/gorm"

	"feedtrack/internal/model"
	"feedtrack/internal/repository"
)

// SummaryService builds human-readable feeding digests for notifications.
type SummaryService struct {
	records *repository.FeedingRepository
}

func NewSummaryService(records *repository.FeedingRepository) *SummaryService {
	return &SummaryService{records: records}
}

// DailySummary renders totals for the last 24 hours, the most recent feeding
// and the current next-feeding estimate.
func (s *SummaryService) DailySummary(ctx context.Context, user model.User, now time.Time) (string, error) {
	totals, err := s.records.TotalsSince(ctx, user.ID, now.Add(-24*time.Hour))
	if err != nil {
		return "", err
	}

	var latest *model.FeedingRecord
	record, err := s.records.Latest(ctx, user.ID)
	if err == nil {
		latest = record
	} else if err != gorm.ErrRecordNotFound {
		return "", err
	}

	return buildSummary(totals, latest, now), nil
}

func buildSummary(totals []repository.CategoryTotal, latest *model.FeedingRecord, now time.Time) string {
	var builder strings.Builder
	builder.WriteString("🍼 <b>수유 리포트</b>\n")
	builder.WriteString(fmt.Sprintf("🗓 %s\n\n", now.Format("2006.01.02")))

	builder.WriteString("📊 <b>지난 24시간</b>\n")
	if len(totals) == 0 {
		builder.WriteString("— 기록이 없어요\n")
	} else {
		for _, entry := range totals {
			builder.WriteString(fmt.Sprintf("%s %s · %d회 · 총 %d%s\n",
				model.CategoryIcon(entry.Category),
				html.EscapeString(entry.Category),
				entry.Count,
				entry.Total,
				model.AmountUnit(entry.Category),
			))
		}
	}

	builder.WriteString("\n⏰ <b>다음 수유</b>\n")
	if latest == nil {
		builder.WriteString("— 아직 기록이 없어서 예측할 수 없어요\n")
	} else {
		estimate := EstimateNext(*latest)
		builder.WriteString(fmt.Sprintf("최근: %s %s %d%s (%s)\n",
			model.CategoryIcon(latest.Category),
			html.EscapeString(latest.Category),
			latest.Amount,
			model.AmountUnit(latest.Category),
			latest.OccurredAt.In(now.Location()).Format("15:04"),
		))
		prefix := ""
		if estimate.Predawn {
			prefix = "🌙 새벽 "
		}
		builder.WriteString(fmt.Sprintf("예상: %s%s\n", prefix, estimate.NextAt.In(now.Location()).Format("15:04")))
		remaining := estimate.NextAt.Sub(now)
		if remaining < 0 {
			builder.WriteString("🍽️ 지금이 맘마 시간이에요!\n")
		} else {
			builder.WriteString(fmt.Sprintf("남은 시간: %s\n", FormatRemaining(remaining)))
		}
	}

	return strings.TrimSpace(builder.String())
}

package service

import (
	"fmt"
	"time"

	"feedtrack/internal/model"
)

// Formula feedings predict the next feeding from the amount: every 40 units
// buy one hour. Everything else falls back to a flat four hours.
const (
	formulaUnitsPerHour = 40
	defaultInterval     = 4 * time.Hour
)

// Estimate is a predicted next feeding time.
type Estimate struct {
	NextAt   time.Time
	Interval time.Duration
	// Predawn is set when the predicted time falls between midnight and 6:00.
	Predawn bool
}

// EstimateNext computes the next feeding estimate from the most recent record.
func EstimateNext(last model.FeedingRecord) Estimate {
	interval := defaultInterval
	if last.Category == model.CategoryFormula && last.Amount > 0 {
		hours := float64(last.Amount) / formulaUnitsPerHour
		interval = time.Duration(hours * float64(time.Hour))
	}

	nextAt := last.OccurredAt.Add(interval)

	return Estimate{
		NextAt:   nextAt,
		Interval: interval,
		Predawn:  nextAt.Hour() < 6,
	}
}

// FormatRemaining renders a duration as zero-padded HH:MM:SS. Negative
// durations are clamped to zero; the countdown never shows negative time.
func FormatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

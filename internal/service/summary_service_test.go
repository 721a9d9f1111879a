package service

import (
	"strings"
	"testing"
	"time"

	"feedtrack/internal/model"
	"feedtrack/internal/repository"
)

func TestBuildSummary_empty(t *testing.T) {
	now := time.Date(2026, 8, 20, 21, 0, 0, 0, time.UTC)

	text := buildSummary(nil, nil, now)

	if !strings.Contains(text, "기록이 없어요") {
		t.Errorf("summary missing empty-totals line:\n%s", text)
	}
	if !strings.Contains(text, "예측할 수 없어요") {
		t.Errorf("summary missing no-prediction line:\n%s", text)
	}
	if !strings.Contains(text, "2026.08.20") {
		t.Errorf("summary missing date:\n%s", text)
	}
}

func TestBuildSummary_withRecords(t *testing.T) {
	now := time.Date(2026, 8, 20, 13, 0, 0, 0, time.UTC)
	latest := &model.FeedingRecord{
		Category:   model.CategoryFormula,
		Amount:     120,
		OccurredAt: now.Add(-time.Hour),
	}
	totals := []repository.CategoryTotal{
		{Category: model.CategoryFormula, Count: 3, Total: 360},
		{Category: model.CategorySolids, Count: 1, Total: 200},
	}

	text := buildSummary(totals, latest, now)

	if !strings.Contains(text, "분유 · 3회 · 총 360ml") {
		t.Errorf("summary missing formula totals:\n%s", text)
	}
	if !strings.Contains(text, "이유식 · 1회 · 총 200g") {
		t.Errorf("summary missing solids totals:\n%s", text)
	}
	// 120/40 = 3h after the last feeding at 12:00 → 15:00, 2h remaining.
	if !strings.Contains(text, "예상: 15:00") {
		t.Errorf("summary missing estimate:\n%s", text)
	}
	if !strings.Contains(text, "남은 시간: 02:00:00") {
		t.Errorf("summary missing remaining time:\n%s", text)
	}
}

func TestBuildSummary_mealtimePassed(t *testing.T) {
	now := time.Date(2026, 8, 20, 18, 0, 0, 0, time.UTC)
	latest := &model.FeedingRecord{
		Category:   model.CategoryFormula,
		Amount:     120,
		OccurredAt: now.Add(-5 * time.Hour),
	}

	text := buildSummary(nil, latest, now)

	if !strings.Contains(text, "맘마 시간이에요") {
		t.Errorf("summary missing mealtime line:\n%s", text)
	}
	if strings.Contains(text, "-") && strings.Contains(text, "남은 시간") {
		t.Errorf("summary shows negative remaining time:\n%s", text)
	}
}

func TestBuildSummary_predawnMarker(t *testing.T) {
	// Last feeding at 23:30 formula 120 → prediction 02:30, inside [0,6).
	now := time.Date(2026, 8, 20, 23, 40, 0, 0, time.UTC)
	latest := &model.FeedingRecord{
		Category:   model.CategoryFormula,
		Amount:     120,
		OccurredAt: time.Date(2026, 8, 20, 23, 30, 0, 0, time.UTC),
	}

	text := buildSummary(nil, latest, now)

	if !strings.Contains(text, "🌙 새벽 02:30") {
		t.Errorf("summary missing predawn marker:\n%s", text)
	}
}

package bot

import (
	"fmt"
	"html"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"feedtrack/internal/model"
	"feedtrack/internal/service"
)

const (
	btnCustomCategory = "✏️ 직접 입력"
	btnSave           = "💾 저장"
	btnConfirm        = "✅ 삭제"
	btnCancel         = "↩️ 취소"
	btnCancelDialog   = "⏪ 입력 취소"
	menuLabelLog      = "➕ 수유 기록"
	menuLabelList     = "📋 기록 목록"
	menuLabelNext     = "⏰ 다음 수유"
	menuLabelHelp     = "ℹ️ 도움말"
	predawnPrefix     = "🌙 새벽 "
	mealtimeMessage   = "🍽️ 맘마 시간이에요!"
)

func escape(s string) string {
	return html.EscapeString(s)
}

// dateLabel renders "오늘" for the current calendar day, else a short MM.DD.
func dateLabel(t, now time.Time) string {
	t = t.In(now.Location())
	if t.Year() == now.Year() && t.YearDay() == now.YearDay() {
		return "오늘"
	}
	return t.Format("01.02")
}

// formatRecord renders one list row: icon, category, amount with unit, and a
// human date/time.
func formatRecord(record model.FeedingRecord, now time.Time) string {
	occurred := record.OccurredAt.In(now.Location())
	return fmt.Sprintf("%s <b>#%d</b> %s · %d%s\n   🕐 %s %s\n",
		model.CategoryIcon(record.Category),
		record.ID,
		escape(record.Category),
		record.Amount,
		model.AmountUnit(record.Category),
		dateLabel(record.OccurredAt, now),
		occurred.Format("15:04"),
	)
}

// formatEstimate renders the next-feeding readout with a predawn marker when
// the prediction falls between midnight and 6:00.
func formatEstimate(estimate service.Estimate, now time.Time) string {
	prefix := ""
	if estimate.Predawn {
		prefix = predawnPrefix
	}
	return fmt.Sprintf("⏰ <b>다음 수유</b>\n%s%s", prefix, estimate.NextAt.In(now.Location()).Format("01.02 15:04"))
}

func formatCountdown(estimate service.Estimate, remaining time.Duration, now time.Time) string {
	return fmt.Sprintf("%s\n⏳ 남은 시간 %s", formatEstimate(estimate, now), service.FormatRemaining(remaining))
}

func formatMealtime(estimate service.Estimate, now time.Time) string {
	return fmt.Sprintf("%s\n%s", formatEstimate(estimate, now), mealtimeMessage)
}

// recordList renders the full reverse-chronological list plus one inline
// delete button per row. An empty collection yields a single placeholder line.
func recordList(records []model.FeedingRecord, now time.Time) (string, [][]tgbotapi.InlineKeyboardButton) {
	if len(records) == 0 {
		return "아직 수유 기록이 없어요. /log 로 첫 기록을 남겨 보세요.", nil
	}

	var builder strings.Builder
	builder.WriteString("📋 <b>수유 기록</b>\n\n")

	var buttons [][]tgbotapi.InlineKeyboardButton
	for _, record := range records {
		builder.WriteString(formatRecord(record, now))
		buttons = append(buttons, []tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("🗑 #%d 삭제", record.ID),
				fmt.Sprintf("%s%d", cbDeletePrefix, record.ID),
			),
		})
	}

	return strings.TrimSpace(builder.String()), buttons
}

func mainMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(menuLabelLog),
			tgbotapi.NewKeyboardButton(menuLabelList),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(menuLabelNext),
			tgbotapi.NewKeyboardButton(menuLabelHelp),
		),
	)
	kb.ResizeKeyboard = true
	kb.OneTimeKeyboard = false
	return kb
}

func categoryKeyboard() tgbotapi.ReplyKeyboardMarkup {
	rows := make([][]tgbotapi.KeyboardButton, 0, 4)
	row := make([]tgbotapi.KeyboardButton, 0, 3)
	for _, preset := range model.Presets {
		row = append(row, tgbotapi.NewKeyboardButton(fmt.Sprintf("%s %s", model.CategoryIcon(preset), preset)))
		if len(row) == 3 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	rows = append(rows, tgbotapi.NewKeyboardButtonRow(
		tgbotapi.NewKeyboardButton(btnCustomCategory),
		tgbotapi.NewKeyboardButton(btnCancelDialog),
	))

	kb := tgbotapi.NewReplyKeyboard(rows...)
	kb.ResizeKeyboard = true
	kb.OneTimeKeyboard = true
	return kb
}

func amountKeyboard(step int) tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(minusLabel(step)),
			tgbotapi.NewKeyboardButton(plusLabel(step)),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnSave),
			tgbotapi.NewKeyboardButton(btnCancelDialog),
		),
	)
	kb.ResizeKeyboard = true
	kb.OneTimeKeyboard = false
	return kb
}

func confirmKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnConfirm),
			tgbotapi.NewKeyboardButton(btnCancel),
		),
	)
	kb.ResizeKeyboard = true
	kb.OneTimeKeyboard = true
	return kb
}

func cancelKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnCancelDialog),
		),
	)
	kb.ResizeKeyboard = true
	kb.OneTimeKeyboard = true
	return kb
}

func minusLabel(step int) string {
	return fmt.Sprintf("➖%d", step)
}

func plusLabel(step int) string {
	return fmt.Sprintf("➕%d", step)
}

// presetFromLabel strips the icon prefix off a category quick-select button.
func presetFromLabel(text string) (string, bool) {
	trimmed := strings.TrimSpace(text)
	for _, preset := range model.Presets {
		if trimmed == preset || trimmed == fmt.Sprintf("%s %s", model.CategoryIcon(preset), preset) {
			return preset, true
		}
	}
	return "", false
}

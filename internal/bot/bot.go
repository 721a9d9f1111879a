package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"feedtrack/internal/config"
	"feedtrack/internal/model"
	"feedtrack/internal/service"
)

type conversationStage int

const (
	stageNone conversationStage = iota
	stageCategory
	stageCustomCategory
	stageAmount
)

const cbDeletePrefix = "delete:"

type conversationState struct {
	stage    conversationStage
	category string
	amount   int
}

type confirmationRequest struct {
	recordID uint
}

// countdownSession is the live countdown readout for one chat: a status
// message the ticker keeps editing. At most one per chat; a refresh replaces
// the previous run.
type countdownSession struct {
	countdown *service.Countdown
	messageID int
	estimate  service.Estimate
}

// Bot aggregates the Telegram API with services.
type Bot struct {
	api           *tgbotapi.BotAPI
	users         userStore
	feedingSvc    *service.FeedingService
	summarySvc    *service.SummaryService
	config        *config.Config
	log           *zap.Logger
	conversations map[int64]*conversationState
	confirmations map[int64]confirmationRequest
	countdowns    map[int64]*countdownSession
	mu            sync.Mutex
}

// userStore is the slice of the user repository the bot needs.
type userStore interface {
	UpsertFromTelegram(ctx context.Context, telegramID int64, firstName, lastName, username string) (*model.User, error)
	ListAll(ctx context.Context) ([]model.User, error)
}

func New(token string, users userStore, feedingSvc *service.FeedingService, summarySvc *service.SummaryService, cfg *config.Config, log *zap.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create bot api: %w", err)
	}

	if log == nil {
		log = zap.NewNop()
	}
	log.Info("bot authorized", zap.String("account", api.Self.UserName))

	return &Bot{
		api:           api,
		users:         users,
		feedingSvc:    feedingSvc,
		summarySvc:    summarySvc,
		config:        cfg,
		log:           log,
		conversations: make(map[int64]*conversationState),
		confirmations: make(map[int64]confirmationRequest),
		countdowns:    make(map[int64]*countdownSession),
	}, nil
}

// Start begins polling updates until ctx is cancelled.
func (b *Bot) Start(ctx context.Context) error {
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60
	updates := b.api.GetUpdatesChan(updateConfig)

	b.log.Info("start polling updates")

	go func() {
		<-ctx.Done()
		b.stopAllCountdowns()
		b.api.StopReceivingUpdates()
	}()

	for update := range updates {
		switch {
		case update.CallbackQuery != nil:
			if err := b.handleCallback(ctx, update.CallbackQuery); err != nil {
				b.log.Warn("handle callback", zap.Error(err))
			}
		case update.Message != nil:
			if update.Message.Chat == nil || !update.Message.Chat.IsPrivate() {
				continue
			}
			if err := b.handleMessage(ctx, update.Message); err != nil {
				b.log.Warn("handle message", zap.Error(err))
			}
		}
	}

	return nil
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) error {
	if msg.From == nil {
		return nil
	}

	if !msg.IsCommand() && isCancelDialogInput(msg.Text) {
		b.clearConversation(msg.From.ID)
		b.clearConfirmation(msg.From.ID)
		return b.sendText(msg.Chat.ID, "⏪ 입력을 취소했어요. 언제든 다시 시작할 수 있어요.")
	}

	if !msg.IsCommand() {
		if handled, err := b.handleMenuAlias(ctx, msg); handled {
			return err
		}
	}

	if msg.IsCommand() {
		b.log.Info("command", zap.Int64("user", msg.From.ID), zap.String("command", msg.Command()))
		return b.handleCommand(ctx, msg)
	}

	if pending, ok := b.getConfirmation(msg.From.ID); ok {
		return b.handleConfirmationResponse(ctx, msg, pending)
	}

	if b.hasConversation(msg.From.ID) {
		return b.handleConversation(ctx, msg)
	}

	return b.sendText(msg.Chat.ID, "무슨 말인지 잘 모르겠어요. /log 로 수유를 기록하거나 /help 를 확인해 주세요.")
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) error {
	switch msg.Command() {
	case "start":
		return b.handleStart(ctx, msg)
	case "help":
		return b.handleHelp(msg)
	case "log":
		return b.startLogConversation(ctx, msg)
	case "list":
		return b.handleList(ctx, msg)
	case "next":
		return b.handleNext(ctx, msg)
	case "delete":
		return b.handleDeleteCommand(ctx, msg)
	case "export":
		return b.handleExport(ctx, msg)
	case "report":
		return b.handleReport(ctx, msg)
	case "cancel":
		b.clearConversation(msg.From.ID)
		b.clearConfirmation(msg.From.ID)
		return b.sendText(msg.Chat.ID, "⏪ 입력을 취소했어요.")
	default:
		return b.sendText(msg.Chat.ID, "지원하지 않는 명령이에요. /help 를 확인해 주세요.")
	}
}

func (b *Bot) handleStart(ctx context.Context, msg *tgbotapi.Message) error {
	if _, err := b.ensureUser(ctx, msg.From); err != nil {
		return err
	}

	name := strings.TrimSpace(msg.From.FirstName)
	if name == "" {
		name = "엄마 아빠"
	}

	text := fmt.Sprintf(
		"👋 %s님, 안녕하세요!\n<b>아기 수유를 기록하고 다음 수유 시간을 알려 드려요.</b>\n\n명령어:\n"+
			"• /log — 수유 기록하기\n"+
			"• /list — 기록 목록 보기\n"+
			"• /next — 다음 수유까지 카운트다운\n"+
			"• /delete &lt;번호&gt; — 기록 삭제\n"+
			"• /export — 기록 내보내기 (JSON)\n"+
			"• /report — 오늘의 수유 리포트\n"+
			"• /cancel — 현재 입력 취소",
		escape(name),
	)

	return b.sendText(msg.Chat.ID, text)
}

func (b *Bot) handleHelp(msg *tgbotapi.Message) error {
	text := "ℹ️ <b>도움말</b>\n" +
		"• /log — 종류와 양을 골라 수유를 기록해요\n" +
		"• /list — 최근 기록부터 보여 주고, 버튼으로 삭제할 수 있어요\n" +
		"• /next — 마지막 기록으로 다음 수유 시간을 예측해요 (분유는 양÷40시간, 그 외 4시간)\n" +
		"• /delete &lt;번호&gt; — 번호로 기록을 삭제해요 (예: /delete 3)\n" +
		"• /export — 전체 기록을 JSON 파일로 받아요\n" +
		"• /report — 지난 24시간 수유 리포트\n" +
		"• /cancel — 진행 중인 입력을 취소해요"
	return b.sendText(msg.Chat.ID, text)
}

func (b *Bot) handleMenuAlias(ctx context.Context, msg *tgbotapi.Message) (bool, error) {
	switch strings.TrimSpace(msg.Text) {
	case menuLabelLog:
		return true, b.startLogConversation(ctx, msg)
	case menuLabelList:
		return true, b.handleList(ctx, msg)
	case menuLabelNext:
		return true, b.handleNext(ctx, msg)
	case menuLabelHelp:
		return true, b.handleHelp(msg)
	default:
		return false, nil
	}
}

func (b *Bot) startLogConversation(ctx context.Context, msg *tgbotapi.Message) error {
	if _, err := b.ensureUser(ctx, msg.From); err != nil {
		return err
	}
	b.setConversation(msg.From.ID, &conversationState{
		stage:  stageCategory,
		amount: b.config.DefaultAmount,
	})
	return b.sendWithReplyMarkup(msg.Chat.ID, "🍼 어떤 수유였나요? 종류를 선택하거나 직접 입력해 주세요.", categoryKeyboard())
}

func (b *Bot) handleConversation(ctx context.Context, msg *tgbotapi.Message) error {
	state := b.getConversation(msg.From.ID)
	if state == nil {
		return nil
	}

	text := strings.TrimSpace(msg.Text)
	switch state.stage {
	case stageCategory:
		if text == btnCustomCategory {
			state.stage = stageCustomCategory
			return b.sendWithReplyMarkup(msg.Chat.ID, "✏️ 종류를 입력해 주세요. (예: 유산균, 주스)", cancelKeyboard())
		}
		if preset, ok := presetFromLabel(text); ok {
			state.category = preset
		} else {
			state.category = text
		}
		if state.category == "" {
			return b.sendWithReplyMarkup(msg.Chat.ID, "종류를 선택하거나 입력해 주세요.", categoryKeyboard())
		}
		state.stage = stageAmount
		return b.promptAmount(msg.Chat.ID, state)
	case stageCustomCategory:
		if text == "" {
			return b.sendWithReplyMarkup(msg.Chat.ID, "종류를 입력해 주세요.", cancelKeyboard())
		}
		state.category = text
		state.stage = stageAmount
		return b.promptAmount(msg.Chat.ID, state)
	case stageAmount:
		step := b.config.AmountStep
		switch text {
		case minusLabel(step):
			state.amount -= step
			if state.amount < 0 {
				state.amount = 0
			}
			return b.promptAmount(msg.Chat.ID, state)
		case plusLabel(step):
			state.amount += step
			return b.promptAmount(msg.Chat.ID, state)
		case btnSave:
			return b.finishLog(ctx, msg, state)
		default:
			value, err := strconv.Atoi(text)
			if err != nil {
				return b.sendWithReplyMarkup(msg.Chat.ID, "숫자를 입력하거나 버튼을 사용해 주세요.", amountKeyboard(step))
			}
			state.amount = value
			return b.promptAmount(msg.Chat.ID, state)
		}
	default:
		b.clearConversation(msg.From.ID)
		return b.sendText(msg.Chat.ID, "입력이 초기화됐어요. /log 로 다시 시작해 주세요.")
	}
}

func (b *Bot) promptAmount(chatID int64, state *conversationState) error {
	text := fmt.Sprintf("📏 <b>%s %s</b> — 양을 정해 주세요.\n현재: <b>%d%s</b>",
		model.CategoryIcon(state.category), escape(state.category),
		state.amount, model.AmountUnit(state.category))
	return b.sendWithReplyMarkup(chatID, text, amountKeyboard(b.config.AmountStep))
}

// finishLog saves the pending record. Validation failures keep the
// conversation (and its input) alive so the user can correct and retry.
func (b *Bot) finishLog(ctx context.Context, msg *tgbotapi.Message, state *conversationState) error {
	user, err := b.ensureUser(ctx, msg.From)
	if err != nil {
		return err
	}

	record, err := b.feedingSvc.Log(ctx, user, state.category, state.amount)
	if err != nil {
		var validation *service.ValidationError
		if errors.As(err, &validation) {
			return b.sendWithReplyMarkup(msg.Chat.ID, validationMessage(validation), amountKeyboard(b.config.AmountStep))
		}
		return b.sendText(msg.Chat.ID, fmt.Sprintf("저장하지 못했어요: %s", escape(err.Error())))
	}

	b.clearConversation(msg.From.ID)
	b.log.Info("record logged",
		zap.Uint("record", record.ID),
		zap.Uint("user", user.ID),
		zap.String("category", record.Category),
		zap.Int("amount", record.Amount))

	confirm := tgbotapi.NewMessage(msg.Chat.ID, fmt.Sprintf("✅ 기록했어요: %s %s %d%s",
		model.CategoryIcon(record.Category), escape(record.Category),
		record.Amount, model.AmountUnit(record.Category)))
	confirm.ParseMode = tgbotapi.ModeHTML
	confirm.ReplyMarkup = mainMenuKeyboard()
	if _, err := b.api.Send(confirm); err != nil {
		return err
	}

	if err := b.sendRecordList(ctx, msg.Chat.ID, user); err != nil {
		return err
	}
	return b.refreshCountdown(ctx, msg.Chat.ID, user)
}

func validationMessage(err *service.ValidationError) string {
	switch {
	case errors.Is(err, service.ErrEmptyCategory):
		return "종류가 비어 있어요. 종류를 입력해 주세요."
	case errors.Is(err, service.ErrNonPositiveAmount):
		return "양은 0보다 커야 해요. 양을 다시 정해 주세요."
	default:
		return "입력을 확인해 주세요."
	}
}

func (b *Bot) handleList(ctx context.Context, msg *tgbotapi.Message) error {
	user, err := b.ensureUser(ctx, msg.From)
	if err != nil {
		return err
	}
	return b.sendRecordList(ctx, msg.Chat.ID, user)
}

func (b *Bot) sendRecordList(ctx context.Context, chatID int64, user *model.User) error {
	records, err := b.feedingSvc.List(ctx, user)
	if err != nil {
		return b.sendText(chatID, fmt.Sprintf("기록을 불러오지 못했어요: %s", escape(err.Error())))
	}

	text, buttons := recordList(records, time.Now())
	message := tgbotapi.NewMessage(chatID, text)
	message.ParseMode = tgbotapi.ModeHTML
	if len(buttons) > 0 {
		message.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(buttons...)
	}
	_, err = b.api.Send(message)
	return err
}

// handleNext sends the countdown status message and starts (or replaces) the
// one-second ticker that keeps editing it.
func (b *Bot) handleNext(ctx context.Context, msg *tgbotapi.Message) error {
	user, err := b.ensureUser(ctx, msg.From)
	if err != nil {
		return err
	}

	estimate, ok, err := b.feedingSvc.NextFeeding(ctx, user)
	if err != nil {
		return b.sendText(msg.Chat.ID, fmt.Sprintf("예측하지 못했어요: %s", escape(err.Error())))
	}

	now := time.Now()
	if !ok {
		b.dropCountdown(msg.Chat.ID)
		return b.sendText(msg.Chat.ID, fmt.Sprintf("아직 기록이 없어서 다음 수유를 예측할 수 없어요.\n🗓 %s", now.Format("2006.01.02")))
	}

	status := tgbotapi.NewMessage(msg.Chat.ID, formatCountdown(estimate, estimate.NextAt.Sub(now), now))
	status.ParseMode = tgbotapi.ModeHTML
	sent, err := b.api.Send(status)
	if err != nil {
		return err
	}

	b.startCountdown(msg.Chat.ID, sent.MessageID, estimate)
	return nil
}

// refreshCountdown recomputes the estimate after an add or delete. It only
// runs when the chat already has a live status message; otherwise the
// countdown stays idle until the next /next.
func (b *Bot) refreshCountdown(ctx context.Context, chatID int64, user *model.User) error {
	session := b.getCountdown(chatID)
	if session == nil {
		return nil
	}

	estimate, ok, err := b.feedingSvc.NextFeeding(ctx, user)
	if err != nil {
		return err
	}
	if !ok {
		b.dropCountdown(chatID)
		b.editStatus(chatID, session.messageID, fmt.Sprintf("아직 기록이 없어서 다음 수유를 예측할 수 없어요.\n🗓 %s", time.Now().Format("2006.01.02")))
		return nil
	}

	b.startCountdown(chatID, session.messageID, estimate)
	return nil
}

func (b *Bot) startCountdown(chatID int64, messageID int, estimate service.Estimate) {
	b.mu.Lock()
	session := b.countdowns[chatID]
	if session == nil {
		session = &countdownSession{countdown: service.NewCountdown()}
		b.countdowns[chatID] = session
	}
	session.messageID = messageID
	session.estimate = estimate
	countdown := session.countdown
	b.mu.Unlock()

	countdown.Start(estimate.NextAt,
		func(remaining time.Duration) {
			b.editStatus(chatID, messageID, formatCountdown(estimate, remaining, time.Now()))
		},
		func() {
			b.editStatus(chatID, messageID, formatMealtime(estimate, time.Now()))
		},
	)
}

func (b *Bot) getCountdown(chatID int64) *countdownSession {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.countdowns[chatID]
}

func (b *Bot) dropCountdown(chatID int64) {
	b.mu.Lock()
	session := b.countdowns[chatID]
	delete(b.countdowns, chatID)
	b.mu.Unlock()
	if session != nil {
		session.countdown.Stop()
	}
}

func (b *Bot) stopAllCountdowns() {
	b.mu.Lock()
	sessions := make([]*countdownSession, 0, len(b.countdowns))
	for chatID, session := range b.countdowns {
		sessions = append(sessions, session)
		delete(b.countdowns, chatID)
	}
	b.mu.Unlock()
	for _, session := range sessions {
		session.countdown.Stop()
	}
}

func (b *Bot) editStatus(chatID int64, messageID int, text string) {
	edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
	edit.ParseMode = tgbotapi.ModeHTML
	if _, err := b.api.Request(edit); err != nil {
		b.log.Debug("edit status message", zap.Int64("chat", chatID), zap.Error(err))
	}
}

func (b *Bot) handleDeleteCommand(ctx context.Context, msg *tgbotapi.Message) error {
	args := strings.TrimSpace(msg.CommandArguments())
	if args == "" {
		return b.sendText(msg.Chat.ID, "기록 번호를 알려 주세요: /delete 12")
	}

	recordID64, err := strconv.ParseUint(args, 10, 64)
	if err != nil {
		return b.sendText(msg.Chat.ID, "기록 번호는 숫자여야 해요.")
	}

	return b.askDeleteConfirmation(ctx, msg.Chat.ID, msg.From, uint(recordID64))
}

func (b *Bot) handleExport(ctx context.Context, msg *tgbotapi.Message) error {
	user, err := b.ensureUser(ctx, msg.From)
	if err != nil {
		return err
	}

	data, err := b.feedingSvc.Snapshot(ctx, user)
	if err != nil {
		return b.sendText(msg.Chat.ID, fmt.Sprintf("내보내기에 실패했어요: %s", escape(err.Error())))
	}

	document := tgbotapi.NewDocument(msg.Chat.ID, tgbotapi.FileBytes{
		Name:  "feedtrack.json",
		Bytes: data,
	})
	document.Caption = "📦 전체 수유 기록이에요."
	_, err = b.api.Send(document)
	return err
}

func (b *Bot) handleReport(ctx context.Context, msg *tgbotapi.Message) error {
	user, err := b.ensureUser(ctx, msg.From)
	if err != nil {
		return err
	}
	text, err := b.summarySvc.DailySummary(ctx, *user, time.Now())
	if err != nil {
		return b.sendText(msg.Chat.ID, fmt.Sprintf("리포트를 만들지 못했어요: %s", escape(err.Error())))
	}
	return b.sendText(msg.Chat.ID, text)
}

// SendDailyReports pushes a summary to every known user.
func (b *Bot) SendDailyReports(ctx context.Context) error {
	users, err := b.users.ListAll(ctx)
	if err != nil {
		return err
	}
	now := time.Now()
	for _, user := range users {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		text, err := b.summarySvc.DailySummary(ctx, user, now)
		if err != nil {
			b.log.Warn("build summary", zap.Int64("user", user.TelegramID), zap.Error(err))
			continue
		}
		if err := b.sendText(user.TelegramID, text); err != nil {
			b.log.Warn("send summary", zap.Int64("user", user.TelegramID), zap.Error(err))
		}
	}
	return nil
}

func (b *Bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) error {
	if cb == nil || cb.From == nil || cb.Message == nil {
		return nil
	}

	if _, err := b.api.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
		b.log.Debug("callback ack", zap.Error(err))
	}

	if !strings.HasPrefix(cb.Data, cbDeletePrefix) {
		return nil
	}

	recordID, err := parseRecordID(cb.Data, cbDeletePrefix)
	if err != nil {
		return nil
	}
	return b.askDeleteConfirmation(ctx, cb.Message.Chat.ID, cb.From, recordID)
}

// askDeleteConfirmation requires an explicit confirmation step before any
// record is removed.
func (b *Bot) askDeleteConfirmation(ctx context.Context, chatID int64, from *tgbotapi.User, recordID uint) error {
	if _, err := b.ensureUser(ctx, from); err != nil {
		return err
	}

	b.setConfirmation(from.ID, confirmationRequest{recordID: recordID})
	return b.sendWithReplyMarkup(chatID, fmt.Sprintf("🗑 #%d 기록을 삭제할까요?", recordID), confirmKeyboard())
}

func (b *Bot) handleConfirmationResponse(ctx context.Context, msg *tgbotapi.Message, req confirmationRequest) error {
	text := strings.TrimSpace(msg.Text)
	switch {
	case isConfirmInput(text):
		b.clearConfirmation(msg.From.ID)
		return b.deleteRecordAndRefresh(ctx, msg.Chat.ID, msg.From, req.recordID)
	case isCancelInput(text):
		b.clearConfirmation(msg.From.ID)
		return b.sendText(msg.Chat.ID, "삭제를 취소했어요.")
	default:
		return b.sendWithReplyMarkup(msg.Chat.ID, "삭제를 확인하거나 취소해 주세요.", confirmKeyboard())
	}
}

func (b *Bot) deleteRecordAndRefresh(ctx context.Context, chatID int64, from *tgbotapi.User, recordID uint) error {
	user, err := b.ensureUser(ctx, from)
	if err != nil {
		return err
	}

	// Delete is idempotent; a missing id is treated as already gone.
	if err := b.feedingSvc.Delete(ctx, user, recordID); err != nil {
		return b.sendText(chatID, fmt.Sprintf("삭제하지 못했어요: %s", escape(err.Error())))
	}

	b.log.Info("record deleted", zap.Uint("record", recordID), zap.Uint("user", user.ID))
	if err := b.sendText(chatID, fmt.Sprintf("🗑 #%d 기록을 삭제했어요.", recordID)); err != nil {
		return err
	}

	if err := b.sendRecordList(ctx, chatID, user); err != nil {
		return err
	}
	return b.refreshCountdown(ctx, chatID, user)
}

func (b *Bot) ensureUser(ctx context.Context, from *tgbotapi.User) (*model.User, error) {
	return b.users.UpsertFromTelegram(ctx, from.ID, from.FirstName, from.LastName, from.UserName)
}

func (b *Bot) sendText(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = mainMenuKeyboard()
	_, err := b.api.Send(msg)
	return err
}

func (b *Bot) sendWithReplyMarkup(chatID int64, text string, markup interface{}) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = markup
	_, err := b.api.Send(msg)
	return err
}

func (b *Bot) getConfirmation(userID int64) (confirmationRequest, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	req, ok := b.confirmations[userID]
	return req, ok
}

func (b *Bot) setConfirmation(userID int64, req confirmationRequest) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.confirmations[userID] = req
}

func (b *Bot) clearConfirmation(userID int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.confirmations, userID)
}

func (b *Bot) setConversation(userID int64, state *conversationState) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.conversations[userID] = state
}

func (b *Bot) getConversation(userID int64) *conversationState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.conversations[userID]
}

func (b *Bot) hasConversation(userID int64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.conversations[userID]
	return ok
}

func (b *Bot) clearConversation(userID int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.conversations, userID)
}

func parseRecordID(data, prefix string) (uint, error) {
	raw := strings.TrimPrefix(data, prefix)
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(value), nil
}

func isConfirmInput(text string) bool {
	value := strings.TrimSpace(text)
	return value == btnConfirm || value == "삭제" || value == "네"
}

func isCancelInput(text string) bool {
	value := strings.TrimSpace(text)
	return value == btnCancel || value == "취소" || value == "아니요"
}

func isCancelDialogInput(text string) bool {
	value := strings.TrimSpace(text)
	return value == btnCancelDialog || value == "입력 취소"
}

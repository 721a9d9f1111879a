package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"feedtrack/internal/bot"
	"feedtrack/internal/config"
	"feedtrack/internal/repository"
	"feedtrack/internal/service"
	"feedtrack/pkg/logger"
)

func main() {
	log := logger.Must(logger.New())
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config", zap.Error(err))
	}

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("db", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	userRepo := repository.NewUserRepository(db)
	feedingRepo := repository.NewFeedingRepository(db)

	feedingSvc := service.NewFeedingService(feedingRepo)
	summarySvc := service.NewSummaryService(feedingRepo)

	feedBot, err := bot.New(cfg.TelegramToken, userRepo, feedingSvc, summarySvc, &cfg, logger.Named(log, "bot"))
	if err != nil {
		log.Fatal("bot", zap.Error(err))
	}

	scheduler := service.NewSchedulerService(time.Local, logger.Named(log, "scheduler"))
	if cfg.ReportInterval > 0 {
		if _, err := scheduler.ScheduleInterval(cfg.ReportInterval, func() {
			jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := feedBot.SendDailyReports(jobCtx); err != nil && !errors.Is(err, context.Canceled) {
				log.Warn("report", zap.Error(err))
			}
		}); err != nil {
			log.Fatal("schedule reports", zap.Error(err))
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	log.Info("feedtrack bot started")
	if err := feedBot.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal("bot stopped with error", zap.Error(err))
	}
	log.Info("shutdown complete")
}

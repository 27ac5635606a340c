package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/SergeyBogomolovv/order-intake/docs"
	"github.com/SergeyBogomolovv/order-intake/internal/app"
	"github.com/SergeyBogomolovv/order-intake/internal/config"
	"github.com/SergeyBogomolovv/order-intake/internal/handler"
	"github.com/SergeyBogomolovv/order-intake/internal/notify"
	"github.com/SergeyBogomolovv/order-intake/internal/repo"
	"github.com/SergeyBogomolovv/order-intake/internal/service"
	"github.com/SergeyBogomolovv/order-intake/pkg/cache"
	"github.com/SergeyBogomolovv/order-intake/pkg/tasks"

	"github.com/joho/godotenv"
)

// @title           Order Intake API
// @version         1.0
// @description     Документация HTTP API приёма заказов
// @BasePath        /api
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	warnIfDisabled(logger, conf)

	rowIDs := cache.NewLRUCache[string](conf.Cache.Capacity, conf.Cache.TTL)
	store := repo.NewRecordStore(logger, conf.RecordStore, rowIDs)

	dispatcher := notify.NewDispatcher(
		logger,
		conf.SMTP,
		conf.Chat,
		notify.NewSMTPTransport(conf.SMTP),
		notify.NewTwilioMessageAPI(conf.Chat),
		store,
	)

	runner := tasks.NewRunner(logger, conf.Tasks.Workers, conf.Tasks.QueueSize, conf.Tasks.Timeout)
	orderService := service.NewOrderService(logger, store, dispatcher, runner, conf.BulkUpdateConcurrency)

	handler.RegisterMetrics()
	httpHandler := handler.NewHTTPHandler(logger, orderService)

	app := app.New(logger, conf)

	app.SetHTTPHandlers(httpHandler)
	app.SetStarters(rowIDs, runner)
	app.SetClosers(runner)
	if conf.Kafka.Enabled {
		app.SetConsumers(handler.NewKafkaHandler(logger, conf.Kafka, orderService))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

// Отсутствие настроек отключает функцию, но не процесс
func warnIfDisabled(logger *slog.Logger, conf config.Config) {
	if !conf.RecordStore.Configured() {
		logger.Warn("record store token or table id is missing, order operations will fail")
	}
	if !conf.SMTP.Configured() {
		logger.Warn("smtp is not configured, order emails are disabled")
	}
	if !conf.Chat.Configured() {
		logger.Warn("twilio is not configured, admin chat alerts are disabled")
	}
}

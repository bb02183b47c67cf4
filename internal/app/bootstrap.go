package app

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/Yotrages/exquisite-wears/config"
	gateway "github.com/Yotrages/exquisite-wears/internal/gateway/rest"
	"github.com/Yotrages/exquisite-wears/internal/kafka"
	"github.com/Yotrages/exquisite-wears/internal/notify"
	"github.com/Yotrages/exquisite-wears/internal/persist"
	"github.com/Yotrages/exquisite-wears/internal/ports"
	"github.com/Yotrages/exquisite-wears/internal/session"
	"github.com/Yotrages/exquisite-wears/internal/store/memory"
	rest "github.com/Yotrages/exquisite-wears/internal/transport/http"
	"github.com/Yotrages/exquisite-wears/internal/usecase"
	"github.com/Yotrages/exquisite-wears/pkg/logger"
	"github.com/Yotrages/exquisite-wears/pkg/metrics"
	"github.com/Yotrages/exquisite-wears/pkg/telemetry"
	"github.com/Yotrages/exquisite-wears/pkg/validate"
	"github.com/gin-gonic/gin"
)

// Runner — фоновый компонент с жизненным циклом Run/Close (издатель уведомлений).
type Runner interface {
	Run(ctx context.Context) error
	Close() error
}

// Drainer — ожидание фоновых запросов к бэкенду при остановке.
type Drainer interface {
	Wait(ctx context.Context) error
}

// App — собранный агент и его внешние интерфейсы (HTTP, Kafka).
// KafkaConsumer и Publisher равны nil, если Kafka выключена.
type App struct {
	Logger          ports.Logger          // логгер
	HTTPServer      *http.Server          // HTTP-сервер
	KafkaConsumer   ports.MessageConsumer // консьюмер событий корзины
	Publisher       Runner                // издатель уведомлений
	Synchronizer    Drainer               // фоновые запросы синхронизатора
	gracefulTimeout time.Duration         // время ожидания завершения
}

// Cleanup — функция освобождения ресурсов.
type Cleanup func()

// applyGinMode — устанавливает режим Gin по строке;
// неизвестное значение → debug и предупреждение в лог.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// Bootstrap — собирает зависимости и возвращает приложение, функцию очистки и ошибку.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	// Логгер (dev/prod режим задаётся конфигурацией).
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}
	fail := func(err error) (*App, Cleanup, error) {
		if cErr := cleanupLogger(); cErr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cErr)
		}
		return nil, func() {}, err
	}

	// Регистрация метрик (Prometheus).
	metrics.MustRegister()

	policy, err := usecase.ParsePolicy(cfg.Sync.Policy)
	if err != nil {
		return fail(err)
	}

	// Трейсинг OTEL (при включённой конфигурации); по умолчанию — no-op.
	shutdownTrace := func(context.Context) error { return nil }
	if cfg.Tracing.Enabled {
		setup, tErr := telemetry.SetupTracing(ctx, cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
		if tErr != nil {
			logg.Warnf(ctx, "failed to setup tracing: %v", tErr)
		} else {
			logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
				cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
			shutdownTrace = setup
		}
	}

	// Долговременный слот и адаптер поверх него.
	slot, closeSlot, err := openSlot(ctx, cfg, logg)
	if err != nil {
		_ = shutdownTrace(context.Background())
		return fail(err)
	}
	persister := persist.NewAdapter(slot, cfg.Storage.Key, validate.NewCartValidator(), logg, cfg.Storage.WriteTimeout)

	// Шлюз бэкенда.
	remote, err := gateway.NewClient(gateway.Config{
		BaseURL:   cfg.Backend.BaseURL,
		Timeout:   cfg.Backend.Timeout,
		UserAgent: cfg.Backend.UserAgent,
	})
	if err != nil {
		closeSlot()
		_ = shutdownTrace(context.Background())
		return fail(err)
	}

	// Уведомления: лента для HTTP и, при включённой Kafka, топик уведомлений.
	feed := notify.NewFeed(cfg.Notify.FeedCapacity, cfg.Notify.FeedTTL)
	var publisher *kafka.Publisher
	notifier := notify.NewMulti(feed)
	if cfg.Kafka.Enabled {
		publisher = kafka.NewPublisher(&kafka.PublisherConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.NotificationsTopic,
			Buffer:  cfg.Kafka.PublishBuffer,
		}, logg)
		notifier = notify.NewMulti(feed, publisher)
	}

	// Корзина гидратируется из слота синхронно, до первого запроса.
	store := memory.NewCartStore(ctx, persister)
	syncer := usecase.NewCartSynchronizer(store, remote, notifier, logg, usecase.SyncOptions{
		Policy:            policy,
		RequestTimeout:    cfg.Sync.RequestTimeout,
		MergeGuestOnLogin: cfg.Sync.MergeGuestOnLogin,
	})
	holder := session.NewHolder(cfg.Sync.Token)

	// Режим Gin.
	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	// Имя сервиса для otelgin (только при включённом трейсинге).
	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}

	// Роутер и HTTP-сервер.
	httpHandler := rest.NewHandler(syncer, feed, holder, logg, cfg.HTTP.HandlerTimeout)
	router := rest.NewRouter(httpHandler, otelServiceName)

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	app := &App{
		Logger:          logg,
		HTTPServer:      httpSrv,
		Synchronizer:    syncer,
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}

	// Kafka: консьюмер событий корзины и издатель уведомлений.
	var consumer *kafka.Consumer
	if cfg.Kafka.Enabled {
		consumer = kafka.NewConsumer(&kafka.ConsumerConfig{
			Brokers:        cfg.Kafka.Brokers,
			GroupID:        cfg.Kafka.GroupID,
			Topic:          cfg.Kafka.EventsTopic,
			StartOffset:    cfg.Kafka.StartOffset,
			ProcessTimeout: cfg.Kafka.ProcessTimeout,
			RetryInitial:   cfg.Kafka.RetryInitial,
			RetryMax:       cfg.Kafka.RetryMax,
		}, usecase.NewCartEventService(syncer, holder, logg), logg)
		app.KafkaConsumer = consumer
		app.Publisher = publisher
	} else {
		logg.Infof(ctx, "kafka disabled: events are not consumed, notifications stay local")
	}

	// Очистка ресурсов (в обратном порядке).
	cleanup := func() {
		if terr := shutdownTrace(context.Background()); terr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", terr)
		}
		if consumer != nil {
			if err := consumer.Close(); err != nil {
				logg.Warnf(ctx, "kafka consumer close error: %v", err)
			}
		}
		if publisher != nil {
			if err := publisher.Close(); err != nil {
				logg.Warnf(ctx, "kafka publisher close error: %v", err)
			}
		}

		closeSlot()
		if cerr := cleanupLogger(); cerr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cerr)
		}
	}

	return app, cleanup, nil
}

// Run — запускает HTTP-сервер и фоновые компоненты; ждёт отмены контекста или ошибки и останавливает их.
func (a *App) Run(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	errCh := make(chan error, 3)
	var wg sync.WaitGroup

	// Запуск консьюмера.
	if a.KafkaConsumer != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			a.Logger.Infof(ctx, "kafka consumer starting")
			if err := a.KafkaConsumer.Run(runCtx); err != nil {
				errCh <- err
			}
		}()
	}

	// Запуск издателя уведомлений.
	if a.Publisher != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := a.Publisher.Run(runCtx); err != nil {
				errCh <- err
			}
		}()
	}

	// Запуск HTTP-сервера.
	go func() {
		a.Logger.Infof(ctx, "http server starting (addr=%s)", a.HTTPServer.Addr)
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Ожидание сигнала остановки или фоновой ошибки.
	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case err := <-errCh:
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			a.Logger.Infof(ctx, "background component stopped: %v", err)
		} else {
			a.Logger.Warnf(ctx, "background error: %v", err)
		}
	}

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}

	// Корректная остановка HTTP-сервера.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), gt)
	defer shutdownCancel()

	if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warnf(ctx, "http server shutdown failed: %v", err)
	} else {
		a.Logger.Infof(ctx, "http server stopped gracefully")
	}

	// Ответы бэкенда, уже находящиеся в пути, ещё успевают попасть в корзину и слот.
	if a.Synchronizer != nil {
		if err := a.Synchronizer.Wait(shutdownCtx); err != nil {
			a.Logger.Warnf(ctx, "in-flight cart requests not finished: %v", err)
		}
	}

	// Остановка Kafka: сначала консьюмер, затем издатель (его очередь уже не пополняется).
	cancel()
	if a.KafkaConsumer != nil {
		if err := a.KafkaConsumer.Close(); err != nil {
			a.Logger.Warnf(ctx, "kafka consumer close error: %v", err)
		}
	}
	wg.Wait()
	if a.Publisher != nil {
		if err := a.Publisher.Close(); err != nil {
			a.Logger.Warnf(ctx, "kafka publisher close error: %v", err)
		}
	}

	a.Logger.Infof(ctx, "agent stopped")
	return nil
}

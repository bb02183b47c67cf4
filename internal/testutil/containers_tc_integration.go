//go:build integration

package testutil

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pressly/goose/v3"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/modules/redpanda"
	"github.com/testcontainers/testcontainers-go/wait"

	pgrepo "github.com/Yotrages/exquisite-wears/internal/repo/postgres"
)

var tcLogger = log.New(os.Stdout, "[tc] ", log.LstdFlags)

// lifecycleLog — одна строка на каждый этап жизни контейнера.
func lifecycleLog(l *log.Logger) tc.ContainerLifecycleHooks {
	stage := func(name string) tc.ContainerHook {
		return func(_ context.Context, c tc.Container) error {
			id := c.GetContainerID()
			if len(id) > 12 {
				id = id[:12]
			}
			l.Printf("%s id=%s", name, id)
			return nil
		}
	}
	return tc.ContainerLifecycleHooks{
		PreCreates: []tc.ContainerRequestHook{
			func(_ context.Context, req tc.ContainerRequest) error {
				l.Printf("create image=%s", req.Image)
				return nil
			},
		},
		PostReadies:    []tc.ContainerHook{stage("ready")},
		PostTerminates: []tc.ContainerHook{stage("terminated")},
	}
}

// ---- Postgres ----

// PGEnv — база слотов корзины с применёнными миграциями.
type PGEnv struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	DSN       string
}

// StartPostgres — контейнер Postgres, миграции goose и пул агента.
func StartPostgres(ctx context.Context) (*PGEnv, func(context.Context) error, error) {
	pg, err := postgres.Run(
		ctx,
		"postgres:16-alpine",
		tc.WithLifecycleHooks(lifecycleLog(tcLogger)),
		postgres.WithDatabase("cart"),
		postgres.WithUsername("app"),
		postgres.WithPassword("app"),
		tc.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("run postgres: %w", err)
	}

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = pg.Terminate(ctx)
		return nil, nil, fmt.Errorf("conn string: %w", err)
	}

	goose.SetLogger(log.New(os.Stdout, "[goose] ", 0))
	if err := pgrepo.Migrate(ctx, dsn); err != nil {
		_ = pg.Terminate(ctx)
		return nil, nil, err
	}

	pool, err := pgrepo.NewPool(ctx, dsn, 4)
	if err != nil {
		_ = pg.Terminate(ctx)
		return nil, nil, err
	}

	stop := func(c context.Context) error {
		pool.Close()
		return pg.Terminate(c)
	}
	return &PGEnv{Container: pg, DSN: dsn, Pool: pool}, stop, nil
}

// ---- Kafka (Redpanda) ----

// KafkaEnv — брокер для тестов консьюмера и издателя.
type KafkaEnv struct {
	Container *redpanda.Container
	Brokers   []string
}

// StartRedpanda — одноузловой Redpanda с Kafka API.
func StartRedpanda(ctx context.Context) (*KafkaEnv, func(context.Context) error, error) {
	rp, err := redpanda.Run(
		ctx,
		"docker.redpanda.com/redpandadata/redpanda:v23.3.8",
		tc.WithLifecycleHooks(lifecycleLog(tcLogger)),
		redpanda.WithAutoCreateTopics(),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("run redpanda: %w", err)
	}

	seed, err := rp.KafkaSeedBroker(ctx)
	if err != nil {
		_ = tc.TerminateContainer(rp)
		return nil, nil, fmt.Errorf("seed broker: %w", err)
	}

	stop := func(_ context.Context) error { return tc.TerminateContainer(rp) }
	return &KafkaEnv{Container: rp, Brokers: []string{seed}}, stop, nil
}

// NewTopic — уникальные топик и группа для одного теста; топик создан и виден в метаданных.
func (e *KafkaEnv) NewTopic(ctx context.Context, base string) (topic, group string, err error) {
	topic = UniqueName(base)
	if err := EnsureTopics(ctx, e.Brokers[0], topic); err != nil {
		return "", "", err
	}
	return topic, topic + "-group", nil
}

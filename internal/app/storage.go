package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Yotrages/exquisite-wears/config"
	"github.com/Yotrages/exquisite-wears/internal/ports"
	"github.com/Yotrages/exquisite-wears/internal/repo/file"
	"github.com/Yotrages/exquisite-wears/internal/repo/memory"
	"github.com/Yotrages/exquisite-wears/internal/repo/postgres"
	"github.com/Yotrages/exquisite-wears/internal/repo/sqlite"
)

// openSlot — выбирает хранилище слота корзины по Storage.Driver.
// Возвращает функцию закрытия (для file/memory — пустую).
func openSlot(ctx context.Context, cfg *config.Config, log ports.Logger) (ports.CartSlot, func(), error) {
	noop := func() {}

	switch driver := strings.ToLower(strings.TrimSpace(cfg.Storage.Driver)); driver {
	case "", "file":
		slot, err := file.NewSlot(cfg.Storage.Dir)
		if err != nil {
			return nil, noop, fmt.Errorf("file slot: %w", err)
		}
		log.Infof(ctx, "cart slot: file dir=%s", slot.Dir())
		return slot, noop, nil

	case "sqlite":
		slot, err := sqlite.Open(ctx, expandHome(cfg.Storage.SQLitePath))
		if err != nil {
			return nil, noop, fmt.Errorf("sqlite slot: %w", err)
		}
		log.Infof(ctx, "cart slot: sqlite path=%s", slot.Path())
		return slot, func() {
			if err := slot.Close(); err != nil {
				log.Warnf(ctx, "sqlite close: %v", err)
			}
		}, nil

	case "postgres":
		if cfg.Postgres.AutoMigrate {
			if err := postgres.Migrate(ctx, cfg.Postgres.DSN); err != nil {
				return nil, noop, fmt.Errorf("postgres migrate: %w", err)
			}
		}
		pool, err := postgres.NewPool(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns)
		if err != nil {
			return nil, noop, fmt.Errorf("postgres pool: %w", err)
		}
		log.Infof(ctx, "cart slot: postgres max_conns=%d", cfg.Postgres.MaxConns)
		return postgres.NewCartSlotRepository(pool), pool.Close, nil

	case "memory":
		log.Warnf(ctx, "cart slot: memory, cart is lost on restart")
		return memory.NewSlot(), noop, nil

	default:
		return nil, noop, fmt.Errorf("unknown storage driver %q", driver)
	}
}

// expandHome — "~" в начале пути раскрывается в домашний каталог.
func expandHome(path string) string {
	path = strings.TrimSpace(path)
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

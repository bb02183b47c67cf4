package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Yotrages/exquisite-wears/internal/ports"
	_ "modernc.org/sqlite" // database/sql driver name = "sqlite"
)

// Проверка, что Slot удовлетворяет интерфейсу CartSlot.
var _ ports.CartSlot = (*Slot)(nil)

// Slot — слот корзины в локальной базе SQLite (один файл на агент).
type Slot struct {
	db     *sql.DB
	dbPath string
}

// Open — открывает (или создаёт) базу по пути и готовит схему.
func Open(ctx context.Context, dbPath string) (*Slot, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// один писатель: SQLite всё равно сериализует запись
	db.SetMaxOpenConns(1)

	s := &Slot{db: db, dbPath: dbPath}
	if err := s.initSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Path — путь к файлу базы.
func (s *Slot) Path() string { return s.dbPath }

// Close — закрывает соединение.
func (s *Slot) Close() error { return s.db.Close() }

func (s *Slot) initSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS cart_slots (
			key        TEXT PRIMARY KEY,
			payload    TEXT NOT NULL,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}

// Read — содержимое слота; (nil, nil), если записи ещё нет.
func (s *Slot) Read(ctx context.Context, key string) ([]byte, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM cart_slots WHERE key = ?`, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select cart slot: %w", err)
	}
	return []byte(payload), nil
}

// Write — upsert содержимого слота.
func (s *Slot) Write(ctx context.Context, key string, payload []byte) error {
	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO cart_slots (key, payload, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at
	`, key, string(payload)); err != nil {
		return fmt.Errorf("upsert cart slot: %w", err)
	}
	return nil
}

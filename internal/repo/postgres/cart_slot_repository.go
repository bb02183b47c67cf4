package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Yotrages/exquisite-wears/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что CartSlotRepository удовлетворяет интерфейсу CartSlot.
var _ ports.CartSlot = (*CartSlotRepository)(nil)

// CartSlotRepository — слот корзины в таблице cart_slots (pgxpool).
type CartSlotRepository struct {
	pool *pgxpool.Pool
}

// NewCartSlotRepository - конструктор CartSlotRepository.
func NewCartSlotRepository(pool *pgxpool.Pool) *CartSlotRepository {
	return &CartSlotRepository{pool: pool}
}

// Read — содержимое слота; (nil, nil), если записи ещё нет.
func (r *CartSlotRepository) Read(ctx context.Context, key string) ([]byte, error) {
	var payload []byte
	err := r.pool.QueryRow(ctx, `SELECT payload FROM cart_slots WHERE key = $1`, key).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select cart slot: %w", err)
	}
	return payload, nil
}

// Write — upsert содержимого слота.
func (r *CartSlotRepository) Write(ctx context.Context, key string, payload []byte) error {
	if _, err := r.pool.Exec(ctx, `
		INSERT INTO cart_slots (key, payload, updated_at)
		VALUES ($1, $2::jsonb, now())
		ON CONFLICT (key) DO UPDATE SET
			payload = EXCLUDED.payload,
			updated_at = EXCLUDED.updated_at
	`, key, string(payload)); err != nil {
		return fmt.Errorf("upsert cart slot: %w", err)
	}
	return nil
}

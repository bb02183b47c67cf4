package persist

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Yotrages/exquisite-wears/internal/domain"
	"github.com/Yotrages/exquisite-wears/internal/ports"
	"github.com/Yotrages/exquisite-wears/pkg/metrics"
)

// Проверка, что Adapter удовлетворяет интерфейсу CartPersister.
var _ ports.CartPersister = (*Adapter)(nil)

// DefaultKey — имя слота по умолчанию.
const DefaultKey = "cart"

// Adapter — сериализация корзины в JSON-массив CartLine поверх CartSlot.
// Ошибки слота не выходят наружу: Save логирует и забывает, Load отдаёт пустую корзину.
type Adapter struct {
	slot         ports.CartSlot
	key          string
	validator    ports.LineValidator
	log          ports.Logger
	writeTimeout time.Duration
}

// NewAdapter — конструктор. validator может быть nil (тогда проверяется только quantity/productId).
func NewAdapter(slot ports.CartSlot, key string, validator ports.LineValidator, log ports.Logger, writeTimeout time.Duration) *Adapter {
	if key == "" {
		key = DefaultKey
	}
	return &Adapter{
		slot:         slot,
		key:          key,
		validator:    validator,
		log:          log,
		writeTimeout: writeTimeout,
	}
}

// Save — записывает состояние в слот. Ошибка записи не влияет на состояние в памяти.
func (a *Adapter) Save(ctx context.Context, lines []domain.CartLine) {
	payload, err := json.Marshal(domain.CloneLines(lines))
	if err != nil {
		a.fail(ctx, "save", domain.NewPersistenceError("encode", err))
		return
	}

	// запись не должна зависеть от отмены запроса, который её вызвал
	writeCtx := context.WithoutCancel(ctx)
	if a.writeTimeout > 0 {
		var cancel context.CancelFunc
		writeCtx, cancel = context.WithTimeout(writeCtx, a.writeTimeout)
		defer cancel()
	}

	if err := a.slot.Write(writeCtx, a.key, payload); err != nil {
		a.fail(ctx, "save", domain.NewPersistenceError("write", err))
	}
}

// Load — читает слот при старте. Отсутствие, ошибка чтения или мусор дают пустую корзину.
// Невалидные позиции отбрасываются, повторы productId схлопываются.
func (a *Adapter) Load(ctx context.Context) []domain.CartLine {
	payload, err := a.slot.Read(ctx, a.key)
	if err != nil {
		a.fail(ctx, "load", domain.NewPersistenceError("read", err))
		return []domain.CartLine{}
	}
	if len(payload) == 0 {
		return []domain.CartLine{}
	}

	var raw []domain.CartLine
	if err := json.Unmarshal(payload, &raw); err != nil {
		a.fail(ctx, "decode", domain.NewPersistenceError("decode", err))
		return []domain.CartLine{}
	}

	out := make([]domain.CartLine, 0, len(raw))
	dropped := 0
	for i := range raw {
		if !a.valid(ctx, &raw[i]) {
			dropped++
			continue
		}
		if j := domain.IndexOf(out, raw[i].ProductID); j >= 0 {
			out[j] = raw[i]
			dropped++
			continue
		}
		out = append(out, raw[i])
	}
	if dropped > 0 {
		a.log.Warnf(ctx, "cart slot %q: dropped %d invalid or duplicate lines", a.key, dropped)
	}
	return out
}

func (a *Adapter) valid(ctx context.Context, line *domain.CartLine) bool {
	if a.validator != nil {
		return a.validator.ValidateLine(ctx, line) == nil
	}
	return line.ProductID != "" && line.Quantity >= 1
}

func (a *Adapter) fail(ctx context.Context, op string, err error) {
	metrics.PersistenceFailures.WithLabelValues(op).Inc()
	a.log.Warnf(ctx, "cart slot %q %s failed: %v", a.key, op, err)
}

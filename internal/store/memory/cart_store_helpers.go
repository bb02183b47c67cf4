package memory

import (
	"context"
	"math"

	"github.com/Yotrages/exquisite-wears/internal/domain"
	"github.com/Yotrages/exquisite-wears/internal/ports"
	"github.com/Yotrages/exquisite-wears/pkg/metrics"
	"github.com/Yotrages/exquisite-wears/pkg/validate"
)

// lineValidator — те же правила, что у persist.Adapter при чтении слота:
// всё, что попало в корзину, переживает перезапуск.
var lineValidator ports.LineValidator = validate.NewCartValidator()

// commit — фиксирует мутацию: метрики, запись в слот, копия для вызывающего.
// Вызывается под s.mu.
func (s *CartStore) commit(ctx context.Context, op string) []domain.CartLine {
	metrics.StoreOps.WithLabelValues(op).Inc()
	metrics.CartLines.Set(float64(len(s.lines)))

	if s.persister != nil {
		s.persister.Save(ctx, domain.CloneLines(s.lines))
	}
	return domain.CloneLines(s.lines)
}

// removeLocked — удаляет позицию с сохранением порядка остальных.
func (s *CartStore) removeLocked(productID string) {
	i := domain.IndexOf(s.lines, productID)
	if i < 0 {
		return
	}
	s.lines = append(s.lines[:i], s.lines[i+1:]...)
}

// admit — копия позиции, пригодная для корзины. Испорченные подсказки
// (отрицательный остаток, цена вне диапазона) сбрасываются, позиция остаётся;
// пустой productId или quantity < 1 позицию отклоняют.
func admit(ctx context.Context, line domain.CartLine) (domain.CartLine, bool) {
	out := line.Clone()
	clearBadHints(&out)
	if err := lineValidator.ValidateLine(ctx, &out); err != nil {
		return domain.CartLine{}, false
	}
	return out, true
}

func clearBadHints(line *domain.CartLine) {
	if line.AvailableStock != nil && *line.AvailableStock < 0 {
		line.AvailableStock = nil
	}
	if line.UnitPrice < 0 || math.IsNaN(line.UnitPrice) || math.IsInf(line.UnitPrice, 0) {
		line.UnitPrice = 0
	}
}

// normalizeLines — допустимые позиции набора (см. admit);
// повторный productId перезаписывает позицию, она остаётся на первом месте.
func normalizeLines(ctx context.Context, lines []domain.CartLine) []domain.CartLine {
	out := make([]domain.CartLine, 0, len(lines))
	for i := range lines {
		in, ok := admit(ctx, lines[i])
		if !ok {
			continue
		}
		if j := domain.IndexOf(out, in.ProductID); j >= 0 {
			out[j] = in
			continue
		}
		out = append(out, in)
	}
	return out
}

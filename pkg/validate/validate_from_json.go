package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Yotrages/exquisite-wears/internal/domain"
	"github.com/Yotrages/exquisite-wears/internal/ports"
)

// decodeStrict — строгий разбор: неизвестные поля и хвост после документа запрещены.
func decodeStrict(raw []byte, dst any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	// гарантируем отсутствие данных после документа
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return fmt.Errorf("invalid json: trailing data")
	}
	return nil
}

// ValidateLineFromJSON — валидация одной позиции корзины из JSON.
func ValidateLineFromJSON(ctx context.Context, validator ports.LineValidator, raw []byte) (*domain.CartLine, error) {
	var line domain.CartLine
	if err := decodeStrict(raw, &line); err != nil {
		return nil, err
	}
	if err := validator.ValidateLine(ctx, &line); err != nil {
		return nil, err
	}
	return &line, nil
}

// ValidateSlotFromJSON — валидация содержимого слота (JSON-массив позиций).
// Ошибка на первой же некорректной позиции; дубли productId тоже ошибка.
func ValidateSlotFromJSON(ctx context.Context, validator ports.LineValidator, raw []byte) ([]domain.CartLine, error) {
	var lines []domain.CartLine
	if err := decodeStrict(raw, &lines); err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(lines))
	for i := range lines {
		if err := validator.ValidateLine(ctx, &lines[i]); err != nil {
			return nil, fmt.Errorf("line[%d]: %w", i, err)
		}
		if _, dup := seen[lines[i].ProductID]; dup {
			return nil, fmt.Errorf("line[%d]: %w: повтор productId %q", i, ErrInvalidLine, lines[i].ProductID)
		}
		seen[lines[i].ProductID] = struct{}{}
	}
	return domain.CloneLines(lines), nil
}

// ParseCartEvent — разбор и валидация события корзины.
// Любая проблема оборачивается в ErrInvalidEvent: такое сообщение повторять бессмысленно.
func ParseCartEvent(raw []byte) (*domain.CartEvent, error) {
	var ev domain.CartEvent
	if err := decodeStrict(raw, &ev); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEvent, err)
	}
	if err := ValidateEvent(&ev); err != nil {
		return nil, err
	}
	return &ev, nil
}

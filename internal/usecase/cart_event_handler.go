package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Yotrages/exquisite-wears/internal/domain"
	"github.com/Yotrages/exquisite-wears/internal/ports"
	"github.com/Yotrages/exquisite-wears/pkg/validate"
)

// Проверка, что CartEventService удовлетворяет интерфейсу CartEventHandler.
var _ ports.CartEventHandler = (*CartEventService)(nil)

// CartEventService — реакция на события бэкенда «корзина изменилась на другом устройстве».
type CartEventService struct {
	syncer ports.CartSyncService
	creds  ports.CredentialSource
	log    ports.Logger
}

// NewCartEventService — DI-конструктор.
func NewCartEventService(syncer ports.CartSyncService, creds ports.CredentialSource, log ports.Logger) *CartEventService {
	return &CartEventService{syncer: syncer, creds: creds, log: log}
}

// HandleCartEvent — обработать событие из брокера.
// Шаги:
//  1. строгий разбор и валидация (validate.ErrInvalidEvent — сообщение повторять бессмысленно);
//  2. без учётных данных событие не касается гостевой корзины;
//  3. syncFromServer и ожидание результата; сетевой или серверный сбой возвращается
//     ошибкой, чтобы консьюмер повторил сообщение.
func (s *CartEventService) HandleCartEvent(ctx context.Context, raw []byte) error {
	ev, err := validate.ParseCartEvent(raw)
	if err != nil {
		s.log.Warnf(ctx, "cart event rejected err=%v", err)
		return err
	}

	credential, ok := s.creds.Current()
	if !ok || credential == "" {
		s.log.Infof(ctx, "cart event %s ignored: no session", ev.Type)
		return nil
	}

	m := s.syncer.SyncFromServer(ctx, credential)
	state := m.Wait(ctx)
	if err := ctx.Err(); err != nil && state == domain.StateRequested {
		return fmt.Errorf("wait cart sync: %w", err)
	}

	switch state {
	case domain.StateAbandoned:
		if errors.Is(m.Err(), domain.ErrUnauthenticated) {
			s.log.Infof(ctx, "cart event sync skipped: session rejected")
			return nil
		}
		return fmt.Errorf("cart sync after event: %w", m.Err())
	default:
		s.log.Infof(ctx, "cart event %s handled products=[%s] state=%s",
			ev.Type, strings.Join(ev.ProductIDs, ","), state)
		return nil
	}
}

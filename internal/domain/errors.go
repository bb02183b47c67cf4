package domain

import (
	"context"
	"errors"
	"fmt"
)

// Таксономия ошибок синхронизации корзины.
// Проверять через errors.Is.
var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrNetwork         = errors.New("network error")
	ErrServer          = errors.New("server error")
	ErrPersistence     = errors.New("persistence error")
)

// ServerError — ответ не-2xx с сообщением сервера.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("server error: status %d: %s", e.StatusCode, e.Message)
}

func (e *ServerError) Unwrap() error { return ErrServer }

// NewNetworkError — транспортный сбой (offline, DNS, таймаут).
func NewNetworkError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrNetwork, op, err)
}

// NewPersistenceError — сбой чтения/записи долговременного слота.
func NewPersistenceError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrPersistence, op, err)
}

// Виды ошибок для метрик и уведомлений.
const (
	KindUnauthenticated = "unauthenticated"
	KindNetwork         = "network"
	KindServer          = "server"
	KindPersistence     = "persistence"
	KindCanceled        = "canceled"
	KindUnknown         = "unknown"
)

// ErrorKind — сводит ошибку к одному из видов таксономии.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUnauthenticated):
		return KindUnauthenticated
	case errors.Is(err, ErrServer):
		return KindServer
	case errors.Is(err, ErrPersistence):
		return KindPersistence
	case errors.Is(err, context.Canceled):
		return KindCanceled
	case errors.Is(err, ErrNetwork), errors.Is(err, context.DeadlineExceeded):
		return KindNetwork
	default:
		return KindUnknown
	}
}

// ServerMessage — сообщение сервера, если ошибка его несёт.
func ServerMessage(err error) string {
	var se *ServerError
	if errors.As(err, &se) {
		return se.Message
	}
	return ""
}

package usecase

import (
	"fmt"
	"strings"
	"time"
)

// Policy — как синхронизатор поступает с ответами, которые пришли не по порядку.
type Policy string

const (
	// PolicyLastWins — каждый успешный ответ делает ReplaceAll; побеждает пришедший последним.
	PolicyLastWins Policy = "last-wins"
	// PolicySequence — ответ применяется, только если по его productId не было более новых запросов;
	// снимок syncFromServer отбрасывается, если после его старта была хоть одна мутация.
	PolicySequence Policy = "sequence"
)

// ParsePolicy — разбор значения из конфигурации; пустая строка даёт last-wins.
func ParsePolicy(raw string) (Policy, error) {
	switch p := Policy(strings.ToLower(strings.TrimSpace(raw))); p {
	case "":
		return PolicyLastWins, nil
	case PolicyLastWins, PolicySequence:
		return p, nil
	default:
		return "", fmt.Errorf("unknown sync policy %q (want %q or %q)", raw, PolicyLastWins, PolicySequence)
	}
}

// SyncOptions — параметры синхронизатора.
type SyncOptions struct {
	Policy            Policy
	RequestTimeout    time.Duration // 0 — без собственного таймаута
	MergeGuestOnLogin bool
}

// ticket — отметка о выдаче удалённого запроса.
type ticket struct {
	productID  string
	seq        uint64 // сквозной номер запроса; сравнивается с последним по productId
	generation uint64 // номер мутации среди всех productId
	epoch      uint64 // номер явной очистки
}

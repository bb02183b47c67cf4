package domain

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// MutationKind — какая публичная операция синхронизатора породила мутацию.
type MutationKind string

const (
	MutationAdd    MutationKind = "add"
	MutationChange MutationKind = "change"
	MutationSync   MutationKind = "sync"
)

// MutationState — состояние одной логической мутации:
// Requested -> Applied(оптимистично) -> Reconciled | Stale | Abandoned.
// Гостевая мутация завершается в Applied; синхронизация без учётных данных — в Skipped.
type MutationState int32

const (
	StateRequested MutationState = iota
	StateApplied
	StateReconciled
	StateStale
	StateAbandoned
	StateSkipped
)

func (s MutationState) String() string {
	switch s {
	case StateRequested:
		return "requested"
	case StateApplied:
		return "applied"
	case StateReconciled:
		return "reconciled"
	case StateStale:
		return "stale"
	case StateAbandoned:
		return "abandoned"
	case StateSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// MarshalText — состояние в JSON пишется строкой.
func (s MutationState) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Mutation — дескриптор мутации. Владелец переходов — синхронизатор,
// остальные только читают состояние и ждут завершения.
type Mutation struct {
	ID        string
	Kind      MutationKind
	ProductID string

	state atomic.Int32
	done  chan struct{}
	once  sync.Once

	mu       sync.Mutex
	err      error
	snapshot []CartLine
}

// NewMutation — новая мутация в состоянии Requested.
func NewMutation(kind MutationKind, productID string) *Mutation {
	return &Mutation{
		ID:        uuid.NewString(),
		Kind:      kind,
		ProductID: productID,
		done:      make(chan struct{}),
	}
}

// MarkApplied — оптимистичное изменение применено к локальной корзине.
func (m *Mutation) MarkApplied(snapshot []CartLine) {
	m.mu.Lock()
	m.snapshot = CloneLines(snapshot)
	m.mu.Unlock()
	m.state.CompareAndSwap(int32(StateRequested), int32(StateApplied))
}

// Resolve — переводит мутацию в конечное состояние; повторные вызовы игнорируются.
func (m *Mutation) Resolve(state MutationState, snapshot []CartLine, err error) {
	m.once.Do(func() {
		m.mu.Lock()
		if snapshot != nil {
			m.snapshot = CloneLines(snapshot)
		}
		m.err = err
		m.mu.Unlock()
		m.state.Store(int32(state))
		close(m.done)
	})
}

// State — текущее состояние.
func (m *Mutation) State() MutationState { return MutationState(m.state.Load()) }

// Done — закрывается при переходе в конечное состояние.
func (m *Mutation) Done() <-chan struct{} { return m.done }

// Wait — ждёт конечного состояния или отмены ctx; возвращает состояние на момент выхода.
func (m *Mutation) Wait(ctx context.Context) MutationState {
	select {
	case <-m.done:
	case <-ctx.Done():
	}
	return m.State()
}

// Err — причина Abandoned (только для диагностики).
func (m *Mutation) Err() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.err
}

// Snapshot — локальная корзина сразу после последнего перехода.
func (m *Mutation) Snapshot() []CartLine {
	m.mu.Lock()
	defer m.mu.Unlock()
	return CloneLines(m.snapshot)
}

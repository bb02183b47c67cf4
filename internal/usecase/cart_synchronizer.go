package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Yotrages/exquisite-wears/internal/domain"
	"github.com/Yotrages/exquisite-wears/internal/ports"
	"github.com/Yotrages/exquisite-wears/pkg/ctxmeta"
	"github.com/Yotrages/exquisite-wears/pkg/metrics"
	"github.com/Yotrages/exquisite-wears/pkg/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/singleflight"
)

// Проверка, что CartSynchronizer удовлетворяет интерфейсу CartSyncService.
var _ ports.CartSyncService = (*CartSynchronizer)(nil)

// ErrInvalidRequest — операция отклонена до изменения корзины (пустой productId, quantity < 1 в add).
var ErrInvalidRequest = errors.New("invalid cart request")

// CartSynchronizer — оркестратор мутаций корзины.
// Локальное изменение применяется синхронно; удалённый вызов идёт в фоне, и успешный
// ответ целиком заменяет локальную корзину. Неудача не откатывает локальное изменение.
type CartSynchronizer struct {
	store    ports.CartStore
	gateway  ports.RemoteCartGateway
	notifier ports.Notifier // может быть nil
	log      ports.Logger
	opts     SyncOptions

	mu         sync.Mutex
	issued     map[string]uint64 // productId -> номер последнего запроса (только sequence)
	generation uint64
	epoch      uint64
	knownCred  string // учётные данные последней успешной сверки

	inflight sync.WaitGroup
	group    singleflight.Group
}

// NewCartSynchronizer — DI-конструктор.
func NewCartSynchronizer(
	store ports.CartStore,
	gateway ports.RemoteCartGateway,
	notifier ports.Notifier,
	log ports.Logger,
	opts SyncOptions,
) *CartSynchronizer {
	if opts.Policy == "" {
		opts.Policy = PolicyLastWins
	}
	return &CartSynchronizer{
		store:    store,
		gateway:  gateway,
		notifier: notifier,
		log:      log,
		opts:     opts,
		issued:   make(map[string]uint64),
	}
}

// AddProduct — оптимистичный addItem, затем (при наличии учётных данных) addToServerCart и сверка.
func (s *CartSynchronizer) AddProduct(ctx context.Context, req domain.AddRequest, credential string) *domain.Mutation {
	m := domain.NewMutation(domain.MutationAdd, req.ProductID)
	if strings.TrimSpace(req.ProductID) == "" || req.Quantity < 1 {
		s.finish(m, domain.StateAbandoned, s.store.Snapshot(ctx),
			fmt.Errorf("%w: productId=%q quantity=%d", ErrInvalidRequest, req.ProductID, req.Quantity))
		return m
	}

	// номер выдаётся до оптимистичного изменения: ответ старого запроса,
	// пришедший между ними, уже будет считаться устаревшим
	var t ticket
	if credential != "" {
		t = s.issue(req.ProductID)
	}
	m.MarkApplied(s.store.AddItem(ctx, req.Line()))

	if credential == "" {
		s.finish(m, domain.StateApplied, nil, nil)
		return m
	}

	s.dispatch(ctx, m, t, func(rctx context.Context) (*domain.ServerCartSnapshot, error) {
		return s.gateway.AddToServerCart(rctx, credential, req.ProductID, req.Quantity, req.Variant)
	})
	return m
}

// ChangeQuantity — оптимистичный setQuantity (или removeItem при quantity < 1),
// затем setServerCartLine и сверка.
func (s *CartSynchronizer) ChangeQuantity(ctx context.Context, productID string, quantity int, credential string) *domain.Mutation {
	m := domain.NewMutation(domain.MutationChange, productID)
	if strings.TrimSpace(productID) == "" {
		s.finish(m, domain.StateAbandoned, s.store.Snapshot(ctx),
			fmt.Errorf("%w: empty productId", ErrInvalidRequest))
		return m
	}

	var t ticket
	if credential != "" {
		t = s.issue(productID)
	}
	if quantity < 1 {
		m.MarkApplied(s.store.RemoveItem(ctx, productID))
	} else {
		m.MarkApplied(s.store.SetQuantity(ctx, productID, quantity, nil))
	}

	if credential == "" {
		s.finish(m, domain.StateApplied, nil, nil)
		return m
	}

	// 0 — серверная конвенция удаления
	remoteQty := max(quantity, 0)
	s.dispatch(ctx, m, t, func(rctx context.Context) (*domain.ServerCartSnapshot, error) {
		return s.gateway.SetServerCartLine(rctx, credential, productID, remoteQty)
	})
	return m
}

// SyncFromServer — сверка при открытии страницы корзины. Без учётных данных ничего не делает.
// Одновременные вызовы с одними учётными данными разделяют один fetchCart.
func (s *CartSynchronizer) SyncFromServer(ctx context.Context, credential string) *domain.Mutation {
	m := domain.NewMutation(domain.MutationSync, "")
	if credential == "" {
		s.finish(m, domain.StateSkipped, s.store.Snapshot(ctx), nil)
		return m
	}

	// пока идёт fetch, мутация показывает текущую локальную корзину
	m.MarkApplied(s.store.Snapshot(ctx))

	// Add до запуска fetch: Wait не должен пропустить уже начатую сверку
	s.inflight.Add(1)
	ch := s.group.DoChan(credential, func() (any, error) {
		return s.syncOnce(ctx, credential), nil
	})

	go func() {
		defer s.inflight.Done()
		res := (<-ch).Val.(syncResult)
		s.finish(m, res.state, res.lines, res.err)
	}()
	return m
}

// ClearLocal — явная очистка (после оформления заказа). Ответы, запрошенные до очистки, отбрасываются.
func (s *CartSynchronizer) ClearLocal(ctx context.Context) []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.epoch++
	s.log.Infof(ctx, "local cart cleared")
	return s.store.Clear(ctx)
}

// Snapshot — корзина только для чтения.
func (s *CartSynchronizer) Snapshot(ctx context.Context) []domain.CartLine {
	return s.store.Snapshot(ctx)
}

// Wait — ждёт завершения фоновых запросов (graceful shutdown).
func (s *CartSynchronizer) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.inflight.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ---- фоновая часть ----

type syncResult struct {
	state domain.MutationState
	lines []domain.CartLine
	err   error
}

// dispatch — удалённый вызов в фоне и сверка по его ответу.
func (s *CartSynchronizer) dispatch(
	ctx context.Context,
	m *domain.Mutation,
	t ticket,
	call func(context.Context) (*domain.ServerCartSnapshot, error),
) {
	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		defer s.release(t)

		rctx, cancel := s.remoteContext(ctxmeta.WithMutationID(ctx, m.ID))
		defer cancel()
		rctx, span := telemetry.StartSpan(rctx, "cart."+string(m.Kind),
			attribute.String("cart.product_id", m.ProductID),
			attribute.String("cart.mutation_id", m.ID),
		)
		defer span.End()

		snap, err := call(rctx)
		if err != nil {
			span.RecordError(err)
			s.reportFailure(rctx, m, err)
			s.finish(m, domain.StateAbandoned, s.store.Snapshot(rctx), err)
			return
		}

		state, lines := s.reconcile(rctx, t, snap)
		if state == domain.StateStale {
			s.log.Infof(rctx, "cart %s response for product=%s discarded: newer request issued", m.Kind, m.ProductID)
		}
		s.finish(m, state, lines, nil)
	}()
}

// syncOnce — один fetchCart и сверка; выполняется внутри singleflight.
func (s *CartSynchronizer) syncOnce(ctx context.Context, credential string) syncResult {
	rctx, cancel := s.remoteContext(ctx)
	defer cancel()
	rctx, span := telemetry.StartSpan(rctx, "cart.sync")
	defer span.End()

	s.mu.Lock()
	startGen, startEpoch := s.generation, s.epoch
	merge := s.opts.MergeGuestOnLogin && s.knownCred != credential
	s.mu.Unlock()

	snap, err := s.gateway.FetchCart(rctx, credential)
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, domain.ErrUnauthenticated) {
			s.log.Infof(rctx, "cart sync skipped: credential rejected, staying in guest mode")
		} else {
			s.log.Warnf(rctx, "cart sync failed, local cart kept kind=%s err=%v", domain.ErrorKind(err), err)
		}
		return syncResult{state: domain.StateAbandoned, lines: s.store.Snapshot(rctx), err: err}
	}

	if merge {
		snap = s.pushGuestLines(rctx, credential, snap)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if startEpoch != s.epoch || (s.opts.Policy == PolicySequence && startGen != s.generation) {
		s.log.Infof(rctx, "cart sync response discarded: cart changed while fetching")
		return syncResult{state: domain.StateStale, lines: s.store.Snapshot(rctx)}
	}

	var lines []domain.CartLine
	if merge {
		lines = s.store.MergeIn(rctx, snap.Lines())
		s.log.Infof(rctx, "guest cart merged with server cart lines=%d", len(lines))
	} else {
		lines = s.store.ReplaceAll(rctx, snap.Lines())
	}
	s.knownCred = credential
	return syncResult{state: domain.StateReconciled, lines: lines}
}

// pushGuestLines — отправляет на сервер позиции, которые есть только локально.
// При первой же ошибке останавливается: оставшиеся позиции сохранятся локально через MergeIn.
func (s *CartSynchronizer) pushGuestLines(ctx context.Context, credential string, server *domain.ServerCartSnapshot) *domain.ServerCartSnapshot {
	onServer := make(map[string]struct{}, len(server.Items))
	for _, l := range server.Lines() {
		onServer[l.ProductID] = struct{}{}
	}

	out := server
	for _, l := range s.store.Snapshot(ctx) {
		if _, ok := onServer[l.ProductID]; ok {
			continue
		}
		snap, err := s.gateway.AddToServerCart(ctx, credential, l.ProductID, l.Quantity, "")
		if err != nil {
			s.log.Warnf(ctx, "guest line push failed product=%s err=%v", l.ProductID, err)
			return out
		}
		out = snap
	}
	return out
}

// reconcile — применяет снимок сервера, если политика считает его актуальным.
func (s *CartSynchronizer) reconcile(ctx context.Context, t ticket, snap *domain.ServerCartSnapshot) (domain.MutationState, []domain.CartLine) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t.epoch != s.epoch {
		return domain.StateStale, s.store.Snapshot(ctx)
	}
	if s.opts.Policy == PolicySequence && s.issued[t.productID] != t.seq {
		return domain.StateStale, s.store.Snapshot(ctx)
	}
	return domain.StateReconciled, s.store.ReplaceAll(ctx, snap.Lines())
}

// issue — выдать номер удалённому запросу по productId.
func (s *CartSynchronizer) issue(productID string) ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	if s.opts.Policy == PolicySequence {
		s.issued[productID] = s.generation
	}
	return ticket{
		productID:  productID,
		seq:        s.generation,
		generation: s.generation,
		epoch:      s.epoch,
	}
}

// release — запрос завершён; последний номер по productId больше не нужен.
func (s *CartSynchronizer) release(t ticket) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq, ok := s.issued[t.productID]; ok && seq == t.seq {
		delete(s.issued, t.productID)
	}
}

// remoteContext — контекст удалённого вызова: значения запроса сохраняются,
// отмена запроса не действует, срок ограничен RequestTimeout.
func (s *CartSynchronizer) remoteContext(ctx context.Context) (context.Context, context.CancelFunc) {
	detached := context.WithoutCancel(ctx)
	if s.opts.RequestTimeout > 0 {
		return context.WithTimeout(detached, s.opts.RequestTimeout)
	}
	return context.WithCancel(detached)
}

// reportFailure — лог и (для сетевых и серверных сбоев) неблокирующее уведомление.
func (s *CartSynchronizer) reportFailure(ctx context.Context, m *domain.Mutation, err error) {
	kind := domain.ErrorKind(err)
	switch kind {
	case domain.KindUnauthenticated:
		s.log.Infof(ctx, "cart %s product=%s: credential rejected, local change kept", m.Kind, m.ProductID)
		return
	case domain.KindCanceled:
		s.log.Infof(ctx, "cart %s product=%s canceled", m.Kind, m.ProductID)
		return
	}

	s.log.Warnf(ctx, "cart %s product=%s failed, local change kept kind=%s err=%v", m.Kind, m.ProductID, kind, err)
	if s.notifier == nil {
		return
	}

	msg := domain.ServerMessage(err)
	if msg == "" {
		msg = "Your cart change was saved on this device but could not reach the store."
	}
	metrics.Notifications.WithLabelValues(kind).Inc()
	s.notifier.Notify(ctx, domain.Notification{
		ID:        m.ID,
		Kind:      kind,
		Op:        string(m.Kind),
		ProductID: m.ProductID,
		Message:   msg,
		At:        time.Now().UTC(),
	})
}

func (s *CartSynchronizer) finish(m *domain.Mutation, state domain.MutationState, lines []domain.CartLine, err error) {
	m.Resolve(state, lines, err)
	metrics.Mutations.WithLabelValues(string(m.Kind), m.State().String()).Inc()
}

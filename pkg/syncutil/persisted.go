package syncutil

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/addisavenue/storefront-backend/pkg/kvstore"
	"github.com/addisavenue/storefront-backend/pkg/logger"
	"github.com/addisavenue/storefront-backend/pkg/metrics"
)

// PersistedConfig wires a Persisted value to its snapshot key.
type PersistedConfig struct {
	// Store labels metrics and log lines, e.g. "cart".
	Store string
	// Key is the key-value snapshot key.
	Key string
	KV  kvstore.Store
	Log *logger.Logger
	// Metrics may be nil.
	Metrics *metrics.StoreMetrics
}

// Persisted guards a single in-memory value behind a mutex and writes a
// JSON snapshot through to the key-value store on every mutation.
//
// Memory is authoritative. A snapshot write failure is logged and
// counted, never surfaced to the caller, and never rolls back the
// in-memory value. Mutation functions must be pure: they receive the
// current value and return the next one without mutating shared state.
type Persisted[T any] struct {
	cfg   PersistedConfig
	mu    sync.Mutex
	value T
}

func NewPersisted[T any](cfg PersistedConfig) *Persisted[T] {
	return &Persisted[T]{cfg: cfg}
}

// Load rehydrates the value from its stored snapshot. A missing key,
// read failure, or corrupt snapshot all leave the zero value in place,
// so the process always starts with usable state.
func (p *Persisted[T]) Load(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	var zero T
	p.value = zero

	raw, ok, err := p.cfg.KV.Get(ctx, p.cfg.Key)
	if err != nil {
		p.cfg.Log.Error(p.ctx(ctx), "state snapshot read failed, starting empty", err)
		return
	}
	if !ok || raw == "" {
		return
	}

	var loaded T
	if err := json.Unmarshal([]byte(raw), &loaded); err != nil {
		p.cfg.Log.Warn(p.ctx(ctx), "state snapshot corrupt, starting empty")
		return
	}
	p.value = loaded
}

// Snapshot returns the current value. Callers must treat slice or map
// contents as read-only.
func (p *Persisted[T]) Snapshot() T {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.value
}

// Mutate applies fn to the current value, stores the result, and writes
// the snapshot through. It returns the new value.
func (p *Persisted[T]) Mutate(ctx context.Context, op string, fn func(T) T) T {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.value = fn(p.value)
	p.cfg.Metrics.IncMutation(p.cfg.Store, op)
	p.persistLocked(ctx)
	return p.value
}

func (p *Persisted[T]) persistLocked(ctx context.Context) {
	raw, err := json.Marshal(p.value)
	if err != nil {
		p.cfg.Metrics.IncPersistFailure(p.cfg.Store)
		p.cfg.Log.Error(p.ctx(ctx), "state snapshot marshal failed", err)
		return
	}
	if err := p.cfg.KV.Set(ctx, p.cfg.Key, string(raw)); err != nil {
		p.cfg.Metrics.IncPersistFailure(p.cfg.Store)
		p.cfg.Log.Error(p.ctx(ctx), "state snapshot write failed", err)
	}
}

func (p *Persisted[T]) ctx(ctx context.Context) context.Context {
	return p.cfg.Log.WithStoreKey(ctx, p.cfg.Key)
}

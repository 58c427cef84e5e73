package syncutil

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/addisavenue/storefront-backend/pkg/logger"
)

type fakeKV struct {
	mu      sync.Mutex
	values  map[string]string
	setErr  error
	getErr  error
	setSeen int
}

func newFakeKV() *fakeKV {
	return &fakeKV{values: map[string]string{}}
}

func (f *fakeKV) Get(_ context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return "", false, f.getErr
	}
	v, ok := f.values[key]
	return v, ok, nil
}

func (f *fakeKV) Set(_ context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.setSeen++
	if f.setErr != nil {
		return f.setErr
	}
	f.values[key] = value
	return nil
}

func (f *fakeKV) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.values, key)
	return nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Level: zerolog.Disabled, Output: io.Discard})
}

func newPersisted(kv *fakeKV) *Persisted[[]int] {
	return NewPersisted[[]int](PersistedConfig{
		Store: "test",
		Key:   "test_key",
		KV:    kv,
		Log:   testLogger(),
	})
}

func TestPersistedRoundTrip(t *testing.T) {
	kv := newFakeKV()

	first := newPersisted(kv)
	first.Load(context.Background())
	first.Mutate(context.Background(), "add", func(v []int) []int {
		return append(v, 1, 2, 3)
	})

	second := newPersisted(kv)
	second.Load(context.Background())

	got := second.Snapshot()
	if len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Fatalf("rehydrated value = %v", got)
	}
}

func TestPersistedCorruptSnapshotStartsEmpty(t *testing.T) {
	kv := newFakeKV()
	kv.values["test_key"] = "{not json"

	p := newPersisted(kv)
	p.Load(context.Background())

	if got := p.Snapshot(); got != nil {
		t.Fatalf("expected zero value, got %v", got)
	}
}

func TestPersistedReadFailureStartsEmpty(t *testing.T) {
	kv := newFakeKV()
	kv.getErr = errors.New("db closed")

	p := newPersisted(kv)
	p.Load(context.Background())

	if got := p.Snapshot(); got != nil {
		t.Fatalf("expected zero value, got %v", got)
	}
}

func TestPersistedWriteFailureKeepsMemoryAuthoritative(t *testing.T) {
	kv := newFakeKV()
	p := newPersisted(kv)
	p.Load(context.Background())

	kv.setErr = errors.New("disk full")
	got := p.Mutate(context.Background(), "add", func(v []int) []int {
		return append(v, 7)
	})

	if len(got) != 1 || got[0] != 7 {
		t.Fatalf("mutation result = %v", got)
	}
	if snap := p.Snapshot(); len(snap) != 1 {
		t.Fatalf("in-memory value lost after write failure: %v", snap)
	}
	if kv.setSeen != 1 {
		t.Fatalf("expected one write attempt, saw %d", kv.setSeen)
	}
}

func TestPersistedConcurrentMutations(t *testing.T) {
	kv := newFakeKV()
	p := newPersisted(kv)
	p.Load(context.Background())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.Mutate(context.Background(), "add", func(v []int) []int {
				return append(v, 1)
			})
		}()
	}
	wg.Wait()

	if got := len(p.Snapshot()); got != 50 {
		t.Fatalf("expected 50 entries, got %d", got)
	}
}

package session

import (
	"context"
	"testing"
	"time"

	redislib "github.com/redis/go-redis/v9"
)

type fakeStore struct {
	data map[string]string
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: map[string]string{}}
}

func (f *fakeStore) Set(_ context.Context, key string, value any, _ time.Duration) error {
	f.data[key] = "1"
	return nil
}

func (f *fakeStore) Get(_ context.Context, key string) (string, error) {
	if v, ok := f.data[key]; ok {
		return v, nil
	}
	return "", redislib.Nil
}

func (f *fakeStore) Del(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(f.data, k)
	}
	return nil
}

type fakeKeyer struct{}

func (fakeKeyer) AccessSessionKey(accessID string) string {
	return "sf:session:access:" + accessID
}

func TestSessionLifecycle(t *testing.T) {
	m := &Manager{store: newFakeStore(), keyer: fakeKeyer{}, ttl: time.Hour}
	ctx := context.Background()
	id := NewAccessID()

	ok, err := m.HasSession(ctx, id)
	if err != nil {
		t.Fatalf("has session: %v", err)
	}
	if ok {
		t.Fatal("expected no session before registration")
	}

	if err := m.Register(ctx, id); err != nil {
		t.Fatalf("register: %v", err)
	}
	ok, err = m.HasSession(ctx, id)
	if err != nil || !ok {
		t.Fatalf("expected live session, ok=%v err=%v", ok, err)
	}

	if err := m.Revoke(ctx, id); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	ok, err = m.HasSession(ctx, id)
	if err != nil {
		t.Fatalf("has session after revoke: %v", err)
	}
	if ok {
		t.Fatal("expected session to be revoked")
	}
}

func TestManagerRejectsEmptyAccessID(t *testing.T) {
	m := &Manager{store: newFakeStore(), keyer: fakeKeyer{}, ttl: time.Hour}
	ctx := context.Background()

	if err := m.Register(ctx, " "); err == nil {
		t.Fatal("expected register to reject blank id")
	}
	if err := m.Revoke(ctx, ""); err == nil {
		t.Fatal("expected revoke to reject blank id")
	}
	if _, err := m.HasSession(ctx, ""); err == nil {
		t.Fatal("expected has-session to reject blank id")
	}
}

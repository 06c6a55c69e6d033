package sysconfig

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/cmlabs-hris/attendance-core-go/internal/domain/sysconfig"
)

var errStoreDown = errors.New("connection refused")

// fakeConfigRepo is an in-memory sysconfig.ConfigRepository
type fakeConfigRepo struct {
	mu        sync.Mutex
	entries   map[string]sysconfig.Entry
	readErr   error
	upsertErr error
	readCalls int

	// when set, ReadAll signals started and waits for release
	started chan struct{}
	release chan struct{}
}

func newFakeConfigRepo(kv map[string]string) *fakeConfigRepo {
	repo := &fakeConfigRepo{entries: make(map[string]sysconfig.Entry)}
	for k, v := range kv {
		repo.entries[k] = sysconfig.Entry{Key: k, Value: v}
	}
	return repo
}

func (f *fakeConfigRepo) ReadAll(ctx context.Context) ([]sysconfig.Entry, error) {
	f.mu.Lock()
	f.readCalls++
	started, release := f.started, f.release
	f.mu.Unlock()

	if started != nil {
		started <- struct{}{}
		select {
		case <-release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.readErr != nil {
		return nil, f.readErr
	}
	result := make([]sysconfig.Entry, 0, len(f.entries))
	for _, e := range f.entries {
		result = append(result, e)
	}
	return result, nil
}

func (f *fakeConfigRepo) Upsert(ctx context.Context, key, value string, description *string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.upsertErr != nil {
		return f.upsertErr
	}
	entry := f.entries[key]
	entry.Key = key
	entry.Value = value
	if description != nil {
		entry.Description = description
	}
	f.entries[key] = entry
	return nil
}

func (f *fakeConfigRepo) InsertIfMissing(ctx context.Context, entry sysconfig.Entry) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.upsertErr != nil {
		return false, f.upsertErr
	}
	if _, ok := f.entries[entry.Key]; ok {
		return false, nil
	}
	f.entries[entry.Key] = entry
	return true, nil
}

func (f *fakeConfigRepo) reads() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.readCalls
}

func (f *fakeConfigRepo) setReadErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.readErr = err
}

// manualClock is advanced explicitly by tests
type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

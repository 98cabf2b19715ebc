package store

import (
	"context"
	"sync"
)

var _ Store = (*TestStore)(nil)

// TestStore is an in-memory Store used in unit tests of the tracker
// components (instead of mocking each redis command).
type TestStore struct {
	mutex  sync.Mutex
	values map[string]string
}

func NewTestStore() *TestStore {
	return &TestStore{
		values: make(map[string]string),
	}
}

func (ts *TestStore) Get(_ context.Context, key string) (string, error) {
	ts.mutex.Lock()
	defer ts.mutex.Unlock()

	val, ok := ts.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return val, nil
}

func (ts *TestStore) Set(_ context.Context, key, value string) error {
	ts.mutex.Lock()
	defer ts.mutex.Unlock()

	ts.values[key] = value
	return nil
}

func (ts *TestStore) Del(_ context.Context, key string) error {
	ts.mutex.Lock()
	defer ts.mutex.Unlock()

	delete(ts.values, key)
	return nil
}

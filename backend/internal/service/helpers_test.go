package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/teamboard/teamboard/backend/internal/utils"
)

// memStorage is an in-memory DocumentStorage.
type memStorage struct {
	mu   sync.Mutex
	docs map[string][]byte
}

func newMemStorage() *memStorage {
	return &memStorage{docs: make(map[string][]byte)}
}

func (m *memStorage) ReadDocument(_ context.Context, collection string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.docs[collection]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), data...), nil
}

func (m *memStorage) WriteDocument(_ context.Context, collection string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[collection] = append([]byte(nil), data...)
	return nil
}

func (m *memStorage) Ping(context.Context) error { return nil }

// MockDocumentStorage mocks the DocumentStorage interface.
type MockDocumentStorage struct {
	readFunc  func(collection string) ([]byte, error)
	writeFunc func(collection string, data []byte) error
}

func (m *MockDocumentStorage) ReadDocument(_ context.Context, collection string) ([]byte, error) {
	if m.readFunc != nil {
		return m.readFunc(collection)
	}
	return nil, nil
}

func (m *MockDocumentStorage) WriteDocument(_ context.Context, collection string, data []byte) error {
	if m.writeFunc != nil {
		return m.writeFunc(collection, data)
	}
	return nil
}

func (m *MockDocumentStorage) Ping(context.Context) error { return nil }

// MockExportStorage records saved files.
type MockExportStorage struct {
	files    map[string][]byte
	saveFunc func(name string, content []byte) (string, error)
}

func (m *MockExportStorage) SaveFile(_ context.Context, name string, content []byte) (string, error) {
	if m.saveFunc != nil {
		return m.saveFunc(name, content)
	}
	if m.files == nil {
		m.files = make(map[string][]byte)
	}
	m.files[name] = content
	return name, nil
}

// fixedClock returns increasing times one second apart.
type fixedClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFixedClock() *fixedClock {
	return &fixedClock{now: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

type testServices struct {
	records *Records
	storage *memStorage
	exports *MockExportStorage
	clock   *fixedClock
	users   *User
	teams   *Team
	boards  *Board
	tasks   *Task
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()
	storage := newMemStorage()
	records := NewRecords(storage)
	exports := &MockExportStorage{}
	clock := newFixedClock()

	return &testServices{
		records: records,
		storage: storage,
		exports: exports,
		clock:   clock,
		users:   &User{records: records, validator: &utils.UserValidator{}, now: clock.Now},
		teams:   &Team{records: records, validator: &utils.TeamValidator{}, now: clock.Now},
		boards:  &Board{records: records, exports: exports, validator: &utils.BoardValidator{}, now: clock.Now},
		tasks:   &Task{records: records, validator: &utils.TaskValidator{}, now: clock.Now},
	}
}

func ptr[T any](v T) *T { return &v }

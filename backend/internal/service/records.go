package service

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"

	"github.com/teamboard/teamboard/shared/errors"
	"github.com/teamboard/teamboard/shared/logger"
)

const (
	UsersCollection     = "users"
	TeamsCollection     = "teams"
	TeamUsersCollection = "team_users"
	BoardsCollection    = "boards"
	TasksCollection     = "tasks"
)

// Records is the record store shared by all services. Every collection is a single
// document mapping id to record. Writers hold the collection lock for the whole
// load -> validate -> mutate -> save sequence.
type Records struct {
	storage DocumentStorage

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewRecords(storage DocumentStorage) *Records {
	return &Records{
		storage: storage,
		locks:   make(map[string]*sync.Mutex),
	}
}

func (r *Records) collectionLock(name string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.locks[name]
	if !ok {
		l = &sync.Mutex{}
		r.locks[name] = l
	}
	return l
}

// Lock takes the write locks of the given collections and returns the function releasing them.
// Locks are always taken in name order so that two writers can't deadlock.
func (r *Records) Lock(collections ...string) (unlock func()) {
	names := slices.Clone(collections)
	slices.Sort(names)
	names = slices.Compact(names)

	held := make([]*sync.Mutex, 0, len(names))
	for _, name := range names {
		l := r.collectionLock(name)
		l.Lock()
		held = append(held, l)
	}
	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].Unlock()
		}
	}
}

func (r *Records) Ping(ctx context.Context) error {
	return r.storage.Ping(ctx)
}

// load reads a whole collection. A missing document is an empty collection,
// an unreadable or undecodable one is a StorageError.
func load[T any](ctx context.Context, r *Records, collection string) (map[int64]T, error) {
	data, err := r.storage.ReadDocument(ctx, collection)
	if err != nil {
		logger.Log.Error("read collection", "collection", collection, "error", err)
		return nil, &errors.StorageError{Collection: collection, Err: err}
	}

	records := make(map[int64]T)
	if len(data) == 0 {
		return records, nil
	}
	if err := json.Unmarshal(data, &records); err != nil {
		logger.Log.Error("decode collection", "collection", collection, "error", err)
		return nil, &errors.StorageError{Collection: collection, Err: fmt.Errorf("%w: %v", errors.ErrCorruptData, err)}
	}
	if records == nil {
		// document contained null
		records = make(map[int64]T)
	}
	return records, nil
}

func save[T any](ctx context.Context, r *Records, collection string, records map[int64]T) error {
	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return &errors.StorageError{Collection: collection, Err: err}
	}
	if err := r.storage.WriteDocument(ctx, collection, data); err != nil {
		logger.Log.Error("write collection", "collection", collection, "error", err)
		return &errors.StorageError{Collection: collection, Err: err}
	}
	return nil
}

// nextId returns the id for a new record. Records are never deleted, so the
// largest id so far is the last one handed out.
func nextId[T any](records map[int64]T) int64 {
	var last int64
	for id := range records {
		last = max(last, id)
	}
	return last + 1
}

// sortedIds returns ids in creation order.
func sortedIds[T any](records map[int64]T) []int64 {
	ids := make([]int64, 0, len(records))
	for id := range records {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// inOrder returns the records sorted by id.
func inOrder[T any](records map[int64]T) []T {
	out := make([]T, 0, len(records))
	for _, id := range sortedIds(records) {
		out = append(out, records[id])
	}
	return out
}

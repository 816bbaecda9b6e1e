package queue

import "sync"

// Entry is the unit of work waiting for metadata. Identity is the item ID;
// at most one live entry exists per ID.
type Entry struct {
	ItemID     string
	RetryCount int
}

// PendingQueue is the only mutable state shared between the event intake and
// the reconcile loop: a mutex-guarded map keyed by item ID. Insertions happen
// on the HTTP goroutine handling the catalog's event while the reconciler is
// mid-tick, so every access goes through the lock.
//
// A map (rather than a channel) because entries are replaced by key and the
// reconciler needs a point-in-time snapshot it can iterate while new items
// keep arriving.
type PendingQueue struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

func New() *PendingQueue {
	return &PendingQueue{entries: make(map[string]Entry)}
}

// Upsert inserts or replaces the entry for its item ID. Last writer wins.
func (q *PendingQueue) Upsert(e Entry) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.entries[e.ItemID] = e
}

// Snapshot returns a copy of the current entries, decoupled from concurrent
// mutation. Iteration order is unspecified.
func (q *PendingQueue) Snapshot() []Entry {
	q.mu.RLock()
	defer q.mu.RUnlock()
	out := make([]Entry, 0, len(q.entries))
	for _, e := range q.entries {
		out = append(out, e)
	}
	return out
}

// Remove deletes the entry for id if present; no-op otherwise.
func (q *PendingQueue) Remove(id string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	delete(q.entries, id)
}

// Len returns the number of items currently waiting.
// Used by the stats handler and the queue-depth gauge.
func (q *PendingQueue) Len() int {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return len(q.entries)
}

// Get returns the live entry for id, if any.
func (q *PendingQueue) Get(id string) (Entry, bool) {
	q.mu.RLock()
	defer q.mu.RUnlock()
	e, ok := q.entries[id]
	return e, ok
}

package server

import (
	"sync"
	"time"

	"github.com/uitrail/uitrail/pkg/model"
)

// cacheEntry holds a parsed snapshot with its load time.
type cacheEntry struct {
	doc      *model.Document
	snap     *model.Snapshot
	loadedAt time.Time
}

// snapshotCache stores indexed snapshots keyed by content hash so follow-up
// tool calls can reference a loaded tree without resending it.
type snapshotCache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	ttl     time.Duration
}

// newSnapshotCache creates a cache. A ttl of 0 keeps entries until the
// server exits.
func newSnapshotCache(ttl time.Duration) *snapshotCache {
	return &snapshotCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
	}
}

// put indexes the document, stores it under its content hash, and returns
// the hash as the ref. Loading the same tree twice yields the same ref.
func (c *snapshotCache) put(doc *model.Document) (string, *model.Snapshot) {
	ref := model.Hash(&doc.Root)
	snap := model.Index(&doc.Root)

	c.mu.Lock()
	for k, e := range c.entries {
		if c.ttl > 0 && time.Since(e.loadedAt) >= c.ttl {
			delete(c.entries, k)
		}
	}
	c.entries[ref] = cacheEntry{doc: doc, snap: snap, loadedAt: time.Now()}
	c.mu.Unlock()

	return ref, snap
}

// get returns the document and snapshot stored under ref, or nils when the
// ref is unknown or its entry has expired.
func (c *snapshotCache) get(ref string) (*model.Document, *model.Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[ref]
	if !ok {
		return nil, nil
	}
	if c.ttl > 0 && time.Since(entry.loadedAt) >= c.ttl {
		delete(c.entries, ref)
		return nil, nil
	}
	return entry.doc, entry.snap
}

// len reports the number of live entries.
func (c *snapshotCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, e := range c.entries {
		if c.ttl == 0 || time.Since(e.loadedAt) < c.ttl {
			n++
		}
	}
	return n
}

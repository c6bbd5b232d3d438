// Package badgerkv keeps short-lived session state in an embedded Badger
// store: access token ids revoked by logout, retained until they would have
// expired anyway.
package badgerkv

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/heartmarshall/karaoke-backend/internal/metrics"
)

// ErrClosed is returned after Close.
var ErrClosed = errors.New("denylist is closed")

const keyPrefix = "jti:"

// entry is the stored value. Badger drops the key at its TTL; ExpiresAt is
// checked on read as well so a lagging compaction never extends a ban.
type entry struct {
	RevokedAt time.Time `json:"revoked_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Denylist is a Badger-backed set of revoked token ids with per-key TTL.
type Denylist struct {
	db     *badger.DB
	mu     sync.RWMutex
	closed bool
	now    func() time.Time
}

// Open opens the denylist at path, or a memory-only store when inMemory is set.
func Open(path string, inMemory bool) (*Denylist, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	if inMemory {
		opts = badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &Denylist{db: db, now: time.Now}, nil
}

// Add denylists jti for ttl. Re-adding refreshes the TTL.
func (d *Denylist) Add(ctx context.Context, jti string, ttl time.Duration) error {
	if err := d.checkOpen(); err != nil {
		return err
	}
	if ttl <= 0 {
		return nil
	}

	now := d.now()
	data, err := json.Marshal(entry{RevokedAt: now, ExpiresAt: now.Add(ttl)})
	if err != nil {
		return fmt.Errorf("encode entry: %w", err)
	}

	return d.db.Update(func(txn *badger.Txn) error {
		return txn.SetEntry(badger.NewEntry(key(jti), data).WithTTL(ttl))
	})
}

// Contains reports whether jti is currently denylisted.
func (d *Denylist) Contains(ctx context.Context, jti string) (bool, error) {
	if err := d.checkOpen(); err != nil {
		return false, err
	}

	var found bool
	err := d.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(jti))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			var e entry
			if err := json.Unmarshal(val, &e); err != nil {
				return err
			}
			found = d.now().Before(e.ExpiresAt)
			return nil
		})
	})
	if err != nil {
		return false, fmt.Errorf("read denylist: %w", err)
	}

	if found {
		metrics.DenylistHitsTotal.Inc()
	}
	return found, nil
}

// Close releases the underlying store.
func (d *Denylist) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil
	}
	d.closed = true
	return d.db.Close()
}

func (d *Denylist) checkOpen() error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return ErrClosed
	}
	return nil
}

func key(jti string) []byte {
	return []byte(keyPrefix + jti)
}

package cache

import (
	"context"
	"fmt"
	"sync"

	"prenota/internal/domain"
)

// SlotCache is the in-memory mirror of the ledger's slot table: the single
// shared mutable resource of the service. It starts uninitialized and is
// populated by Load; readers get copies, only Reserve and Release mutate
// the Booked counters.
//
// Reserve holds the state mutex across its check-and-increment, so
// concurrent bookings of the same slot serialize here and can never jointly
// pass the capacity check. Loads never run under the state mutex; a fetched
// table is swapped in atomically afterwards.
type SlotCache struct {
	ledger Ledger
	log    Logger

	// loadMu serializes ledger fetches so concurrent warm-ups collapse
	// into one round trip
	loadMu sync.Mutex

	mu     sync.RWMutex
	ready  bool
	header []string
	order  []string
	slots  map[string]*domain.Slot
}

// New creates an empty, uninitialized cache
func New(ledger Ledger, log Logger) *SlotCache {
	return &SlotCache{
		ledger: ledger,
		log:    log,
		slots:  make(map[string]*domain.Slot),
	}
}

// Ready reports whether a snapshot has been loaded
func (c *SlotCache) Ready() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ready
}

// Load fetches the slot table from the ledger and atomically replaces the
// snapshot. On failure the previous snapshot, if any, is kept unchanged.
func (c *SlotCache) Load(ctx context.Context) error {
	c.loadMu.Lock()
	defer c.loadMu.Unlock()
	return c.load(ctx)
}

// load does the actual fetch and swap; callers hold loadMu
func (c *SlotCache) load(ctx context.Context) error {
	table, err := c.ledger.FetchSlotTable(ctx)
	if err != nil {
		c.log.Error("Load: fetch slot table failed: %v", err)
		return fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}

	list := table.Slots()
	slots := make(map[string]*domain.Slot, len(list))
	order := make([]string, 0, len(list))
	for _, s := range list {
		slots[s.ID] = s
		order = append(order, s.ID)
	}

	c.mu.Lock()
	c.header = append([]string(nil), table.Header...)
	c.slots = slots
	c.order = order
	c.ready = true
	c.mu.Unlock()

	c.log.Info("Load: snapshot replaced, %d slots, days=%v", len(list), table.Header)
	return nil
}

// EnsureReady performs the lazy warm-up: a no-op once a snapshot exists
func (c *SlotCache) EnsureReady(ctx context.Context) error {
	if c.Ready() {
		return nil
	}

	c.loadMu.Lock()
	defer c.loadMu.Unlock()
	if c.Ready() {
		return nil
	}
	return c.load(ctx)
}

// Get returns a copy of the slot with the given ID
func (c *SlotCache) Get(id string) (*domain.Slot, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	slot, ok := c.slots[id]
	if !ok {
		return nil, ErrSlotNotFound
	}
	cp := *slot
	return &cp, nil
}

// Snapshot returns the day header and all slots of the current snapshot,
// in table order. The returned values are copies: later reservations do
// not show through, and callers cannot mutate cache state.
func (c *SlotCache) Snapshot() ([]string, []domain.Slot) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	header := append([]string(nil), c.header...)
	slots := make([]domain.Slot, 0, len(c.order))
	for _, id := range c.order {
		slots = append(slots, *c.slots[id])
	}
	return header, slots
}

// Reserve atomically claims one spot in the slot and returns the updated
// slot. Fails with ErrSlotFull without mutation when no spots remain.
func (c *SlotCache) Reserve(id string) (*domain.Slot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	slot, ok := c.slots[id]
	if !ok {
		return nil, ErrSlotNotFound
	}
	if slot.IsFull() {
		return nil, ErrSlotFull
	}

	slot.Booked++
	cp := *slot
	return &cp, nil
}

// Release undoes one reservation, flooring Booked at zero. It is the
// compensating action for a reservation whose ledger write failed.
func (c *SlotCache) Release(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	slot, ok := c.slots[id]
	if !ok {
		c.log.Warn("Release: slot %s not in snapshot, nothing to release", id)
		return
	}
	if slot.Booked > 0 {
		slot.Booked--
	}
}

package quadratic

import (
	"fmt"

	"github.com/hashkit/quadmap/shared"
)

type slotState uint8

const (
	emptySlot slotState = iota
	occupiedSlot
	// tombstoneSlot marks a removed entry. The slot keeps key and value and
	// stays part of every probe sequence until the next resize drops it.
	tombstoneSlot
)

type slot[V any] struct {
	key   int
	state slotState
	value V
}

// Quadratic is a open addressing hash map, which uses quadratic probing
// as conflict resolution. The number of slots is always a prime number,
// because the probe sequence (h + i²) mod m only spreads well over a prime m.
// Removed keys are not vacated but marked as tombstones, so that the probe
// sequences of other keys stay intact. The tombstones are reclaimed
// when the table grows.
//
// Note that even over a prime capacity, quadratic probing visits only
// about half of the slots from a given start. An insert can therefore
// fail to find a free slot before the table is full. By default the
// table grows and retries in that case, see `GrowOnProbeFailure()`.
//
// A Quadratic is not safe for concurrent use. Guard all calls with a
// single mutex, because a resize rebuilds the whole table.
type Quadratic[V any] struct {
	slots []slot[V]
	// length stores the current live elements
	length uintptr
	// tombstones stores the slots removed since the last resize
	tombstones uintptr

	maxLoad            float32
	growOnProbeFailure bool
}

// New creates a ready to use `Quadratic` hash map with at least the given
// capacity. The capacity is rounded up to the next prime, values lower
// than 2 are coerced to 2.
func New[V any](capacity int) *Quadratic[V] {
	if capacity < 0 {
		capacity = 0
	}

	return &Quadratic[V]{
		slots:              make([]slot[V], shared.NextPrime(uint64(capacity))),
		maxLoad:            shared.DefaultMaxLoad,
		growOnProbeFailure: true,
	}
}

// hash maps the key into [0, capacity). Negative keys are normalized
// into the same range.
//
//go:inline
func (m *Quadratic[V]) hash(key int) uintptr {
	c := len(m.slots)
	return uintptr((key%c + c) % c)
}

// probe returns the i-th index of the probe sequence starting at base.
//
//go:inline
func (m *Quadratic[V]) probe(base, i uintptr) uintptr {
	c := uintptr(len(m.slots))
	return (base + (i*i)%c) % c
}

// search walks the probe sequence of key until it finds the live key,
// an empty slot or has done `capacity` steps.
func (m *Quadratic[V]) search(key int) (uintptr, bool) {
	var (
		base     = m.hash(key)
		capacity = uintptr(len(m.slots))
	)

	for i := uintptr(0); i < capacity; i++ {
		idx := m.probe(base, i)
		switch m.slots[idx].state {
		case emptySlot:
			// an insert would have stopped here, so the key is not in
			return 0, false
		case occupiedSlot:
			if m.slots[idx].key == key {
				return idx, true
			}
		}
	}

	return 0, false
}

// vacancy returns the first empty or tombstoned slot on the probe sequence of key.
func (m *Quadratic[V]) vacancy(key int) (uintptr, bool) {
	var (
		base     = m.hash(key)
		capacity = uintptr(len(m.slots))
	)

	for i := uintptr(0); i < capacity; i++ {
		idx := m.probe(base, i)
		if m.slots[idx].state != occupiedSlot {
			return idx, true
		}
	}

	return 0, false
}

// Get returns the value stored for this key, or false if not found.
func (m *Quadratic[V]) Get(key int) (V, bool) {
	if idx, found := m.search(key); found {
		return m.slots[idx].value, true
	}

	var v V
	return v, false
}

// Index returns the slot index of this key, or false if not found.
func (m *Quadratic[V]) Index(key int) (int, bool) {
	idx, found := m.search(key)
	return int(idx), found
}

// Put maps the given key to the given value. If the key already exists its
// value will be overwritten with the new value and `Updated` is returned.
// Otherwise the key is inserted, which may grow the table first.
func (m *Quadratic[V]) Put(key int, val V) Status {
	if idx, found := m.search(key); found {
		m.slots[idx].value = val
		return Updated
	}

	return m.insert(key, val)
}

// insert does not check if the key is already in.
func (m *Quadratic[V]) insert(key int, val V) Status {
	// the second condition keeps one slot free for tiny tables with a high max load
	if m.Load() >= m.maxLoad || m.length+1 >= uintptr(len(m.slots)) {
		m.grow()
	}

	idx, found := m.vacancy(key)
	if !found {
		if !m.growOnProbeFailure {
			return ProbeLimitExceeded
		}
		// a grown table is less than half full and has no tombstones,
		// so the first (capacity+1)/2 distinct probes find a free slot
		m.grow()
		if idx, found = m.vacancy(key); !found {
			panic(fmt.Sprintf("no free slot for key %d after growing to %d slots", key, len(m.slots)))
		}
	}

	if m.slots[idx].state == tombstoneSlot {
		m.tombstones--
	}

	m.slots[idx] = slot[V]{key: key, state: occupiedSlot, value: val}
	m.length++

	return Inserted
}

// Remove marks the slot of the key as tombstone. The key and value stay
// in the slot until the next resize.
// Returns `Removed`, if the element was in the hash map.
func (m *Quadratic[V]) Remove(key int) Status {
	idx, found := m.search(key)
	if !found {
		return NotFound
	}

	m.slots[idx].state = tombstoneSlot
	m.length--
	m.tombstones++

	return Removed
}

func (m *Quadratic[V]) grow() {
	m.resize(uintptr(shared.NextPrime(2 * uint64(len(m.slots)))))
}

// resize rebuilds the table with n slots, where n must be prime.
// Only live entries are moved, tombstones are dropped.
func (m *Quadratic[V]) resize(n uintptr) {
	for {
		newm := Quadratic[V]{
			slots: make([]slot[V], n),
		}

		if newm.rehash(m.slots) {
			m.slots = newm.slots
			m.tombstones = 0
			return
		}

		n = uintptr(shared.NextPrime(2 * uint64(n)))
	}
}

// rehash moves all live entries of old in slot order into m.
// Returns false, if an entry could not be placed.
func (m *Quadratic[V]) rehash(old []slot[V]) bool {
	for i := range old {
		if old[i].state != occupiedSlot {
			continue
		}

		idx, found := m.vacancy(old[i].key)
		if !found {
			return false
		}
		m.slots[idx] = old[i]
	}

	return true
}

// Reserve sets the number of slots to the most appropriate to contain at
// least n elements without growing. If n is lower than that, the function
// may have no effect.
func (m *Quadratic[V]) Reserve(n uintptr) {
	var (
		needed = uint64(float32(n)/m.maxLoad) + 1
		newCap = uintptr(shared.NextPrime(needed))
	)

	if uintptr(len(m.slots)) < newCap {
		m.resize(newCap)
	}
}

// MaxLoad forces growing if the ratio is reached before a insert.
// Returns ErrOutOfRange if `lf` is not in the open range (0.0,1.0).
func (m *Quadratic[V]) MaxLoad(lf float32) error {
	if lf <= 0.0 || lf >= 1.0 {
		return fmt.Errorf("%f: %w", lf, shared.ErrOutOfRange)
	}

	m.maxLoad = lf

	return nil
}

// GrowOnProbeFailure controls what happens, if a insert finds no free slot
// on its probe sequence. If enabled (default), the table grows and the
// insert is retried. Otherwise the insert reports `ProbeLimitExceeded`.
func (m *Quadratic[V]) GrowOnProbeFailure(enabled bool) {
	m.growOnProbeFailure = enabled
}

// Clear removes all key-value pairs from the map. The capacity is kept.
func (m *Quadratic[V]) Clear() {
	for i := range m.slots {
		m.slots[i] = slot[V]{}
	}

	m.length = 0
	m.tombstones = 0
}

// Size returns the number of items in the map.
func (m *Quadratic[V]) Size() int {
	return int(m.length)
}

// Capacity returns the number of slots, which is always a prime.
func (m *Quadratic[V]) Capacity() int {
	return len(m.slots)
}

// Tombstones returns the number of removed slots waiting for the next resize.
func (m *Quadratic[V]) Tombstones() int {
	return int(m.tombstones)
}

// Load return the current load of the hash map.
func (m *Quadratic[V]) Load() float32 {
	return float32(m.length) / float32(len(m.slots))
}

// Copy returns a copy of this map.
func (m *Quadratic[V]) Copy() *Quadratic[V] {
	newM := &Quadratic[V]{
		slots:              make([]slot[V], len(m.slots)),
		length:             m.length,
		tombstones:         m.tombstones,
		maxLoad:            m.maxLoad,
		growOnProbeFailure: m.growOnProbeFailure,
	}

	copy(newM.slots, m.slots)

	return newM
}

// Each calls 'fn' on every key-value pair in the hash map in slot order.
// If 'fn' returns true, the iteration stops.
func (m *Quadratic[V]) Each(fn func(key int, val V) bool) {
	for i := range m.slots {
		if m.slots[i].state == occupiedSlot {
			if stop := fn(m.slots[i].key, m.slots[i].value); stop {
				// stop iteration
				return
			}
		}
	}
}

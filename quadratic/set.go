package quadratic

// Set is the key-only variant of `Quadratic`. Inserting a key that is
// already live is rejected with `DuplicateKey` instead of updating.
type Set struct {
	table *Quadratic[struct{}]
}

// NewSet creates a ready to use `Set` with at least the given capacity,
// rounded up to the next prime.
func NewSet(capacity int) *Set {
	return &Set{table: New[struct{}](capacity)}
}

// Insert adds the key to the set.
// Returns `Inserted`, `DuplicateKey` or `ProbeLimitExceeded`.
func (s *Set) Insert(key int) Status {
	if _, found := s.table.search(key); found {
		return DuplicateKey
	}

	return s.table.insert(key, struct{}{})
}

// Contains returns true, if the key is in the set.
func (s *Set) Contains(key int) bool {
	_, found := s.table.search(key)
	return found
}

// Index returns the slot index of this key, or false if not found.
func (s *Set) Index(key int) (int, bool) {
	return s.table.Index(key)
}

// Remove tombstones the key. Returns `Removed` or `NotFound`.
func (s *Set) Remove(key int) Status {
	return s.table.Remove(key)
}

// Reserve see `Quadratic.Reserve`.
func (s *Set) Reserve(n uintptr) {
	s.table.Reserve(n)
}

// MaxLoad see `Quadratic.MaxLoad`.
func (s *Set) MaxLoad(lf float32) error {
	return s.table.MaxLoad(lf)
}

// GrowOnProbeFailure see `Quadratic.GrowOnProbeFailure`.
func (s *Set) GrowOnProbeFailure(enabled bool) {
	s.table.GrowOnProbeFailure(enabled)
}

func (s *Set) Clear() {
	s.table.Clear()
}

func (s *Set) Size() int {
	return s.table.Size()
}

func (s *Set) Capacity() int {
	return s.table.Capacity()
}

func (s *Set) Tombstones() int {
	return s.table.Tombstones()
}

func (s *Set) Load() float32 {
	return s.table.Load()
}

// Copy returns a copy of this set.
func (s *Set) Copy() *Set {
	return &Set{table: s.table.Copy()}
}

// Each calls 'fn' on every key in slot order. If 'fn' returns true, the iteration stops.
func (s *Set) Each(fn func(key int) bool) {
	s.table.Each(func(key int, _ struct{}) bool {
		return fn(key)
	})
}

// Render see `Quadratic.Render`.
func (s *Set) Render(fn func(idx int, token string) bool) {
	s.table.Render(fn)
}

func (s *Set) String() string {
	return s.table.String()
}

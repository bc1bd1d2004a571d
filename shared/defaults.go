package shared

const (
	// DefaultMaxLoad is the default value for the load factor of the
	// quadratic probing hash table, which can be changed with MaxLoad().
	// A insert that finds the table at or above this ratio grows it first.
	DefaultMaxLoad = 0.8

	DefaultSize = 5
)

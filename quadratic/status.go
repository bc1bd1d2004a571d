package quadratic

// Status reports the outcome of a mutating operation. None of the
// conditions is fatal, the table stays usable after each of them.
type Status uint8

const (
	// Inserted signals that a new key was placed into the table.
	Inserted Status = iota
	// Updated signals that the value of an already live key was overwritten.
	Updated
	// DuplicateKey signals that a key-only insert found the key already live.
	DuplicateKey
	// ProbeLimitExceeded signals that the probe sequence of the key visited
	// no free slot. Quadratic probing does not reach every slot, so this
	// can happen before the table is logically full.
	ProbeLimitExceeded
	// Removed signals that a live key was tombstoned.
	Removed
	// NotFound signals that the key was not live in the table.
	NotFound
)

// OK returns true, if the operation changed the table.
func (s Status) OK() bool {
	return s == Inserted || s == Updated || s == Removed
}

func (s Status) String() string {
	switch s {
	case Inserted:
		return "inserted"
	case Updated:
		return "updated"
	case DuplicateKey:
		return "duplicate key"
	case ProbeLimitExceeded:
		return "probe limit exceeded"
	case Removed:
		return "removed"
	case NotFound:
		return "not found"
	default:
		return "unknown"
	}
}

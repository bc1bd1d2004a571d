package quadratic

import (
	"strconv"
	"strings"
)

// Placeholder is the token rendered for empty and tombstoned slots.
const Placeholder = "_"

// render calls 'fn' with one token per slot in slot order, until 'fn' returns true.
func render[V any](slots []slot[V], fn func(idx int, token string) bool) {
	for i := range slots {
		token := Placeholder
		if slots[i].state == occupiedSlot {
			token = strconv.Itoa(slots[i].key)
		}

		if stop := fn(i, token); stop {
			return
		}
	}
}

func join[V any](slots []slot[V]) string {
	var sb strings.Builder

	render(slots, func(idx int, token string) bool {
		if idx > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(token)
		return false
	})

	return sb.String()
}

// Render is a debug helper, which calls 'fn' on every slot in slot order.
// Occupied slots are rendered as their key, empty and tombstoned ones
// as `Placeholder`. If 'fn' returns true, the iteration stops.
func (m *Quadratic[V]) Render(fn func(idx int, token string) bool) {
	render(m.slots, fn)
}

// String returns all slot tokens of `Render` separated by a space.
func (m *Quadratic[V]) String() string {
	return join(m.slots)
}

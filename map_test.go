package quadmap_test

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hashkit/quadmap"
	"github.com/hashkit/quadmap/quadratic"
)

func init() {
	rand.Seed(time.Now().UnixNano())
}

func checkeq[V comparable](m *quadmap.IHashMap[V], get func(k int) (V, bool), t *testing.T) {
	m.Each(func(key int, val V) bool {
		if ov, ok := get(key); !ok {
			t.Fatalf("key %v should exist", key)
		} else if val != ov {
			t.Fatalf("value mismatch: %v != %v", val, ov)
		}
		v, found := m.Get(key)
		if !found {
			t.Fatalf("double check failed for key %v", key)
		}
		if v != val {
			t.Fatalf("double check failed for value %v", v)
		}
		return false
	})
}

// crossCheck runs random operations against m and a builtin map.
// onUpdate is the status expected from a Put of an already live key.
func crossCheck[V comparable](t *testing.T, m quadmap.IHashMap[V], value func() V, onUpdate quadratic.Status) {
	const nops = 10000
	stdm := make(map[int]V)

	for i := 0; i < nops; i++ {
		key := rand.Intn(1000) - 500
		op := rand.Intn(4)

		switch op {
		case 0:
			v1, ok1 := m.Get(key)
			v2, ok2 := stdm[key]
			require.Equal(t, ok2, ok1, "lookup failed")
			require.Equal(t, v2, v1, "lookup failed")
		case 1:
			// prioritize insert operation
			fallthrough
		case 2:
			val := value()
			_, wasIn := stdm[key]
			status := m.Put(key, val)
			if wasIn {
				require.Equal(t, onUpdate, status)
				if onUpdate == quadratic.Updated {
					stdm[key] = val
				}
			} else {
				require.Equal(t, quadratic.Inserted, status)
				stdm[key] = val
			}

			_, found := m.Get(key)
			require.True(t, found, "lookup failed after insert for key %d", key)
		case 3:
			var del int
			if len(stdm) == 0 {
				break
			}
			for k := range stdm {
				del = k
				break
			}
			delete(stdm, del)

			require.Equal(t, quadratic.Removed, m.Remove(del))
			require.Equal(t, quadratic.NotFound, m.Remove(del))
			_, found := m.Get(del)
			require.False(t, found, "key %d was not removed", del)
		}

		require.Equal(t, len(stdm), m.Size(), "len of maps are not equal")
		require.Less(t, m.Size(), m.Capacity())

		checkeq(&m, func(k int) (V, bool) {
			v, ok := stdm[k]
			return v, ok
		}, t)
	}
	fmt.Println("size:", m.Size(), "Load", m.Load(), "Capacity", m.Capacity())
}

func TestCrossCheckQuadratic(t *testing.T) {
	m := quadmap.FromQuadratic(quadratic.New[uint32](5))
	crossCheck(t, m, rand.Uint32, quadratic.Updated)
}

func TestCrossCheckSet(t *testing.T) {
	m := quadmap.FromSet[struct{}](quadratic.NewSet(5))
	crossCheck(t, m, func() struct{} { return struct{}{} }, quadratic.DuplicateKey)
}

func TestSizes(t *testing.T) {
	maps := []quadmap.IHashMap[int]{
		quadmap.FromQuadratic(quadratic.New[int](0)),
		quadmap.FromSet[int](quadratic.NewSet(0)),
	}

	const nops = 300
	for _, m := range maps {
		for i := 1; i <= nops; i++ {
			m.Put(i, i)
			if m.Size() != i {
				t.Fatal("size invalid")
			}
		}

		m.Clear()
		require.Equal(t, 0, m.Size())
	}
}

func Example() {
	m := quadmap.FromQuadratic(quadratic.New[int](5))
	m.Put(10, 1)
	m.Put(20, 2)

	fmt.Println(m.Get(10))
	fmt.Println(m.Get(30))

	fmt.Println(m.Remove(10))
	fmt.Println(m.Get(10))
	fmt.Println(m.String())
	// Output:
	// 1 true
	// 0 false
	// removed
	// 0 false
	// _ 20 _ _ _
}

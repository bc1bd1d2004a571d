// Package quadmap implements a open addressing hash table with quadratic
// probing, lazy deletion and prime sized growth. The table itself lives in
// the `quadratic` package, this package collects its operations as a
// uniform function pointer view.
package quadmap

import "github.com/hashkit/quadmap/quadratic"

// IHashMap collects the basic hash maps operations as function points.
type IHashMap[V any] struct {
	Get      func(key int) (V, bool)
	Reserve  func(n uintptr)
	Load     func() float32
	Put      func(key int, val V) quadratic.Status
	Remove   func(key int) quadratic.Status
	Clear    func()
	Size     func() int
	Capacity func() int
	Each     func(fn func(key int, val V) bool)
	String   func() string
}

// FromQuadratic returns the operations of a value carrying table.
func FromQuadratic[V any](m *quadratic.Quadratic[V]) IHashMap[V] {
	return IHashMap[V]{
		Get:      m.Get,
		Reserve:  m.Reserve,
		Load:     m.Load,
		Put:      m.Put,
		Remove:   m.Remove,
		Clear:    m.Clear,
		Size:     m.Size,
		Capacity: m.Capacity,
		Each:     m.Each,
		String:   m.String,
	}
}

// FromSet returns the operations of a key-only table. The values passed
// to Put are dropped and Get returns the zero value of V for live keys.
func FromSet[V any](s *quadratic.Set) IHashMap[V] {
	return IHashMap[V]{
		Get: func(key int) (V, bool) {
			var v V
			return v, s.Contains(key)
		},
		Reserve: s.Reserve,
		Load:    s.Load,
		Put: func(key int, _ V) quadratic.Status {
			return s.Insert(key)
		},
		Remove:   s.Remove,
		Clear:    s.Clear,
		Size:     s.Size,
		Capacity: s.Capacity,
		Each: func(fn func(key int, val V) bool) {
			var v V
			s.Each(func(key int) bool {
				return fn(key, v)
			})
		},
		String: s.String,
	}
}

package collections

import (
	"cmp"
	"strings"

	"github.com/aretw0/ferrule/internal/debugfmt"
	"github.com/aretw0/ferrule/pkg/option"
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
)

func comparator[T cmp.Ordered]() utils.Comparator {
	return func(a, b interface{}) int {
		return cmp.Compare(a.(T), b.(T))
	}
}

// Map is a key-value mapping with unique keys, iterated in key order.
type Map[K cmp.Ordered, V any] struct {
	tree *treemap.Map
}

// NewMap returns an empty Map.
func NewMap[K cmp.Ordered, V any]() *Map[K, V] {
	return &Map[K, V]{tree: treemap.NewWith(comparator[K]())}
}

// Put inserts or replaces the value for key.
func (m *Map[K, V]) Put(key K, value V) {
	m.tree.Put(key, value)
}

// Get returns the value stored for key.
func (m *Map[K, V]) Get(key K) option.Option[V] {
	v, found := m.tree.Get(key)
	if !found {
		return option.None[V]()
	}
	return option.Some(v.(V))
}

// Remove deletes key. Missing keys are ignored.
func (m *Map[K, V]) Remove(key K) {
	m.tree.Remove(key)
}

func (m *Map[K, V]) Len() int { return m.tree.Size() }

// Keys returns the keys in ascending order.
func (m *Map[K, V]) Keys() []K {
	raw := m.tree.Keys()
	keys := make([]K, len(raw))
	for i, k := range raw {
		keys[i] = k.(K)
	}
	return keys
}

// Each calls fn for every entry in key order.
func (m *Map[K, V]) Each(fn func(K, V)) {
	m.tree.Each(func(k, v interface{}) {
		fn(k.(K), v.(V))
	})
}

// String renders the map as {k: v, ...}.
func (m *Map[K, V]) String() string {
	parts := make([]string, 0, m.Len())
	m.Each(func(k K, v V) {
		parts = append(parts, debugfmt.Format(k)+": "+debugfmt.Format(v))
	})
	return "{" + strings.Join(parts, ", ") + "}"
}

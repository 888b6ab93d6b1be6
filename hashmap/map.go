// Package hashmap implements a map backed by a fixed table of eleven
// chained buckets. The bucket count never changes, so operations
// degrade to O(n) as chains grow. Iteration visits buckets in index
// order and each chain in insertion order.
package hashmap

import (
	"fmt"
	"iter"
	"strings"

	"jsouthworth.net/go/assoc"
)

var _ assoc.Map[int, int] = (*Map[int, int])(nil)

type hashFunc[K any] func(K) uint32
type eqFunc[V any] func(a, b V) bool

type Map[K comparable, V any] struct {
	buckets [numBuckets][]*entry[K, V]
	count   int
	hash    hashFunc[K]
	eq      eqFunc[V]
}

func New[K comparable, V any](hash func(K) uint32, eq func(a, b V) bool) *Map[K, V] {
	return &Map[K, V]{
		hash: hash,
		eq:   eq,
	}
}

// NewString returns an empty map keyed by strings hashed with 32 bit
// FNV-1a, comparing values with ==.
func NewString[V comparable]() *Map[string, V] {
	return New[string, V](stringHash, func(a, b V) bool { return a == b })
}

// GetOrInsert returns a pointer to the value stored under key,
// appending a zero valued entry to the key's chain when it is absent.
// The pointer stays valid until the entry is removed.
func (m *Map[K, V]) GetOrInsert(key K) *V {
	b, i := m.locate(key)
	if i >= 0 {
		return &m.buckets[b][i].value
	}
	e := &entry[K, V]{key: key}
	m.buckets[b] = append(m.buckets[b], e)
	m.count++
	return &e.value
}

func (m *Map[K, V]) Put(key K, value V) {
	*m.GetOrInsert(key) = value
}

func (m *Map[K, V]) Get(key K) (V, bool) {
	b, i := m.locate(key)
	if i < 0 {
		var zero V
		return zero, false
	}
	return m.buckets[b][i].value, true
}

func (m *Map[K, V]) ValueOf(key K) (V, error) {
	b, i := m.locate(key)
	if i < 0 {
		var zero V
		return zero, assoc.ErrKeyNotFound
	}
	return m.buckets[b][i].value, nil
}

func (m *Map[K, V]) Contains(key K) bool {
	_, i := m.locate(key)
	return i >= 0
}

// Find returns a cursor at key, or the end cursor when the key is
// absent.
func (m *Map[K, V]) Find(key K) *Iterator[K, V] {
	b, i := m.locate(key)
	if i < 0 {
		return m.End()
	}
	return &Iterator[K, V]{m: m, bucket: b, pos: i}
}

func (m *Map[K, V]) Remove(key K) error {
	b, i := m.locate(key)
	if i < 0 {
		return assoc.ErrKeyNotFound
	}
	m.removeEntry(b, i)
	return nil
}

// RemoveAt removes the entry the cursor denotes. The cursor must come
// from this map and denote a live entry.
func (m *Map[K, V]) RemoveAt(it *Iterator[K, V]) error {
	if it == nil || it.m != m || !it.Valid() {
		return assoc.ErrInvalidIterator
	}
	m.removeEntry(it.bucket, it.pos)
	return nil
}

func (m *Map[K, V]) Size() int {
	return m.count
}

func (m *Map[K, V]) IsEmpty() bool {
	return m.count == 0
}

func (m *Map[K, V]) Clear() {
	for b := range m.buckets {
		m.buckets[b] = nil
	}
	m.count = 0
}

func (m *Map[K, V]) Begin() *Iterator[K, V] {
	it := &Iterator[K, V]{m: m}
	it.skipForward()
	return it
}

func (m *Map[K, V]) End() *Iterator[K, V] {
	return &Iterator[K, V]{
		m:      m,
		bucket: numBuckets - 1,
		pos:    len(m.buckets[numBuckets-1]),
	}
}

func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.count)
	for k := range m.All() {
		keys = append(keys, k)
	}
	return keys
}

func (m *Map[K, V]) Values() []V {
	values := make([]V, 0, m.count)
	for _, v := range m.All() {
		values = append(values, v)
	}
	return values
}

func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for b := range m.buckets {
			for _, e := range m.buckets[b] {
				if !yield(e.key, e.value) {
					return
				}
			}
		}
	}
}

func (m *Map[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for b := numBuckets - 1; b >= 0; b-- {
			chain := m.buckets[b]
			for i := len(chain) - 1; i >= 0; i-- {
				if !yield(chain[i].key, chain[i].value) {
					return
				}
			}
		}
	}
}

// Equal reports structural equality. Chains are compared position by
// position, so two maps holding the same entries are unequal when
// colliding keys were inserted in different orders.
func (m *Map[K, V]) Equal(other *Map[K, V]) bool {
	if m == other {
		return true
	}
	if other == nil || m.count != other.count {
		return false
	}
	for b := range m.buckets {
		if len(m.buckets[b]) != len(other.buckets[b]) {
			return false
		}
		for i, e := range m.buckets[b] {
			oe := other.buckets[b][i]
			if e.key != oe.key || !m.eq(e.value, oe.value) {
				return false
			}
		}
	}
	return true
}

// Clone rebuilds the map by replaying iteration order, which
// reproduces the bucket layout exactly.
func (m *Map[K, V]) Clone() *Map[K, V] {
	out := New[K, V](m.hash, m.eq)
	for k, v := range m.All() {
		out.Put(k, v)
	}
	return out
}

func (m *Map[K, V]) String() string {
	var b strings.Builder
	b.WriteString("HashMap\nmap[")
	first := true
	for k, v := range m.All() {
		if !first {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v:%v", k, v)
		first = false
	}
	b.WriteByte(']')
	return b.String()
}

// removeEntry splices position i out of bucket b, keeping chain order.
func (m *Map[K, V]) removeEntry(b, i int) {
	chain := m.buckets[b]
	m.buckets[b] = append(chain[:i], chain[i+1:]...)
	m.count--
}

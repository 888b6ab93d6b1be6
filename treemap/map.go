// Package treemap implements a map backed by an unbalanced binary
// search tree with parent linked nodes. Iteration visits keys in
// ascending order. Operations are O(log n) on average and degrade to
// O(n) when the insertion order degenerates the tree into a chain.
package treemap

import (
	"cmp"
	"fmt"
	"iter"
	"strings"

	"jsouthworth.net/go/assoc"
)

var _ assoc.Map[int, int] = (*Map[int, int])(nil)

type compareFunc[K any] func(a, b K) int
type eqFunc[V any] func(a, b V) bool

type Map[K comparable, V any] struct {
	root  *node[K, V]
	count int
	cmp   compareFunc[K]
	eq    eqFunc[V]
}

func New[K comparable, V any](cmp func(a, b K) int, eq func(a, b V) bool) *Map[K, V] {
	return &Map[K, V]{
		cmp: cmp,
		eq:  eq,
	}
}

// NewOrdered uses the natural order of K and == on values.
func NewOrdered[K cmp.Ordered, V comparable]() *Map[K, V] {
	return New[K, V](cmp.Compare[K], func(a, b V) bool { return a == b })
}

// GetOrInsert returns a pointer to the value stored under key,
// inserting a zero value first when the key is absent. The pointer
// stays valid until the entry is removed.
func (m *Map[K, V]) GetOrInsert(key K) *V {
	var parent *node[K, V]
	var left bool
	x := m.root
	for x != nil {
		c := m.cmp(key, x.key)
		if c == 0 {
			return &x.value
		}
		parent = x
		left = c < 0
		if left {
			x = x.left
		} else {
			x = x.right
		}
	}
	n := &node[K, V]{entry: entry[K, V]{key: key}, parent: parent}
	switch {
	case parent == nil:
		m.root = n
	case left:
		parent.left = n
	default:
		parent.right = n
	}
	m.count++
	return &n.value
}

func (m *Map[K, V]) Put(key K, value V) {
	*m.GetOrInsert(key) = value
}

func (m *Map[K, V]) Get(key K) (V, bool) {
	if x := m.lookup(key); x != nil {
		return x.value, true
	}
	var zero V
	return zero, false
}

func (m *Map[K, V]) ValueOf(key K) (V, error) {
	if x := m.lookup(key); x != nil {
		return x.value, nil
	}
	var zero V
	return zero, assoc.ErrKeyNotFound
}

func (m *Map[K, V]) Contains(key K) bool {
	return m.lookup(key) != nil
}

// Find returns a cursor at key, or the end cursor when the key is
// absent.
func (m *Map[K, V]) Find(key K) *Iterator[K, V] {
	if x := m.lookup(key); x != nil {
		return &Iterator[K, V]{m: m, n: x}
	}
	return m.End()
}

func (m *Map[K, V]) Remove(key K) error {
	x := m.lookup(key)
	if x == nil {
		return assoc.ErrKeyNotFound
	}
	m.removeNode(x)
	return nil
}

// RemoveAt removes the entry the cursor denotes. The cursor must come
// from this map and denote a live entry.
func (m *Map[K, V]) RemoveAt(it *Iterator[K, V]) error {
	if it == nil || it.m != m || it.n == nil {
		return assoc.ErrInvalidIterator
	}
	// A severed node has no parent and is not the root.
	if it.n.parent == nil && it.n != m.root {
		return assoc.ErrInvalidIterator
	}
	m.removeNode(it.n)
	return nil
}

func (m *Map[K, V]) Size() int {
	return m.count
}

func (m *Map[K, V]) IsEmpty() bool {
	return m.count == 0
}

// Clear severs every node. Successors are collected off the intact
// tree before any links are cut.
func (m *Map[K, V]) Clear() {
	nodes := make([]*node[K, V], 0, m.count)
	for x := m.first(); x != nil; x = x.next() {
		nodes = append(nodes, x)
	}
	for _, x := range nodes {
		x.sever()
	}
	m.root = nil
	m.count = 0
}

func (m *Map[K, V]) Begin() *Iterator[K, V] {
	return &Iterator[K, V]{m: m, n: m.first()}
}

func (m *Map[K, V]) End() *Iterator[K, V] {
	return &Iterator[K, V]{m: m}
}

func (m *Map[K, V]) Min() (K, V, bool) {
	x := m.first()
	if x == nil {
		var k K
		var v V
		return k, v, false
	}
	return x.key, x.value, true
}

func (m *Map[K, V]) Max() (K, V, bool) {
	x := m.last()
	if x == nil {
		var k K
		var v V
		return k, v, false
	}
	return x.key, x.value, true
}

func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.count)
	for x := m.first(); x != nil; x = x.next() {
		keys = append(keys, x.key)
	}
	return keys
}

func (m *Map[K, V]) Values() []V {
	values := make([]V, 0, m.count)
	for x := m.first(); x != nil; x = x.next() {
		values = append(values, x.value)
	}
	return values
}

func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for x := m.first(); x != nil; x = x.next() {
			if !yield(x.key, x.value) {
				return
			}
		}
	}
}

func (m *Map[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for x := m.last(); x != nil; x = x.prev() {
			if !yield(x.key, x.value) {
				return
			}
		}
	}
}

// Equal reports whether both maps hold the same keys with equal
// values. Tree shape does not matter.
func (m *Map[K, V]) Equal(other *Map[K, V]) bool {
	if m == other {
		return true
	}
	if other == nil || m.count != other.count {
		return false
	}
	for x := m.first(); x != nil; x = x.next() {
		ov, ok := other.Get(x.key)
		if !ok || !m.eq(x.value, ov) {
			return false
		}
	}
	return true
}

// Clone returns a map with the same entries, rebuilt by replaying the
// in-order walk. The copy's shape follows the replay, not the source
// tree.
func (m *Map[K, V]) Clone() *Map[K, V] {
	out := New[K, V](m.cmp, m.eq)
	for x := m.first(); x != nil; x = x.next() {
		out.Put(x.key, x.value)
	}
	return out
}

func (m *Map[K, V]) String() string {
	var b strings.Builder
	b.WriteString("TreeMap\nmap[")
	first := true
	for x := m.first(); x != nil; x = x.next() {
		if !first {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v:%v", x.key, x.value)
		first = false
	}
	b.WriteByte(']')
	return b.String()
}

func (m *Map[K, V]) lookup(key K) *node[K, V] {
	x := m.root
	for x != nil {
		c := m.cmp(key, x.key)
		switch {
		case c < 0:
			x = x.left
		case c > 0:
			x = x.right
		default:
			return x
		}
	}
	return nil
}

// removeNode unlinks x, promoting the in-order successor when both
// subtrees are present. The removed node is severed so stale cursors
// cannot walk back into the tree.
func (m *Map[K, V]) removeNode(x *node[K, V]) {
	switch {
	case x.left == nil:
		m.transplant(x, x.right)
	case x.right == nil:
		m.transplant(x, x.left)
	default:
		s := x.right.min()
		if s.parent != x {
			m.transplant(s, s.right)
			s.right = x.right
			s.right.parent = s
		}
		m.transplant(x, s)
		s.left = x.left
		s.left.parent = s
	}
	x.sever()
	m.count--
}

// transplant replaces the subtree rooted at u with the one rooted at v.
func (m *Map[K, V]) transplant(u, v *node[K, V]) {
	switch {
	case u.parent == nil:
		m.root = v
	case u == u.parent.left:
		u.parent.left = v
	default:
		u.parent.right = v
	}
	if v != nil {
		v.parent = u.parent
	}
}

func (m *Map[K, V]) first() *node[K, V] {
	if m.root == nil {
		return nil
	}
	return m.root.min()
}

func (m *Map[K, V]) last() *node[K, V] {
	if m.root == nil {
		return nil
	}
	return m.root.max()
}

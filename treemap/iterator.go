package treemap

import "jsouthworth.net/go/assoc"

var _ assoc.Iterator[int, int] = (*Iterator[int, int])(nil)

// Iterator is a bidirectional in-order cursor over a map. A nil node
// marks the end position.
type Iterator[K comparable, V any] struct {
	m *Map[K, V]
	n *node[K, V]
}

func (i *Iterator[K, V]) Next() error {
	if i.n == nil {
		return assoc.ErrInvalidIterator
	}
	i.n = i.n.next()
	return nil
}

func (i *Iterator[K, V]) Prev() error {
	if i.n == nil {
		if i.m.root == nil {
			return assoc.ErrInvalidIterator
		}
		i.n = i.m.root.max()
		return nil
	}
	p := i.n.prev()
	if p == nil {
		return assoc.ErrInvalidIterator
	}
	i.n = p
	return nil
}

func (i *Iterator[K, V]) Valid() bool {
	return i.n != nil
}

func (i *Iterator[K, V]) Key() (K, error) {
	if i.n == nil {
		var zero K
		return zero, assoc.ErrInvalidIterator
	}
	return i.n.key, nil
}

func (i *Iterator[K, V]) Value() (V, error) {
	if i.n == nil {
		var zero V
		return zero, assoc.ErrInvalidIterator
	}
	return i.n.value, nil
}

func (i *Iterator[K, V]) SetValue(value V) error {
	if i.n == nil {
		return assoc.ErrInvalidIterator
	}
	i.n.value = value
	return nil
}

// Equal reports whether both cursors address the same position of the
// same map.
func (i *Iterator[K, V]) Equal(other *Iterator[K, V]) bool {
	return other != nil && i.m == other.m && i.n == other.n
}

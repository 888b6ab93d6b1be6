package hashmap

import "jsouthworth.net/go/assoc"

var _ assoc.Iterator[int, int] = (*Iterator[int, int])(nil)

// Iterator is a bidirectional cursor addressing entries by bucket
// index and chain position. The end position sits in the last bucket
// at the length of its chain, so cursor equality compares both fields.
type Iterator[K comparable, V any] struct {
	m      *Map[K, V]
	bucket int
	pos    int
}

func (i *Iterator[K, V]) Next() error {
	if !i.Valid() {
		return assoc.ErrInvalidIterator
	}
	i.pos++
	i.skipForward()
	return nil
}

func (i *Iterator[K, V]) Prev() error {
	b, pos := i.bucket, i.pos
	for pos == 0 {
		if b == 0 {
			return assoc.ErrInvalidIterator
		}
		b--
		pos = len(i.m.buckets[b])
	}
	i.bucket, i.pos = b, pos-1
	return nil
}

func (i *Iterator[K, V]) Valid() bool {
	return i.bucket >= 0 && i.bucket < numBuckets &&
		i.pos >= 0 && i.pos < len(i.m.buckets[i.bucket])
}

func (i *Iterator[K, V]) Key() (K, error) {
	if !i.Valid() {
		var zero K
		return zero, assoc.ErrInvalidIterator
	}
	return i.m.buckets[i.bucket][i.pos].key, nil
}

func (i *Iterator[K, V]) Value() (V, error) {
	if !i.Valid() {
		var zero V
		return zero, assoc.ErrInvalidIterator
	}
	return i.m.buckets[i.bucket][i.pos].value, nil
}

func (i *Iterator[K, V]) SetValue(value V) error {
	if !i.Valid() {
		return assoc.ErrInvalidIterator
	}
	i.m.buckets[i.bucket][i.pos].value = value
	return nil
}

// Equal reports whether both cursors address the same position of the
// same map.
func (i *Iterator[K, V]) Equal(other *Iterator[K, V]) bool {
	return other != nil && i.m == other.m &&
		i.bucket == other.bucket && i.pos == other.pos
}

// skipForward walks to the next occupied position, settling on the end
// position when none remains.
func (i *Iterator[K, V]) skipForward() {
	for i.bucket < numBuckets-1 && i.pos >= len(i.m.buckets[i.bucket]) {
		i.bucket++
		i.pos = 0
	}
}

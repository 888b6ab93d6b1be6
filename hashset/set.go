// Package hashset implements a set backed by a hash map.
package hashset

import (
	"fmt"
	"iter"
	"strings"

	"jsouthworth.net/go/assoc"
	"jsouthworth.net/go/assoc/hashmap"
)

// Assert Set implementation
var _ assoc.Set[int] = (*Set[int])(nil)

// Set holds items as the keys of a hashmap.Map. Items iterate in the
// map's bucket order.
type Set[T comparable] struct {
	items *hashmap.Map[T, struct{}]
}

var itemExists = struct{}{}

// New instantiates a new empty set distributing items with hash and
// adds the passed values, if any.
func New[T comparable](hash func(T) uint32, values ...T) *Set[T] {
	set := &Set[T]{
		items: hashmap.New[T, struct{}](hash, func(a, b struct{}) bool { return true }),
	}
	if len(values) > 0 {
		set.Add(values...)
	}
	return set
}

// NewString instantiates a new empty string set hashed with 32 bit
// FNV-1a and adds the passed values, if any.
func NewString(values ...string) *Set[string] {
	set := &Set[string]{items: hashmap.NewString[struct{}]()}
	if len(values) > 0 {
		set.Add(values...)
	}
	return set
}

// Add adds the items (one or more) to the set.
func (set *Set[T]) Add(items ...T) {
	for _, item := range items {
		set.items.Put(item, itemExists)
	}
}

// Remove removes the items (one or more) from the set. Absent items
// are ignored.
func (set *Set[T]) Remove(items ...T) {
	for _, item := range items {
		_ = set.items.Remove(item)
	}
}

// Contains checks if items (one or more) are present in the set. All
// items have to be present for the method to return true. Returns true
// if no arguments are passed at all, i.e. set is always superset of
// empty set.
func (set *Set[T]) Contains(items ...T) bool {
	for _, item := range items {
		if !set.items.Contains(item) {
			return false
		}
	}
	return true
}

// Size returns number of items within the set.
func (set *Set[T]) Size() int {
	return set.items.Size()
}

// IsEmpty returns true if set does not contain any items.
func (set *Set[T]) IsEmpty() bool {
	return set.items.IsEmpty()
}

// Clear clears all values in the set.
func (set *Set[T]) Clear() {
	set.items.Clear()
}

// Values returns all items in the set in iteration order.
func (set *Set[T]) Values() []T {
	return set.items.Keys()
}

// All returns an iterator over the set's items.
func (set *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range set.items.All() {
			if !yield(item) {
				return
			}
		}
	}
}

// Clone returns a set holding the same items.
func (set *Set[T]) Clone() *Set[T] {
	return &Set[T]{items: set.items.Clone()}
}

// Union returns the union of two sets. The new set consists of all
// items that are in "set" or "another" (possibly both).
func (set *Set[T]) Union(another *Set[T]) *Set[T] {
	result := set.Clone()
	result.Add(another.Values()...)
	return result
}

// Intersection returns the intersection between two sets. The new set
// consists of all items that are both in "set" and "another".
func (set *Set[T]) Intersection(another *Set[T]) *Set[T] {
	result := set.Clone()
	for _, item := range set.Values() {
		if !another.Contains(item) {
			result.Remove(item)
		}
	}
	return result
}

// Difference returns the difference between two sets. The new set
// consists of all items that are in "set" but not in "another".
func (set *Set[T]) Difference(another *Set[T]) *Set[T] {
	result := set.Clone()
	result.Remove(another.Values()...)
	return result
}

// String returns a string representation of container
func (set *Set[T]) String() string {
	str := "HashSet\n"
	items := make([]string, 0, set.Size())
	for item := range set.items.All() {
		items = append(items, fmt.Sprintf("%v", item))
	}
	str += strings.Join(items, ", ")
	return str
}

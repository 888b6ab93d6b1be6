// Package assoc defines the contracts shared by the associative
// containers in this module. The concrete containers live in the
// hashmap, treemap, hashset and treeset subpackages.
package assoc

type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrKeyNotFound     = Error("key not found")
	ErrInvalidIterator = Error("invalid iterator")
)

package assoc

// Container is the base interface that all containers implement.
type Container interface {
	Size() int
	IsEmpty() bool
	Clear()
	String() string
}

// Map is the contract shared by the hash backed and tree backed maps.
// Lookups come in two flavors: Get follows the comma ok convention and
// ValueOf reports a missing key as ErrKeyNotFound. Remove of an absent
// key fails with ErrKeyNotFound and leaves the map unchanged.
type Map[K comparable, V any] interface {
	Put(key K, value V)
	Get(key K) (value V, found bool)
	ValueOf(key K) (V, error)
	Contains(key K) bool
	Remove(key K) error
	Keys() []K
	Values() []V

	Container
}

// Set is the contract shared by the hash backed and tree backed sets.
type Set[T comparable] interface {
	Add(items ...T)
	Remove(items ...T)
	Contains(items ...T) bool
	Values() []T

	Container
}

// Iterator is a bidirectional cursor over a container's entries. A
// cursor either denotes an entry or sits at the end position just past
// the last entry. Moving or dereferencing it outside that range fails
// with ErrInvalidIterator and leaves the cursor where it was.
type Iterator[K comparable, V any] interface {
	Next() error
	Prev() error
	Valid() bool
	Key() (K, error)
	Value() (V, error)
	SetValue(value V) error
}

// JSONSerializer provides JSON serialization
type JSONSerializer interface {
	// ToJSON outputs the JSON representation of the container's entries.
	ToJSON() ([]byte, error)
	// MarshalJSON @implements json.Marshaler
	MarshalJSON() ([]byte, error)
}

// JSONDeserializer provides JSON deserialization
type JSONDeserializer interface {
	// FromJSON populates the container's entries from the input JSON representation.
	FromJSON([]byte) error
	// UnmarshalJSON @implements json.Unmarshaler
	UnmarshalJSON([]byte) error
}

package hashmap

import (
	"encoding/json"

	"github.com/pkg/errors"

	"jsouthworth.net/go/assoc"
)

// Assert Serialization implementation
var _ assoc.JSONSerializer = (*Map[int, int])(nil)
var _ assoc.JSONDeserializer = (*Map[int, int])(nil)

type jsonEntry[K comparable, V any] struct {
	Key   K `json:"key"`
	Value V `json:"value"`
}

// ToJSON outputs the JSON representation of the map as a list of
// key/value objects in iteration order.
func (m *Map[K, V]) ToJSON() ([]byte, error) {
	entries := make([]jsonEntry[K, V], 0, m.count)
	for k, v := range m.All() {
		entries = append(entries, jsonEntry[K, V]{Key: k, Value: v})
	}
	return json.Marshal(entries)
}

// FromJSON populates the map from the input JSON representation.
// Entries are replayed in list order, so a map decoding its own output
// reproduces the bucket layout.
func (m *Map[K, V]) FromJSON(data []byte) error {
	var entries []jsonEntry[K, V]
	if err := json.Unmarshal(data, &entries); err != nil {
		return errors.Wrap(err, "cannot decode entry list")
	}
	m.Clear()
	for _, e := range entries {
		m.Put(e.Key, e.Value)
	}
	return nil
}

// UnmarshalJSON @implements json.Unmarshaler
func (m *Map[K, V]) UnmarshalJSON(bytes []byte) error {
	return m.FromJSON(bytes)
}

// MarshalJSON @implements json.Marshaler
func (m *Map[K, V]) MarshalJSON() ([]byte, error) {
	return m.ToJSON()
}

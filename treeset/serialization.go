package treeset

import (
	"encoding/json"

	"github.com/pkg/errors"

	"jsouthworth.net/go/assoc"
)

// Assert Serialization implementation
var _ assoc.JSONSerializer = (*Set[int])(nil)
var _ assoc.JSONDeserializer = (*Set[int])(nil)

// ToJSON outputs the JSON representation of the set's items in
// ascending order.
func (set *Set[T]) ToJSON() ([]byte, error) {
	return json.Marshal(set.Values())
}

// FromJSON populates the set from the input JSON representation.
func (set *Set[T]) FromJSON(data []byte) error {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return errors.Wrap(err, "cannot decode item list")
	}
	set.Clear()
	set.Add(items...)
	return nil
}

// UnmarshalJSON @implements json.Unmarshaler
func (set *Set[T]) UnmarshalJSON(bytes []byte) error {
	return set.FromJSON(bytes)
}

// MarshalJSON @implements json.Marshaler
func (set *Set[T]) MarshalJSON() ([]byte, error) {
	return set.ToJSON()
}

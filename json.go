package vector

import "github.com/goccy/go-json"

// MarshalJSON encodes the live elements as a JSON array. An empty vector
// encodes as [] rather than null.
func (v *Vector[T]) MarshalJSON() ([]byte, error) {
	if v.Len() == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal(v.Slice())
}

// UnmarshalJSON replaces the contents of v with the decoded array.
// JSON null leaves v untouched, as does any decoding error.
func (v *Vector[T]) UnmarshalJSON(data []byte) error {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	if items == nil {
		return nil
	}
	tmp, err := Of(items...)
	if err != nil {
		return err
	}
	v.Swap(tmp)
	return nil
}

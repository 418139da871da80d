package domain

import "errors"

var ErrItemNotFound = errors.New("item not found")

// ItemIDField is the reserved key holding the store-assigned identifier.
// Payloads may not overwrite it.
const ItemIDField = "id"

// Item is an arbitrary-shaped record: a JSON object with a store-assigned
// integer id. No other structure is imposed on its fields.
type Item map[string]any

// ID returns the assigned identifier, or 0 for an item not yet stored.
func (it Item) ID() int64 {
	switch v := it[ItemIDField].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64: // ids round-trip through encoding/json as float64
		return int64(v)
	}
	return 0
}

// Clone returns a shallow copy so stored items never alias caller maps.
func (it Item) Clone() Item {
	out := make(Item, len(it))
	for k, v := range it {
		out[k] = v
	}
	return out
}

package models

import "strconv"

// Coordinates is a position in panel space, origin top-left.
type Coordinates struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// HoldRef is a hold identifier as it appears on the wire. Snapshot producers
// disagree on the key type: some write integers, some write the textual
// form. The ref keeps whichever shape arrived so the resolver can try both.
type HoldRef struct {
	ID    int    `json:"id"`
	Key   string `json:"key,omitempty"`
	IsInt bool   `json:"-"`
}

// IntRef builds a HoldRef from an integer identifier.
func IntRef(id int) HoldRef {
	return HoldRef{ID: id, IsInt: true}
}

// KeyRef builds a HoldRef from a textual identifier. When the text is
// entirely numeric the parsed value is kept alongside so the ref still
// canonicalizes to an integer id.
func KeyRef(key string) HoldRef {
	ref := HoldRef{Key: key}
	if id, err := strconv.Atoi(key); err == nil {
		ref.ID = id
	}
	return ref
}

// String returns the textual form of the identifier.
func (r HoldRef) String() string {
	if r.IsInt {
		return strconv.Itoa(r.ID)
	}
	return r.Key
}

// Numeric reports whether the textual form is entirely numeric, and the
// parsed value when it is.
func (r HoldRef) Numeric() (int, bool) {
	if r.IsInt {
		return r.ID, true
	}
	id, err := strconv.Atoi(r.Key)
	return id, err == nil
}

// LayoutMap is the fixed mapping from hold identifier to panel coordinates.
// Keys are stored under whichever type the snapshot used; lookups go through
// the resolver's fallback chain so either form finds the hold.
type LayoutMap struct {
	byID  map[int]Coordinates
	byKey map[string]Coordinates
}

// NewLayoutMap returns an empty layout table.
func NewLayoutMap() *LayoutMap {
	return &LayoutMap{
		byID:  make(map[int]Coordinates),
		byKey: make(map[string]Coordinates),
	}
}

// SetInt records a hold keyed by integer id.
func (m *LayoutMap) SetInt(id int, c Coordinates) {
	m.byID[id] = c
}

// SetKey records a hold keyed by its textual id.
func (m *LayoutMap) SetKey(key string, c Coordinates) {
	m.byKey[key] = c
}

// ByID looks up a hold under its integer key form.
func (m *LayoutMap) ByID(id int) (Coordinates, bool) {
	c, ok := m.byID[id]
	return c, ok
}

// ByKey looks up a hold under its textual key form.
func (m *LayoutMap) ByKey(key string) (Coordinates, bool) {
	c, ok := m.byKey[key]
	return c, ok
}

// Len returns the number of recorded holds across both key forms.
func (m *LayoutMap) Len() int {
	return len(m.byID) + len(m.byKey)
}

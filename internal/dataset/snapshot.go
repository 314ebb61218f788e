package dataset

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/board-explorer/backend/internal/models"
	"github.com/vmihailenco/msgpack/v5"
)

// Snapshot is one fully loaded board dataset: the route catalog plus the two
// lookup maps. Immutable once built; safe to share across concurrent
// renders without locking.
type Snapshot struct {
	Routes []models.Route
	Holds  models.HoldsMap
	Layout *models.LayoutMap
	Source string
}

// rawSnapshot mirrors the snapshot wire layout. Producers are loose about
// key and entry types, so the maps decode into interface{} shapes and get
// canonicalized below.
type rawSnapshot struct {
	Routes   []map[string]interface{}    `msgpack:"routes"`
	HoldsMap map[interface{}]interface{} `msgpack:"holds_map"`
	Layout   map[interface{}]interface{} `msgpack:"layout_map"`
}

// Load reads a snapshot from disk, dispatching on extension: .duckdb and .db
// open as DuckDB databases, everything else decodes as msgpack.
func Load(path string, fm *FieldMap) (*Snapshot, error) {
	return LoadNamed(path, path, fm)
}

// LoadNamed reads a snapshot from path but dispatches on name's extension.
// Uploaded snapshots are stored under opaque ids, so the original filename
// carries the format.
func LoadNamed(path, name string, fm *FieldMap) (*Snapshot, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".duckdb", ".db":
		snap, err := LoadDuckDB(path, fm)
		if err != nil {
			return nil, err
		}
		snap.Source = filepath.Base(name)
		return snap, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot: %w", err)
	}
	defer f.Close()

	snap, err := Decode(f, fm)
	if err != nil {
		return nil, err
	}
	snap.Source = filepath.Base(name)
	return snap, nil
}

// Decode reads a msgpack snapshot from a reader and canonicalizes it.
func Decode(r io.Reader, fm *FieldMap) (*Snapshot, error) {
	var raw rawSnapshot
	dec := msgpack.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}

	snap := &Snapshot{
		Routes: make([]models.Route, 0, len(raw.Routes)),
		Holds:  make(models.HoldsMap, len(raw.HoldsMap)),
		Layout: models.NewLayoutMap(),
		Source: "msgpack",
	}

	for _, rec := range raw.Routes {
		snap.Routes = append(snap.Routes, Normalize(rec, fm))
	}

	for key, entries := range raw.HoldsMap {
		snap.Holds[asString(key)] = decodeHoldEntries(entries)
	}

	for key, val := range raw.Layout {
		coords, ok := decodeCoordinates(val)
		if !ok {
			continue
		}
		switch k := key.(type) {
		case string:
			snap.Layout.SetKey(k, coords)
		default:
			if id, ok := asInt(k); ok {
				snap.Layout.SetInt(id, coords)
			}
		}
	}

	return snap, nil
}

// decodeHoldEntries normalizes the two wire shapes for a route's hold list:
// bare ids (legacy, role defaults to middle) and (id, role) pairs.
func decodeHoldEntries(v interface{}) []models.RouteHold {
	list, ok := v.([]interface{})
	if !ok {
		return nil
	}

	holds := make([]models.RouteHold, 0, len(list))
	for _, entry := range list {
		if pair, ok := entry.([]interface{}); ok && len(pair) == 2 {
			rh := models.RouteHold{Hold: decodeHoldRef(pair[0]), Role: models.RoleMiddle}
			if role, ok := asInt(pair[1]); ok {
				rh.Role = models.Role(role)
			}
			holds = append(holds, rh)
			continue
		}
		holds = append(holds, models.RouteHold{Hold: decodeHoldRef(entry), Role: models.RoleMiddle})
	}
	return holds
}

func decodeHoldRef(v interface{}) models.HoldRef {
	switch id := v.(type) {
	case string:
		return models.KeyRef(id)
	case []byte:
		return models.KeyRef(string(id))
	default:
		if n, ok := asInt(v); ok {
			return models.IntRef(n)
		}
		return models.KeyRef(asString(v))
	}
}

func decodeCoordinates(v interface{}) (models.Coordinates, bool) {
	m, ok := v.(map[string]interface{})
	if !ok {
		return models.Coordinates{}, false
	}
	x, okX := asFloat(m["x"])
	y, okY := asFloat(m["y"])
	if !okX || !okY {
		return models.Coordinates{}, false
	}
	return models.Coordinates{X: x, Y: y}, true
}

// Package dataset loads board snapshots into the immutable structures the
// catalog and renderer consume. Snapshots arrive as msgpack files or DuckDB
// databases; both paths funnel through the same record normalizer so
// downstream code never branches on source shape.
package dataset

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/board-explorer/backend/internal/models"
)

// FieldMap lists, per canonical route field, the acceptable source field
// names in priority order. Name candidates match by substring (export tools
// prefix and suffix freely); the rest match exactly.
type FieldMap struct {
	Name       []string
	Grade      []string
	Angle      []string
	X          []string
	Y          []string
	Popularity []string
}

// DefaultFieldMap covers the column names seen across board data exports.
func DefaultFieldMap() *FieldMap {
	return &FieldMap{
		Name:       []string{"climb_name", "name", "route_name", "title"},
		Grade:      []string{"difficulty", "grade", "display_difficulty", "v_grade"},
		Angle:      []string{"angle", "wall_angle"},
		X:          []string{"x"},
		Y:          []string{"y"},
		Popularity: []string{"ascensionist_count", "ascents", "stars", "quality_average"},
	}
}

// Normalize coerces a loose source record into a canonical Route. Missing or
// malformed fields get defaults (grade 0, angle "Unknown", a synthesized
// name) rather than errors. Idempotent: the canonical field names are always
// consulted as a final fallback, so normalizing an already-normalized record
// is a no-op.
func Normalize(raw map[string]interface{}, fm *FieldMap) models.Route {
	if fm == nil {
		fm = DefaultFieldMap()
	}

	cols := make([]string, 0, len(raw))
	for k := range raw {
		cols = append(cols, k)
	}
	sort.Strings(cols)

	r := models.Route{
		UUID:  asString(raw["uuid"]),
		Angle: "Unknown",
	}

	if v, ok := pickSubstring(raw, cols, fm.Name, "name"); ok {
		r.Name = asString(v)
	}
	if r.Name == "" {
		r.Name = syntheticName(r.UUID)
	}

	if v, ok := pickExact(raw, fm.Grade, "grade"); ok {
		if g, ok := asInt(v); ok && g > 0 {
			r.Grade = g
		}
	}

	if v, ok := pickExact(raw, fm.Angle, "angle"); ok {
		if s := asString(v); s != "" {
			r.Angle = s
		}
	}

	if v, ok := pickExact(raw, fm.X, "x"); ok {
		r.X, _ = asFloat(v)
	}
	if v, ok := pickExact(raw, fm.Y, "y"); ok {
		r.Y, _ = asFloat(v)
	}
	if v, ok := pickExact(raw, fm.Popularity, "popularity"); ok {
		r.Popularity, _ = asFloat(v)
	}

	return r
}

// pickSubstring returns the first field whose name contains one of the
// candidates, scanning candidates in priority order. The canonical name is
// tried last so normalized records round-trip.
func pickSubstring(raw map[string]interface{}, cols []string, candidates []string, canonical string) (interface{}, bool) {
	for _, p := range candidates {
		p = strings.ToLower(p)
		for _, c := range cols {
			if strings.Contains(strings.ToLower(c), p) {
				return raw[c], true
			}
		}
	}
	if v, ok := raw[canonical]; ok {
		return v, true
	}
	return nil, false
}

func pickExact(raw map[string]interface{}, candidates []string, canonical string) (interface{}, bool) {
	for _, p := range candidates {
		if v, ok := raw[p]; ok {
			return v, true
		}
	}
	if v, ok := raw[canonical]; ok {
		return v, true
	}
	return nil, false
}

func syntheticName(uuid string) string {
	if uuid == "" {
		return "Unnamed Route"
	}
	short := uuid
	if len(short) > 8 {
		short = short[:8]
	}
	return fmt.Sprintf("Route %s", short)
}

func asString(v interface{}) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case []byte:
		return string(s)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func asInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		return int(n), true
	case float32:
		return int(n), true
	case float64:
		return int(n), true
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			return int(f), true
		}
		return 0, false
	default:
		return 0, false
	}
}

func asFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		if i, ok := asInt(v); ok {
			return float64(i), true
		}
		return 0, false
	}
}

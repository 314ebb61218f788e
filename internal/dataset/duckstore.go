package dataset

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/board-explorer/backend/internal/models"
	"github.com/marcboeker/go-duckdb"
)

// LoadDuckDB loads a snapshot from a DuckDB database with the board export
// schema:
//
//	climbs(uuid, name, difficulty, angle, x, y, popularity)
//	placements(climb_uuid, hold_id, role_id)
//	holds(hold_id, x, y)
//
// The database opens read-only semantics: nothing is written and the handle
// closes before returning.
func LoadDuckDB(dbPath string, fm *FieldMap) (*Snapshot, error) {
	connector, err := duckdb.NewConnector(dbPath, func(execer driver.ExecerContext) error {
		pragmas := []string{
			"PRAGMA memory_limit='512MB'",
			"PRAGMA threads=2",
			"PRAGMA enable_progress_bar=false",
		}
		for _, pragma := range pragmas {
			if _, err := execer.ExecContext(context.Background(), pragma, nil); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("opening DuckDB snapshot: %w", err)
	}

	db := sql.OpenDB(connector)
	defer db.Close()

	snap := &Snapshot{
		Holds:  make(models.HoldsMap),
		Layout: models.NewLayoutMap(),
		Source: dbPath,
	}

	if err := loadClimbs(db, snap, fm); err != nil {
		return nil, err
	}
	if err := loadPlacements(db, snap); err != nil {
		return nil, err
	}
	if err := loadLayout(db, snap); err != nil {
		return nil, err
	}

	return snap, nil
}

func loadClimbs(db *sql.DB, snap *Snapshot, fm *FieldMap) error {
	rows, err := db.Query(`SELECT uuid, name, difficulty, angle, x, y, popularity FROM climbs`)
	if err != nil {
		return fmt.Errorf("querying climbs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			uuid       string
			name       sql.NullString
			difficulty sql.NullFloat64
			angle      sql.NullString
			x, y       sql.NullFloat64
			popularity sql.NullFloat64
		)
		if err := rows.Scan(&uuid, &name, &difficulty, &angle, &x, &y, &popularity); err != nil {
			return fmt.Errorf("scanning climb row: %w", err)
		}

		// Route all sources through the one normalizer so defaults and
		// coercion behave identically to the msgpack path.
		raw := map[string]interface{}{"uuid": uuid}
		if name.Valid {
			raw["name"] = name.String
		}
		if difficulty.Valid {
			raw["difficulty"] = difficulty.Float64
		}
		if angle.Valid {
			raw["angle"] = angle.String
		}
		if x.Valid {
			raw["x"] = x.Float64
		}
		if y.Valid {
			raw["y"] = y.Float64
		}
		if popularity.Valid {
			raw["popularity"] = popularity.Float64
		}

		snap.Routes = append(snap.Routes, Normalize(raw, fm))
	}
	return rows.Err()
}

func loadPlacements(db *sql.DB, snap *Snapshot) error {
	rows, err := db.Query(`SELECT climb_uuid, hold_id, role_id FROM placements`)
	if err != nil {
		return fmt.Errorf("querying placements: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			climbUUID string
			holdID    int
			roleID    sql.NullInt64
		)
		if err := rows.Scan(&climbUUID, &holdID, &roleID); err != nil {
			return fmt.Errorf("scanning placement row: %w", err)
		}

		role := models.RoleMiddle
		if roleID.Valid {
			role = models.Role(roleID.Int64)
		}
		snap.Holds[climbUUID] = append(snap.Holds[climbUUID], models.RouteHold{
			Hold: models.IntRef(holdID),
			Role: role,
		})
	}
	return rows.Err()
}

func loadLayout(db *sql.DB, snap *Snapshot) error {
	rows, err := db.Query(`SELECT hold_id, x, y FROM holds`)
	if err != nil {
		return fmt.Errorf("querying holds: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			holdID int
			x, y   float64
		)
		if err := rows.Scan(&holdID, &x, &y); err != nil {
			return fmt.Errorf("scanning hold row: %w", err)
		}
		snap.Layout.SetInt(holdID, models.Coordinates{X: x, Y: y})
	}
	return rows.Err()
}

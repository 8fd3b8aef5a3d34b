// Platforms table accessor: hydration between SQLite rows and
// *types.PlatformRecord, with JSONL persistence on every write.
package catalog

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/mesh-intelligence/targetspec/pkg/types"
)

// Compile-time interface check.
var _ types.Table = (*platformsTable)(nil)

type platformsTable struct {
	backend *Backend
}

// Get retrieves a platform record by record ID.
func (pt *platformsTable) Get(id string) (any, error) {
	if err := pt.backend.checkAttached(); err != nil {
		return nil, err
	}
	if id == "" {
		return nil, types.ErrInvalidID
	}

	row := pt.backend.db.QueryRow(
		`SELECT record_id, triple, source, os, arch, vendor, env, abi, families, endian, pointer_width, custom_json, notes, created_at, updated_at
		 FROM platforms WHERE record_id = ?`, id,
	)
	rec, err := scanPlatformRow(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting platform %s: %w", id, err)
	}
	return rec, nil
}

// GetByTriple retrieves a platform record by triple string.
func (pt *platformsTable) GetByTriple(triple string) (*types.PlatformRecord, error) {
	if err := pt.backend.checkAttached(); err != nil {
		return nil, err
	}
	row := pt.backend.db.QueryRow(
		`SELECT record_id, triple, source, os, arch, vendor, env, abi, families, endian, pointer_width, custom_json, notes, created_at, updated_at
		 FROM platforms WHERE triple = ?`, triple,
	)
	rec, err := scanPlatformRow(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting platform by triple %s: %w", triple, err)
	}
	return rec, nil
}

// Set persists a platform record. An empty id creates a new record with a
// generated UUID v7; a non-empty id updates the existing record. Custom
// records must carry a target definition that resolves via
// types.NewCustomTriple. A create whose triple already exists is
// ErrDuplicateTriple.
func (pt *platformsTable) Set(id string, data any) (string, error) {
	if err := pt.backend.checkAttached(); err != nil {
		return "", err
	}
	rec, ok := data.(*types.PlatformRecord)
	if !ok {
		return "", types.ErrInvalidData
	}

	now := time.Now().UTC()
	isCreate := id == ""
	if isCreate {
		rec.RecordID = generateUUID()
		rec.CreatedAt = now
		id = rec.RecordID
	} else {
		rec.RecordID = id
	}
	rec.UpdatedAt = now

	if err := rec.Validate(); err != nil {
		return "", fmt.Errorf("%w: %w", types.ErrInvalidData, err)
	}
	if rec.Source == types.TripleSourceCustom {
		if rec.CustomJSON == "" {
			return "", fmt.Errorf("%w: custom platform needs a target definition", types.ErrInvalidData)
		}
		if _, err := types.NewCustomTriple(rec.TripleStr, []byte(rec.CustomJSON)); err != nil {
			return "", fmt.Errorf("%w: %w", types.ErrInvalidData, err)
		}
	}

	// Reject duplicate triples owned by another record.
	var existingID string
	err := pt.backend.db.QueryRow(
		"SELECT record_id FROM platforms WHERE triple = ?", rec.TripleStr,
	).Scan(&existingID)
	if err != nil && err != sql.ErrNoRows {
		return "", fmt.Errorf("checking triple uniqueness: %w", err)
	}
	if err == nil && existingID != id {
		return "", fmt.Errorf("%w: %s", types.ErrDuplicateTriple, rec.TripleStr)
	}

	var exists bool
	err = pt.backend.db.QueryRow(
		"SELECT 1 FROM platforms WHERE record_id = ?", id,
	).Scan(&exists)
	if err != nil && err != sql.ErrNoRows {
		return "", fmt.Errorf("checking record existence: %w", err)
	}
	if !isCreate && err == sql.ErrNoRows {
		return "", types.ErrNotFound
	}

	row := rowFromRecord(rec)
	if exists {
		_, err = pt.backend.db.Exec(
			`UPDATE platforms SET triple = ?, source = ?, os = ?, arch = ?, vendor = ?, env = ?, abi = ?, families = ?, endian = ?, pointer_width = ?, custom_json = ?, notes = ?, updated_at = ?
			 WHERE record_id = ?`,
			row.Triple, row.Source, row.OS, row.Arch, row.Vendor, row.Env, row.ABI,
			joinFamilies(row.Families), row.Endian, row.PointerWidth, row.CustomJSON,
			row.Notes, row.UpdatedAt, id,
		)
	} else {
		_, err = pt.backend.db.Exec(
			`INSERT INTO platforms
			 (record_id, triple, source, os, arch, vendor, env, abi, families, endian, pointer_width, custom_json, notes, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			id, row.Triple, row.Source, row.OS, row.Arch, row.Vendor, row.Env, row.ABI,
			joinFamilies(row.Families), row.Endian, row.PointerWidth, row.CustomJSON,
			row.Notes, row.CreatedAt, row.UpdatedAt,
		)
	}
	if err != nil {
		return "", fmt.Errorf("persisting platform: %w", err)
	}

	if err := pt.backend.persistPlatformsJSONL(); err != nil {
		return "", fmt.Errorf("persisting platforms.jsonl: %w", err)
	}
	return id, nil
}

// Delete removes a platform record and its feature rows. Builtin-sourced
// records are immutable.
func (pt *platformsTable) Delete(id string) error {
	if err := pt.backend.checkAttached(); err != nil {
		return err
	}
	if id == "" {
		return types.ErrInvalidID
	}

	var triple, source string
	err := pt.backend.db.QueryRow(
		"SELECT triple, source FROM platforms WHERE record_id = ?", id,
	).Scan(&triple, &source)
	if err != nil {
		if err == sql.ErrNoRows {
			return types.ErrNotFound
		}
		return fmt.Errorf("checking platform existence: %w", err)
	}
	if source == types.TripleSourceBuiltin {
		return fmt.Errorf("%w: %s", types.ErrBuiltinImmutable, triple)
	}

	tx, err := pt.backend.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM features WHERE triple = ?", triple); err != nil {
		return fmt.Errorf("deleting platform features: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM platforms WHERE record_id = ?", id); err != nil {
		return fmt.Errorf("deleting platform: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing platform deletion: %w", err)
	}

	if err := pt.backend.persistPlatformsJSONL(); err != nil {
		return fmt.Errorf("persisting platforms.jsonl: %w", err)
	}
	if err := pt.backend.persistFeaturesJSONL(); err != nil {
		return fmt.Errorf("persisting features.jsonl: %w", err)
	}
	return nil
}

// platformFilterColumns maps filter keys to queryable columns.
var platformFilterColumns = map[string]string{
	"triple": "triple",
	"source": "source",
	"os":     "os",
	"arch":   "arch",
	"vendor": "vendor",
	"env":    "env",
}

// Fetch queries platform records matching the filter, ordered by triple.
// String-valued keys triple, source, os, arch, vendor, and env match
// exactly; "family" matches membership in the families list. Any other key
// or a non-string value is ErrInvalidFilter.
func (pt *platformsTable) Fetch(filter map[string]any) ([]any, error) {
	if err := pt.backend.checkAttached(); err != nil {
		return nil, err
	}

	query := `SELECT record_id, triple, source, os, arch, vendor, env, abi, families, endian, pointer_width, custom_json, notes, created_at, updated_at FROM platforms`
	var conditions []string
	var args []any
	var familyWanted string

	for key, value := range filter {
		str, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %s must be a string", types.ErrInvalidFilter, key)
		}
		if key == "family" {
			familyWanted = str
			continue
		}
		col, ok := platformFilterColumns[key]
		if !ok {
			return nil, fmt.Errorf("%w: unknown key %q", types.ErrInvalidFilter, key)
		}
		conditions = append(conditions, col+" = ?")
		args = append(args, str)
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY triple ASC"

	rows, err := pt.backend.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("fetching platforms: %w", err)
	}
	defer rows.Close()

	var results []any
	for rows.Next() {
		rec, err := scanPlatformRows(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning platform: %w", err)
		}
		if familyWanted != "" && !rec.Spec().HasFamily(familyWanted) {
			continue
		}
		results = append(results, rec)
	}
	return results, rows.Err()
}

// rowScanner abstracts sql.Row and sql.Rows for hydration.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanPlatformRow hydrates one row into a *types.PlatformRecord.
func scanPlatformRow(row rowScanner) (*types.PlatformRecord, error) {
	var r platformRow
	var env, abi, families, customJSON, notes sql.NullString
	err := row.Scan(
		&r.RecordID, &r.Triple, &r.Source, &r.OS, &r.Arch, &r.Vendor,
		&env, &abi, &families, &r.Endian, &r.PointerWidth,
		&customJSON, &notes, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	r.Env = env.String
	r.ABI = abi.String
	r.Families = splitFamilies(families.String)
	r.CustomJSON = customJSON.String
	r.Notes = notes.String
	return recordFromRow(r), nil
}

// scanPlatformRows is scanPlatformRow over a *sql.Rows cursor.
func scanPlatformRows(rows *sql.Rows) (*types.PlatformRecord, error) {
	return scanPlatformRow(rows)
}

// marshalPlatformRows dehydrates a platforms cursor to JSONL records.
func marshalPlatformRows(rows *sql.Rows) ([]json.RawMessage, error) {
	var records []json.RawMessage
	for rows.Next() {
		rec, err := scanPlatformRows(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning platform for JSONL: %w", err)
		}
		data, err := json.Marshal(rowFromRecord(rec))
		if err != nil {
			return nil, fmt.Errorf("marshaling platform for JSONL: %w", err)
		}
		records = append(records, data)
	}
	return records, rows.Err()
}

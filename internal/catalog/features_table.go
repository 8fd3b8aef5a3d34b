// Features table accessor: per-triple target feature rows.
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
var _ types.Table = (*featuresTable)(nil)

type featuresTable struct {
	backend *Backend
}

// Get retrieves a feature record by record ID.
func (ft *featuresTable) Get(id string) (any, error) {
	if err := ft.backend.checkAttached(); err != nil {
		return nil, err
	}
	if id == "" {
		return nil, types.ErrInvalidID
	}

	var row featureRow
	err := ft.backend.db.QueryRow(
		"SELECT record_id, triple, feature, created_at FROM features WHERE record_id = ?", id,
	).Scan(&row.RecordID, &row.Triple, &row.Feature, &row.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting feature %s: %w", id, err)
	}
	return featureRecordFromRow(row), nil
}

// Set persists a feature record. The referenced triple must already exist
// in the platforms table. Setting an already-present (triple, feature)
// pair is idempotent and returns the existing record ID.
func (ft *featuresTable) Set(id string, data any) (string, error) {
	if err := ft.backend.checkAttached(); err != nil {
		return "", err
	}
	rec, ok := data.(*types.FeatureRecord)
	if !ok {
		return "", types.ErrInvalidData
	}

	isCreate := id == ""
	if isCreate {
		rec.RecordID = generateUUID()
		rec.CreatedAt = time.Now().UTC()
		id = rec.RecordID
	} else {
		rec.RecordID = id
	}
	if err := rec.Validate(); err != nil {
		return "", fmt.Errorf("%w: %w", types.ErrInvalidData, err)
	}

	platforms := &platformsTable{backend: ft.backend}
	if _, err := platforms.GetByTriple(rec.TripleStr); err != nil {
		if err == types.ErrNotFound {
			return "", fmt.Errorf("%w: no platform for triple %s", types.ErrInvalidData, rec.TripleStr)
		}
		return "", fmt.Errorf("checking feature platform: %w", err)
	}

	var existingID string
	err := ft.backend.db.QueryRow(
		"SELECT record_id FROM features WHERE triple = ? AND feature = ?",
		rec.TripleStr, rec.Feature,
	).Scan(&existingID)
	if err != nil && err != sql.ErrNoRows {
		return "", fmt.Errorf("checking feature uniqueness: %w", err)
	}
	if err == nil && existingID != id {
		return existingID, nil
	}

	if err == nil {
		_, err = ft.backend.db.Exec(
			"UPDATE features SET triple = ?, feature = ? WHERE record_id = ?",
			rec.TripleStr, rec.Feature, id,
		)
	} else {
		if !isCreate {
			var exists int
			scanErr := ft.backend.db.QueryRow(
				"SELECT 1 FROM features WHERE record_id = ?", id,
			).Scan(&exists)
			if scanErr == sql.ErrNoRows {
				return "", types.ErrNotFound
			}
			if scanErr != nil {
				return "", fmt.Errorf("checking feature existence: %w", scanErr)
			}
			_, err = ft.backend.db.Exec(
				"UPDATE features SET triple = ?, feature = ? WHERE record_id = ?",
				rec.TripleStr, rec.Feature, id,
			)
		} else {
			_, err = ft.backend.db.Exec(
				"INSERT INTO features (record_id, triple, feature, created_at) VALUES (?, ?, ?, ?)",
				id, rec.TripleStr, rec.Feature, rec.CreatedAt.Format(time.RFC3339),
			)
		}
	}
	if err != nil {
		return "", fmt.Errorf("persisting feature: %w", err)
	}

	if err := ft.backend.persistFeaturesJSONL(); err != nil {
		return "", fmt.Errorf("persisting features.jsonl: %w", err)
	}
	return id, nil
}

// Delete removes a feature record by ID.
func (ft *featuresTable) Delete(id string) error {
	if err := ft.backend.checkAttached(); err != nil {
		return err
	}
	if id == "" {
		return types.ErrInvalidID
	}

	result, err := ft.backend.db.Exec("DELETE FROM features WHERE record_id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting feature: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking feature deletion: %w", err)
	}
	if affected == 0 {
		return types.ErrNotFound
	}

	if err := ft.backend.persistFeaturesJSONL(); err != nil {
		return fmt.Errorf("persisting features.jsonl: %w", err)
	}
	return nil
}

// featureFilterColumns maps filter keys to queryable columns.
var featureFilterColumns = map[string]string{
	"triple":  "triple",
	"feature": "feature",
}

// Fetch queries feature records matching the filter, ordered by triple
// then feature. Keys triple and feature match exactly.
func (ft *featuresTable) Fetch(filter map[string]any) ([]any, error) {
	if err := ft.backend.checkAttached(); err != nil {
		return nil, err
	}

	query := "SELECT record_id, triple, feature, created_at FROM features"
	var conditions []string
	var args []any
	for key, value := range filter {
		str, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %s must be a string", types.ErrInvalidFilter, key)
		}
		col, ok := featureFilterColumns[key]
		if !ok {
			return nil, fmt.Errorf("%w: unknown key %q", types.ErrInvalidFilter, key)
		}
		conditions = append(conditions, col+" = ?")
		args = append(args, str)
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY triple ASC, feature ASC"

	rows, err := ft.backend.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("fetching features: %w", err)
	}
	defer rows.Close()

	var results []any
	for rows.Next() {
		var row featureRow
		if err := rows.Scan(&row.RecordID, &row.Triple, &row.Feature, &row.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning feature: %w", err)
		}
		results = append(results, featureRecordFromRow(row))
	}
	return results, rows.Err()
}

// featureRecordFromRow hydrates a featureRow into a *types.FeatureRecord.
func featureRecordFromRow(row featureRow) *types.FeatureRecord {
	created, _ := time.Parse(time.RFC3339, row.CreatedAt)
	return &types.FeatureRecord{
		RecordID:  row.RecordID,
		TripleStr: row.Triple,
		Feature:   row.Feature,
		CreatedAt: created,
	}
}

// marshalFeatureRows dehydrates a features cursor to JSONL records.
func marshalFeatureRows(rows *sql.Rows) ([]json.RawMessage, error) {
	var records []json.RawMessage
	for rows.Next() {
		var row featureRow
		if err := rows.Scan(&row.RecordID, &row.Triple, &row.Feature, &row.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning feature for JSONL: %w", err)
		}
		data, err := json.Marshal(row)
		if err != nil {
			return nil, fmt.Errorf("marshaling feature for JSONL: %w", err)
		}
		records = append(records, data)
	}
	return records, rows.Err()
}

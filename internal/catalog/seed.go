// Builtin platform seeding on backend attach.
package catalog

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/mesh-intelligence/targetspec/pkg/types"
)

// seedBuiltinPlatforms inserts catalog rows for every builtin triple not
// already present. Seeded rows persist to platforms.jsonl like any other
// row, so a hand-edited catalog keeps its edits while new builtins appear
// after an upgrade. Idempotent across attaches.
func (b *Backend) seedBuiltinPlatforms() error {
	existing := make(map[string]bool)
	rows, err := b.db.Query("SELECT triple FROM platforms")
	if err != nil {
		return fmt.Errorf("querying existing triples: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var triple string
		if err := rows.Scan(&triple); err != nil {
			return fmt.Errorf("scanning triple: %w", err)
		}
		existing[triple] = true
	}
	if err := rows.Err(); err != nil {
		return err
	}
	rows.Close()

	nowStr := time.Now().UTC().Format(time.RFC3339)
	seeded := 0

	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer tx.Rollback()

	for _, tripleStr := range types.BuiltinTriples() {
		if existing[tripleStr] {
			continue
		}
		triple, err := types.ParseTripleStrict(tripleStr)
		if err != nil {
			return fmt.Errorf("resolving builtin %s: %w", tripleStr, err)
		}
		rec := types.NewPlatformRecord(triple)
		_, err = tx.Exec(
			`INSERT INTO platforms
			 (record_id, triple, source, os, arch, vendor, env, abi, families, endian, pointer_width, custom_json, notes, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			generateUUID(), rec.TripleStr, rec.Source, rec.OS, rec.Arch, rec.Vendor,
			rec.Env, rec.ABI, joinFamilies(rec.Families), rec.Endian, rec.PointerWidth,
			"", "", nowStr, nowStr,
		)
		if err != nil {
			return fmt.Errorf("seeding platform %s: %w", tripleStr, err)
		}
		seeded++
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing seed transaction: %w", err)
	}

	if seeded > 0 {
		if err := b.persistPlatformsJSONL(); err != nil {
			return fmt.Errorf("persisting seeded platforms: %w", err)
		}
	}
	return nil
}

// persistPlatformsJSONL writes every platform row to platforms.jsonl
// atomically, ordered by triple for stable diffs.
func (b *Backend) persistPlatformsJSONL() error {
	rows, err := b.db.Query(
		`SELECT record_id, triple, source, os, arch, vendor, env, abi, families, endian, pointer_width, custom_json, notes, created_at, updated_at
		 FROM platforms ORDER BY triple ASC`,
	)
	if err != nil {
		return fmt.Errorf("querying platforms for JSONL: %w", err)
	}
	defer rows.Close()

	records, err := marshalPlatformRows(rows)
	if err != nil {
		return err
	}
	return writeJSONL(filepath.Join(b.config.DataDir, platformsJSONL), records)
}

// persistFeaturesJSONL writes every feature row to features.jsonl
// atomically, ordered by triple then feature.
func (b *Backend) persistFeaturesJSONL() error {
	rows, err := b.db.Query(
		`SELECT record_id, triple, feature, created_at
		 FROM features ORDER BY triple ASC, feature ASC`,
	)
	if err != nil {
		return fmt.Errorf("querying features for JSONL: %w", err)
	}
	defer rows.Close()

	records, err := marshalFeatureRows(rows)
	if err != nil {
		return err
	}
	return writeJSONL(filepath.Join(b.config.DataDir, featuresJSONL), records)
}

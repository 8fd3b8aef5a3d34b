// Loading JSONL records into the fresh SQLite database on attach.
package catalog

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/mesh-intelligence/targetspec/pkg/types"
)

// platformRow is the JSONL and SQLite row form of a PlatformRecord.
type platformRow struct {
	RecordID     string   `json:"record_id"`
	Triple       string   `json:"triple"`
	Source       string   `json:"source"`
	OS           string   `json:"os"`
	Arch         string   `json:"arch"`
	Vendor       string   `json:"vendor"`
	Env          string   `json:"env,omitempty"`
	ABI          string   `json:"abi,omitempty"`
	Families     []string `json:"families,omitempty"`
	Endian       string   `json:"endian"`
	PointerWidth int      `json:"pointer_width"`
	CustomJSON   string   `json:"custom_json,omitempty"`
	Notes        string   `json:"notes,omitempty"`
	CreatedAt    string   `json:"created_at"`
	UpdatedAt    string   `json:"updated_at"`
}

// featureRow is the JSONL and SQLite row form of a FeatureRecord.
type featureRow struct {
	RecordID  string `json:"record_id"`
	Triple    string `json:"triple"`
	Feature   string `json:"feature"`
	CreatedAt string `json:"created_at"`
}

// loadAllJSONL replays the JSONL files into the fresh database. Records
// that fail to decode are skipped, matching the malformed-line policy of
// readJSONL.
func (b *Backend) loadAllJSONL() error {
	dataDir := b.config.DataDir

	platRecords, err := readJSONL(filepath.Join(dataDir, platformsJSONL))
	if err != nil {
		return err
	}
	for _, raw := range platRecords {
		var row platformRow
		if err := json.Unmarshal(raw, &row); err != nil {
			continue
		}
		if err := b.insertPlatformRow(row); err != nil {
			return fmt.Errorf("loading platform %s: %w", row.Triple, err)
		}
	}

	featRecords, err := readJSONL(filepath.Join(dataDir, featuresJSONL))
	if err != nil {
		return err
	}
	for _, raw := range featRecords {
		var row featureRow
		if err := json.Unmarshal(raw, &row); err != nil {
			continue
		}
		if err := b.insertFeatureRow(row); err != nil {
			return fmt.Errorf("loading feature %s/%s: %w", row.Triple, row.Feature, err)
		}
	}
	return nil
}

// insertPlatformRow inserts a row as loaded, preserving IDs and timestamps.
func (b *Backend) insertPlatformRow(row platformRow) error {
	_, err := b.db.Exec(
		`INSERT OR REPLACE INTO platforms
		 (record_id, triple, source, os, arch, vendor, env, abi, families, endian, pointer_width, custom_json, notes, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		row.RecordID, row.Triple, row.Source, row.OS, row.Arch, row.Vendor,
		row.Env, row.ABI, joinFamilies(row.Families), row.Endian, row.PointerWidth,
		row.CustomJSON, row.Notes, row.CreatedAt, row.UpdatedAt,
	)
	return err
}

// insertFeatureRow inserts a feature row as loaded.
func (b *Backend) insertFeatureRow(row featureRow) error {
	_, err := b.db.Exec(
		`INSERT OR REPLACE INTO features (record_id, triple, feature, created_at)
		 VALUES (?, ?, ?, ?)`,
		row.RecordID, row.Triple, row.Feature, row.CreatedAt,
	)
	return err
}

// joinFamilies stores the families list as a comma-separated column value.
func joinFamilies(families []string) string {
	return strings.Join(families, ",")
}

// splitFamilies reverses joinFamilies.
func splitFamilies(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

// rowFromRecord dehydrates an entity to its row form.
func rowFromRecord(r *types.PlatformRecord) platformRow {
	return platformRow{
		RecordID:     r.RecordID,
		Triple:       r.TripleStr,
		Source:       r.Source,
		OS:           r.OS,
		Arch:         r.Arch,
		Vendor:       r.Vendor,
		Env:          r.Env,
		ABI:          r.ABI,
		Families:     append([]string(nil), r.Families...),
		Endian:       r.Endian,
		PointerWidth: r.PointerWidth,
		CustomJSON:   r.CustomJSON,
		Notes:        r.Notes,
		CreatedAt:    r.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:    r.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// recordFromRow hydrates a row back into the entity form. Unparseable
// timestamps hydrate as zero times.
func recordFromRow(row platformRow) *types.PlatformRecord {
	createdAt, _ := time.Parse(time.RFC3339, row.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339, row.UpdatedAt)
	return &types.PlatformRecord{
		RecordID:     row.RecordID,
		TripleStr:    row.Triple,
		Source:       row.Source,
		OS:           row.OS,
		Arch:         row.Arch,
		Vendor:       row.Vendor,
		Env:          row.Env,
		ABI:          row.ABI,
		Families:     append([]string(nil), row.Families...),
		Endian:       row.Endian,
		PointerWidth: row.PointerWidth,
		CustomJSON:   row.CustomJSON,
		Notes:        row.Notes,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}

// Package catalog implements the SQLite-backed platform catalog. SQLite is
// the query engine; JSONL files in the data directory are the durable
// source of truth and are reloaded on every attach.
package catalog

// Schema DDL for the catalog tables.
const (
	createPlatforms = `CREATE TABLE platforms (
    record_id TEXT PRIMARY KEY,
    triple TEXT NOT NULL UNIQUE,
    source TEXT NOT NULL,
    os TEXT NOT NULL,
    arch TEXT NOT NULL,
    vendor TEXT NOT NULL,
    env TEXT,
    abi TEXT,
    families TEXT,
    endian TEXT NOT NULL,
    pointer_width INTEGER NOT NULL,
    custom_json TEXT,
    notes TEXT,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	createFeatures = `CREATE TABLE features (
    record_id TEXT PRIMARY KEY,
    triple TEXT NOT NULL,
    feature TEXT NOT NULL,
    created_at TEXT NOT NULL
);`
)

// Index DDL for common queries.
const (
	idxPlatformsSource = `CREATE INDEX idx_platforms_source ON platforms(source);`
	idxPlatformsOS     = `CREATE INDEX idx_platforms_os ON platforms(os);`
	idxPlatformsArch   = `CREATE INDEX idx_platforms_arch ON platforms(arch);`
	idxFeaturesUnique  = `CREATE UNIQUE INDEX idx_features_unique ON features(triple, feature);`
	idxFeaturesTriple  = `CREATE INDEX idx_features_triple ON features(triple);`
)

// schemaDDL lists all CREATE TABLE statements.
var schemaDDL = []string{
	createPlatforms,
	createFeatures,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxPlatformsSource,
	idxPlatformsOS,
	idxPlatformsArch,
	idxFeaturesUnique,
	idxFeaturesTriple,
}

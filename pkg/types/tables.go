package types

// Standard table names for Catalog.GetTable.
const (
	PlatformsTable = "platforms"
	FeaturesTable  = "features"
)

// StandardTableNames lists all standard table names for enumeration.
var StandardTableNames = []string{
	PlatformsTable,
	FeaturesTable,
}

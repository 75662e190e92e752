package config

// Default paths for databases
const (
	// DefaultDatabasePath is the default path for the catalog database
	DefaultDatabasePath = "./bookcatalog.db"
)

// DefaultPopulateTarget is the only schema label the populate command
// accepts; the catalog is the single registered schema in this module.
const DefaultPopulateTarget = "catalog"

package tables

// Config holds configuration for locating and parsing the input tables.
type Config struct {
	// Source selects where tables are read from (file, storage).
	Source string `mapstructure:"source" default:"file"`
	// Dir is the directory holding the tables when Source is file.
	Dir string `mapstructure:"dir" default:"."`
	// Prefix is the object key prefix when Source is storage.
	Prefix string `mapstructure:"prefix" default:""`
	// Simulation is the name of the RapidSim particle table.
	Simulation string `mapstructure:"simulation" default:"rapidsimParts.txt"`
	// Reference is the name of the EvtGen particle table.
	Reference string `mapstructure:"reference" default:"evtgenParts.txt"`
	// Strict aborts on the first malformed line instead of skipping it.
	Strict bool `mapstructure:"strict" default:"false"`
	// CacheTTLSeconds controls how long the server keeps loaded tables. 0 disables caching.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"0"`
}

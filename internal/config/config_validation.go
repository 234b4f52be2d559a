// SPDX-License-Identifier: Apache-2.0

package config

// Database drivers understood by the store layer.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

const (
	defaultHTTPAddress = ":8080"
	defaultAIModel     = "gemini-2.5-flash"
)

// applyDefaults fills in fallback values for fields left empty by all
// configuration sources.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = DriverPostgres
	}
	if cfg.AI.Model == "" {
		cfg.AI.Model = defaultAIModel
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.DB.Driver != DriverPostgres && cfg.Storage.DB.Driver != DriverSQLite {
		return ErrInvalidStorageConfigs
	}

	if cfg.Auth.JWTSecret == "" && cfg.Auth.ProviderURL == "" {
		return ErrInvalidAuthConfigs
	}

	return nil
}

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies the
// daemon's startup invariants.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.DB.Driver {
	case "sqlite3", "pgx":
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Suggest.Length <= 0 || cfg.Suggest.Timeout <= 0 {
		return ErrInvalidSuggestConfigs
	}

	return nil
}

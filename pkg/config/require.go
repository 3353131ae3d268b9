package config

import (
	"errors"
	"fmt"
)

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

func (c Config) Validate() error {
	var errs []error
	switch c.Store {
	case StoreMemory, StoreSQLite:
	default:
		errs = append(errs, fmt.Errorf("STORE must be %q or %q, got %q", StoreMemory, StoreSQLite, c.Store))
	}
	if !logLevels[c.LogLevel] {
		errs = append(errs, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error, got %q", c.LogLevel))
	}
	if c.ServerPort <= 0 || c.ServerPort > 65535 {
		errs = append(errs, fmt.Errorf("SERVER_PORT out of range: %d", c.ServerPort))
	}
	if c.SimulatedLatency < 0 {
		errs = append(errs, fmt.Errorf("SIMULATED_LATENCY must not be negative"))
	}
	if c.QueryCacheSize <= 0 {
		errs = append(errs, fmt.Errorf("QUERY_CACHE_SIZE must be positive, got %d", c.QueryCacheSize))
	}
	if c.QueryStaleTime < 0 {
		errs = append(errs, fmt.Errorf("QUERY_STALE_TIME must not be negative"))
	}
	return errors.Join(errs...)
}

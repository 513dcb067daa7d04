package configs

import (
	"fmt"
	"strings"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Storage selects the campaign store and the country reference dataset.
type Storage struct {
	// Driver is either "postgres" or "memory". The memory driver keeps
	// everything in process and is meant for local runs and demos.
	Driver string `env:"DRIVER" envDefault:"postgres"`
	// CountriesPath overrides the bundled countries dataset when set.
	CountriesPath string `env:"COUNTRIES_PATH"`
}

// NormalizedDriver returns the lower-cased driver name or an error for an
// unknown driver.
func (s Storage) NormalizedDriver() (string, error) {
	switch d := strings.ToLower(strings.TrimSpace(s.Driver)); d {
	case DriverPostgres, DriverMemory:
		return d, nil
	default:
		return "", fmt.Errorf("unknown storage driver %q", s.Driver)
	}
}

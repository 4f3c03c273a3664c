package utils

import (
	"github.com/benmeehan/geotagger/internal/constants"
	"github.com/benmeehan/geotagger/pkg/file"
)

// Config represents the structure of the optional configuration file.
type Config struct {
	Workers int `yaml:"workers"` // Number of workers draining the photo queue

	Geocoding struct {
		MapsAPIKey string `yaml:"maps_api_key"` // Google Maps API key; empty disables address lookups
	} `yaml:"geocoding"`

	Logging struct {
		Level string `yaml:"level"` // zerolog level name (debug, info, warn, error)
	} `yaml:"logging"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	config := &Config{}
	config.Workers = constants.DefaultWorkerCount
	config.Logging.Level = "info"
	return config
}

// LoadConfig loads the YAML configuration from the specified file on top of
// the defaults. It returns a pointer to the Config struct and an error if
// loading fails.
func LoadConfig(filename string, fileClient file.FileOperations) (*Config, error) {
	config := DefaultConfig()
	if err := fileClient.ReadYamlFile(filename, config); err != nil {
		return nil, err
	}
	if config.Workers <= 0 {
		config.Workers = constants.DefaultWorkerCount
	}
	return config, nil
}

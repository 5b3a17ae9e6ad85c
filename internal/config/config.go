package config

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrPipelineConfig marks problems with the surrounding pipeline's JSON
// config file (unreadable or malformed).
var ErrPipelineConfig = errors.New("invalid pipeline config")

type Config struct {
	Paths      PathsConfig
	Clustering ClusteringConfig
	Database   DatabaseConfig
}

type PathsConfig struct {
	ResultsDirectory string // directory holding consolidated_metadata.json and relationship_sets.json
}

type ClusteringConfig struct {
	TimeThresholdSeconds float64
	LocationThresholdKm  float64
}

type DatabaseConfig struct {
	URL          string // PostgreSQL connection URL for run history (optional)
	MaxOpenConns int    // Maximum open connections (default 25)
	MaxIdleConns int    // Maximum idle connections (default 5)
}

// Defaults holds values bundled into the binary: the documented clustering
// thresholds and the ordered metadata source precedence lists.
type Defaults struct {
	Clustering struct {
		TimeThresholdSeconds float64 `yaml:"timeThresholdSeconds"`
		LocationThresholdKm  float64 `yaml:"locationThresholdKm"`
	} `yaml:"clustering"`
	Sources struct {
		Timestamp []string `yaml:"timestamp"`
		Geotag    []string `yaml:"geotag"`
	} `yaml:"sources"`
}

// envInt reads an environment variable and parses it as a positive integer.
// Returns the default value if the env var is unset, empty, or invalid.
func envInt(key string, defaultVal int) int {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return n
	}
	return defaultVal
}

// LoadDefaults parses the embedded defaults.yaml.
func LoadDefaults() Defaults {
	var d Defaults
	if err := yaml.Unmarshal(defaultsYAML, &d); err != nil {
		// Embedded file, cannot fail outside of a broken build.
		panic("failed to unmarshal embedded defaults.yaml: " + err.Error())
	}
	return d
}

func Load() *Config {
	d := LoadDefaults()

	return &Config{
		Paths: PathsConfig{
			ResultsDirectory: os.Getenv("RESULTS_DIR"),
		},
		Clustering: ClusteringConfig{
			TimeThresholdSeconds: d.Clustering.TimeThresholdSeconds,
			LocationThresholdKm:  d.Clustering.LocationThresholdKm,
		},
		Database: DatabaseConfig{
			URL:          os.Getenv("DATABASE_URL"),
			MaxOpenConns: envInt("DATABASE_MAX_OPEN_CONNS", 25),
			MaxIdleConns: envInt("DATABASE_MAX_IDLE_CONNS", 5),
		},
	}
}

// pipelineFile mirrors the subset of the surrounding pipeline's JSON config
// that this stage consumes.
type pipelineFile struct {
	Paths struct {
		ResultsDirectory string `json:"resultsDirectory"`
	} `json:"paths"`
	Settings struct {
		Clustering struct {
			TimeThresholdSeconds *float64 `json:"timeThresholdSeconds"`
			LocationThresholdKm  *float64 `json:"locationThresholdKm"`
		} `json:"clustering"`
	} `json:"settings"`
}

// ApplyPipelineFile overlays values from the pipeline's JSON config file onto
// the config. Threshold fields absent from the file keep the embedded
// defaults. Returns the names of the clustering fields that fell back to
// defaults so callers can log them.
func (c *Config) ApplyPipelineFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrPipelineConfig, path, err)
	}

	var pf pipelineFile
	if err := json.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrPipelineConfig, path, err)
	}

	if pf.Paths.ResultsDirectory != "" {
		c.Paths.ResultsDirectory = pf.Paths.ResultsDirectory
	}

	var defaulted []string
	if pf.Settings.Clustering.TimeThresholdSeconds != nil {
		c.Clustering.TimeThresholdSeconds = *pf.Settings.Clustering.TimeThresholdSeconds
	} else {
		defaulted = append(defaulted, "timeThresholdSeconds")
	}
	if pf.Settings.Clustering.LocationThresholdKm != nil {
		c.Clustering.LocationThresholdKm = *pf.Settings.Clustering.LocationThresholdKm
	} else {
		defaulted = append(defaulted, "locationThresholdKm")
	}

	return defaulted, nil
}

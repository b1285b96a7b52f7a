// Package config loads the optional mid2text YAML config file.
//
// The file lives at ~/.mid2text/config.yaml unless MID2TEXT_CONFIG points
// elsewhere. A missing file is not an error, every field has a default.
package config

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/jsphweid/mid2text/constants"
	"github.com/pkg/errors"
)

const (
	DefaultBaseDir    = ".mid2text"
	DefaultConfigFile = "config.yaml"
)

const (
	BackendBadger = "badger"
	BackendDynamo = "dynamodb"
)

type Config struct {
	// Relative folds out of range keys by octaves instead of failing
	Relative bool `yaml:"relative,omitempty"`

	// Copy puts the result on the terminal clipboard
	Copy bool `yaml:"copy,omitempty"`

	// Format is the create output format (raw, json, yaml)
	Format string `yaml:"format,omitempty"`

	Addr        string   `yaml:"addr,omitempty"`
	CORSOrigins []string `yaml:"cors_origins,omitempty"`

	Library Library `yaml:"library,omitempty"`

	path string
}

type Library struct {
	Backend string `yaml:"backend,omitempty"`

	// badger
	Dir string `yaml:"dir,omitempty"`

	// dynamodb
	Table    string `yaml:"table,omitempty"`
	Region   string `yaml:"region,omitempty"`
	Endpoint string `yaml:"endpoint,omitempty"`
}

func Default() *Config {
	return &Config{
		Format:      "raw",
		Addr:        constants.GetAddr(),
		CORSOrigins: []string{"*"},
		Library: Library{
			Backend: BackendBadger,
			Dir:     constants.GetLibraryDir(),
			Table:   "mid2text-songs",
			Region:  "us-east-1",
		},
	}
}

// DefaultPath returns the config path from the environment or the home
// directory.
func DefaultPath() (string, error) {
	if p := constants.GetConfigPath(); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get home directory")
	}
	return filepath.Join(home, DefaultBaseDir, DefaultConfigFile), nil
}

func Load() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads path over the defaults. Fields absent from the file keep
// their default.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()
	cfg.path = path

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Wrap(err, "failed to read config")
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config %s", path)
	}
	cfg.path = path
	return cfg, nil
}

func (c *Config) Save() error {
	if c.path == "" {
		return errors.New("config has no path")
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}
	if err := os.WriteFile(c.path, data, 0600); err != nil {
		return errors.Wrap(err, "failed to write config")
	}
	return nil
}

func (c *Config) Path() string {
	return c.path
}

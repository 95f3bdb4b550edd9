package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"github.com/weberc2/memfs/pkg/entry"
	"github.com/weberc2/memfs/pkg/filesystem"
	"github.com/weberc2/memfs/pkg/logger"
	. "github.com/weberc2/memfs/pkg/types"
	"gopkg.in/yaml.v2"
)

const (
	envVarPrefix = "MEMFS"
	appName      = "memfs"
)

type Config struct {
	BlockSize int    `envconfig:"MEMFS_BLOCK_SIZE" yaml:"blockSize"`
	Blocks    int    `envconfig:"MEMFS_BLOCKS"     yaml:"blocks"`
	Entries   int    `envconfig:"MEMFS_ENTRIES"    yaml:"entries"`
	NameMax   int    `envconfig:"MEMFS_NAME_MAX"   yaml:"nameMax"`
	LogLevel  string `envconfig:"MEMFS_LOG_LEVEL"  yaml:"logLevel"`
	Prompt    bool   `envconfig:"MEMFS_PROMPT"     yaml:"prompt"`
}

func DefaultConfig() Config {
	return Config{
		BlockSize: int(DefaultBlockSize),
		Blocks:    int(filesystem.DefaultBlocks),
		Entries:   int(filesystem.DefaultEntries),
		NameMax:   entry.DefaultNameMax,
		LogLevel:  "info",
		Prompt:    true,
	}
}

// LoadConfig layers, lowest precedence first: defaults, the YAML file at
// `configFile` (or MEMFS_CONFIG_FILE, or ~/.config/memfs.yaml) if it
// exists, then environment variables.
func LoadConfig(configFile string) (*Config, error) {
	if configFile == "" {
		configFile = os.Getenv(envVarPrefix + "_CONFIG_FILE")
	}
	if configFile == "" {
		if home, err := os.UserHomeDir(); err == nil {
			configFile = filepath.Join(home, ".config", appName+".yaml")
		}
	}

	c := DefaultConfig()
	if configFile != "" {
		data, err := os.ReadFile(configFile)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("reading config file: %w", err)
			}
		} else if err := yaml.UnmarshalStrict(data, &c); err != nil {
			return nil, fmt.Errorf("unmarshaling config file: %w", err)
		}
	}

	if err := envconfig.Process(envVarPrefix, &c); err != nil {
		return nil, fmt.Errorf("parsing environment variables: %w", err)
	}

	return &c, nil
}

func (c *Config) Validate() error {
	if y, e := func() (string, string) {
		if c.BlockSize < 1 {
			return "blockSize", "BLOCK_SIZE"
		}
		if c.Blocks < 1 {
			return "blocks", "BLOCKS"
		}
		if c.Entries < 1 {
			return "entries", "ENTRIES"
		}
		if c.NameMax < 1 {
			return "nameMax", "NAME_MAX"
		}
		if _, err := logger.ParseLevel(c.LogLevel); err != nil {
			return "logLevel", "LOG_LEVEL"
		}
		return "", ""
	}(); y != "" {
		return fmt.Errorf(
			"invalid configuration: %s / %s_%s",
			y,
			envVarPrefix,
			e,
		)
	}
	return nil
}

func (c *Config) Params(l *slog.Logger) filesystem.Params {
	return filesystem.Params{
		BlockSize: Byte(c.BlockSize),
		Blocks:    Block(c.Blocks),
		Entries:   Index(c.Entries),
		NameMax:   c.NameMax,
		Logger:    l,
	}
}

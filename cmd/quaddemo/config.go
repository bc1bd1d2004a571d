package main

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/hashkit/quadmap/shared"
)

const (
	opInsert = "insert"
	opSearch = "search"
	opRemove = "remove"
	opPrint  = "print"
)

var errUnknownOp = errors.New("unknown operation")

// defaultConfig replays the worked example: the keys 10, 20 and 15 share
// the start slot 0 of a 5 slot table, so inserting 5 grows the table.
const defaultConfig = `
capacity = 5

[log]
level = "info"
format = "console"

[[op]]
kind = "insert"
key = 10
value = 100

[[op]]
kind = "insert"
key = 20
value = 200

[[op]]
kind = "insert"
key = 15
value = 150

[[op]]
kind = "insert"
key = 5
value = 50

[[op]]
kind = "insert"
key = 3
value = 30

[[op]]
kind = "search"
key = 10

[[op]]
kind = "search"
key = 5

[[op]]
kind = "remove"
key = 15

[[op]]
kind = "search"
key = 15

[[op]]
kind = "print"
`

// LogConfig selects the zap level and encoding.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Op is one step of the operation script.
type Op struct {
	Kind  string `toml:"kind"`
	Key   int    `toml:"key"`
	Value int    `toml:"value"`
}

// Config describes the table to build and the operations to run on it.
type Config struct {
	Capacity int     `toml:"capacity"`
	MaxLoad  float32 `toml:"max-load"`
	// KeyOnly uses a set, which rejects duplicate keys instead of updating.
	KeyOnly bool `toml:"key-only"`
	// StrictProbing reports probe failures instead of growing the table.
	StrictProbing bool      `toml:"strict-probing"`
	Log           LogConfig `toml:"log"`
	Ops           []Op      `toml:"op"`
}

func parseConfig(data string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.Decode(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseConfigFromFile(file string) (*Config, error) {
	if file == "" {
		return parseConfig(defaultConfig)
	}

	cfg := &Config{}
	if _, err := toml.DecodeFile(file, cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate fills the defaults and checks the operation kinds.
func (c *Config) validate() error {
	if c.Capacity == 0 {
		c.Capacity = shared.DefaultSize
	}
	if c.MaxLoad == 0 {
		c.MaxLoad = shared.DefaultMaxLoad
	}
	if c.MaxLoad < 0 || c.MaxLoad >= 1 {
		return fmt.Errorf("max-load %f: %w", c.MaxLoad, shared.ErrOutOfRange)
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "console"
	}

	for i, op := range c.Ops {
		switch op.Kind {
		case opInsert, opSearch, opRemove, opPrint:
		default:
			return fmt.Errorf("op %d %q: %w", i, op.Kind, errUnknownOp)
		}
	}
	return nil
}

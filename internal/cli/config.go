package cli

import (
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/spf13/pflag"
)

// configSchema constrains config files. #Config is closed, so misspelled
// fields are rejected.
const configSchema = `
#Config: {
	algorithm?: "euclid" | "euclidean" | "stein" | "binary"
	format?:    "text" | "json"
	db?:        string & !=""
	verbose?:   bool
}
`

// Config holds defaults read from a CUE config file.
// Zero fields leave the flag defaults alone.
type Config struct {
	Algorithm string `json:"algorithm,omitempty"`
	Format    string `json:"format,omitempty"`
	Database  string `json:"db,omitempty"`
	Verbose   bool   `json:"verbose,omitempty"`
}

// LoadConfig reads, validates and decodes a CUE config file:
//
//	algorithm: "stein"
//	format:    "json"
//	db:        "numkit.db"
//	verbose:   true
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return ParseConfig(data, path)
}

// ParseConfig validates CUE source against the config schema. filename is
// used in error positions only.
func ParseConfig(data []byte, filename string) (*Config, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(configSchema, cue.Filename("numkit-config-schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("compiling config schema: %w", err)
	}

	value := ctx.CompileBytes(data, cue.Filename(filename))
	if err := value.Err(); err != nil {
		return nil, fmt.Errorf("compiling config: %w", err)
	}

	unified := schema.LookupPath(cue.ParsePath("#Config")).Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	var cfg Config
	if err := unified.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	return &cfg, nil
}

// Apply copies config values into opts for every flag the user did not set
// explicitly.
func (c *Config) Apply(opts *RootOptions, flags *pflag.FlagSet) {
	if c.Format != "" && !flags.Changed("format") {
		opts.Format = c.Format
	}
	if c.Database != "" && !flags.Changed("db") {
		opts.Database = c.Database
	}
	if c.Verbose && !flags.Changed("verbose") {
		opts.Verbose = true
	}
	if c.Algorithm != "" {
		opts.Algorithm = c.Algorithm
	}
}

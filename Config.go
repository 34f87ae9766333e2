package patrin

import (
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/rohanthewiz/serr"
)

// Config holds the construction-time options of an App. It is read once at
// startup and never mutated afterwards.
type Config struct {
	// TrimTrailingSlash trims exactly one trailing slash from patterns and
	// lookup paths alike, so "/a/" and "/a" become the same route. When off
	// (the default), a trailing slash is a distinct empty final segment and
	// "/a/" does not match "/a".
	TrimTrailingSlash bool `toml:"trim_trailing_slash"`

	// Debug logs each dispatch and the route table, and attaches underlying
	// error text to 500 problem bodies.
	Debug bool `toml:"debug"`

	// ProblemTypePrefix prefixes the "type" URI of problem-details bodies.
	ProblemTypePrefix string `toml:"problem_type_prefix"`
}

// DefaultConfig returns the configuration used when none is supplied.
func DefaultConfig() *Config {
	return &Config{
		ProblemTypePrefix: "https://patrin.io/problems",
	}
}

// LoadConfig reads a TOML configuration file. Values not present in the file
// keep their defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, serr.Wrap(err, "failed to read config file", "path", path)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, serr.Wrap(err, "failed to parse config file", "path", path)
	}

	return cfg, nil
}

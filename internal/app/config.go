package app

import (
	"encoding/json"
	"flag"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"life-sandbox/internal/core"
	"life-sandbox/internal/session"
)

// ErrBadOverride is returned for -set values that are not key=value or name
// an unknown key.
var ErrBadOverride = errors.New("invalid override")

// Config represents the command-line parameters for the application.
type Config struct {
	Sim   string  `json:"sim"`
	Rows  int     `json:"rows"`
	Cols  int     `json:"cols"`
	Scale int     `json:"scale"`
	TPS   int     `json:"tps"`
	Speed float64 `json:"speed"`
	Seed  int64   `json:"seed"`
	Paint string  `json:"paint"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:   "classic",
		Rows:  40,
		Cols:  40,
		Scale: 12,
		TPS:   60,
		Speed: 1.0,
		Seed:  42,
		Paint: "255,0,0",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run ("+strings.Join(core.Names(), ", ")+")")
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "grid columns")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Float64Var(&c.Speed, "speed", c.Speed, "generation rate multiplier")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.StringVar(&c.Paint, "paint", c.Paint, "blend paint color as r,g,b")
}

// LoadFile overlays the JSON document at path onto c. Fields missing from the
// file keep their current values.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to read file: %+v", path)
	}
	if err := json.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to unmarshal data from file: %+v", path)
	}
	return nil
}

// Apply sets a single field from a key=value override.
func (c *Config) Apply(kv string) error {
	key, value, ok := strings.Cut(kv, "=")
	if !ok {
		return errors.Wrapf(ErrBadOverride, "%q is not key=value", kv)
	}
	key = strings.ToLower(strings.TrimSpace(key))
	value = strings.TrimSpace(value)
	var err error
	switch key {
	case "sim":
		c.Sim = value
	case "rows":
		c.Rows, err = strconv.Atoi(value)
	case "cols":
		c.Cols, err = strconv.Atoi(value)
	case "scale":
		c.Scale, err = strconv.Atoi(value)
	case "tps":
		c.TPS, err = strconv.Atoi(value)
	case "speed":
		c.Speed, err = strconv.ParseFloat(value, 64)
	case "seed":
		c.Seed, err = strconv.ParseInt(value, 10, 64)
	case "paint":
		c.Paint = value
	default:
		return errors.Wrapf(ErrBadOverride, "unknown key %q", key)
	}
	if err != nil {
		return errors.Wrapf(ErrBadOverride, "%s: %v", key, err)
	}
	return nil
}

// ApplyAll applies overrides in order and stops at the first failure.
func (c *Config) ApplyAll(overrides []string) error {
	for _, kv := range overrides {
		if err := c.Apply(kv); err != nil {
			return err
		}
	}
	return nil
}

// NewSession builds a session from the configuration. The paint color is only
// applied to blend sessions.
func (c *Config) NewSession() (*session.Session, error) {
	kind, err := session.ParseKind(c.Sim)
	if err != nil {
		return nil, err
	}
	s, err := session.New(kind, c.Rows, c.Cols)
	if err != nil {
		return nil, err
	}
	s.SetSpeed(c.Speed)
	if kind == session.Blend && c.Paint != "" {
		if err := s.ParsePaintColor(c.Paint); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// KVList collects repeated key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

func (l *KVList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

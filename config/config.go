// Package config loads the YAML configuration of the visualizer and
// validates it with struct tags.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/jakhac/graph-algorithms/animate"
	"github.com/jakhac/graph-algorithms/builder"
	"github.com/jakhac/graph-algorithms/pathfinding"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the root of the configuration file.
type Config struct {
	Algorithm string        `yaml:"algorithm" validate:"required,algorithm"`
	Speed     string        `yaml:"speed" validate:"required,speed"`
	BaseDelay time.Duration `yaml:"base_delay" validate:"gt=0,lte=10s"`
	Instant   bool          `yaml:"instant"`
	Graph     GraphConfig   `yaml:"graph"`
	Log       LogConfig     `yaml:"log"`
	Metrics   MetricsConfig `yaml:"metrics"`
}

// GraphConfig selects the generated playground graph.
type GraphConfig struct {
	Kind          string `yaml:"kind" validate:"oneof=random lattice circle"`
	Size          string `yaml:"size" validate:"oneof=s m l"`
	Seed          int64  `yaml:"seed"` // 0 picks a seed from the clock
	DistanceCosts bool   `yaml:"distance_costs"`
	Width         int    `yaml:"width" validate:"min=40,max=1000"`
	Height        int    `yaml:"height" validate:"min=16,max=500"`
}

// LogConfig configures the slog handler.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// MetricsConfig configures the Prometheus endpoint; an empty Addr disables it.
type MetricsConfig struct {
	Addr string `yaml:"addr" validate:"omitempty,hostname_port"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("algorithm", func(fl validator.FieldLevel) bool {
		_, err := pathfinding.ParseAlgorithm(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("speed", func(fl validator.FieldLevel) bool {
		_, err := animate.SpeedPreset(fl.Field().String())
		return err == nil
	})

	return v
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Algorithm: pathfinding.Dijkstra.String(),
		Speed:     "medium",
		BaseDelay: animate.DefaultBaseDelay,
		Graph: GraphConfig{
			Kind:   "random",
			Size:   "m",
			Width:  builder.DefaultCanvasWidth,
			Height: builder.DefaultCanvasHeight,
		},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads and validates the file at path over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result. Unknown keys
// are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks every field.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}

	return nil
}

// AlgorithmValue returns the configured search.
func (c *Config) AlgorithmValue() pathfinding.Algorithm {
	a, _ := pathfinding.ParseAlgorithm(c.Algorithm)
	return a
}

// SpeedFactor returns the factor of the configured preset.
func (c *Config) SpeedFactor() float64 {
	f, err := animate.SpeedPreset(c.Speed)
	if err != nil {
		return 1.0
	}
	return f
}

// SizeValue returns the configured graph size.
func (c *Config) SizeValue() builder.Size {
	s, _ := builder.ParseSize(c.Graph.Size)
	return s
}

// formatValidationError reports the first failed field.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	for _, e := range verrs {
		field := e.Namespace()
		switch e.Tag() {
		case "required":
			return fmt.Errorf("%w: %s: field is required", ErrInvalid, field)
		case "min", "gt":
			return fmt.Errorf("%w: %s: must be at least %s", ErrInvalid, field, e.Param())
		case "max", "lte":
			return fmt.Errorf("%w: %s: must not exceed %s", ErrInvalid, field, e.Param())
		case "oneof":
			return fmt.Errorf("%w: %s: must be one of [%s], got %v", ErrInvalid, field, e.Param(), e.Value())
		default:
			return fmt.Errorf("%w: %s: validation failed (%s), got %v", ErrInvalid, field, e.Tag(), e.Value())
		}
	}

	return fmt.Errorf("%w: %w", ErrInvalid, err)
}

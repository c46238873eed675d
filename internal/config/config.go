package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/densecalc/matrix"
	"gopkg.in/yaml.v3"
)

// Environment variables read by applyEnvOverrides.
const (
	EnvLogLevel       = "MATCALC_LOG_LEVEL"
	EnvLogFormat      = "MATCALC_LOG_FORMAT"
	EnvPivotTolerance = "MATCALC_PIVOT_TOLERANCE"
)

// Config is the root configuration structure.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Numeric NumericConfig `yaml:"numeric"`
	Output  OutputConfig  `yaml:"output"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, text
	Output string `yaml:"output"` // stdout, stderr
}

// NumericConfig contains the numeric policy handed to the matrix kernels.
type NumericConfig struct {
	// PivotTolerance is the |pivot| threshold treated as zero; 0 means exact.
	PivotTolerance float64 `yaml:"pivot_tolerance"`
	// ValidateNaNInf rejects non-finite input values.
	ValidateNaNInf bool `yaml:"validate_nan_inf"`
}

// OutputConfig controls result rendering.
type OutputConfig struct {
	// Precision is the number of significant digits; 0 prints the shortest
	// representation that round-trips.
	Precision int `yaml:"precision"`
}

// Load reads configuration from a YAML file, applies environment overrides
// and validates the result. An empty path skips the file and starts from
// the defaults.
//
// Parameters:
//   - path: Path to the YAML configuration file, or ""
//
// Returns:
//   - *Config: Loaded and validated configuration
//   - error: If the file cannot be read, parsed, or fails validation
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, fmt.Errorf("applying environment overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Default returns the default configuration.
func Default() *Config {
	return defaultConfig()
}

// defaultConfig returns a Config with sensible defaults.
// Results go to stdout, so diagnostics default to stderr.
func defaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
		Numeric: NumericConfig{
			PivotTolerance: matrix.DefaultPivotTolerance,
			ValidateNaNInf: matrix.DefaultValidateNaNInf,
		},
		Output: OutputConfig{
			Precision: 0,
		},
	}
}

// applyEnvOverrides applies environment variable overrides to the configuration.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.Logging.Format = v
	}

	if v := os.Getenv(EnvPivotTolerance); v != "" {
		tol, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvPivotTolerance, v, err)
		}
		cfg.Numeric.PivotTolerance = tol
	}

	return nil
}

// Validate checks the configuration for errors.
//
// Returns:
//   - error: Description of every validation failure, or nil if valid
func (c *Config) Validate() error {
	var errs []string

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Sprintf("logging.level %q must be debug, info, warn, or error", c.Logging.Level))
	}

	switch strings.ToLower(c.Logging.Format) {
	case "json", "text":
	default:
		errs = append(errs, fmt.Sprintf("logging.format %q must be json or text", c.Logging.Format))
	}

	switch strings.ToLower(c.Logging.Output) {
	case "stdout", "stderr":
	default:
		errs = append(errs, fmt.Sprintf("logging.output %q must be stdout or stderr", c.Logging.Output))
	}

	tol := c.Numeric.PivotTolerance
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		errs = append(errs, "numeric.pivot_tolerance must be finite and >= 0")
	}

	if c.Output.Precision < 0 {
		errs = append(errs, "output.precision must be >= 0")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}

	return nil
}

// MatrixOptions translates the numeric section into matrix options.
// Call only on a validated Config: WithPivotTolerance panics on values
// Validate rejects.
func (c *Config) MatrixOptions() []matrix.Option {
	opts := []matrix.Option{matrix.WithPivotTolerance(c.Numeric.PivotTolerance)}
	if c.Numeric.ValidateNaNInf {
		opts = append(opts, matrix.WithValidateNaNInf())
	} else {
		opts = append(opts, matrix.WithNoValidateNaNInf())
	}

	return opts
}

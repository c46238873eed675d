// Package config handles loading and validating matcalc configuration.
//
// This package manages:
//   - Loading configuration from YAML files
//   - Overriding with environment variables
//   - Validation of every field
//   - Default value handling (an empty path yields the defaults)
//
// Usage:
//
//	cfg, err := config.Load("configs/matcalc.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	opts := cfg.MatrixOptions()
//
// Environment overrides:
//   - MATCALC_LOG_LEVEL       logging.level
//   - MATCALC_LOG_FORMAT      logging.format
//   - MATCALC_PIVOT_TOLERANCE numeric.pivot_tolerance
package config

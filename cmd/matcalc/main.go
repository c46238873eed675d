// matcalc - dense matrix calculator
//
// matcalc reads two matrices A and B and prints A+B, A−B, A·B, det(A),
// A⁻¹, B⁻¹, A·B⁻¹ and B·A⁻¹. Input is either a text stream on stdin
// ("rows cols v00 v01 ..." twice) or a YAML file given with -input.
//
// Usage:
//
//	matcalc [-config matcalc.yaml] [-input operands.yaml] [-version]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/densecalc/internal/config"
	"github.com/katalvlaran/densecalc/internal/logging"
	"github.com/katalvlaran/densecalc/internal/session"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"     // Semantic version (e.g., "1.0.0")
	commit  = "unknown" // Git commit hash
	date    = "unknown" // Build date
)

// envConfigPath names the config file when -config is not given.
const envConfigPath = "MATCALC_CONFIG"

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run is the actual application logic, separated from main for testability.
//
// Parameters:
//   - args: command-line arguments without the program name
//   - stdin: text input when -input is empty
//   - stdout: results
//   - stderr: diagnostics (unless logging.output is stdout)
//
// Returns:
//   - error: nil when the session ran to completion, even if some steps
//     failed; those are reported in the output and the log.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("matcalc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to the YAML configuration file (env "+envConfigPath+")")
	inputPath := fs.String("input", "", "path to a YAML input document with keys a and b; stdin text when empty")
	showVersion := fs.Bool("version", false, "print version information and exit")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		_, err := fmt.Fprintf(stdout, "matcalc %s (commit %s, built %s)\n", version, commit, date)

		return err
	}

	path := getConfigPath(*configPath)
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logOut := stderr
	if strings.EqualFold(cfg.Logging.Output, "stdout") {
		logOut = stdout
	}
	log := logging.NewWithWriter(cfg.Logging, version, logOut)
	log.Debug("configuration loaded",
		"path", path,
		"pivot_tolerance", cfg.Numeric.PivotTolerance,
		"validate_nan_inf", cfg.Numeric.ValidateNaNInf,
	)

	var in session.Input
	if *inputPath != "" {
		in, err = session.LoadInput(*inputPath, cfg.MatrixOptions()...)
	} else {
		in, err = session.DecodeInput(stdin, cfg.MatrixOptions()...)
	}
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	report, err := session.Run(in, stdout,
		session.WithLogger(log),
		session.WithMatrixOptions(cfg.MatrixOptions()...),
		session.WithPrecision(cfg.Output.Precision),
	)
	if err != nil {
		return fmt.Errorf("writing results: %w", err)
	}
	log.Info("session complete",
		"steps", report.Steps,
		"recoverable", report.Recoverable,
		"fatal", report.Fatal,
	)

	return nil
}

// getConfigPath returns the configuration file path: the flag value, then
// MATCALC_CONFIG, then "" (built-in defaults).
func getConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}

	return os.Getenv(envConfigPath)
}

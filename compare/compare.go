// Package compare runs every dispersion test on one pair of samples.
package compare

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/sartorproj/godispersion/dispersion"
	"github.com/sartorproj/godispersion/sample"
)

// ErrNilSample is returned when Run is given a nil sample.
var ErrNilSample = errors.New("nil sample")

// Config holds configuration for a comparison.
type Config struct {
	LargerVarXAlt bool        // Alternative for the F tests: var(x) > var(y) (default: false)
	Center        string      // Count Five centering: "mean" or "median" (default: "median")
	SkipF1        bool        // Do not run the F1 test
	Alpha         float64     // Significance level used by Report.Rejects (default: 0.05)
	Logger        *zap.Logger // Debug output for each test; nil disables logging
}

// DefaultConfig returns the default comparison configuration.
func DefaultConfig() *Config {
	return &Config{
		Center: string(sample.CenterMedian),
		Alpha:  0.05,
	}
}

// Report collects the results of a comparison. A test that failed leaves its
// field nil; the reason is part of the error returned by Run.
type Report struct {
	NameX string
	NameY string
	NX    int
	NY    int
	Alpha float64

	F         *dispersion.FTestResult
	F1        *dispersion.F1TestResult
	CountFive *dispersion.CountFiveResult
}

// Rejects reports whether any completed test rejects equal dispersion: the F
// tests at Alpha, Count Five by its extreme-count rule.
func (r *Report) Rejects() bool {
	if r.F != nil && r.F.Reject(r.Alpha) {
		return true
	}
	if r.F1 != nil && r.F1.Reject(r.Alpha) {
		return true
	}
	return r.CountFive != nil && r.CountFive.Rejects()
}

// Run performs the F-test, the F1 test and the Count Five test on x and y.
//
// Tests are independent: if one fails, the others still run and their
// results are kept in the report. Failures are combined into the returned
// error. Run returns a nil report only when the configuration is invalid or
// every test failed.
func Run(x, y *sample.Sample, config *Config) (*Report, error) {
	if x == nil || y == nil {
		return nil, ErrNilSample
	}
	if config == nil {
		config = DefaultConfig()
	}
	if _, err := sample.ParseCenter(config.Center); err != nil {
		return nil, err
	}

	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(
		zap.String("x", nameOr(x, "x")),
		zap.String("y", nameOr(y, "y")),
		zap.Int("nx", x.Len()),
		zap.Int("ny", y.Len()),
	)

	report := &Report{
		NameX: x.Name,
		NameY: y.Name,
		NX:    x.Len(),
		NY:    y.Len(),
		Alpha: config.Alpha,
	}

	var errs error

	if f, err := dispersion.FTest(x.Values, y.Values, config.LargerVarXAlt); err != nil {
		logger.Warn("f-test failed", zap.Error(err))
		errs = multierr.Append(errs, fmt.Errorf("f-test: %w", err))
	} else {
		report.F = f
		logger.Debug("f-test",
			zap.Float64("f", f.FValue),
			zap.Float64("p", f.PValue),
			zap.Float64("df_num", f.DFNum),
			zap.Float64("df_den", f.DFDen),
			zap.Bool("larger_var_x_alt", f.LargerVarXAlt),
		)
	}

	if !config.SkipF1 {
		if f1, err := dispersion.F1Test(x.Values, y.Values, config.LargerVarXAlt); err != nil {
			logger.Warn("f1-test failed", zap.Error(err))
			errs = multierr.Append(errs, fmt.Errorf("f1-test: %w", err))
		} else {
			report.F1 = f1
			logger.Debug("f1-test",
				zap.Float64("f", f1.FValue),
				zap.Float64("p", f1.PValue),
				zap.Float64("rx", f1.RX),
				zap.Float64("ry", f1.RY),
				zap.Float64("kurtosis_ratio", f1.KurtosisRatio),
			)
		}
	}

	if c5, err := dispersion.CountFive(x.Values, y.Values, config.Center); err != nil {
		logger.Warn("count five failed", zap.Error(err))
		errs = multierr.Append(errs, fmt.Errorf("count five: %w", err))
	} else {
		report.CountFive = c5
		logger.Debug("count five",
			zap.Int("extreme_x", c5.ExtremeX),
			zap.Int("extreme_y", c5.ExtremeY),
			zap.String("center", c5.Center.String()),
			zap.Bool("rejects", c5.Rejects()),
		)
	}

	if report.F == nil && report.F1 == nil && report.CountFive == nil {
		return nil, errs
	}
	return report, errs
}

func nameOr(s *sample.Sample, fallback string) string {
	if s.Name != "" {
		return s.Name
	}
	return fallback
}

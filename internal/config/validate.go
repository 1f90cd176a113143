package config

import (
	"errors"
	"fmt"

	"github.com/SUBOMI123/Simple-Scheduling-Simulator/internal/report"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks cfg and reports every problem at once.
func Validate(cfg *Config) error {
	var errs []error

	if cfg.InputPath == "" && !cfg.Serve {
		errs = append(errs, fmt.Errorf("%w: must give a scheduling file to process", ErrInvalidArgs))
	}

	if cfg.Quantum <= 0 {
		errs = append(errs, ValidationError{
			Field:   "quantum",
			Message: fmt.Sprintf("must be positive, got %d", cfg.Quantum),
		})
	}

	if _, err := report.ParseFormat(cfg.Format); err != nil {
		errs = append(errs, ValidationError{
			Field:   "format",
			Message: err.Error(),
		})
	}

	if cfg.Serve && cfg.ListenAddr == "" {
		errs = append(errs, ValidationError{
			Field:   "listen",
			Message: "listen address is required with -serve",
		})
	}

	return errors.Join(errs...)
}

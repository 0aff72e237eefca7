package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/arloliu/rzero/errs"
	"github.com/arloliu/rzero/internal/collision"
)

// Map overlays dto on Default and validates each field.
func Map(path string, dto YAMLConfig) (Config, error) {
	cfg := Default()

	if dto.Window != nil {
		if *dto.Window < MinWindow {
			return Config{}, invalidField(path, "window", fmt.Sprintf("must be at least %d, got %d", MinWindow, *dto.Window))
		}
		cfg.Window = *dto.Window
	}

	if dto.SerialInterval != nil {
		v := *dto.SerialInterval
		if v <= 0 || math.IsInf(v, 0) || math.IsNaN(v) {
			return Config{}, invalidField(path, "serial_interval", fmt.Sprintf("must be a positive number, got %v", v))
		}
		cfg.SerialInterval = v
	}

	if dto.Region != nil {
		cfg.Region = strings.TrimSpace(*dto.Region)
	}

	if dto.Subregions != nil {
		tracker := collision.NewTracker()
		for i, name := range dto.Subregions {
			name = strings.TrimSpace(name)
			if err := tracker.Track(name); err != nil {
				return Config{}, invalidFieldErr(path, fmt.Sprintf("subregions[%d]", i), err)
			}
		}
		if tracker.Count() == 0 {
			return Config{}, invalidField(path, "subregions", "at least one subregion is required")
		}
		cfg.Subregions = append([]string(nil), tracker.Names()...)
	}

	if dto.IncludeTotal != nil {
		cfg.IncludeTotal = *dto.IncludeTotal
	}
	if cfg.IncludeTotal && cfg.Region == "" {
		return Config{}, invalidField(path, "region", "region is required when include_total is set")
	}

	if dto.DateColumn != nil {
		col := strings.TrimSpace(*dto.DateColumn)
		if col == "" {
			return Config{}, invalidField(path, "date_column", "cannot be empty")
		}
		cfg.DateColumn = col
	}

	if dto.DateLayout != nil && strings.TrimSpace(*dto.DateLayout) != "" {
		cfg.DateLayout = *dto.DateLayout
	}

	if dto.Workers != nil {
		if *dto.Workers < 1 {
			return Config{}, invalidField(path, "workers", fmt.Sprintf("must be at least 1, got %d", *dto.Workers))
		}
		cfg.Workers = *dto.Workers
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

func invalidField(path, field, msg string) error {
	return fmt.Errorf("config %s: field %s: %s: %w", path, field, msg, errs.ErrInvalidConfig)
}

func invalidFieldErr(path, field string, cause error) error {
	return fmt.Errorf("config %s: field %s: %w: %w", path, field, cause, errs.ErrInvalidConfig)
}

package seed

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Defaults is the data created on an empty database
type Defaults struct {
	Corps         []string
	SemesterStart string // YYYY-MM-DD, empty to skip
}

// CorpsStore creates a corps by name unless it exists
type CorpsStore interface {
	EnsureExists(ctx context.Context, name string) (bool, error)
}

// SemesterStore stores a semester start unless one is set
type SemesterStore interface {
	EnsureDefault(ctx context.Context, date time.Time) (bool, error)
}

// CreateDefaultData creates the configured corps and semester start if they don't exist.
// Failures are collected so that one bad entry does not stop the rest.
func CreateDefaultData(ctx context.Context, corps CorpsStore, semester SemesterStore, defaults Defaults, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data (Corps/Semester start)...")
	var finalErr error

	for _, name := range defaults.Corps {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		created, err := corps.EnsureExists(ctx, name)
		if err != nil {
			lgr.Error().Err(err).Str("corps", name).Msg("Error creating default corps")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if created {
			lgr.Info().Str("corps", name).Msg("Default corps created")
		}
	}

	if defaults.SemesterStart != "" {
		date, err := time.Parse("2006-01-02", defaults.SemesterStart)
		if err != nil {
			finalErr = errors.Join(finalErr, fmt.Errorf("invalid default semester start: %w", err))
		} else if created, err := semester.EnsureDefault(ctx, date); err != nil {
			lgr.Error().Err(err).Msg("Error storing default semester start")
			finalErr = errors.Join(finalErr, err)
		} else if created {
			lgr.Info().Str("date", defaults.SemesterStart).Msg("Default semester start stored")
		}
	}

	if finalErr != nil {
		lgr.Warn().Err(finalErr).Msg("Default data creation finished with errors")
	} else {
		lgr.Info().Msg("Default data check/creation finished")
	}
	return finalErr
}

package commands

import (
	"time"

	"vet-scheduler/internal/infra"
	"vet-scheduler/internal/pkg/config"
	"vet-scheduler/internal/pkg/errs"
	"vet-scheduler/internal/pkg/metrics"
)

type PetAmbiguityPolicy string

const (
	PetPolicyReject     PetAmbiguityPolicy = "reject"
	PetPolicyFirstMatch PetAmbiguityPolicy = "first_match"
)

type Settings struct {
	Location          *time.Location
	StoreTimeout      time.Duration
	PetPolicy         PetAmbiguityPolicy
	OptimisticLocking bool
	CASRetries        int
}

func NewSettings(cfg config.SchedulingConfig) (Settings, error) {
	loc, err := cfg.Location()
	if err != nil {
		return Settings{}, err
	}
	return Settings{
		Location:          loc,
		StoreTimeout:      cfg.StoreTimeout,
		PetPolicy:         PetAmbiguityPolicy(cfg.PetAmbiguityPolicy),
		OptimisticLocking: cfg.OptimisticLocking,
		CASRetries:        cfg.CASRetries,
	}, nil
}

func (s Settings) location() *time.Location {
	if s.Location == nil {
		return time.UTC
	}
	return s.Location
}

func (s Settings) storeTimeout() time.Duration {
	if s.StoreTimeout <= 0 {
		return 5 * time.Second
	}
	return s.StoreTimeout
}

// resultLabel names the outcome of a command for metrics.
func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errs.Is(err, errs.ErrValidation):
		return "invalid"
	case errs.Is(err, errs.ErrNotFound):
		return "not_found"
	case errs.Is(err, errs.ErrConflict):
		return "conflict"
	case errs.Is(err, errs.ErrStoreTimeout):
		return "timeout"
	default:
		return "error"
	}
}

func observeStoreError(m *metrics.SchedulingMetrics, err error) {
	if kind, ok := infra.KindOf(err); ok {
		m.ObserveStoreError(string(kind))
	}
}

package errs

import "errors"

// Error classes shared by the usecase and handler layers. Concrete errors are
// marked with one of these so callers can branch on the class alone.
var (
	ErrValidation       = errors.New("validation error")
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("conflict")
	ErrStoreTimeout     = errors.New("store timeout")
	ErrStoreUnavailable = errors.New("store unavailable")
)

// Scheduling errors
var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrPetNotFound         = errors.New("no pet with this name for this owner")
	ErrClinicNotFound      = errors.New("clinic not found")
	ErrAmbiguousPet        = errors.New("more than one pet with this name for this owner")
	ErrVersionConflict     = errors.New("appointment was modified concurrently")
)

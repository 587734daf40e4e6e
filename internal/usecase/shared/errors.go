package shared

import (
	"context"
	"errors"

	"vet-scheduler/internal/infra"
	"vet-scheduler/internal/pkg/errs"
)

// TranslateStoreError marks a gateway error with its error class. A NOT_FOUND
// kind is also marked with notFound when it is non-nil. Errors that carry no
// repository kind pass through unchanged.
func TranslateStoreError(err error, notFound error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return errs.Mark(err, errs.ErrStoreTimeout)
	}

	kind, ok := infra.KindOf(err)
	if !ok {
		return err
	}
	switch kind {
	case infra.KindNotFound:
		if notFound != nil {
			err = errs.Mark(err, notFound)
		}
		return errs.Mark(err, errs.ErrNotFound)
	case infra.KindTimeout:
		return errs.Mark(err, errs.ErrStoreTimeout)
	case infra.KindConflict:
		return errs.Mark(err, errs.ErrConflict)
	default:
		return errs.Mark(err, errs.ErrStoreUnavailable)
	}
}

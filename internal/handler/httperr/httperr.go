package httperr

import (
	"errors"
	"net/http"

	"vet-scheduler/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// Response is the body of every failed request.
type Response struct {
	Status  int    `json:"-"`
	Success bool   `json:"success"`
	Message string `json:"message"`
	Detail  any    `json:"detail,omitempty"`
}

// AbortWithError records err on the context for logging and writes the failure body.
// A nil err is recorded as msg.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errors.New(msg)
	}

	resp := Response{Status: status, Message: msg, Detail: detail}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort writes a failure body for a use-case error, choosing the status from
// its error class.
func Abort(c *gin.Context, err error) {
	status, msg := FromError(err)
	AbortWithError(c, status, err, msg, nil)
}

// FromError maps an error class to an HTTP status and a message safe to show.
// Unclassified errors are internal.
func FromError(err error) (int, string) {
	switch {
	case errs.Is(err, errs.ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errs.Is(err, errs.ErrNotFound):
		return http.StatusNotFound, notFoundMessage(err)
	case errs.Is(err, errs.ErrConflict):
		return http.StatusConflict, errs.ErrVersionConflict.Error()
	case errs.Is(err, errs.ErrStoreTimeout):
		return http.StatusServiceUnavailable, "The store did not answer in time, try again"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

func notFoundMessage(err error) string {
	for _, sentinel := range []error{
		errs.ErrAppointmentNotFound,
		errs.ErrPetNotFound,
		errs.ErrClinicNotFound,
	} {
		if errs.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return "Not found"
}

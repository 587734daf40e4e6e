package api

import (
	"net/http"
	"time"

	reqdto "vet-scheduler/internal/handler/dto/request"
	resdto "vet-scheduler/internal/handler/dto/response"
	"vet-scheduler/internal/handler/httperr"
	"vet-scheduler/internal/handler/middleware"
	"vet-scheduler/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CalendarHandler struct {
	q queries.AppointmentQueries
}

func NewCalendarHandler(q queries.AppointmentQueries) *CalendarHandler {
	return &CalendarHandler{q: q}
}

// @Summary My calendar
// @Description Confirmed appointments between two days, laid out in overlap lanes
// @Tags calendario
// @Produce json
// @Security BearerAuth
// @Param desde query string true "First day, YYYY-MM-DD"
// @Param hasta query string true "Last day, YYYY-MM-DD"
// @Success 200 {array} resdto.CalendarItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/calendario [get]
func (h *CalendarHandler) Mine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	from, to, ok := window(c)
	if !ok {
		return
	}
	items, err := h.q.CalendarForOwner(c.Request.Context(), userID, from, to)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	writeItems(c, items)
}

// @Summary Clinic calendar
// @Tags calendario
// @Produce json
// @Security BearerAuth
// @Param id path int true "Clinic ID"
// @Param desde query string true "First day, YYYY-MM-DD"
// @Param hasta query string true "Last day, YYYY-MM-DD"
// @Success 200 {array} resdto.CalendarItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/clinicas/{id}/calendario [get]
func (h *CalendarHandler) Clinic(c *gin.Context) {
	clinicID, ok := pathID(c)
	if !ok || !authorizeClinic(c, clinicID) {
		return
	}
	from, to, ok := window(c)
	if !ok {
		return
	}
	items, err := h.q.CalendarForClinic(c.Request.Context(), clinicID, from, to)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	writeItems(c, items)
}

func window(c *gin.Context) (time.Time, time.Time, bool) {
	var q reqdto.DateWindowQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return time.Time{}, time.Time{}, false
	}
	from, to, err := q.ToWindow()
	if err != nil {
		httperr.Abort(c, err)
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}

func writeItems(c *gin.Context, items []queries.CalendarItem) {
	res, err := resdto.FromCalendarItems(items)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

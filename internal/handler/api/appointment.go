package api

import (
	"net/http"
	"strconv"

	"vet-scheduler/internal/domain/user"
	reqdto "vet-scheduler/internal/handler/dto/request"
	resdto "vet-scheduler/internal/handler/dto/response"
	"vet-scheduler/internal/handler/httperr"
	"vet-scheduler/internal/handler/middleware"
	"vet-scheduler/internal/usecase/commands"
	"vet-scheduler/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	booking commands.BookingCommands
	cmds    commands.AppointmentCommands
	q       queries.AppointmentQueries
}

func NewAppointmentHandler(booking commands.BookingCommands, cmds commands.AppointmentCommands, q queries.AppointmentQueries) *AppointmentHandler {
	return &AppointmentHandler{booking: booking, cmds: cmds, q: q}
}

// @Summary Book an appointment
// @Description Resolve the pet and service by name and store a pending appointment
// @Tags citas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param X-Client-Channel header string false "mobile or web"
// @Param request body reqdto.CreateAppointmentRequest true "Booking request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/citas [post]
func (h *AppointmentHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.booking.CreateBooking(c.Request.Context(), req.ToInput(userID, middleware.GetOrigin(c)))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBookingResult(result))
}

// @Summary Change appointment status
// @Description Apply a status label; confirming requires horario_confirmado as YYYY-MM-DDTHH:MM local time
// @Tags citas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Appointment ID"
// @Param request body reqdto.UpdateStatusRequest true "Status change"
// @Success 200 {object} resdto.TransitionResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/citas/{id}/estado [patch]
// @Router /api/citas/{id}/estado [put]
func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "estado is required", nil)
		return
	}
	scope, ok := requireClinicScope(c)
	if !ok {
		return
	}

	result, err := h.cmds.Transition(c.Request.Context(), req.ToInput(id, scope))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTransitionResult(result))
}

// @Summary List my appointments
// @Tags citas
// @Produce json
// @Security BearerAuth
// @Param desde query string false "First preferred date, YYYY-MM-DD"
// @Param hasta query string false "Last preferred date, YYYY-MM-DD"
// @Success 200 {array} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/citas [get]
func (h *AppointmentHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	rng, ok := dateRange(c)
	if !ok {
		return
	}
	views, err := h.q.ListForOwner(c.Request.Context(), userID, rng)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	writeViews(c, views)
}

// @Summary List a clinic's appointments
// @Tags citas
// @Produce json
// @Security BearerAuth
// @Param id path int true "Clinic ID"
// @Param desde query string false "First preferred date, YYYY-MM-DD"
// @Param hasta query string false "Last preferred date, YYYY-MM-DD"
// @Success 200 {array} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/clinicas/{id}/citas [get]
func (h *AppointmentHandler) ListClinic(c *gin.Context) {
	clinicID, ok := pathID(c)
	if !ok || !authorizeClinic(c, clinicID) {
		return
	}
	rng, ok := dateRange(c)
	if !ok {
		return
	}
	views, err := h.q.ListForClinic(c.Request.Context(), clinicID, rng)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	writeViews(c, views)
}

// @Summary Delete an appointment
// @Tags citas
// @Security BearerAuth
// @Param id path int true "Appointment ID"
// @Success 204
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/citas/{id} [delete]
func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func writeViews(c *gin.Context, views []queries.AppointmentView) {
	res, err := resdto.FromAppointmentViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return 0, false
	}
	return id, true
}

func dateRange(c *gin.Context) (queries.DateRange, bool) {
	var q reqdto.DateWindowQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return queries.DateRange{}, false
	}
	rng, err := q.ToRange()
	if err != nil {
		httperr.Abort(c, err)
		return queries.DateRange{}, false
	}
	return rng, true
}

// clinicScope returns the clinic a staff caller is bound to. Admins are
// unscoped; any other caller without a clinic claim gets ok=false.
func clinicScope(c *gin.Context) (scope *int64, ok bool) {
	if role, _ := middleware.GetUserRole(c); role.AtLeast(user.RoleAdmin) {
		return nil, true
	}
	if id, found := middleware.GetClinicID(c); found {
		return &id, true
	}
	return nil, false
}

// requireClinicScope aborts with 403 when the caller is not bound to a clinic.
func requireClinicScope(c *gin.Context) (*int64, bool) {
	scope, ok := clinicScope(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusForbidden, nil, "Token is not bound to a clinic", nil)
	}
	return scope, ok
}

func authorizeClinic(c *gin.Context, clinicID int64) bool {
	scope, ok := requireClinicScope(c)
	if !ok {
		return false
	}
	if scope != nil && *scope != clinicID {
		httperr.AbortWithError(c, http.StatusForbidden, nil, "Clinic outside of your scope", nil)
		return false
	}
	return true
}

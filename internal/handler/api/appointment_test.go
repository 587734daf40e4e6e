//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"vet-scheduler/internal/domain/appointment"
	"vet-scheduler/internal/domain/user"
	"vet-scheduler/internal/handler/api"
	"vet-scheduler/internal/handler/middleware"
	resdto "vet-scheduler/internal/handler/dto/response"
	"vet-scheduler/internal/pkg/errs"
	"vet-scheduler/internal/pkg/ptr"
	"vet-scheduler/internal/usecase/commands"
	"vet-scheduler/internal/usecase/queries"
	"vet-scheduler/tests/common/builder"
	"vet-scheduler/tests/common/httptest"
	"vet-scheduler/tests/common/testutil"
	commandsmock "vet-scheduler/tests/mock/commands"
	queriesmock "vet-scheduler/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AppointmentHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockBooking *commandsmock.MockBookingCommands
	mockCmds    *commandsmock.MockAppointmentCommands
	mockQueries *queriesmock.MockAppointmentQueries

	userID uuid.UUID
	role   user.Role
	clinic *int64
}

func (s *AppointmentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockBooking = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockCmds = commandsmock.NewMockAppointmentCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAppointmentQueries(s.mockCtrl)

	s.userID = uuid.New()
	s.role = user.RoleOwner
	s.clinic = nil

	// Stand-in for RequireAuth: the identity comes from the suite fields.
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Access token required"})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", s.role)
		if s.clinic != nil {
			c.Set("clinic_id", *s.clinic)
		}
		c.Next()
	}

	h := api.NewAppointmentHandler(s.mockBooking, s.mockCmds, s.mockQueries)
	cal := api.NewCalendarHandler(s.mockQueries)

	g := s.router.Group("/api", authMiddleware)
	g.POST("/citas", h.Create)
	g.GET("/citas", h.ListMine)
	g.PATCH("/citas/:id/estado", h.UpdateStatus)
	g.PUT("/citas/:id/estado", h.UpdateStatus)
	g.DELETE("/citas/:id", h.Delete)
	g.GET("/clinicas/:id/citas", h.ListClinic)
	g.GET("/calendario", cal.Mine)
	g.GET("/clinicas/:id/calendario", cal.Clinic)
}

func (s *AppointmentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAppointmentHandlerSuite(t *testing.T) {
	suite.Run(t, new(AppointmentHandlerTestSuite))
}

func (s *AppointmentHandlerTestSuite) asStaff(clinicID int64) {
	s.role = user.RoleStaff
	s.clinic = &clinicID
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *AppointmentHandlerTestSuite) TestCreate() {
	url := "/api/citas"
	reqBody := builder.NewAppointmentBuilder().BuildCreateRequestDTO()

	s.Run("success: 201 with the new id and the caller as owner", func() {
		s.mockBooking.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in commands.CreateBookingInput) (*commands.BookingResult, error) {
				s.Equal(s.userID, in.OwnerID)
				s.Equal(int64(7), in.ClinicID)
				s.Equal("Luna", in.PetName)
				s.Equal(appointment.OriginMobile, in.Origin)
				return &commands.BookingResult{ID: 101}, nil
			})

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token",
			map[string]string{middleware.HeaderClientChannel: "mobile"})

		var body resdto.CreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.True(body.Success)
		s.Equal(int64(101), body.Data.ID)
	})

	s.Run("success: without a channel header the booking comes from the web", func() {
		s.mockBooking.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in commands.CreateBookingInput) (*commands.BookingResult, error) {
				s.Equal(appointment.OriginWeb, in.Origin)
				return &commands.BookingResult{ID: 102}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: 400 on a body that is not JSON", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, "not-an-object", "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	failures := []struct {
		name       string
		mutate     func(map[string]any)
		err        error
		expectCode int
		expectMsg  string
	}{
		{
			name:       "missing mascota_nombre",
			mutate:     testutil.Field("mascota_nombre", nil),
			err:        errs.Mark(commands.ErrPetNameRequired, errs.ErrValidation),
			expectCode: http.StatusBadRequest,
			expectMsg:  "mascota_nombre is required",
		},
		{
			name:       "unknown pet",
			mutate:     testutil.Field("mascota_nombre", "Rocky"),
			err:        errs.Mark(errs.ErrPetNotFound, errs.ErrNotFound),
			expectCode: http.StatusNotFound,
			expectMsg:  errs.ErrPetNotFound.Error(),
		},
		{
			name:       "unknown clinic",
			mutate:     testutil.Field("veterinaria_id", 999),
			err:        errs.Mark(errs.ErrClinicNotFound, errs.ErrNotFound),
			expectCode: http.StatusNotFound,
			expectMsg:  errs.ErrClinicNotFound.Error(),
		},
		{
			name:       "store deadline",
			err:        errs.Mark(errs.New("context deadline exceeded"), errs.ErrStoreTimeout),
			expectCode: http.StatusServiceUnavailable,
		},
		{
			name:       "store down",
			err:        errs.Mark(errs.New("dial tcp: connection refused"), errs.ErrStoreUnavailable),
			expectCode: http.StatusInternalServerError,
			expectMsg:  "Internal server error",
		},
	}
	for _, tc := range failures {
		s.Run("error: "+tc.name, func() {
			s.mockBooking.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(nil, tc.err)

			body := testutil.DtoMap(s.T(), reqBody)
			if tc.mutate != nil {
				body = testutil.DtoMap(s.T(), reqBody, tc.mutate)
			}
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
		})
	}
}

// ================================================================================
// TestUpdateStatus
// ================================================================================

func (s *AppointmentHandlerTestSuite) TestUpdateStatus() {
	s.Run("success: confirms with the local time and the caller's clinic scope", func() {
		s.asStaff(7)
		s.mockCmds.EXPECT().Transition(gomock.Any(), commands.TransitionInput{
			ID:            42,
			Label:         "Confirmada",
			ConfirmedTime: ptr.Of("2025-03-12T09:30"),
			ClinicScope:   ptr.Of(int64(7)),
		}).Return(&commands.TransitionResult{ID: 42, Message: "Estado actualizado a Confirmada"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/api/citas/42/estado",
			map[string]any{"estado": "Confirmada", "horario_confirmado": "2025-03-12T09:30"}, "bearer-token")

		var body resdto.TransitionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(resdto.TransitionResponse{ID: 42, Message: "Estado actualizado a Confirmada"}, body)
	})

	s.Run("success: PUT is accepted and admins are unscoped", func() {
		s.role = user.RoleAdmin
		s.clinic = ptr.Of(int64(7))
		s.mockCmds.EXPECT().Transition(gomock.Any(), commands.TransitionInput{ID: 42, Label: "Terminada"}).
			Return(&commands.TransitionResult{ID: 42, Message: "Estado actualizado a Terminada"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/citas/42/estado",
			map[string]any{"estado": "Terminada"}, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 403 for staff without a clinic claim", func() {
		s.role = user.RoleStaff
		s.clinic = nil
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/api/citas/42/estado",
			map[string]any{"estado": "Terminada"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Token is not bound to a clinic")
	})

	s.Run("error: 400 on a non-numeric id", func() {
		s.role = user.RoleAdmin
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/api/citas/abc/estado",
			map[string]any{"estado": "Rechazada"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 400 without estado", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/api/citas/42/estado",
			map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "estado is required")
	})

	failures := []struct {
		name       string
		err        error
		expectCode int
		expectMsg  string
	}{
		{"invalid transition", errs.Mark(appointment.ErrIllegalTransition, errs.ErrValidation), http.StatusBadRequest, appointment.ErrIllegalTransition.Error()},
		{"missing appointment", errs.Mark(errs.ErrAppointmentNotFound, errs.ErrNotFound), http.StatusNotFound, errs.ErrAppointmentNotFound.Error()},
		{"concurrent update", errs.Mark(errs.ErrVersionConflict, errs.ErrConflict), http.StatusConflict, errs.ErrVersionConflict.Error()},
	}
	for _, tc := range failures {
		s.Run("error: "+tc.name, func() {
			s.mockCmds.EXPECT().Transition(gomock.Any(), gomock.Any()).Return(nil, tc.err)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/api/citas/42/estado",
				map[string]any{"estado": "Terminada"}, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
		})
	}
}

// ================================================================================
// TestList
// ================================================================================

func (s *AppointmentHandlerTestSuite) TestListMine() {
	views := []queries.AppointmentView{
		{
			ID:             1,
			Mascota:        "Luna",
			Servicio:       "Vacunación",
			FechaPreferida: "10/03/2025",
			Estado:         "Pendiente",
			Detalles:       queries.AppointmentDetails{Telefono: "3001234567", Motivo: "Revisión anual"},
		},
		{
			ID:                2,
			Mascota:           "Max",
			FechaPreferida:    "11/03/2025",
			HorarioConfirmado: ptr.Of("12/03/2025 09:30"),
			Estado:            "Confirmada",
		},
	}

	s.Run("success: returns the caller's appointments", func() {
		s.mockQueries.EXPECT().ListForOwner(gomock.Any(), s.userID, queries.DateRange{}).Return(views, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/citas", nil, "bearer-token")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[
			{"id":1,"mascota":"Luna","servicio":"Vacunación","fechaPreferida":"10/03/2025","estado":"Pendiente",
			 "detalles":{"telefono":"3001234567","motivo":"Revisión anual"}},
			{"id":2,"mascota":"Max","servicio":"","fechaPreferida":"11/03/2025","horarioConfirmado":"12/03/2025 09:30",
			 "estado":"Confirmada","detalles":{"telefono":"","motivo":""}}
		]`, rec.Body.String())
	})

	s.Run("success: an empty listing is an empty array", func() {
		s.mockQueries.EXPECT().ListForOwner(gomock.Any(), s.userID, gomock.Any()).Return(nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/citas", nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})

	s.Run("success: the window is passed through", func() {
		s.mockQueries.EXPECT().ListForOwner(gomock.Any(), s.userID, gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, rng queries.DateRange) ([]queries.AppointmentView, error) {
				s.Require().NotNil(rng.From)
				s.Require().NotNil(rng.To)
				s.Equal("2025-03-01", rng.From.Format("2006-01-02"))
				s.Equal("2025-03-31", rng.To.Format("2006-01-02"))
				return nil, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/citas?desde=2025-03-01&hasta=2025-03-31", nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 on a malformed desde", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/citas?desde=01/03/2025", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "desde must be a YYYY-MM-DD date")
	})

	s.Run("error: 400 on an inverted window", func() {
		s.mockQueries.EXPECT().ListForOwner(gomock.Any(), s.userID, gomock.Any()).
			Return(nil, errs.Mark(queries.ErrInvalidDateRange, errs.ErrValidation))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/citas?desde=2025-03-31&hasta=2025-03-01", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, queries.ErrInvalidDateRange.Error())
	})
}

func (s *AppointmentHandlerTestSuite) TestListClinic() {
	s.Run("success: staff reads their own clinic", func() {
		s.asStaff(7)
		s.mockQueries.EXPECT().ListForClinic(gomock.Any(), int64(7), queries.DateRange{}).
			Return([]queries.AppointmentView{{ID: 1, Mascota: "Luna", Estado: "Pendiente"}}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/clinicas/7/citas", nil, "bearer-token")

		var body []resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal("Luna", body[0].Mascota)
	})

	s.Run("error: 403 for another clinic", func() {
		s.asStaff(7)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/clinicas/8/citas", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Clinic outside of your scope")
	})

	s.Run("error: 403 for staff without a clinic claim", func() {
		s.role = user.RoleStaff
		s.clinic = nil
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/clinicas/99/citas", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Token is not bound to a clinic")
	})

	s.Run("success: admins read any clinic", func() {
		s.role = user.RoleAdmin
		s.clinic = nil
		s.mockQueries.EXPECT().ListForClinic(gomock.Any(), int64(8), gomock.Any()).Return(nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/clinicas/8/citas", nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 503 when the store times out", func() {
		s.asStaff(7)
		s.mockQueries.EXPECT().ListForClinic(gomock.Any(), int64(7), gomock.Any()).
			Return(nil, errs.Mark(errs.New("context deadline exceeded"), errs.ErrStoreTimeout))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/clinicas/7/citas", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "")
	})
}

// ================================================================================
// TestDelete
// ================================================================================

func (s *AppointmentHandlerTestSuite) TestDelete() {
	s.Run("success: 204", func() {
		s.mockCmds.EXPECT().Delete(gomock.Any(), int64(42)).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/citas/42", nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
		s.Empty(rec.Body.String())
	})

	s.Run("error: 404 for a missing appointment", func() {
		s.mockCmds.EXPECT().Delete(gomock.Any(), int64(43)).
			Return(errs.Mark(errs.ErrAppointmentNotFound, errs.ErrNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/citas/43", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, errs.ErrAppointmentNotFound.Error())
	})

	s.Run("error: 400 on id zero", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/citas/0", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

// ================================================================================
// TestCalendar
// ================================================================================

func (s *AppointmentHandlerTestSuite) TestCalendar() {
	items := []queries.CalendarItem{
		{ID: 1, Mascota: "Luna", Servicio: "Vacunación", Inicio: "2025-03-12T09:00", Fin: "2025-03-12T10:00", LaneIndex: 0, LaneCount: 2},
		{ID: 2, Mascota: "Max", Inicio: "2025-03-12T09:30", Fin: "2025-03-12T10:00", LaneIndex: 1, LaneCount: 2},
	}

	s.Run("success: lays out the owner's week", func() {
		s.mockQueries.EXPECT().CalendarForOwner(gomock.Any(), s.userID, gomock.Any(), gomock.Any()).Return(items, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/calendario?desde=2025-03-10&hasta=2025-03-16", nil, "bearer-token")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[
			{"id":1,"mascota":"Luna","servicio":"Vacunación","inicio":"2025-03-12T09:00","fin":"2025-03-12T10:00","laneIndex":0,"laneCount":2},
			{"id":2,"mascota":"Max","servicio":"","inicio":"2025-03-12T09:30","fin":"2025-03-12T10:00","laneIndex":1,"laneCount":2}
		]`, rec.Body.String())
	})

	s.Run("error: 400 without hasta", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/calendario?desde=2025-03-10", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "desde and hasta are required")
	})

	s.Run("success: staff read their clinic's calendar", func() {
		s.asStaff(7)
		s.mockQueries.EXPECT().CalendarForClinic(gomock.Any(), int64(7), gomock.Any(), gomock.Any()).Return(items[:1], nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/clinicas/7/calendario?desde=2025-03-12&hasta=2025-03-12", nil, "bearer-token")

		var body []resdto.CalendarItemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal(2, body[0].LaneCount)
	})

	s.Run("error: 403 on a clinic calendar for staff without a clinic claim", func() {
		s.role = user.RoleStaff
		s.clinic = nil
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/clinicas/7/calendario?desde=2025-03-12&hasta=2025-03-12", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Token is not bound to a clinic")
	})

	s.Run("error: 403 for another clinic's calendar", func() {
		s.asStaff(7)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/clinicas/9/calendario?desde=2025-03-12&hasta=2025-03-12", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})
}

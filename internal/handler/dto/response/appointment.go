package response

import (
	"vet-scheduler/internal/usecase/commands"
	"vet-scheduler/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type CreatedResponse struct {
	Success bool        `json:"success"`
	Data    CreatedData `json:"data"`
}

type CreatedData struct {
	ID int64 `json:"id"`
}

func FromBookingResult(r *commands.BookingResult) CreatedResponse {
	return CreatedResponse{Success: true, Data: CreatedData{ID: r.ID}}
}

type TransitionResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

func FromTransitionResult(r *commands.TransitionResult) TransitionResponse {
	return TransitionResponse{ID: r.ID, Message: r.Message}
}

type AppointmentResponse struct {
	ID                int64              `json:"id"`
	Mascota           string             `json:"mascota"`
	Servicio          string             `json:"servicio"`
	FechaPreferida    string             `json:"fechaPreferida"`
	HorarioConfirmado *string            `json:"horarioConfirmado,omitempty"`
	Estado            string             `json:"estado"`
	Detalles          AppointmentDetails `json:"detalles"`
}

type AppointmentDetails struct {
	Telefono string `json:"telefono"`
	Motivo   string `json:"motivo"`
}

func FromAppointmentViews(views []queries.AppointmentView) ([]AppointmentResponse, error) {
	res := make([]AppointmentResponse, 0, len(views))
	if len(views) == 0 {
		return res, nil
	}
	if err := copier.Copy(&res, &views); err != nil {
		return nil, err
	}
	return res, nil
}

type CalendarItemResponse struct {
	ID        int64  `json:"id"`
	Mascota   string `json:"mascota"`
	Servicio  string `json:"servicio"`
	Inicio    string `json:"inicio"`
	Fin       string `json:"fin"`
	LaneIndex int    `json:"laneIndex"`
	LaneCount int    `json:"laneCount"`
}

func FromCalendarItems(items []queries.CalendarItem) ([]CalendarItemResponse, error) {
	res := make([]CalendarItemResponse, 0, len(items))
	if len(items) == 0 {
		return res, nil
	}
	if err := copier.Copy(&res, &items); err != nil {
		return nil, err
	}
	return res, nil
}

package appointment

import (
	"vet-scheduler/internal/pkg/errs"
)

var (
	ErrUnknownLabel   = errs.New("estado must be one of Confirmada, Rechazada, Cancelada, Terminada")
	ErrUnmappedStatus = errs.New("status has no display label")
)

type Label string

const (
	LabelPending   Label = "Pendiente"
	LabelConfirmed Label = "Confirmada"
	LabelRejected  Label = "Rechazada"
	LabelCancelled Label = "Cancelada"
	LabelCompleted Label = "Terminada"
)

// Staff-facing labels accepted as transition targets. Pendiente is display only.
var labelToStatus = map[Label]Status{
	LabelConfirmed: StatusConfirmed,
	LabelRejected:  StatusCancelled,
	LabelCancelled: StatusCancelled,
	LabelCompleted: StatusCompleted,
}

var statusToLabel = map[Status]Label{
	StatusPending:   LabelPending,
	StatusConfirmed: LabelConfirmed,
	StatusCancelled: LabelRejected,
	StatusCompleted: LabelCompleted,
}

func StatusFromLabel(label string) (Status, error) {
	s, ok := labelToStatus[Label(label)]
	if !ok {
		return "", ErrUnknownLabel
	}
	return s, nil
}

func (s Status) Label() (Label, error) {
	l, ok := statusToLabel[s]
	if !ok {
		return "", ErrUnmappedStatus
	}
	return l, nil
}

func (l Label) String() string {
	return string(l)
}

package request

import (
	"strings"

	"propostas_xpto/internal/domain/entities"
	"propostas_xpto/internal/usecase"
)

type ToggleItemRequest struct {
	ServiceID string `json:"service_id" binding:"required"`
}

type SetAllItemsRequest struct {
	Included *bool `json:"included" binding:"required"`
}

type ItemNoteRequest struct {
	ServiceID string `json:"service_id" binding:"required"`
	Note      string `json:"note"`
}

type PaymentRequest struct {
	PaymentType   string `json:"payment_type" binding:"required"`
	PaymentMethod string `json:"payment_method"`
	Installments  int    `json:"installments"`
}

func (r PaymentRequest) ToSelection() entities.PaymentSelection {
	installments := r.Installments
	if installments == 0 {
		installments = 1
	}
	return entities.PaymentSelection{
		Type:         entities.PaymentType(strings.TrimSpace(r.PaymentType)),
		Method:       strings.TrimSpace(r.PaymentMethod),
		Installments: installments,
	}
}

type SurfaceRequest struct {
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	PixelRatio float64 `json:"pixel_ratio"`
}

type StrokeEventRequest struct {
	Type string  `json:"type" binding:"required"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

type StrokesRequest struct {
	Events []StrokeEventRequest `json:"events" binding:"required"`
}

func (r StrokesRequest) ToEvents() []usecase.StrokeEvent {
	events := make([]usecase.StrokeEvent, 0, len(r.Events))
	for _, ev := range r.Events {
		events = append(events, usecase.StrokeEvent{Type: ev.Type, X: ev.X, Y: ev.Y})
	}
	return events
}

// SignRequest carries the signer contact fields required before the signed
// payload is submitted.
type SignRequest struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required"`
	Phone        string `json:"phone"`
	Document     string `json:"document"`
	Observations string `json:"observations"`
}

func (r SignRequest) Contact() usecase.ContactInfo {
	return usecase.ContactInfo{
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		Document: r.Document,
	}
}

type ObservationsRequest struct {
	Observations string `json:"observations"`
}

type RejectRequest struct {
	Reason string `json:"reason"`
}

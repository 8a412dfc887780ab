package request

import (
	"testing"

	"propostas_xpto/internal/domain/entities"
	"propostas_xpto/internal/usecase"
)

func TestPaymentRequest_ToSelection(t *testing.T) {
	t.Run("trims and defaults installments", func(t *testing.T) {
		sel := PaymentRequest{PaymentType: " avista ", PaymentMethod: " pix "}.ToSelection()
		if sel.Type != entities.PaymentTypeImmediate || sel.Method != "pix" {
			t.Fatalf("unexpected selection: %+v", sel)
		}
		if sel.Installments != 1 {
			t.Fatalf("expected omitted installments to default to 1, got %d", sel.Installments)
		}
	})

	t.Run("keeps explicit installments", func(t *testing.T) {
		sel := PaymentRequest{PaymentType: "prazo", PaymentMethod: "cartao", Installments: 6}.ToSelection()
		if sel.Installments != 6 {
			t.Fatalf("expected 6, got %d", sel.Installments)
		}
	})

	t.Run("negative installments pass through for validation", func(t *testing.T) {
		sel := PaymentRequest{PaymentType: "prazo", PaymentMethod: "cartao", Installments: -1}.ToSelection()
		if sel.Installments != -1 {
			t.Fatalf("out-of-range input must reach the use case untouched, got %d", sel.Installments)
		}
	})
}

func TestStrokesRequest_ToEvents(t *testing.T) {
	events := StrokesRequest{Events: []StrokeEventRequest{
		{Type: "begin", X: 10, Y: 20},
		{Type: "extend", X: 30, Y: 40},
		{Type: "end"},
	}}.ToEvents()

	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	if events[0] != (usecase.StrokeEvent{Type: "begin", X: 10, Y: 20}) {
		t.Fatalf("unexpected first event: %+v", events[0])
	}
	if events[2].Type != "end" {
		t.Fatalf("unexpected last event: %+v", events[2])
	}
}

func TestSignRequest_Contact(t *testing.T) {
	c := SignRequest{Name: "Ana", Email: "ana@xpto.com.br", Phone: "11987654321", Document: "12345678901", Observations: "obs"}.Contact()
	want := usecase.ContactInfo{Name: "Ana", Email: "ana@xpto.com.br", Phone: "11987654321", Document: "12345678901"}
	if c != want {
		t.Fatalf("unexpected contact: %+v", c)
	}
}

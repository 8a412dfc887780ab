package entities

// PaymentType splits the acceptance into immediate settlement (eligible for
// the full-selection discount) and deferred settlement (eligible for
// installments).

type PaymentType string

const (
	PaymentTypeImmediate PaymentType = "avista"
	PaymentTypeDeferred  PaymentType = "prazo"
)

// PaymentMethod is one concrete settlement instrument. The allowed list
// depends on the payment type, and only methods flagged installable accept
// an installment count above 1.
type PaymentMethod struct {
	Code        string `json:"code"`
	Label       string `json:"label"`
	Installable bool   `json:"installable"`
}

var immediateMethods = []PaymentMethod{
	{Code: "pix", Label: "Pix"},
	{Code: "boleto", Label: "Boleto"},
	{Code: "transferencia", Label: "Transferência bancária"},
}

var deferredMethods = []PaymentMethod{
	{Code: "boleto", Label: "Boleto", Installable: true},
	{Code: "cartao", Label: "Cartão de crédito", Installable: true},
	{Code: "transferencia", Label: "Transferência bancária"},
}

// MethodsForType returns the method list allowed for a payment type.
func MethodsForType(t PaymentType) []PaymentMethod {
	switch t {
	case PaymentTypeImmediate:
		return immediateMethods
	case PaymentTypeDeferred:
		return deferredMethods
	default:
		return nil
	}
}

func FindMethod(t PaymentType, code string) (PaymentMethod, bool) {
	for _, m := range MethodsForType(t) {
		if m.Code == code {
			return m, true
		}
	}
	return PaymentMethod{}, false
}

// PaymentSelection is the client's current payment choice. Installments are
// meaningful only for deferred payment on an installable method and must be
// re-validated whenever type or method changes.
type PaymentSelection struct {
	Type         PaymentType `json:"payment_type"`
	Method       string      `json:"payment_method"`
	Installments int         `json:"installments"`
}

// Normalized resets the selection pieces that stopped making sense after a
// type or method change: an unknown method falls back to the first allowed
// one and installments collapse to 1 unless the method is installable.
func (s PaymentSelection) Normalized() PaymentSelection {
	methods := MethodsForType(s.Type)
	if len(methods) == 0 {
		return PaymentSelection{Type: PaymentTypeImmediate, Method: immediateMethods[0].Code, Installments: 1}
	}

	method, ok := FindMethod(s.Type, s.Method)
	if !ok {
		method = methods[0]
	}

	out := PaymentSelection{Type: s.Type, Method: method.Code, Installments: s.Installments}
	if s.Type != PaymentTypeDeferred || !method.Installable || out.Installments < 1 {
		out.Installments = 1
	}
	return out
}

package intake

import "fmt"

// PaymentType selects which IntakeQ practice (and therefore API key) a
// submission belongs to.
type PaymentType string

const (
	PaymentCashPay   PaymentType = "cash_pay"
	PaymentInsurance PaymentType = "insurance"
)

// ResolvePaymentType normalizes the submitted payment category. An empty
// value defaults to cash pay; anything else that is not a recognized
// category is rejected rather than silently funneled into the cash-pay
// practice.
func ResolvePaymentType(raw string) (PaymentType, error) {
	switch raw {
	case "", string(PaymentCashPay):
		return PaymentCashPay, nil
	case string(PaymentInsurance):
		return PaymentInsurance, nil
	}
	return "", &Error{
		Kind:    KindValidation,
		Message: fmt.Sprintf("unknown payment type: %s", raw),
	}
}

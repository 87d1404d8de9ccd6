package checkout

import "strings"

type Status string

const (
	StatusPendingPayment      Status = "PENDING_PAYMENT"
	StatusPaymentVerification Status = "PAYMENT_VERIFICATION"
	StatusProcessing          Status = "PROCESSING"
	StatusSent                Status = "SENT"
	StatusReceived            Status = "RECEIVED"
	StatusCompleted           Status = "COMPLETED"
	StatusCanceled            Status = "CANCELED"
	StatusRefunded            Status = "REFUNDED"
)

var validNext = map[Status]map[Status]bool{
	StatusPendingPayment:      {StatusPaymentVerification: true, StatusCanceled: true},
	StatusPaymentVerification: {StatusProcessing: true, StatusCanceled: true},
	StatusProcessing:          {StatusSent: true, StatusCanceled: true, StatusRefunded: true},
	StatusSent:                {StatusReceived: true},
	StatusReceived:            {StatusCompleted: true, StatusRefunded: true},
	StatusCompleted:           {},
	StatusCanceled:            {},
	StatusRefunded:            {},
}

func CanTransition(from, to Status) bool {
	return validNext[from][to]
}

// StatusForPayment: COD masuk verifikasi manual dulu, sisanya nunggu pembayaran.
func StatusForPayment(method string) Status {
	if strings.EqualFold(method, "COD") {
		return StatusPaymentVerification
	}
	return StatusPendingPayment
}

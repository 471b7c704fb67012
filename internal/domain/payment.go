package domain

import "time"

type PaymentMethod string

const (
	MethodBkash PaymentMethod = "bkash"
	MethodNagad PaymentMethod = "nagad"
	MethodUpay  PaymentMethod = "upay"
)

// TxnPrefix returns the transaction id prefix for the provider.
func (m PaymentMethod) TxnPrefix() string {
	switch m {
	case MethodBkash:
		return "BK"
	case MethodNagad:
		return "NG"
	case MethodUpay:
		return "UP"
	}
	return "TXN"
}

// DisplayName returns the provider's brand name.
func (m PaymentMethod) DisplayName() string {
	switch m {
	case MethodBkash:
		return "bKash"
	case MethodNagad:
		return "Nagad"
	case MethodUpay:
		return "Upay"
	}
	return string(m)
}

func ParsePaymentMethod(s string) (PaymentMethod, bool) {
	switch PaymentMethod(s) {
	case MethodBkash, MethodNagad, MethodUpay:
		return PaymentMethod(s), true
	}
	return "", false
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "Pending"
	PaymentCompleted PaymentStatus = "Completed"
	PaymentFailed    PaymentStatus = "Failed"
)

// Payment is the simulated mobile-money record, one per booking, with an
// immutable unique transaction id.
type Payment struct {
	ID            int64         `json:"id"`
	BookingID     int64         `json:"booking_id" gorm:"uniqueIndex"`
	Method        PaymentMethod `json:"payment_method"`
	MobileNumber  string        `json:"mobile_number"`
	TransactionID string        `json:"transaction_id" gorm:"uniqueIndex"`
	Amount        float64       `json:"amount"`
	Status        PaymentStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
}

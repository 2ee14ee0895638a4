package models

// Gender defines the possible gender values for a student.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
	Other  Gender = "other"
)

// PaymentStatus defines the status of a payment
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

// ValidPaymentStatus reports whether s is one of the accepted payment statuses.
func ValidPaymentStatus(s PaymentStatus) bool {
	switch s {
	case PaymentPending, PaymentCompleted, PaymentFailed, PaymentRefunded:
		return true
	}
	return false
}

// PaymentMethod defines how a payment was made
type PaymentMethod string

const (
	MethodCash         PaymentMethod = "cash"
	MethodOnline       PaymentMethod = "online"
	MethodCheque       PaymentMethod = "cheque"
	MethodBankTransfer PaymentMethod = "bank_transfer"
	MethodUPI          PaymentMethod = "upi"
	MethodCard         PaymentMethod = "card"
)

// ValidPaymentMethod reports whether m is one of the accepted payment methods.
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case MethodCash, MethodOnline, MethodCheque, MethodBankTransfer, MethodUPI, MethodCard:
		return true
	}
	return false
}

// ApplyTo defines the applicability scope of a fee head
type ApplyTo string

const (
	ApplyToAll      ApplyTo = "all"
	ApplyToFiltered ApplyTo = "filtered"
)

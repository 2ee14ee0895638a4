package fees

import (
	"fmt"
	"math/rand/v2"
	"time"
)

const (
	paymentIDPrefix = "PAY"
	receiptPrefix   = "NIETM"
)

// NextPaymentID returns a candidate payment identifier:
// PAY + YYYYMMDDHHmm + 4-digit random suffix. Uniqueness is enforced by the
// storage layer, not here; callers retry on collision. The rand/v2 top-level
// generator is safe for concurrent use.
func NextPaymentID() string {
	return fmt.Sprintf("%s%s%04d", paymentIDPrefix, time.Now().Format("200601021504"), rand.IntN(10000))
}

// NextReceiptNumber returns a candidate receipt number:
// NIETM + YYMMDD + 5-digit random suffix.
func NextReceiptNumber() string {
	return fmt.Sprintf("%s%s%05d", receiptPrefix, time.Now().Format("060102"), rand.IntN(100000))
}

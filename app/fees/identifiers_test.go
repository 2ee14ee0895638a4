package fees

import (
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var (
	paymentIDPattern = regexp.MustCompile(`^PAY\d{12}\d{4}$`)
	receiptPattern   = regexp.MustCompile(`^NIETM\d{6}\d{5}$`)
)

func TestNextPaymentIDFormat(t *testing.T) {
	id := NextPaymentID()
	assert.Regexp(t, paymentIDPattern, id)

	// The timestamp portion reflects the creation minute
	stamp := time.Now().Format("200601021504")
	assert.Contains(t, id, stamp[:8], "payment id should embed today's date")
}

func TestNextReceiptNumberFormat(t *testing.T) {
	rn := NextReceiptNumber()
	assert.Regexp(t, receiptPattern, rn)
	assert.Contains(t, rn, time.Now().Format("060102"))
}

// Generation must be safe under concurrency; run with -race. Distinctness of
// stored identifiers is enforced by the unique indexes plus the insert retry
// in RecordPayment, not by the generator itself.
func TestIdentifierGenerationConcurrent(t *testing.T) {
	const workers = 50

	var wg sync.WaitGroup
	results := make([]string, workers*2)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[2*i] = NextPaymentID()
			results[2*i+1] = NextReceiptNumber()
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		assert.Regexp(t, paymentIDPattern, results[2*i])
		assert.Regexp(t, receiptPattern, results[2*i+1])
	}
}

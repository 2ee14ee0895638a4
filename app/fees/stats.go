package fees

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/kshitij2201/erp-neitem-updated-sub010/app/database"

	"github.com/shopspring/decimal"
)

// StatsSnapshot reports a fee head's collection figures twice: the stored
// cumulative cache (cheap, possibly stale) and the realtime aggregate
// recomputed from the ledger, which is authoritative for reporting.
type StatsSnapshot struct {
	FeeHeadID      string     `json:"fee_head_id"`
	Title          string     `json:"title"`
	StandardAmount float64    `json:"standard_amount"`
	StoredTotal    float64    `json:"stored_total"`
	StoredCount    int64      `json:"stored_count"`
	RealtimeTotal  float64    `json:"realtime_total"`
	RealtimeCount  int64      `json:"realtime_count"`
	LastPayment    *time.Time `json:"last_payment,omitempty"`
	AvgPayment     float64    `json:"avg_payment"`
	CollectionRate float64    `json:"collection_rate"`
}

// CollectionStats computes the stats snapshot for one fee head, optionally
// restricted to a payment-date range. CollectionRate is actual revenue per
// payment against the head's standard amount, expressed as a percentage; it is
// not a per-student fulfilment figure.
func CollectionStats(db *sql.DB, feeHeadID string, from, to *time.Time) (*StatsSnapshot, error) {
	head, err := database.GetFeeHeadByID(db, feeHeadID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, &NotFoundError{Resource: "fee head", ID: feeHeadID}
		}
		return nil, fmt.Errorf("failed to look up fee head: %w", err)
	}

	total, count, last, err := database.RealtimeCollection(db, feeHeadID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate payments: %w", err)
	}

	snapshot := &StatsSnapshot{
		FeeHeadID:      head.ID,
		Title:          head.Title,
		StandardAmount: head.Amount,
		StoredTotal:    head.TotalCollected,
		StoredCount:    head.CollectionCount,
		RealtimeTotal:  total,
		RealtimeCount:  count,
		LastPayment:    last,
	}

	if count > 0 {
		realtimeTotal := decimal.NewFromFloat(total)
		realtimeCount := decimal.NewFromInt(count)

		snapshot.AvgPayment = realtimeTotal.DivRound(realtimeCount, 2).InexactFloat64()

		if head.Amount > 0 {
			expected := decimal.NewFromFloat(head.Amount).Mul(realtimeCount)
			snapshot.CollectionRate = realtimeTotal.
				Div(expected).
				Mul(decimal.NewFromInt(100)).
				Round(2).
				InexactFloat64()
		}
	}

	return snapshot, nil
}

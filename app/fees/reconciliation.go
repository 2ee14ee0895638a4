package fees

import (
	"database/sql"
	"fmt"

	"github.com/kshitij2201/erp-neitem-updated-sub010/app/database"
)

// PendingMode selects how overpayment is reported. Both behaviors exist among
// the callers of this engine, so the choice is explicit rather than implied.
type PendingMode string

const (
	// Clamped returns only heads that still owe money, with pending floored
	// at zero. Used for student-facing dues lists.
	Clamped PendingMode = "clamped"
	// Unclamped returns every applicable head and lets pending go negative to
	// signal overpayment. Used on staff dashboards.
	Unclamped PendingMode = "unclamped"
)

// PendingEntry is one applicable fee head with its paid and outstanding
// amounts for a particular student.
type PendingEntry struct {
	FeeHeadID     string  `json:"fee_head_id"`
	Title         string  `json:"title"`
	TotalAmount   float64 `json:"total_amount"`
	PaidAmount    float64 `json:"paid_amount"`
	PendingAmount float64 `json:"pending_amount"`
}

// PendingFees reconciles a student's applicable fee heads against the payment
// ledger. Paid sums count every non-failed payment, optionally scoped to a
// semester. Read-only; serves against the current ledger snapshot without
// locking.
func PendingFees(db *sql.DB, studentID string, semester *int, mode PendingMode) ([]PendingEntry, error) {
	if mode != Clamped && mode != Unclamped {
		return nil, &ValidationError{Field: "mode", Reason: fmt.Sprintf("unknown pending mode %q", mode)}
	}
	if semester != nil && (*semester < 1 || *semester > 8) {
		return nil, &ValidationError{Field: "semester", Reason: "must be between 1 and 8"}
	}

	student, err := database.GetStudentByID(db, studentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, &NotFoundError{Resource: "student", ID: studentID}
		}
		return nil, fmt.Errorf("failed to look up student: %w", err)
	}

	heads, err := database.GetFeeHeads(db, true)
	if err != nil {
		return nil, fmt.Errorf("failed to load fee heads: %w", err)
	}

	applicable := ApplicableFeeHeads(student, heads)
	if len(applicable) == 0 {
		return []PendingEntry{}, nil
	}

	headIDs := make([]string, len(applicable))
	for i, head := range applicable {
		headIDs[i] = head.ID
	}

	paidByHead, err := database.PaidByHeadForStudent(db, studentID, headIDs, semester)
	if err != nil {
		return nil, fmt.Errorf("failed to sum payments: %w", err)
	}

	entries := make([]PendingEntry, 0, len(applicable))
	for _, head := range applicable {
		paid := paidByHead[head.ID]
		pending := head.Amount - paid

		if mode == Clamped {
			if pending <= 0 {
				continue
			}
		}

		entries = append(entries, PendingEntry{
			FeeHeadID:     head.ID,
			Title:         head.Title,
			TotalAmount:   head.Amount,
			PaidAmount:    paid,
			PendingAmount: pending,
		})
	}
	return entries, nil
}

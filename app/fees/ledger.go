package fees

import (
	"database/sql"
	"fmt"

	"github.com/kshitij2201/erp-neitem-updated-sub010/app/database"
	"github.com/kshitij2201/erp-neitem-updated-sub010/app/models"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

// maxInsertAttempts bounds the identifier-collision retry loop.
const maxInsertAttempts = 5

var validate = validator.New()

// RecordPaymentInput carries everything needed to record one fee transaction.
type RecordPaymentInput struct {
	StudentID     string               `json:"student_id" validate:"required,uuid"`
	FeeHeadID     *string              `json:"fee_head_id,omitempty" validate:"omitempty,uuid"`
	Amount        float64              `json:"amount" validate:"required,gt=0"`
	PaymentMethod models.PaymentMethod `json:"payment_method" validate:"required,oneof=cash online cheque bank_transfer upi card"`
	Semester      *int                 `json:"semester,omitempty" validate:"omitempty,min=1,max=8"`
	UTR           string               `json:"utr,omitempty"`
	Remarks       string               `json:"remarks,omitempty"`
	CollectedBy   *string              `json:"-" validate:"omitempty,uuid"`
}

// RecordPayment validates and persists a payment, then applies the cumulative
// cache side effects. The returned warnings describe cache updates that failed
// after the payment itself was durably recorded; the payment is never rolled
// back for those, since the ledger row is the source of truth and the caches
// can be recomputed from it at any time.
func RecordPayment(db *sql.DB, input RecordPaymentInput) (*models.Payment, []string, error) {
	if err := validate.Struct(input); err != nil {
		if invalid, ok := err.(validator.ValidationErrors); ok && len(invalid) > 0 {
			first := invalid[0]
			return nil, nil, &ValidationError{
				Field:  first.Field(),
				Reason: fmt.Sprintf("failed on %q", first.Tag()),
			}
		}
		return nil, nil, &ValidationError{Field: "input", Reason: err.Error()}
	}

	if _, err := database.GetStudentByID(db, input.StudentID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil, &NotFoundError{Resource: "student", ID: input.StudentID}
		}
		return nil, nil, fmt.Errorf("failed to look up student: %w", err)
	}

	if input.FeeHeadID != nil {
		if _, err := database.GetFeeHeadByID(db, *input.FeeHeadID); err != nil {
			if err == sql.ErrNoRows {
				return nil, nil, &NotFoundError{Resource: "fee head", ID: *input.FeeHeadID}
			}
			return nil, nil, fmt.Errorf("failed to look up fee head: %w", err)
		}
	}

	payment := &models.Payment{
		StudentID:     input.StudentID,
		FeeHeadID:     input.FeeHeadID,
		Amount:        input.Amount,
		PaymentMethod: input.PaymentMethod,
		Semester:      input.Semester,
		UTR:           NormalizeUTR(input.UTR),
		Status:        models.PaymentCompleted,
		Remarks:       input.Remarks,
		CollectedBy:   input.CollectedBy,
	}

	// payment_id and receipt_number carry unique indexes; collisions under
	// concurrent inserts are expected and handled by regenerating both.
	inserted := false
	for attempt := 1; attempt <= maxInsertAttempts; attempt++ {
		payment.PaymentID = NextPaymentID()
		payment.ReceiptNumber = NextReceiptNumber()

		err := database.InsertPayment(db, payment)
		if err == nil {
			inserted = true
			break
		}
		if !database.IsUniqueViolation(err) {
			return nil, nil, fmt.Errorf("failed to insert payment: %w", err)
		}
		logrus.WithFields(logrus.Fields{
			"student_id": input.StudentID,
			"attempt":    attempt,
		}).Warn("Payment identifier collision, regenerating")
	}
	if !inserted {
		return nil, nil, &ConflictError{
			Reason: fmt.Sprintf("could not generate unique payment identifiers after %d attempts", maxInsertAttempts),
		}
	}

	var warnings []string

	if payment.FeeHeadID != nil {
		if err := database.IncrementFeeHeadCollection(db, *payment.FeeHeadID, payment.Amount); err != nil {
			logrus.WithFields(logrus.Fields{
				"payment_id":  payment.PaymentID,
				"fee_head_id": *payment.FeeHeadID,
			}).Warnf("Fee head collection cache update failed: %v", err)
			warnings = append(warnings, "fee head collection stats were not updated; totals will be corrected on the next recompute")
		}
	}

	if err := database.ApplyPaymentToStudent(db, payment.StudentID, payment.Amount); err != nil {
		logrus.WithFields(logrus.Fields{
			"payment_id": payment.PaymentID,
			"student_id": payment.StudentID,
		}).Warnf("Student fee cache update failed: %v", err)
		warnings = append(warnings, "student paid/pending totals were not updated; amounts will be corrected on the next recompute")
	}

	return payment, warnings, nil
}

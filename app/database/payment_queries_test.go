package database

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/kshitij2201/erp-neitem-updated-sub010/app/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pq.Error{Code: "23505"}))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert failed: %w", &pq.Error{Code: "23505"})))

	assert.False(t, IsUniqueViolation(nil))
	assert.False(t, IsUniqueViolation(errors.New("23505"))) // not a pq error
	assert.False(t, IsUniqueViolation(&pq.Error{Code: "23503"}))
	assert.False(t, IsUniqueViolation(sql.ErrNoRows))
}

func paymentRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "payment_id", "receipt_number", "student_id", "fee_head_id", "amount",
		"payment_method", "semester", "utr", "status", "remarks", "collected_by",
		"payment_date", "created_at", "updated_at",
	})
}

func addPayment(rows *sqlmock.Rows, id string, amount float64) *sqlmock.Rows {
	now := time.Now()
	return rows.AddRow(id, "PAY2024082812340001", "NIETM24082800001", uuid.NewString(), nil,
		amount, "cash", nil, "", "completed", nil, nil, now, now, now)
}

func TestFindPaymentsBuildsConditionsInOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	studentID := uuid.NewString()
	semester := 2
	from := time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`FROM payments WHERE 1=1 AND student_id = \$1 AND semester = \$2 AND status = \$3 AND payment_date >= \$4 ORDER BY payment_date DESC LIMIT \$5 OFFSET \$6`).
		WithArgs(studentID, semester, "completed", from, 20, 40).
		WillReturnRows(addPayment(paymentRows(), uuid.NewString(), 500))

	payments, err := FindPayments(db, PaymentFilters{
		StudentID: studentID,
		Semester:  &semester,
		Status:    models.PaymentCompleted,
		DateFrom:  &from,
		Limit:     20,
		Offset:    40,
	})
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, models.MethodCash, payments[0].PaymentMethod)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindPaymentsNoFilters(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`FROM payments WHERE 1=1 ORDER BY payment_date DESC`).
		WillReturnRows(paymentRows())

	payments, err := FindPayments(db, PaymentFilters{})
	require.NoError(t, err)
	assert.Empty(t, payments)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePaymentStatusMissingRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	id := uuid.NewString()
	mock.ExpectExec(`UPDATE payments SET status`).
		WithArgs("refunded", "duplicate entry", id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = UpdatePaymentStatus(db, id, models.PaymentRefunded, "duplicate entry")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestPaidByHeadForStudentEmptyHeadList(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// No applicable heads means no query at all
	paid, err := PaidByHeadForStudent(db, uuid.NewString(), nil, nil)
	require.NoError(t, err)
	assert.Empty(t, paid)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecomputeFeeHeadCachesCountsBothPasses(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// First pass corrects drifted heads from grouped ledger rows, second pass
	// zeroes heads whose completed payments all disappeared.
	mock.ExpectExec(`UPDATE fee_heads fh`).WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`NOT EXISTS`).WillReturnResult(sqlmock.NewResult(0, 2))

	corrected, err := RecomputeFeeHeadCaches(db)
	require.NoError(t, err)
	assert.Equal(t, int64(5), corrected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecomputeFeeHeadCachesNothingToFix(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`UPDATE fee_heads fh`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`NOT EXISTS`).WillReturnResult(sqlmock.NewResult(0, 0))

	corrected, err := RecomputeFeeHeadCaches(db)
	require.NoError(t, err)
	assert.Zero(t, corrected)
}

func TestIncrementFeeHeadCollectionMissingHead(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	id := uuid.NewString()
	mock.ExpectExec(`UPDATE fee_heads`).WithArgs(750.0, id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, IncrementFeeHeadCollection(db, id, 750), sql.ErrNoRows)
}

func TestApplyPaymentToStudentMissingStudent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	id := uuid.NewString()
	mock.ExpectExec(`UPDATE students`).WithArgs(300.0, id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, ApplyPaymentToStudent(db, id, 300), sql.ErrNoRows)
}

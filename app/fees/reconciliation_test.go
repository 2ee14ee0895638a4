package fees

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const paidSumsQ = `fee_head_id = ANY`

// The canonical scenario: an MBA/OBC student, one universal head, one head
// filtered to OBC, one head filtered to a different stream. After tuition is
// fully paid, the clamped dues list contains only the OBC head.
func TestPendingFeesEndToEnd(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	studentID := uuid.NewString()
	mbaStream := uuid.NewString()
	otherStream := uuid.NewString()
	headA := uuid.NewString() // Tuition, applies to all, 5000
	headB := uuid.NewString() // OBC scholarship adjustment, 2000
	headC := uuid.NewString() // Other-stream lab fee, 1000

	mock.ExpectQuery(selectStudentQ).WithArgs(studentID).
		WillReturnRows(studentRow(studentID, mbaStream, "OBC"))
	mock.ExpectQuery(`FROM streams WHERE id`).WithArgs(mbaStream).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "is_active"}).AddRow(mbaStream, "MBA", true))

	heads := feeHeadRows()
	addFeeHead(heads, headA, "Tuition Fee", 5000, "all", nil, nil)
	addFeeHead(heads, headB, "Development Fee", 2000, "filtered", nil, "OBC")
	addFeeHead(heads, headC, "Lab Fee", 1000, "filtered", otherStream, nil)
	mock.ExpectQuery(selectFeeHeadsQ).WillReturnRows(heads)

	mock.ExpectQuery(paidSumsQ).WithArgs(studentID, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"fee_head_id", "sum"}).AddRow(headA, 5000.0))

	entries, err := PendingFees(db, studentID, nil, Clamped)
	require.NoError(t, err)

	// Head A is fully paid and clamped out; head C never applied
	require.Len(t, entries, 1)
	assert.Equal(t, headB, entries[0].FeeHeadID)
	assert.Equal(t, "Development Fee", entries[0].Title)
	assert.Equal(t, 2000.0, entries[0].TotalAmount)
	assert.Equal(t, 0.0, entries[0].PaidAmount)
	assert.Equal(t, 2000.0, entries[0].PendingAmount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPendingFeesClampedArithmetic(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	studentID := uuid.NewString()
	head := uuid.NewString()

	mock.ExpectQuery(selectStudentQ).WithArgs(studentID).
		WillReturnRows(studentRow(studentID, nil, nil))
	mock.ExpectQuery(selectFeeHeadsQ).
		WillReturnRows(addFeeHead(feeHeadRows(), head, "Tuition Fee", 5000, "all", nil, nil))
	mock.ExpectQuery(paidSumsQ).WithArgs(studentID, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"fee_head_id", "sum"}).AddRow(head, 1500.0))

	entries, err := PendingFees(db, studentID, nil, Clamped)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	// paid + pending reconciles to the standard amount while underpaid
	assert.Equal(t, entries[0].TotalAmount, entries[0].PaidAmount+entries[0].PendingAmount)
	assert.Equal(t, 3500.0, entries[0].PendingAmount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPendingFeesOverpayment(t *testing.T) {
	studentID := uuid.NewString()
	head := uuid.NewString()

	expectOverpaid := func(mock sqlmock.Sqlmock) {
		mock.ExpectQuery(selectStudentQ).WithArgs(studentID).
			WillReturnRows(studentRow(studentID, nil, nil))
		mock.ExpectQuery(selectFeeHeadsQ).
			WillReturnRows(addFeeHead(feeHeadRows(), head, "Tuition Fee", 1000, "all", nil, nil))
		mock.ExpectQuery(paidSumsQ).WithArgs(studentID, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"fee_head_id", "sum"}).AddRow(head, 1500.0))
	}

	t.Run("clamped drops settled heads", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		expectOverpaid(mock)

		entries, err := PendingFees(db, studentID, nil, Clamped)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("unclamped reports negative pending", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		expectOverpaid(mock)

		entries, err := PendingFees(db, studentID, nil, Unclamped)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, -500.0, entries[0].PendingAmount)
	})
}

func TestPendingFeesSemesterScope(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	studentID := uuid.NewString()
	head := uuid.NewString()
	semester := 3

	mock.ExpectQuery(selectStudentQ).WithArgs(studentID).
		WillReturnRows(studentRow(studentID, nil, nil))
	mock.ExpectQuery(selectFeeHeadsQ).
		WillReturnRows(addFeeHead(feeHeadRows(), head, "Semester Fee", 8000, "all", nil, nil))
	mock.ExpectQuery(paidSumsQ).WithArgs(studentID, sqlmock.AnyArg(), semester).
		WillReturnRows(sqlmock.NewRows([]string{"fee_head_id", "sum"}))

	entries, err := PendingFees(db, studentID, &semester, Clamped)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 8000.0, entries[0].PendingAmount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPendingFeesInvalidInputs(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	_, err = PendingFees(db, uuid.NewString(), nil, PendingMode("sideways"))
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)

	nine := 9
	_, err = PendingFees(db, uuid.NewString(), &nine, Clamped)
	assert.ErrorAs(t, err, &vErr)
}

func TestPendingFeesStudentNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	studentID := uuid.NewString()
	mock.ExpectQuery(selectStudentQ).WithArgs(studentID).
		WillReturnRows(sqlmock.NewRows(studentColumns))

	_, err = PendingFees(db, studentID, nil, Unclamped)
	var nfErr *NotFoundError
	assert.ErrorAs(t, err, &nfErr)
}

func TestPendingFeesNoApplicableHeads(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	studentID := uuid.NewString()
	otherStream := uuid.NewString()

	mock.ExpectQuery(selectStudentQ).WithArgs(studentID).
		WillReturnRows(studentRow(studentID, nil, nil))
	mock.ExpectQuery(selectFeeHeadsQ).
		WillReturnRows(addFeeHead(feeHeadRows(), uuid.NewString(), "Lab Fee", 1000, "filtered", otherStream, nil))

	entries, err := PendingFees(db, studentID, nil, Clamped)
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.NoError(t, mock.ExpectationsWereMet())
}

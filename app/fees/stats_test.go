package fees

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const realtimeQ = `COUNT\(\*\), MAX\(payment_date\)`

func realtimeRows(total float64, count int64, last interface{}) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"sum", "count", "max"}).AddRow(total, count, last)
}

func TestCollectionStatsRounding(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	headID := uuid.NewString()
	lastPaid := time.Date(2024, 8, 20, 11, 30, 0, 0, time.UTC)

	mock.ExpectQuery(selectFeeHeadQ).WithArgs(headID).
		WillReturnRows(addFeeHead(feeHeadRows(), headID, "Tuition Fee", 1000, "all", nil, nil))
	mock.ExpectQuery(realtimeQ).WithArgs(headID).
		WillReturnRows(realtimeRows(2500, 3, lastPaid))

	snap, err := CollectionStats(db, headID, nil, nil)
	require.NoError(t, err)

	// 2500 over 3 payments against a 1000 standard: avg 833.33, rate 83.33
	assert.Equal(t, 2500.0, snap.RealtimeTotal)
	assert.Equal(t, int64(3), snap.RealtimeCount)
	assert.Equal(t, 833.33, snap.AvgPayment)
	assert.Equal(t, 83.33, snap.CollectionRate)
	require.NotNil(t, snap.LastPayment)
	assert.True(t, snap.LastPayment.Equal(lastPaid))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollectionStatsNoPayments(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	headID := uuid.NewString()

	mock.ExpectQuery(selectFeeHeadQ).WithArgs(headID).
		WillReturnRows(addFeeHead(feeHeadRows(), headID, "Lab Fee", 1500, "all", nil, nil))
	mock.ExpectQuery(realtimeQ).WithArgs(headID).
		WillReturnRows(realtimeRows(0, 0, nil))

	snap, err := CollectionStats(db, headID, nil, nil)
	require.NoError(t, err)

	// No division by zero: averages and rates stay at zero
	assert.Equal(t, 0.0, snap.AvgPayment)
	assert.Equal(t, 0.0, snap.CollectionRate)
	assert.Nil(t, snap.LastPayment)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollectionStatsZeroStandardAmount(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	headID := uuid.NewString()

	mock.ExpectQuery(selectFeeHeadQ).WithArgs(headID).
		WillReturnRows(addFeeHead(feeHeadRows(), headID, "Donation", 0, "all", nil, nil))
	mock.ExpectQuery(realtimeQ).WithArgs(headID).
		WillReturnRows(realtimeRows(900, 2, nil))

	snap, err := CollectionStats(db, headID, nil, nil)
	require.NoError(t, err)

	// Average still computes, but a zero standard amount yields no rate
	assert.Equal(t, 450.0, snap.AvgPayment)
	assert.Equal(t, 0.0, snap.CollectionRate)
}

func TestCollectionStatsDateRangeArgs(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	headID := uuid.NewString()
	from := time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 8, 31, 23, 59, 59, 0, time.UTC)

	mock.ExpectQuery(selectFeeHeadQ).WithArgs(headID).
		WillReturnRows(addFeeHead(feeHeadRows(), headID, "Tuition Fee", 1000, "all", nil, nil))
	mock.ExpectQuery(realtimeQ).WithArgs(headID, from, to).
		WillReturnRows(realtimeRows(1000, 1, from))

	snap, err := CollectionStats(db, headID, &from, &to)
	require.NoError(t, err)
	assert.Equal(t, int64(1), snap.RealtimeCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollectionStatsHeadNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	headID := uuid.NewString()
	mock.ExpectQuery(selectFeeHeadQ).WithArgs(headID).
		WillReturnRows(sqlmock.NewRows(feeHeadColumnNames))

	_, err = CollectionStats(db, headID, nil, nil)
	var nfErr *NotFoundError
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, "fee head", nfErr.Resource)
}

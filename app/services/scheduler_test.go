package services

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcileCollectionCaches(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`UPDATE fee_heads fh`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`NOT EXISTS`).WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, ReconcileCollectionCaches(db))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReconcileCollectionCachesPropagatesErrors(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`UPDATE fee_heads fh`).WillReturnError(errors.New("relation does not exist"))

	assert.Error(t, ReconcileCollectionCaches(db))
}

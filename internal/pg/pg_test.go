package pg

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatabase_SatisfiedByMockPool(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	var db Database = mock
	mock.ExpectExec("SELECT 1").WillReturnResult(pgxmock.NewResult("SELECT", 1))

	_, err = db.Exec(context.Background(), "SELECT 1")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewPool_InvalidDSN(t *testing.T) {
	pool, err := NewPool(context.Background(), "postgres://%zz")

	assert.Error(t, err)
	assert.Nil(t, pool)
}

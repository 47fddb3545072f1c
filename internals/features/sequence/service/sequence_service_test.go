// file: internals/features/sequence/service/sequence_service_test.go
package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	counterModel "helpdesku_backend/internals/features/sequence/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Per-test in-memory database to avoid cross-test interference.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&counterModel.Counter{}))
	return db
}

func TestNextIsMonotonicAndUnique(t *testing.T) {
	db := openTestDB(t)

	seen := map[int64]bool{}
	for i := 1; i <= 100; i++ {
		v, err := Next(db, CounterTicketNumber)
		require.NoError(t, err)
		require.Equal(t, int64(i), v)
		require.False(t, seen[v], "value %d issued twice", v)
		seen[v] = true
	}
}

func TestNextIsPerCounterName(t *testing.T) {
	db := openTestDB(t)

	v, err := Next(db, CounterTicketNumber)
	require.NoError(t, err)
	require.Equal(t, int64(1), v)

	v, err = Next(db, CounterCustomerNumber)
	require.NoError(t, err)
	require.Equal(t, int64(1), v, "counters must be independent per name")

	v, err = Next(db, CounterTicketNumber)
	require.NoError(t, err)
	require.Equal(t, int64(2), v)
}

func TestNextFormattedPadsToWidth(t *testing.T) {
	db := openTestDB(t)

	formatted, err := NextFormatted(db, CounterTicketNumber, TicketNumberWidth)
	require.NoError(t, err)
	require.Equal(t, "000001", formatted)

	formatted, err = NextFormatted(db, CounterSendEmailNumber, SendEmailNumberWidth)
	require.NoError(t, err)
	require.Equal(t, "00000001", formatted)
}

func TestNextFormattedFailsWhenExhausted(t *testing.T) {
	db := openTestDB(t)

	// Pre-seed the counter at the last value that still fits two digits.
	require.NoError(t, db.Create(&counterModel.Counter{
		CounterName: "tiny", CounterSeq: 99,
	}).Error)

	_, err := NextFormatted(db, "tiny", 2)
	require.ErrorIs(t, err, ErrSequenceExhausted)
}

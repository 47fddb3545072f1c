// file: internals/databases/migrate_test.go
package database

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	enrollmentModel "helpdesku_backend/internals/features/enrollment/enrollments/model"
	ticketModel "helpdesku_backend/internals/features/helpdesk/tickets/model"
)

func TestMigrateAllOnSqlite(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	// The full model set must produce DDL sqlite accepts, since the test
	// suites migrate these schemas in-memory.
	require.NoError(t, MigrateAll(db))

	for _, table := range []string{"counters", "users", "customers", "tickets", "comments",
		"attachments", "send_emails", "products", "enrollments", "payments"} {
		require.Truef(t, db.Migrator().HasTable(table), "missing table %s", table)
	}

	// Inserts must work without relying on a server-side uuid default.
	e := enrollmentModel.EnrollmentModel{}
	tk := ticketModel.TicketModel{TicketNumber: "000001", TicketName: "smoke"}
	require.NoError(t, db.Create(&e).Error)
	require.NoError(t, db.Create(&tk).Error)
	require.NotEqual(t, "00000000-0000-0000-0000-000000000000", e.EnrollmentID.String())
	require.NotEqual(t, "00000000-0000-0000-0000-000000000000", tk.TicketID.String())
}

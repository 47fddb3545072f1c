// file: internals/databases/migrate.go
package database

import (
	"log"

	"gorm.io/gorm"

	enrollmentModel "helpdesku_backend/internals/features/enrollment/enrollments/model"
	paymentModel "helpdesku_backend/internals/features/enrollment/payments/model"
	productModel "helpdesku_backend/internals/features/enrollment/products/model"
	attachmentModel "helpdesku_backend/internals/features/helpdesk/attachments/model"
	commentModel "helpdesku_backend/internals/features/helpdesk/comments/model"
	customerModel "helpdesku_backend/internals/features/helpdesk/customers/model"
	masterdataModel "helpdesku_backend/internals/features/helpdesk/masterdata/model"
	sendEmailModel "helpdesku_backend/internals/features/helpdesk/sendemail/model"
	ticketModel "helpdesku_backend/internals/features/helpdesk/tickets/model"
	counterModel "helpdesku_backend/internals/features/sequence/model"
	userModel "helpdesku_backend/internals/features/users/model"
)

// MigrateAll keeps the schema in sync at startup. Order matters only for
// readability; there are no FK constraints between the snapshot tables.
func MigrateAll(db *gorm.DB) error {
	models := []any{
		&counterModel.Counter{},
		&userModel.UserModel{},

		&masterdataModel.CategoryModel{},
		&masterdataModel.StateModel{},
		&masterdataModel.LocationModel{},
		&masterdataModel.InstructorModel{},
		&masterdataModel.AssigneeModel{},

		&customerModel.CustomerModel{},
		&customerModel.CustomerCategoryModel{},

		&ticketModel.TicketModel{},
		&commentModel.CommentModel{},
		&attachmentModel.AttachmentModel{},
		&sendEmailModel.SendEmailModel{},

		&productModel.ProductModel{},
		&enrollmentModel.EnrollmentModel{},
		&paymentModel.PaymentModel{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Printf("[ERROR] migration failed: %v", err)
		return err
	}
	log.Println("[INFO] database migration complete")
	return nil
}

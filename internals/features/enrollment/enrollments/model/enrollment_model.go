package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

/* ===================== Model ===================== */

// EnrollmentModel binds one customer to one product at a point in time.
//
// Snapshot semantics: the enrollment_customer_* and enrollment_product_*
// columns are point-in-time copies taken inside the create transaction.
// They are intentionally never synced with later edits to the customer or
// product record; a historical enrollment always shows what was sold.
// Lookups from the payment/completion flows use the composite key
// (enrollment_id, enrollment_customer_id).
type EnrollmentModel struct {
	EnrollmentID uuid.UUID `gorm:"column:enrollment_id;type:uuid;default:(gen_random_uuid());primaryKey" json:"enrollment_id"`

	// Customer snapshot
	EnrollmentCustomerID    uuid.UUID `gorm:"column:enrollment_customer_id;type:uuid;not null;index:idx_enrollments_customer" json:"enrollment_customer_id"`
	EnrollmentCustomerName  string    `gorm:"column:enrollment_customer_name;size:50;not null" json:"enrollment_customer_name"`
	EnrollmentCustomerPhone string    `gorm:"column:enrollment_customer_phone;size:16;not null" json:"enrollment_customer_phone"`

	// Product snapshot
	EnrollmentProductID            uuid.UUID       `gorm:"column:enrollment_product_id;type:uuid;not null;index:idx_enrollments_product" json:"enrollment_product_id"`
	EnrollmentProductCode          string          `gorm:"column:enrollment_product_code;size:25;not null" json:"enrollment_product_code"`
	EnrollmentProductName          string          `gorm:"column:enrollment_product_name;size:255;not null" json:"enrollment_product_name"`
	EnrollmentProductDescription   string          `gorm:"column:enrollment_product_description;type:text" json:"enrollment_product_description"`
	EnrollmentProductNumberInStock int             `gorm:"column:enrollment_product_number_in_stock;not null" json:"enrollment_product_number_in_stock"`
	EnrollmentProductPrice         decimal.Decimal `gorm:"column:enrollment_product_price;type:numeric(12,2);not null" json:"enrollment_product_price"`
	EnrollmentProductStartDate     time.Time       `gorm:"column:enrollment_product_start_date;not null" json:"enrollment_product_start_date"`
	EnrollmentProductEndDate       time.Time       `gorm:"column:enrollment_product_end_date;not null" json:"enrollment_product_end_date"`

	EnrollmentDate time.Time  `gorm:"column:enrollment_date;not null;autoCreateTime" json:"enrollment_date"`
	CompletionDate *time.Time `gorm:"column:enrollment_completion_date" json:"enrollment_completion_date,omitempty"`

	EnrollmentFee  *decimal.Decimal `gorm:"column:enrollment_fee;type:numeric(12,2)" json:"enrollment_fee,omitempty"`
	EnrollmentPaid bool             `gorm:"column:enrollment_paid;not null;default:false" json:"enrollment_paid"`

	CreatedAt time.Time `gorm:"column:enrollment_created_at;autoCreateTime" json:"enrollment_created_at"`
	UpdatedAt time.Time `gorm:"column:enrollment_updated_at;autoUpdateTime" json:"enrollment_updated_at"`
}

func (EnrollmentModel) TableName() string { return "enrollments" }

func (e *EnrollmentModel) BeforeCreate(tx *gorm.DB) error {
	if e.EnrollmentID == uuid.Nil {
		e.EnrollmentID = uuid.New()
	}
	return nil
}

/* ===================== Helpers ===================== */

func (e *EnrollmentModel) IsCompleted() bool { return e.CompletionDate != nil }

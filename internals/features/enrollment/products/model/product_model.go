package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

/* ===================== Model ===================== */

// ProductModel is a course offering. product_number_in_stock is the one
// contended counter in the system: it is only ever mutated inside the
// enrollment create/complete transactions, never read-modify-written from
// application memory.
type ProductModel struct {
	ProductID uuid.UUID `gorm:"column:product_id;type:uuid;default:(gen_random_uuid());primaryKey" json:"product_id"`

	ProductCode        string `gorm:"column:product_code;size:25;uniqueIndex;not null" json:"product_code"`
	ProductName        string `gorm:"column:product_name;size:255;not null" json:"product_name"`
	ProductDescription string `gorm:"column:product_description;type:text;not null" json:"product_description"`

	// Instructor snapshot (denormalized copy, not a live reference):
	// later edits to the instructor record do not touch existing products.
	ProductInstructorID   *uuid.UUID `gorm:"column:product_instructor_id;type:uuid" json:"product_instructor_id,omitempty"`
	ProductInstructorName string     `gorm:"column:product_instructor_name;size:100" json:"product_instructor_name"`

	ProductNumberInStock int `gorm:"column:product_number_in_stock;not null;check:product_number_in_stock >= 0" json:"product_number_in_stock"`

	ProductStartDate time.Time `gorm:"column:product_start_date;not null" json:"product_start_date"`
	ProductEndDate   time.Time `gorm:"column:product_end_date;not null" json:"product_end_date"`

	ProductPrice decimal.Decimal `gorm:"column:product_price;type:numeric(12,2);not null" json:"product_price"`

	ProductActive bool `gorm:"column:product_active;not null;default:true" json:"product_active"`

	CreatedAt time.Time `gorm:"column:product_created_at;autoCreateTime" json:"product_created_at"`
	UpdatedAt time.Time `gorm:"column:product_updated_at;autoUpdateTime" json:"product_updated_at"`
}

func (ProductModel) TableName() string { return "products" }

func (p *ProductModel) BeforeCreate(tx *gorm.DB) error {
	if p.ProductID == uuid.Nil {
		p.ProductID = uuid.New()
	}
	return nil
}

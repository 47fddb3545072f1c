package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ===================== Model ===================== */

type CustomerModel struct {
	CustomerID uuid.UUID `gorm:"column:customer_id;type:uuid;default:(gen_random_uuid());primaryKey" json:"customer_id"`

	// Human-readable number minted from the customer_number sequence.
	CustomerNumber string `gorm:"column:customer_number;size:10;uniqueIndex;not null" json:"customer_number"`

	CustomerName    string `gorm:"column:customer_name;size:50;not null" json:"customer_name"`
	CustomerContact string `gorm:"column:customer_contact;size:50;not null" json:"customer_contact"`
	CustomerEmail   string `gorm:"column:customer_email;size:50;uniqueIndex;not null" json:"customer_email"`
	CustomerPhone   string `gorm:"column:customer_phone;size:16;not null" json:"customer_phone"`
	CustomerAddress string `gorm:"column:customer_address;size:255;not null" json:"customer_address"`

	CustomerComments string `gorm:"column:customer_comments;size:2000" json:"customer_comments"`

	CustomerActive        bool `gorm:"column:customer_active;not null;default:true" json:"customer_active"`
	CustomerClickUpActive bool `gorm:"column:customer_clickup_active;not null;default:false" json:"customer_clickup_active"`
	CustomerGitHubActive  bool `gorm:"column:customer_github_active;not null;default:false" json:"customer_github_active"`

	CreatedAt time.Time `gorm:"column:customer_created_at;autoCreateTime" json:"customer_created_at"`
	UpdatedAt time.Time `gorm:"column:customer_updated_at;autoUpdateTime" json:"customer_updated_at"`
}

func (CustomerModel) TableName() string { return "customers" }

func (m *CustomerModel) BeforeCreate(tx *gorm.DB) error {
	if m.CustomerID == uuid.Nil {
		m.CustomerID = uuid.New()
	}
	return nil
}

/* ===================== Join table ===================== */

// CustomerCategoryModel links a customer to the ticket categories it is
// subscribed to (plain link rows, no snapshot needed here).
type CustomerCategoryModel struct {
	CustomerID uuid.UUID `gorm:"column:customer_id;type:uuid;primaryKey" json:"customer_id"`
	CategoryID uuid.UUID `gorm:"column:category_id;type:uuid;primaryKey" json:"category_id"`
}

func (CustomerCategoryModel) TableName() string { return "customer_categories" }

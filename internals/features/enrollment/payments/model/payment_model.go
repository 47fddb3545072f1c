package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* ===================== Enums (string) ===================== */

const (
	PaymentMethodEFT     = "EFT"
	PaymentMethodCard    = "card"
	PaymentMethodGateway = "gateway"
	PaymentMethodManual  = "manual"
)

const (
	PaymentProviderPayFast  = "payfast"
	PaymentProviderMidtrans = "midtrans"
	PaymentProviderManual   = "manual"
)

/* ===================== Model ===================== */

// PaymentModel is one externally-sourced payment event tied to exactly one
// enrollment. The unique index on payment_enrollment_id backs the
// at-most-once-paid rule at the storage level; the workflow rejects
// duplicates before ever getting here.
type PaymentModel struct {
	PaymentID uuid.UUID `gorm:"column:payment_id;type:uuid;default:(gen_random_uuid());primaryKey" json:"payment_id"`

	PaymentEnrollmentID uuid.UUID `gorm:"column:payment_enrollment_id;type:uuid;not null;uniqueIndex:idx_payments_enrollment" json:"payment_enrollment_id"`
	PaymentCustomerID   uuid.UUID `gorm:"column:payment_customer_id;type:uuid;not null;index:idx_payments_customer" json:"payment_customer_id"`

	PaymentCustomerName string `gorm:"column:payment_customer_name;size:50;not null" json:"payment_customer_name"`

	PaymentProductCode        string `gorm:"column:payment_product_code;size:25;not null" json:"payment_product_code"`
	PaymentProductInvoice     string `gorm:"column:payment_product_invoice;size:50;not null" json:"payment_product_invoice"`
	PaymentProductDescription string `gorm:"column:payment_product_description;size:100" json:"payment_product_description"`

	PaymentConfirmationEmail string `gorm:"column:payment_confirmation_email;size:50" json:"payment_confirmation_email"`

	// Amounts: net = gross - fee, all non-negative.
	PaymentGrossAmount decimal.Decimal `gorm:"column:payment_gross_amount;type:numeric(12,2);not null" json:"payment_gross_amount"`
	PaymentNetAmount   decimal.Decimal `gorm:"column:payment_net_amount;type:numeric(12,2);not null" json:"payment_net_amount"`
	PaymentFeeAmount   decimal.Decimal `gorm:"column:payment_fee_amount;type:numeric(12,2);not null" json:"payment_fee_amount"`

	PaymentTransactionDate time.Time `gorm:"column:payment_transaction_date;not null" json:"payment_transaction_date"`
	PaymentIsFullPayment   bool      `gorm:"column:payment_is_full_payment;not null;default:true" json:"payment_is_full_payment"`

	// Provider identifiers
	PaymentProviderTransactionID string `gorm:"column:payment_provider_transaction_id;size:50;not null" json:"payment_provider_transaction_id"`
	PaymentMethod                string `gorm:"column:payment_method;size:50;not null" json:"payment_method"`
	PaymentServiceProvider       string `gorm:"column:payment_service_provider;size:50;not null" json:"payment_service_provider"`
	PaymentMerchantID            string `gorm:"column:payment_merchant_id;size:50" json:"payment_merchant_id"`
	PaymentStatus                string `gorm:"column:payment_status;size:50;not null" json:"payment_status"`
	PaymentSignature             string `gorm:"column:payment_signature;size:100" json:"payment_signature"`

	// Raw provider payload kept for reconciliation.
	PaymentMeta datatypes.JSONMap `gorm:"column:payment_meta;type:jsonb" json:"payment_meta,omitempty"`

	CreatedAt time.Time `gorm:"column:payment_created_at;autoCreateTime" json:"payment_created_at"`
}

func (PaymentModel) TableName() string { return "payments" }

func (p *PaymentModel) BeforeCreate(tx *gorm.DB) error {
	if p.PaymentID == uuid.Nil {
		p.PaymentID = uuid.New()
	}
	return nil
}

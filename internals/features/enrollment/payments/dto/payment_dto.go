package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	model "helpdesku_backend/internals/features/enrollment/payments/model"
)

// PaymentNotificationRequest is the normalized provider notification.
// Provider-specific field names (PayFast m_payment_id/custom_str1 etc.) are
// mapped to this canonical shape at the gateway edge; the workflow only ever
// sees the (enrollmentId, customerId) pairing.
type PaymentNotificationRequest struct {
	EnrollmentID uuid.UUID `json:"enrollmentId" validate:"required"`
	CustomerID   uuid.UUID `json:"customerId" validate:"required"`

	CustomerName string `json:"customerName" validate:"required,min=2,max=50"`

	ProductCode        string `json:"productCode" validate:"required,min=3,max=25"`
	ProductInvoice     string `json:"productInvoice" validate:"required,min=3,max=50"`
	ProductDescription string `json:"productDescription" validate:"omitempty,max=100"`

	ConfirmationEmail string `json:"confirmationEmail" validate:"omitempty,email,max=50"`

	GrossAmount decimal.Decimal `json:"grossAmount" validate:"required"`
	NetAmount   decimal.Decimal `json:"netAmount" validate:"required"`
	FeeAmount   decimal.Decimal `json:"feeAmount"`

	TransactionID   string `json:"transactionId" validate:"required,min=3,max=50"`
	PaymentMethod   string `json:"paymentMethod" validate:"omitempty,max=50"`
	ServiceProvider string `json:"serviceProvider" validate:"required,min=2,max=50"`
	MerchantID      string `json:"merchantId" validate:"omitempty,max=50"`
	PaymentStatus   string `json:"paymentStatus" validate:"required,min=2,max=50"`
	Signature       string `json:"signature" validate:"omitempty,max=100"`

	IsFullPayment *bool             `json:"isFullPayment"`
	Meta          datatypes.JSONMap `json:"meta"`
}

func (r *PaymentNotificationRequest) ToModel() *model.PaymentModel {
	full := true
	if r.IsFullPayment != nil {
		full = *r.IsFullPayment
	}
	method := r.PaymentMethod
	if method == "" {
		method = model.PaymentMethodEFT
	}
	return &model.PaymentModel{
		PaymentEnrollmentID:          r.EnrollmentID,
		PaymentCustomerID:            r.CustomerID,
		PaymentCustomerName:          r.CustomerName,
		PaymentProductCode:           r.ProductCode,
		PaymentProductInvoice:        r.ProductInvoice,
		PaymentProductDescription:    r.ProductDescription,
		PaymentConfirmationEmail:     r.ConfirmationEmail,
		PaymentGrossAmount:           r.GrossAmount,
		PaymentNetAmount:             r.NetAmount,
		PaymentFeeAmount:             r.FeeAmount,
		PaymentTransactionDate:       time.Now(),
		PaymentIsFullPayment:         full,
		PaymentProviderTransactionID: r.TransactionID,
		PaymentMethod:                method,
		PaymentServiceProvider:       r.ServiceProvider,
		PaymentMerchantID:            r.MerchantID,
		PaymentStatus:                r.PaymentStatus,
		PaymentSignature:             r.Signature,
		PaymentMeta:                  r.Meta,
	}
}

// CheckoutRequest asks the gateway for a hosted payment page for one
// unpaid enrollment.
type CheckoutRequest struct {
	EnrollmentID  uuid.UUID `json:"enrollmentId" validate:"required"`
	CustomerID    uuid.UUID `json:"customerId" validate:"required"`
	CustomerEmail string    `json:"customerEmail" validate:"omitempty,email"`
}

type CheckoutResponse struct {
	Token       string `json:"token"`
	RedirectURL string `json:"redirect_url"`
}

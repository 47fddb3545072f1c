// file: internals/features/enrollment/payments/service/payment_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	enrollmentModel "helpdesku_backend/internals/features/enrollment/enrollments/model"
	enrollmentService "helpdesku_backend/internals/features/enrollment/enrollments/service"
	model "helpdesku_backend/internals/features/enrollment/payments/model"
)

var ErrAlreadyPaid = errors.New("enrollment already paid")

// ErrEnrollmentNotFound is shared with the enrollment workflow so callers
// match one sentinel regardless of which flow raised it.
var ErrEnrollmentNotFound = enrollmentService.ErrEnrollmentNotFound

type PaymentService struct {
	DB *gorm.DB
}

func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{DB: db}
}

// RecordPayment persists the payment event and flips the enrollment's paid
// flag in one transaction. A payment for an already-paid enrollment is
// rejected before anything is written; a payment row must never exist while
// the enrollment remains unpaid, and vice versa.
//
// The info/error logs are the reconciliation trail, not control flow.
func (s *PaymentService) RecordPayment(ctx context.Context, payment *model.PaymentModel) (*model.PaymentModel, error) {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var enrollment enrollmentModel.EnrollmentModel
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("enrollment_id = ? AND enrollment_customer_id = ?",
				payment.PaymentEnrollmentID, payment.PaymentCustomerID).
			First(&enrollment).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEnrollmentNotFound
			}
			return fmt.Errorf("load enrollment: %w", err)
		}

		// Reject before persisting: no duplicate payment row may be created.
		if enrollment.EnrollmentPaid {
			return ErrAlreadyPaid
		}

		if err := tx.Create(payment).Error; err != nil {
			return fmt.Errorf("create payment: %w", err)
		}

		res := tx.Model(&enrollmentModel.EnrollmentModel{}).
			Where("enrollment_id = ?", enrollment.EnrollmentID).
			UpdateColumn("enrollment_paid", true)
		if res.Error != nil {
			return fmt.Errorf("mark enrollment paid: %w", res.Error)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrAlreadyPaid) {
			log.Printf("[ERROR] Failed Post Payment Received for Enrollment Paid: enrollment=%s provider_tx=%s",
				payment.PaymentEnrollmentID, payment.PaymentProviderTransactionID)
		}
		return nil, err
	}

	log.Printf("[INFO] Successful Payment Received for Enrollment: enrollment=%s provider_tx=%s gross=%s",
		payment.PaymentEnrollmentID, payment.PaymentProviderTransactionID, payment.PaymentGrossAmount)
	return payment, nil
}

// FindByEnrollment returns the payment recorded for one enrollment.
func (s *PaymentService) FindByEnrollment(ctx context.Context, enrollmentID uuid.UUID) (*model.PaymentModel, error) {
	var payment model.PaymentModel
	if err := s.DB.WithContext(ctx).
		Where("payment_enrollment_id = ?", enrollmentID).
		First(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

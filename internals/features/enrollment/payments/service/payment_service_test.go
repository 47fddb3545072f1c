// file: internals/features/enrollment/payments/service/payment_service_test.go
package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	enrollmentModel "helpdesku_backend/internals/features/enrollment/enrollments/model"
	model "helpdesku_backend/internals/features/enrollment/payments/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&enrollmentModel.EnrollmentModel{},
		&model.PaymentModel{},
	))
	return db
}

func seedEnrollment(t *testing.T, db *gorm.DB) *enrollmentModel.EnrollmentModel {
	t.Helper()
	fee := decimal.NewFromFloat(2500.00)
	e := &enrollmentModel.EnrollmentModel{
		EnrollmentCustomerID:           uuid.New(),
		EnrollmentCustomerName:         "Acme Trading",
		EnrollmentCustomerPhone:        "0215550123",
		EnrollmentProductID:            uuid.New(),
		EnrollmentProductCode:          "CRS-EST01",
		EnrollmentProductName:          "Advanced Estimating",
		EnrollmentProductNumberInStock: 5,
		EnrollmentProductPrice:         fee,
		EnrollmentProductStartDate:     time.Now().AddDate(0, 1, 0),
		EnrollmentProductEndDate:       time.Now().AddDate(0, 1, 5),
		EnrollmentDate:                 time.Now(),
		EnrollmentFee:                  &fee,
	}
	require.NoError(t, db.Create(e).Error)
	return e
}

func notification(e *enrollmentModel.EnrollmentModel) *model.PaymentModel {
	return &model.PaymentModel{
		PaymentEnrollmentID:          e.EnrollmentID,
		PaymentCustomerID:            e.EnrollmentCustomerID,
		PaymentCustomerName:          e.EnrollmentCustomerName,
		PaymentProductCode:           e.EnrollmentProductCode,
		PaymentProductInvoice:        "INV-00042",
		PaymentGrossAmount:           decimal.NewFromFloat(2500.00),
		PaymentNetAmount:             decimal.NewFromFloat(2437.50),
		PaymentFeeAmount:             decimal.NewFromFloat(62.50),
		PaymentTransactionDate:       time.Now(),
		PaymentIsFullPayment:         true,
		PaymentProviderTransactionID: "pf_" + uuid.NewString()[:12],
		PaymentMethod:                model.PaymentMethodEFT,
		PaymentServiceProvider:       model.PaymentProviderPayFast,
		PaymentStatus:                "COMPLETE",
	}
}

func TestRecordPaymentMarksEnrollmentPaid(t *testing.T) {
	db := openTestDB(t)
	svc := NewPaymentService(db)
	e := seedEnrollment(t, db)

	receipt, err := svc.RecordPayment(context.Background(), notification(e))
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, receipt.PaymentID)

	var reread enrollmentModel.EnrollmentModel
	require.NoError(t, db.First(&reread, "enrollment_id = ?", e.EnrollmentID).Error)
	require.True(t, reread.EnrollmentPaid)

	var count int64
	require.NoError(t, db.Model(&model.PaymentModel{}).
		Where("payment_enrollment_id = ?", e.EnrollmentID).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestRecordPaymentRejectsDuplicate(t *testing.T) {
	db := openTestDB(t)
	svc := NewPaymentService(db)
	e := seedEnrollment(t, db)

	_, err := svc.RecordPayment(context.Background(), notification(e))
	require.NoError(t, err)

	// Second notification for the same enrollment: rejected before
	// persistence, exactly one payment row remains.
	_, err = svc.RecordPayment(context.Background(), notification(e))
	require.ErrorIs(t, err, ErrAlreadyPaid)

	var count int64
	require.NoError(t, db.Model(&model.PaymentModel{}).
		Where("payment_enrollment_id = ?", e.EnrollmentID).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestRecordPaymentUnknownEnrollment(t *testing.T) {
	db := openTestDB(t)
	svc := NewPaymentService(db)
	e := seedEnrollment(t, db)

	stray := notification(e)
	stray.PaymentEnrollmentID = uuid.New()

	_, err := svc.RecordPayment(context.Background(), stray)
	require.ErrorIs(t, err, ErrEnrollmentNotFound)

	var count int64
	require.NoError(t, db.Model(&model.PaymentModel{}).Count(&count).Error)
	require.EqualValues(t, 0, count, "rejected payment must not be persisted")
}

func TestRecordPaymentWrongCustomerPairing(t *testing.T) {
	db := openTestDB(t)
	svc := NewPaymentService(db)
	e := seedEnrollment(t, db)

	stray := notification(e)
	stray.PaymentCustomerID = uuid.New()

	// Canonical composite key (enrollmentId, customerId): a mismatched
	// customer id must miss the lookup.
	_, err := svc.RecordPayment(context.Background(), stray)
	require.ErrorIs(t, err, ErrEnrollmentNotFound)
}

func TestFindByEnrollment(t *testing.T) {
	db := openTestDB(t)
	svc := NewPaymentService(db)
	e := seedEnrollment(t, db)

	created, err := svc.RecordPayment(context.Background(), notification(e))
	require.NoError(t, err)

	found, err := svc.FindByEnrollment(context.Background(), e.EnrollmentID)
	require.NoError(t, err)
	require.Equal(t, created.PaymentID, found.PaymentID)
}

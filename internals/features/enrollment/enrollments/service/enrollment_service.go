// file: internals/features/enrollment/enrollments/service/enrollment_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	model "helpdesku_backend/internals/features/enrollment/enrollments/model"
	productModel "helpdesku_backend/internals/features/enrollment/products/model"
	customerModel "helpdesku_backend/internals/features/helpdesk/customers/model"
)

/* ===================== Errors ===================== */

var (
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrOutOfStock         = errors.New("product not in stock")
	ErrEnrollmentNotFound = errors.New("enrollment not found")
	ErrAlreadyCompleted   = errors.New("completion already processed")
)

/* ===================== Service ===================== */

// EnrollmentService owns the stock-moving transactions. Every operation is
// all-or-nothing: either the enrollment write and the stock write both
// commit, or neither does.
type EnrollmentService struct {
	DB *gorm.DB
}

func NewEnrollmentService(db *gorm.DB) *EnrollmentService {
	return &EnrollmentService{DB: db}
}

// CreateEnrollment enrolls the customer into the product, snapshotting both
// records and taking one unit of stock.
//
// The product is re-read FOR UPDATE inside the transaction and the decrement
// is guarded by number_in_stock > 0, so two simultaneous requests against a
// product with one seat left cannot both succeed: the second either blocks
// on the row lock and then sees stock 0, or loses the guarded update.
func (s *EnrollmentService) CreateEnrollment(ctx context.Context, customerID, productID uuid.UUID) (*model.EnrollmentModel, error) {
	// Existence check outside the transaction keeps the lock window small;
	// the customer snapshot is re-used inside it (customers are not part of
	// the stock invariant).
	var customer customerModel.CustomerModel
	if err := s.DB.WithContext(ctx).
		First(&customer, "customer_id = ?", customerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("load customer: %w", err)
	}

	var enrollment *model.EnrollmentModel

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1) Re-read the product under the transaction for a consistent
		// stock value.
		var product productModel.ProductModel
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&product, "product_id = ?", productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return fmt.Errorf("load product: %w", err)
		}

		// 2) No seats left: abort with no side effects.
		if product.ProductNumberInStock <= 0 {
			return ErrOutOfStock
		}

		// 3) Snapshot both records into the enrollment.
		enrollment = &model.EnrollmentModel{
			EnrollmentCustomerID:    customer.CustomerID,
			EnrollmentCustomerName:  customer.CustomerName,
			EnrollmentCustomerPhone: customer.CustomerPhone,

			EnrollmentProductID:            product.ProductID,
			EnrollmentProductCode:          product.ProductCode,
			EnrollmentProductName:          product.ProductName,
			EnrollmentProductDescription:   product.ProductDescription,
			EnrollmentProductNumberInStock: product.ProductNumberInStock,
			EnrollmentProductPrice:         product.ProductPrice,
			EnrollmentProductStartDate:     product.ProductStartDate,
			EnrollmentProductEndDate:       product.ProductEndDate,

			EnrollmentDate: time.Now(),
			EnrollmentFee:  &product.ProductPrice,
		}

		// 4) Persist the enrollment.
		if err := tx.Create(enrollment).Error; err != nil {
			return fmt.Errorf("create enrollment: %w", err)
		}

		// 5) Guarded decrement. RowsAffected == 0 means someone took the
		// last seat between our read and this write (only possible on
		// stores without real row locks); treat it as out of stock.
		res := tx.Model(&productModel.ProductModel{}).
			Where("product_id = ? AND product_number_in_stock > 0", product.ProductID).
			UpdateColumn("product_number_in_stock", gorm.Expr("product_number_in_stock - 1"))
		if res.Error != nil {
			return fmt.Errorf("decrement stock: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrOutOfStock
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return enrollment, nil
}

// CompleteEnrollment marks the enrollment's course period as finished and
// returns the seat to the pool. Completion is recorded at most once;
// a second call is rejected, not silently ignored.
func (s *EnrollmentService) CompleteEnrollment(ctx context.Context, enrollmentID, customerID uuid.UUID) (*model.EnrollmentModel, error) {
	var enrollment model.EnrollmentModel

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Composite lookup against the embedded customer snapshot.
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("enrollment_id = ? AND enrollment_customer_id = ?", enrollmentID, customerID).
			First(&enrollment).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEnrollmentNotFound
			}
			return fmt.Errorf("load enrollment: %w", err)
		}

		if enrollment.CompletionDate != nil {
			return ErrAlreadyCompleted
		}

		now := time.Now()
		enrollment.CompletionDate = &now
		// Defensive default: the fee is normally set at create time from
		// the product snapshot.
		if enrollment.EnrollmentFee == nil {
			fee := enrollment.EnrollmentProductPrice
			enrollment.EnrollmentFee = &fee
		}

		if err := tx.Save(&enrollment).Error; err != nil {
			return fmt.Errorf("save enrollment: %w", err)
		}

		// Return the seat. Same transaction: a failed increment rolls the
		// completion back.
		res := tx.Model(&productModel.ProductModel{}).
			Where("product_id = ?", enrollment.EnrollmentProductID).
			UpdateColumn("product_number_in_stock", gorm.Expr("product_number_in_stock + 1"))
		if res.Error != nil {
			return fmt.Errorf("increment stock: %w", res.Error)
		}

		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrEnrollmentNotFound) && !errors.Is(err, ErrAlreadyCompleted) {
			log.Printf("[ERROR] complete enrollment %s: %v", enrollmentID, err)
		}
		return nil, err
	}

	return &enrollment, nil
}

// Lookup finds one enrollment by its canonical composite key.
func (s *EnrollmentService) Lookup(ctx context.Context, enrollmentID, customerID uuid.UUID) (*model.EnrollmentModel, error) {
	var enrollment model.EnrollmentModel
	if err := s.DB.WithContext(ctx).
		Where("enrollment_id = ? AND enrollment_customer_id = ?", enrollmentID, customerID).
		First(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEnrollmentNotFound
		}
		return nil, err
	}
	return &enrollment, nil
}

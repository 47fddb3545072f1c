// file: internals/features/enrollment/enrollments/service/enrollment_service_test.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	model "helpdesku_backend/internals/features/enrollment/enrollments/model"
	productModel "helpdesku_backend/internals/features/enrollment/products/model"
	customerModel "helpdesku_backend/internals/features/helpdesk/customers/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&customerModel.CustomerModel{},
		&productModel.ProductModel{},
		&model.EnrollmentModel{},
	))
	return db
}

func seedCustomer(t *testing.T, db *gorm.DB) *customerModel.CustomerModel {
	t.Helper()
	c := &customerModel.CustomerModel{
		CustomerNumber:  uuid.NewString()[:7],
		CustomerName:    "Acme Trading",
		CustomerContact: "Jo Smit",
		CustomerEmail:   fmt.Sprintf("%s@example.test", uuid.NewString()[:8]),
		CustomerPhone:   "0215550123",
		CustomerAddress: "1 Main Rd, Cape Town",
		CustomerActive:  true,
	}
	require.NoError(t, db.Create(c).Error)
	return c
}

func seedProduct(t *testing.T, db *gorm.DB, stock int) *productModel.ProductModel {
	t.Helper()
	p := &productModel.ProductModel{
		ProductCode:          "CRS-" + uuid.NewString()[:8],
		ProductName:          "Advanced Estimating",
		ProductDescription:   "Five day instructor-led course.",
		ProductNumberInStock: stock,
		ProductStartDate:     time.Now().AddDate(0, 1, 0),
		ProductEndDate:       time.Now().AddDate(0, 1, 5),
		ProductPrice:         decimal.NewFromFloat(2500.00),
		ProductActive:        true,
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func productStock(t *testing.T, db *gorm.DB, id uuid.UUID) int {
	t.Helper()
	var p productModel.ProductModel
	require.NoError(t, db.First(&p, "product_id = ?", id).Error)
	return p.ProductNumberInStock
}

func TestCreateEnrollmentSnapshotsAndDecrementsStock(t *testing.T) {
	db := openTestDB(t)
	svc := NewEnrollmentService(db)
	customer := seedCustomer(t, db)
	product := seedProduct(t, db, 5)

	e, err := svc.CreateEnrollment(context.Background(), customer.CustomerID, product.ProductID)
	require.NoError(t, err)

	require.Equal(t, customer.CustomerID, e.EnrollmentCustomerID)
	require.Equal(t, customer.CustomerName, e.EnrollmentCustomerName)
	require.Equal(t, customer.CustomerPhone, e.EnrollmentCustomerPhone)
	require.Equal(t, product.ProductID, e.EnrollmentProductID)
	require.Equal(t, product.ProductCode, e.EnrollmentProductCode)
	require.Equal(t, 5, e.EnrollmentProductNumberInStock, "snapshot keeps the stock value seen at create time")
	require.NotNil(t, e.EnrollmentFee)
	require.True(t, e.EnrollmentFee.Equal(product.ProductPrice))
	require.False(t, e.EnrollmentPaid)
	require.Nil(t, e.CompletionDate)

	require.Equal(t, 4, productStock(t, db, product.ProductID))
}

func TestCreateEnrollmentUnknownRefs(t *testing.T) {
	db := openTestDB(t)
	svc := NewEnrollmentService(db)
	customer := seedCustomer(t, db)
	product := seedProduct(t, db, 1)

	_, err := svc.CreateEnrollment(context.Background(), uuid.New(), product.ProductID)
	require.ErrorIs(t, err, ErrCustomerNotFound)

	_, err = svc.CreateEnrollment(context.Background(), customer.CustomerID, uuid.New())
	require.ErrorIs(t, err, ErrProductNotFound)

	// Neither failure touched the stock.
	require.Equal(t, 1, productStock(t, db, product.ProductID))
}

func TestCreateEnrollmentLastSeat(t *testing.T) {
	db := openTestDB(t)
	svc := NewEnrollmentService(db)
	first := seedCustomer(t, db)
	second := seedCustomer(t, db)
	product := seedProduct(t, db, 1)

	_, err := svc.CreateEnrollment(context.Background(), first.CustomerID, product.ProductID)
	require.NoError(t, err)
	require.Equal(t, 0, productStock(t, db, product.ProductID))

	_, err = svc.CreateEnrollment(context.Background(), second.CustomerID, product.ProductID)
	require.ErrorIs(t, err, ErrOutOfStock)
	require.Equal(t, 0, productStock(t, db, product.ProductID))

	var count int64
	require.NoError(t, db.Model(&model.EnrollmentModel{}).Count(&count).Error)
	require.EqualValues(t, 1, count, "the rejected attempt must leave no enrollment row")
}

func TestCreateEnrollmentConcurrentOversell(t *testing.T) {
	db := openTestDB(t)
	svc := NewEnrollmentService(db)
	product := seedProduct(t, db, 3)

	const attempts = 8
	customers := make([]*customerModel.CustomerModel, attempts)
	for i := range customers {
		customers[i] = seedCustomer(t, db)
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		rejected  int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(c *customerModel.CustomerModel) {
			defer wg.Done()
			// sqlite serializes writers and surfaces contention as busy
			// errors, so retry until a definitive outcome.
			for {
				_, err := svc.CreateEnrollment(context.Background(), c.CustomerID, product.ProductID)
				switch {
				case err == nil:
					mu.Lock()
					successes++
					mu.Unlock()
					return
				case errors.Is(err, ErrOutOfStock):
					mu.Lock()
					rejected++
					mu.Unlock()
					return
				case strings.Contains(err.Error(), "database is locked") ||
					strings.Contains(err.Error(), "database table is locked"):
					time.Sleep(time.Millisecond)
				default:
					t.Errorf("unexpected error: %v", err)
					return
				}
			}
		}(customers[i])
	}
	wg.Wait()

	require.Equal(t, 3, successes, "exactly the available seats succeed")
	require.Equal(t, attempts-3, rejected)
	require.Equal(t, 0, productStock(t, db, product.ProductID))

	var count int64
	require.NoError(t, db.Model(&model.EnrollmentModel{}).Count(&count).Error)
	require.EqualValues(t, 3, count)
}

func TestCompleteEnrollmentReturnsSeatOnce(t *testing.T) {
	db := openTestDB(t)
	svc := NewEnrollmentService(db)
	customer := seedCustomer(t, db)
	product := seedProduct(t, db, 3)

	e, err := svc.CreateEnrollment(context.Background(), customer.CustomerID, product.ProductID)
	require.NoError(t, err)
	require.Equal(t, 2, productStock(t, db, product.ProductID))

	done, err := svc.CompleteEnrollment(context.Background(), e.EnrollmentID, customer.CustomerID)
	require.NoError(t, err)
	require.NotNil(t, done.CompletionDate)
	require.Equal(t, 3, productStock(t, db, product.ProductID))

	// Idempotent-reject, not a no-op success.
	_, err = svc.CompleteEnrollment(context.Background(), e.EnrollmentID, customer.CustomerID)
	require.ErrorIs(t, err, ErrAlreadyCompleted)
	require.Equal(t, 3, productStock(t, db, product.ProductID), "stock must only be returned once")
}

func TestCompleteEnrollmentCompositeKey(t *testing.T) {
	db := openTestDB(t)
	svc := NewEnrollmentService(db)
	customer := seedCustomer(t, db)
	product := seedProduct(t, db, 1)

	e, err := svc.CreateEnrollment(context.Background(), customer.CustomerID, product.ProductID)
	require.NoError(t, err)

	// Right enrollment id, wrong customer id: the composite lookup must miss.
	_, err = svc.CompleteEnrollment(context.Background(), e.EnrollmentID, uuid.New())
	require.ErrorIs(t, err, ErrEnrollmentNotFound)
}

func TestCompleteEnrollmentDefaultsFee(t *testing.T) {
	db := openTestDB(t)
	svc := NewEnrollmentService(db)
	customer := seedCustomer(t, db)
	product := seedProduct(t, db, 1)

	price := decimal.NewFromFloat(1800.50)
	e := &model.EnrollmentModel{
		EnrollmentCustomerID:           customer.CustomerID,
		EnrollmentCustomerName:         customer.CustomerName,
		EnrollmentCustomerPhone:        customer.CustomerPhone,
		EnrollmentProductID:            product.ProductID,
		EnrollmentProductCode:          product.ProductCode,
		EnrollmentProductName:          product.ProductName,
		EnrollmentProductNumberInStock: 1,
		EnrollmentProductPrice:         price,
		EnrollmentProductStartDate:     product.ProductStartDate,
		EnrollmentProductEndDate:       product.ProductEndDate,
		EnrollmentDate:                 time.Now(),
		// Fee left unset on purpose.
	}
	require.NoError(t, db.Create(e).Error)

	done, err := svc.CompleteEnrollment(context.Background(), e.EnrollmentID, customer.CustomerID)
	require.NoError(t, err)
	require.NotNil(t, done.EnrollmentFee)
	require.True(t, done.EnrollmentFee.Equal(price), "fee defaults to the snapshot price")
}

func TestCompleteEnrollmentRollsBackOnStockWriteFailure(t *testing.T) {
	db := openTestDB(t)
	svc := NewEnrollmentService(db)
	customer := seedCustomer(t, db)
	product := seedProduct(t, db, 1)

	e, err := svc.CreateEnrollment(context.Background(), customer.CustomerID, product.ProductID)
	require.NoError(t, err)

	// Fault injection: fail every update that targets the products table.
	injected := errors.New("injected stock write failure")
	require.NoError(t, db.Callback().Update().Before("gorm:update").
		Register("fail_product_updates", func(tx *gorm.DB) {
			if tx.Statement.Table == "products" {
				_ = tx.AddError(injected)
			}
		}))
	t.Cleanup(func() {
		_ = db.Callback().Update().Remove("fail_product_updates")
	})

	_, err = svc.CompleteEnrollment(context.Background(), e.EnrollmentID, customer.CustomerID)
	require.Error(t, err)

	// The enrollment save committed inside the same transaction must have
	// been rolled back with the failed stock write.
	var reread model.EnrollmentModel
	require.NoError(t, db.First(&reread, "enrollment_id = ?", e.EnrollmentID).Error)
	require.Nil(t, reread.CompletionDate, "no partial commit on stock write failure")
	require.Equal(t, 0, productStock(t, db, product.ProductID))
}

func TestLookup(t *testing.T) {
	db := openTestDB(t)
	svc := NewEnrollmentService(db)
	customer := seedCustomer(t, db)
	product := seedProduct(t, db, 1)

	e, err := svc.CreateEnrollment(context.Background(), customer.CustomerID, product.ProductID)
	require.NoError(t, err)

	found, err := svc.Lookup(context.Background(), e.EnrollmentID, customer.CustomerID)
	require.NoError(t, err)
	require.Equal(t, e.EnrollmentID, found.EnrollmentID)

	_, err = svc.Lookup(context.Background(), e.EnrollmentID, uuid.New())
	require.ErrorIs(t, err, ErrEnrollmentNotFound)
}

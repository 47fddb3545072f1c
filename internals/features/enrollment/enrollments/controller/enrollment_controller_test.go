// file: internals/features/enrollment/enrollments/controller/enrollment_controller_test.go
package controller_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"helpdesku_backend/internals/configs"
	enrollmentModel "helpdesku_backend/internals/features/enrollment/enrollments/model"
	enrollmentRoute "helpdesku_backend/internals/features/enrollment/enrollments/route"
	productModel "helpdesku_backend/internals/features/enrollment/products/model"
	customerModel "helpdesku_backend/internals/features/helpdesk/customers/model"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	configs.JWTSecret = "test-secret"

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&customerModel.CustomerModel{},
		&productModel.ProductModel{},
		&enrollmentModel.EnrollmentModel{},
	))

	app := fiber.New()
	enrollmentRoute.EnrollmentRoutes(app, db)
	return app, db
}

func bearerToken(t *testing.T) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id":   uuid.NewString(),
		"user_name": "tester",
		"role":      "admin",
		"exp":       time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
	require.NoError(t, err)
	return "Bearer " + token
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

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearerToken(t))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env envelope
	_ = json.Unmarshal(raw, &env)
	return resp, env
}

func TestCreateEnrollmentEndpoint(t *testing.T) {
	app, db := setupApp(t)
	customer := seedCustomer(t, db)
	product := seedProduct(t, db, 2)

	resp, env := doJSON(t, app, http.MethodPost, "/api/enrollments/", map[string]any{
		"customerId": customer.CustomerID,
		"productId":  product.ProductID,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, env.Success)

	var e enrollmentModel.EnrollmentModel
	require.NoError(t, json.Unmarshal(env.Data, &e))
	require.Equal(t, customer.CustomerID, e.EnrollmentCustomerID)
	require.Equal(t, product.ProductID, e.EnrollmentProductID)

	var reread productModel.ProductModel
	require.NoError(t, db.First(&reread, "product_id = ?", product.ProductID).Error)
	require.Equal(t, 1, reread.ProductNumberInStock)
}

func TestCreateEnrollmentInvalidRefs(t *testing.T) {
	app, db := setupApp(t)
	customer := seedCustomer(t, db)
	product := seedProduct(t, db, 1)

	resp, env := doJSON(t, app, http.MethodPost, "/api/enrollments/", map[string]any{
		"customerId": uuid.New(),
		"productId":  product.ProductID,
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "Invalid customer.", env.Message)

	resp, env = doJSON(t, app, http.MethodPost, "/api/enrollments/", map[string]any{
		"customerId": customer.CustomerID,
		"productId":  uuid.New(),
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "Invalid product.", env.Message)
}

func TestCreateEnrollmentOutOfStock(t *testing.T) {
	app, db := setupApp(t)
	first := seedCustomer(t, db)
	second := seedCustomer(t, db)
	product := seedProduct(t, db, 1)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/enrollments/", map[string]any{
		"customerId": first.CustomerID,
		"productId":  product.ProductID,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, env := doJSON(t, app, http.MethodPost, "/api/enrollments/", map[string]any{
		"customerId": second.CustomerID,
		"productId":  product.ProductID,
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "Product not in stock.", env.Message)
}

func TestCompletionEndpoint(t *testing.T) {
	app, db := setupApp(t)
	customer := seedCustomer(t, db)
	product := seedProduct(t, db, 1)

	resp, env := doJSON(t, app, http.MethodPost, "/api/enrollments/", map[string]any{
		"customerId": customer.CustomerID,
		"productId":  product.ProductID,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var e enrollmentModel.EnrollmentModel
	require.NoError(t, json.Unmarshal(env.Data, &e))

	resp, _ = doJSON(t, app, http.MethodPost, "/api/completions/", map[string]any{
		"enrollmentId": e.EnrollmentID,
		"customerId":   customer.CustomerID,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Second completion is rejected, not silently accepted.
	resp, env = doJSON(t, app, http.MethodPost, "/api/completions/", map[string]any{
		"enrollmentId": e.EnrollmentID,
		"customerId":   customer.CustomerID,
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "Completion already processed.", env.Message)

	resp, env = doJSON(t, app, http.MethodPost, "/api/completions/", map[string]any{
		"enrollmentId": uuid.New(),
		"customerId":   customer.CustomerID,
	})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Equal(t, "Enrollment not found.", env.Message)
}

func TestEnrollmentsRequireToken(t *testing.T) {
	app, db := setupApp(t)
	customer := seedCustomer(t, db)
	product := seedProduct(t, db, 1)

	b, _ := json.Marshal(map[string]any{
		"customerId": customer.CustomerID,
		"productId":  product.ProductID,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/enrollments/", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

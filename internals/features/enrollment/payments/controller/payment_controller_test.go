// file: internals/features/enrollment/payments/controller/payment_controller_test.go
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
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	enrollmentModel "helpdesku_backend/internals/features/enrollment/enrollments/model"
	paymentModel "helpdesku_backend/internals/features/enrollment/payments/model"
	paymentRoute "helpdesku_backend/internals/features/enrollment/payments/route"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&enrollmentModel.EnrollmentModel{},
		&paymentModel.PaymentModel{},
	))

	app := fiber.New()
	paymentRoute.PaymentRoutes(app, db)
	return app, db
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

func notificationBody(e *enrollmentModel.EnrollmentModel) map[string]any {
	return map[string]any{
		"enrollmentId":    e.EnrollmentID,
		"customerId":      e.EnrollmentCustomerID,
		"customerName":    e.EnrollmentCustomerName,
		"productCode":     e.EnrollmentProductCode,
		"productInvoice":  "INV-00042",
		"grossAmount":     "2500.00",
		"netAmount":       "2437.50",
		"feeAmount":       "62.50",
		"transactionId":   "pf_" + uuid.NewString()[:12],
		"serviceProvider": "payfast",
		"paymentStatus":   "COMPLETE",
	}
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) (*http.Response, string) {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(raw)
}

func TestNotificationSuccess(t *testing.T) {
	app, db := setupApp(t)
	e := seedEnrollment(t, db)

	resp, body := postJSON(t, app, "/api/payments/notification", notificationBody(e))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "Transaction Successful", body)

	var reread enrollmentModel.EnrollmentModel
	require.NoError(t, db.First(&reread, "enrollment_id = ?", e.EnrollmentID).Error)
	require.True(t, reread.EnrollmentPaid)
}

func TestNotificationAlreadyPaid(t *testing.T) {
	app, db := setupApp(t)
	e := seedEnrollment(t, db)

	resp, _ := postJSON(t, app, "/api/payments/notification", notificationBody(e))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := postJSON(t, app, "/api/payments/notification", notificationBody(e))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "Enrollment already paid.", body)

	var count int64
	require.NoError(t, db.Model(&paymentModel.PaymentModel{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestNotificationUnknownEnrollment(t *testing.T) {
	app, db := setupApp(t)
	e := seedEnrollment(t, db)

	body := notificationBody(e)
	body["enrollmentId"] = uuid.New()

	resp, text := postJSON(t, app, "/api/payments/notification", body)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Equal(t, "Enrollment not found.", text)
}

func TestNotificationNetExceedsGross(t *testing.T) {
	app, db := setupApp(t)
	e := seedEnrollment(t, db)

	body := notificationBody(e)
	body["netAmount"] = "9999.00"

	resp, _ := postJSON(t, app, "/api/payments/notification", body)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestNotificationNegativeAmounts(t *testing.T) {
	app, db := setupApp(t)
	e := seedEnrollment(t, db)

	for _, field := range []string{"grossAmount", "netAmount", "feeAmount"} {
		body := notificationBody(e)
		body["grossAmount"] = "-2500.00"
		body["netAmount"] = "-2600.00"
		body[field] = "-1.00"

		resp, text := postJSON(t, app, "/api/payments/notification", body)
		require.Equalf(t, http.StatusBadRequest, resp.StatusCode, "field %s", field)
		require.Equal(t, "amounts must not be negative", text)
	}

	var count int64
	require.NoError(t, db.Model(&paymentModel.PaymentModel{}).Count(&count).Error)
	require.Zero(t, count)

	var reread enrollmentModel.EnrollmentModel
	require.NoError(t, db.First(&reread, "enrollment_id = ?", e.EnrollmentID).Error)
	require.False(t, reread.EnrollmentPaid)
}

func TestNotificationLegacyPath(t *testing.T) {
	app, db := setupApp(t)
	e := seedEnrollment(t, db)

	// POST /api/payments is kept for providers configured with the old URL.
	resp, body := postJSON(t, app, "/api/payments/", notificationBody(e))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "Transaction Successful", body)
}

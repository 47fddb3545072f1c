// file: internals/features/helpdesk/customers/controller/customer_controller_test.go
package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	customerModel "helpdesku_backend/internals/features/helpdesk/customers/model"
	masterdataModel "helpdesku_backend/internals/features/helpdesk/masterdata/model"
	counterModel "helpdesku_backend/internals/features/sequence/model"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&counterModel.Counter{},
		&masterdataModel.CategoryModel{},
		&customerModel.CustomerModel{},
		&customerModel.CustomerCategoryModel{},
	))

	ctl := NewCustomerController(db)
	app := fiber.New()
	app.Get("/api/customers", ctl.List)
	app.Get("/api/customers/:id", ctl.GetByID)
	app.Post("/api/customers", ctl.Create)
	app.Put("/api/customers/:id", ctl.Update)
	return app, db
}

func customerBody() map[string]any {
	return map[string]any{
		"name":    "Acme Trading",
		"contact": "Jo Smit",
		"email":   uuid.NewString()[:8] + "@example.test",
		"phone":   "0215550123",
		"address": "1 Main Rd, Cape Town",
	}
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, map[string]any) {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var parsed map[string]any
	_ = json.Unmarshal(raw, &parsed)
	return resp, parsed
}

func TestCreateCustomerMintsSequentialNumbers(t *testing.T) {
	app, _ := setupApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/customers", customerBody())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	data, _ := body["data"].(map[string]any)
	require.Equal(t, "0000001", data["customer_number"])

	resp, body = doJSON(t, app, http.MethodPost, "/api/customers", customerBody())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	data, _ = body["data"].(map[string]any)
	require.Equal(t, "0000002", data["customer_number"])
}

func TestCreateCustomerInvalidCategoryIDs(t *testing.T) {
	app, db := setupApp(t)

	body := customerBody()
	body["categories"] = []string{uuid.NewString()}

	resp, parsed := doJSON(t, app, http.MethodPost, "/api/customers", body)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "Invalid category IDs", parsed["message"])

	var count int64
	require.NoError(t, db.Model(&customerModel.CustomerModel{}).Count(&count).Error)
	require.Zero(t, count, "rejected create must not persist a customer")
}

func TestCreateCustomerLinksCategories(t *testing.T) {
	app, db := setupApp(t)

	category := masterdataModel.CategoryModel{CategoryName: "Hardware"}
	require.NoError(t, db.Create(&category).Error)

	body := customerBody()
	body["categories"] = []string{category.CategoryID.String()}

	resp, parsed := doJSON(t, app, http.MethodPost, "/api/customers", body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	data, _ := parsed["data"].(map[string]any)
	customerID := data["customer_id"].(string)

	var links []customerModel.CustomerCategoryModel
	require.NoError(t, db.Where("customer_id = ?", customerID).Find(&links).Error)
	require.Len(t, links, 1)
	require.Equal(t, category.CategoryID, links[0].CategoryID)
}

func TestCreateCustomerDuplicateEmail(t *testing.T) {
	app, _ := setupApp(t)

	body := customerBody()
	resp, _ := doJSON(t, app, http.MethodPost, "/api/customers", body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, parsed := doJSON(t, app, http.MethodPost, "/api/customers", body)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "Duplicate record", parsed["message"])
}

func TestGetCustomerNotFound(t *testing.T) {
	app, _ := setupApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/customers/"+uuid.NewString(), nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

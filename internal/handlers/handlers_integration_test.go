package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"clinicdesk/internal/handlers"
	"clinicdesk/internal/middleware"
	"clinicdesk/internal/models"
	"clinicdesk/internal/repositories"
	"clinicdesk/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupApp sets up a Fiber app for testing with in-memory SQLite and all
// handlers/services wired the same way main does.
func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	viper.SetDefault("JWT_SECRET", "test_jwt_secret")
	viper.AutomaticEnv()
	jwtSecret := viper.GetString("JWT_SECRET")

	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory database: %v", err)
	}

	err = db.AutoMigrate(
		&models.Customer{},
		&models.Service{},
		&models.Product{},
		&models.Appointment{},
		&models.Order{},
		&models.OrderServiceLine{},
		&models.OrderProductLine{},
	)
	if err != nil {
		t.Fatalf("failed to auto-migrate database: %v", err)
	}

	customerRepo := repositories.NewGORMCustomerRepository(db)
	serviceRepo := repositories.NewGORMServiceRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)
	appointmentRepo := repositories.NewGORMAppointmentRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)

	customerService := services.NewCustomerService(customerRepo)
	catalogService := services.NewCatalogService(serviceRepo, productRepo)
	appointmentService := services.NewAppointmentService(appointmentRepo, customerRepo)
	orderService := services.NewOrderService(orderRepo, customerRepo, nil) // nil for RabbitMQ client
	invoiceService := services.NewInvoiceService(t.TempDir())
	authService, err := services.NewAuthService("britney", "1234", jwtSecret)
	if err != nil {
		t.Fatalf("failed to build auth service: %v", err)
	}

	authHandler := handlers.NewAuthHandler(authService)
	customerHandler := handlers.NewCustomerHandler(customerService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService)
	orderHandler := handlers.NewOrderHandler(orderService)
	reportHandler := handlers.NewReportHandler(orderService, invoiceService)

	app := fiber.New()
	authHandler.RegisterRoutes(app)
	customerHandler.RegisterRoutes(app)
	catalogHandler.RegisterRoutes(app)
	appointmentHandler.RegisterRoutes(app)
	orderHandler.RegisterRoutes(app)
	protected := app.Group("", middleware.AuthRequired(authService))
	reportHandler.RegisterRoutes(protected)

	return app, db
}

// TestMain suppresses logging during tests for cleaner output.
func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewReader(jsonBody)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	assert.NoError(t, err)

	var decoded map[string]interface{}
	raw, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	resp.Body.Close()
	if len(raw) > 0 {
		// List endpoints return arrays; leave decoded nil for those.
		_ = json.Unmarshal(raw, &decoded)
	}
	return resp, decoded
}

func seedCustomer(t *testing.T, app *fiber.App, fname, phone, email string) uint {
	t.Helper()
	resp, body := doJSON(t, app, http.MethodPost, "/customers", map[string]interface{}{
		"fname":    fname,
		"lname":    "Smith",
		"phone_no": phone,
		"email":    email,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	customer := body["customer"].(map[string]interface{})
	return uint(customer["user_id"].(float64))
}

func annOrderBody(userID uint) map[string]interface{} {
	return map[string]interface{}{
		"user_id":           userID,
		"fname":             "Ann",
		"email":             "a@x.com",
		"phone_no":          "555",
		"total_order_price": 120,
		"payment_method":    "cash",
		"order_status":      "paid",
		"services": []map[string]interface{}{
			{"service_id": 1, "service_name": "Facial", "service_price": 100, "total_service_price": 100},
		},
		"products": []map[string]interface{}{
			{"product_id": 1, "product_name": "Cream", "product_price": 20, "quantity": 1, "total_product_price": 20},
		},
	}
}

func TestCreateAndGetOrder(t *testing.T) {
	app, _ := setupApp(t)
	userID := seedCustomer(t, app, "Ann", "555", "a@x.com")

	resp, body := doJSON(t, app, http.MethodPost, "/orders", annOrderBody(userID))
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Order created successfully", body["message"])
	orderID := uint(body["order_id"].(float64))
	assert.NotZero(t, orderID)

	resp, body = doJSON(t, app, http.MethodGet, fmt.Sprintf("/orders/%d", orderID), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(userID), body["user_id"])
	assert.Equal(t, 120.0, body["total_order_price"])

	orderServices := body["services"].([]interface{})
	orderProducts := body["products"].([]interface{})
	assert.Len(t, orderServices, 1)
	assert.Len(t, orderProducts, 1)
	assert.Equal(t, "Facial", orderServices[0].(map[string]interface{})["service_name"])
	assert.Equal(t, "Cream", orderProducts[0].(map[string]interface{})["product_name"])
}

func TestCreateOrder_ResolvesCustomerByPhone(t *testing.T) {
	app, _ := setupApp(t)
	userID := seedCustomer(t, app, "Ann", "555", "a@x.com")

	order := annOrderBody(0)
	delete(order, "user_id")
	resp, body := doJSON(t, app, http.MethodPost, "/orders", order)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	created := body["order"].(map[string]interface{})
	assert.Equal(t, float64(userID), created["user_id"])
}

func TestCreateOrder_UnknownPhoneIs404(t *testing.T) {
	app, db := setupApp(t)

	order := annOrderBody(0)
	delete(order, "user_id")
	order["phone_no"] = "000"
	resp, _ := doJSON(t, app, http.MethodPost, "/orders", order)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreateOrder_MissingFieldsIs400(t *testing.T) {
	app, _ := setupApp(t)
	userID := seedCustomer(t, app, "Ann", "555", "a@x.com")

	order := annOrderBody(userID)
	delete(order, "payment_method")
	resp, _ := doJSON(t, app, http.MethodPost, "/orders", order)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	order = annOrderBody(userID)
	order["services"] = []map[string]interface{}{}
	resp, _ = doJSON(t, app, http.MethodPost, "/orders", order)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateOrder_TotalMismatchIs400(t *testing.T) {
	app, _ := setupApp(t)
	userID := seedCustomer(t, app, "Ann", "555", "a@x.com")

	order := annOrderBody(userID)
	order["total_order_price"] = 999
	resp, _ := doJSON(t, app, http.MethodPost, "/orders", order)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpdateOrder(t *testing.T) {
	app, _ := setupApp(t)
	userID := seedCustomer(t, app, "Ann", "555", "a@x.com")

	resp, body := doJSON(t, app, http.MethodPost, "/orders", annOrderBody(userID))
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	orderID := uint(body["order_id"].(float64))
	created := body["order"].(map[string]interface{})
	lineID := created["services"].([]interface{})[0].(map[string]interface{})["order_service_id"].(float64)

	update := annOrderBody(userID)
	update["order_status"] = "refunded"
	update["services"] = []map[string]interface{}{
		{"order_service_id": lineID, "service_name": "Facial Deluxe", "service_price": 100, "total_service_price": 100},
	}
	update["products"] = []map[string]interface{}{}
	resp, _ = doJSON(t, app, http.MethodPut, fmt.Sprintf("/orders/%d", orderID), update)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = doJSON(t, app, http.MethodGet, fmt.Sprintf("/orders/%d", orderID), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "refunded", body["order_status"])
	assert.Equal(t, "Facial Deluxe", body["services"].([]interface{})[0].(map[string]interface{})["service_name"])
}

func TestUpdateOrder_MissingLineIDIs400(t *testing.T) {
	app, _ := setupApp(t)
	userID := seedCustomer(t, app, "Ann", "555", "a@x.com")

	resp, body := doJSON(t, app, http.MethodPost, "/orders", annOrderBody(userID))
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	orderID := uint(body["order_id"].(float64))

	update := annOrderBody(userID)
	update["services"] = []map[string]interface{}{
		{"service_name": "No ID", "service_price": 10},
	}
	update["products"] = []map[string]interface{}{}
	resp, _ = doJSON(t, app, http.MethodPut, fmt.Sprintf("/orders/%d", orderID), update)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Nothing changed.
	resp, body = doJSON(t, app, http.MethodGet, fmt.Sprintf("/orders/%d", orderID), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "paid", body["order_status"])
}

func TestDeleteOrder_Idempotent(t *testing.T) {
	app, db := setupApp(t)
	userID := seedCustomer(t, app, "Ann", "555", "a@x.com")

	resp, body := doJSON(t, app, http.MethodPost, "/orders", annOrderBody(userID))
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	orderID := uint(body["order_id"].(float64))

	resp, _ = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/orders/%d", orderID), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var lineCount int64
	db.Model(&models.OrderServiceLine{}).Where("order_id = ?", orderID).Count(&lineCount)
	assert.Zero(t, lineCount)

	resp, _ = doJSON(t, app, http.MethodGet, fmt.Sprintf("/orders/%d", orderID), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Repeat delete still succeeds.
	resp, _ = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/orders/%d", orderID), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestOrderLineEndpoints(t *testing.T) {
	app, _ := setupApp(t)
	userID := seedCustomer(t, app, "Ann", "555", "a@x.com")

	resp, body := doJSON(t, app, http.MethodPost, "/orders", annOrderBody(userID))
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	orderID := uint(body["order_id"].(float64))

	// Nested add with derived total: 20 x 2 = 40.
	resp, body = doJSON(t, app, http.MethodPost, fmt.Sprintf("/orders/%d/products", orderID), map[string]interface{}{
		"product_id":    2,
		"product_name":  "Serum",
		"product_price": 20,
		"quantity":      2,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, 40.0, body["total_product_price"])
	productLineID := uint(body["order_product_id"].(float64))

	// Flat add carrying order_id in the body.
	resp, body = doJSON(t, app, http.MethodPost, "/orderservices", map[string]interface{}{
		"order_id":      orderID,
		"service_id":    2,
		"service_name":  "Massage",
		"service_price": 60,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, 60.0, body["total_service_price"])
	serviceLineID := uint(body["order_service_id"].(float64))

	resp, body = doJSON(t, app, http.MethodGet, fmt.Sprintf("/orders/%d", orderID), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body["services"].([]interface{}), 2)
	assert.Len(t, body["products"].([]interface{}), 2)

	resp, _ = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/orders/%d/service/%d", orderID, serviceLineID), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/orders/%d/product/%d", orderID, productLineID), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = doJSON(t, app, http.MethodGet, fmt.Sprintf("/orders/%d", orderID), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body["services"].([]interface{}), 1)
	assert.Len(t, body["products"].([]interface{}), 1)
}

func TestListOrdersByUser(t *testing.T) {
	app, _ := setupApp(t)
	annID := seedCustomer(t, app, "Ann", "555", "a@x.com")
	beaID := seedCustomer(t, app, "Bea", "666", "b@x.com")

	resp, _ := doJSON(t, app, http.MethodPost, "/orders", annOrderBody(annID))
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	beaOrder := annOrderBody(beaID)
	beaOrder["fname"] = "Bea"
	beaOrder["phone_no"] = "666"
	resp, _ = doJSON(t, app, http.MethodPost, "/orders", beaOrder)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/orders/user/%d", annID), nil)
	listResp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, listResp.StatusCode)

	var summaries []models.OrderSummary
	assert.NoError(t, json.NewDecoder(listResp.Body).Decode(&summaries))
	listResp.Body.Close()
	assert.Len(t, summaries, 1)
	assert.Equal(t, "Ann", summaries[0].Fname)

	req = httptest.NewRequest(http.MethodGet, "/orders", nil)
	listResp, err = app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, listResp.StatusCode)
	assert.NoError(t, json.NewDecoder(listResp.Body).Decode(&summaries))
	listResp.Body.Close()
	assert.Len(t, summaries, 2)
}

func TestCustomerCRUD(t *testing.T) {
	app, _ := setupApp(t)

	// Missing email fails validation.
	resp, _ := doJSON(t, app, http.MethodPost, "/customers", map[string]interface{}{
		"fname":    "Ann",
		"phone_no": "555",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	userID := seedCustomer(t, app, "Ann", "555", "a@x.com")

	resp, body := doJSON(t, app, http.MethodGet, fmt.Sprintf("/customers/id/%d", userID), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Ann", body["fname"])

	// Phone lookup shares the /customers prefix with the id route.
	resp, body = doJSON(t, app, http.MethodGet, "/customers/555", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(userID), body["user_id"])

	resp, _ = doJSON(t, app, http.MethodGet, "/customers/000", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPut, fmt.Sprintf("/customers/%d", userID), map[string]interface{}{
		"fname":     "Anna",
		"phone_no":  "555",
		"email":     "a@x.com",
		"skin_type": "dry",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = doJSON(t, app, http.MethodGet, fmt.Sprintf("/customers/id/%d", userID), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Anna", body["fname"])
	assert.Equal(t, "dry", body["skin_type"])

	resp, _ = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/customers/%d", userID), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = doJSON(t, app, http.MethodGet, fmt.Sprintf("/customers/id/%d", userID), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCatalogCRUD(t *testing.T) {
	app, _ := setupApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/services", map[string]interface{}{
		"service_name":  "Facial",
		"service_price": 100,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	serviceID := uint(body["service"].(map[string]interface{})["service_id"].(float64))

	// Zero price fails validation.
	resp, _ = doJSON(t, app, http.MethodPost, "/services", map[string]interface{}{
		"service_name": "Free",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPut, fmt.Sprintf("/services/%d", serviceID), map[string]interface{}{
		"service_name":  "Facial Deluxe",
		"service_price": 120,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = doJSON(t, app, http.MethodPost, "/products", map[string]interface{}{
		"product_name":  "Cream",
		"product_price": 20,
		"stock":         5,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	productID := uint(body["product"].(map[string]interface{})["product_id"].(float64))

	resp, _ = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/products/%d", productID), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPut, "/products/999", map[string]interface{}{
		"product_name":  "Ghost",
		"product_price": 1,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/services/%d", serviceID), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAppointmentCRUD(t *testing.T) {
	app, _ := setupApp(t)
	userID := seedCustomer(t, app, "Ann", "555", "a@x.com")

	resp, body := doJSON(t, app, http.MethodPost, "/appointments", map[string]interface{}{
		"fname":    "Ann",
		"phone_no": "555",
		"app_date": "2026-09-10",
		"app_time": "14:00",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	appointment := body["appointment"].(map[string]interface{})
	assert.Equal(t, float64(userID), appointment["user_id"])
	appID := uint(appointment["app_id"].(float64))

	// Unknown phone never creates an appointment.
	resp, _ = doJSON(t, app, http.MethodPost, "/appointments", map[string]interface{}{
		"fname":    "Ghost",
		"phone_no": "000",
		"app_date": "2026-09-10",
		"app_time": "14:00",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPut, fmt.Sprintf("/appointments/%d", appID), map[string]interface{}{
		"fname":      "Ann",
		"phone_no":   "555",
		"app_date":   "2026-09-11",
		"app_time":   "15:00",
		"app_status": "confirmed",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/appointments/%d", appID), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLoginAndProtectedSales(t *testing.T) {
	app, _ := setupApp(t)
	userID := seedCustomer(t, app, "Ann", "555", "a@x.com")

	resp, _ := doJSON(t, app, http.MethodPost, "/orders", annOrderBody(userID))
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	// No token.
	resp, _ = doJSON(t, app, http.MethodGet, "/sales", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Bad credentials.
	resp, _ = doJSON(t, app, http.MethodPost, "/login", map[string]string{
		"username": "britney",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodPost, "/login", map[string]string{
		"username": "britney",
		"password": "1234",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	token := body["token"].(string)
	assert.NotEmpty(t, token)

	req := httptest.NewRequest(http.MethodGet, "/sales", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	salesResp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, salesResp.StatusCode)

	var summary models.SalesSummary
	assert.NoError(t, json.NewDecoder(salesResp.Body).Decode(&summary))
	salesResp.Body.Close()
	assert.Equal(t, 120.0, summary.TotalRevenue)
	assert.Equal(t, int64(1), summary.TotalOrders)
}

func TestGenerateInvoice(t *testing.T) {
	app, _ := setupApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/login", map[string]string{
		"username": "britney",
		"password": "1234",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	token := body["token"].(string)

	jsonBody, _ := json.Marshal(map[string]interface{}{
		"invoiceData": map[string]interface{}{"order_id": 1, "fname": "Ann"},
	})
	req := httptest.NewRequest(http.MethodPost, "/invoices", bytes.NewReader(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	invResp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, invResp.StatusCode)

	var invBody map[string]interface{}
	assert.NoError(t, json.NewDecoder(invResp.Body).Decode(&invBody))
	invResp.Body.Close()
	assert.Equal(t, "Invoice generated", invBody["message"])

	filePath := invBody["file_path"].(string)
	assert.NotEmpty(t, filePath)
	_, err = os.Stat(filePath)
	assert.NoError(t, err)
}

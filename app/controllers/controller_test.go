package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"shopapi/app/models"
	"shopapi/internal/server"
	"shopapi/pkg/auth"
)

var dbSeq atomic.Int32

type env struct {
	t       *testing.T
	db      *gorm.DB
	handler http.Handler

	staffToken    string
	customerToken string
	strangerToken string

	customer models.User
	stranger models.User
}

type envelope struct {
	Status  int               `json:"status"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
}

func newEnv(t *testing.T) *env {
	t.Helper()

	dsn := fmt.Sprintf("file:controllers_test_%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Review{},
		&models.Order{},
		&models.OrderItem{},
		&models.Collection{},
	))

	e := &env{t: t, db: db, handler: server.Handler(db).Handler()}
	staff := e.createUser("staff@example.com", true)
	e.customer = e.createUser("customer@example.com", false)
	e.stranger = e.createUser("stranger@example.com", false)

	e.staffToken = e.token(staff)
	e.customerToken = e.token(e.customer)
	e.strangerToken = e.token(e.stranger)
	return e
}

func (e *env) createUser(email string, staff bool) models.User {
	e.t.Helper()

	u := models.User{Email: email, Name: "Test", Password: "x", IsStaff: staff}
	require.NoError(e.t, e.db.Create(&u).Error)
	return u
}

func (e *env) token(u models.User) string {
	e.t.Helper()

	token, err := auth.GenerateToken(u.ID, u.IsStaff)
	require.NoError(e.t, err)
	return token
}

func (e *env) createProduct(name string, price int) models.Product {
	e.t.Helper()

	p := models.Product{Name: name, Description: "d", Price: price}
	require.NoError(e.t, e.db.Create(&p).Error)
	return p
}

// do performs a request and decodes the envelope. token may be empty for
// anonymous calls.
func (e *env) do(method, path, token string, body interface{}) (int, envelope) {
	e.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(e.t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)

	var resp envelope
	if rec.Body.Len() > 0 {
		require.NoError(e.t, json.Unmarshal(rec.Body.Bytes(), &resp))
	}
	return rec.Code, resp
}

// ─── products ────────────────────────────────────────────────────────────────

func TestProductsPublicRead(t *testing.T) {
	e := newEnv(t)
	p := e.createProduct("Beans", 100)

	code, body := e.do(http.MethodGet, "/api/products", "", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(body.Data), "Beans")

	code, _ = e.do(http.MethodGet, fmt.Sprintf("/api/products/%d", p.ID), "", nil)
	assert.Equal(t, http.StatusOK, code)
}

func TestProductWritePermissions(t *testing.T) {
	e := newEnv(t)
	in := map[string]interface{}{"name": "Kettle", "price": 3900}

	code, _ := e.do(http.MethodPost, "/api/products", "", in)
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = e.do(http.MethodPost, "/api/products", e.customerToken, in)
	assert.Equal(t, http.StatusForbidden, code)

	code, body := e.do(http.MethodPost, "/api/products", e.staffToken, in)
	assert.Equal(t, http.StatusCreated, code)
	assert.Contains(t, string(body.Data), "Kettle")
}

func TestProductValidationResponse(t *testing.T) {
	e := newEnv(t)

	code, body := e.do(http.MethodPost, "/api/products", e.staffToken, map[string]interface{}{"price": -5})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, body.Errors, "name")
	assert.Contains(t, body.Errors, "price")
}

func TestProductPatchKeepsOmittedFields(t *testing.T) {
	e := newEnv(t)
	p := e.createProduct("Beans", 100)

	code, _ := e.do(http.MethodPatch, fmt.Sprintf("/api/products/%d", p.ID), e.staffToken,
		map[string]interface{}{"price": 150})
	require.Equal(t, http.StatusOK, code)

	var reloaded models.Product
	require.NoError(t, e.db.First(&reloaded, p.ID).Error)
	assert.Equal(t, "Beans", reloaded.Name)
	assert.Equal(t, 150, reloaded.Price)
}

func TestProductNotFound(t *testing.T) {
	e := newEnv(t)

	code, _ := e.do(http.MethodGet, "/api/products/9999", "", nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = e.do(http.MethodDelete, "/api/products/9999", e.staffToken, nil)
	assert.Equal(t, http.StatusNotFound, code)
}

// ─── reviews ─────────────────────────────────────────────────────────────────

func TestReviewOwnership(t *testing.T) {
	e := newEnv(t)
	p := e.createProduct("Beans", 100)
	in := map[string]interface{}{"product_id": p.ID, "text": "Nice.", "rating": 5}

	code, _ := e.do(http.MethodPost, "/api/reviews", "", in)
	assert.Equal(t, http.StatusUnauthorized, code)

	code, body := e.do(http.MethodPost, "/api/reviews", e.customerToken, in)
	require.Equal(t, http.StatusCreated, code)

	var created struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &created))

	update := map[string]interface{}{"text": "Changed my mind.", "rating": 2}
	path := fmt.Sprintf("/api/reviews/%d", created.ID)

	code, _ = e.do(http.MethodPatch, path, e.strangerToken, update)
	assert.Equal(t, http.StatusForbidden, code)

	code, _ = e.do(http.MethodPatch, path, e.customerToken, update)
	assert.Equal(t, http.StatusOK, code)

	// Staff may delete someone else's review.
	code, _ = e.do(http.MethodDelete, path, e.staffToken, nil)
	assert.Equal(t, http.StatusNoContent, code)
}

// ─── orders ──────────────────────────────────────────────────────────────────

func TestOrderFlow(t *testing.T) {
	e := newEnv(t)
	p := e.createProduct("Beans", 100)
	in := map[string]interface{}{
		"items": []map[string]interface{}{{"product_id": p.ID, "quantity": 3}},
	}

	code, _ := e.do(http.MethodPost, "/api/orders", "", in)
	assert.Equal(t, http.StatusUnauthorized, code)

	code, body := e.do(http.MethodPost, "/api/orders", e.customerToken, in)
	require.Equal(t, http.StatusCreated, code)

	var created struct {
		ID         uint   `json:"id"`
		Status     string `json:"status"`
		TotalPrice int    `json:"total_price"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &created))
	assert.Equal(t, models.StatusNew, created.Status)
	assert.Equal(t, 300, created.TotalPrice)

	path := fmt.Sprintf("/api/orders/%d", created.ID)

	// Retrieval: owner and staff yes, stranger no, anonymous unauthenticated.
	code, _ = e.do(http.MethodGet, path, e.customerToken, nil)
	assert.Equal(t, http.StatusOK, code)
	code, _ = e.do(http.MethodGet, path, e.staffToken, nil)
	assert.Equal(t, http.StatusOK, code)
	code, _ = e.do(http.MethodGet, path, e.strangerToken, nil)
	assert.Equal(t, http.StatusForbidden, code)
	code, _ = e.do(http.MethodGet, path, "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	// Status mutation is staff-only.
	status := map[string]interface{}{"status": models.StatusDone}
	code, _ = e.do(http.MethodPatch, path, e.customerToken, status)
	assert.Equal(t, http.StatusForbidden, code)
	code, _ = e.do(http.MethodPatch, path, e.staffToken, status)
	assert.Equal(t, http.StatusOK, code)

	code, body = e.do(http.MethodPatch, path, e.staffToken, map[string]interface{}{"status": "SHIPPED"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, body.Errors, "status")

	// Deletion is staff-only and final.
	code, _ = e.do(http.MethodDelete, path, e.customerToken, nil)
	assert.Equal(t, http.StatusForbidden, code)
	code, _ = e.do(http.MethodDelete, path, e.staffToken, nil)
	assert.Equal(t, http.StatusNoContent, code)
	code, _ = e.do(http.MethodGet, path, e.staffToken, nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestOrderListScoping(t *testing.T) {
	e := newEnv(t)
	p := e.createProduct("Beans", 100)
	in := map[string]interface{}{
		"items": []map[string]interface{}{{"product_id": p.ID, "quantity": 1}},
	}

	code, _ := e.do(http.MethodPost, "/api/orders", e.customerToken, in)
	require.Equal(t, http.StatusCreated, code)
	code, _ = e.do(http.MethodPost, "/api/orders", e.strangerToken, in)
	require.Equal(t, http.StatusCreated, code)

	countItems := func(token string) int {
		code, body := e.do(http.MethodGet, "/api/orders", token, nil)
		require.Equal(t, http.StatusOK, code)

		var page struct {
			Items []json.RawMessage `json:"items"`
		}
		require.NoError(t, json.Unmarshal(body.Data, &page))
		return len(page.Items)
	}

	assert.Equal(t, 1, countItems(e.customerToken))
	assert.Equal(t, 2, countItems(e.staffToken))

	code, _ = e.do(http.MethodGet, "/api/orders", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}

// ─── auth ────────────────────────────────────────────────────────────────────

func TestRegisterLoginFlow(t *testing.T) {
	e := newEnv(t)

	code, body := e.do(http.MethodPost, "/api/auth/register", "", map[string]interface{}{
		"name":     "Dana",
		"email":    "dana@example.com",
		"password": "longenough",
	})
	require.Equal(t, http.StatusCreated, code)

	var reg struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &reg))
	require.NotEmpty(t, reg.Token)

	// The fresh token works against an authenticated endpoint.
	code, _ = e.do(http.MethodGet, "/api/orders", reg.Token, nil)
	assert.Equal(t, http.StatusOK, code)

	code, _ = e.do(http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"email":    "dana@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = e.do(http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"email":    "dana@example.com",
		"password": "longenough",
	})
	assert.Equal(t, http.StatusOK, code)
}

func TestHealthz(t *testing.T) {
	e := newEnv(t)

	code, _ := e.do(http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, code)
}

func TestInvalidTokenRejected(t *testing.T) {
	e := newEnv(t)

	code, _ := e.do(http.MethodGet, "/api/products", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}

package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/tailorsoft/atelier/internal/reference"
	referencedomain "github.com/tailorsoft/atelier/internal/reference/domain"
)

func newReferenceTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	srv := &Server{refrepo: reference.NewRepository()}

	router := gin.New()
	router.Use(ErrorHandlingMiddleware())
	router.GET("/reference/garment-types", srv.ListGarmentTypes)
	router.GET("/reference/order-statuses", srv.ListOrderStatuses)
	router.GET("/reference/expense-categories", srv.ListExpenseCategories)
	router.GET("/reference/payment-methods", srv.ListPaymentMethods)

	return router
}

func fetchOptions(t *testing.T, router *gin.Engine, path string) []referencedomain.Option {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for %s, got %d", path, resp.Code)
	}

	var payload struct {
		Data []referencedomain.Option `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response for %s: %v", path, err)
	}
	return payload.Data
}

func TestReferenceEndpointsServeOptions(t *testing.T) {
	router := newReferenceTestRouter()

	garments := fetchOptions(t, router, "/reference/garment-types")
	if len(garments) == 0 {
		t.Fatal("expected garment type options")
	}
	for _, opt := range garments {
		if opt.Value == "" || opt.Label == "" {
			t.Fatalf("expected value and label, got %+v", opt)
		}
	}

	statuses := fetchOptions(t, router, "/reference/order-statuses")
	if len(statuses) != 8 {
		t.Fatalf("expected 8 order statuses, got %d", len(statuses))
	}
	if statuses[0].Value != "pending" {
		t.Fatalf("expected pending first, got %q", statuses[0].Value)
	}

	categories := fetchOptions(t, router, "/reference/expense-categories")
	if len(categories) != 8 {
		t.Fatalf("expected 8 expense categories, got %d", len(categories))
	}

	methods := fetchOptions(t, router, "/reference/payment-methods")
	if len(methods) != 4 {
		t.Fatalf("expected 4 payment methods, got %d", len(methods))
	}
}

package chi

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/kailas-cloud/backoffice/internal/collection"
	domcat "github.com/kailas-cloud/backoffice/internal/domain/category"
	domsale "github.com/kailas-cloud/backoffice/internal/domain/sale"
	"github.com/kailas-cloud/backoffice/internal/idgen"
	categoryrepo "github.com/kailas-cloud/backoffice/internal/repository/category"
	"github.com/kailas-cloud/backoffice/internal/repository/seed"
	categoryuc "github.com/kailas-cloud/backoffice/internal/usecase/category"
	dashboarduc "github.com/kailas-cloud/backoffice/internal/usecase/dashboard"
	healthuc "github.com/kailas-cloud/backoffice/internal/usecase/health"
	productuc "github.com/kailas-cloud/backoffice/internal/usecase/product"
	promotionuc "github.com/kailas-cloud/backoffice/internal/usecase/promotion"
	saleuc "github.com/kailas-cloud/backoffice/internal/usecase/sale"
	transactionuc "github.com/kailas-cloud/backoffice/internal/usecase/transaction"
)

func fixedClock() time.Time { return time.Date(2024, 1, 25, 10, 0, 0, 0, time.UTC) }

func seededStore[T collection.Entity](t *testing.T, name string, order collection.Order, items []T) *collection.Store[T] {
	t.Helper()
	s := collection.New[T](name, order)
	if err := s.Seed(items); err != nil {
		t.Fatalf("seed %s: %v", name, err)
	}
	return s
}

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	ds, err := seed.Load("")
	if err != nil {
		t.Fatalf("load seed: %v", err)
	}

	categories := categoryuc.New(
		collection.New[domcat.Category]("categories", collection.Append),
		categoryrepo.NewMemory(ds.Categories()),
	)
	if err := categories.Load(t.Context()); err != nil {
		t.Fatalf("load categories: %v", err)
	}
	products := productuc.New(
		seededStore(t, "products", collection.Append, ds.Products()), idgen.UUID{}, 0)
	sales := saleuc.New(
		seededStore(t, "sales", collection.Prepend, ds.Sales()),
		idgen.NewSequence(domsale.IDPrefix, domsale.IDWidth), fixedClock)
	transactions := transactionuc.New(
		seededStore(t, "transactions", collection.Prepend, ds.Transactions()), idgen.UUID{}, fixedClock)
	promotions := promotionuc.New(
		seededStore(t, "promotions", collection.Prepend, ds.Promotions()), idgen.UUID{},
		promotionuc.Options{Now: fixedClock})

	server := NewServer(Services{
		Categories:   categories,
		Products:     products,
		Sales:        sales,
		Transactions: transactions,
		Promotions:   promotions,
		Dashboard: dashboarduc.New(dashboarduc.Sources{
			Categories:   categories,
			Products:     products,
			Sales:        sales,
			Transactions: transactions,
			Promotions:   promotions,
		}),
		Health: healthuc.New(nil),
	}, zap.NewNop())

	return HandlerWithOptions(server, ServerOptions{BaseRouter: chi.NewRouter()})
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v (body %q)", err, rec.Body.String())
	}
	return v
}

func TestListProducts_Filters(t *testing.T) {
	h := newTestHandler(t)

	rec := do(t, h, http.MethodGet, "/api/v1/products?category=%C3%8Dntima", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	list := decode[ListResponse[Product]](t, rec)
	if list.Total != 5 || list.Visible != 2 || len(list.Items) != 2 {
		t.Errorf("expected 2 of 5, got %d of %d", list.Visible, list.Total)
	}

	rec = do(t, h, http.MethodGet, "/api/v1/products?search=legging", "")
	list = decode[ListResponse[Product]](t, rec)
	if list.Visible != 1 || list.Items[0].ID != "3" {
		t.Errorf("expected legging only, got %+v", list.Items)
	}
}

func TestCreateProduct_LenientNumbers(t *testing.T) {
	h := newTestHandler(t)

	rec := do(t, h, http.MethodPost, "/api/v1/products",
		`{"name":"Shorts Ciclista","category":"Fitness","price":"59,90","stock":"8","status":"active"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	p := decode[Product](t, rec)
	if p.Price != 59.9 || p.Stock != 8 {
		t.Errorf("expected 59.9/8, got %v/%d", p.Price, p.Stock)
	}
	if loc := rec.Header().Get("Location"); loc != "/api/v1/products/"+p.ID {
		t.Errorf("unexpected location %q", loc)
	}

	rec = do(t, h, http.MethodGet, "/api/v1/products/"+p.ID, "")
	if rec.Code != http.StatusOK {
		t.Errorf("expected created product to be readable, got %d", rec.Code)
	}
}

func TestCreateProduct_MissingName(t *testing.T) {
	h := newTestHandler(t)

	rec := do(t, h, http.MethodPost, "/api/v1/products", `{"category":"Fitness","price":10}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	resp := decode[ErrorResponse](t, rec)
	if resp.Code != ErrorCodeValidationFailed || !strings.Contains(resp.Message, "name") {
		t.Errorf("unexpected error body %+v", resp)
	}
}

func TestCreateProduct_MalformedBody(t *testing.T) {
	h := newTestHandler(t)

	rec := do(t, h, http.MethodPost, "/api/v1/products", `{"name":`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestGetProduct_NotFound(t *testing.T) {
	h := newTestHandler(t)

	rec := do(t, h, http.MethodGet, "/api/v1/products/999", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if resp := decode[ErrorResponse](t, rec); resp.Code != ErrorCodeNotFound {
		t.Errorf("expected not_found, got %s", resp.Code)
	}
}

func TestDeleteProduct_Confirmation(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		name   string
		target string
		want   int
	}{
		{"no confirm", "/api/v1/products/2", http.StatusPreconditionRequired},
		{"confirm false", "/api/v1/products/2?confirm=false", http.StatusPreconditionRequired},
		{"bad confirm", "/api/v1/products/2?confirm=maybe", http.StatusBadRequest},
		{"confirmed", "/api/v1/products/2?confirm=true", http.StatusNoContent},
		{"already gone", "/api/v1/products/2?confirm=true", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodDelete, tt.target, "")
			if rec.Code != tt.want {
				t.Errorf("expected %d, got %d: %s", tt.want, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestSaleStatus(t *testing.T) {
	h := newTestHandler(t)

	rec := do(t, h, http.MethodPost, "/api/v1/sales/VD004/status", `{"status":"delivered"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 for pending -> delivered, got %d", rec.Code)
	}
	if resp := decode[ErrorResponse](t, rec); resp.Code != ErrorCodeTransitionNotAllowed {
		t.Errorf("expected transition_not_allowed, got %s", resp.Code)
	}

	rec = do(t, h, http.MethodGet, "/api/v1/sales/VD004/transitions", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	tr := decode[Transitions](t, rec)
	if len(tr.Status) == 0 || tr.Status[0] != string(domsale.StatusConfirmed) {
		t.Errorf("expected confirmed first, got %v", tr.Status)
	}

	rec = do(t, h, http.MethodPost, "/api/v1/sales/VD004/status", `{"status":"confirmed"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if sl := decode[Sale](t, rec); sl.Status != string(domsale.StatusConfirmed) {
		t.Errorf("expected confirmed, got %s", sl.Status)
	}
}

func TestCreateSale_NextID(t *testing.T) {
	h := newTestHandler(t)

	rec := do(t, h, http.MethodPost, "/api/v1/sales", `{
		"customerName":"Beatriz Rocha",
		"paymentMethod":"PIX",
		"items":[{"productId":"2","productName":"Top Esportivo Preto","quantity":"2","price":"45,90"}]
	}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	sl := decode[Sale](t, rec)
	if sl.ID != "VD005" || sl.Total != 91.8 || sl.Date != "2024-01-25" {
		t.Errorf("unexpected sale %+v", sl)
	}
}

func TestCategories_CreateThroughBackend(t *testing.T) {
	h := newTestHandler(t)

	rec := do(t, h, http.MethodPost, "/api/v1/categories", `{"description":"Praia"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if c := decode[Category](t, rec); c.ID != "4" || c.Description != "Praia" {
		t.Errorf("unexpected category %+v", c)
	}

	rec = do(t, h, http.MethodGet, "/api/v1/categories", "")
	if list := decode[ListResponse[Category]](t, rec); list.Total != 4 {
		t.Errorf("expected 4 categories, got %d", list.Total)
	}

	rec = do(t, h, http.MethodPatch, "/api/v1/categories/42", `{"description":"X"}`)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestPromotionRanking_BadLimit(t *testing.T) {
	h := newTestHandler(t)

	rec := do(t, h, http.MethodGet, "/api/v1/promotions/ranking?limit=abc", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}

	rec = do(t, h, http.MethodGet, "/api/v1/promotions/ranking?limit=1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if resp := decode[RankingResponse](t, rec); len(resp.Items) != 1 {
		t.Errorf("expected 1 ranked coupon, got %d", len(resp.Items))
	}
}

func TestDashboard(t *testing.T) {
	h := newTestHandler(t)

	rec := do(t, h, http.MethodGet, "/api/v1/dashboard", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	d := decode[Dashboard](t, rec)
	if d.Categories.Total != 3 || d.Products.Total != 5 || d.Sales.Count != 4 {
		t.Errorf("unexpected dashboard %+v", d)
	}
}

func TestHealthCheck(t *testing.T) {
	h := newTestHandler(t)

	rec := do(t, h, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if resp := decode[HealthResponse](t, rec); resp.Status != string(healthuc.Healthy) {
		t.Errorf("expected healthy, got %s", resp.Status)
	}
}

func TestCreateProduct_NonFiniteNumbersBecomeZero(t *testing.T) {
	h := newTestHandler(t)

	rec := do(t, h, http.MethodPost, "/api/v1/products",
		`{"name":"Meia Esportiva","category":"Fitness","price":"NaN","stock":"1e300","status":"active"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if p := decode[Product](t, rec); p.Price != 0 {
		t.Errorf("expected price 0, got %v", p.Price)
	}

	for _, target := range []string{"/api/v1/products", "/api/v1/products/summary", "/api/v1/dashboard"} {
		rec = do(t, h, http.MethodGet, target, "")
		if rec.Code != http.StatusOK || rec.Body.Len() == 0 {
			t.Errorf("%s: expected 200 with body, got %d (%d bytes)", target, rec.Code, rec.Body.Len())
		}
	}
}

func TestWriteJSON_UnencodableValue(t *testing.T) {
	rec := httptest.NewRecorder()
	writeJSON(rec, http.StatusOK, map[string]float64{"v": math.NaN()})

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if resp := decode[ErrorResponse](t, rec); resp.Code != ErrorCodeInternalError {
		t.Errorf("expected internal_error, got %s", resp.Code)
	}
}

package httpserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"farmgate/internal/domain"
)

func buyerHeader(t *testing.T, deps Deps) string {
	t.Helper()
	return bearerFor(t, deps.Tokens, domain.Account{ID: "buyer-1", Username: "alice", Role: domain.RoleBuyer})
}

func TestGetCart_NotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps := testDeps()
	deps.CartSvc = &stubCartService{err: domain.ErrNotFound}
	router := buildRouter(logDiscard(), nil, deps)

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.Header.Set("Authorization", buyerHeader(t, deps))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestAddCartItem_DefaultsQuantityToOne(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps := testDeps()
	cartSvc := &stubCartService{cart: &domain.Cart{ID: "cart-1", BuyerID: "buyer-1", Status: domain.CartPending}}
	deps.CartSvc = cartSvc
	router := buildRouter(logDiscard(), nil, deps)

	body := `{"listingId":"listing-1"}`
	req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", buyerHeader(t, deps))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if cartSvc.lastBuyer != "buyer-1" || cartSvc.lastListing != "listing-1" || cartSvc.lastQty != 1 {
		t.Fatalf("unexpected add call: buyer=%s listing=%s qty=%d", cartSvc.lastBuyer, cartSvc.lastListing, cartSvc.lastQty)
	}
}

func TestAddCartItem_UnknownListing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps := testDeps()
	deps.CartSvc = &stubCartService{err: domain.ErrNotFound}
	router := buildRouter(logDiscard(), nil, deps)

	body := `{"listingId":"ghost","quantity":2}`
	req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", buyerHeader(t, deps))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestAddCartItem_NegativeQuantity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps := testDeps()
	router := buildRouter(logDiscard(), nil, deps)

	body := `{"listingId":"listing-1","quantity":-1}`
	req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", buyerHeader(t, deps))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestRemoveCartItem_ForwardsLineID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps := testDeps()
	cartSvc := &stubCartService{cart: &domain.Cart{ID: "cart-1", BuyerID: "buyer-1", Status: domain.CartPending}}
	deps.CartSvc = cartSvc
	router := buildRouter(logDiscard(), nil, deps)

	req := httptest.NewRequest(http.MethodDelete, "/cart/items/line-9", nil)
	req.Header.Set("Authorization", buyerHeader(t, deps))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if cartSvc.lastLine != "line-9" {
		t.Fatalf("expected line-9, got %s", cartSvc.lastLine)
	}
}

func TestCheckout_NoPendingCart(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps := testDeps()
	deps.CartSvc = &stubCartService{err: domain.ErrNotFound}
	router := buildRouter(logDiscard(), nil, deps)

	req := httptest.NewRequest(http.MethodPost, "/cart/checkout", nil)
	req.Header.Set("Authorization", buyerHeader(t, deps))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestCheckout_Success(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps := testDeps()
	deps.CartSvc = &stubCartService{cart: &domain.Cart{ID: "cart-1", BuyerID: "buyer-1", Status: domain.CartConfirmed, TotalCents: 2700}}
	router := buildRouter(logDiscard(), nil, deps)

	req := httptest.NewRequest(http.MethodPost, "/cart/checkout", nil)
	req.Header.Set("Authorization", buyerHeader(t, deps))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"status":"Confirmed"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

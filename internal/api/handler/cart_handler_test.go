package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/urbanova/storefront/internal/core/domain"
	"github.com/urbanova/storefront/internal/core/ports"
)

type stubCartService struct {
	createFn func() ports.CartView
	getFn    func(cartID string) (ports.CartView, error)
	addFn    func(cartID string, productID int) (ports.CartView, error)
	updateFn func(cartID string, productID, quantity int) (ports.CartView, error)
	removeFn func(cartID string, productID int) (ports.CartView, error)
}

func (s *stubCartService) Create() ports.CartView { return s.createFn() }
func (s *stubCartService) Get(cartID string) (ports.CartView, error) {
	return s.getFn(cartID)
}
func (s *stubCartService) AddItem(cartID string, productID int) (ports.CartView, error) {
	return s.addFn(cartID, productID)
}
func (s *stubCartService) UpdateQuantity(cartID string, productID, quantity int) (ports.CartView, error) {
	return s.updateFn(cartID, productID, quantity)
}
func (s *stubCartService) RemoveItem(cartID string, productID int) (ports.CartView, error) {
	return s.removeFn(cartID, productID)
}
func (s *stubCartService) EvictIdle(time.Time) int { return 0 }

func sampleView() ports.CartView {
	return ports.CartView{
		ID: "cart-1",
		Lines: []domain.CartLine{
			{Product: domain.Product{ID: 1, Title: "Backpack", Price: 129.99}, Quantity: 2},
		},
		ItemCount: 2,
		Subtotal:  259.98,
	}
}

func TestCartHandler_Create(t *testing.T) {
	e := newTestEcho()
	stub := &stubCartService{
		createFn: func() ports.CartView { return ports.CartView{ID: "cart-1"} },
	}
	handler := NewCartHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/v1/carts", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["id"] != "cart-1" {
		t.Fatalf("unexpected body: %+v", resp)
	}
}

func TestCartHandler_Get(t *testing.T) {
	e := newTestEcho()
	stub := &stubCartService{
		getFn: func(cartID string) (ports.CartView, error) {
			if cartID != "cart-1" {
				t.Fatalf("unexpected cart id %q", cartID)
			}
			return sampleView(), nil
		},
	}
	handler := NewCartHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/carts/:id")
	c.SetParamNames("id")
	c.SetParamValues("cart-1")

	if err := handler.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp cartResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.ItemCount != 2 || resp.Subtotal != 259.98 {
		t.Fatalf("unexpected totals: %+v", resp)
	}
	if len(resp.Lines) != 1 || resp.Lines[0].LineTotal != 259.98 {
		t.Fatalf("unexpected lines: %+v", resp.Lines)
	}
}

func TestCartHandler_Get_NotFound(t *testing.T) {
	e := newTestEcho()
	stub := &stubCartService{
		getFn: func(string) (ports.CartView, error) {
			return ports.CartView{}, domain.ErrCartNotFound
		},
	}
	handler := NewCartHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/carts/:id")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := handler.Get(c); !errors.Is(err, domain.ErrCartNotFound) {
		t.Fatalf("expected ErrCartNotFound to propagate, got %v", err)
	}
}

func TestCartHandler_AddItem(t *testing.T) {
	e := newTestEcho()
	stub := &stubCartService{
		addFn: func(cartID string, productID int) (ports.CartView, error) {
			if cartID != "cart-1" || productID != 1 {
				t.Fatalf("unexpected args: %s %d", cartID, productID)
			}
			return sampleView(), nil
		},
	}
	handler := NewCartHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"product_id":1}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/carts/:id/items")
	c.SetParamNames("id")
	c.SetParamValues("cart-1")

	if err := handler.AddItem(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestCartHandler_AddItem_MissingProductID(t *testing.T) {
	e := newTestEcho()
	stub := &stubCartService{
		addFn: func(string, int) (ports.CartView, error) {
			t.Fatalf("service must not be called on validation failure")
			return ports.CartView{}, nil
		},
	}
	handler := NewCartHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/carts/:id/items")
	c.SetParamNames("id")
	c.SetParamValues("cart-1")

	err := handler.AddItem(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestCartHandler_UpdateQuantity(t *testing.T) {
	e := newTestEcho()
	stub := &stubCartService{
		updateFn: func(cartID string, productID, quantity int) (ports.CartView, error) {
			if productID != 1 || quantity != 0 {
				t.Fatalf("unexpected args: %d %d", productID, quantity)
			}
			return ports.CartView{ID: cartID}, nil
		},
	}
	handler := NewCartHandler(stub)

	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"quantity":0}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/carts/:id/items/:product_id")
	c.SetParamNames("id", "product_id")
	c.SetParamValues("cart-1", "1")

	if err := handler.UpdateQuantity(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestCartHandler_UpdateQuantity_BadProductID(t *testing.T) {
	e := newTestEcho()
	handler := NewCartHandler(&stubCartService{})

	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"quantity":1}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/carts/:id/items/:product_id")
	c.SetParamNames("id", "product_id")
	c.SetParamValues("cart-1", "abc")

	err := handler.UpdateQuantity(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestCartHandler_RemoveItem(t *testing.T) {
	e := newTestEcho()
	stub := &stubCartService{
		removeFn: func(cartID string, productID int) (ports.CartView, error) {
			if productID != 2 {
				t.Fatalf("unexpected product id %d", productID)
			}
			return ports.CartView{ID: cartID}, nil
		},
	}
	handler := NewCartHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/carts/:id/items/:product_id")
	c.SetParamNames("id", "product_id")
	c.SetParamValues("cart-1", "2")

	if err := handler.RemoveItem(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/shopcore/ecommerce-api/internal/core/domain"
	"github.com/shopcore/ecommerce-api/internal/core/ports"
)

type stubProductService struct {
	listFn           func(ctx context.Context) ([]domain.Product, error)
	listByCategoryFn func(ctx context.Context, category string) ([]domain.Product, error)
	getFn            func(ctx context.Context, id string) (*domain.Product, error)
	createFn         func(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error)
	updateFn         func(ctx context.Context, id string, input ports.UpdateProductInput) (*domain.Product, error)
	deleteFn         func(ctx context.Context, id string) (bool, error)
}

func (s *stubProductService) List(ctx context.Context) ([]domain.Product, error) {
	return s.listFn(ctx)
}

func (s *stubProductService) ListByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	return s.listByCategoryFn(ctx, category)
}

func (s *stubProductService) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	return s.getFn(ctx, id)
}

func (s *stubProductService) Create(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	return s.createFn(ctx, input)
}

func (s *stubProductService) Update(ctx context.Context, id string, input ports.UpdateProductInput) (*domain.Product, error) {
	return s.updateFn(ctx, id, input)
}

func (s *stubProductService) Delete(ctx context.Context, id string) (bool, error) {
	return s.deleteFn(ctx, id)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func TestProductHandler_List_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubProductService{
		listFn: func(ctx context.Context) ([]domain.Product, error) {
			return []domain.Product{
				{ID: "p1", Name: "Widget", Price: 10, Quantity: 5, Category: "tools"},
			}, nil
		},
	}
	handler := NewProductHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/product", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 || resp[0]["id"] != "p1" || resp[0]["name"] != "Widget" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestProductHandler_List_StoreError(t *testing.T) {
	e := newTestEcho()
	stub := &stubProductService{
		listFn: func(ctx context.Context) ([]domain.Product, error) {
			return nil, context.DeadlineExceeded
		},
	}
	handler := NewProductHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/product", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = handler.List(c)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestProductHandler_GetByID_NotFound(t *testing.T) {
	e := newTestEcho()
	stub := &stubProductService{
		getFn: func(ctx context.Context, id string) (*domain.Product, error) {
			return nil, domain.ErrProductNotFound
		},
	}
	handler := NewProductHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/product/id/missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	_ = handler.GetByID(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestProductHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubProductService{
		createFn: func(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
			if input.Name != "Widget" || input.Price != 10 || input.Quantity != 5 || input.Category != "tools" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Product{
				ID:       "p1",
				Name:     input.Name,
				Price:    input.Price,
				Quantity: input.Quantity,
				Category: input.Category,
			}, nil
		},
	}
	handler := NewProductHandler(stub)

	body := strings.NewReader(`{"name":"Widget","price":10,"quantity":5,"category":"tools"}`)
	req := httptest.NewRequest(http.MethodPost, "/product", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "p1" {
		t.Fatalf("expected generated id in response, got %+v", resp)
	}
}

func TestProductHandler_Create_InvalidPayload(t *testing.T) {
	e := newTestEcho()
	stub := &stubProductService{
		createFn: func(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
			t.Fatal("should not be called")
			return nil, nil
		},
	}
	handler := NewProductHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/product", strings.NewReader("not-json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = handler.Create(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestProductHandler_Update_NotFound(t *testing.T) {
	e := newTestEcho()
	stub := &stubProductService{
		updateFn: func(ctx context.Context, id string, input ports.UpdateProductInput) (*domain.Product, error) {
			return nil, domain.ErrProductNotFound
		},
	}
	handler := NewProductHandler(stub)

	body := strings.NewReader(`{"name":"Widget","price":12}`)
	req := httptest.NewRequest(http.MethodPut, "/product/missing", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	_ = handler.Update(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestProductHandler_Update_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubProductService{
		updateFn: func(ctx context.Context, id string, input ports.UpdateProductInput) (*domain.Product, error) {
			if id != "p1" || input.Price != 12 {
				t.Fatalf("unexpected args: id=%s input=%+v", id, input)
			}
			return &domain.Product{ID: id, Name: input.Name, Price: input.Price, Category: input.Category}, nil
		},
	}
	handler := NewProductHandler(stub)

	body := strings.NewReader(`{"name":"Widget","price":12,"category":"tools"}`)
	req := httptest.NewRequest(http.MethodPut, "/product/p1", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("p1")

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestProductHandler_Delete(t *testing.T) {
	tests := []struct {
		name     string
		existed  bool
		wantCode int
	}{
		{"existing product", true, http.StatusOK},
		{"absent product", false, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEcho()
			stub := &stubProductService{
				deleteFn: func(ctx context.Context, id string) (bool, error) {
					return tt.existed, nil
				},
			}
			handler := NewProductHandler(stub)

			req := httptest.NewRequest(http.MethodDelete, "/product/p1", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.SetParamNames("id")
			c.SetParamValues("p1")

			_ = handler.Delete(c)

			if rec.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, rec.Code)
			}
		})
	}
}

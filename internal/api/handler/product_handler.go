package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopcore/ecommerce-api/internal/api/metrics"
	"github.com/shopcore/ecommerce-api/internal/core/domain"
	"github.com/shopcore/ecommerce-api/internal/core/ports"
)

// ProductHandler handles HTTP requests for product CRUD operations.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// --- Request / Response types ---

type productRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	Quantity    int    `json:"quantity"`
	Category    string `json:"category"`
}

type productResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	Quantity    int    `json:"quantity"`
	Category    string `json:"category"`
}

func newProductResponse(p *domain.Product) productResponse {
	return productResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Quantity:    p.Quantity,
		Category:    p.Category,
	}
}

func productListResponse(products []domain.Product) []productResponse {
	resp := make([]productResponse, 0, len(products))
	for i := range products {
		resp = append(resp, newProductResponse(&products[i]))
	}
	return resp
}

// List handles GET /product.
//
// @Summary      List all products
// @Tags         products
// @Produce      json
// @Success      200  {array}   productResponse
// @Failure      500  {object}  map[string]string
// @Router       /product [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.service.List(c.Request().Context())
	if err != nil {
		metrics.StoreErrorsTotal.WithLabelValues("product", "list").Inc()
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
	return c.JSON(http.StatusOK, productListResponse(products))
}

// ListByCategory handles GET /product/category/:category.
//
// @Summary      List products in a category
// @Tags         products
// @Produce      json
// @Param        category  path      string  true  "Category name"
// @Success      200       {array}   productResponse
// @Failure      500       {object}  map[string]string
// @Router       /product/category/{category} [get]
func (h *ProductHandler) ListByCategory(c echo.Context) error {
	products, err := h.service.ListByCategory(c.Request().Context(), c.Param("category"))
	if err != nil {
		metrics.StoreErrorsTotal.WithLabelValues("product", "list_by_category").Inc()
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
	return c.JSON(http.StatusOK, productListResponse(products))
}

// GetByID handles GET /product/id/:id.
//
// @Summary      Get a product by id
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  productResponse
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /product/id/{id} [get]
func (h *ProductHandler) GetByID(c echo.Context) error {
	product, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "product not found"})
		}
		metrics.StoreErrorsTotal.WithLabelValues("product", "get").Inc()
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
	return c.JSON(http.StatusOK, newProductResponse(product))
}

// Create handles POST /product.
//
// @Summary      Create a new product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body      productRequest  true  "Product fields (id is assigned by the store)"
// @Success      201   {object}  productResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /product [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	product, err := h.service.Create(c.Request().Context(), ports.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Category:    req.Category,
	})
	if err != nil {
		metrics.StoreErrorsTotal.WithLabelValues("product", "create").Inc()
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to create product"})
	}

	metrics.ProductsCreatedTotal.WithLabelValues(product.Category).Inc()
	return c.JSON(http.StatusCreated, newProductResponse(product))
}

// Update handles PUT /product/:id. The payload replaces every mutable
// field of the stored product.
//
// @Summary      Update a product (full replace)
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path      string          true  "Product id"
// @Param        body  body      productRequest  true  "Replacement field values"
// @Success      200   {object}  productResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /product/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	product, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Category:    req.Category,
	})
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "product not found"})
		}
		metrics.StoreErrorsTotal.WithLabelValues("product", "update").Inc()
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to update product"})
	}

	return c.JSON(http.StatusOK, newProductResponse(product))
}

// Delete handles DELETE /product/:id.
//
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product id"
// @Success      200  "deleted"
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /product/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	existed, err := h.service.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		metrics.StoreErrorsTotal.WithLabelValues("product", "delete").Inc()
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to delete product"})
	}
	if !existed {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "product not found"})
	}
	return c.NoContent(http.StatusOK)
}

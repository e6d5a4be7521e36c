package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/urbanova/storefront/internal/core/domain"
	"github.com/urbanova/storefront/internal/core/ports"
)

// CatalogHandler serves the read-only product catalog.
type CatalogHandler struct {
	catalog ports.Catalog
}

func NewCatalogHandler(catalog ports.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

type productListResponse struct {
	Products []domain.Product `json:"products"`
	Total    int              `json:"total"`
}

// List handles GET /v1/products?category=...
//
// @Summary      List products
// @Tags         catalog
// @Produce      json
// @Param        category  query     string  false  "Filter by category"
// @Success      200       {object}  productListResponse
// @Router       /v1/products [get]
func (h *CatalogHandler) List(c echo.Context) error {
	products := h.catalog.Products(c.QueryParam("category"))
	return c.JSON(http.StatusOK, productListResponse{Products: products, Total: len(products)})
}

// Get handles GET /v1/products/:id.
//
// @Summary      Get a product
// @Tags         catalog
// @Produce      json
// @Param        id   path      int  true  "Product id"
// @Success      200  {object}  domain.Product
// @Failure      404  {object}  errorResponse
// @Router       /v1/products/{id} [get]
func (h *CatalogHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	product, err := h.catalog.Product(id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Categories handles GET /v1/categories.
//
// @Summary      List categories
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  string
// @Router       /v1/categories [get]
func (h *CatalogHandler) Categories(c echo.Context) error {
	return c.JSON(http.StatusOK, h.catalog.Categories())
}

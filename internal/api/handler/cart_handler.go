package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/urbanova/storefront/internal/api/metrics"
	"github.com/urbanova/storefront/internal/core/ports"
)

// CartHandler handles HTTP requests for cart operations.
type CartHandler struct {
	carts ports.CartService
}

func NewCartHandler(carts ports.CartService) *CartHandler {
	return &CartHandler{carts: carts}
}

// Create handles POST /v1/carts, opening a new empty cart.
//
// @Summary      Create a cart
// @Tags         carts
// @Produce      json
// @Success      201  {object}  cartResponse
// @Router       /v1/carts [post]
func (h *CartHandler) Create(c echo.Context) error {
	view := h.carts.Create()
	metrics.CartsActive.Inc()
	return c.JSON(http.StatusCreated, toCartResponse(view))
}

// Get handles GET /v1/carts/:id.
//
// @Summary      Get a cart
// @Tags         carts
// @Produce      json
// @Param        id   path      string  true  "Cart id"
// @Success      200  {object}  cartResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/carts/{id} [get]
func (h *CartHandler) Get(c echo.Context) error {
	view, err := h.carts.Get(c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCartResponse(view))
}

// AddItem handles POST /v1/carts/:id/items, adding one unit of a product.
//
// @Summary      Add a product to a cart
// @Tags         carts
// @Accept       json
// @Produce      json
// @Param        id    path      string          true  "Cart id"
// @Param        body  body      addItemRequest  true  "Product to add"
// @Success      200   {object}  cartResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/carts/{id}/items [post]
func (h *CartHandler) AddItem(c echo.Context) error {
	var req addItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	view, err := h.carts.AddItem(c.Param("id"), req.ProductID)
	if err != nil {
		return err
	}
	metrics.CartOperationsTotal.WithLabelValues("add").Inc()
	return c.JSON(http.StatusOK, toCartResponse(view))
}

// UpdateQuantity handles PUT /v1/carts/:id/items/:product_id. It sets an
// absolute quantity; zero or below removes the line.
//
// @Summary      Set a line's quantity
// @Tags         carts
// @Accept       json
// @Produce      json
// @Param        id          path      string                 true  "Cart id"
// @Param        product_id  path      int                    true  "Product id"
// @Param        body        body      updateQuantityRequest  true  "New quantity"
// @Success      200         {object}  cartResponse
// @Failure      400         {object}  errorResponse
// @Failure      404         {object}  errorResponse
// @Router       /v1/carts/{id}/items/{product_id} [put]
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	productID, err := strconv.Atoi(c.Param("product_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	var req updateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	view, err := h.carts.UpdateQuantity(c.Param("id"), productID, req.Quantity)
	if err != nil {
		return err
	}
	metrics.CartOperationsTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, toCartResponse(view))
}

// RemoveItem handles DELETE /v1/carts/:id/items/:product_id.
//
// @Summary      Remove a product from a cart
// @Tags         carts
// @Produce      json
// @Param        id          path      string  true  "Cart id"
// @Param        product_id  path      int     true  "Product id"
// @Success      200         {object}  cartResponse
// @Failure      400         {object}  errorResponse
// @Failure      404         {object}  errorResponse
// @Router       /v1/carts/{id}/items/{product_id} [delete]
func (h *CartHandler) RemoveItem(c echo.Context) error {
	productID, err := strconv.Atoi(c.Param("product_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	view, err := h.carts.RemoveItem(c.Param("id"), productID)
	if err != nil {
		return err
	}
	metrics.CartOperationsTotal.WithLabelValues("remove").Inc()
	return c.JSON(http.StatusOK, toCartResponse(view))
}

func toCartResponse(view ports.CartView) cartResponse {
	lines := make([]cartLineResponse, 0, len(view.Lines))
	for _, l := range view.Lines {
		lines = append(lines, cartLineResponse{
			ProductID: l.ID,
			Title:     l.Title,
			Price:     l.Price,
			Image:     l.Image,
			Category:  l.Category,
			Quantity:  l.Quantity,
			LineTotal: l.Price * float64(l.Quantity),
		})
	}
	return cartResponse{
		ID:        view.ID,
		Lines:     lines,
		ItemCount: view.ItemCount,
		Subtotal:  view.Subtotal,
	}
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storefront/ecommerce-api/internal/core/domain"
	"github.com/storefront/ecommerce-api/internal/core/ports"
)

type CartHandler struct {
	service ports.CartService
}

func NewCartHandler(service ports.CartService) *CartHandler {
	return &CartHandler{service: service}
}

type lineItemRequest struct {
	ProductID string `json:"productId" validate:"required,mongodb"`
	Quantity  int    `json:"quantity"  validate:"required,gte=1"`
}

type createCartRequest struct {
	UserID   string            `json:"userId"   validate:"omitempty,mongodb"`
	Products []lineItemRequest `json:"products" validate:"required,min=1,dive"`
}

type updateCartRequest struct {
	Products []lineItemRequest `json:"products" validate:"required,dive"`
}

func toLineItems(items []lineItemRequest) []domain.LineItem {
	out := make([]domain.LineItem, len(items))
	for i, it := range items {
		out[i] = domain.LineItem{ProductID: it.ProductID, Quantity: it.Quantity}
	}
	return out
}

// Create handles POST /api/carts.
//
// @Summary      Create a cart
// @Tags         carts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCartRequest  true  "Cart"
// @Success      201   {object}  envelope.SuccessBody{data=domain.Cart}
// @Failure      422   {object}  envelope.FailBody
// @Router       /api/carts [post]
func (h *CartHandler) Create(c echo.Context) error {
	actor, err := principal(c)
	if err != nil {
		return err
	}
	var req createCartRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cart, err := h.service.Create(c.Request().Context(), actor, ports.CreateCartInput{
		UserID:   req.UserID,
		Products: toLineItems(req.Products),
	})
	if err != nil {
		return err
	}
	return success(c, http.StatusCreated, "Cart created", cart)
}

// List handles GET /api/carts.
//
// @Summary      List all carts
// @Tags         carts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope.SuccessBody{data=[]domain.Cart}
// @Failure      403  {object}  envelope.ErrorBody
// @Router       /api/carts [get]
func (h *CartHandler) List(c echo.Context) error {
	carts, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, "Carts", carts)
}

// GetByUser handles GET /api/carts/:userId.
//
// @Summary      Get the cart of a user
// @Tags         carts
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      string  true  "User ID"
// @Success      200     {object}  envelope.SuccessBody{data=domain.Cart}
// @Failure      403     {object}  envelope.ErrorBody
// @Failure      404     {object}  envelope.ErrorBody
// @Router       /api/carts/{userId} [get]
func (h *CartHandler) GetByUser(c echo.Context) error {
	actor, err := principal(c)
	if err != nil {
		return err
	}
	cart, err := h.service.GetByUser(c.Request().Context(), actor, c.Param("userId"))
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, "Cart", cart)
}

// Update handles PUT /api/carts/:id.
//
// @Summary      Replace the items of a cart
// @Tags         carts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Cart ID"
// @Param        body  body      updateCartRequest  true  "New items"
// @Success      200   {object}  envelope.SuccessBody{data=domain.Cart}
// @Failure      403   {object}  envelope.ErrorBody
// @Failure      404   {object}  envelope.ErrorBody
// @Failure      422   {object}  envelope.FailBody
// @Router       /api/carts/{id} [put]
func (h *CartHandler) Update(c echo.Context) error {
	actor, err := principal(c)
	if err != nil {
		return err
	}
	var req updateCartRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cart, err := h.service.Update(c.Request().Context(), actor, c.Param("id"), toLineItems(req.Products))
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, "Cart updated", cart)
}

// Delete handles DELETE /api/carts/:id.
//
// @Summary      Delete a cart
// @Tags         carts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Cart ID"
// @Success      200  {object}  envelope.SuccessBody
// @Failure      403  {object}  envelope.ErrorBody
// @Failure      404  {object}  envelope.ErrorBody
// @Router       /api/carts/{id} [delete]
func (h *CartHandler) Delete(c echo.Context) error {
	actor, err := principal(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return success(c, http.StatusOK, "Cart deleted", nil)
}

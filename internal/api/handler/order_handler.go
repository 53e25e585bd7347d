package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storefront/ecommerce-api/internal/api/metrics"
	"github.com/storefront/ecommerce-api/internal/core/domain"
	"github.com/storefront/ecommerce-api/internal/core/ports"
)

type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

type addressRequest struct {
	Line1      string `json:"line1"      validate:"required"`
	Line2      string `json:"line2"`
	City       string `json:"city"       validate:"required"`
	PostalCode string `json:"postalCode" validate:"required"`
	Country    string `json:"country"    validate:"required"`
}

func (a addressRequest) toDomain() domain.Address {
	return domain.Address{Line1: a.Line1, Line2: a.Line2, City: a.City, PostalCode: a.PostalCode, Country: a.Country}
}

type createOrderRequest struct {
	Products []lineItemRequest `json:"products" validate:"required,min=1,dive"`
	Amount   float64           `json:"amount"   validate:"required,gt=0"`
	Address  addressRequest    `json:"address"  validate:"required"`
}

type updateOrderRequest struct {
	Products *[]lineItemRequest `json:"products" validate:"omitempty,min=1,dive"`
	Amount   *float64           `json:"amount"   validate:"omitempty,gt=0"`
	Address  *addressRequest    `json:"address"  validate:"omitempty"`
	Status   *string            `json:"status"   validate:"omitempty,oneof=pending paid shipped delivered cancelled"`
}

// Create handles POST /api/orders.
//
// @Summary      Place an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createOrderRequest  true  "Order"
// @Success      201   {object}  envelope.SuccessBody{data=domain.Order}
// @Failure      422   {object}  envelope.FailBody
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	actor, err := principal(c)
	if err != nil {
		return err
	}
	var req createOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	order, err := h.service.Create(c.Request().Context(), actor, ports.CreateOrderInput{
		Products: toLineItems(req.Products),
		Amount:   req.Amount,
		Address:  req.Address.toDomain(),
	})
	if err != nil {
		return err
	}
	metrics.OrdersCreatedTotal.Inc()
	return success(c, http.StatusCreated, "Order created", order)
}

// List handles GET /api/orders.
//
// @Summary      List all orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope.SuccessBody{data=[]domain.Order}
// @Failure      403  {object}  envelope.ErrorBody
// @Router       /api/orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, "Orders", orders)
}

// Income handles GET /api/orders/income.
//
// @Summary      Monthly income since the start of the previous month
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope.SuccessBody{data=[]domain.MonthlyIncome}
// @Failure      403  {object}  envelope.ErrorBody
// @Router       /api/orders/income [get]
func (h *OrderHandler) Income(c echo.Context) error {
	income, err := h.service.Income(c.Request().Context())
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, "Income", income)
}

// ListByUser handles GET /api/orders/:userId.
//
// @Summary      Orders of a user
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      string  true  "User ID"
// @Success      200     {object}  envelope.SuccessBody{data=[]domain.Order}
// @Failure      403     {object}  envelope.ErrorBody
// @Router       /api/orders/{userId} [get]
func (h *OrderHandler) ListByUser(c echo.Context) error {
	actor, err := principal(c)
	if err != nil {
		return err
	}
	orders, err := h.service.ListByUser(c.Request().Context(), actor, c.Param("userId"))
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, "Orders", orders)
}

// Update handles PUT /api/orders/:id.
//
// @Summary      Update an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Order ID"
// @Param        body  body      updateOrderRequest  true  "Fields to change"
// @Success      200   {object}  envelope.SuccessBody{data=domain.Order}
// @Failure      404   {object}  envelope.ErrorBody
// @Failure      422   {object}  envelope.FailBody
// @Router       /api/orders/{id} [put]
func (h *OrderHandler) Update(c echo.Context) error {
	var req updateOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	var patch domain.OrderPatch
	if req.Products != nil {
		items := toLineItems(*req.Products)
		patch.Products = &items
	}
	patch.Amount = req.Amount
	if req.Address != nil {
		addr := req.Address.toDomain()
		patch.Address = &addr
	}
	if req.Status != nil {
		status := domain.OrderStatus(*req.Status)
		patch.Status = &status
	}

	order, err := h.service.Update(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, "Order updated", order)
}

// Delete handles DELETE /api/orders/:id.
//
// @Summary      Delete an order
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  envelope.SuccessBody
// @Failure      404  {object}  envelope.ErrorBody
// @Router       /api/orders/{id} [delete]
func (h *OrderHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return success(c, http.StatusOK, "Order deleted", nil)
}

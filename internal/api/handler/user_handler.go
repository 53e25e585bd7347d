package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/storefront/ecommerce-api/internal/core/domain"
	"github.com/storefront/ecommerce-api/internal/core/ports"
)

type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type updateUserRequest struct {
	Username *string `json:"username" validate:"omitempty,min=3,max=50"`
	Email    *string `json:"email"    validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=6"`
	Role     *string `json:"role"     validate:"omitempty,oneof=Admin Customer"`
}

// List handles GET /api/users.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        new  query     bool  false  "Only the 5 most recent users"
// @Success      200  {object}  envelope.SuccessBody{data=[]domain.User}
// @Failure      401  {object}  envelope.ErrorBody
// @Failure      403  {object}  envelope.ErrorBody
// @Router       /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	newest, _ := strconv.ParseBool(c.QueryParam("new"))
	users, err := h.service.List(c.Request().Context(), newest)
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, "Users", users)
}

// Stats handles GET /api/users/stats.
//
// @Summary      Registrations per month over the last year
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope.SuccessBody{data=[]domain.MonthlyCount}
// @Failure      401  {object}  envelope.ErrorBody
// @Failure      403  {object}  envelope.ErrorBody
// @Router       /api/users/stats [get]
func (h *UserHandler) Stats(c echo.Context) error {
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, "User stats", stats)
}

// Get handles GET /api/users/:id.
//
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  envelope.SuccessBody{data=domain.User}
// @Failure      403  {object}  envelope.ErrorBody
// @Failure      404  {object}  envelope.ErrorBody
// @Router       /api/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	actor, err := principal(c)
	if err != nil {
		return err
	}
	user, err := h.service.Get(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, "User", user)
}

// Update handles PUT /api/users/:id.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User ID"
// @Param        body  body      updateUserRequest  true  "Fields to change"
// @Success      200   {object}  envelope.SuccessBody{data=domain.User}
// @Failure      403   {object}  envelope.ErrorBody
// @Failure      404   {object}  envelope.ErrorBody
// @Failure      422   {object}  envelope.FailBody
// @Router       /api/users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	actor, err := principal(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return malformedBody()
	}
	if req.Email != nil {
		normalized := domain.NormalizeEmail(*req.Email)
		req.Email = &normalized
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := ports.UpdateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	}
	if req.Role != nil {
		role, err := domain.ParseRole(*req.Role)
		if err != nil {
			return err
		}
		input.Role = &role
	}

	user, err := h.service.Update(c.Request().Context(), actor, c.Param("id"), input)
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, "User updated", user)
}

// Delete handles DELETE /api/users/:id.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  envelope.SuccessBody
// @Failure      403  {object}  envelope.ErrorBody
// @Failure      404  {object}  envelope.ErrorBody
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	actor, err := principal(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return success(c, http.StatusOK, "User deleted", nil)
}

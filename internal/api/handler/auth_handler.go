package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storefront/ecommerce-api/internal/api/metrics"
	"github.com/storefront/ecommerce-api/internal/core/domain"
	"github.com/storefront/ecommerce-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerResponse struct {
	User *domain.User `json:"user"`
}

type loginResponse struct {
	AccessToken string `json:"accessToken"`
}

// Register creates a new customer account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  envelope.SuccessBody{data=registerResponse}
// @Failure      422   {object}  envelope.FailBody
// @Failure      500   {object}  envelope.ErrorBody
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return malformedBody()
	}
	// Normalized before validation so padded addresses are accepted and
	// matched against existing accounts in canonical form.
	req.Email = domain.NormalizeEmail(req.Email)
	if err := c.Validate(&req); err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("register", "rejected").Inc()
		return err
	}

	user, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("register", authResult(err)).Inc()
		return err
	}

	metrics.AuthAttemptsTotal.WithLabelValues("register", "success").Inc()
	return success(c, http.StatusCreated, "Register success", registerResponse{User: user})
}

// Login authenticates a user and returns an access token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  envelope.SuccessBody{data=loginResponse}
// @Failure      422   {object}  envelope.FailBody
// @Failure      500   {object}  envelope.ErrorBody
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return malformedBody()
	}
	req.Email = domain.NormalizeEmail(req.Email)
	if err := c.Validate(&req); err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("login", "rejected").Inc()
		return err
	}

	token, _, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("login", authResult(err)).Inc()
		return err
	}

	metrics.AuthAttemptsTotal.WithLabelValues("login", "success").Inc()
	return success(c, http.StatusOK, "Login successful", loginResponse{AccessToken: token})
}

func authResult(err error) string {
	if errors.Is(err, domain.ErrEmailTaken) || errors.Is(err, domain.ErrInvalidCredentials) {
		return "rejected"
	}
	return "error"
}

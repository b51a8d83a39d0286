package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/authbase/user-service/internal/api/metrics"
	"github.com/authbase/user-service/internal/core/domain"
	"github.com/authbase/user-service/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User profile and password"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/v1/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	dob, err := time.Parse(dateLayout, req.DateOfBirth)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "date_of_birth must be formatted as YYYY-MM-DD"})
	}

	err = h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Name:         req.Name,
		Email:        req.Email,
		MobileNumber: req.MobileNumber,
		DateOfBirth:  dob,
		Password:     req.Password,
	})
	switch {
	case err == nil:
	case err == domain.ErrEmailExists:
		metrics.RegistrationsTotal.WithLabelValues("email_exists").Inc()
		return c.JSON(http.StatusBadRequest, errorResponse{Error: domain.ErrEmailExists.Error()})
	case err == domain.ErrDuplicateUser:
		// Storage-level uniqueness violation (mobile number, or an email
		// race): reported generically without naming the colliding field.
		metrics.RegistrationsTotal.WithLabelValues("conflict").Inc()
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "an error occurred while creating the user"})
	default:
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusCreated, registerResponse{Message: "User created successfully."})
}

// Login authenticates a user and returns a bearer token.
//
// @Summary      Login with email or phone number
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/v1/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	tok, err := h.authService.Login(c.Request().Context(), req.Email, req.PhoneNumber, req.Password)
	switch {
	case err == nil:
	case err == domain.ErrMissingIdentifier:
		metrics.LoginsTotal.WithLabelValues("missing_identifier").Inc()
		return c.JSON(http.StatusBadRequest, errorResponse{Error: domain.ErrMissingIdentifier.Error()})
	case err == domain.ErrUserNotFound:
		metrics.LoginsTotal.WithLabelValues("not_found").Inc()
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "could not find user, please try again or register"})
	case err == domain.ErrInvalidCredentials:
		metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: domain.ErrInvalidCredentials.Error()})
	default:
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	metrics.TokensIssuedTotal.Inc()
	return c.JSON(http.StatusOK, loginResponse{AccessToken: tok, TokenType: "bearer"})
}

// Me returns the profile of the authenticated user.
//
// @Summary      Get the authenticated user's profile
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  profileResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	email, err := ctxEmail(c)
	if err != nil {
		return err
	}

	user, err := h.authService.Profile(c.Request().Context(), email)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "user not found"})
		}
		return err
	}

	return c.JSON(http.StatusOK, profileResponse{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		MobileNumber: user.MobileNumber,
		DateOfBirth:  user.DateOfBirth.Format(dateLayout),
	})
}

package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/urbanova/storefront/internal/api/metrics"
	"github.com/urbanova/storefront/internal/core/domain"
	"github.com/urbanova/storefront/internal/core/ports"
)

// AuthHandler handles signup, login, logout, and session inspection. On
// success it issues a bearer token so the browser client can prove the
// session on subsequent calls; the account store remains the authority on
// session state.
type AuthHandler struct {
	accounts  ports.AccountService
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthHandler(accounts ports.AccountService, jwtSecret string, tokenTTL time.Duration) *AuthHandler {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthHandler{accounts: accounts, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// Signup registers a new account and logs it in.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Account details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	session, err := h.accounts.Signup(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("signup", "failure").Inc()
		if errors.Is(err, domain.ErrAccountExists) {
			return c.JSON(http.StatusConflict, errorResponse{Message: "An account with this email already exists."})
		}
		return err
	}

	metrics.AuthAttemptsTotal.WithLabelValues("signup", "success").Inc()
	return c.JSON(http.StatusCreated, h.authResponse(session, "Account created successfully!"))
}

// Login authenticates by email and password.
//
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	session, err := h.accounts.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("login", "failure").Inc()
		if errors.Is(err, domain.ErrInvalidCredentials) {
			// Identical body for unknown email and wrong password.
			return c.JSON(http.StatusUnauthorized, errorResponse{Message: "Invalid email or password."})
		}
		return err
	}

	metrics.AuthAttemptsTotal.WithLabelValues("login", "success").Inc()
	return c.JSON(http.StatusOK, h.authResponse(session, "Logged in successfully!"))
}

// Logout clears the current session.
//
// @Summary      Log out
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  authResponse
// @Failure      401  {object}  errorResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.accounts.Logout(c.Request().Context()); err != nil {
		return err
	}
	metrics.AuthAttemptsTotal.WithLabelValues("logout", "success").Inc()
	return c.JSON(http.StatusOK, authResponse{Success: true, Message: "Logged out."})
}

// Session reports the current session.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  currentSessionResponse
// @Failure      401  {object}  errorResponse
// @Router       /auth/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	session := h.accounts.Current()
	if session == nil {
		return c.JSON(http.StatusOK, currentSessionResponse{Authenticated: false})
	}
	return c.JSON(http.StatusOK, currentSessionResponse{
		Authenticated: true,
		User:          toSessionResponse(session),
	})
}

func (h *AuthHandler) authResponse(session *domain.Session, message string) authResponse {
	token, err := h.generateToken(session)
	if err != nil {
		// The session is already established; the client just has to log in
		// again to obtain a token.
		token = ""
	}
	return authResponse{
		Success: true,
		Message: message,
		User:    toSessionResponse(session),
		Token:   token,
	}
}

func (h *AuthHandler) generateToken(session *domain.Session) (string, error) {
	claims := jwt.MapClaims{
		"sub":   session.ID,
		"name":  session.Name,
		"email": session.Email,
		"exp":   time.Now().Add(h.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(h.jwtSecret))
}

func toSessionResponse(s *domain.Session) *sessionResponse {
	return &sessionResponse{ID: s.ID, Name: s.Name, Email: s.Email}
}

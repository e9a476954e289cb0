package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/HairulDev/tsn-asia-next/internal/api/metrics"
	"github.com/HairulDev/tsn-asia-next/internal/api/middleware"
	"github.com/HairulDev/tsn-asia-next/internal/core/domain"
	"github.com/HairulDev/tsn-asia-next/internal/core/ports"
)

// AuthHandler drives login and logout. It forwards credentials to the
// upstream backend, and on success persists a session holding the upstream
// bearer token and issues the portal's own session token.
type AuthHandler struct {
	gateway    ports.AuthGateway
	store      ports.SessionStore
	registry   *Registry
	jwtSecret  string
	sessionTTL time.Duration
	log        zerolog.Logger
}

func NewAuthHandler(gateway ports.AuthGateway, store ports.SessionStore, registry *Registry, jwtSecret string, sessionTTL time.Duration, log zerolog.Logger) *AuthHandler {
	if sessionTTL <= 0 {
		sessionTTL = 24 * time.Hour
	}
	return &AuthHandler{
		gateway:    gateway,
		store:      store,
		registry:   registry,
		jwtSecret:  jwtSecret,
		sessionTTL: sessionTTL,
		log:        log,
	}
}

// Login authenticates a user and returns a portal session token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
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

	result, err := h.gateway.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("rejected").Inc()
		} else {
			metrics.LoginsTotal.WithLabelValues("error").Inc()
		}
		h.log.Warn().Err(err).Str("email", req.Email).Msg("login failed")
		return err
	}

	now := time.Now().UTC()
	sess := &domain.Session{
		ID:          uuid.NewString(),
		UserID:      result.User.ID,
		Name:        result.User.Name,
		Email:       result.User.Email,
		Role:        result.User.Role,
		CompanyID:   result.User.CompanyID,
		CompanyName: result.CompanyName,
		Token:       result.Token,
		ExpiresAt:   now.Add(h.sessionTTL),
	}
	if err := h.store.Save(c.Request().Context(), sess, h.sessionTTL); err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return err
	}

	token, err := middleware.SignSessionToken(h.jwtSecret, sess.ID, h.sessionTTL)
	if err != nil {
		return err
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	h.log.Info().Str("user_id", sess.UserID).Str("role", sess.Role).Msg("login succeeded")

	return c.JSON(http.StatusOK, loginResponse{
		Success: true,
		Message: "login berhasil",
		Token:   token,
		User: &sessionUser{
			ID:          sess.UserID,
			Name:        sess.Name,
			Email:       sess.Email,
			Role:        sess.Role,
			CompanyID:   sess.CompanyID,
			CompanyName: sess.CompanyName,
		},
	})
}

// Logout clears the session and its screen state.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  logoutResponse
// @Failure      401  {object}  errorResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	if err := h.store.Delete(c.Request().Context(), sess.ID); err != nil {
		return err
	}
	h.registry.Drop(sess.ID)
	h.log.Info().Str("user_id", sess.UserID).Msg("logged out")
	return c.JSON(http.StatusOK, logoutResponse{Success: true, Message: "logout berhasil"})
}

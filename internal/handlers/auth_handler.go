package handlers

import (
	"net/http"

	"github.com/ArowuTest/oripay-exchange-backend/internal/config"
	"github.com/ArowuTest/oripay-exchange-backend/internal/middleware"
	"github.com/ArowuTest/oripay-exchange-backend/internal/models"
	"github.com/ArowuTest/oripay-exchange-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles sign-in, sign-out and password reset requests
type AuthHandler struct {
	cfg         *config.Config
	authService services.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(cfg *config.Config, authService services.AuthService) *AuthHandler {
	return &AuthHandler{cfg: cfg, authService: authService}
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, "Login Failed", err)
		return
	}

	sc := middleware.GetSession(c)
	redirect, err := h.authService.Login(c.Request.Context(), sc, &req)
	if err != nil {
		respondError(c, "Login Failed", err)
		return
	}

	middleware.RenewSessionID(c)
	middleware.SetTokenCookie(c, h.cfg, sc.Token())
	c.JSON(http.StatusOK, gin.H{
		"user":     sc.State().User,
		"token":    sc.Token(),
		"redirect": redirect,
	})
}

// Logout handles POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	sc := middleware.GetSession(c)
	err := h.authService.Logout(c.Request.Context(), sc)
	middleware.ClearTokenCookie(c, h.cfg)
	if err != nil {
		respondError(c, "Logout Failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"redirect": "/"})
}

// Session handles GET /api/v1/auth/session
func (h *AuthHandler) Session(c *gin.Context) {
	state := middleware.GetSession(c).State()
	c.JSON(http.StatusOK, gin.H{"loading": state.Loading, "user": state.User})
}

// RequestPasswordReset handles POST /api/v1/auth/password-reset
func (h *AuthHandler) RequestPasswordReset(c *gin.Context) {
	var req models.PasswordResetRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, "Password Reset Failed", err)
		return
	}
	if err := h.authService.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		respondError(c, "Password Reset Failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"notification": success("Check Your Email", "If an account exists for that email, a reset link is on its way."),
	})
}

// ConfirmPasswordReset handles POST /api/v1/auth/password-reset/confirm
func (h *AuthHandler) ConfirmPasswordReset(c *gin.Context) {
	var req models.PasswordResetConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Password Reset Failed", err)
		return
	}
	if err := h.authService.ConfirmPasswordReset(c.Request.Context(), &req); err != nil {
		respondError(c, "Password Reset Failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"notification": success("Password Updated", "You can now log in with your new password."),
		"redirect":     "/login",
	})
}

package handlers

import (
	"context"
	"net/http"

	"github.com/ArowuTest/oripay-exchange-backend/internal/middleware"
	"github.com/ArowuTest/oripay-exchange-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// UserHandler handles the customer dashboard and user administration
type UserHandler struct {
	userService services.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Dashboard handles GET /dashboard
func (h *UserHandler) Dashboard(c *gin.Context) {
	c.JSON(http.StatusOK, h.userService.Dashboard(c.Request.Context(), middleware.CurrentUser(c)))
}

// AdminStats handles GET /admin
func (h *UserHandler) AdminStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.userService.AdminStats(c.Request.Context()))
}

// ListUsers handles GET /admin/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	c.JSON(http.StatusOK, h.userService.ListUsers(c.Request.Context(), c.Query("search")))
}

// GetUser handles GET /api/v1/admin/users/:uid
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userService.GetUser(c.Request.Context(), c.Param("uid"))
	if err != nil {
		respondError(c, "User Lookup Failed", err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// ApproveKYC handles POST /api/v1/admin/users/:uid/kyc/approve
func (h *UserHandler) ApproveKYC(c *gin.Context) {
	h.act(c, h.userService.ApproveKYC, "KYC Approved", "The customer's verification has been approved.")
}

// RejectKYC handles POST /api/v1/admin/users/:uid/kyc/reject
func (h *UserHandler) RejectKYC(c *gin.Context) {
	h.act(c, h.userService.RejectKYC, "KYC Rejected", "The customer's verification has been rejected.")
}

// SuspendUser handles POST /api/v1/admin/users/:uid/suspend
func (h *UserHandler) SuspendUser(c *gin.Context) {
	h.act(c, h.userService.SuspendUser, "User Suspended", "The account has been suspended.")
}

// ActivateUser handles POST /api/v1/admin/users/:uid/activate
func (h *UserHandler) ActivateUser(c *gin.Context) {
	h.act(c, h.userService.ActivateUser, "User Activated", "The account has been activated.")
}

// SendPasswordReset handles POST /api/v1/admin/users/:uid/password-reset
func (h *UserHandler) SendPasswordReset(c *gin.Context) {
	h.act(c, h.userService.SendPasswordReset, "Reset Email Sent", "A password reset link has been sent to the customer.")
}

func (h *UserHandler) act(c *gin.Context, action func(ctx context.Context, uid string) error, title, description string) {
	if err := action(c.Request.Context(), c.Param("uid")); err != nil {
		respondError(c, "Action Failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notification": success(title, description)})
}

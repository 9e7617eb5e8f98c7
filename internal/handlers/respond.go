package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/ArowuTest/oripay-exchange-backend/internal/identity"
	"github.com/ArowuTest/oripay-exchange-backend/internal/models"
	"github.com/ArowuTest/oripay-exchange-backend/internal/repositories"
	"github.com/ArowuTest/oripay-exchange-backend/internal/services"
	"github.com/gin-gonic/gin"
)

var identityStatus = map[string]int{
	identity.CodeInvalidCredential:  http.StatusUnauthorized,
	identity.CodeUserNotFound:       http.StatusNotFound,
	identity.CodeWrongPassword:      http.StatusUnauthorized,
	identity.CodeUserDisabled:       http.StatusForbidden,
	identity.CodeTooManyRequests:    http.StatusTooManyRequests,
	identity.CodeInvalidEmail:       http.StatusBadRequest,
	identity.CodeEmailAlreadyInUse:  http.StatusConflict,
	identity.CodeWeakPassword:       http.StatusBadRequest,
	identity.CodeUserTokenExpired:   http.StatusUnauthorized,
	identity.CodeInvalidActionCode:  http.StatusBadRequest,
	identity.CodeMissingCredentials: http.StatusBadRequest,
}

// respondError maps a failure to its status and a destructive notification titled title
func respondError(c *gin.Context, title string, err error) {
	notification := models.Notification{Title: title, Variant: models.VariantDestructive}

	var vErr *services.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Description, "notification": vErr.Notification()})
		return
	case identity.Code(err) != "":
		status, ok := identityStatus[identity.Code(err)]
		if !ok {
			status = http.StatusBadRequest
		}
		notification.Description = identity.Message(err)
		c.JSON(status, gin.H{"error": notification.Description, "code": identity.Code(err), "notification": notification})
		return
	case errors.Is(err, services.ErrMaintenance):
		notification.Description = "The platform is under maintenance. Please try again later."
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": notification.Description, "notification": notification})
		return
	case errors.Is(err, services.ErrUserNotFound), errors.Is(err, repositories.ErrDocumentNotFound):
		notification.Description = "Not found."
		c.JSON(http.StatusNotFound, gin.H{"error": notification.Description, "notification": notification})
		return
	case errors.Is(err, services.ErrProfileNotWritten):
		log.Printf("[ERROR] %s: %v", title, err)
		notification.Description = "Your account was created but your company details could not be saved. Please contact support."
		c.JSON(http.StatusInternalServerError, gin.H{"error": notification.Description, "notification": notification})
		return
	}

	log.Printf("[ERROR] %s: %v", title, err)
	notification.Description = identity.DefaultMessage
	c.JSON(http.StatusInternalServerError, gin.H{"error": title + ": " + err.Error(), "notification": notification})
}

// badRequest answers a request body that could not be bound
func badRequest(c *gin.Context, title string, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":        err.Error(),
		"notification": models.Notification{Title: title, Description: "Invalid request.", Variant: models.VariantDestructive},
	})
}

func success(title, description string) models.Notification {
	return models.Notification{Title: title, Description: description, Variant: models.VariantDefault}
}

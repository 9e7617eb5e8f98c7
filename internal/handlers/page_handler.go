package handlers

import (
	"net/http"

	"github.com/ArowuTest/oripay-exchange-backend/internal/models"
	"github.com/ArowuTest/oripay-exchange-backend/internal/services"
	"github.com/gin-gonic/gin"
)

var (
	loginForm = models.FormView{
		Title:  "Welcome Back",
		Action: "/api/v1/auth/login",
		Fields: []models.FormField{
			{Name: "email", Label: "Email", Type: "email", Required: true},
			{Name: "password", Label: "Password", Type: "password", Required: true},
		},
	}
	registerForm = models.FormView{
		Title:  "Create Business Account",
		Action: "/api/v1/register",
		Fields: []models.FormField{
			{Name: "businessType", Label: "Business Type", Type: "select", Required: true},
			{Name: "companyName", Label: "Company Name", Type: "text", Required: true},
			{Name: "email", Label: "Email", Type: "email", Required: true},
			{Name: "phone", Label: "Phone", Type: "tel", Required: true},
			{Name: "coiNumber", Label: "Certificate of Incorporation Number", Type: "text", Required: true},
			{Name: "coiFile", Label: "Certificate of Incorporation", Type: "file", Required: true},
			{Name: "cr12File", Label: "CR12", Type: "file", Required: true},
			{Name: "companyKraFile", Label: "Company KRA PIN", Type: "file", Required: true},
			{Name: "directors[0][firstName]", Label: "Director First Name", Type: "text", Required: true},
			{Name: "directors[0][lastName]", Label: "Director Last Name", Type: "text", Required: true},
			{Name: "directors[0][idFile]", Label: "Director ID", Type: "file", Required: true},
			{Name: "directors[0][kraFile]", Label: "Director KRA PIN", Type: "file", Required: true},
			{Name: "password", Label: "Password", Type: "password", Required: true},
			{Name: "confirmPassword", Label: "Confirm Password", Type: "password", Required: true},
		},
	}
	kycForm = models.FormView{
		Title:  "KYC Verification",
		Action: "/api/v1/kyc",
		Fields: []models.FormField{
			{Name: "idNumber", Label: "ID Number", Type: "text", Required: true},
			{Name: "kraPin", Label: "KRA PIN", Type: "text", Required: true},
			{Name: "dateOfBirth", Label: "Date of Birth", Type: "date", Required: true},
			{Name: "address", Label: "Address", Type: "text", Required: true},
			{Name: "city", Label: "City", Type: "text", Required: true},
			{Name: "country", Label: "Country", Type: "text", Required: true},
			{Name: "idDocument", Label: "ID Document", Type: "file", Required: true},
			{Name: "selfie", Label: "Selfie", Type: "file", Required: true},
		},
	}
)

// PageHandler renders the public navigation routes
type PageHandler struct {
	contentService services.ContentService
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(contentService services.ContentService) *PageHandler {
	return &PageHandler{contentService: contentService}
}

// Home handles GET /
func (h *PageHandler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, h.contentService.HomePage(c.Request.Context()))
}

// Services handles GET /services
func (h *PageHandler) Services(c *gin.Context) {
	c.JSON(http.StatusOK, h.contentService.ServicesPage(c.Request.Context()))
}

// About handles GET /about
func (h *PageHandler) About(c *gin.Context) {
	c.JSON(http.StatusOK, h.contentService.AboutPage(c.Request.Context()))
}

// Login handles GET /login
func (h *PageHandler) Login(c *gin.Context) {
	c.JSON(http.StatusOK, loginForm)
}

// Register handles GET /register
func (h *PageHandler) Register(c *gin.Context) {
	c.JSON(http.StatusOK, registerForm)
}

// KYC handles GET /kyc
func (h *PageHandler) KYC(c *gin.Context) {
	c.JSON(http.StatusOK, kycForm)
}

// NotFound handles unknown paths
func (h *PageHandler) NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "Page not found", "path": c.Request.URL.Path})
}

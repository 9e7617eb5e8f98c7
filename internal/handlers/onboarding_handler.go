package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/ArowuTest/oripay-exchange-backend/internal/config"
	"github.com/ArowuTest/oripay-exchange-backend/internal/middleware"
	"github.com/ArowuTest/oripay-exchange-backend/internal/models"
	"github.com/ArowuTest/oripay-exchange-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// maxDirectors bounds the director blocks read from one registration form
const maxDirectors = 20

// OnboardingHandler handles company registration and KYC submission
type OnboardingHandler struct {
	cfg               *config.Config
	onboardingService services.OnboardingService
}

// NewOnboardingHandler creates a new OnboardingHandler
func NewOnboardingHandler(cfg *config.Config, onboardingService services.OnboardingService) *OnboardingHandler {
	return &OnboardingHandler{cfg: cfg, onboardingService: onboardingService}
}

// Register handles POST /api/v1/register
func (h *OnboardingHandler) Register(c *gin.Context) {
	form, err := h.multipartForm(c)
	if err != nil {
		badRequest(c, "Registration Failed", err)
		return
	}

	var req models.RegistrationRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, "Registration Failed", err)
		return
	}
	if req.COIFile, err = readUpload(form, "coiFile"); err != nil {
		badRequest(c, "Registration Failed", err)
		return
	}
	if req.CR12File, err = readUpload(form, "cr12File"); err != nil {
		badRequest(c, "Registration Failed", err)
		return
	}
	if req.CompanyKRAFile, err = readUpload(form, "companyKraFile"); err != nil {
		badRequest(c, "Registration Failed", err)
		return
	}
	if req.Directors, err = readDirectors(form); err != nil {
		badRequest(c, "Registration Failed", err)
		return
	}

	sc := middleware.GetSession(c)
	user, err := h.onboardingService.Register(c.Request.Context(), sc.Client(), &req)
	if err != nil {
		respondError(c, "Registration Failed", err)
		return
	}

	middleware.RenewSessionID(c)
	middleware.SetTokenCookie(c, h.cfg, sc.Token())
	c.JSON(http.StatusCreated, gin.H{
		"uid":          user.UID,
		"notification": services.RegistrationSucceeded,
		"redirect":     "/kyc",
	})
}

// SubmitKYC handles POST /api/v1/kyc
func (h *OnboardingHandler) SubmitKYC(c *gin.Context) {
	form, err := h.multipartForm(c)
	if err != nil {
		badRequest(c, "KYC Submission Failed", err)
		return
	}

	var req models.KYCRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, "KYC Submission Failed", err)
		return
	}
	if req.IDDocument, err = readUpload(form, "idDocument"); err != nil {
		badRequest(c, "KYC Submission Failed", err)
		return
	}
	if req.Selfie, err = readUpload(form, "selfie"); err != nil {
		badRequest(c, "KYC Submission Failed", err)
		return
	}

	user := middleware.CurrentUser(c)
	submission, err := h.onboardingService.SubmitKYC(c.Request.Context(), user.UID, &req)
	if err != nil {
		respondError(c, "KYC Submission Failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":       submission.Status,
		"notification": services.KYCSubmitted,
		"redirect":     "/dashboard",
	})
}

func (h *OnboardingHandler) multipartForm(c *gin.Context) (*multipart.Form, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.cfg.Upload.MaxBytes)
	form, err := c.MultipartForm()
	if err != nil {
		return nil, fmt.Errorf("invalid multipart form: %w", err)
	}
	return form, nil
}

// readUpload returns nil when the field carries no file
func readUpload(form *multipart.Form, field string) (*models.Upload, error) {
	headers := form.File[field]
	if len(headers) == 0 {
		return nil, nil
	}
	f, err := headers[0].Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", field, err)
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", field, err)
	}
	return &models.Upload{Filename: headers[0].Filename, Content: content}, nil
}

func readDirectors(form *multipart.Form) ([]models.DirectorInput, error) {
	var directors []models.DirectorInput
	for i := 0; i < maxDirectors; i++ {
		prefix := fmt.Sprintf("directors[%d]", i)
		firstName, hasFirst := formValue(form, prefix+"[firstName]")
		lastName, hasLast := formValue(form, prefix+"[lastName]")
		_, hasID := form.File[prefix+"[idFile]"]
		_, hasKRA := form.File[prefix+"[kraFile]"]
		if !hasFirst && !hasLast && !hasID && !hasKRA {
			break
		}

		director := models.DirectorInput{FirstName: firstName, LastName: lastName}
		var err error
		if director.IDFile, err = readUpload(form, prefix+"[idFile]"); err != nil {
			return nil, err
		}
		if director.KRAFile, err = readUpload(form, prefix+"[kraFile]"); err != nil {
			return nil, err
		}
		directors = append(directors, director)
	}
	return directors, nil
}

func formValue(form *multipart.Form, key string) (string, bool) {
	values, ok := form.Value[key]
	if !ok || len(values) == 0 {
		return "", ok
	}
	return values[0], true
}

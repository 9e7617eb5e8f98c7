package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ArowuTest/oripay-exchange-backend/internal/config"
	"github.com/ArowuTest/oripay-exchange-backend/internal/identity"
	"github.com/ArowuTest/oripay-exchange-backend/internal/middleware"
	"github.com/ArowuTest/oripay-exchange-backend/internal/models"
	"github.com/ArowuTest/oripay-exchange-backend/internal/repositories"
	"github.com/ArowuTest/oripay-exchange-backend/internal/repositories/memory"
	"github.com/ArowuTest/oripay-exchange-backend/internal/services"
	"github.com/ArowuTest/oripay-exchange-backend/internal/session"
	"github.com/ArowuTest/oripay-exchange-backend/pkg/jwt"
	"github.com/ArowuTest/oripay-exchange-backend/pkg/mailer"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockOnboardingService is a mock implementation of services.OnboardingService
type mockOnboardingService struct {
	RegisterFunc  func(ctx context.Context, client *identity.Client, req *models.RegistrationRequest) (*models.User, error)
	SubmitKYCFunc func(ctx context.Context, uid string, req *models.KYCRequest) (*models.KYCSubmission, error)
}

func (m *mockOnboardingService) Register(ctx context.Context, client *identity.Client, req *models.RegistrationRequest) (*models.User, error) {
	return m.RegisterFunc(ctx, client, req)
}

func (m *mockOnboardingService) SubmitKYC(ctx context.Context, uid string, req *models.KYCRequest) (*models.KYCSubmission, error) {
	return m.SubmitKYCFunc(ctx, uid, req)
}

func handlerConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Session.TokenCookieName = "oripay_token"
	cfg.JWT.ExpiresIn = 3600
	cfg.Upload.MaxBytes = 1 << 20
	return cfg
}

// anonymousSession returns a settled session over a real provider and in-memory accounts
func anonymousSession(t *testing.T) *session.Context {
	t.Helper()
	provider := identity.NewAccountProvider(memory.NewAccountRepository(), jwt.NewTokenService("test-secret", time.Hour),
		mailer.NewLogMailer(), identity.ProviderOptions{})
	client := identity.NewClient(provider)
	sc := session.New(client)
	client.Start(context.Background(), "")
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.False(t, sc.Wait(ctx).Loading)
	t.Cleanup(sc.Close)
	return sc
}

func newOnboardingRouter(cfg *config.Config, svc services.OnboardingService, sc *session.Context, user *identity.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(middleware.SessionKey, sc)
		if user != nil {
			c.Set(middleware.UserKey, user)
		}
		c.Next()
	})
	h := NewOnboardingHandler(cfg, svc)
	router.POST("/register", h.Register)
	router.POST("/kyc", h.SubmitKYC)
	return router
}

type multipartBody struct {
	buf    bytes.Buffer
	writer *multipart.Writer
}

func newMultipartBody() *multipartBody {
	b := &multipartBody{}
	b.writer = multipart.NewWriter(&b.buf)
	return b
}

func (b *multipartBody) field(t *testing.T, name, value string) *multipartBody {
	require.NoError(t, b.writer.WriteField(name, value))
	return b
}

func (b *multipartBody) file(t *testing.T, name, filename string, content []byte) *multipartBody {
	w, err := b.writer.CreateFormFile(name, filename)
	require.NoError(t, err)
	_, err = w.Write(content)
	require.NoError(t, err)
	return b
}

func (b *multipartBody) request(t *testing.T, path string) *http.Request {
	require.NoError(t, b.writer.Close())
	req := httptest.NewRequest(http.MethodPost, path, &b.buf)
	req.Header.Set("Content-Type", b.writer.FormDataContentType())
	return req
}

func registrationBody(t *testing.T, directors int) *multipartBody {
	b := newMultipartBody().
		field(t, "businessType", "company").
		field(t, "companyName", "Acme Ltd").
		field(t, "email", "ops@acme.test").
		field(t, "phone", "+254700000001").
		field(t, "coiNumber", "CPR/2020/1").
		field(t, "password", "secret123").
		field(t, "confirmPassword", "secret123").
		file(t, "coiFile", "coi.pdf", []byte("%PDF-coi")).
		file(t, "cr12File", "cr12.pdf", []byte("%PDF-cr12")).
		file(t, "companyKraFile", "kra.pdf", []byte("%PDF-kra"))
	for i := 0; i < directors; i++ {
		prefix := fmt.Sprintf("directors[%d]", i)
		b.field(t, prefix+"[firstName]", fmt.Sprintf("Director%d", i)).
			field(t, prefix+"[lastName]", "Doe").
			file(t, prefix+"[idFile]", "id.png", []byte("id")).
			file(t, prefix+"[kraFile]", fmt.Sprintf("kra-%d.pdf", i), []byte("kra"))
	}
	return b
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestRegister_ParsesMultipartForm(t *testing.T) {
	sc := anonymousSession(t)
	var got *models.RegistrationRequest
	svc := &mockOnboardingService{
		RegisterFunc: func(ctx context.Context, client *identity.Client, req *models.RegistrationRequest) (*models.User, error) {
			got = req
			created, err := client.CreateIdentity(ctx, req.Email, req.Password)
			if err != nil {
				return nil, err
			}
			return &models.User{UID: created.UID}, nil
		},
	}

	w := httptest.NewRecorder()
	newOnboardingRouter(handlerConfig(), svc, sc, nil).ServeHTTP(w, registrationBody(t, 2).request(t, "/register"))

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decodeBody(t, w)
	assert.Equal(t, "/kyc", body["redirect"])
	assert.Equal(t, services.RegistrationSucceeded.Title, body["notification"].(map[string]interface{})["title"])

	require.NotNil(t, got)
	assert.Equal(t, "Acme Ltd", got.CompanyName)
	assert.Equal(t, "secret123", got.ConfirmPassword)
	assert.Equal(t, []byte("%PDF-cr12"), got.CR12File.Content)
	require.Len(t, got.Directors, 2)
	assert.Equal(t, "Director1", got.Directors[1].FirstName)
	assert.Equal(t, "kra-1.pdf", got.Directors[1].KRAFile.Filename)

	var tokenSet bool
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "oripay_token" && cookie.Value != "" {
			tokenSet = true
		}
	}
	assert.True(t, tokenSet)
}

func TestRegister_MissingFilesArriveAsNil(t *testing.T) {
	sc := anonymousSession(t)
	var got *models.RegistrationRequest
	svc := &mockOnboardingService{
		RegisterFunc: func(ctx context.Context, client *identity.Client, req *models.RegistrationRequest) (*models.User, error) {
			got = req
			return nil, &services.ValidationError{Title: "Missing Documents", Description: "Please upload the company documents."}
		},
	}

	body := newMultipartBody().field(t, "companyName", "Acme Ltd")
	w := httptest.NewRecorder()
	newOnboardingRouter(handlerConfig(), svc, sc, nil).ServeHTTP(w, body.request(t, "/register"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	notification := decodeBody(t, w)["notification"].(map[string]interface{})
	assert.Equal(t, "Missing Documents", notification["title"])
	assert.Equal(t, models.VariantDestructive, notification["variant"])

	require.NotNil(t, got)
	assert.Nil(t, got.COIFile)
	assert.Empty(t, got.Directors)
}

func TestRegister_RejectsOversizedBody(t *testing.T) {
	cfg := handlerConfig()
	cfg.Upload.MaxBytes = 128
	svc := &mockOnboardingService{
		RegisterFunc: func(ctx context.Context, client *identity.Client, req *models.RegistrationRequest) (*models.User, error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	}

	w := httptest.NewRecorder()
	newOnboardingRouter(cfg, svc, anonymousSession(t), nil).ServeHTTP(w, registrationBody(t, 1).request(t, "/register"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitKYC_UsesCurrentUser(t *testing.T) {
	var gotUID string
	var got *models.KYCRequest
	svc := &mockOnboardingService{
		SubmitKYCFunc: func(ctx context.Context, uid string, req *models.KYCRequest) (*models.KYCSubmission, error) {
			gotUID, got = uid, req
			return &models.KYCSubmission{Status: models.KYCStatusPending}, nil
		},
	}

	body := newMultipartBody().
		field(t, "idNumber", "12345678").
		field(t, "kraPin", "A000000000Z").
		field(t, "dateOfBirth", "1990-01-01").
		field(t, "address", "1 Moi Avenue").
		field(t, "city", "Nairobi").
		field(t, "country", "Kenya").
		file(t, "idDocument", "id.png", []byte("id-bytes")).
		file(t, "selfie", "selfie.jpg", []byte("selfie-bytes"))

	w := httptest.NewRecorder()
	router := newOnboardingRouter(handlerConfig(), svc, anonymousSession(t), &identity.User{UID: "u1"})
	router.ServeHTTP(w, body.request(t, "/kyc"))

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decodeBody(t, w)
	assert.Equal(t, "/dashboard", resp["redirect"])
	assert.Equal(t, models.KYCStatusPending, resp["status"])
	assert.Equal(t, "u1", gotUID)
	assert.Equal(t, "Nairobi", got.City)
	assert.Equal(t, []byte("selfie-bytes"), got.Selfie.Content)
}

func TestRespondError_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", &services.ValidationError{Title: "Missing Information", Description: "Fill in all fields."}, http.StatusBadRequest},
		{"email in use", identity.ErrEmailAlreadyInUse, http.StatusConflict},
		{"throttled", identity.ErrTooManyRequests, http.StatusTooManyRequests},
		{"invalid credential", identity.ErrInvalidCredential, http.StatusUnauthorized},
		{"maintenance", services.ErrMaintenance, http.StatusServiceUnavailable},
		{"user not found", services.ErrUserNotFound, http.StatusNotFound},
		{"document not found", fmt.Errorf("load: %w", repositories.ErrDocumentNotFound), http.StatusNotFound},
		{"profile not written", fmt.Errorf("%w: %w", services.ErrProfileNotWritten, errors.New("write failed")), http.StatusInternalServerError},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	gin.SetMode(gin.TestMode)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			respondError(c, "Action Failed", tt.err)

			assert.Equal(t, tt.status, w.Code)
			notification := decodeBody(t, w)["notification"].(map[string]interface{})
			assert.Equal(t, models.VariantDestructive, notification["variant"])
			assert.NotEmpty(t, notification["description"])
		})
	}
}

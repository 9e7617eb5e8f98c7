package handlers

import (
	"net/http"

	"github.com/ArowuTest/oripay-exchange-backend/internal/models"
	"github.com/ArowuTest/oripay-exchange-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// ContentHandler handles the admin content editors
type ContentHandler struct {
	contentService services.ContentService
}

// NewContentHandler creates a new ContentHandler
func NewContentHandler(contentService services.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

// AdminContent handles GET /admin/content
func (h *ContentHandler) AdminContent(c *gin.Context) {
	c.JSON(http.StatusOK, h.contentService.AdminContent(c.Request.Context()))
}

// GetAbout handles GET /admin/about
func (h *ContentHandler) GetAbout(c *gin.Context) {
	c.JSON(http.StatusOK, h.contentService.GetAbout(c.Request.Context()))
}

// GetFooter handles GET /admin/footer
func (h *ContentHandler) GetFooter(c *gin.Context) {
	c.JSON(http.StatusOK, h.contentService.GetFooter(c.Request.Context()))
}

// SaveHomepage handles PUT /api/v1/admin/content/homepage
func (h *ContentHandler) SaveHomepage(c *gin.Context) {
	content := models.DefaultHomepageContent()
	if err := c.ShouldBindJSON(&content); err != nil {
		badRequest(c, "Save Failed", err)
		return
	}
	if err := h.contentService.SaveHomepage(c.Request.Context(), &content); err != nil {
		respondError(c, "Save Failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"content": content, "notification": success("Homepage Updated", "Your changes are live.")})
}

// SaveAbout handles PUT /api/v1/admin/content/about
func (h *ContentHandler) SaveAbout(c *gin.Context) {
	content := models.DefaultAboutContent()
	if err := c.ShouldBindJSON(&content); err != nil {
		badRequest(c, "Save Failed", err)
		return
	}
	if err := h.contentService.SaveAbout(c.Request.Context(), &content); err != nil {
		respondError(c, "Save Failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"content": content, "notification": success("About Page Updated", "Your changes are live.")})
}

// SaveFooter handles PUT /api/v1/admin/content/footer
func (h *ContentHandler) SaveFooter(c *gin.Context) {
	content := models.DefaultFooterContent()
	if err := c.ShouldBindJSON(&content); err != nil {
		badRequest(c, "Save Failed", err)
		return
	}
	if err := h.contentService.SaveFooter(c.Request.Context(), &content); err != nil {
		respondError(c, "Save Failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"content": content, "notification": success("Footer Updated", "Your changes are live.")})
}

// CreateService handles POST /api/v1/admin/services
func (h *ContentHandler) CreateService(c *gin.Context) {
	service := models.DefaultService()
	if err := c.ShouldBindJSON(&service); err != nil {
		badRequest(c, "Save Failed", err)
		return
	}
	if err := h.contentService.CreateService(c.Request.Context(), &service); err != nil {
		respondError(c, "Save Failed", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"service": service, "notification": success("Service Added", service.Name+" has been added.")})
}

// UpdateService handles PUT /api/v1/admin/services/:id
func (h *ContentHandler) UpdateService(c *gin.Context) {
	service := models.DefaultService()
	if err := c.ShouldBindJSON(&service); err != nil {
		badRequest(c, "Save Failed", err)
		return
	}
	service.ID = c.Param("id")
	if err := h.contentService.UpdateService(c.Request.Context(), &service); err != nil {
		respondError(c, "Save Failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"service": service, "notification": success("Service Updated", service.Name+" has been updated.")})
}

// DeleteService handles DELETE /api/v1/admin/services/:id
func (h *ContentHandler) DeleteService(c *gin.Context) {
	if err := h.contentService.DeleteService(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, "Delete Failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notification": success("Service Deleted", "The service has been removed.")})
}

// CreateAnnouncement handles POST /api/v1/admin/announcements
func (h *ContentHandler) CreateAnnouncement(c *gin.Context) {
	announcement := models.DefaultAnnouncement()
	if err := c.ShouldBindJSON(&announcement); err != nil {
		badRequest(c, "Save Failed", err)
		return
	}
	if err := h.contentService.CreateAnnouncement(c.Request.Context(), &announcement); err != nil {
		respondError(c, "Save Failed", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"announcement": announcement, "notification": success("Announcement Published", announcement.Title)})
}

// UpdateAnnouncement handles PUT /api/v1/admin/announcements/:id
func (h *ContentHandler) UpdateAnnouncement(c *gin.Context) {
	announcement := models.DefaultAnnouncement()
	if err := c.ShouldBindJSON(&announcement); err != nil {
		badRequest(c, "Save Failed", err)
		return
	}
	announcement.ID = c.Param("id")
	if err := h.contentService.UpdateAnnouncement(c.Request.Context(), &announcement); err != nil {
		respondError(c, "Save Failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"announcement": announcement, "notification": success("Announcement Updated", announcement.Title)})
}

// DeleteAnnouncement handles DELETE /api/v1/admin/announcements/:id
func (h *ContentHandler) DeleteAnnouncement(c *gin.Context) {
	if err := h.contentService.DeleteAnnouncement(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, "Delete Failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notification": success("Announcement Deleted", "The announcement has been removed.")})
}

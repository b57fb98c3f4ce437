package handler

import (
	"github.com/gin-gonic/gin"

	appcontent "github.com/evergreen/backend/internal/application/content"
	"github.com/evergreen/backend/internal/interfaces/http/middleware"
)

// SiteContentHandler handles testimonials, FAQs, services, the hero
// banner, and the site settings map
type SiteContentHandler struct {
	BaseHandler
	siteService *appcontent.SiteContentService
}

// NewSiteContentHandler creates a new site content handler
func NewSiteContentHandler(siteService *appcontent.SiteContentService) *SiteContentHandler {
	return &SiteContentHandler{siteService: siteService}
}

// Testimonials godoc
// @Summary      List active testimonials
// @Tags         content
// @Produce      json
// @Success      200 {object} APIResponse[[]content.TestimonialResponse]
// @Router       /content/testimonials [get]
func (h *SiteContentHandler) Testimonials(c *gin.Context) {
	items, err := h.siteService.ActiveTestimonials(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// AdminTestimonials godoc
// @Summary      List all testimonials
// @Tags         admin-content
// @Produce      json
// @Success      200 {object} APIResponse[[]content.TestimonialResponse]
// @Security     BearerAuth
// @Router       /admin/testimonials [get]
func (h *SiteContentHandler) AdminTestimonials(c *gin.Context) {
	items, err := h.siteService.AllTestimonials(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// CreateTestimonial godoc
// @Summary      Create a testimonial
// @Tags         admin-content
// @Accept       json
// @Produce      json
// @Param        request body content.TestimonialRequest true "Testimonial fields"
// @Success      201 {object} APIResponse[content.TestimonialResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /admin/testimonials [post]
func (h *SiteContentHandler) CreateTestimonial(c *gin.Context) {
	var req appcontent.TestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	item, err := h.siteService.CreateTestimonial(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, appcontent.ToTestimonialResponse(item))
}

// UpdateTestimonial godoc
// @Summary      Update a testimonial
// @Tags         admin-content
// @Accept       json
// @Produce      json
// @Param        id path string true "Testimonial ID"
// @Param        request body content.TestimonialRequest true "Testimonial fields"
// @Success      200 {object} APIResponse[content.TestimonialResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /admin/testimonials/{id} [put]
func (h *SiteContentHandler) UpdateTestimonial(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req appcontent.TestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	item, err := h.siteService.UpdateTestimonial(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, appcontent.ToTestimonialResponse(item))
}

// DeleteTestimonial godoc
// @Summary      Delete a testimonial
// @Tags         admin-content
// @Param        id path string true "Testimonial ID"
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /admin/testimonials/{id} [delete]
func (h *SiteContentHandler) DeleteTestimonial(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	if err := h.siteService.DeleteTestimonial(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// FAQs godoc
// @Summary      List FAQs
// @Tags         content
// @Produce      json
// @Param        category query string false "Category filter"
// @Success      200 {object} APIResponse[[]content.FAQResponse]
// @Router       /content/faqs [get]
func (h *SiteContentHandler) FAQs(c *gin.Context) {
	items, err := h.siteService.FAQs(c.Request.Context(), c.Query("category"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// CreateFAQ godoc
// @Summary      Create an FAQ
// @Tags         admin-content
// @Accept       json
// @Produce      json
// @Param        request body content.FAQRequest true "FAQ fields"
// @Success      201 {object} APIResponse[content.FAQResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /admin/faqs [post]
func (h *SiteContentHandler) CreateFAQ(c *gin.Context) {
	var req appcontent.FAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	item, err := h.siteService.CreateFAQ(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, appcontent.ToFAQResponse(item))
}

// UpdateFAQ godoc
// @Summary      Update an FAQ
// @Tags         admin-content
// @Accept       json
// @Produce      json
// @Param        id path string true "FAQ ID"
// @Param        request body content.FAQRequest true "FAQ fields"
// @Success      200 {object} APIResponse[content.FAQResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /admin/faqs/{id} [put]
func (h *SiteContentHandler) UpdateFAQ(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req appcontent.FAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	item, err := h.siteService.UpdateFAQ(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, appcontent.ToFAQResponse(item))
}

// DeleteFAQ godoc
// @Summary      Delete an FAQ
// @Tags         admin-content
// @Param        id path string true "FAQ ID"
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /admin/faqs/{id} [delete]
func (h *SiteContentHandler) DeleteFAQ(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	if err := h.siteService.DeleteFAQ(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Services godoc
// @Summary      List active services
// @Tags         content
// @Produce      json
// @Success      200 {object} APIResponse[[]content.ServiceResponse]
// @Router       /content/services [get]
func (h *SiteContentHandler) Services(c *gin.Context) {
	items, err := h.siteService.ActiveServices(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// ServiceBySlug godoc
// @Summary      Get a service by slug
// @Tags         content
// @Produce      json
// @Param        slug path string true "Service slug"
// @Success      200 {object} APIResponse[content.ServiceResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /content/services/{slug} [get]
func (h *SiteContentHandler) ServiceBySlug(c *gin.Context) {
	item, err := h.siteService.ServiceBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, appcontent.ToServiceResponse(item))
}

// AdminServices godoc
// @Summary      List all services
// @Tags         admin-content
// @Produce      json
// @Success      200 {object} APIResponse[[]content.ServiceResponse]
// @Security     BearerAuth
// @Router       /admin/services [get]
func (h *SiteContentHandler) AdminServices(c *gin.Context) {
	items, err := h.siteService.AllServices(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// CreateService godoc
// @Summary      Create a service
// @Tags         admin-content
// @Accept       json
// @Produce      json
// @Param        request body content.ServiceRequest true "Service fields"
// @Success      201 {object} APIResponse[content.ServiceResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /admin/services [post]
func (h *SiteContentHandler) CreateService(c *gin.Context) {
	var req appcontent.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	item, err := h.siteService.CreateService(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, appcontent.ToServiceResponse(item))
}

// UpdateService godoc
// @Summary      Update a service
// @Tags         admin-content
// @Accept       json
// @Produce      json
// @Param        id path string true "Service ID"
// @Param        request body content.ServiceRequest true "Service fields"
// @Success      200 {object} APIResponse[content.ServiceResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /admin/services/{id} [put]
func (h *SiteContentHandler) UpdateService(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req appcontent.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	item, err := h.siteService.UpdateService(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, appcontent.ToServiceResponse(item))
}

// DeleteService godoc
// @Summary      Delete a service
// @Tags         admin-content
// @Param        id path string true "Service ID"
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /admin/services/{id} [delete]
func (h *SiteContentHandler) DeleteService(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	if err := h.siteService.DeleteService(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Hero godoc
// @Summary      Get the home page hero banner
// @Tags         content
// @Produce      json
// @Success      200 {object} APIResponse[content.HeroResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /content/hero [get]
func (h *SiteContentHandler) Hero(c *gin.Context) {
	hero, err := h.siteService.Hero(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, appcontent.ToHeroResponse(hero))
}

// SetHero godoc
// @Summary      Update the home page hero banner
// @Tags         admin-content
// @Accept       json
// @Produce      json
// @Param        request body content.HeroRequest true "Hero fields"
// @Success      200 {object} APIResponse[content.HeroResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /admin/hero [put]
func (h *SiteContentHandler) SetHero(c *gin.Context) {
	var req appcontent.HeroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	hero, err := h.siteService.SetHero(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, appcontent.ToHeroResponse(hero))
}

// Settings godoc
// @Summary      Get the site settings map
// @Tags         content
// @Produce      json
// @Success      200 {object} APIResponse[content.SettingsResponse]
// @Router       /content/settings [get]
func (h *SiteContentHandler) Settings(c *gin.Context) {
	settings, err := h.siteService.Settings(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, settings)
}

// UpdateSettings godoc
// @Summary      Update site settings
// @Description  Upserts the submitted key-value pairs
// @Tags         admin-content
// @Accept       json
// @Produce      json
// @Param        request body map[string]string true "Settings to upsert"
// @Success      200 {object} APIResponse[content.SettingsResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /admin/settings [put]
func (h *SiteContentHandler) UpdateSettings(c *gin.Context) {
	var values map[string]string
	if err := c.ShouldBindJSON(&values); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.siteService.UpdateSettings(c.Request.Context(), values); err != nil {
		h.HandleError(c, err)
		return
	}

	settings, err := h.siteService.Settings(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, settings)
}

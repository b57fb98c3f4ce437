package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/evergreen/backend/internal/application/inquiry"
	"github.com/evergreen/backend/internal/interfaces/http/middleware"
)

// InquiryHandler handles the public contact form and the admin inbox
type InquiryHandler struct {
	BaseHandler
	inquiryService *inquiry.InquiryService
}

// NewInquiryHandler creates a new inquiry handler
func NewInquiryHandler(inquiryService *inquiry.InquiryService) *InquiryHandler {
	return &InquiryHandler{inquiryService: inquiryService}
}

// Submit godoc
// @Summary      Submit an inquiry
// @Description  Accepts a contact form submission, optionally tied to a property
// @Tags         inquiries
// @Accept       json
// @Produce      json
// @Param        request body inquiry.SubmitInquiryRequest true "Inquiry details"
// @Success      201 {object} APIResponse[inquiry.InquiryResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /inquiry/inquiries [post]
func (h *InquiryHandler) Submit(c *gin.Context) {
	var req inquiry.SubmitInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.inquiryService.Submit(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, inquiry.ToInquiryResponse(result))
}

// List godoc
// @Summary      List inquiries
// @Tags         admin-inquiries
// @Produce      json
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Param        status query string false "Inquiry status" Enums(new, read, replied, archived)
// @Success      200 {object} APIResponse[[]inquiry.InquiryResponse]
// @Security     BearerAuth
// @Router       /admin/inquiries [get]
func (h *InquiryHandler) List(c *gin.Context) {
	var filter inquiry.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	page, err := h.inquiryService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, inquiry.ToInquiryResponses(page.Items), page.Total, page.Page, page.PageSize)
}

// Get godoc
// @Summary      Get an inquiry
// @Description  Returns an inquiry and marks it read when it was new
// @Tags         admin-inquiries
// @Produce      json
// @Param        id path string true "Inquiry ID"
// @Success      200 {object} APIResponse[inquiry.InquiryResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /admin/inquiries/{id} [get]
func (h *InquiryHandler) Get(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	result, err := h.inquiryService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, inquiry.ToInquiryResponse(result))
}

// MarkReplied godoc
// @Summary      Mark an inquiry as replied
// @Tags         admin-inquiries
// @Produce      json
// @Param        id path string true "Inquiry ID"
// @Success      200 {object} APIResponse[inquiry.InquiryResponse]
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /admin/inquiries/{id}/reply [post]
func (h *InquiryHandler) MarkReplied(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	result, err := h.inquiryService.MarkReplied(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, inquiry.ToInquiryResponse(result))
}

// Archive godoc
// @Summary      Archive an inquiry
// @Tags         admin-inquiries
// @Produce      json
// @Param        id path string true "Inquiry ID"
// @Success      200 {object} APIResponse[inquiry.InquiryResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /admin/inquiries/{id}/archive [post]
func (h *InquiryHandler) Archive(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	result, err := h.inquiryService.Archive(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, inquiry.ToInquiryResponse(result))
}

// Delete godoc
// @Summary      Delete an inquiry
// @Tags         admin-inquiries
// @Param        id path string true "Inquiry ID"
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /admin/inquiries/{id} [delete]
func (h *InquiryHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.inquiryService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// CountNew godoc
// @Summary      Count unread inquiries
// @Description  Returns the inbox badge count for the admin sidebar
// @Tags         admin-inquiries
// @Produce      json
// @Success      200 {object} APIResponse[CountData]
// @Security     BearerAuth
// @Router       /admin/inquiries/new/count [get]
func (h *InquiryHandler) CountNew(c *gin.Context) {
	count, err := h.inquiryService.CountNew(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, CountData{Count: count})
}

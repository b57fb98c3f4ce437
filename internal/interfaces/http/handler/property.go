package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/evergreen/backend/internal/application/listing"
	"github.com/evergreen/backend/internal/interfaces/http/middleware"
)

// PropertyHandler handles property browsing, the sell flow, and admin
// listing management endpoints
type PropertyHandler struct {
	BaseHandler
	propertyService *listing.PropertyService
}

// NewPropertyHandler creates a new property handler
func NewPropertyHandler(propertyService *listing.PropertyService) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService}
}

// Browse godoc
// @Summary      Browse published listings
// @Description  Returns published listings matching the status and filter controls
// @Tags         properties
// @Produce      json
// @Param        status query string false "Listing status" Enums(for_sale, for_rent)
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Success      200 {object} APIResponse[[]listing.PropertyListResponse]
// @Router       /listing/properties [get]
func (h *PropertyHandler) Browse(c *gin.Context) {
	req, ok := h.bindBrowseRequest(c)
	if !ok {
		return
	}

	items, total, err := h.propertyService.Browse(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, items, total, req.Page, req.PageSize)
}

// Search godoc
// @Summary      Search published listings
// @Description  Filters published listings by location, price range, land area, type, and amenities
// @Tags         properties
// @Produce      json
// @Param        locations query []string false "Location filter"
// @Param        price_range query string false "Price range bracket" Enums(under-1000, 1000-15000, over-15000, custom)
// @Param        property_types query []string false "Property type filter"
// @Param        amenities query []string false "Amenity filter"
// @Success      200 {object} APIResponse[[]listing.PropertyListResponse]
// @Router       /listing/properties/search [get]
func (h *PropertyHandler) Search(c *gin.Context) {
	// Search shares the browse semantics; it exists as its own route so
	// the filter panel can submit without the paging defaults
	h.Browse(c)
}

// GetBySlug godoc
// @Summary      Get a listing by slug
// @Tags         properties
// @Produce      json
// @Param        slug path string true "Listing slug"
// @Success      200 {object} APIResponse[listing.PropertyResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /listing/properties/{slug} [get]
func (h *PropertyHandler) GetBySlug(c *gin.Context) {
	property, err := h.propertyService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, property)
}

// Featured godoc
// @Summary      Get featured listings
// @Description  Returns the featured listings for the home page carousel
// @Tags         properties
// @Produce      json
// @Success      200 {object} APIResponse[[]listing.PropertyListResponse]
// @Router       /listing/properties/featured [get]
func (h *PropertyHandler) Featured(c *gin.Context) {
	items, err := h.propertyService.Featured(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, items)
}

// Submit godoc
// @Summary      Submit a listing for sale
// @Description  Creates an unpublished listing owned by the signed-in user, pending admin approval
// @Tags         properties
// @Accept       json
// @Produce      json
// @Param        request body listing.SubmitPropertyRequest true "Listing details"
// @Success      201 {object} APIResponse[listing.PropertyResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /listing/properties/submit [post]
func (h *PropertyHandler) Submit(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req listing.SubmitPropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	property, err := h.propertyService.Submit(c.Request.Context(), ownerID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, property)
}

// MyListings godoc
// @Summary      Get the signed-in user's listings
// @Tags         properties
// @Produce      json
// @Success      200 {object} APIResponse[[]listing.PropertyResponse]
// @Failure      401 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /listing/properties/mine [get]
func (h *PropertyHandler) MyListings(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	items, err := h.propertyService.MyListings(c.Request.Context(), ownerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, items)
}

// AdminList godoc
// @Summary      List all listings for the back office
// @Tags         admin-properties
// @Produce      json
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Param        search query string false "Title or location search"
// @Param        status query string false "Listing status" Enums(for_sale, for_rent)
// @Param        approval_status query string false "Approval status" Enums(pending, approved, rejected)
// @Success      200 {object} APIResponse[[]listing.PropertyResponse]
// @Security     BearerAuth
// @Router       /admin/properties [get]
func (h *PropertyHandler) AdminList(c *gin.Context) {
	var filter listing.AdminListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	items, total, err := h.propertyService.AdminList(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, items, total, filter.Page, filter.PageSize)
}

// AdminGet godoc
// @Summary      Get a listing by ID
// @Tags         admin-properties
// @Produce      json
// @Param        id path string true "Listing ID"
// @Success      200 {object} APIResponse[listing.PropertyResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /admin/properties/{id} [get]
func (h *PropertyHandler) AdminGet(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	property, err := h.propertyService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, property)
}

// Create godoc
// @Summary      Create a listing
// @Tags         admin-properties
// @Accept       json
// @Produce      json
// @Param        request body listing.CreatePropertyRequest true "Listing details"
// @Success      201 {object} APIResponse[listing.PropertyResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /admin/properties [post]
func (h *PropertyHandler) Create(c *gin.Context) {
	var req listing.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	property, err := h.propertyService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, property)
}

// Update godoc
// @Summary      Update a listing
// @Tags         admin-properties
// @Accept       json
// @Produce      json
// @Param        id path string true "Listing ID"
// @Param        request body listing.UpdatePropertyRequest true "Fields to update"
// @Success      200 {object} APIResponse[listing.PropertyResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /admin/properties/{id} [put]
func (h *PropertyHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req listing.UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	property, err := h.propertyService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, property)
}

// Delete godoc
// @Summary      Delete a listing
// @Tags         admin-properties
// @Param        id path string true "Listing ID"
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /admin/properties/{id} [delete]
func (h *PropertyHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.propertyService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Approve godoc
// @Summary      Approve a submitted listing
// @Description  Approves a sell-flow submission and publishes it
// @Tags         admin-properties
// @Produce      json
// @Param        id path string true "Listing ID"
// @Success      200 {object} APIResponse[listing.PropertyResponse]
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /admin/properties/{id}/approve [post]
func (h *PropertyHandler) Approve(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	property, err := h.propertyService.Approve(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, property)
}

// Reject godoc
// @Summary      Reject a submitted listing
// @Tags         admin-properties
// @Produce      json
// @Param        id path string true "Listing ID"
// @Success      200 {object} APIResponse[listing.PropertyResponse]
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /admin/properties/{id}/reject [post]
func (h *PropertyHandler) Reject(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	property, err := h.propertyService.Reject(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, property)
}

// MarkStatus godoc
// @Summary      Close out a listing
// @Description  Marks a for_sale listing sold or a for_rent listing rented
// @Tags         admin-properties
// @Produce      json
// @Param        id path string true "Listing ID"
// @Param        status query string true "Target status" Enums(sold, rented)
// @Success      200 {object} APIResponse[listing.PropertyResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /admin/properties/{id}/status [put]
func (h *PropertyHandler) MarkStatus(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var property *listing.PropertyResponse
	var err error
	switch c.Query("status") {
	case "sold":
		property, err = h.propertyService.MarkSold(c.Request.Context(), id)
	case "rented":
		property, err = h.propertyService.MarkRented(c.Request.Context(), id)
	default:
		h.BadRequest(c, "status must be sold or rented")
		return
	}
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, property)
}

// SetFeatured godoc
// @Summary      Toggle the featured flag on a listing
// @Tags         admin-properties
// @Produce      json
// @Param        id path string true "Listing ID"
// @Param        featured query bool true "Featured flag"
// @Success      200 {object} APIResponse[listing.PropertyResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /admin/properties/{id}/featured [put]
func (h *PropertyHandler) SetFeatured(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	featured, err := strconv.ParseBool(c.Query("featured"))
	if err != nil {
		h.BadRequest(c, "featured must be true or false")
		return
	}

	property, err := h.propertyService.SetFeatured(c.Request.Context(), id, featured)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, property)
}

func (h *PropertyHandler) bindBrowseRequest(c *gin.Context) (listing.BrowseRequest, bool) {
	var req listing.BrowseRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return req, false
	}
	if err := c.ShouldBindQuery(&req.Filter); err != nil {
		middleware.HandleValidationError(c, err)
		return req, false
	}
	return req, true
}

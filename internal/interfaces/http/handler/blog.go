package handler

import (
	"github.com/gin-gonic/gin"

	appcontent "github.com/evergreen/backend/internal/application/content"
	"github.com/evergreen/backend/internal/domain/content"
	"github.com/evergreen/backend/internal/interfaces/http/middleware"
)

// BlogHandler handles public blog reading and admin post management
type BlogHandler struct {
	BaseHandler
	blogService *appcontent.BlogService
}

// NewBlogHandler creates a new blog handler
func NewBlogHandler(blogService *appcontent.BlogService) *BlogHandler {
	return &BlogHandler{blogService: blogService}
}

// ListPublished godoc
// @Summary      List published blog posts
// @Tags         blog
// @Produce      json
// @Param        page query int false "Page number"
// @Param        category query string false "Category filter"
// @Param        search query string false "Title search"
// @Success      200 {object} APIResponse[[]content.BlogPostResponse]
// @Router       /content/blog [get]
func (h *BlogHandler) ListPublished(c *gin.Context) {
	var filter appcontent.BlogListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	page, err := h.blogService.ListPublished(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, toBlogPostResponses(page.Items), page.Total, page.Page, page.PageSize)
}

// GetBySlug godoc
// @Summary      Get a published blog post by slug
// @Tags         blog
// @Produce      json
// @Param        slug path string true "Post slug"
// @Success      200 {object} APIResponse[content.BlogPostResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /content/blog/{slug} [get]
func (h *BlogHandler) GetBySlug(c *gin.Context) {
	post, err := h.blogService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, appcontent.ToBlogPostResponse(post))
}

// AdminList godoc
// @Summary      List all blog posts including drafts
// @Tags         admin-blog
// @Produce      json
// @Param        page query int false "Page number"
// @Param        search query string false "Title search"
// @Success      200 {object} APIResponse[[]content.BlogPostResponse]
// @Security     BearerAuth
// @Router       /admin/blog [get]
func (h *BlogHandler) AdminList(c *gin.Context) {
	var filter appcontent.BlogListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	page, err := h.blogService.ListAll(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, toBlogPostResponses(page.Items), page.Total, page.Page, page.PageSize)
}

// AdminGet godoc
// @Summary      Get a blog post by ID
// @Tags         admin-blog
// @Produce      json
// @Param        id path string true "Post ID"
// @Success      200 {object} APIResponse[content.BlogPostResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /admin/blog/{id} [get]
func (h *BlogHandler) AdminGet(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	post, err := h.blogService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, appcontent.ToBlogPostResponse(post))
}

// Create godoc
// @Summary      Create a blog post
// @Tags         admin-blog
// @Accept       json
// @Produce      json
// @Param        request body content.CreateBlogPostRequest true "Post fields"
// @Success      201 {object} APIResponse[content.BlogPostResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /admin/blog [post]
func (h *BlogHandler) Create(c *gin.Context) {
	var req appcontent.CreateBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	post, err := h.blogService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, appcontent.ToBlogPostResponse(post))
}

// Update godoc
// @Summary      Update a blog post
// @Tags         admin-blog
// @Accept       json
// @Produce      json
// @Param        id path string true "Post ID"
// @Param        request body content.UpdateBlogPostRequest true "Fields to update"
// @Success      200 {object} APIResponse[content.BlogPostResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /admin/blog/{id} [put]
func (h *BlogHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req appcontent.UpdateBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	post, err := h.blogService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, appcontent.ToBlogPostResponse(post))
}

// Delete godoc
// @Summary      Delete a blog post
// @Tags         admin-blog
// @Param        id path string true "Post ID"
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /admin/blog/{id} [delete]
func (h *BlogHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.blogService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

func toBlogPostResponses(posts []content.BlogPost) []appcontent.BlogPostResponse {
	responses := make([]appcontent.BlogPostResponse, len(posts))
	for i := range posts {
		responses[i] = appcontent.ToBlogPostResponse(&posts[i])
	}
	return responses
}

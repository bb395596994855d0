package handler

import (
	"github.com/gin-gonic/gin"

	"boardshelf/src/app/http/dto"
	"boardshelf/src/app/http/response"
	"boardshelf/src/app/middleware"
	"boardshelf/src/core/domain"
	"boardshelf/src/core/usecase"
)

// CategoryHandler handles category endpoints.
type CategoryHandler struct {
	categoryService *usecase.CategoryService
}

func NewCategoryHandler(categoryService *usecase.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// List returns all categories with their game counts.
// GET /v1/categories
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryService.ListWithCounts(c.Request.Context())
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	if categories == nil {
		categories = []domain.CategoryWithCount{}
	}
	response.OK(c, categories)
}

// Detail returns one category.
// GET /v1/categories/:category_id
func (h *CategoryHandler) Detail(c *gin.Context) {
	id, ok := parseIDParam(c, "category_id")
	if !ok {
		return
	}
	category, err := h.categoryService.Find(c.Request.Context(), id)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, category)
}

// Create adds a category.
// POST /v1/categories
func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", middleware.GetRequestID(c))
		return
	}
	category, err := h.categoryService.Create(c.Request.Context(), req.Name)
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.Created(c, category)
}

// Update renames a category.
// PUT /v1/categories/:category_id
func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "category_id")
	if !ok {
		return
	}
	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", middleware.GetRequestID(c))
		return
	}
	category, err := h.categoryService.Update(c.Request.Context(), id, req.Name)
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, category)
}

// Destroy deletes a category and, by cascade, its associations.
// DELETE /v1/categories/:category_id
func (h *CategoryHandler) Destroy(c *gin.Context) {
	id, ok := parseIDParam(c, "category_id")
	if !ok {
		return
	}
	removed, err := h.categoryService.Destroy(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	if !removed {
		response.NotFound(c, "category not found", middleware.GetRequestID(c))
		return
	}
	response.NoContent(c)
}

// Games returns the games associated with a category.
// GET /v1/categories/:category_id/games
func (h *CategoryHandler) Games(c *gin.Context) {
	id, ok := parseIDParam(c, "category_id")
	if !ok {
		return
	}
	games, err := h.categoryService.Games(c.Request.Context(), id)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	if games == nil {
		games = []domain.Game{}
	}
	response.OK(c, games)
}

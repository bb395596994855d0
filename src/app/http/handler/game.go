package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"boardshelf/src/app/http/dto"
	"boardshelf/src/app/http/response"
	"boardshelf/src/app/middleware"
	"boardshelf/src/core/domain"
	"boardshelf/src/core/usecase"
)

// GameHandler handles game endpoints.
type GameHandler struct {
	gameService *usecase.GameService
}

func NewGameHandler(gameService *usecase.GameService) *GameHandler {
	return &GameHandler{gameService: gameService}
}

// List returns all games with their category names. An optional category_id
// query parameter restricts the result to games tagged with that category.
// GET /v1/games?category_id=N
func (h *GameHandler) List(c *gin.Context) {
	var categoryID *int64
	if raw := c.Query("category_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id < 1 {
			response.BadRequest(c, "invalid category_id", middleware.GetRequestID(c))
			return
		}
		categoryID = &id
	}

	games, err := h.gameService.ListAll(c.Request.Context(), categoryID)
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	if games == nil {
		games = []domain.GameWithCategories{}
	}
	response.OK(c, games)
}

// Detail returns one game with its category names.
// GET /v1/games/:game_id
func (h *GameHandler) Detail(c *gin.Context) {
	id, ok := parseIDParam(c, "game_id")
	if !ok {
		return
	}
	game, err := h.gameService.Find(c.Request.Context(), id)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, game)
}

// Create adds a game and its category associations atomically.
// POST /v1/games
func (h *GameHandler) Create(c *gin.Context) {
	var req dto.GameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", middleware.GetRequestID(c))
		return
	}
	game, err := h.gameService.Create(c.Request.Context(), req.Fields(), req.CategoryIDs)
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.Created(c, game)
}

// Update replaces a game's scalar fields and its entire association set.
// PUT /v1/games/:game_id
func (h *GameHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "game_id")
	if !ok {
		return
	}
	var req dto.GameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", middleware.GetRequestID(c))
		return
	}
	game, err := h.gameService.Update(c.Request.Context(), id, req.Fields(), req.CategoryIDs)
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, game)
}

// Destroy deletes a game and, by cascade, its associations.
// DELETE /v1/games/:game_id
func (h *GameHandler) Destroy(c *gin.Context) {
	id, ok := parseIDParam(c, "game_id")
	if !ok {
		return
	}
	removed, err := h.gameService.Destroy(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	if !removed {
		response.NotFound(c, "game not found", middleware.GetRequestID(c))
		return
	}
	response.NoContent(c)
}

// SelectedCategories returns the game's current category id set, sorted,
// for pre-populating an edit form.
// GET /v1/games/:game_id/categories
func (h *GameHandler) SelectedCategories(c *gin.Context) {
	id, ok := parseIDParam(c, "game_id")
	if !ok {
		return
	}
	ids, err := h.gameService.SelectedCategoryIDs(c.Request.Context(), id)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	if ids == nil {
		ids = []int64{}
	}
	response.OK(c, gin.H{"category_ids": ids})
}

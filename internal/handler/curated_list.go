package handler

import (
	"log"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/user/curio/internal/model"
	"github.com/user/curio/internal/utils"
)

type createCuratedListRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// CreateCuratedList 创建精选清单，slug 全局唯一
func (h *Handler) CreateCuratedList(c *gin.Context) {
	var req createCuratedListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body.")
		return
	}

	name := strings.TrimSpace(req.Name)
	description := ""
	if req.Description != nil {
		description = strings.TrimSpace(*req.Description)
	}

	var missing []string
	if name == "" {
		missing = append(missing, "name")
	}
	if description == "" {
		missing = append(missing, "description")
	}
	if len(missing) > 0 {
		utils.BadRequest(c, "Missing required fields: "+strings.Join(missing, ", "))
		return
	}

	slug := utils.GenerateSlug(name)

	existing, err := h.Repos.CuratedList.FindBySlug(slug)
	if err != nil {
		utils.ErrorWithDetail(c, 500, "Failed to create curated list.", err.Error(), h.Config.IsProduction())
		return
	}
	if existing != nil {
		utils.Conflict(c, "Slug already exists. Please use a unique slug.")
		return
	}

	list := &model.CuratedList{Name: name, Slug: slug, Description: description}
	if err := h.Repos.CuratedList.Create(list); err != nil {
		log.Printf("[CuratedList] 创建清单失败: %v", err)
		utils.ErrorWithDetail(c, 500, "Failed to create curated list.", err.Error(), h.Config.IsProduction())
		return
	}

	utils.Created(c, gin.H{
		"success": true,
		"message": "Curated list created successfully.",
		"data": gin.H{
			"id":   list.ID,
			"name": list.Name,
			"slug": list.Slug,
		},
	})
}

type updateCuratedListRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// UpdateCuratedList 更新清单，改名时重新生成 slug
func (h *Handler) UpdateCuratedList(c *gin.Context) {
	listID, err := strconv.Atoi(c.Param("curatedListId"))
	if err != nil {
		utils.NotFound(c, "Curated list not found")
		return
	}

	var req updateCuratedListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body.")
		return
	}

	list, err := h.Repos.CuratedList.FindByID(listID)
	if err != nil {
		utils.InternalServerError(c, "Failed to update curated list.")
		return
	}
	if list == nil {
		utils.NotFound(c, "Curated list not found")
		return
	}

	if req.Name != "" {
		list.Name = req.Name
		// 名称变更时 slug 跟着更新
		list.Slug = utils.GenerateSlug(req.Name)
	}
	if req.Description != nil {
		list.Description = *req.Description
	}

	if err := h.Repos.CuratedList.Save(list); err != nil {
		log.Printf("[CuratedList] 更新清单失败 (id: %d): %v", listID, err)
		utils.InternalServerError(c, "Failed to update curated list.")
		return
	}

	utils.OK(c, gin.H{"message": "Curated list updated successfully."})
}

// AddToCuratedList 电影入清单（必要时先惰性入库）
func (h *Handler) AddToCuratedList(c *gin.Context) {
	listID, err := strconv.Atoi(c.Param("curatedListId"))
	if err != nil {
		utils.NotFound(c, "Curated list not found")
		return
	}

	var req addMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.MovieID <= 0 {
		utils.BadRequest(c, "Movie ID must be a positive integer.")
		return
	}

	list, err := h.Repos.CuratedList.FindByID(listID)
	if err != nil {
		utils.InternalServerError(c, "Failed to add movie to curated list.")
		return
	}
	if list == nil {
		utils.NotFound(c, "Curated list not found")
		return
	}

	movie, err := h.TMDB.EnsureMovie(c.Request.Context(), req.MovieID)
	if err != nil {
		log.Printf("[CuratedList] 惰性入库失败 (TmdbID: %d): %v", req.MovieID, err)
		utils.ErrorWithDetail(c, 500, "Failed to fetch movie details from TMDB.", err.Error(), h.Config.IsProduction())
		return
	}

	contains, err := h.Repos.CuratedItem.Contains(list.ID, movie.ID)
	if err != nil {
		utils.InternalServerError(c, "Failed to add movie to curated list.")
		return
	}
	if contains {
		utils.BadRequest(c, "Movie is already in the curated list.")
		return
	}

	if err := h.Repos.CuratedItem.Add(list.ID, movie.ID); err != nil {
		utils.InternalServerError(c, "Failed to add movie to curated list.")
		return
	}

	utils.OK(c, gin.H{"message": "Movie added to curated list successfully."})
}

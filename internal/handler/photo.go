package handler

import (
	"log"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/user/curio/internal/middleware"
	"github.com/user/curio/internal/model"
	"github.com/user/curio/internal/utils"
	"github.com/user/curio/internal/validation"
)

// UnsplashSearch 代理 Unsplash 图片搜索
func (h *Handler) UnsplashSearch(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		utils.BadRequest(c, "Query parameter is required.")
		return
	}
	if h.Config.UnsplashKey == "" {
		utils.InternalServerError(c, "Unsplash API key is missing. Please configure the .env file.")
		return
	}

	photos, err := h.Unsplash.Search(c.Request.Context(), query)
	if err != nil {
		log.Printf("[Unsplash] 搜索失败: %v", err)
		utils.InternalServerError(c, "Failed to fetch images from Unsplash.")
		return
	}

	if len(photos) == 0 {
		utils.OK(c, gin.H{"message": "No images found for the given query."})
		return
	}
	utils.OK(c, gin.H{"photos": photos})
}

type savePhotoRequest struct {
	ImageURL       string   `json:"imageUrl"`
	Description    string   `json:"description"`
	AltDescription string   `json:"altDescription"`
	Tags           []string `json:"tags"`
	UserID         int      `json:"userId"`
}

// SavePhoto 保存图片并建立标签
func (h *Handler) SavePhoto(c *gin.Context) {
	var req savePhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body.")
		return
	}

	if msg := validation.ImageURL(req.ImageURL); msg != "" {
		utils.BadRequest(c, msg)
		return
	}
	if msg := validation.Tags(req.Tags); msg != "" {
		utils.BadRequest(c, msg)
		return
	}

	photo := &model.Photo{
		ImageURL:       req.ImageURL,
		Description:    req.Description,
		AltDescription: req.AltDescription,
		UserID:         req.UserID,
	}
	if err := h.Repos.Photo.Create(photo); err != nil {
		log.Printf("[Photo] 保存图片失败: %v", err)
		utils.InternalServerError(c, "Failed to save photo.")
		return
	}

	if err := h.Repos.Tag.CreateForPhoto(photo.ID, req.Tags); err != nil {
		log.Printf("[Photo] 创建标签失败: %v", err)
		utils.InternalServerError(c, "Failed to save photo.")
		return
	}
	photo.Tags = req.Tags

	utils.Created(c, gin.H{
		"message": "Photo saved successfully",
		"photo":   photo,
	})
}

type addTagsRequest struct {
	Tags []string `json:"tags"`
}

// AddTags 为已有图片追加标签
func (h *Handler) AddTags(c *gin.Context) {
	var req addTagsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body.")
		return
	}

	if msg := validation.TagsArray(req.Tags); msg != "" {
		utils.BadRequest(c, msg)
		return
	}

	photoID, err := strconv.Atoi(c.Param("photoId"))
	if err != nil {
		utils.NotFound(c, "Photo not found.")
		return
	}
	photo, err := h.Repos.Photo.FindByID(photoID)
	if err != nil {
		utils.InternalServerError(c, "Failed to add tags to photo.")
		return
	}
	if photo == nil {
		utils.NotFound(c, "Photo not found.")
		return
	}

	existing, err := h.Repos.Tag.NamesForPhoto(photoID)
	if err != nil {
		utils.InternalServerError(c, "Failed to add tags to photo.")
		return
	}
	if msg := validation.TagCount(existing, req.Tags); msg != "" {
		utils.BadRequest(c, msg)
		return
	}

	if err := h.Repos.Tag.CreateForPhoto(photoID, req.Tags); err != nil {
		log.Printf("[Photo] 追加标签失败: %v", err)
		utils.InternalServerError(c, "Failed to add tags to photo.")
		return
	}
	photo.Tags = append(existing, req.Tags...)

	utils.OK(c, gin.H{
		"message": "Tags added successfully",
		"photo":   photo,
		"count":   len(photo.Tags),
	})
}

// SearchByTag 标签搜索：逗号分隔的标签集合，命中任一标签的图片都会返回
func (h *Handler) SearchByTag(c *gin.Context) {
	tagsParam := c.Query("tags")
	if tagsParam == "" {
		utils.BadRequest(c, "Tags are required.")
		return
	}

	tags := strings.Split(tagsParam, ",")
	for i, tag := range tags {
		tags[i] = strings.TrimSpace(tag)
		if msg := validation.SingleTag(tags[i]); msg != "" {
			utils.BadRequest(c, msg)
			return
		}
	}

	sortOrder := c.DefaultQuery("sort", "ASC")
	if msg := validation.SortOrder(sortOrder); msg != "" {
		utils.BadRequest(c, msg)
		return
	}

	// userId 优先取查询参数，缺省时回退到 Token
	userID := middleware.GetUserID(c)
	if param := c.Query("userId"); param != "" {
		parsed, msg := validation.ParseUserID(param)
		if msg != "" {
			utils.BadRequest(c, msg)
			return
		}
		userID = parsed
	}

	photoIDs, err := h.Repos.Tag.PhotoIDsByNames(tags)
	if err != nil {
		h.searchFailed(c, err)
		return
	}
	if len(photoIDs) == 0 {
		utils.NotFound(c, "Tag not found.")
		return
	}

	photos, err := h.Repos.Photo.FindByIDs(photoIDs, sortOrder)
	if err != nil {
		h.searchFailed(c, err)
		return
	}

	details := make([]model.PhotoDetail, 0, len(photos))
	for _, photo := range photos {
		names, err := h.Repos.Tag.NamesForPhoto(photo.ID)
		if err != nil {
			h.searchFailed(c, err)
			return
		}
		details = append(details, model.PhotoDetail{
			ImageURL:    photo.ImageURL,
			Description: photo.Description,
			DateSaved:   photo.DateSaved,
			Tags:        names,
		})
	}

	// 搜索历史是尽力而为的副作用，失败只记日志，不影响响应
	if userID > 0 {
		if err := h.Repos.SearchHistory.Record(userID, tagsParam); err != nil {
			log.Printf("[Photo] 记录搜索历史失败 (userId: %d): %v", userID, err)
		}
	}

	utils.OK(c, gin.H{
		"photos": details,
		"count":  len(details),
	})
}

func (h *Handler) searchFailed(c *gin.Context, err error) {
	log.Printf("[Photo] 标签搜索失败: %v", err)
	utils.ErrorWithDetail(c, 500, "Failed to search photos by tag.", err.Error(), h.Config.IsProduction())
}

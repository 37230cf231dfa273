package handler

import (
	"log"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/user/curio/internal/model"
	"github.com/user/curio/internal/utils"
	"github.com/user/curio/internal/validation"
)

type addReviewRequest struct {
	Rating     *float64 `json:"rating"`
	ReviewText string   `json:"reviewText"`
}

// AddReview 给已入库的电影写影评。路径参数是 TMDB ID。
func (h *Handler) AddReview(c *gin.Context) {
	tmdbID, err := strconv.Atoi(c.Param("movieId"))
	if err != nil {
		utils.NotFound(c, "Movie not found.")
		return
	}

	movie, err := h.Repos.Movie.FindByTmdbID(tmdbID)
	if err != nil {
		utils.InternalServerError(c, "Failed to add review due to an internal server error.")
		return
	}
	if movie == nil {
		utils.NotFound(c, "Movie not found.")
		return
	}

	var req addReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Rating == nil {
		utils.BadRequest(c, "Rating must be between 0 and 10 and should be a number.")
		return
	}
	if msg := validation.ReviewRating(*req.Rating); msg != "" {
		utils.BadRequest(c, msg)
		return
	}
	if msg := validation.ReviewText(req.ReviewText); msg != "" {
		utils.BadRequest(c, msg)
		return
	}

	review := &model.Review{
		MovieID:    movie.ID,
		Rating:     *req.Rating,
		ReviewText: req.ReviewText,
	}
	if err := h.Repos.Review.Create(review); err != nil {
		log.Printf("[Review] 新增影评失败 (movieId: %d): %v", movie.ID, err)
		utils.InternalServerError(c, "Failed to add review due to an internal server error.")
		return
	}

	utils.OK(c, gin.H{"message": "Review added successfully."})
}

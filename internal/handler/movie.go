package handler

import (
	"log"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/user/curio/internal/model"
	"github.com/user/curio/internal/utils"
	"github.com/user/curio/internal/validation"
)

// SearchMovies TMDB 电影搜索
func (h *Handler) SearchMovies(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		utils.BadRequest(c, "Search query is required")
		return
	}

	movies, err := h.TMDB.SearchMovies(c.Request.Context(), query)
	if err != nil {
		log.Printf("[Movie] TMDB 搜索失败: %v", err)
		utils.InternalServerError(c, "Failed to search movies")
		return
	}

	utils.OK(c, gin.H{"movies": movies})
}

type addMovieRequest struct {
	MovieID int `json:"movieId"`
}

// AddToWatchlist 加入待看清单（电影不存在时先从 TMDB 惰性入库）
func (h *Handler) AddToWatchlist(c *gin.Context) {
	h.addToList(c, model.ListWatchlist)
}

// AddToWishlist 加入愿望清单
func (h *Handler) AddToWishlist(c *gin.Context) {
	h.addToList(c, model.ListWishlist)
}

func (h *Handler) addToList(c *gin.Context, kind model.ListKind) {
	var req addMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.MovieID <= 0 {
		utils.BadRequest(c, "Movie ID must be a positive integer.")
		return
	}

	movie, err := h.TMDB.EnsureMovie(c.Request.Context(), req.MovieID)
	if err != nil {
		log.Printf("[Movie] 惰性入库失败 (TmdbID: %d): %v", req.MovieID, err)
		utils.ErrorWithDetail(c, 500, "Failed to fetch movie details from TMDB.", err.Error(), h.Config.IsProduction())
		return
	}

	var contains bool
	switch kind {
	case model.ListWatchlist:
		contains, err = h.Repos.Watchlist.Contains(movie.ID)
	case model.ListWishlist:
		contains, err = h.Repos.Wishlist.Contains(movie.ID)
	}
	if err != nil {
		utils.InternalServerError(c, "Failed to add movie to "+string(kind)+".")
		return
	}
	if contains {
		utils.BadRequest(c, "Movie is already in the "+string(kind)+".")
		return
	}

	switch kind {
	case model.ListWatchlist:
		err = h.Repos.Watchlist.Add(movie.ID)
	case model.ListWishlist:
		err = h.Repos.Wishlist.Add(movie.ID)
	}
	if err != nil {
		utils.InternalServerError(c, "Failed to add movie to "+string(kind)+".")
		return
	}

	utils.OK(c, gin.H{"message": "Movie added to " + string(kind) + " successfully."})
}

// SearchByFilters 组合过滤：genre/actor/director 子串 + 可选清单归属。
// 显式传空串与缺省是两种情况，空串直接拒绝。
func (h *Handler) SearchByFilters(c *gin.Context) {
	params := c.Request.URL.Query()

	for _, p := range []struct{ param, label string }{
		{"genre", "Genre"},
		{"actor", "Actor"},
		{"director", "Director"},
	} {
		if values, present := params[p.param]; present && strings.TrimSpace(values[0]) == "" {
			utils.BadRequest(c, "Invalid "+p.param+" parameter. "+p.label+" must be a non-empty string.")
			return
		}
	}

	genre := c.Query("genre")
	actor := c.Query("actor")
	director := c.Query("director")
	listType := c.Query("listType")

	if genre == "" && actor == "" && director == "" && listType == "" {
		utils.BadRequest(c, "At least one query parameter must be provided.")
		return
	}

	if msg := validation.ListTypeParam(listType); msg != "" {
		utils.BadRequest(c, msg)
		return
	}

	var kind model.ListKind
	if listType != "" {
		kind, _ = model.ParseListKind(listType)
	}

	movies, err := h.Repos.Movie.FindFiltered(genre, actor, director, kind)
	if err != nil {
		log.Printf("[Movie] 组合过滤失败: %v", err)
		utils.InternalServerError(c, "An error occurred while searching for movies.")
		return
	}

	if len(movies) == 0 {
		utils.OK(c, gin.H{
			"movies":  []*model.Movie{},
			"message": "No movies found matching the specified filters.",
		})
		return
	}
	utils.OK(c, gin.H{"movies": movies})
}

// SortMovies 清单成员排序
func (h *Handler) SortMovies(c *gin.Context) {
	list := c.Query("list")
	sortBy := c.Query("sortBy")
	order := c.DefaultQuery("order", "ASC")

	// 三个枚举全部校验完才允许触库
	if msg := validation.ListParam(list); msg != "" {
		utils.BadRequest(c, msg)
		return
	}
	if msg := validation.SortByParam(sortBy); msg != "" {
		utils.BadRequest(c, msg)
		return
	}
	if msg := validation.OrderParam(order); msg != "" {
		utils.BadRequest(c, msg)
		return
	}

	kind, _ := model.ParseListKind(list)
	movies, err := h.Repos.Movie.FindSorted(kind, sortBy, order)
	if err != nil {
		log.Printf("[Movie] 清单排序失败: %v", err)
		utils.InternalServerError(c, "An error occurred while sorting the movies.")
		return
	}

	formatted := make([]gin.H, 0, len(movies))
	for _, movie := range movies {
		formatted = append(formatted, gin.H{
			"title":       movie.Title,
			"tmdbId":      movie.TmdbID,
			"genre":       movie.Genre,
			"actors":      movie.Actors,
			"releaseYear": movie.ReleaseYear,
			"rating":      movie.Rating,
		})
	}
	utils.OK(c, gin.H{"movies": formatted})
}

// TopMovies 评分最高的五部电影，附第一条影评及其词数
func (h *Handler) TopMovies(c *gin.Context) {
	movies, err := h.Repos.Movie.TopRated(5)
	if err != nil {
		log.Printf("[Movie] 查询榜单失败: %v", err)
		utils.InternalServerError(c, "Failed to fetch top 5 movies.")
		return
	}

	result := make([]gin.H, 0, len(movies))
	for _, movie := range movies {
		reviewText := "No review available."
		review, err := h.Repos.Review.FirstForMovie(movie.ID)
		if err != nil {
			log.Printf("[Movie] 查询影评失败 (movieId: %d): %v", movie.ID, err)
			utils.InternalServerError(c, "Failed to fetch top 5 movies.")
			return
		}
		if review != nil && strings.TrimSpace(review.ReviewText) != "" {
			reviewText = review.ReviewText
		}

		result = append(result, gin.H{
			"title":  movie.Title,
			"rating": movie.Rating,
			"review": gin.H{
				"text":      reviewText,
				"wordCount": wordCount(reviewText),
			},
		})
	}

	utils.OK(c, gin.H{"movies": result})
}

var punctuationRe = regexp.MustCompile(`[^\p{L}\p{N}\s]`)

// wordCount 去标点后按空白切词计数
func wordCount(text string) int {
	stripped := punctuationRe.ReplaceAllString(text, "")
	return len(strings.Fields(stripped))
}

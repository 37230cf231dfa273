package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/user/curio/internal/handler"
	"github.com/user/curio/internal/middleware"
)

// RegisterRoutes 注册所有路由
func RegisterRoutes(r *gin.Engine, h *handler.Handler) {
	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		// ==================== 用户 ====================
		api.POST("/users", h.SignUp)
		api.POST("/users/login", h.Login)

		// ==================== 照片 ====================
		photos := api.Group("/photos")
		{
			photos.GET("/search", h.UnsplashSearch)
			photos.POST("", h.SavePhoto)
			photos.POST("/:photoId/tags", h.AddTags)
			photos.GET("/tag/search", middleware.OptionalAuth(h.Config.AppSecret), h.SearchByTag)
		}
		api.GET("/search-history", middleware.OptionalAuth(h.Config.AppSecret), h.SearchHistory)

		// ==================== 电影 ====================
		movies := api.Group("/movies")
		{
			movies.GET("/search", h.SearchMovies)
			movies.POST("/watchlist", h.AddToWatchlist)
			movies.POST("/wishlist", h.AddToWishlist)
			movies.GET("/searchByGenreAndActor", h.SearchByFilters)
			movies.GET("/sort", h.SortMovies)
			movies.GET("/top5", h.TopMovies)
			movies.POST("/:movieId/reviews", h.AddReview)
		}

		// ==================== 精选清单 ====================
		lists := api.Group("/curated-lists")
		{
			lists.POST("", h.CreateCuratedList)
			lists.PUT("/:curatedListId", h.UpdateCuratedList)
			lists.POST("/:curatedListId/items", h.AddToCuratedList)
		}

		// ==================== 文件夹与文件 ====================
		folders := api.Group("/folders")
		{
			folders.GET("", h.ListFolders)
			folders.POST("", h.CreateFolder)
			folders.PUT("/:folderId", h.UpdateFolder)
			folders.DELETE("/:folderId", h.DeleteFolder)
			folders.POST("/:folderId/files", h.UploadFile)
			folders.GET("/:folderId/files", h.ListFiles)
			folders.DELETE("/:folderId/files/:fileId", h.DeleteFile)
		}
	}
}

package handler

import (
	"github.com/user/curio/internal/config"
	"github.com/user/curio/internal/repository"
	"github.com/user/curio/internal/service"
)

// Handler HTTP 处理器
type Handler struct {
	Repos    *repository.Repositories
	Config   *config.Config
	Unsplash *service.UnsplashService
	TMDB     *service.TMDBService
	Storage  service.BlobStore
}

// NewHandler 创建处理器
func NewHandler(repos *repository.Repositories, cfg *config.Config, storage service.BlobStore) *Handler {
	return &Handler{
		Repos:    repos,
		Config:   cfg,
		Unsplash: service.NewUnsplashService(cfg.UnsplashKey),
		TMDB:     service.NewTMDBService(repos.Movie, cfg.TMDBToken),
		Storage:  storage,
	}
}

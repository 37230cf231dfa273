package repository

import (
	"errors"
	"strings"
	"time"

	"github.com/user/curio/internal/model"
	"gorm.io/gorm"
)

type MovieRepository struct {
	db *gorm.DB
}

func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

// FindByTmdbID 根据 TMDB ID 查找本地电影
func (r *MovieRepository) FindByTmdbID(tmdbID int) (*model.Movie, error) {
	var movie model.Movie
	err := r.db.Where("tmdb_id = ?", tmdbID).First(&movie).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

// Create 插入电影记录
func (r *MovieRepository) Create(movie *model.Movie) error {
	now := time.Now()
	movie.CreatedAt = now
	movie.UpdatedAt = now
	return r.db.Create(movie).Error
}

// FindFiltered 按类型/演员/导演子串过滤（大小写不敏感），
// kind 非空时要求电影属于对应清单。
func (r *MovieRepository) FindFiltered(genre, actor, director string, kind model.ListKind) ([]*model.Movie, error) {
	q := r.db.Model(&model.Movie{})

	if genre != "" {
		q = q.Where("LOWER(genre) LIKE ?", pattern(genre))
	}
	if actor != "" {
		q = q.Where("LOWER(actors) LIKE ?", pattern(actor))
	}
	if director != "" {
		q = q.Where("LOWER(director) LIKE ?", pattern(director))
	}
	if kind != "" {
		sub := r.db.Table(kind.MembershipTable()).Select("movie_id")
		q = q.Where("id IN (?)", sub)
	}

	var movies []*model.Movie
	err := q.Find(&movies).Error
	return movies, err
}

// FindSorted 返回指定清单的成员电影，按 sortBy/order 排序。
// sortBy 与 order 已在入口处按封闭枚举校验。
func (r *MovieRepository) FindSorted(kind model.ListKind, sortBy, order string) ([]*model.Movie, error) {
	column := "rating"
	if sortBy == "releaseYear" {
		column = "release_year"
	}
	if order != "DESC" {
		order = "ASC"
	}

	sub := r.db.Table(kind.MembershipTable()).Select("movie_id")

	var movies []*model.Movie
	err := r.db.Where("id IN (?)", sub).
		Order(column + " " + order).
		Find(&movies).Error
	return movies, err
}

// TopRated 评分最高的 limit 部电影，忽略无评分的记录。
// 同分时的先后顺序由存储层的稳定顺序决定。
func (r *MovieRepository) TopRated(limit int) ([]*model.Movie, error) {
	var movies []*model.Movie
	err := r.db.Where("rating IS NOT NULL").
		Order("rating DESC").
		Limit(limit).
		Find(&movies).Error
	return movies, err
}

func pattern(term string) string {
	return "%" + strings.ToLower(strings.TrimSpace(term)) + "%"
}

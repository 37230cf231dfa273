package repository

import (
	"time"

	"github.com/user/curio/internal/model"
	"gorm.io/gorm"
)

// 待看/愿望清单的成员表操作。
// 唯一性由写前检查保证，不依赖数据库约束。

type WatchlistRepository struct {
	db *gorm.DB
}

func NewWatchlistRepository(db *gorm.DB) *WatchlistRepository {
	return &WatchlistRepository{db: db}
}

// Contains 电影是否已在待看清单
func (r *WatchlistRepository) Contains(movieID int) (bool, error) {
	var count int64
	err := r.db.Model(&model.WatchlistEntry{}).Where("movie_id = ?", movieID).Count(&count).Error
	return count > 0, err
}

// Add 加入待看清单
func (r *WatchlistRepository) Add(movieID int) error {
	return r.db.Create(&model.WatchlistEntry{MovieID: movieID, AddedAt: time.Now()}).Error
}

type WishlistRepository struct {
	db *gorm.DB
}

func NewWishlistRepository(db *gorm.DB) *WishlistRepository {
	return &WishlistRepository{db: db}
}

// Contains 电影是否已在愿望清单
func (r *WishlistRepository) Contains(movieID int) (bool, error) {
	var count int64
	err := r.db.Model(&model.WishlistEntry{}).Where("movie_id = ?", movieID).Count(&count).Error
	return count > 0, err
}

// Add 加入愿望清单
func (r *WishlistRepository) Add(movieID int) error {
	return r.db.Create(&model.WishlistEntry{MovieID: movieID, AddedAt: time.Now()}).Error
}

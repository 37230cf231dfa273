package repository

import (
	"errors"
	"time"

	"github.com/user/curio/internal/model"
	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Create 新增影评
func (r *ReviewRepository) Create(review *model.Review) error {
	review.AddedAt = time.Now()
	return r.db.Create(review).Error
}

// FirstForMovie 电影的第一条影评（榜单展示用）
func (r *ReviewRepository) FirstForMovie(movieID int) (*model.Review, error) {
	var review model.Review
	err := r.db.Where("movie_id = ?", movieID).Order("id ASC").First(&review).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &review, nil
}

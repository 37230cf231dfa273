package repository

import (
	"errors"
	"strings"
	"time"

	"github.com/user/curio/internal/model"
	"gorm.io/gorm"
)

type PhotoRepository struct {
	db *gorm.DB
}

func NewPhotoRepository(db *gorm.DB) *PhotoRepository {
	return &PhotoRepository{db: db}
}

// Create 保存图片
func (r *PhotoRepository) Create(photo *model.Photo) error {
	if photo.DateSaved.IsZero() {
		photo.DateSaved = time.Now()
	}
	return r.db.Create(photo).Error
}

// FindByID 根据 ID 查找图片
func (r *PhotoRepository) FindByID(id int) (*model.Photo, error) {
	var photo model.Photo
	err := r.db.First(&photo, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &photo, nil
}

// FindByIDs 按保存时间排序批量查找
func (r *PhotoRepository) FindByIDs(ids []int, order string) ([]*model.Photo, error) {
	if strings.ToUpper(order) != "DESC" {
		order = "ASC"
	} else {
		order = "DESC"
	}

	var photos []*model.Photo
	err := r.db.Where("id IN ?", ids).
		Order("date_saved " + order).
		Find(&photos).Error
	return photos, err
}

package repository

import (
	"strings"

	"github.com/user/curio/internal/model"
	"gorm.io/gorm"
)

type TagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{db: db}
}

// CreateForPhoto 为图片批量创建标签
func (r *TagRepository) CreateForPhoto(photoID int, names []string) error {
	for _, name := range names {
		tag := &model.Tag{Name: strings.TrimSpace(name), PhotoID: photoID}
		if err := r.db.Create(tag).Error; err != nil {
			return err
		}
	}
	return nil
}

// PhotoIDsByNames 解析标签名集合对应的图片 ID（去重，大小写不敏感）
func (r *TagRepository) PhotoIDsByNames(names []string) ([]int, error) {
	lowered := make([]string, 0, len(names))
	for _, n := range names {
		lowered = append(lowered, strings.ToLower(strings.TrimSpace(n)))
	}

	var ids []int
	err := r.db.Model(&model.Tag{}).
		Where("LOWER(name) IN ?", lowered).
		Distinct().
		Pluck("photo_id", &ids).Error
	return ids, err
}

// NamesForPhoto 图片当前的全部标签名
func (r *TagRepository) NamesForPhoto(photoID int) ([]string, error) {
	var names []string
	err := r.db.Model(&model.Tag{}).
		Where("photo_id = ?", photoID).
		Order("id ASC").
		Pluck("name", &names).Error
	return names, err
}

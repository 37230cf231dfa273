package repository

import (
	"errors"
	"time"

	"github.com/user/curio/internal/model"
	"gorm.io/gorm"
)

type CuratedListRepository struct {
	db *gorm.DB
}

func NewCuratedListRepository(db *gorm.DB) *CuratedListRepository {
	return &CuratedListRepository{db: db}
}

// Create 创建精选清单
func (r *CuratedListRepository) Create(list *model.CuratedList) error {
	list.CreatedAt = time.Now()
	return r.db.Create(list).Error
}

// FindByID 根据 ID 查找清单
func (r *CuratedListRepository) FindByID(id int) (*model.CuratedList, error) {
	var list model.CuratedList
	err := r.db.First(&list, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &list, nil
}

// FindBySlug 根据 slug 查找清单（建清单时的唯一性检查）
func (r *CuratedListRepository) FindBySlug(slug string) (*model.CuratedList, error) {
	var list model.CuratedList
	err := r.db.Where("slug = ?", slug).First(&list).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &list, nil
}

// Save 持久化修改
func (r *CuratedListRepository) Save(list *model.CuratedList) error {
	return r.db.Save(list).Error
}

type CuratedListItemRepository struct {
	db *gorm.DB
}

func NewCuratedListItemRepository(db *gorm.DB) *CuratedListItemRepository {
	return &CuratedListItemRepository{db: db}
}

// Contains 电影是否已在某个精选清单
func (r *CuratedListItemRepository) Contains(listID, movieID int) (bool, error) {
	var count int64
	err := r.db.Model(&model.CuratedListItem{}).
		Where("curated_list_id = ? AND movie_id = ?", listID, movieID).
		Count(&count).Error
	return count > 0, err
}

// Add 加入精选清单
func (r *CuratedListItemRepository) Add(listID, movieID int) error {
	return r.db.Create(&model.CuratedListItem{
		CuratedListID: listID,
		MovieID:       movieID,
		AddedAt:       time.Now(),
	}).Error
}

package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/user/curio/internal/model"
	"gorm.io/gorm"
)

type FolderRepository struct {
	db *gorm.DB
}

func NewFolderRepository(db *gorm.DB) *FolderRepository {
	return &FolderRepository{db: db}
}

// Create 创建文件夹
func (r *FolderRepository) Create(folder *model.Folder) error {
	if folder.FolderID == uuid.Nil {
		folder.FolderID = uuid.New()
	}
	folder.CreatedAt = time.Now()
	return r.db.Create(folder).Error
}

// FindByID 根据 ID 查找文件夹
func (r *FolderRepository) FindByID(id uuid.UUID) (*model.Folder, error) {
	var folder model.Folder
	err := r.db.Where("folder_id = ?", id).First(&folder).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &folder, nil
}

// FindByName 根据名称查找（创建时唯一性检查）
func (r *FolderRepository) FindByName(name string) (*model.Folder, error) {
	var folder model.Folder
	err := r.db.Where("name = ?", name).First(&folder).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &folder, nil
}

// Save 持久化修改
func (r *FolderRepository) Save(folder *model.Folder) error {
	return r.db.Save(folder).Error
}

// Delete 删除文件夹及其文件元数据（级联）
func (r *FolderRepository) Delete(id uuid.UUID) error {
	if err := r.db.Where("folder_id = ?", id).Delete(&model.File{}).Error; err != nil {
		return err
	}
	return r.db.Where("folder_id = ?", id).Delete(&model.Folder{}).Error
}

// ListWithCounts 全部文件夹及各自的文件数
func (r *FolderRepository) ListWithCounts() ([]*model.FolderSummary, error) {
	var folders []*model.Folder
	if err := r.db.Order("created_at ASC").Find(&folders).Error; err != nil {
		return nil, err
	}

	summaries := make([]*model.FolderSummary, 0, len(folders))
	for _, f := range folders {
		var count int64
		if err := r.db.Model(&model.File{}).Where("folder_id = ?", f.FolderID).Count(&count).Error; err != nil {
			return nil, err
		}
		summaries = append(summaries, &model.FolderSummary{
			FolderID:     f.FolderID,
			Name:         f.Name,
			Type:         f.Type,
			MaxFileLimit: f.MaxFileLimit,
			FileCount:    count,
		})
	}
	return summaries, nil
}

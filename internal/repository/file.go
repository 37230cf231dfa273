package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/user/curio/internal/model"
	"gorm.io/gorm"
)

type FileRepository struct {
	db *gorm.DB
}

func NewFileRepository(db *gorm.DB) *FileRepository {
	return &FileRepository{db: db}
}

// Create 插入文件元数据
func (r *FileRepository) Create(file *model.File) error {
	if file.FileID == uuid.Nil {
		file.FileID = uuid.New()
	}
	if file.UploadedAt.IsZero() {
		file.UploadedAt = time.Now()
	}
	return r.db.Create(file).Error
}

// CountForFolder 文件夹内的文件数（maxFileLimit 检查用）
func (r *FileRepository) CountForFolder(folderID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&model.File{}).Where("folder_id = ?", folderID).Count(&count).Error
	return count, err
}

// ListForFolder 文件夹内的文件，按 size 或 uploadedAt 排序
func (r *FileRepository) ListForFolder(folderID uuid.UUID, sortBy, order string) ([]*model.File, error) {
	column := "uploaded_at"
	if sortBy == "size" {
		column = "size"
	}
	if order != "DESC" {
		order = "ASC"
	}

	var files []*model.File
	err := r.db.Where("folder_id = ?", folderID).
		Order(column + " " + order).
		Find(&files).Error
	return files, err
}

// FindByID 根据 ID 查找文件
func (r *FileRepository) FindByID(id uuid.UUID) (*model.File, error) {
	var file model.File
	err := r.db.Where("file_id = ?", id).First(&file).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &file, nil
}

// Delete 删除文件元数据
func (r *FileRepository) Delete(id uuid.UUID) error {
	return r.db.Where("file_id = ?", id).Delete(&model.File{}).Error
}

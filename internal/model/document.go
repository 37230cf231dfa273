package model

import (
	"time"

	"github.com/google/uuid"
)

// Folder 文件夹，限制文件数量与类型。
// type 是封闭枚举：csv/img/pdf/ppt，入口处校验。
type Folder struct {
	FolderID     uuid.UUID `json:"folderId" db:"folder_id" gorm:"type:uuid;primaryKey"`
	Name         string    `json:"name" db:"name" gorm:"unique"`
	Type         string    `json:"type" db:"type"`
	MaxFileLimit int       `json:"maxFileLimit" db:"max_file_limit"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// File 文件元数据，内容存于对象存储
type File struct {
	FileID      uuid.UUID `json:"fileId" db:"file_id" gorm:"type:uuid;primaryKey"`
	FolderID    uuid.UUID `json:"folderId" db:"folder_id" gorm:"type:uuid;index"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Type        string    `json:"type" db:"type"`
	Size        int64     `json:"size" db:"size"`
	UploadedAt  time.Time `json:"uploadedAt" db:"uploaded_at"`
}

// FolderSummary 文件夹列表的输出形态（带文件数）
type FolderSummary struct {
	FolderID     uuid.UUID `json:"folderId"`
	Name         string    `json:"name"`
	Type         string    `json:"type"`
	MaxFileLimit int       `json:"maxFileLimit"`
	FileCount    int64     `json:"fileCount"`
}

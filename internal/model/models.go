package model

import (
	"time"
)

// User 用户模型
type User struct {
	ID           int       `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email" gorm:"unique"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// Photo 已保存的图片
type Photo struct {
	ID             int       `json:"id" db:"id"`
	ImageURL       string    `json:"imageUrl" db:"image_url"`
	Description    string    `json:"description" db:"description"`
	AltDescription string    `json:"altDescription" db:"alt_description"`
	DateSaved      time.Time `json:"dateSaved" db:"date_saved" gorm:"index"`
	UserID         int       `json:"userId" db:"user_id"`
	Tags           []string  `json:"tags,omitempty" gorm:"-"` // 关联查询时填充
}

// Tag 图片标签，归属于某张图片
type Tag struct {
	ID      int    `json:"id" db:"id"`
	Name    string `json:"name" db:"name" gorm:"index"`
	PhotoID int    `json:"photoId" db:"photo_id" gorm:"index"`
}

// SearchHistory 标签搜索历史，同一 (userId, query) 只保留一条
type SearchHistory struct {
	ID        int       `json:"id" db:"id"`
	UserID    int       `json:"userId" db:"user_id" gorm:"index"`
	Query     string    `json:"query" db:"query"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
}

// UnsplashPhoto Unsplash 搜索结果（归一化后）
type UnsplashPhoto struct {
	ImageURL       string `json:"imageUrl"`
	Description    string `json:"description"`
	AltDescription string `json:"altDescription"`
}

// PhotoDetail 标签搜索的输出形态
type PhotoDetail struct {
	ImageURL    string    `json:"imageUrl"`
	Description string    `json:"description"`
	DateSaved   time.Time `json:"dateSaved"`
	Tags        []string  `json:"tags"`
}

package repository

import (
	"time"

	"github.com/user/curio/internal/model"
	"gorm.io/gorm"
)

type SearchHistoryRepository struct {
	db *gorm.DB
}

func NewSearchHistoryRepository(db *gorm.DB) *SearchHistoryRepository {
	return &SearchHistoryRepository{db: db}
}

// Exists 同一 (userId, query) 是否已有记录
func (r *SearchHistoryRepository) Exists(userID int, query string) (bool, error) {
	var count int64
	err := r.db.Model(&model.SearchHistory{}).
		Where("user_id = ? AND query = ?", userID, query).
		Count(&count).Error
	return count > 0, err
}

// Record 记录搜索历史，已存在则不重复写入
func (r *SearchHistoryRepository) Record(userID int, query string) error {
	exists, err := r.Exists(userID, query)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return r.db.Create(&model.SearchHistory{
		UserID:    userID,
		Query:     query,
		Timestamp: time.Now(),
	}).Error
}

// ListByUser 用户的搜索历史
func (r *SearchHistoryRepository) ListByUser(userID int) ([]*model.SearchHistory, error) {
	var entries []*model.SearchHistory
	err := r.db.Where("user_id = ?", userID).
		Order("timestamp DESC").
		Find(&entries).Error
	return entries, err
}

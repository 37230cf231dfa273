package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/user/curio/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB 内存数据库 + 全量建表
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Photo{},
		&model.Tag{},
		&model.SearchHistory{},
		&model.Movie{},
		&model.WatchlistEntry{},
		&model.WishlistEntry{},
		&model.CuratedList{},
		&model.CuratedListItem{},
		&model.Review{},
		&model.Folder{},
		&model.File{},
	))
	return db
}

func floatPtr(f float64) *float64 { return &f }

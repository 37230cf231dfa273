package repository

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"
)

// schemaMigration 已应用的迁移记录
type schemaMigration struct {
	Version   string `gorm:"primaryKey"`
	AppliedAt time.Time
}

func (schemaMigration) TableName() string { return "schema_migrations" }

// Migrate 按文件名顺序执行 dir 下未应用的 .sql 文件。
// 只支持前向迁移，不做回滚。
func Migrate(db *gorm.DB, dir string) error {
	if err := db.AutoMigrate(&schemaMigration{}); err != nil {
		return fmt.Errorf("初始化 schema_migrations 失败: %w", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("读取迁移目录失败: %w", err)
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)

	for _, name := range files {
		var count int64
		if err := db.Model(&schemaMigration{}).Where("version = ?", name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		content, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return fmt.Errorf("读取迁移文件 %s 失败: %w", name, err)
		}

		// 逐条执行，分号分隔
		for _, stmt := range strings.Split(string(content), ";") {
			stmt = strings.TrimSpace(stmt)
			if stmt == "" {
				continue
			}
			if err := db.Exec(stmt).Error; err != nil {
				return fmt.Errorf("执行迁移 %s 失败: %w", name, err)
			}
		}

		if err := db.Create(&schemaMigration{Version: name, AppliedAt: time.Now()}).Error; err != nil {
			return err
		}
		log.Printf("[Migrate] 已应用迁移 %s", name)
	}

	return nil
}

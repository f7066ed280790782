package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/d60-Lab/cinefeed/config"
	"github.com/d60-Lab/cinefeed/internal/model"
)

// InitDB 按配置打开数据库并迁移表结构。
// TranslateError 开启后，唯一索引冲突会以 gorm.ErrDuplicatedKey 返回，
// 业务层据此把冲突翻译成领域错误（见 internal/service）。
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	var dial gorm.Dialector
	switch cfg.Database.Driver {
	case "postgres":
		dial = postgres.Open(cfg.Database.DSN)
	case "sqlite":
		dial = sqlite.Open(cfg.Database.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	db, err := gorm.Open(dial, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate 迁移全部领域表
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Movie{},
		&model.Recommendation{},
		&model.Comment{},
		&model.Follow{},
		&model.Fan{},
		&model.Message{},
	)
}

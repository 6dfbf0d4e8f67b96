// Package dao persists sync history in a local sqlite database.
package dao

import (
	"os"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"

	"github.com/haierkeys/memos-mirror/internal/model"
	"github.com/haierkeys/memos-mirror/pkg/fileurl"
	"github.com/haierkeys/memos-mirror/pkg/util"
)

type Config struct {
	Enabled         bool   `yaml:"enabled" default:"true"`
	Path            string `yaml:"path" default:"storage/database/memos-mirror.db"`
	ConnMaxLifetime string `yaml:"conn-max-lifetime" default:"30m"`
}

type Dao struct {
	db *gorm.DB
}

func New(c Config) (*Dao, error) {
	if !fileurl.IsExist(c.Path) {
		if err := fileurl.CreatePath(c.Path, os.ModePerm); err != nil {
			return nil, err
		}
	}

	db, err := gorm.Open(sqlite.Open(c.Path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NamingStrategy: schema.NamingStrategy{
			SingularTable: true,
		},
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	lifetime, err := util.ParseDuration(c.ConnMaxLifetime)
	if err != nil {
		lifetime = 30 * time.Minute
	}
	sqlDB.SetConnMaxLifetime(lifetime)

	if err := model.AutoMigrate(db); err != nil {
		return nil, err
	}
	return &Dao{db: db}, nil
}

func (d *Dao) DB() *gorm.DB {
	return d.db
}

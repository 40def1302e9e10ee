package repository

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"moul.io/zapgorm2"

	"droscher.com/BeerDiary/configs"
	"droscher.com/BeerDiary/pkg/model"
)

type Repository struct {
	DB     *gorm.DB
	Logger *zap.Logger
}

const (
	maxIdleTime = 5 * time.Minute
	maxLifetime = time.Hour
)

func Open(conf *configs.Config, logger *zap.Logger) (*Repository, error) {
	dialector, err := dialectorFor(conf.DB)
	if err != nil {
		return nil, err
	}

	gormLogger := zapgorm2.New(logger)
	gormLogger.SetAsDefault()

	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(conf.DB.MaxIdleConnections)
	sqlDB.SetMaxOpenConns(conf.DB.MaxOpenConnections)
	sqlDB.SetConnMaxIdleTime(maxIdleTime)
	sqlDB.SetConnMaxLifetime(maxLifetime)

	return &Repository{DB: db, Logger: logger}, nil
}

func dialectorFor(conf configs.DB) (gorm.Dialector, error) {
	switch conf.Driver {
	case configs.DriverSQLite:
		return sqlite.Open(conf.Path), nil
	case configs.DriverPostgres:
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable TimeZone=UTC",
			conf.Host, conf.User, conf.Password, conf.Database, conf.Port)

		return postgres.Open(dsn), nil
	default:
		return nil, fmt.Errorf("%w: unknown DB.Driver %q", configs.ErrConfiguration, conf.Driver)
	}
}

func (r *Repository) Migrate() error {
	return r.DB.AutoMigrate(&model.CatalogBeer{}, &model.TastingEntry{}, &model.FavoriteBrewery{})
}

func (r *Repository) Close() {
	sqlDB, err := r.DB.DB()
	if err == nil && sqlDB != nil {
		_ = sqlDB.Close()
	}
}

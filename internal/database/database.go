package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/matjipduo/backend/config"
	"github.com/matjipduo/backend/internal/model"
)

// New opens the Postgres connection described by the config.
func New(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	logger.Info("connected to database",
		zap.String("host", cfg.DBHost),
		zap.String("port", cfg.DBPort),
		zap.String("name", cfg.DBName),
	)
	return db, nil
}

// Migrate creates or updates the three tables. The store owns the
// data; this only keeps the schema in step with the models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Restaurant{},
		&model.Menu{},
		&model.Relation{},
	)
}

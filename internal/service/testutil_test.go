package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/matjipduo/backend/internal/model"
)

func ptr[T any](v T) *T { return &v }

// setupTestDB opens an in-memory SQLite database with the schema
// migrated. One connection only, so every query sees the same memory
// database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.Restaurant{}, &model.Menu{}, &model.Relation{}))
	return db
}

// queryCounter counts round trips so the tests can assert that the
// guarded no-op paths really skip the store.
type queryCounter struct {
	selects int
	writes  int
}

func installCounter(t *testing.T, db *gorm.DB) *queryCounter {
	t.Helper()
	c := &queryCounter{}
	require.NoError(t, db.Callback().Query().After("gorm:query").Register("test:count_selects", func(*gorm.DB) {
		c.selects++
	}))
	require.NoError(t, db.Callback().Create().After("gorm:create").Register("test:count_creates", func(*gorm.DB) {
		c.writes++
	}))
	require.NoError(t, db.Callback().Delete().After("gorm:delete").Register("test:count_deletes", func(*gorm.DB) {
		c.writes++
	}))
	return c
}

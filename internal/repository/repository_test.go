package repository

import (
	"testing"

	"filosofia_go/pkg/database"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestDB 打开一个已迁移的内存 SQLite 数据库。
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open(database.Options{Driver: database.DriverSQLite, DSN: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	require.NoError(t, database.RunMigrate(db))
	return db
}

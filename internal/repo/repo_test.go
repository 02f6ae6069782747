package repo

import (
	"Catalog/internal/config"
	"fmt"
	"strings"
	"testing"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// newTestDB инициализирует in-memory SQLite (modernc.org/sqlite) для тестов репозитория.
// У каждого теста своя база, имя берётся из t.Name().
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := InitDB(config.DriverSQLite, dsn, zap.NewNop())
	if err != nil {
		t.Fatalf("failed to open sqlite (modernc): %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	// одно соединение: in-memory база живёт, пока оно открыто
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func TestInitDB_UnsupportedDriver(t *testing.T) {
	_, err := InitDB("oracle", "whatever", zap.NewNop())
	if err == nil {
		t.Fatalf("expected error for unsupported driver")
	}
}

package commands

import (
	"Catalog/internal/config"
	"Catalog/internal/handlers"
	"Catalog/internal/repo"
	"Catalog/internal/service"
	"bytes"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

const testKey = "cli-key"

// перехват вывода на время теста
func withStdoutCapture(t *testing.T, fn func()) string {
	t.Helper()
	old := Out
	var buf bytes.Buffer
	Out = &buf
	defer func() { Out = old }()
	fn()
	return buf.String()
}

// startServer поднимает настоящий сервер каталога поверх in-memory sqlite
// и возвращает конфиг CLI, который на него смотрит.
func startServer(t *testing.T) *config.Config {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := repo.InitDB(config.DriverSQLite, "file:"+name+"?mode=memory&cache=shared", zap.NewNop())
	if err != nil {
		t.Fatalf("init db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	logger := zap.NewNop().Sugar()
	svc := service.NewItemService(repo.NewItemRepository(db), logger)
	h := handlers.NewHandler(svc, logger, &config.Config{APIKey: testKey}, prometheus.NewRegistry())
	ts := httptest.NewServer(h.Router)
	t.Cleanup(func() {
		ts.Close()
		_ = sqlDB.Close()
	})
	return &config.Config{ServerURL: ts.URL, APIKey: testKey}
}

package repo

import (
	"Catalog/internal/config"
	"Catalog/internal/model"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// ErrDuplicateName — нарушение уникального индекса по имени item.
var ErrDuplicateName = errors.New("duplicate item name")

const pgUniqueViolation = "23505"

// InitDB открывает соединение с БД выбранного драйвера и создаёт таблицы моделей.
// Логи gorm (медленные запросы, ошибки) уходят в переданный zap-логгер.
func InitDB(driver, dsn string, zl *zap.Logger) (*gorm.DB, error) {
	var dial gorm.Dialector
	switch driver {
	case config.DriverSQLite:
		// modernc.org/sqlite регистрирует драйвер под именем "sqlite" (без cgo)
		dial = gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	case config.DriverPostgres:
		dial = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported db driver %q", driver)
	}

	db, err := gorm.Open(dial, &gorm.Config{
		TranslateError: true,
		Logger: logger.New(zap.NewStdLog(zl), logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}

	if err := db.AutoMigrate(&model.Item{}); err != nil {
		return nil, fmt.Errorf("automigrate: %w", err)
	}
	return db, nil
}

// isUniqueViolation распознаёт нарушение уникальности для postgres и sqlite.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		code := liteErr.Code()
		if code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY {
			return true
		}
		// без extended result codes приходит только базовый SQLITE_CONSTRAINT
		return code&0xff == sqlite3.SQLITE_CONSTRAINT && strings.Contains(liteErr.Error(), "UNIQUE")
	}
	return false
}

package config

import (
	"flag"
	"fmt"
	"regexp"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	// Server-side settings
	DBHost      string `env:"DB_HOST" envDefault:"localhost"`
	DBPort      int    `env:"DB_PORT" envDefault:"5432"`
	DBUser      string `env:"DB_USER" envDefault:"user"`
	DBPassword  string `env:"DB_PASSWORD" envDefault:"password"`
	DBName      string `env:"DB_NAME" envDefault:"database"`
	DBDriver    string `env:"DB_DRIVER" envDefault:"postgres"`
	DatabaseDSN string `env:"DATABASE_URI"`

	// Shared settings
	APIKey      string `env:"API_KEY" envDefault:"mysecretapikey"`
	BaseURL     string `env:"BASE_URL"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`

	// Client-side settings
	ServerURL string `env:"-"`
	Version   bool   `env:"-"` // show client version and exit (flag only)
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// флаги работают ТОЛЬКО если переменные из env не заданы
	// Server flags
	flag.StringVar(&cfg.DBHost, "db-host", cfg.DBHost, "хост БД")
	flag.IntVar(&cfg.DBPort, "db-port", cfg.DBPort, "порт БД")
	flag.StringVar(&cfg.DBUser, "db-user", cfg.DBUser, "пользователь БД")
	flag.StringVar(&cfg.DBPassword, "db-password", cfg.DBPassword, "пароль пользователя БД")
	flag.StringVar(&cfg.DBName, "db-name", cfg.DBName, "имя БД")
	flag.StringVar(&cfg.DBDriver, "db-driver", cfg.DBDriver, "драйвер БД: postgres | sqlite")
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД (перекрывает db-*)")
	// Shared/client flags
	flag.StringVar(&cfg.APIKey, "api-key", cfg.APIKey, "значение заголовка x-api-key")
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "address of the catalog server (host:port)")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "enable HTTPS (client: prefer https scheme for BaseURL)")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show client version and exit")

	flag.Parse()

	if cfg.DBDriver != DriverSQLite {
		cfg.DBDriver = DriverPostgres
	}
	// validate BaseURL: must be in "address:port" (no scheme, no path). Otherwise use default.
	hostPortRe := regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = "localhost:8081"
	}

	if cfg.EnableHTTPS {
		cfg.ServerURL = "https://" + cfg.BaseURL
	} else {
		cfg.ServerURL = "http://" + cfg.BaseURL
	}

	return cfg
}

// DSN строка подключения для выбранного драйвера.
// Явно заданный DATABASE_URI имеет приоритет над DB_* параметрами.
func (c *Config) DSN() string {
	if c.DatabaseDSN != "" {
		return c.DatabaseDSN
	}
	if c.DBDriver == DriverSQLite {
		return "catalog.db"
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName,
	)
}

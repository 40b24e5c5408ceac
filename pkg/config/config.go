package config

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	App struct {
		Env       string `env:"APP_ENV" env-default:"development"`
		Port      int    `env:"APP_PORT" env-default:"3000"`
		SentryUrl string `env:"SENTRY_URL"`
	}
	Postgres struct {
		Port     int    `env:"POSTGRES_PORT" env-default:"5432"`
		Host     string `env:"POSTGRES_HOST" env-default:"localhost"`
		User     string `env:"POSTGRES_USER"`
		Pass     string `env:"POSTGRES_PASS"`
		Name     string `env:"POSTGRES_NAME"`
		SslMode  string `env:"POSTGRES_SSL_MODE" env-default:"disable"`
		MaxConns int32  `env:"POSTGRES_MAX_CONNS" env-default:"10"`
	}
	ScrapeCreators struct {
		ProfileURL string        `env:"SCRAPECREATORS_PROFILE_URL" env-default:"https://api.scrapecreators.com/v1/instagram/profile"`
		PostsURL   string        `env:"SCRAPECREATORS_POSTS_URL" env-default:"https://api.scrapecreators.com/v2/instagram/user/posts"`
		ApiKey     string        `env:"INSTAGRAM_API_KEY"`
		Timeout    time.Duration `env:"SCRAPECREATORS_TIMEOUT" env-default:"30s"`
	}
	Telegram struct {
		User  int64  `env:"TELEGRAM_USER"`
		Token string `env:"TELEGRAM_TOKEN"`
	}
	Parser struct {
		Users    string        `env:"PARSER_USERS"`
		Interval time.Duration `env:"PARSER_INTERVAL" env-default:"30m"`
		Workers  int           `env:"PARSER_WORKERS" env-default:"3"`
	}
	HTTP struct {
		RateLimitRequests int           `env:"HTTP_RATE_LIMIT_REQUESTS" env-default:"30"`
		RateLimitPer      time.Duration `env:"HTTP_RATE_LIMIT_PER" env-default:"1m"`
		RateLimitBurst    int           `env:"HTTP_RATE_LIMIT_BURST" env-default:"10"`
	}
}

var (
	once sync.Once
	cfg  *Config
)

func New() (*Config, error) {
	once.Do(func() {
		cfg = &Config{}
		if err := cleanenv.ReadEnv(cfg); err != nil {
			help, _ := cleanenv.GetDescription(cfg, nil)
			log.Fatalf("Failed to read configuration: %v\n%v", err, help)
		}
	})
	return cfg, nil
}

// GetDSN returns the libpq keyword/value connection string.
func (c *Config) GetDSN() string {
	return fmt.Sprintf("dbname=%s user=%s password=%s host=%s port=%d sslmode=%s",
		c.Postgres.Name, c.Postgres.User, c.Postgres.Pass, c.Postgres.Host, c.Postgres.Port, c.Postgres.SslMode,
	)
}

// ParserUsers splits PARSER_USERS into trimmed, non-empty handles.
func (c *Config) ParserUsers() []string {
	var users []string
	for _, u := range strings.Split(c.Parser.Users, ",") {
		u = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(u), "@"))
		if u != "" {
			users = append(users, u)
		}
	}
	return users
}

// Package config loads the process configuration once at startup.
//
// 환경변수는 caarlos0/env 태그로 정의되며, 필수 값이 없으면 Load가 실패합니다.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Auth     AuthConfig
	Discord  DiscordConfig  `envPrefix:"DISCORD_"`
	YouTube  YouTubeConfig  `envPrefix:"YOUTUBE_"`
	Postgres PostgresConfig
	Storage  StorageConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port               string        `env:"PORT"                 envDefault:"8080"`
	GinMode            string        `env:"GIN_MODE"             envDefault:"release"`
	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT"     envDefault:"10s"`
	LoginRatePerMinute float64       `env:"LOGIN_RATE_PER_MINUTE" envDefault:"10"`
	LoginBurst         int           `env:"LOGIN_BURST"          envDefault:"5"`
}

type AuthConfig struct {
	SecretKey string        `env:"SECRET_KEY,required"`
	Algorithm string        `env:"ALGORITHM,required"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"24h"`

	// Actionneur created at startup when both are set.
	BootstrapAdminID       string `env:"BOOTSTRAP_ADMIN_ID"`
	BootstrapAdminUsername string `env:"BOOTSTRAP_ADMIN_USERNAME"`
}

type DiscordConfig struct {
	ClientID      string        `env:"CLIENT_ID,required"`
	ClientSecret  string        `env:"CLIENT_SECRET,required"`
	GuildID       string        `env:"GUILD_ID,required"`
	APIURL        string        `env:"API_URL"        envDefault:"https://discord.com/api/v10"`
	Timeout       time.Duration `env:"TIMEOUT"        envDefault:"10s"`
	RevokeTimeout time.Duration `env:"REVOKE_TIMEOUT" envDefault:"5s"`
}

type YouTubeConfig struct {
	APIKey    string        `env:"API_KEY,required"`
	APIURL    string        `env:"API_URL"    envDefault:"https://www.googleapis.com/youtube/v3"`
	Timeout   time.Duration `env:"TIMEOUT"    envDefault:"10s"`
	CacheSize int           `env:"CACHE_SIZE" envDefault:"256"`
	CacheTTL  time.Duration `env:"CACHE_TTL"  envDefault:"6h"`
}

type PostgresConfig struct {
	DatabaseURL   string `env:"DATABASE_URL,required"`
	RunMigrations bool   `env:"RUN_MIGRATIONS" envDefault:"true"`
}

type StorageConfig struct {
	Root string `env:"STORAGE_ROOT,required"`
}

type LogConfig struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads an optional .env file, then parses the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return Config{}, fmt.Errorf("load .env file: %w", err)
		}
	}
	return parse(env.Options{})
}

// LoadFrom parses the given variables only. Used by tests and tooling.
func LoadFrom(vars map[string]string) (Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that struct tags cannot express.
func (c Config) Validate() error {
	switch strings.ToUpper(c.Auth.Algorithm) {
	case "HS256", "HS384", "HS512":
	default:
		return fmt.Errorf("invalid ALGORITHM %q: only HS256, HS384 and HS512 are supported", c.Auth.Algorithm)
	}
	if c.Auth.TokenTTL <= 0 {
		return errors.New("TOKEN_TTL must be positive")
	}
	if c.Discord.Timeout <= 0 || c.Discord.RevokeTimeout <= 0 || c.YouTube.Timeout <= 0 {
		return errors.New("upstream timeouts must be positive")
	}
	if c.YouTube.CacheSize <= 0 {
		return errors.New("YOUTUBE_CACHE_SIZE must be positive")
	}
	if c.Server.LoginRatePerMinute <= 0 || c.Server.LoginBurst <= 0 {
		return errors.New("login rate limit must be positive")
	}
	if (c.Auth.BootstrapAdminID == "") != (c.Auth.BootstrapAdminUsername == "") {
		return errors.New("BOOTSTRAP_ADMIN_ID and BOOTSTRAP_ADMIN_USERNAME must be set together")
	}
	return nil
}

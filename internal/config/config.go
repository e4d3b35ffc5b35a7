// internal/config/config.go
package config

import (
	"errors"
	"net/url"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	Environment string

	// DatabaseURL is empty when no database is configured; presets then
	// live in a JSON file under DataDir.
	DatabaseURL string

	JWTSecret string
	ShareTTL  time.Duration

	// EditSecret gates mutating routes behind a Bearer token when set.
	// Empty means the studio is open, the default for local use.
	EditSecret string

	DataDir        string
	StorageBackend string

	// RedisAddr is empty when no Redis is configured; renders are then
	// cached in process memory.
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration
}

// Load reads defaults, then an optional config.yaml, then ADPROOF_* env
// variables, each layer overriding the last.
func Load() *Config {
	v := viper.New()
	setDefaults(v)

	v.AddConfigPath(".")
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Fatalf("Failed to read config file: %v", err)
		}
	}

	v.SetEnvPrefix("ADPROOF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	databaseURL := v.GetString("database_url")
	if databaseURL == "" && v.GetString("psql_host") != "" {
		u := &url.URL{
			Scheme: "postgres",
			User:   url.UserPassword(v.GetString("psql_user"), v.GetString("psql_password")),
			Host:   v.GetString("psql_host") + ":" + v.GetString("psql_port"),
			Path:   v.GetString("psql_db_name"),
		}
		q := u.Query()
		q.Set("sslmode", v.GetString("psql_sslmode"))
		u.RawQuery = q.Encode()
		databaseURL = u.String()
	}

	return &Config{
		Port:           v.GetString("port"),
		Environment:    v.GetString("environment"),
		DatabaseURL:    databaseURL,
		JWTSecret:      v.GetString("jwt_secret"),
		ShareTTL:       v.GetDuration("share_ttl"),
		EditSecret:     v.GetString("edit_secret"),
		DataDir:        v.GetString("data_dir"),
		StorageBackend: v.GetString("storage_backend"),
		RedisAddr:      v.GetString("redis_addr"),
		RedisPassword:  v.GetString("redis_password"),
		RedisDB:        v.GetInt("redis_db"),
		CacheTTL:       v.GetDuration("cache_ttl"),
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("environment", "development")

	v.SetDefault("database_url", "")
	v.SetDefault("psql_host", "")
	v.SetDefault("psql_port", "5432")
	v.SetDefault("psql_user", "postgres")
	v.SetDefault("psql_password", "postgres")
	v.SetDefault("psql_db_name", "adproof")
	v.SetDefault("psql_sslmode", "disable")

	v.SetDefault("jwt_secret", "adproof-dev-secret-change-in-production")
	v.SetDefault("share_ttl", 72*time.Hour)
	v.SetDefault("edit_secret", "")

	v.SetDefault("data_dir", "./data")
	v.SetDefault("storage_backend", "local")

	v.SetDefault("redis_addr", "")
	v.SetDefault("redis_password", "")
	v.SetDefault("redis_db", 0)
	v.SetDefault("cache_ttl", 10*time.Minute)
}

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/avestaexchange/avesta/internal/domain/exchangerate"
	sharedConfig "github.com/avestaexchange/avesta/internal/shared/config"
)

type Config struct {
	Server    sharedConfig.ServerConfig    `mapstructure:"server"`
	Database  sharedConfig.DatabaseConfig  `mapstructure:"database"`
	Logger    sharedConfig.LoggerConfig    `mapstructure:"logger"`
	Auth      sharedConfig.AuthConfig      `mapstructure:"auth"`
	Redis     sharedConfig.RedisConfig     `mapstructure:"redis"`
	Market    sharedConfig.MarketConfig    `mapstructure:"market"`
	Rates     sharedConfig.RatesConfig     `mapstructure:"rates"`
	RateLimit sharedConfig.RateLimitConfig `mapstructure:"ratelimit"`
	Seed      sharedConfig.SeedConfig      `mapstructure:"seed"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load reads configs/config.yaml, then .env, then AVESTA_* environment variables.
func Load(env string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath("../configs")
	v.AddConfigPath("../../configs")

	v.SetEnvPrefix("AVESTA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if env != "" && env != "default" {
		v.Set("server.mode", env)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

// Validate rejects settings the rate engine cannot run with.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "mysql", "sqlite":
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	switch c.Rates.CacheBackend {
	case "memory":
	case "redis":
		if !c.Redis.Enabled {
			return fmt.Errorf("rates.cache_backend is redis but redis.enabled is false")
		}
	default:
		return fmt.Errorf("unsupported rates.cache_backend %q", c.Rates.CacheBackend)
	}
	if c.Rates.CacheTTL <= 0 {
		return fmt.Errorf("rates.cache_ttl must be positive")
	}
	if c.Rates.RefreshInterval < 0 {
		return fmt.Errorf("rates.refresh_interval must not be negative")
	}
	if err := exchangerate.ValidateMarkupValue(c.Rates.DefaultBuyMarkup); err != nil {
		return fmt.Errorf("rates.default_buy_markup: %w", err)
	}
	if err := exchangerate.ValidateMarkupValue(c.Rates.DefaultSellMarkup); err != nil {
		return fmt.Errorf("rates.default_sell_markup: %w", err)
	}
	if c.Rates.Drift <= 0 || c.Rates.Drift > exchangerate.MaxDrift {
		return fmt.Errorf("rates.drift must be in (0, %g]", exchangerate.MaxDrift)
	}
	if c.Auth.JWT.Secret == "" {
		return fmt.Errorf("auth.jwt.secret is required")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.timezone", "Asia/Tehran")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// Database defaults
	v.SetDefault("database.driver", "mysql")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.username", "root")
	v.SetDefault("database.password", "password")
	v.SetDefault("database.database", "avesta_dev")
	v.SetDefault("database.path", "avesta.db")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 50)
	v.SetDefault("database.conn_max_lifetime", 60)

	// Logger defaults
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stdout")

	// Auth defaults
	v.SetDefault("auth.password.bcrypt_cost", 12)
	v.SetDefault("auth.jwt.secret", "change-me-in-production")
	v.SetDefault("auth.jwt.access_exp_minutes", 60)
	v.SetDefault("auth.jwt.refresh_exp_days", 7)

	// Redis defaults
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	// Market feed defaults
	v.SetDefault("market.endpoint", "https://brsapi.ir/FreeTsetmcBourseApi/Api_Free_Gold_Currency.json")
	v.SetDefault("market.timeout", "10s")
	v.SetDefault("market.max_response_bytes", 1<<20)

	// Rate engine defaults
	v.SetDefault("rates.cache_ttl", "30m")
	v.SetDefault("rates.cache_backend", "memory")
	v.SetDefault("rates.default_buy_markup", 1.5)
	v.SetDefault("rates.default_sell_markup", 1.0)
	v.SetDefault("rates.drift", 0.0005)
	v.SetDefault("rates.warm_on_start", true)
	v.SetDefault("rates.refresh_interval", "25m")

	// Rate limit defaults (ulule/limiter formatted rates)
	v.SetDefault("ratelimit.login", "10-M")
	v.SetDefault("ratelimit.public", "300-M")

	// Seed defaults
	v.SetDefault("seed.admin_email", "admin@avesta.local")
	v.SetDefault("seed.admin_name", "Administrator")
	v.SetDefault("seed.admin_password", "")
}

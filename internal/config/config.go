package config

import (
	"fmt"
	"strings"
	"time"

	ierr "github.com/orderpulse/orderpulse/internal/errors"
	"github.com/orderpulse/orderpulse/internal/types"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Configuration is the root config object loaded at process start.
type Configuration struct {
	Deployment DeploymentConfig `mapstructure:"deployment"`
	Server     ServerConfig     `mapstructure:"server"`
	Postgres   PostgresConfig   `mapstructure:"postgres"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Cache      CacheConfig      `mapstructure:"cache"`
}

type DeploymentConfig struct {
	Mode types.RunMode `mapstructure:"mode"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

type PostgresConfig struct {
	Host                string `mapstructure:"host"`
	Port                int    `mapstructure:"port"`
	User                string `mapstructure:"user"`
	Password            string `mapstructure:"password"`
	DBName              string `mapstructure:"dbname"`
	SSLMode             string `mapstructure:"sslmode"`
	MaxOpenConns        int    `mapstructure:"max_open_conns"`
	MaxIdleConns        int    `mapstructure:"max_idle_conns"`
	ConnMaxLifetimeMins int    `mapstructure:"conn_max_lifetime_mins"`
}

type LoggingConfig struct {
	Level types.LogLevel `mapstructure:"level"`
}

type CacheConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	TTL     time.Duration `mapstructure:"ttl"`
}

// GetDSN returns the lib/pq connection string for the configured database.
func (c PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// NewConfig loads configuration from config files and environment
// variables. A local .env file is honored for development convenience.
func NewConfig() (*Configuration, error) {
	v := viper.New()

	// Load .env if present; errors are ignored since env files are optional
	_ = godotenv.Load()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	v.SetEnvPrefix("ORDERPULSE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, ierr.WithError(err).
				WithHint("Failed to read configuration file").
				Mark(ierr.ErrInternal)
		}
	}

	var cfg Configuration
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to unmarshal configuration").
			Mark(ierr.ErrInternal)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("deployment.mode", string(types.RunModeLocal))
	v.SetDefault("server.address", ":8080")
	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.user", "orderpulse")
	v.SetDefault("postgres.password", "orderpulse")
	v.SetDefault("postgres.dbname", "orderpulse")
	v.SetDefault("postgres.sslmode", "disable")
	v.SetDefault("postgres.max_open_conns", 10)
	v.SetDefault("postgres.max_idle_conns", 5)
	v.SetDefault("postgres.conn_max_lifetime_mins", 30)
	v.SetDefault("logging.level", string(types.LogLevelInfo))
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.ttl", 30*time.Minute)
}

// Validate checks the loaded configuration for obvious misconfiguration.
func (c *Configuration) Validate() error {
	if c.Server.Address == "" {
		return ierr.NewError("server address is required").
			WithHint("Set server.address or ORDERPULSE_SERVER_ADDRESS").
			Mark(ierr.ErrValidation)
	}
	if c.Postgres.Host == "" || c.Postgres.DBName == "" {
		return ierr.NewError("postgres host and dbname are required").
			WithHint("Set the postgres.* configuration keys").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// GetDefaultConfig returns a configuration suitable for tests and scripts
// that do not load config files.
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Deployment: DeploymentConfig{Mode: types.RunModeLocal},
		Server:     ServerConfig{Address: ":8080"},
		Postgres: PostgresConfig{
			Host:                "localhost",
			Port:                5432,
			User:                "orderpulse",
			Password:            "orderpulse",
			DBName:              "orderpulse",
			SSLMode:             "disable",
			MaxOpenConns:        10,
			MaxIdleConns:        5,
			ConnMaxLifetimeMins: 30,
		},
		Logging: LoggingConfig{Level: types.LogLevelDebug},
		Cache:   CacheConfig{Enabled: false, TTL: 30 * time.Minute},
	}
}

package config

import (
	"fmt"
	"os"
	"path"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/cosmiccommons/c3site/shared/validation"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	HttpPort         int           `yaml:"http_port" env:"C3_HTTP_PORT" validate:"required"`
	JwtTTL           time.Duration `yaml:"jwt_ttl" env:"C3_JWT_TTL" validate:"required"`
	AllowedOrigins   []string      `yaml:"allowed_origins" env:"C3_ALLOWED_ORIGINS" envSeparator:","`
	SecureCookies    bool          `yaml:"secure_cookies" env:"C3_SECURE_COOKIES"`
	ContactPerMinute float64       `yaml:"contact_per_minute" env:"C3_CONTACT_PER_MINUTE" validate:"required,gt=0"`
	PostPerMinute    float64       `yaml:"post_per_minute" env:"C3_POST_PER_MINUTE" validate:"required,gt=0"`
	LogLevel         string        `yaml:"log_level" env:"C3_LOG_LEVEL"`
	LogJSON          bool          `yaml:"log_json" env:"C3_LOG_JSON"`
}

type Pg struct {
	Host     string `yaml:"host" env:"C3_PG_HOST" validate:"required"`
	Port     int    `yaml:"port" env:"C3_PG_PORT" validate:"required"`
	User     string `yaml:"user" env:"C3_PG_USER" validate:"required"`
	Password string `yaml:"password" env:"C3_PG_PASSWORD"`
	Dbname   string `yaml:"dbname" env:"C3_PG_DBNAME" validate:"required"`
}

type Private struct {
	Pg     Pg     `yaml:"pg"`
	JwtKey string `yaml:"jwt_key" env:"C3_JWT_KEY" validate:"required"`
}

func (c *Config) JwtKey() string {
	return c.Private.JwtKey
}

func (c *Config) JwtTTL() time.Duration {
	return c.Public.JwtTTL
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Public.HttpPort)
}

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file: " + configPath)
	}
	if err := yaml.Unmarshal(configFile, output); err != nil {
		panic("can't unmarshal config file: " + configPath)
	}
}

// MustLoad reads public.yaml and private.yaml from configFolder, applies
// environment overrides and panics if a required field is missing.
func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	cfg := &Config{Public: public, Private: private}
	if err := env.Parse(cfg); err != nil {
		panic(fmt.Sprintf("can't parse env overrides: %v", err))
	}
	if err := validation.Struct(cfg); err != nil {
		panic(fmt.Sprintf("invalid config: %v", err))
	}
	return cfg
}

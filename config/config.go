package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Server struct {
	Port         string `mapstructure:"port"`
	Mode         string `mapstructure:"mode"` // gin mode: debug / release
	RatePerSec   int    `mapstructure:"rate_per_sec"`
	RateBurst    int    `mapstructure:"rate_burst"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // seconds
}

type Database struct {
	DSN          string `mapstructure:"dsn"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
	LogLevel     string `mapstructure:"log_level"`
}

type Redis struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	// 身份解析结果的缓存 TTL，秒；0 表示关闭缓存
	IdentityTTL int `mapstructure:"identity_ttl"`
}

type Telemetry struct {
	SentryDSN    string `mapstructure:"sentry_dsn"`
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`
	ServiceName  string `mapstructure:"service_name"`
}

type Config struct {
	Server    Server    `mapstructure:"server"`
	Database  Database  `mapstructure:"database"`
	Redis     Redis     `mapstructure:"redis"`
	Telemetry Telemetry `mapstructure:"telemetry"`
	LogLevel  string    `mapstructure:"log_level"`
}

// Load 读取 config.yaml，环境变量（PULSE_ 前缀）可覆盖任意键。
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix("PULSE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.rate_per_sec", 50)
	v.SetDefault("server.rate_burst", 100)
	v.SetDefault("server.read_timeout", 30)
	v.SetDefault("server.write_timeout", 30)
	v.SetDefault("database.dsn", "host=localhost user=postgres password=postgres dbname=pulse port=5432 sslmode=disable")
	v.SetDefault("database.max_open_conns", 20)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.log_level", "warn")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.identity_ttl", 300)
	v.SetDefault("telemetry.service_name", "pulse-backend")
	v.SetDefault("log_level", "info")

	if err := v.ReadInConfig(); err != nil {
		// 没有配置文件时退回默认值 + 环境变量
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

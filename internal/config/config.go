// Package config 负责加载和管理应用程序的配置。
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"filosofia_go/web"

	"github.com/spf13/viper"
)

// 全局配置变量，存储从配置文件加载的所有设置。
var Conf Config

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Client   ClientConfig   `mapstructure:"client"`
}

// ServerConfig 存储服务器相关的配置。
type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
	// CORSOrigins 为空时允许所有来源。
	CORSOrigins []string `mapstructure:"cors_origins"`
}

type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
	// SQL 为 true 时 GORM 的每条语句都以 debug 级别输出。
	SQL bool `mapstructure:"sql"`
}

// DatabaseConfig 描述持久化存储。Driver 取值 sqlite 或 mysql。
type DatabaseConfig struct {
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// ClientConfig 供终端阅读器（cmd/reader）使用。
type ClientConfig struct {
	BaseURL   string `mapstructure:"base_url"`
	CacheName string `mapstructure:"cache_name"`
	// CacheStore 取值 memory 或 redis。
	CacheStore string        `mapstructure:"cache_store"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "3000")
	v.SetDefault("server.mode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "filosofia.db")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("client.base_url", "http://localhost:3000")
	v.SetDefault("client.cache_name", web.CacheName)
	v.SetDefault("client.cache_store", "memory")
}

// Load 读取配置文件并返回解析后的配置。
// configPath 为空或文件不存在时只使用默认值；环境变量 PORT 覆盖监听端口。
func Load(configPath string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix("FILOSOFIA")
	v.AutomaticEnv()
	if err := v.BindEnv("server.port", "PORT", "FILOSOFIA_SERVER_PORT"); err != nil {
		return Config{}, fmt.Errorf("bind env: %w", err)
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Init 加载配置到全局 Conf，失败时直接 panic。
func Init(configPath string) {
	c, err := Load(configPath)
	if err != nil {
		panic(fmt.Errorf("fatal error config file: %w", err))
	}
	Conf = c
}

package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config 应用配置
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Upstream UpstreamConfig `mapstructure:"upstream"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Session  SessionConfig  `mapstructure:"session"`
	Upload   UploadConfig   `mapstructure:"upload"`
	Refresh  RefreshConfig  `mapstructure:"refresh"`
}

// AppConfig 应用配置
type AppConfig struct {
	Name     string `mapstructure:"name"`
	Env      string `mapstructure:"env"`
	LogLevel string `mapstructure:"log_level"`
}

// ServerConfig HTTP 服务配置
type ServerConfig struct {
	Port string `mapstructure:"port"`
}

// UpstreamConfig 上游核心 API 配置
// 基地址按角色解析：显式覆盖 > 会话存储覆盖 > 角色默认 > 全局默认
type UpstreamConfig struct {
	Override    string            `mapstructure:"override"`     // 显式覆盖（最高优先级）
	DefaultBase string            `mapstructure:"default_base"` // 全局默认源
	Bases       map[string]string `mapstructure:"bases"`        // 角色 -> 基地址（admin/vendor/rider/customer）
	AuthMode    string            `mapstructure:"auth_mode"`    // bearer / cookie，统一选定一种
	Timeout     time.Duration     `mapstructure:"timeout"`      // 单次请求超时
}

// RedisConfig Redis 配置
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// SessionConfig 会话存储配置
type SessionConfig struct {
	KeyPrefix string        `mapstructure:"key_prefix"`
	TTL       time.Duration `mapstructure:"ttl"`
}

// UploadConfig 上传限制配置
type UploadConfig struct {
	MaxFileSize int64 `mapstructure:"max_file_size"` // 单位字节，默认 5MB
}

// RefreshConfig 快照刷新 Worker 配置
type RefreshConfig struct {
	Channel    string        `mapstructure:"channel"`     // 验证状态变更通知频道
	Interval   time.Duration `mapstructure:"interval"`    // 周期刷新间隔
	Threads    int           `mapstructure:"threads"`     // 并发处理数
	BufferSize int           `mapstructure:"buffer_size"` // Channel 缓冲大小
	Timeout    time.Duration `mapstructure:"timeout"`     // 单个刷新任务超时
}

// Load 从配置文件加载配置
func Load(configPath string) (*Config, error) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config failed: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config failed: %w", err)
	}

	// 兼容性处理：缺省值
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}
	if cfg.Upload.MaxFileSize == 0 {
		cfg.Upload.MaxFileSize = 5 * 1024 * 1024
	}
	if cfg.Upstream.Timeout == 0 {
		cfg.Upstream.Timeout = 15 * time.Second
	}
	if cfg.Upstream.AuthMode == "" {
		cfg.Upstream.AuthMode = "bearer"
	}
	if cfg.Session.KeyPrefix == "" {
		cfg.Session.KeyPrefix = "console"
	}
	if cfg.Refresh.Threads == 0 {
		cfg.Refresh.Threads = 2
	}
	if cfg.Refresh.BufferSize == 0 {
		cfg.Refresh.BufferSize = 16
	}
	if cfg.Refresh.Timeout == 0 {
		cfg.Refresh.Timeout = 30 * time.Second
	}
	if cfg.Refresh.Interval == 0 {
		cfg.Refresh.Interval = 5 * time.Minute
	}
	if cfg.Refresh.Channel == "" {
		cfg.Refresh.Channel = "verification_status_changed"
	}

	return &cfg, nil
}

// LoadDefault 加载默认配置文件路径
func LoadDefault() (*Config, error) {
	return Load("config/config.yaml")
}

// Validate 验证配置完整性
func (c *Config) Validate() error {
	if c.App.Name == "" {
		return fmt.Errorf("app.name is required")
	}
	if c.Upstream.DefaultBase == "" {
		return fmt.Errorf("upstream.default_base is required")
	}
	if c.Upstream.AuthMode != "bearer" && c.Upstream.AuthMode != "cookie" {
		return fmt.Errorf("upstream.auth_mode must be bearer or cookie")
	}
	if c.Redis.Addr == "" {
		return fmt.Errorf("redis.addr is required")
	}
	return nil
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Redis     RedisConfig
	Tracing   TracingConfig   `mapstructure:"tracing"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Report    ReportConfig    `mapstructure:"report"`
	Log       LogConfig       `mapstructure:"log"`

	// 运行时标志（非配置文件，通过命令行参数设置）
	MigrateOnly bool   `mapstructure:"-"`
	Seed        bool   `mapstructure:"-"`
	ConfigFile  string `mapstructure:"-"`
}

type ServerConfig struct {
	Port        string
	Mode        string
	WatchConfig bool `mapstructure:"watch_config"`
}

type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	User      string
	Password  string
	DBName    string
	Charset   string
	ParseTime bool   `mapstructure:"parse_time"`
	Path      string // sqlite 文件路径
}

type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	ExpireTime time.Duration `mapstructure:"expire_hours"`
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

// LogConfig 日志输出；Level 为空时 debug 模式用 debug，其余用 info
type LogConfig struct {
	File       string `mapstructure:"file"`
	Level      string `mapstructure:"level"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
}

// ReportConfig 报告计算相关设置，支持热更新
type ReportConfig struct {
	// RankMode legacy 保留原有排名算法，corrected 按用户平均分排名，original 恒为第一名
	RankMode                  string `mapstructure:"rank_mode"`
	PopulationCacheTTLSeconds int    `mapstructure:"population_cache_ttl_seconds"`
	// DefaultFilter 请求未携带或携带无法识别的 filter 时使用
	DefaultFilter string `mapstructure:"default_filter"`
}

func (r ReportConfig) PopulationCacheTTL() time.Duration {
	return time.Duration(r.PopulationCacheTTLSeconds) * time.Second
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.driver", "mysql")
	v.SetDefault("database.charset", "utf8mb4")
	v.SetDefault("database.parse_time", true)
	v.SetDefault("database.path", "data/skill_assessment.db")
	v.SetDefault("jwt.expire_hours", 24)
	v.SetDefault("redis.port", 6379)
	v.SetDefault("rate_limit.max_requests", 6000)
	v.SetDefault("rate_limit.window_minutes", 1)
	v.SetDefault("report.rank_mode", "legacy")
	v.SetDefault("report.population_cache_ttl_seconds", 60)
	v.SetDefault("report.default_filter", "all")
	v.SetDefault("log.file", "logs/skill_assessment.log")
	v.SetDefault("log.max_size_mb", 50)
	v.SetDefault("log.max_backups", 7)
}

func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvPrefix("SKILL_ASSESS")
	v.AutomaticEnv()
	setDefaults(v)

	// Database
	v.BindEnv("database.driver", "DATABASE_DRIVER")
	v.BindEnv("database.host", "DATABASE_HOST")
	v.BindEnv("database.port", "DATABASE_PORT")
	v.BindEnv("database.user", "DATABASE_USER")
	v.BindEnv("database.password", "DATABASE_PASSWORD")
	v.BindEnv("database.dbname", "DATABASE_NAME")
	v.BindEnv("database.path", "DATABASE_PATH")

	// JWT
	v.BindEnv("jwt.secret", "JWT_SECRET")

	// Redis
	v.BindEnv("redis.enabled", "REDIS_ENABLED")
	v.BindEnv("redis.host", "REDIS_HOST")
	v.BindEnv("redis.port", "REDIS_PORT")
	v.BindEnv("redis.password", "REDIS_PASSWORD")

	// Server
	v.BindEnv("server.mode", "SERVER_MODE")
	v.BindEnv("server.port", "PORT")

	// Tracing
	v.BindEnv("tracing.enabled", "TRACING_ENABLED")
	v.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	// Report
	v.BindEnv("report.rank_mode", "REPORT_RANK_MODE")
	v.BindEnv("report.default_filter", "REPORT_DEFAULT_FILTER")

	// Log
	v.BindEnv("log.file", "LOG_FILE")
	v.BindEnv("log.level", "LOG_LEVEL")

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.JWT.ExpireTime = cfg.JWT.ExpireTime * time.Hour
	cfg.ConfigFile = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.Database.Driver == "sqlite" {
		if dir := filepath.Dir(cfg.Database.Path); dir != "" {
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				os.MkdirAll(dir, 0755)
			}
		}
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	// 生产环境校验 JWT Secret 强度
	if c.Server.Mode == "release" && len(c.JWT.Secret) < 32 {
		return fmt.Errorf("JWT secret is too short (%d chars), must be at least 32 characters in release mode", len(c.JWT.Secret))
	}

	switch c.Database.Driver {
	case "mysql", "sqlite":
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}

	switch c.Report.RankMode {
	case "legacy", "corrected", "original":
	default:
		return fmt.Errorf("unsupported report.rank_mode %q (want legacy, corrected or original)", c.Report.RankMode)
	}

	// 留空等同于 all
	switch c.Report.DefaultFilter {
	case "", "week", "month", "all":
	default:
		return fmt.Errorf("unsupported report.default_filter %q (want week, month or all)", c.Report.DefaultFilter)
	}

	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unsupported log.level %q", c.Log.Level)
	}

	if c.RateLimit.MaxRequests <= 0 || c.RateLimit.WindowMinutes <= 0 {
		return fmt.Errorf("rate_limit.max_requests and rate_limit.window_minutes must be positive")
	}

	if c.Report.PopulationCacheTTLSeconds < 0 {
		return fmt.Errorf("report.population_cache_ttl_seconds must not be negative")
	}

	return nil
}

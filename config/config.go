package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Upload   UploadConfig   `mapstructure:"upload"`
	Queue    QueueConfig    `mapstructure:"queue"`
	CORS     CORSConfig     `mapstructure:"cors"`
	Paging   PagingConfig   `mapstructure:"paging"`
	Cleanup  CleanupConfig  `mapstructure:"cleanup"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"` // mysql, postgres, sqlite
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	SlowThresholdMs int    `mapstructure:"slow_threshold_ms"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

type JWTConfig struct {
	Secret      string `mapstructure:"secret"`
	ExpireHours int    `mapstructure:"expire_hours"`
}

// StorageConfig 오브젝트 스토리지 설정 (oss 또는 s3 호환)
type StorageConfig struct {
	Driver          string `mapstructure:"driver"` // oss, s3
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	AccessKeySecret string `mapstructure:"access_key_secret"`
	BucketName      string `mapstructure:"bucket_name"`
	CDNDomain       string `mapstructure:"cdn_domain"`
	UploadPath      string `mapstructure:"upload_path"`
}

type UploadConfig struct {
	MaxSize      int64    `mapstructure:"max_size"`      // 최대 파일 크기 (바이트)
	AllowedTypes []string `mapstructure:"allowed_types"` // 허용 Content-Type
}

type QueueConfig struct {
	ImageCleanupQueue string `mapstructure:"image_cleanup_queue"`
	MaxWorkers        int    `mapstructure:"max_workers"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	AllowedMethods []string `mapstructure:"allowed_methods"`
	AllowedHeaders []string `mapstructure:"allowed_headers"`
}

type PagingConfig struct {
	DefaultSize int `mapstructure:"default_size"`
	MaxSize     int `mapstructure:"max_size"`
}

type CleanupConfig struct {
	OrphanExpireHours int `mapstructure:"orphan_expire_hours"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json, text
}

const (
	defaultPageSize = 20
	maxPageSize     = 50
)

// Normalize 페이지 번호(0부터)와 크기를 허용 범위로 보정
func (p PagingConfig) Normalize(page, size int) (int, int) {
	def := p.DefaultSize
	if def <= 0 {
		def = defaultPageSize
	}
	max := p.MaxSize
	if max <= 0 {
		max = maxPageSize
	}

	if page < 0 {
		page = 0
	}
	if size < 1 {
		size = def
	}
	if size > max {
		size = max
	}
	return page, size
}

func Load(configPath string) (*Config, error) {
	// config.local.yaml 이 있으면 우선 사용 (실제 키 포함, git 미포함)
	dir := filepath.Dir(configPath)
	localConfigPath := filepath.Join(dir, "config.local.yaml")

	if _, err := os.Stat(localConfigPath); err == nil {
		configPath = localConfigPath
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	v.SetDefault("server.port", 8080)
	v.SetDefault("database.driver", "mysql")
	v.SetDefault("storage.driver", "oss")
	v.SetDefault("queue.image_cleanup_queue", "image_cleanup")
	v.SetDefault("queue.max_workers", 2)
	v.SetDefault("paging.default_size", defaultPageSize)
	v.SetDefault("paging.max_size", maxPageSize)
	v.SetDefault("upload.max_size", 10*1024*1024)
	v.SetDefault("upload.allowed_types", []string{"image/png", "image/jpeg", "image/jpg"})
	v.SetDefault("cleanup.orphan_expire_hours", 24)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// 환경 변수 덮어쓰기
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

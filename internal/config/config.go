package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"

	MediaLocal = "local"
	MediaMinIO = "minio"
)

type DB struct {
	Driver     string
	URL        string
	DbHOST     string
	DbPORT     string
	DbUSER     string
	DbPASSWORD string
	DbNAME     string
	DbSSLMODE  string
	Path       string
}

type Media struct {
	Backend       string
	AdImagesDir   string
	AvatarsDir    string
	DefaultAvatar string
}

type MinIO struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	BucketName string
	UseSSL     bool
	Region     string
}

type Log struct {
	Level  string
	Format string
}

type Config struct {
	ServerPort          int
	DB                  DB
	Media               Media
	MinIO               MinIO
	Log                 Log
	JWTSecretKey        string
	AccessTokenDuration time.Duration
	MaxUploadSize       int64
	CORSAllowedOrigin   string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server_port", 8080)

	v.SetDefault("db_driver", DriverPostgres)
	v.SetDefault("db_url", "")
	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", "5432")
	v.SetDefault("db_user", "postgres")
	v.SetDefault("db_password", "password")
	v.SetDefault("db_name", "adboard")
	v.SetDefault("db_sslmode", "disable")
	v.SetDefault("db_path", "adboard.db")

	v.SetDefault("media_backend", MediaLocal)
	v.SetDefault("ad_images_dir", "media/ads")
	v.SetDefault("avatars_dir", "media/avatars")
	v.SetDefault("default_avatar", "")

	v.SetDefault("minio_endpoint", "localhost:9000")
	v.SetDefault("minio_access_key", "minioadmin")
	v.SetDefault("minio_secret_key", "minioadmin")
	v.SetDefault("minio_bucket_name", "images")
	v.SetDefault("minio_use_ssl", false)
	v.SetDefault("minio_region", "us-east-1")

	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")

	v.SetDefault("jwt_secret_key", "")
	v.SetDefault("access_token_duration", "2h")
	v.SetDefault("max_upload_size", 10*1024*1024)
	v.SetDefault("cors_allowed_origin", "http://localhost:3000")
}

// LoadConfig reads .env, the optional config file and the environment, in
// increasing order of precedence.
func LoadConfig(configFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	return &Config{
		ServerPort: v.GetInt("server_port"),
		DB: DB{
			Driver:     v.GetString("db_driver"),
			URL:        v.GetString("db_url"),
			DbHOST:     v.GetString("db_host"),
			DbPORT:     v.GetString("db_port"),
			DbUSER:     v.GetString("db_user"),
			DbPASSWORD: v.GetString("db_password"),
			DbNAME:     v.GetString("db_name"),
			DbSSLMODE:  v.GetString("db_sslmode"),
			Path:       v.GetString("db_path"),
		},
		Media: Media{
			Backend:       v.GetString("media_backend"),
			AdImagesDir:   v.GetString("ad_images_dir"),
			AvatarsDir:    v.GetString("avatars_dir"),
			DefaultAvatar: v.GetString("default_avatar"),
		},
		MinIO: MinIO{
			Endpoint:   v.GetString("minio_endpoint"),
			AccessKey:  v.GetString("minio_access_key"),
			SecretKey:  v.GetString("minio_secret_key"),
			BucketName: v.GetString("minio_bucket_name"),
			UseSSL:     v.GetBool("minio_use_ssl"),
			Region:     v.GetString("minio_region"),
		},
		Log: Log{
			Level:  v.GetString("log_level"),
			Format: v.GetString("log_format"),
		},
		JWTSecretKey:        v.GetString("jwt_secret_key"),
		AccessTokenDuration: parseDuration(v.GetString("access_token_duration")),
		MaxUploadSize:       v.GetInt64("max_upload_size"),
		CORSAllowedOrigin:   v.GetString("cors_allowed_origin"),
	}, nil
}

func parseDuration(value string) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		return 2 * time.Hour
	}
	return duration
}

func (c *Config) Validate() error {
	if c.JWTSecretKey == "" {
		return fmt.Errorf("JWT_SECRET_KEY is not set")
	}

	switch c.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DB.Driver)
	}

	switch c.Media.Backend {
	case MediaLocal, MediaMinIO:
	default:
		return fmt.Errorf("unsupported MEDIA_BACKEND %q", c.Media.Backend)
	}

	if c.MaxUploadSize <= 0 {
		return fmt.Errorf("MAX_UPLOAD_SIZE must be positive")
	}

	return nil
}

// DSN returns the connection string for the configured driver.
func (d DB) DSN() string {
	if d.URL != "" {
		return d.URL
	}

	if d.Driver == DriverSQLite {
		return fmt.Sprintf("file:%s?_foreign_keys=on", d.Path)
	}

	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.DbHOST,
		d.DbPORT,
		d.DbUSER,
		d.DbPASSWORD,
		d.DbNAME,
		d.DbSSLMODE,
	)
}

package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	ServicePort int
	Portal      PortalConfig
	Archive     ArchiveConfig
}

type PortalConfig struct {
	BaseURL string
}

// ArchiveConfig configures the optional signature archive. Leaving Endpoint
// empty disables archiving entirely.
type ArchiveConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

const (
	envServicePort     = "SERVICE_PORT"
	envPortalBaseURL   = "PORTAL_BASE_URL"
	envArchiveEndpoint = "ARCHIVE_ENDPOINT"
	envArchiveAccess   = "ARCHIVE_ACCESS_KEY"
	envArchiveSecret   = "ARCHIVE_SECRET_KEY"
	envArchiveBucket   = "ARCHIVE_BUCKET"
	envArchiveUseSSL   = "ARCHIVE_USE_SSL"
)

func NewConfig() (*Config, error) {
	_ = godotenv.Load()

	configName := "config"
	if os.Getenv("CONFIG_NAME") != "" {
		configName = os.Getenv("CONFIG_NAME")
	}

	viper.SetConfigName(configName)
	viper.SetConfigType("toml")
	viper.AddConfigPath("config")
	viper.AddConfigPath(".")

	cfg := &Config{ServicePort: 8080}
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		// No config file: env vars alone drive the service.
	} else if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}

	if v := os.Getenv(envServicePort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, errors.New("service port must be int value")
		}
		cfg.ServicePort = port
	}
	if v := os.Getenv(envPortalBaseURL); v != "" {
		cfg.Portal.BaseURL = v
	}
	if v := os.Getenv(envArchiveEndpoint); v != "" {
		cfg.Archive.Endpoint = v
	}
	if v := os.Getenv(envArchiveAccess); v != "" {
		cfg.Archive.AccessKey = v
	}
	if v := os.Getenv(envArchiveSecret); v != "" {
		cfg.Archive.SecretKey = v
	}
	if v := os.Getenv(envArchiveBucket); v != "" {
		cfg.Archive.Bucket = v
	}
	if v := os.Getenv(envArchiveUseSSL); v != "" {
		cfg.Archive.UseSSL = v == "1" || v == "true"
	}

	log.Info("config parsed")

	return cfg, nil
}

package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	EnvPrefix   = "FILEGUARD"
	DefaultPort = "8080"
)

// Config holds the settings for fileguard-server
type Config struct {
	Server      ServerConfig `mapstructure:"server"`
	Auth        AuthConfig   `mapstructure:"auth"`
	Directories []string     `mapstructure:"directories"`
}

// ServerConfig holds HTTP settings
type ServerConfig struct {
	Port        string `mapstructure:"port"`
	MaxUploadMB int64  `mapstructure:"max_upload_mb"`
}

// AuthConfig holds credentials for the admin endpoints
type AuthConfig struct {
	JWTSecret string   `mapstructure:"jwt_secret"`
	Username  string   `mapstructure:"username"`
	Password  string   `mapstructure:"password"`
	APIKeys   []string `mapstructure:"api_keys"`
}

// Load reads configPath (optional) and FILEGUARD_* environment variables on
// top of the defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.max_upload_mb", 32)
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.username", "admin")
	v.SetDefault("auth.password", "password")
	v.SetDefault("auth.api_keys", []string{})
	v.SetDefault("directories", []string{})

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	// FILEGUARD_DIRECTORIES="a,b" is split by viper's default decode hook
	v.AutomaticEnv()
	// Flat aliases, e.g. FILEGUARD_PORT
	_ = v.BindEnv("server.port", EnvPrefix+"_PORT")
	_ = v.BindEnv("server.max_upload_mb", EnvPrefix+"_MAX_UPLOAD_MB")
	_ = v.BindEnv("auth.jwt_secret", EnvPrefix+"_JWT_SECRET")

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if cfg.Server.Port == "" {
		cfg.Server.Port = DefaultPort
	}
	return &cfg, nil
}

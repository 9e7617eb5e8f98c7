package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	MongoDB   MongoDBConfig
	JWT       JWTConfig
	Session   SessionConfig
	Mail      MailConfig
	Identity  IdentityConfig
	Reconcile ReconcileConfig
	Upload    UploadConfig
	LogLevel  string
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port           string
	AllowedOrigins []string
	PublicURL      string
}

// MongoDBConfig holds MongoDB-specific configuration.
// URI "memory://" selects the in-process document store.
type MongoDBConfig struct {
	URI      string
	Database string
}

// JWTConfig holds session token configuration
type JWTConfig struct {
	Secret    string
	ExpiresIn int
}

// SessionConfig holds browser session configuration
type SessionConfig struct {
	CookieName      string
	TokenCookieName string
	IdleTimeout     time.Duration
	ReadyTimeout    time.Duration
	SecureCookies   bool
}

// MailConfig holds the email job queue configuration. An empty AMQPURL logs emails instead.
type MailConfig struct {
	AMQPURL  string
	Queue    string
	ResetURL string
}

// IdentityConfig holds sign-in throttling configuration
type IdentityConfig struct {
	LoginRate  float64
	LoginBurst int
}

// ReconcileConfig holds the onboarding reconciliation sweep configuration
type ReconcileConfig struct {
	Interval time.Duration
	Repair   bool
}

// UploadConfig holds multipart upload limits
type UploadConfig struct {
	MaxBytes int64
}

// MemoryStoreURI selects the in-memory document store.
const MemoryStoreURI = "memory://"

// LoadConfig loads configuration from environment variables and an optional config file in path
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	v.AddConfigPath("./config")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file is not found, we'll use environment variables
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	// Hosting platforms inject PORT
	config.Server.Port = GetEnv("PORT", config.Server.Port)
	config.Server.AllowedOrigins = GetEnvAsSlice("ALLOWED_ORIGINS", ",", config.Server.AllowedOrigins)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks the settings the services cannot start without
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return errors.New("JWT secret is not configured (set JWT_SECRET)")
	}
	if c.MongoDB.URI == "" {
		return errors.New("MongoDB URI is not configured (set MONGODB_URI)")
	}
	return nil
}

// TokenTTL returns the session token lifetime
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.JWT.ExpiresIn) * time.Second
}

// setDefaults sets default values for configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("Server.Port", "4000")
	v.SetDefault("Server.AllowedOrigins", []string{"http://localhost:3000"})
	v.SetDefault("Server.PublicURL", "http://localhost:3000")
	v.SetDefault("MongoDB.URI", MemoryStoreURI)
	v.SetDefault("MongoDB.Database", "oripay-exchange")
	v.SetDefault("JWT.Secret", "")
	v.SetDefault("JWT.ExpiresIn", 24*60*60) // 24 hours
	v.SetDefault("Session.CookieName", "oripay_sid")
	v.SetDefault("Session.TokenCookieName", "oripay_token")
	v.SetDefault("Session.IdleTimeout", 30*time.Minute)
	v.SetDefault("Session.ReadyTimeout", 2*time.Second)
	v.SetDefault("Session.SecureCookies", false)
	v.SetDefault("Mail.AMQPURL", "")
	v.SetDefault("Mail.Queue", "email_jobs")
	v.SetDefault("Mail.ResetURL", "http://localhost:3000/reset-password")
	v.SetDefault("Identity.LoginRate", 0.2)
	v.SetDefault("Identity.LoginBurst", 5)
	v.SetDefault("Reconcile.Interval", 15*time.Minute)
	v.SetDefault("Reconcile.Repair", false)
	v.SetDefault("Upload.MaxBytes", 32<<20)
	v.SetDefault("LogLevel", "info")
}

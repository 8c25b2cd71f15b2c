// Package config loads server settings from an optional .env file and the
// environment. Environment variables win over the file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port          string `mapstructure:"PORT"`
	MongoURI      string `mapstructure:"MONGODB_URI"`
	MongoDatabase string `mapstructure:"MONGODB_DATABASE"`
	RedisAddr     string `mapstructure:"REDIS_ADDR"` // empty: in-process bus
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	JWTSecret     string `mapstructure:"JWT_SECRET"`
	JWTKeys       string `mapstructure:"JWT_KEYS"` // kid:secret,kid2:secret2
	JWTActiveKid  string `mapstructure:"JWT_ACTIVE_KID"`
	RateLimitRPM  int    `mapstructure:"RATE_LIMIT_RPM"`
	TLSCert       string `mapstructure:"TLS_CERT"`
	TLSKey        string `mapstructure:"TLS_KEY"`
	RequireTLS    bool   `mapstructure:"REQUIRE_TLS"`
	AppURL        string `mapstructure:"APP_URL"`
	LogEnv        string `mapstructure:"LOG_ENV"`

	// Web Push
	VAPIDPublicKey  string        `mapstructure:"VAPID_PUBLIC_KEY"`
	VAPIDPrivateKey string        `mapstructure:"VAPID_PRIVATE_KEY"`
	VAPIDSubject    string        `mapstructure:"VAPID_SUBJECT"`
	PushTimeout     time.Duration `mapstructure:"PUSH_TIMEOUT"`
}

var defaults = map[string]any{
	"PORT":              "50051",
	"MONGODB_URI":       "",
	"MONGODB_DATABASE":  "marketplace",
	"REDIS_ADDR":        "",
	"REDIS_PASSWORD":    "",
	"JWT_SECRET":        "",
	"JWT_KEYS":          "",
	"JWT_ACTIVE_KID":    "",
	"RATE_LIMIT_RPM":    30,
	"TLS_CERT":          "",
	"TLS_KEY":           "",
	"REQUIRE_TLS":       false,
	"APP_URL":           "",
	"LOG_ENV":           "production",
	"VAPID_PUBLIC_KEY":  "",
	"VAPID_PRIVATE_KEY": "",
	"VAPID_SUBJECT":     "",
	"PUSH_TIMEOUT":      "10s",
}

// Load reads envFile when it exists, then the environment. An empty
// envFile means ".env".
func Load(envFile string) (*Config, error) {
	if envFile == "" {
		envFile = ".env"
	}
	v := viper.New()
	for k, d := range defaults {
		v.SetDefault(k, d)
	}
	v.SetConfigFile(envFile)
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	return &cfg, nil
}

// Validate checks the settings a server needs. needMongo is false when
// the in-memory store is used.
func (c *Config) Validate(needMongo bool) error {
	var errs []error
	if needMongo && c.MongoURI == "" {
		errs = append(errs, errors.New("MONGODB_URI must be set"))
	}
	if c.JWTSecret == "" && c.JWTKeys == "" {
		errs = append(errs, errors.New("either JWT_SECRET or JWT_KEYS must be set"))
	}
	if c.JWTKeys != "" {
		if _, err := c.SigningKeys(); err != nil {
			errs = append(errs, err)
		}
	}
	if c.RequireTLS && (c.TLSCert == "" || c.TLSKey == "") {
		errs = append(errs, errors.New("REQUIRE_TLS is true but TLS_CERT/TLS_KEY are not configured"))
	}
	if c.RateLimitRPM <= 0 {
		errs = append(errs, fmt.Errorf("RATE_LIMIT_RPM must be positive, got %d", c.RateLimitRPM))
	}
	return errors.Join(errs...)
}

// SigningKeys parses JWT_KEYS into kid -> secret.
func (c *Config) SigningKeys() (map[string]string, error) {
	keys := map[string]string{}
	for _, p := range strings.Split(c.JWTKeys, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		kid, secret, ok := strings.Cut(p, ":")
		if !ok || kid == "" || secret == "" {
			return nil, fmt.Errorf("invalid JWT_KEYS entry: %q", p)
		}
		keys[kid] = secret
	}
	return keys, nil
}

// PushEnabled reports whether VAPID keys are configured.
func (c *Config) PushEnabled() bool {
	return c.VAPIDPublicKey != "" && c.VAPIDPrivateKey != ""
}

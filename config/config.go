// Package config loads the process-wide configuration from a YAML file with
// environment variable overrides. The resulting Config value is immutable and
// injected into every component at startup.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const defaultPath = "."

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port           int      `json:"port" yaml:"port"`
		AllowedOrigins []string `json:"allowedOrigins" yaml:"allowedOrigins"`
	} `json:"http" yaml:"http"`

	Postgres *PostgresConfig `json:"postgres" yaml:"postgres"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	Registration *RegistrationConfig `json:"registration" yaml:"registration"`

	Limits *LimitsConfig `json:"limits" yaml:"limits"`
}

// PostgresConfig holds the connection parameters for the relational store.
type PostgresConfig struct {
	Host     string `json:"host" yaml:"host"`
	Port     string `json:"port" yaml:"port"`
	User     string `json:"user" yaml:"user"`
	Password string `json:"password" yaml:"password"`
	DBName   string `json:"dbName" yaml:"dbName"`
	SSLMode  string `json:"sslMode" yaml:"sslMode"`
}

// AuthConfig defines authentication-related configuration: the JWT signing
// secret, the session cookie, and the bcrypt cost factor.
type AuthConfig struct {
	Secret         string        `json:"secret" yaml:"secret"`
	TokenTTL       time.Duration `json:"tokenTtl" yaml:"tokenTtl"`
	CookieName     string        `json:"cookieName" yaml:"cookieName"`
	CookieSecure   bool          `json:"cookieSecure" yaml:"cookieSecure"`
	CookieHTTPOnly bool          `json:"cookieHttpOnly" yaml:"cookieHttpOnly"`
	BcryptCost     int           `json:"bcryptCost" yaml:"bcryptCost"`
}

// RegistrationConfig toggles whether new accounts may be created.
type RegistrationConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
}

// LimitsConfig defines validation bounds for user-supplied fields.
type LimitsConfig struct {
	PasswordMinLength  int `json:"passwordMinLength" yaml:"passwordMinLength"`
	MoodDescMaxLength  int `json:"moodDescMaxLength" yaml:"moodDescMaxLength"`
	MoodEmotionsMaxLen int `json:"moodEmotionsMaxLen" yaml:"moodEmotionsMaxLen"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// LoadWithEnv loads <name>.yaml through koanf and applies environment
// variable overrides (AUTH_SECRET -> auth.secret).
func LoadWithEnv[T any](name string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, name+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", name)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", name)
	}

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// AUTH_SECRET -> auth.secret; field matching below is
			// case-insensitive, so AUTH_COOKIENAME binds to CookieName.
			return strings.ReplaceAll(strings.ToLower(k), "_", "."), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", name)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.TokenTTL == 0 {
		cfg.Auth.TokenTTL = 720 * time.Hour
	}
	if cfg.Auth.CookieName == "" {
		cfg.Auth.CookieName = "access_token"
	}
	if cfg.Registration == nil {
		cfg.Registration = &RegistrationConfig{Enabled: true}
	}
	if cfg.Limits == nil {
		cfg.Limits = &LimitsConfig{}
	}
	if cfg.Limits.PasswordMinLength == 0 {
		cfg.Limits.PasswordMinLength = 8
	}
	if cfg.Limits.MoodDescMaxLength == 0 {
		cfg.Limits.MoodDescMaxLength = 1000
	}
	if cfg.Limits.MoodEmotionsMaxLen == 0 {
		cfg.Limits.MoodEmotionsMaxLen = 200
	}
}

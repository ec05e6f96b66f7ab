package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ストレージドライバ名です。
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverBadger   = "badger"
	DriverPostgres = "postgres"
)

// DefaultPath は CONFIG_PATH 未指定時の設定ファイルです。
const DefaultPath = "assets/local.yaml"

// Config はアプリケーション全体の設定を表現します。
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
	I18n    I18nConfig    `yaml:"i18n"`
	Storage StorageConfig `yaml:"storage"`
}

// ServerConfig は gRPC サーバーとメトリクス公開に関する設定です。
type ServerConfig struct {
	ListenAddr  string `yaml:"listen_addr"`
	MetricsAddr string `yaml:"metrics_addr"`
}

// LogConfig はログ出力の設定です。
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// I18nConfig は翻訳の設定です。
type I18nConfig struct {
	DefaultLanguage string `yaml:"default_language"`
}

// StorageConfig は社員コレクションの保存先です。
type StorageConfig struct {
	Driver   string         `yaml:"driver"`
	Key      string         `yaml:"key"`
	SQLite   SQLiteConfig   `yaml:"sqlite"`
	Badger   BadgerConfig   `yaml:"badger"`
	Postgres DatabaseConfig `yaml:"postgres"`
}

// SQLiteConfig は SQLite ファイルの設定です。
type SQLiteConfig struct {
	Path string `yaml:"path"`
}

// BadgerConfig は BadgerDB の設定です。
type BadgerConfig struct {
	Path       string `yaml:"path"`
	InMemory   bool   `yaml:"in_memory"`
	SyncWrites bool   `yaml:"sync_writes"`
}

// DatabaseConfig は PostgreSQL 接続に関する設定です。
type DatabaseConfig struct {
	Host               string        `yaml:"host"`
	Port               int           `yaml:"port"`
	User               string        `yaml:"user"`
	Password           string        `yaml:"password"`
	Name               string        `yaml:"name"`
	SSLMode            string        `yaml:"ssl_mode"`
	MaxOpenConns       int           `yaml:"max_open_conns"`
	MaxIdleConns       int           `yaml:"max_idle_conns"`
	ConnMaxLifetime    time.Duration `yaml:"-"`
	ConnMaxIdleTime    time.Duration `yaml:"-"`
	ConnMaxLifetimeRaw string        `yaml:"conn_max_lifetime"`
	ConnMaxIdleTimeRaw string        `yaml:"conn_max_idle_time"`
}

// EffectivePath はフラグ、環境変数 CONFIG_PATH、既定値の順に設定ファイルのパスを決定します。
func EffectivePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv("CONFIG_PATH"); env != "" {
		return env
	}
	return DefaultPath
}

// Load は指定されたパスから設定ファイルを読み込みます。
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := cfg.validateAndNormalize(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validateAndNormalize() error {
	if c.Server.ListenAddr == "" {
		return fmt.Errorf("config: server.listen_addr must be set")
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log.level %q is not supported", c.Log.Level)
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("config: log.format %q is not supported", c.Log.Format)
	}

	if c.I18n.DefaultLanguage == "" {
		c.I18n.DefaultLanguage = "en"
	}

	return c.Storage.validateAndNormalize()
}

func (s *StorageConfig) validateAndNormalize() error {
	if s.Driver == "" {
		return fmt.Errorf("config: storage.driver must be set")
	}
	if s.Key == "" {
		s.Key = "employees"
	}

	switch s.Driver {
	case DriverMemory:
		return nil
	case DriverSQLite:
		if s.SQLite.Path == "" {
			return fmt.Errorf("config: storage.sqlite.path must be set")
		}
		return nil
	case DriverBadger:
		if !s.Badger.InMemory && s.Badger.Path == "" {
			return fmt.Errorf("config: storage.badger.path must be set")
		}
		return nil
	case DriverPostgres:
		return s.Postgres.validateAndNormalize()
	default:
		return fmt.Errorf("config: storage.driver %q is not supported", s.Driver)
	}
}

func (d *DatabaseConfig) validateAndNormalize() error {
	if d.Host == "" {
		return fmt.Errorf("config: storage.postgres.host must be set")
	}
	if d.Port == 0 {
		return fmt.Errorf("config: storage.postgres.port must be set")
	}
	if d.User == "" {
		return fmt.Errorf("config: storage.postgres.user must be set")
	}
	if d.Password == "" {
		return fmt.Errorf("config: storage.postgres.password must be set")
	}
	if d.Name == "" {
		return fmt.Errorf("config: storage.postgres.name must be set")
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}

	lifetime, err := parseDurationAllowEmpty(d.ConnMaxLifetimeRaw)
	if err != nil {
		return fmt.Errorf("config: storage.postgres.conn_max_lifetime: %w", err)
	}
	d.ConnMaxLifetime = lifetime

	idleTime, err := parseDurationAllowEmpty(d.ConnMaxIdleTimeRaw)
	if err != nil {
		return fmt.Errorf("config: storage.postgres.conn_max_idle_time: %w", err)
	}
	d.ConnMaxIdleTime = idleTime

	return nil
}

func parseDurationAllowEmpty(raw string) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	return d, nil
}

// DSN は pgx 用の接続文字列を返します。
func (d DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:     "/" + d.Name,
		RawQuery: "sslmode=" + url.QueryEscape(d.SSLMode),
	}
	return u.String()
}

package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Admin    AdminConfig    `toml:"admin"`
	SMTP     SMTPConfig     `toml:"smtp"`
	Calendar CalendarConfig `toml:"calendar"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения к PostgreSQL
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// AdminConfig настройки доступа к административным маршрутам
type AdminConfig struct {
	Token string `toml:"token"`
}

// SMTPConfig настройки почтового коллаборатора
type SMTPConfig struct {
	Host       string `toml:"host"`
	Port       int    `toml:"port"`
	From       string `toml:"from"`
	AdminEmail string `toml:"admin_email"`
	Timeout    int    `toml:"timeout"`
}

// CalendarConfig настройки интеграции с календарем.
// Mode выбирается явно: "stub" — детерминированная заглушка,
// "google" — реальный Google Calendar. Автоматического выбора
// по наличию credentials нет: неправильная конфигурация должна
// падать при старте, а не маскироваться заглушкой.
type CalendarConfig struct {
	Mode         string `toml:"mode"`
	CalendarID   string `toml:"calendar_id"`
	ClientID     string `toml:"client_id"`
	ClientSecret string `toml:"client_secret"`
	RefreshToken string `toml:"refresh_token"`
	Timeout      int    `toml:"timeout"`
}

const (
	CalendarModeStub   = "stub"
	CalendarModeGoogle = "google"
)

// Load читает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Metrics.Enabled && cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.SMTP.Timeout == 0 {
		cfg.SMTP.Timeout = 10
	}
	if cfg.Calendar.Timeout == 0 {
		cfg.Calendar.Timeout = 10
	}

	switch cfg.Calendar.Mode {
	case CalendarModeStub:
	case CalendarModeGoogle:
		if cfg.Calendar.ClientID == "" || cfg.Calendar.ClientSecret == "" || cfg.Calendar.RefreshToken == "" {
			return nil, fmt.Errorf("config: calendar mode %q requires client_id, client_secret and refresh_token", CalendarModeGoogle)
		}
	default:
		return nil, fmt.Errorf("config: calendar mode must be %q or %q, got %q",
			CalendarModeStub, CalendarModeGoogle, cfg.Calendar.Mode)
	}

	return &cfg, nil
}

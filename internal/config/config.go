// Package config loads the service configuration from a TOML file.
package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/salonix/appointment-service/internal/domain"
)

// Config is the full service configuration.
type Config struct {
	Server      ServerConfig      `toml:"server"`
	Database    DatabaseConfig    `toml:"database"`
	Logs        LogsConfig        `toml:"logs"`
	Metrics     MetricsConfig     `toml:"metrics"`
	Business    BusinessConfig    `toml:"business"`
	Transaction TransactionConfig `toml:"transaction"`
	Mailer      MailerConfig      `toml:"mailer"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

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

// DSN builds the lib/pq connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BusinessConfig describes the salon's working schedule.
type BusinessConfig struct {
	OpenTime              string `toml:"open_time"`  // "09:00"
	CloseTime             string `toml:"close_time"` // "19:00"
	SlotStepMinutes       int    `toml:"slot_step_minutes"`
	MaxAppointmentMinutes int    `toml:"max_appointment_minutes"`
	Timezone              string `toml:"timezone"`
}

// Hours parses the business schedule into its domain representation.
func (b BusinessConfig) Hours() (domain.BusinessHours, error) {
	open, err := parseMinuteOfDay(b.OpenTime)
	if err != nil {
		return domain.BusinessHours{}, fmt.Errorf("config: invalid open_time %q: %w", b.OpenTime, err)
	}
	close, err := parseMinuteOfDay(b.CloseTime)
	if err != nil {
		return domain.BusinessHours{}, fmt.Errorf("config: invalid close_time %q: %w", b.CloseTime, err)
	}
	if close <= open {
		return domain.BusinessHours{}, fmt.Errorf("config: close_time %q must be after open_time %q", b.CloseTime, b.OpenTime)
	}

	loc := time.Local
	if b.Timezone != "" {
		loc, err = time.LoadLocation(b.Timezone)
		if err != nil {
			return domain.BusinessHours{}, fmt.Errorf("config: invalid timezone %q: %w", b.Timezone, err)
		}
	}

	hours := domain.BusinessHours{
		OpenMinute:            open,
		CloseMinute:           close,
		SlotStepMinutes:       b.SlotStepMinutes,
		MaxAppointmentMinutes: b.MaxAppointmentMinutes,
		Location:              loc,
	}
	if hours.SlotStepMinutes <= 0 {
		hours.SlotStepMinutes = domain.DefaultSlotStepMinutes
	}
	if hours.MaxAppointmentMinutes <= 0 {
		hours.MaxAppointmentMinutes = domain.DefaultMaxAppointmentMinutes
	}
	return hours, nil
}

func parseMinuteOfDay(s string) (int, error) {
	t, err := time.Parse(domain.TimeFormat, s)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

type TransactionConfig struct {
	TimeoutSeconds int `toml:"timeout_seconds"`
}

// Timeout returns the transaction timeout, defaulting to 10 seconds.
func (t TransactionConfig) Timeout() time.Duration {
	if t.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(t.TimeoutSeconds) * time.Second
}

type MailerConfig struct {
	BaseURL        string `toml:"base_url"`
	APIKey         string `toml:"api_key"`
	FromEmail      string `toml:"from_email"`
	FromName       string `toml:"from_name"`
	CancelURLBase  string `toml:"cancel_url_base"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Load reads and validates the configuration file.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Database.Host == "" {
		return nil, fmt.Errorf("config: database.host is required")
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Business.OpenTime == "" {
		cfg.Business.OpenTime = "09:00"
	}
	if cfg.Business.CloseTime == "" {
		cfg.Business.CloseTime = "19:00"
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "appointment-service"
	}

	return &cfg, nil
}

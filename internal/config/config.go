package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/ruopp93-dot/kraken-telegram-miniapp/internal/domain"
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Booking  BookingConfig  `toml:"booking"`
	Schedule ScheduleConfig `toml:"schedule"`
}

// ServerConfig параметры HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // Секунды
	WriteTimeout    int `toml:"write_timeout"`    // Секунды
	IdleTimeout     int `toml:"idle_timeout"`     // Секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // Секунды
}

// DatabaseConfig параметры подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // Секунды
}

// DSN строка подключения к БД
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig параметры логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig параметры Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BookingConfig бизнес-параметры бронирования
type BookingConfig struct {
	MinDurationMinutes      int   `toml:"min_duration_minutes"`
	MaxDurationMinutes      int   `toml:"max_duration_minutes"`
	NextSlotHorizonDays     int   `toml:"next_slot_horizon_days"`
	NextSlotDefaultMinutes  int   `toml:"next_slot_default_minutes"`
	JoystickPriceMinorUnits int64 `toml:"joystick_price_minor_units"`
}

// ScheduleConfig расписание клуба и окно выходного тарифа
type ScheduleConfig struct {
	Timezone               string `toml:"timezone"`
	OpenTime               string `toml:"open_time"`       // Первый стартовый слот, HH:MM
	LastSlotStart          string `toml:"last_slot_start"` // Последний стартовый слот включительно, HH:MM
	SlotStepMinutes        int    `toml:"slot_step_minutes"`
	WeekendFridayStartHour int    `toml:"weekend_friday_start_hour"`
	WeekendSundayEndHour   int    `toml:"weekend_sunday_end_hour"`
}

// Load читает конфигурацию из TOML файла и заполняет значения по умолчанию
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Booking.MinDurationMinutes == 0 {
		c.Booking.MinDurationMinutes = domain.MinBookingDurationMinutes
	}
	if c.Booking.MaxDurationMinutes == 0 {
		c.Booking.MaxDurationMinutes = domain.MaxBookingDurationMinutes
	}
	if c.Booking.NextSlotHorizonDays == 0 {
		c.Booking.NextSlotHorizonDays = domain.DefaultNextSlotHorizonDays
	}
	if c.Booking.NextSlotDefaultMinutes == 0 {
		c.Booking.NextSlotDefaultMinutes = domain.DefaultNextSlotDurationMinutes
	}
	if c.Booking.JoystickPriceMinorUnits == 0 {
		c.Booking.JoystickPriceMinorUnits = domain.DefaultJoystickPriceMinorUnits
	}

	if c.Schedule.Timezone == "" {
		c.Schedule.Timezone = domain.FacilityTimezone
	}
	if c.Schedule.OpenTime == "" {
		c.Schedule.OpenTime = domain.DefaultOpenTime
	}
	if c.Schedule.LastSlotStart == "" {
		c.Schedule.LastSlotStart = domain.DefaultLastSlotStart
	}
	if c.Schedule.SlotStepMinutes == 0 {
		c.Schedule.SlotStepMinutes = domain.DefaultSlotStepMinutes
	}
	if c.Schedule.WeekendFridayStartHour == 0 {
		c.Schedule.WeekendFridayStartHour = 18
	}
	if c.Schedule.WeekendSundayEndHour == 0 {
		c.Schedule.WeekendSundayEndHour = 22
	}
}

func (c *Config) validate() error {
	if c.Booking.MinDurationMinutes <= 0 || c.Booking.MaxDurationMinutes < c.Booking.MinDurationMinutes {
		return fmt.Errorf("config: invalid booking duration bounds [%d, %d]",
			c.Booking.MinDurationMinutes, c.Booking.MaxDurationMinutes)
	}
	if c.Schedule.SlotStepMinutes <= 0 {
		return fmt.Errorf("config: slot_step_minutes must be positive, got %d", c.Schedule.SlotStepMinutes)
	}
	if c.Booking.NextSlotHorizonDays <= 0 {
		return fmt.Errorf("config: next_slot_horizon_days must be positive, got %d", c.Booking.NextSlotHorizonDays)
	}
	return nil
}

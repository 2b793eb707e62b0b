package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Telegram struct {
		Token       string        `yaml:"token" json:"token" jsonschema:"required,description=Telegram bot token (can use environment variable)"`
		PollTimeout time.Duration `yaml:"poll_timeout" json:"poll_timeout" jsonschema:"default=10s,description=Long poll timeout"`
	} `yaml:"telegram" json:"telegram" jsonschema:"description=Telegram bot configuration"`

	YouTube struct {
		APIKey          string        `yaml:"api_key" json:"api_key" jsonschema:"required,description=YouTube Data API key (can use environment variable)"`
		BaseURL         string        `yaml:"base_url" json:"base_url" jsonschema:"description=API endpoint override for testing"`
		PageSize        int           `yaml:"page_size" json:"page_size" jsonschema:"default=50,maximum=50,description=Playlist items per page"`
		Timeout         time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=API request timeout"`
		MinCallInterval time.Duration `yaml:"min_call_interval" json:"min_call_interval" jsonschema:"description=Minimum spacing between billed API calls"`
	} `yaml:"youtube" json:"youtube" jsonschema:"description=YouTube API configuration"`

	Quota struct {
		DailyBudget int64  `yaml:"daily_budget" json:"daily_budget" jsonschema:"default=10000,description=Daily API quota budget in units"`
		ResetTime   string `yaml:"reset_time" json:"reset_time" jsonschema:"default=00:00,description=Daily reset boundary as HH:MM"`
		ResetTZ     string `yaml:"reset_tz" json:"reset_tz" jsonschema:"default=America/Los_Angeles,description=Timezone of the reset boundary"`
	} `yaml:"quota" json:"quota" jsonschema:"description=API quota configuration"`

	Schedule struct {
		PollInterval     time.Duration `yaml:"poll_interval" json:"poll_interval" jsonschema:"default=10m,description=Interval between poll cycles"`
		MaxPagesPerCycle int           `yaml:"max_pages_per_cycle" json:"max_pages_per_cycle" jsonschema:"default=3,description=Pagination depth cap per source per cycle"`
		MaxWorkers       int           `yaml:"max_workers" json:"max_workers" jsonschema:"default=4,description=Maximum concurrent source polls"`
		SendRetries      int           `yaml:"send_retries" json:"send_retries" jsonschema:"default=3,description=Delivery attempts per notification"`
		SendBackoff      time.Duration `yaml:"send_backoff" json:"send_backoff" jsonschema:"default=500ms,description=Initial delivery retry backoff"`
	} `yaml:"schedule" json:"schedule" jsonschema:"description=Scheduler configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:tubewatch.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Server struct {
		Enabled bool          `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Enable the status HTTP server"`
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Status server configuration"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// set defaults for telegram
	if cfg.Telegram.PollTimeout == 0 {
		cfg.Telegram.PollTimeout = 10 * time.Second
	}

	// set defaults for youtube
	if cfg.YouTube.PageSize == 0 {
		cfg.YouTube.PageSize = 50
	}
	if cfg.YouTube.Timeout == 0 {
		cfg.YouTube.Timeout = 30 * time.Second
	}

	// set defaults for quota, the reset boundary follows the API's own
	// midnight-Pacific accounting unless overridden
	if cfg.Quota.DailyBudget == 0 {
		cfg.Quota.DailyBudget = 10000
	}
	if cfg.Quota.ResetTime == "" {
		cfg.Quota.ResetTime = "00:00"
	}
	if cfg.Quota.ResetTZ == "" {
		cfg.Quota.ResetTZ = "America/Los_Angeles"
	}

	// set defaults for schedule
	if cfg.Schedule.PollInterval == 0 {
		cfg.Schedule.PollInterval = 10 * time.Minute
	}
	if cfg.Schedule.MaxPagesPerCycle == 0 {
		cfg.Schedule.MaxPagesPerCycle = 3
	}
	if cfg.Schedule.MaxWorkers == 0 {
		cfg.Schedule.MaxWorkers = 4
	}
	if cfg.Schedule.SendRetries == 0 {
		cfg.Schedule.SendRetries = 3
	}
	if cfg.Schedule.SendBackoff == 0 {
		cfg.Schedule.SendBackoff = 500 * time.Millisecond
	}

	// set defaults for database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:tubewatch.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	// set defaults for server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Telegram.Token == "" {
		return fmt.Errorf("telegram.token is required")
	}
	if cfg.YouTube.APIKey == "" {
		return fmt.Errorf("youtube.api_key is required")
	}
	if cfg.YouTube.PageSize < 1 || cfg.YouTube.PageSize > 50 {
		return fmt.Errorf("youtube.page_size must be between 1 and 50")
	}

	if cfg.Quota.DailyBudget < 1 {
		return fmt.Errorf("quota.daily_budget must be positive")
	}
	if _, _, err := ParseResetTime(cfg.Quota.ResetTime); err != nil {
		return fmt.Errorf("quota.reset_time: %w", err)
	}
	if _, err := time.LoadLocation(cfg.Quota.ResetTZ); err != nil {
		return fmt.Errorf("quota.reset_tz: %w", err)
	}

	if cfg.Schedule.PollInterval < time.Second {
		return fmt.Errorf("schedule.poll_interval must be at least 1 second")
	}
	if cfg.Schedule.MaxPagesPerCycle < 1 {
		return fmt.Errorf("schedule.max_pages_per_cycle must be at least 1")
	}
	if cfg.Schedule.MaxWorkers < 1 {
		return fmt.Errorf("schedule.max_workers must be at least 1")
	}

	if cfg.Server.Enabled && cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server.timeout must be at least 1 second")
	}

	return nil
}

// ParseResetTime parses an HH:MM boundary string
func ParseResetTime(s string) (hour, minute int, err error) {
	if _, err := time.Parse("15:04", s); err != nil {
		return 0, 0, fmt.Errorf("invalid HH:MM value %q", s)
	}
	if _, err := fmt.Sscanf(s, "%d:%d", &hour, &minute); err != nil {
		return 0, 0, fmt.Errorf("invalid HH:MM value %q", s)
	}
	return hour, minute, nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

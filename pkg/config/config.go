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
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
		BaseURL string        `yaml:"base_url" json:"base_url" jsonschema:"description=Public base URL used to build report links"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:feedwatch.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Monitor MonitorConfig `yaml:"monitor" json:"monitor" jsonschema:"description=Feed health monitoring configuration"`

	Notify NotifyConfig `yaml:"notify" json:"notify" jsonschema:"description=Owner outreach configuration"`
}

// MonitorConfig holds feed crawl settings
type MonitorConfig struct {
	Interval   time.Duration `yaml:"interval" json:"interval" jsonschema:"default=1h,description=Health check cycle interval"`
	MaxWorkers int           `yaml:"max_workers" json:"max_workers" jsonschema:"default=5,description=Maximum concurrent feed checks"`
	Timeout    time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Per-feed HTTP timeout"`
	UserAgent  string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=LLMFeed-Health-Monitor/1.0,description=User agent for feed and robots.txt requests"`
}

// NotifyConfig holds outreach settings. Each channel's credential block is
// optional; an absent block disables that channel without being an error.
type NotifyConfig struct {
	DryRun    bool          `yaml:"dry_run" json:"dry_run" jsonschema:"default=false,description=Run dispatch logic without sending"`
	RateLimit int           `yaml:"rate_limit" json:"rate_limit" jsonschema:"default=1,description=Max messages per feed+channel per window"`
	Window    time.Duration `yaml:"window" json:"window" jsonschema:"default=24h,description=Rolling rate-limit window"`
	GitHub    GitHubConfig  `yaml:"github" json:"github" jsonschema:"description=GitHub issue channel credentials"`
	SMTP      SMTPConfig    `yaml:"smtp" json:"smtp" jsonschema:"description=Email channel credentials"`
	Twitter   TwitterConfig `yaml:"twitter" json:"twitter" jsonschema:"description=Twitter DM channel credentials"`
}

// GitHubConfig holds GitHub issue channel credentials
type GitHubConfig struct {
	Token string `yaml:"token" json:"token" jsonschema:"description=GitHub API token"`
}

// Enabled reports whether the GitHub channel is configured
func (c GitHubConfig) Enabled() bool { return c.Token != "" }

// SMTPConfig holds email channel credentials
type SMTPConfig struct {
	Host     string `yaml:"host" json:"host" jsonschema:"description=SMTP host"`
	Port     int    `yaml:"port" json:"port" jsonschema:"default=587,description=SMTP port (465 implies TLS)"`
	User     string `yaml:"user" json:"user" jsonschema:"description=SMTP user"`
	Password string `yaml:"password" json:"password" jsonschema:"description=SMTP password"`
	From     string `yaml:"from" json:"from" jsonschema:"description=From address"`
}

// Enabled reports whether the email channel is configured
func (c SMTPConfig) Enabled() bool { return c.Host != "" && c.From != "" }

// TwitterConfig holds Twitter DM channel credentials
type TwitterConfig struct {
	APIKey       string `yaml:"api_key" json:"api_key" jsonschema:"description=Consumer API key"`
	APISecret    string `yaml:"api_secret" json:"api_secret" jsonschema:"description=Consumer API secret"`
	AccessToken  string `yaml:"access_token" json:"access_token" jsonschema:"description=Access token"`
	AccessSecret string `yaml:"access_secret" json:"access_secret" jsonschema:"description=Access token secret"`
}

// Enabled reports whether the Twitter channel is configured
func (c TwitterConfig) Enabled() bool {
	return c.APIKey != "" && c.APISecret != "" && c.AccessToken != "" && c.AccessSecret != ""
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

	// set defaults for server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	// set defaults for database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:feedwatch.db?cache=shared&mode=rwc&_txlock=immediate"
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

	// set defaults for monitor
	if cfg.Monitor.Interval == 0 {
		cfg.Monitor.Interval = time.Hour
	}
	if cfg.Monitor.MaxWorkers == 0 {
		cfg.Monitor.MaxWorkers = 5
	}
	if cfg.Monitor.Timeout == 0 {
		cfg.Monitor.Timeout = 30 * time.Second
	}
	if cfg.Monitor.UserAgent == "" {
		cfg.Monitor.UserAgent = "LLMFeed-Health-Monitor/1.0"
	}

	// set defaults for notify
	if cfg.Notify.RateLimit == 0 {
		cfg.Notify.RateLimit = 1
	}
	if cfg.Notify.Window == 0 {
		cfg.Notify.Window = 24 * time.Hour
	}
	if cfg.Notify.SMTP.Host != "" && cfg.Notify.SMTP.Port == 0 {
		cfg.Notify.SMTP.Port = 587
	}

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	// validate monitor config
	if cfg.Monitor.Interval < time.Minute {
		return fmt.Errorf("monitor.interval must be at least 1 minute")
	}
	if cfg.Monitor.Timeout < time.Second {
		return fmt.Errorf("monitor.timeout must be at least 1 second")
	}
	if cfg.Monitor.MaxWorkers < 1 {
		return fmt.Errorf("monitor.max_workers must be at least 1")
	}

	// validate notify config
	if cfg.Notify.RateLimit < 1 {
		return fmt.Errorf("notify.rate_limit must be at least 1")
	}
	if cfg.Notify.Window < time.Minute {
		return fmt.Errorf("notify.window must be at least 1 minute")
	}
	if cfg.Notify.SMTP.Host != "" && cfg.Notify.SMTP.From == "" {
		return fmt.Errorf("notify.smtp.from is required when smtp host is set")
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetBaseURL returns the public base URL for report links
func (c *Config) GetBaseURL() string {
	return c.Server.BaseURL
}

// GetMonitorConfig returns feed monitoring configuration
func (c *Config) GetMonitorConfig() MonitorConfig {
	return c.Monitor
}

// GetNotifyConfig returns outreach configuration
func (c *Config) GetNotifyConfig() NotifyConfig {
	return c.Notify
}

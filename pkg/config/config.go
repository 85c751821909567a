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
		Listen   string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout  time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
		BaseURL  string        `yaml:"base_url" json:"base_url" jsonschema:"default=http://localhost:8080,description=Public base URL used in generated links"`
		SiteName string        `yaml:"site_name" json:"site_name" jsonschema:"default=Robostride,description=Site name used in feed titles"`
		SiteDir  string        `yaml:"site_dir" json:"site_dir" jsonschema:"description=Directory with built static site assets (optional)"`
		PageSize int           `yaml:"page_size" json:"page_size" jsonschema:"default=100,description=Maximum records fetched from the bitable source"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Bitable BitableConfig `yaml:"bitable" json:"bitable" jsonschema:"description=Bitable CMS source configuration"`

	Contact ContactConfig `yaml:"contact" json:"contact" jsonschema:"description=Contact form relay configuration"`
}

// BitableConfig holds credentials and locators for the bitable data source.
// AppID/AppSecret are the application credentials, TenantID optionally enables
// the preferred tenant-scoped token path. AppToken/TableID locate the news table.
type BitableConfig struct {
	AppID     string `yaml:"app_id" json:"app_id" jsonschema:"description=Application identifier"`
	AppSecret string `yaml:"app_secret" json:"app_secret" jsonschema:"description=Application secret"`
	TenantID  string `yaml:"tenant_id" json:"tenant_id" jsonschema:"description=Tenant identifier (optional, enables tenant-scoped tokens)"`
	AppToken  string `yaml:"app_token" json:"app_token" jsonschema:"description=Bitable app token (table container locator)"`
	TableID   string `yaml:"table_id" json:"table_id" jsonschema:"description=Bitable table identifier"`

	BaseURL        string        `yaml:"base_url" json:"base_url" jsonschema:"default=https://open.feishu.cn,description=API base URL"`
	AuthTimeout    time.Duration `yaml:"auth_timeout" json:"auth_timeout" jsonschema:"default=10s,description=Token acquisition timeout"`
	RecordsTimeout time.Duration `yaml:"records_timeout" json:"records_timeout" jsonschema:"default=20s,description=Records fetch timeout"`
	MediaTimeout   time.Duration `yaml:"media_timeout" json:"media_timeout" jsonschema:"default=10s,description=Media download timeout"`
}

// ContactConfig holds the lead relay webhook settings
type ContactConfig struct {
	WebhookURL string        `yaml:"webhook_url" json:"webhook_url" jsonschema:"description=Webhook URL leads are forwarded to"`
	Timeout    time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=10s,description=Webhook call timeout"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables so secrets stay out of the file
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()
	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}
	if c.Server.BaseURL == "" {
		c.Server.BaseURL = "http://localhost:8080"
	}
	if c.Server.SiteName == "" {
		c.Server.SiteName = "Robostride"
	}
	if c.Server.PageSize == 0 {
		c.Server.PageSize = 100
	}

	if c.Bitable.BaseURL == "" {
		c.Bitable.BaseURL = "https://open.feishu.cn"
	}
	if c.Bitable.AuthTimeout == 0 {
		c.Bitable.AuthTimeout = 10 * time.Second
	}
	if c.Bitable.RecordsTimeout == 0 {
		c.Bitable.RecordsTimeout = 20 * time.Second
	}
	if c.Bitable.MediaTimeout == 0 {
		c.Bitable.MediaTimeout = 10 * time.Second
	}

	if c.Contact.Timeout == 0 {
		c.Contact.Timeout = 10 * time.Second
	}
}

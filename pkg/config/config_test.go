package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
server:
  listen: ":9090"
  timeout: 15s
  base_url: https://robostride.example.com
bitable:
  app_id: cli_test123
  app_secret: secret123
  tenant_id: TENANT1
  app_token: bastest
  table_id: tbltest
contact:
  webhook_url: https://hooks.example.com/abc
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Listen)
	assert.Equal(t, 15*time.Second, cfg.Server.Timeout)
	assert.Equal(t, "https://robostride.example.com", cfg.Server.BaseURL)
	assert.Equal(t, "cli_test123", cfg.Bitable.AppID)
	assert.Equal(t, "secret123", cfg.Bitable.AppSecret)
	assert.Equal(t, "TENANT1", cfg.Bitable.TenantID)
	assert.Equal(t, "bastest", cfg.Bitable.AppToken)
	assert.Equal(t, "tbltest", cfg.Bitable.TableID)
	assert.Equal(t, "https://hooks.example.com/abc", cfg.Contact.WebhookURL)
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
bitable:
  app_id: cli_test123
  app_secret: secret123
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Listen)
	assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
	assert.Equal(t, "http://localhost:8080", cfg.Server.BaseURL)
	assert.Equal(t, 100, cfg.Server.PageSize)
	assert.Equal(t, "https://open.feishu.cn", cfg.Bitable.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Bitable.AuthTimeout)
	assert.Equal(t, 20*time.Second, cfg.Bitable.RecordsTimeout)
	assert.Equal(t, 10*time.Second, cfg.Bitable.MediaTimeout)
	assert.Equal(t, 10*time.Second, cfg.Contact.Timeout)
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("TEST_APP_SECRET", "expanded-secret")

	path := writeConfig(t, `
bitable:
  app_id: cli_test123
  app_secret: ${TEST_APP_SECRET}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "expanded-secret", cfg.Bitable.AppSecret)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("does-not-exist.yml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "server: [not a map")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

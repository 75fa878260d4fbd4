package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prenota/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func Test_Load_FullConfig(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 8080
read_timeout = 5
static_dir = "web"

[sheets]
spreadsheet_id = "sheet-123"
slot_range = "Slots!A1:F30"

[logs]
file = "logs/app.log"
level = "debug"

[metrics]
enabled = true
service_name = "prenota-test"

[ratelimit]
enabled = true
rps = 2.5
burst = 4

[cors]
allowed_origins = ["https://example.it"]
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 5, cfg.Server.ReadTimeout)
	assert.Equal(t, "web", cfg.Server.StaticDir)
	assert.Equal(t, "sheet-123", cfg.Sheets.SpreadsheetID)
	assert.Equal(t, "Slots!A1:F30", cfg.Sheets.SlotRange)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "prenota-test", cfg.Metrics.ServiceName)
	assert.Equal(t, 2.5, cfg.RateLimit.RPS)
	assert.Equal(t, []string{"https://example.it"}, cfg.CORS.AllowedOrigins)
}

func Test_Load_DefaultsApply(t *testing.T) {
	path := writeConfig(t, `
[sheets]
spreadsheet_id = "sheet-123"
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.HTTPPort)
	assert.Equal(t, "public", cfg.Server.StaticDir)
	assert.Equal(t, "Slots!A1:F20", cfg.Sheets.SlotRange)
	assert.Equal(t, "Nomi!A2:A", cfg.Sheets.NamesRange)
	assert.Equal(t, "Prenotazioni!A1:C1", cfg.Sheets.BookingsRange)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.False(t, cfg.Metrics.Enabled)
}

func Test_Load_PortEnvOverride(t *testing.T) {
	t.Setenv("PORT", "4000")

	path := writeConfig(t, `
[server]
http_port = 3000

[sheets]
spreadsheet_id = "sheet-123"
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4000, cfg.Server.HTTPPort)
}

func Test_Load_PortEnvOverrideIgnoresGarbage(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	path := writeConfig(t, `
[server]
http_port = 3000

[sheets]
spreadsheet_id = "sheet-123"
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.Server.HTTPPort)
}

func Test_Load_MissingSpreadsheetID(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 3000
`)

	_, err := config.Load(path)
	assert.Error(t, err)
}

func Test_Load_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

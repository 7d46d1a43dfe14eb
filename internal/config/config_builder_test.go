package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_DefaultsOnly(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, DefaultDriver, cfg.Storage.DB.Driver)
	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, DefaultSessionFile, cfg.Session.FilePath)
	assert.Equal(t, DefaultSuggestLength, cfg.Suggest.Length)
}

func TestBuild_EarlierSourceWins(t *testing.T) {
	first := &StructuredConfig{Storage: Storage{DB: DB{Driver: "pgx", DSN: "postgres://localhost/vault"}}}

	b := newConfigBuilder()
	b.configs = append(b.configs, first)
	cfg, err := b.withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, "pgx", cfg.Storage.DB.Driver)
	assert.Equal(t, "postgres://localhost/vault", cfg.Storage.DB.DSN)
	// untouched groups still fall back to defaults
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv(t *testing.T) {
	t.Setenv("STORAGE_DB_DRIVER", "pgx")
	t.Setenv("STORAGE_DB_DSN", "postgres://localhost:5432/vault")
	t.Setenv("SERVER_ADDRESS", "0.0.0.0:9000")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "45s")
	t.Setenv("SESSION_FILE_PATH", "/tmp/session.json")
	t.Setenv("SUGGEST_LENGTH", "20")

	cfg, err := newConfigBuilder().withEnv().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, "pgx", cfg.Storage.DB.Driver)
	assert.Equal(t, "postgres://localhost:5432/vault", cfg.Storage.DB.DSN)
	assert.Equal(t, "0.0.0.0:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "/tmp/session.json", cfg.Session.FilePath)
	assert.Equal(t, 20, cfg.Suggest.Length)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON(t *testing.T) {
	path := writeTempJSON(t, `{
		"storage": {"db": {"driver": "sqlite3", "dsn": "/data/vault.db"}},
		"server": {"http_address": "127.0.0.1:7000", "request_timeout": "1m"},
		"suggest": {"base_url": "https://randommer.io", "api_key": "k", "length": 16}
	}`)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	cfg, err := b.withJSON().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, "/data/vault.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "127.0.0.1:7000", cfg.Server.HTTPAddress)
	assert.Equal(t, time.Minute, cfg.Server.RequestTimeout)
	assert.Equal(t, "k", cfg.Suggest.APIKey)
	assert.Equal(t, 16, cfg.Suggest.Length)
}

func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})
	_, err := b.withJSON().withDefaults().build()
	assert.Error(t, err)
}

func TestWithJSON_NumericTimeout(t *testing.T) {
	// durations may also appear as nanosecond numbers
	path := writeTempJSON(t, `{"server": {"request_timeout": 30000000000}}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	base := func() *StructuredConfig {
		return &StructuredConfig{
			Storage: Storage{DB: DB{Driver: "sqlite3", DSN: "vault.db"}},
			Server:  Server{HTTPAddress: "127.0.0.1:8844", RequestTimeout: 30 * time.Second},
			Suggest: Suggest{Timeout: 10 * time.Second, Length: 12},
		}
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, base().validate())
	})

	t.Run("unsupported driver", func(t *testing.T) {
		cfg := base()
		cfg.Storage.DB.Driver = "mysql"
		assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
	})

	t.Run("empty dsn", func(t *testing.T) {
		cfg := base()
		cfg.Storage.DB.DSN = ""
		assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
	})

	t.Run("no server address", func(t *testing.T) {
		cfg := base()
		cfg.Server.HTTPAddress = ""
		assert.ErrorIs(t, cfg.validate(), ErrInvalidServerConfigs)
	})

	t.Run("bad suggest length", func(t *testing.T) {
		cfg := base()
		cfg.Suggest.Length = 0
		assert.ErrorIs(t, cfg.validate(), ErrInvalidSuggestConfigs)
	})
}

// ── NetAddress ────────────────────────────────────────────────────────────────

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "localhost", input: "localhost:8844", want: "localhost:8844"},
		{name: "ip", input: "127.0.0.1:9000", want: "127.0.0.1:9000"},
		{name: "no port", input: "localhost", wantErr: true},
		{name: "bad port", input: "localhost:abc", wantErr: true},
		{name: "zero port", input: "localhost:0", wantErr: true},
		{name: "bad host", input: "not an ip:8080", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.String())
		})
	}
}

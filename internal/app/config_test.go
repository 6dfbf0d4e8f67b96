package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	path := writeConfig(t, `
sync:
  api-url: "https://memos.example.com/api/v1"
  access-token: "tok"
`)
	c, realpath, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, path, realpath)

	assert.Equal(t, "memos", c.Sync.RootDir)
	assert.Equal(t, "manual", c.Sync.Cadence)
	assert.Equal(t, 30, c.Sync.IntervalMinutes)
	assert.Equal(t, 1000, c.Sync.MaxRecords)
	assert.Equal(t, "localfs", c.Storage.Type)
	assert.Equal(t, "info", c.Log.Level)
	assert.True(t, c.Database.Enabled)

	require.NoError(t, c.Validate())
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestNormalizedAPIURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"already versioned", "https://host/api/v1", "https://host/api/v1"},
		{"other version kept", "https://host/api/v2", "https://host/api/v2"},
		{"bare host appended", "https://host", "https://host/api/v1"},
		{"trailing slash trimmed", "https://host/", "https://host/api/v1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &SyncConfig{APIURL: tt.in}
			assert.Equal(t, tt.want, c.NormalizedAPIURL())
		})
	}
}

func TestValidate(t *testing.T) {
	base := func() *AppConfig {
		path := writeConfig(t, `
sync:
  api-url: "https://memos.example.com"
  access-token: "tok"
`)
		c, _, err := LoadConfig(path)
		require.NoError(t, err)
		return c
	}

	t.Run("valid", func(t *testing.T) {
		require.NoError(t, base().Validate())
	})

	t.Run("missing token", func(t *testing.T) {
		c := base()
		c.Sync.AccessToken = ""
		require.Error(t, c.Validate())
	})

	t.Run("bad cadence", func(t *testing.T) {
		c := base()
		c.Sync.Cadence = "hourly"
		require.Error(t, c.Validate())
	})

	t.Run("bad url", func(t *testing.T) {
		c := base()
		c.Sync.APIURL = "not a url"
		require.Error(t, c.Validate())
	})

	t.Run("bad lifetime", func(t *testing.T) {
		c := base()
		c.Database.ConnMaxLifetime = "soon"
		require.Error(t, c.Validate())
	})
}

func TestInterval(t *testing.T) {
	c := &SyncConfig{IntervalMinutes: 45}
	assert.Equal(t, 45*time.Minute, c.Interval())
}

func TestSaveRoundTrip(t *testing.T) {
	path := writeConfig(t, `
sync:
  api-url: "https://memos.example.com/api/v1"
  access-token: "tok"
`)
	c, _, err := LoadConfig(path)
	require.NoError(t, err)

	c.Sync.RootDir = "notes"
	require.NoError(t, c.Save())

	again, _, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "notes", again.Sync.RootDir)
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dockhand/internal/app/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	return path
}

func Test_DefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, LogLevel, cfg.Logging.Level)
	assert.Equal(t, LogFormat, cfg.Logging.Format)
	assert.Equal(t, ViewerBuffer, cfg.Viewer.Buffer)
	assert.Equal(t, ViewerTail, cfg.Viewer.Tail)
	assert.True(t, cfg.Viewer.Wrap)
	assert.True(t, cfg.Viewer.Autoscroll)
	assert.Equal(t, FlashTimeout, cfg.Viewer.Flash)
	assert.Equal(t, StorePath, cfg.Store.Path)
	assert.Equal(t, ServerAddr, cfg.Server.Addr)
	assert.True(t, cfg.Server.Management)
	assert.NoError(t, cfg.Validate())
}

func Test_LoadFile(t *testing.T) {
	tests := []struct {
		name   string
		path   func(t *testing.T) string
		error  error
		verify func(t *testing.T, cfg *Config)
	}{
		{
			name:  "missing file uses defaults",
			path:  func(t *testing.T) string { return filepath.Join(t.TempDir(), "absent.yaml") },
			error: nil,
			verify: func(t *testing.T, cfg *Config) {
				assert.Equal(t, ViewerBuffer, cfg.Viewer.Buffer)
			},
		},
		{
			name: "valid config file",
			path: func(t *testing.T) string {
				return writeConfig(t, `logging:
  level: DEBUG
  format: json
docker:
  host: unix:///tmp/docker.sock
viewer:
  buffer: 100
  tail: 10
  wrap: false
  flash: 500ms
server:
  addr: 0.0.0.0:8080
  url: http://example.local:8080/
  management: false
notify:
  urls:
    - " generic://hooks.local "
    - ""
`)
			},
			error: nil,
			verify: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, "json", cfg.Logging.Format)
				assert.Equal(t, "unix:///tmp/docker.sock", cfg.Docker.Host)
				assert.Equal(t, 100, cfg.Viewer.Buffer)
				assert.Equal(t, 10, cfg.Viewer.Tail)
				assert.False(t, cfg.Viewer.Wrap)
				assert.True(t, cfg.Viewer.Autoscroll)
				assert.Equal(t, 500*time.Millisecond, cfg.Viewer.Flash)
				assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr)
				assert.Equal(t, "http://example.local:8080", cfg.Server.URL)
				assert.False(t, cfg.Server.Management)
				assert.Equal(t, []string{"generic://hooks.local"}, cfg.Notify.URLs)
			},
		},
		{
			name:  "malformed yaml",
			path:  func(t *testing.T) string { return writeConfig(t, "viewer: [unclosed") },
			error: errors.ErrFailedToParseConfig,
		},
		{
			name:  "wrong type for buffer",
			path:  func(t *testing.T) string { return writeConfig(t, "viewer:\n  buffer: lots\n") },
			error: errors.ErrFailedToParseConfig,
		},
		{
			name:  "zero buffer is invalid",
			path:  func(t *testing.T) string { return writeConfig(t, "viewer:\n  buffer: 0\n") },
			error: errors.ErrInvalidViewerBuffer,
		},
		{
			name:  "empty store path is invalid",
			path:  func(t *testing.T) string { return writeConfig(t, "store:\n  path: \"\"\n") },
			error: errors.ErrStorePathRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadFile(tt.path(t))

			if tt.error != nil {
				assert.Error(t, err)
				assert.ErrorIs(t, err, tt.error)
				assert.Nil(t, cfg)

				return
			}

			require.NoError(t, err)
			tt.verify(t, cfg)
		})
	}
}

func Test_LoadFile_EnvOverride(t *testing.T) {
	t.Setenv("DOCKHAND_SERVER_SECRET", "s3cret")
	t.Setenv("DOCKHAND_VIEWER_TAIL", "42")

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "s3cret", cfg.Server.Secret)
	assert.Equal(t, 42, cfg.Viewer.Tail)
}

func Test_Path(t *testing.T) {
	t.Setenv(EnvConfig, "")
	assert.Equal(t, FileName, Path())

	t.Setenv(EnvConfig, "/etc/dockhand.yaml")
	assert.Equal(t, "/etc/dockhand.yaml", Path())
}

func Test_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *Config)
		error  error
	}{
		{name: "defaults are valid", mutate: func(cfg *Config) {}, error: nil},
		{name: "negative tail", mutate: func(cfg *Config) { cfg.Viewer.Tail = -1 }, error: errors.ErrInvalidViewerTail},
		{name: "negative flash", mutate: func(cfg *Config) { cfg.Viewer.Flash = -time.Second }, error: errors.ErrInvalidFlashDuration},
		{name: "empty server address", mutate: func(cfg *Config) { cfg.Server.Addr = "" }, error: errors.ErrServerAddrRequired},
		{name: "no log streams", mutate: func(cfg *Config) { cfg.Server.Streams = 0 }, error: errors.ErrInvalidServerStreams},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.error == nil {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, tt.error)
		})
	}
}

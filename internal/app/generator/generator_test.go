package generator

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"dockhand/internal/app/errors"
	"dockhand/internal/config"
	"dockhand/internal/config/logger"
)

func newTestGenerator(t *testing.T) (*generator, *bytes.Buffer) {
	t.Helper()

	ctrl := gomock.NewController(t)
	log := logger.NewMockLogger(ctrl)
	log.EXPECT().Info().Return(nil).AnyTimes()

	out := &bytes.Buffer{}

	return &generator{out: out, log: log}, out
}

func Test_Render(t *testing.T) {
	content, err := Render(config.DefaultConfig())
	require.NoError(t, err)

	text := string(content)
	assert.Contains(t, text, "# dockhand configuration")
	assert.Contains(t, text, "# Engine address; empty uses DOCKER_HOST or the default socket\ndocker:")
	assert.Contains(t, text, "flash: 2s")
	assert.Contains(t, text, "buffer: 5000")
	assert.Contains(t, text, "127.0.0.1:9010")
}

func Test_Render_LoadsBack(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Viewer.Flash = 1500 * time.Millisecond
	cfg.Notify.URLs = []string{"slack://a@b"}

	content, err := Render(cfg)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "dockhand.yaml")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	loaded, err := config.LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.Viewer, loaded.Viewer)
	assert.Equal(t, cfg.Server, loaded.Server)
	assert.Equal(t, cfg.Notify.URLs, loaded.Notify.URLs)
}

func Test_Generator_Generate(t *testing.T) {
	tests := []struct {
		name     string
		existing bool
		force    bool
		dryRun   bool
		err      error
		written  bool
		printed  bool
	}{
		{name: "Writes new file", written: true},
		{name: "Refuses to overwrite", existing: true, err: errors.ErrConfigExists},
		{name: "Force overwrites", existing: true, force: true, written: true},
		{name: "Dry run prints", existing: true, dryRun: true, printed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen, out := newTestGenerator(t)
			path := filepath.Join(t.TempDir(), "dockhand.yaml")

			if tt.existing {
				require.NoError(t, os.WriteFile(path, []byte("old: true\n"), 0o600))
			}

			err := gen.Generate(path, tt.force, tt.dryRun)

			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
			} else {
				assert.NoError(t, err)
			}

			content, readErr := os.ReadFile(path)
			if tt.written {
				require.NoError(t, readErr)
				assert.Contains(t, string(content), "viewer:")
			} else if tt.existing {
				assert.Equal(t, "old: true\n", string(content))
			}

			assert.Equal(t, tt.printed, out.Len() > 0)
		})
	}
}

func Test_NewGenerator(t *testing.T) {
	ctrl := gomock.NewController(t)

	assert.NotNil(t, NewGenerator(logger.NewMockLogger(ctrl)))
}

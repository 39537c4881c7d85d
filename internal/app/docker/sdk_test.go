package docker

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/docker/docker/pkg/stdcopy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"dockhand/internal/app/errors"
	"dockhand/internal/config"
	"dockhand/internal/config/logger"
)

type fakeEngine struct {
	tty      bool
	created  map[string]any
	started  string
	logQuery string
}

func (f *fakeEngine) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path

	switch {
	case strings.HasSuffix(path, "/_ping"):
		w.Header().Set("Api-Version", "1.47")
		w.Header().Set("Ostype", "linux")
		_, _ = w.Write([]byte("OK"))

	case strings.HasSuffix(path, "/containers/missing/json"):
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"No such container: missing"}`))

	case strings.HasSuffix(path, "/json") && strings.Contains(path, "/containers/"):
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"Id":     "abc123def4567890",
			"Name":   "/web-1",
			"Config": map[string]any{"Image": "nginx:alpine", "Tty": f.tty},
			"State":  map[string]any{"Status": "running", "Running": true, "Pid": 4242},
		})

	case strings.HasSuffix(path, "/logs"):
		f.logQuery = r.URL.RawQuery

		if f.tty {
			_, _ = w.Write([]byte("raw tty line\n"))
			return
		}

		_, _ = stdcopy.NewStdWriter(w, stdcopy.Stdout).Write([]byte("out line\n"))
		_, _ = stdcopy.NewStdWriter(w, stdcopy.Stderr).Write([]byte("err line\n"))

	case strings.HasSuffix(path, "/containers/create"):
		_ = json.NewDecoder(r.Body).Decode(&f.created)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"Id":"new1234567890abcd","Warnings":[]}`))

	case strings.HasSuffix(path, "/start"):
		f.started = path
		w.WriteHeader(http.StatusNoContent)

	default:
		http.NotFound(w, r)
	}
}

func newTestClient(t *testing.T, engine http.Handler) Client {
	t.Helper()

	server := httptest.NewServer(engine)
	t.Cleanup(server.Close)

	cfg := config.DefaultConfig()
	cfg.Docker.Host = "tcp://" + server.Listener.Addr().String()

	ctrl := gomock.NewController(t)
	log := logger.NewMockLogger(ctrl)
	log.EXPECT().WithComponent("DOCKER").Return(log)
	log.EXPECT().Debug().Return(nil).AnyTimes()
	log.EXPECT().Info().Return(nil).AnyTimes()
	log.EXPECT().Warn().Return(nil).AnyTimes()

	client, err := NewClient(cfg, log)
	require.NoError(t, err)

	t.Cleanup(func() { _ = client.Close() })

	return client
}

func Test_Client_Ping(t *testing.T) {
	client := newTestClient(t, &fakeEngine{})

	assert.NoError(t, client.Ping(context.Background()))
}

func Test_Client_Ping_Unavailable(t *testing.T) {
	server := httptest.NewServer(&fakeEngine{})
	addr := server.Listener.Addr().String()
	server.Close()

	cfg := config.DefaultConfig()
	cfg.Docker.Host = "tcp://" + addr

	ctrl := gomock.NewController(t)
	log := logger.NewMockLogger(ctrl)
	log.EXPECT().WithComponent("DOCKER").Return(log)

	client, err := NewClient(cfg, log)
	require.NoError(t, err)

	err = client.Ping(context.Background())

	assert.ErrorIs(t, err, errors.ErrDockerUnavailable)
}

func Test_Client_Inspect(t *testing.T) {
	client := newTestClient(t, &fakeEngine{})

	ctr, err := client.Inspect(context.Background(), "web-1")

	require.NoError(t, err)
	assert.Equal(t, Container{
		ID:      "abc123def4567890",
		Name:    "web-1",
		Image:   "nginx:alpine",
		State:   "running",
		Running: true,
		PID:     4242,
		TTY:     false,
	}, ctr)
}

func Test_Client_Inspect_NotFound(t *testing.T) {
	client := newTestClient(t, &fakeEngine{})

	_, err := client.Inspect(context.Background(), "missing")

	assert.ErrorIs(t, err, errors.ErrContainerNotFound)
}

func Test_Client_Logs_Multiplexed(t *testing.T) {
	engine := &fakeEngine{}
	client := newTestClient(t, engine)

	stream, err := client.Logs(context.Background(), "web-1", LogsOptions{Tail: 5})
	require.NoError(t, err)

	defer stream.Close()

	stderr := make(chan string, 1)

	go func() {
		b, _ := io.ReadAll(stream.Stderr)
		stderr <- string(b)
	}()

	stdout, err := io.ReadAll(stream.Stdout)
	require.NoError(t, err)

	assert.False(t, stream.TTY)
	assert.Equal(t, "out line\n", string(stdout))
	assert.Equal(t, "err line\n", <-stderr)
	assert.Contains(t, engine.logQuery, "tail=5")
	assert.NotContains(t, engine.logQuery, "follow=1")
}

func Test_Client_Logs_TTY(t *testing.T) {
	engine := &fakeEngine{tty: true}
	client := newTestClient(t, engine)

	stream, err := client.Logs(context.Background(), "web-1", LogsOptions{Tail: -1, Follow: true})
	require.NoError(t, err)

	defer stream.Close()

	stdout, err := io.ReadAll(stream.Stdout)
	require.NoError(t, err)

	stderr, err := io.ReadAll(stream.Stderr)
	require.NoError(t, err)

	assert.True(t, stream.TTY)
	assert.Equal(t, "raw tty line\n", string(stdout))
	assert.Empty(t, stderr)
	assert.Contains(t, engine.logQuery, "tail=all")
	assert.Contains(t, engine.logQuery, "follow=1")
}

func Test_Client_Logs_NotFound(t *testing.T) {
	client := newTestClient(t, &fakeEngine{})

	_, err := client.Logs(context.Background(), "missing", LogsOptions{})

	assert.ErrorIs(t, err, errors.ErrContainerNotFound)
}

func Test_Client_Run(t *testing.T) {
	engine := &fakeEngine{}
	client := newTestClient(t, engine)

	id, err := client.Run(context.Background(), RunSpec{Name: "migrate", Image: "app:latest", Command: "./migrate  up --all"})

	require.NoError(t, err)
	assert.Equal(t, "new1234567890abcd", id)
	assert.Equal(t, "app:latest", engine.created["Image"])
	assert.Equal(t, []any{"./migrate", "up", "--all"}, engine.created["Cmd"])
	assert.Equal(t, map[string]any{Label: "migrate"}, engine.created["Labels"])
	assert.Contains(t, engine.started, "/containers/new1234567890abcd/start")
}

func Test_Client_Run_EmptyImage(t *testing.T) {
	client := newTestClient(t, &fakeEngine{})

	_, err := client.Run(context.Background(), RunSpec{Name: "x", Image: "  "})

	assert.ErrorIs(t, err, errors.ErrEmptyImage)
}

func Test_LogStream_Close(t *testing.T) {
	stream := NewLogStream(strings.NewReader("a"), strings.NewReader(""), false, nil)
	assert.NoError(t, stream.Close())

	r, w := io.Pipe()
	stream = NewLogStream(r, strings.NewReader(""), false, r)
	require.NoError(t, stream.Close())

	_, err := w.Write([]byte("x"))
	assert.Error(t, err)
}

func Test_shortID(t *testing.T) {
	assert.Equal(t, "abc", shortID("abc"))
	assert.Equal(t, "0123456789ab", shortID("0123456789abcdef"))
}

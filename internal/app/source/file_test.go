package source

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"dockhand/internal/app/errors"
	"dockhand/internal/config/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()

	ctrl := gomock.NewController(t)
	log := logger.NewMockLogger(ctrl)
	log.EXPECT().WithComponent(gomock.Any()).Return(log).AnyTimes()
	log.EXPECT().Debug().Return(nil).AnyTimes()
	log.EXPECT().Info().Return(nil).AnyTimes()
	log.EXPECT().Warn().Return(nil).AnyTimes()
	log.EXPECT().Error().Return(nil).AnyTimes()

	return log
}

type collector struct {
	mu    sync.Mutex
	lines []string
}

func (c *collector) emit(line Line) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lines = append(c.lines, line.Message)
}

func (c *collector) snapshot() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]string{}, c.lines...)
}

func writeFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "app.log")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func appendFile(t *testing.T, path, content string) {
	t.Helper()

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	require.NoError(t, err)

	_, err = f.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, f.Close())
}

func Test_tailOffset(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		n        int
		expected int64
	}{
		{name: "Empty file", content: "", n: 3, expected: 0},
		{name: "Zero lines starts at the end", content: "a\nb\n", n: 0, expected: 4},
		{name: "Negative reads everything", content: "a\nb\n", n: -1, expected: 0},
		{name: "Fewer lines than requested", content: "a\nb\n", n: 5, expected: 0},
		{name: "Exact line count", content: "a\nb\n", n: 2, expected: 0},
		{name: "Last line", content: "a\nb\nc\n", n: 1, expected: 4},
		{name: "Last two lines", content: "a\nb\nc\n", n: 2, expected: 2},
		{name: "Unterminated last line counts", content: "a\nb\nc", n: 2, expected: 2},
		{name: "Empty lines count", content: "a\n\n\n", n: 2, expected: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.content)

			f, err := os.Open(path)
			require.NoError(t, err)

			defer f.Close()

			offset, err := tailOffset(f, tt.n)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, offset)
		})
	}
}

func Test_tailOffset_SpansChunks(t *testing.T) {
	line := make([]byte, 1000)
	for i := range line {
		line[i] = 'x'
	}

	var content []byte
	for i := 0; i < 100; i++ {
		content = append(content, line...)
		content = append(content, '\n')
	}

	path := writeFile(t, string(content))

	f, err := os.Open(path)
	require.NoError(t, err)

	defer f.Close()

	offset, err := tailOffset(f, 40)

	require.NoError(t, err)
	assert.Equal(t, int64(60*1001), offset)
}

func Test_FileSource_Open(t *testing.T) {
	path := writeFile(t, "a\n")
	src := NewFileSource(path, 10, false, newTestLogger(t))

	info, err := src.Open(context.Background())

	require.NoError(t, err)
	assert.Equal(t, Info{}, info)
	assert.Equal(t, "app.log", src.Name())
}

func Test_FileSource_Open_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := NewFileSource(dir, 10, false, newTestLogger(t)).Open(context.Background())
	assert.ErrorIs(t, err, errors.ErrNotRegularFile)

	_, err = NewFileSource(filepath.Join(dir, "missing.log"), 10, false, newTestLogger(t)).Open(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func Test_FileSource_StreamTail(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		tail     int
		expected []string
	}{
		{name: "Last lines", content: "one\ntwo\nthree\n", tail: 2, expected: []string{"two", "three"}},
		{name: "Whole file", content: "one\ntwo\n", tail: -1, expected: []string{"one", "two"}},
		{name: "Unterminated line is flushed", content: "one\ntwo", tail: 5, expected: []string{"one", "two"}},
		{name: "CRLF is trimmed", content: "one\r\ntwo\r\n", tail: 5, expected: []string{"one", "two"}},
		{name: "Empty file", content: "", tail: 5, expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := NewFileSource(writeFile(t, tt.content), tt.tail, false, newTestLogger(t))
			_, err := src.Open(context.Background())
			require.NoError(t, err)

			c := &collector{}

			err = src.Stream(context.Background(), c.emit)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, c.lines)
		})
	}
}

func startFollowing(t *testing.T, path string, tail int) (*collector, <-chan error, context.CancelFunc) {
	t.Helper()

	src := NewFileSource(path, tail, true, newTestLogger(t))
	_, err := src.Open(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	c := &collector{}
	done := make(chan error, 1)

	go func() {
		done <- src.Stream(ctx, c.emit)
	}()

	return c, done, cancel
}

func waitLines(t *testing.T, c *collector, expected []string) {
	t.Helper()

	assert.Eventually(t, func() bool {
		return assert.ObjectsAreEqual(expected, c.snapshot())
	}, 3*time.Second, 10*time.Millisecond, "got %v", c.snapshot())
}

func Test_FileSource_FollowsAppends(t *testing.T) {
	path := writeFile(t, "old\nlast\n")
	c, done, cancel := startFollowing(t, path, 1)

	waitLines(t, c, []string{"last"})

	appendFile(t, path, "new one\nnew ")
	waitLines(t, c, []string{"last", "new one"})

	appendFile(t, path, "two\n")
	waitLines(t, c, []string{"last", "new one", "new two"})

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("stream did not stop after cancel")
	}
}

func Test_FileSource_Truncation(t *testing.T) {
	path := writeFile(t, "before one\nbefore two\n")
	c, _, _ := startFollowing(t, path, 10)

	waitLines(t, c, []string{"before one", "before two"})

	require.NoError(t, os.WriteFile(path, []byte("after\n"), 0o644))

	waitLines(t, c, []string{"before one", "before two", "after"})
}

func Test_FileSource_TruncationPastOldSize(t *testing.T) {
	path := writeFile(t, "before one\nbefore two\n")
	c, _, _ := startFollowing(t, path, 10)

	waitLines(t, c, []string{"before one", "before two"})

	require.NoError(t, os.WriteFile(path, []byte("rewritten line that is long\n"), 0o644))

	waitLines(t, c, []string{"before one", "before two", "rewritten line that is long"})
}

func Test_follower_rewritten(t *testing.T) {
	path := writeFile(t, "abc\n")

	file, err := os.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = file.Close() })

	f := &follower{file: file, emit: func(Line) {}}
	require.NoError(t, f.drain())

	rewritten, err := f.rewritten()
	require.NoError(t, err)
	assert.False(t, rewritten)

	appendFile(t, path, "def\n")

	rewritten, err = f.rewritten()
	require.NoError(t, err)
	assert.False(t, rewritten)

	require.NoError(t, os.WriteFile(path, []byte("abcdefgh\n"), 0o644))

	rewritten, err = f.rewritten()
	require.NoError(t, err)
	assert.True(t, rewritten)
}

func Test_FileSource_Removal(t *testing.T) {
	path := writeFile(t, "line\n")
	c, done, _ := startFollowing(t, path, 10)

	waitLines(t, c, []string{"line"})

	require.NoError(t, os.Remove(path))

	select {
	case err := <-done:
		assert.ErrorIs(t, err, errors.ErrFileRemoved)
	case <-time.After(3 * time.Second):
		t.Fatal("stream did not end after removal")
	}
}

func Test_follower_LongLineIsFlushed(t *testing.T) {
	c := &collector{}
	f := &follower{emit: c.emit}

	chunk := make([]byte, 1<<19)
	for i := range chunk {
		chunk[i] = 'z'
	}

	f.consume(chunk)
	assert.Empty(t, c.lines)

	f.consume(chunk)
	assert.Len(t, c.lines, 1)
	assert.Len(t, c.lines[0], 1<<20)
	assert.Empty(t, f.partial)
}

package source

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"dockhand/internal/app/errors"
	"dockhand/internal/app/runtime"
	"dockhand/internal/config"
	"dockhand/internal/config/logger"
)

// FileSource emits the last lines of a file, then follows appends
type FileSource struct {
	path   string
	tail   int
	follow bool
	log    logger.Logger
}

// NewFileSource creates a source for path; a negative tail reads the whole file
func NewFileSource(path string, tail int, follow bool, log logger.Logger) *FileSource {
	return &FileSource{
		path:   path,
		tail:   tail,
		follow: follow,
		log:    log.WithComponent("FILE_SOURCE"),
	}
}

func (s *FileSource) Name() string {
	return filepath.Base(s.path)
}

func (s *FileSource) Open(_ context.Context) (Info, error) {
	abs, err := filepath.Abs(s.path)
	if err != nil {
		return Info{}, err
	}

	info, err := os.Stat(abs)
	if err != nil {
		return Info{}, fmt.Errorf("failed to open %s: %w", s.path, err)
	}

	if !info.Mode().IsRegular() {
		return Info{}, fmt.Errorf("%w: %s", errors.ErrNotRegularFile, s.path)
	}

	s.path = abs

	return Info{}, nil
}

func (s *FileSource) Stream(ctx context.Context, emit func(Line)) error {
	var fsw *fsnotify.Watcher

	// Register before the first read so no append falls between the two
	if s.follow {
		w, err := fsnotify.NewWatcher()
		if err != nil {
			return err
		}
		defer w.Close()

		if err := w.Add(filepath.Dir(s.path)); err != nil {
			return fmt.Errorf("failed to watch %s: %w", s.path, err)
		}

		fsw = w
	}

	file, err := os.Open(s.path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", s.path, err)
	}
	defer file.Close()

	offset, err := tailOffset(file, s.tail)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	f := &follower{file: file, offset: offset, emit: emit}
	if err := f.mark(); err != nil {
		return fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	if err := f.drain(); err != nil {
		return fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	if fsw == nil {
		f.flush()
		return nil
	}

	s.log.Debug().Msgf("Following '%s' from offset %d", s.path, f.offset)

	return s.watch(ctx, fsw, f)
}

func (s *FileSource) watch(ctx context.Context, fsw *fsnotify.Watcher, f *follower) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}

			if filepath.Clean(event.Name) != s.path {
				continue
			}

			if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				f.flush()
				return fmt.Errorf("%w: %s", errors.ErrFileRemoved, s.path)
			}

			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			if err := s.readAppended(f); err != nil {
				return err
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}

			s.log.Error().Err(err).Msgf("Watcher error on '%s'", s.path)
		}
	}
}

func (s *FileSource) readAppended(f *follower) error {
	info, err := f.file.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", s.path, err)
	}

	truncated := info.Size() < f.offset
	if !truncated {
		if truncated, err = f.rewritten(); err != nil {
			return fmt.Errorf("failed to read %s: %w", s.path, err)
		}
	}

	if truncated {
		s.log.Info().Msgf("File '%s' was truncated, reading from the start", s.path)
		f.offset = 0
		f.partial = f.partial[:0]
	}

	if err := f.drain(); err != nil {
		return fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	return nil
}

// follower reads a file from offset, splitting it into lines and holding back an unterminated tail
type follower struct {
	file    *os.File
	offset  int64
	last    byte
	partial []byte
	emit    func(Line)
}

// mark records the byte just before offset
func (f *follower) mark() error {
	if f.offset == 0 {
		return nil
	}

	b := make([]byte, 1)
	if _, err := f.file.ReadAt(b, f.offset-1); err != nil {
		return err
	}

	f.last = b[0]

	return nil
}

// rewritten reports whether the byte before offset changed since it was read,
// which catches a truncation followed by a write past the old size
func (f *follower) rewritten() (bool, error) {
	if f.offset == 0 {
		return false, nil
	}

	b := make([]byte, 1)
	if _, err := f.file.ReadAt(b, f.offset-1); err != nil {
		return false, err
	}

	return b[0] != f.last, nil
}

func (f *follower) drain() error {
	if _, err := f.file.Seek(f.offset, io.SeekStart); err != nil {
		return err
	}

	buf := make([]byte, config.ReadChunkSize)

	for {
		n, err := f.file.Read(buf)
		if n > 0 {
			f.offset += int64(n)
			f.last = buf[n-1]
			f.consume(buf[:n])
		}

		if err == io.EOF {
			return nil
		}

		if err != nil {
			return err
		}
	}
}

func (f *follower) consume(data []byte) {
	for len(data) > 0 {
		i := bytes.IndexByte(data, '\n')
		if i < 0 {
			f.partial = append(f.partial, data...)

			if len(f.partial) >= config.MaxLineSize {
				f.flush()
			}

			return
		}

		line := string(f.partial) + string(data[:i])
		f.partial = f.partial[:0]
		data = data[i+1:]

		f.emit(Line{Stream: runtime.StreamStdout, Message: trimLine(line)})
	}
}

// flush emits the held back partial line, if any
func (f *follower) flush() {
	if len(f.partial) == 0 {
		return
	}

	line := string(f.partial)
	f.partial = f.partial[:0]

	f.emit(Line{Stream: runtime.StreamStdout, Message: trimLine(line)})
}

// tailOffset returns the offset where the last n lines of f begin
func tailOffset(f *os.File, n int) (int64, error) {
	info, err := f.Stat()
	if err != nil {
		return 0, err
	}

	size := info.Size()

	if n < 0 {
		return 0, nil
	}

	if n == 0 || size == 0 {
		return size, nil
	}

	buf := make([]byte, config.ReadChunkSize)
	pos := size
	found := 0

	for pos > 0 {
		chunk := int64(len(buf))
		if pos < chunk {
			chunk = pos
		}

		pos -= chunk

		if _, err := f.ReadAt(buf[:chunk], pos); err != nil && err != io.EOF {
			return 0, err
		}

		for i := chunk - 1; i >= 0; i-- {
			at := pos + i
			if buf[i] != '\n' || at == size-1 {
				continue
			}

			found++
			if found == n {
				return at + 1, nil
			}
		}
	}

	return 0, nil
}

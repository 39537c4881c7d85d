package source

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"

	"dockhand/internal/app/docker"
	"dockhand/internal/app/errors"
	"dockhand/internal/app/runtime"
	"dockhand/internal/config"
	"dockhand/internal/config/logger"
)

// DockerSource follows the logs of one container
type DockerSource struct {
	client docker.Client
	ref    string
	tail   int
	follow bool
	log    logger.Logger

	container docker.Container
}

// NewDockerSource creates a source for the container identified by ref (ID or name)
func NewDockerSource(client docker.Client, ref string, tail int, follow bool, log logger.Logger) *DockerSource {
	return &DockerSource{
		client: client,
		ref:    ref,
		tail:   tail,
		follow: follow,
		log:    log.WithComponent("DOCKER_SOURCE"),
	}
}

func (s *DockerSource) Name() string {
	if s.container.Name != "" {
		return s.container.Name
	}

	return s.ref
}

func (s *DockerSource) Open(ctx context.Context) (Info, error) {
	ctr, err := s.client.Inspect(ctx, s.ref)
	if err != nil {
		return Info{}, err
	}

	s.container = ctr

	if !ctr.Running {
		s.log.Info().Msgf("Container '%s' is %s, showing existing logs", ctr.Name, ctr.State)
		return Info{}, nil
	}

	return Info{PID: ctr.PID}, nil
}

func (s *DockerSource) Stream(ctx context.Context, emit func(Line)) error {
	id := s.container.ID
	if id == "" {
		id = s.ref
	}

	stream, err := s.client.Logs(ctx, id, docker.LogsOptions{Tail: s.tail, Follow: s.follow})
	if err != nil {
		return err
	}

	stop := context.AfterFunc(ctx, func() { stream.Close() })
	defer stop()
	defer stream.Close()

	var (
		mu   sync.Mutex
		wg   sync.WaitGroup
		errs = make([]error, 2)
	)

	locked := func(line Line) {
		mu.Lock()
		defer mu.Unlock()

		emit(line)
	}

	scan := func(i int, r io.Reader, stream string) {
		defer wg.Done()

		errs[i] = scanLines(r, stream, locked)
	}

	wg.Add(2)

	go scan(0, stream.Stdout, runtime.StreamStdout)
	go scan(1, stream.Stderr, runtime.StreamStderr)

	wg.Wait()

	if ctx.Err() != nil {
		return nil
	}

	for _, err := range errs {
		if err != nil && !errors.Is(err, io.ErrClosedPipe) {
			return fmt.Errorf("failed to read logs of %s: %w", s.Name(), err)
		}
	}

	s.log.Debug().Msgf("Log stream of '%s' ended", s.Name())

	return nil
}

func scanLines(r io.Reader, stream string, emit func(Line)) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, config.ReadChunkSize), config.MaxLineSize)

	for scanner.Scan() {
		emit(Line{Stream: stream, Message: trimLine(scanner.Text())})
	}

	return scanner.Err()
}

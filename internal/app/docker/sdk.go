package docker

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	cerrdefs "github.com/containerd/errdefs"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/client"
	"github.com/docker/docker/pkg/stdcopy"

	"dockhand/internal/app/errors"
	"dockhand/internal/config"
	"dockhand/internal/config/logger"
)

type sdkClient struct {
	cli  *client.Client
	host string
	log  logger.Logger
}

var _ Client = (*sdkClient)(nil)

// NewClient creates an engine client for docker.host, falling back to DOCKER_HOST and the default socket
func NewClient(cfg *config.Config, log logger.Logger) (Client, error) {
	opts := []client.Opt{
		client.FromEnv,
		client.WithAPIVersionNegotiation(),
	}

	if cfg.Docker.Host != "" {
		opts = append(opts, client.WithHost(cfg.Docker.Host))
	}

	cli, err := client.NewClientWithOpts(opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrDockerUnavailable, err)
	}

	return &sdkClient{
		cli:  cli,
		host: cli.DaemonHost(),
		log:  log.WithComponent("DOCKER"),
	}, nil
}

func (c *sdkClient) Ping(ctx context.Context) error {
	if _, err := c.cli.Ping(ctx); err != nil {
		return fmt.Errorf("%w at %s: %w", errors.ErrDockerUnavailable, c.host, err)
	}

	return nil
}

func (c *sdkClient) Inspect(ctx context.Context, id string) (Container, error) {
	raw, err := c.cli.ContainerInspect(ctx, id)
	if err != nil {
		return Container{}, c.translate(id, err)
	}

	ctr := Container{
		ID:   raw.ID,
		Name: strings.TrimPrefix(raw.Name, "/"),
	}

	if raw.Config != nil {
		ctr.Image = raw.Config.Image
		ctr.TTY = raw.Config.Tty
	}

	if raw.State != nil {
		ctr.State = string(raw.State.Status)
		ctr.Running = raw.State.Running
		ctr.PID = raw.State.Pid
	}

	return ctr, nil
}

func (c *sdkClient) Logs(ctx context.Context, id string, opts LogsOptions) (*LogStream, error) {
	ctr, err := c.Inspect(ctx, id)
	if err != nil {
		return nil, err
	}

	tail := "all"
	if opts.Tail >= 0 {
		tail = strconv.Itoa(opts.Tail)
	}

	stream, err := c.cli.ContainerLogs(ctx, ctr.ID, container.LogsOptions{
		ShowStdout: true,
		ShowStderr: true,
		Follow:     opts.Follow,
		Tail:       tail,
	})
	if err != nil {
		return nil, c.translate(id, err)
	}

	c.log.Debug().Msgf("Streaming logs of %s (tty=%t, tail=%s)", ctr.Name, ctr.TTY, tail)

	if ctr.TTY {
		return NewLogStream(stream, strings.NewReader(""), true, stream), nil
	}

	// Non-TTY output is multiplexed with 8-byte frame headers
	stdoutR, stdoutW := io.Pipe()
	stderrR, stderrW := io.Pipe()

	go func() {
		_, err := stdcopy.StdCopy(stdoutW, stderrW, stream)
		stream.Close()
		stdoutW.CloseWithError(err)
		stderrW.CloseWithError(err)
	}()

	return NewLogStream(stdoutR, stderrR, false, stream), nil
}

func (c *sdkClient) Run(ctx context.Context, spec RunSpec) (string, error) {
	if strings.TrimSpace(spec.Image) == "" {
		return "", errors.ErrEmptyImage
	}

	cfg := &container.Config{
		Image:  spec.Image,
		Cmd:    strings.Fields(spec.Command),
		Labels: map[string]string{Label: spec.Name},
	}

	created, err := c.cli.ContainerCreate(ctx, cfg, nil, nil, nil, "")
	if err != nil {
		return "", fmt.Errorf("failed to create container from %s: %w", spec.Image, err)
	}

	for _, warning := range created.Warnings {
		c.log.Warn().Msgf("Engine warning for %s: %s", spec.Image, warning)
	}

	if err := c.cli.ContainerStart(ctx, created.ID, container.StartOptions{}); err != nil {
		return "", fmt.Errorf("failed to start container %s: %w", created.ID, err)
	}

	c.log.Info().Msgf("Started container %s from %s", shortID(created.ID), spec.Image)

	return created.ID, nil
}

func (c *sdkClient) Close() error {
	return c.cli.Close()
}

func (c *sdkClient) translate(id string, err error) error {
	switch {
	case cerrdefs.IsNotFound(err):
		return fmt.Errorf("%w: %s", errors.ErrContainerNotFound, id)
	case client.IsErrConnectionFailed(err):
		return fmt.Errorf("%w at %s: %w", errors.ErrDockerUnavailable, c.host, err)
	}

	return err
}

func shortID(id string) string {
	if len(id) > 12 {
		return id[:12]
	}

	return id
}

//go:generate mockgen -source=server.go -destination=server_mock.go -package=api
package api

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync/atomic"

	"dockhand/internal/app/commands"
	"dockhand/internal/app/docker"
	"dockhand/internal/app/notify"
	"dockhand/internal/app/worker"
	"dockhand/internal/config"
	"dockhand/internal/config/logger"
)

// Server serves the command registry and log streams over HTTP
type Server interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	// Addr is the bound address, valid after Start
	Addr() string
	// Errors delivers a failure of the serving loop
	Errors() <-chan error
}

type server struct {
	cfg      *config.Config
	open     commands.Opener
	docker   docker.Client
	notifier notify.Notifier
	auth     *Authenticator
	streams  worker.Pool
	log      logger.Logger

	store    commands.Store
	listener net.Listener
	http     *http.Server
	errs     chan error
	cancel   context.CancelFunc
	running  atomic.Bool
}

// NewServer creates the API server; the store is opened on Start
func NewServer(
	cfg *config.Config,
	open commands.Opener,
	dockerClient docker.Client,
	notifier notify.Notifier,
	auth *Authenticator,
	streams worker.Pool,
	log logger.Logger,
) Server {
	return &server{
		cfg:      cfg,
		open:     open,
		docker:   dockerClient,
		notifier: notifier,
		auth:     auth,
		streams:  streams,
		log:      log.WithComponent("API"),
		errs:     make(chan error, 1),
	}
}

func (s *server) Start(_ context.Context) error {
	store, err := s.open()
	if err != nil {
		return err
	}

	listener, err := net.Listen("tcp", s.cfg.Server.Addr)
	if err != nil {
		store.Close()
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Server.Addr, err)
	}

	// Shutdown does not track hijacked websocket connections, Stop cancels them through the base context
	baseCtx, cancel := context.WithCancel(context.Background())

	s.store = store
	s.listener = listener
	s.cancel = cancel
	s.http = &http.Server{
		BaseContext: func(net.Listener) context.Context { return baseCtx },
		Handler: NewRouter(Deps{
			Store:      store,
			Docker:     s.docker,
			Notifier:   s.notifier,
			Auth:       s.auth,
			Management: s.cfg.Server.Management,
			Tail:       s.cfg.Viewer.Tail,
			Streams:    s.streams,
			StreamWait: config.StreamWait,
			Log:        s.log,
		}),
		ReadHeaderTimeout: config.RequestTimeout,
	}

	s.running.Store(true)

	if !s.auth.Enabled() {
		s.log.Warn().Msg("No server secret configured, authentication is disabled")
	}

	s.log.Info().Msgf("API listening on %s", listener.Addr())

	go func() {
		if err := s.http.Serve(listener); err != nil && err != http.ErrServerClosed {
			s.errs <- err
		}
	}()

	return nil
}

func (s *server) Stop(ctx context.Context) error {
	if !s.running.Swap(false) {
		return nil
	}

	err := s.http.Shutdown(ctx)
	s.cancel()

	if closeErr := s.store.Close(); closeErr != nil && err == nil {
		err = closeErr
	}

	s.log.Info().Msg("API stopped")

	return err
}

func (s *server) Addr() string {
	if s.listener == nil {
		return s.cfg.Server.Addr
	}

	return s.listener.Addr().String()
}

func (s *server) Errors() <-chan error {
	return s.errs
}

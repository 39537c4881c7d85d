package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"dockhand/internal/app/commands"
	"dockhand/internal/app/docker"
	"dockhand/internal/app/errors"
	"dockhand/internal/app/notify"
	"dockhand/internal/app/worker"
	"dockhand/internal/config"
	"dockhand/internal/config/logger"
)

// Deps bundles what the routes need
type Deps struct {
	Store      commands.Store
	Docker     docker.Client
	Notifier   notify.Notifier
	Auth       *Authenticator
	Management bool
	Tail       int
	// Streams bounds concurrent log websockets, StreamWait is how long a request queues for a slot
	Streams    worker.Pool
	StreamWait time.Duration
	Log        logger.Logger
}

// NewRouter builds the API routes
func NewRouter(d Deps) http.Handler {
	h := &handler{
		store:      d.Store,
		docker:     d.Docker,
		notifier:   d.Notifier,
		management: d.Management,
		tail:       d.Tail,
		streams:    d.Streams,
		streamWait: d.StreamWait,
		log:        d.Log,
	}

	if h.streams == nil {
		h.streams = worker.NewPool(config.ServerStreams)
	}

	if h.streamWait <= 0 {
		h.streamWait = config.StreamWait
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(d.Log))

	r.Route("/api", func(r chi.Router) {
		r.With(d.Auth.Restricted).Get("/commands", h.listCommands)
		r.With(d.Auth.Administrator).Post("/commands", h.createCommand)
		r.With(d.Auth.Administrator).Get("/commands/{id}", h.getCommand)
		r.With(d.Auth.Administrator).Put("/commands/{id}", h.updateCommand)
		r.With(d.Auth.Administrator).Delete("/commands/{id}", h.deleteCommand)
		r.With(d.Auth.Administrator).Post("/commands/{id}/run", h.runCommand)
		r.With(d.Auth.Restricted).Get("/containers/{id}/logs", h.streamLogs)
	})

	return r
}

func requestLogger(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			log.Debug().Msgf("%s %s %d %s", r.Method, r.URL.Path, ww.Status(), time.Since(start))
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, commands.ErrorResponse{Err: err.Error()})
}

// statusOf maps domain errors to response codes
func statusOf(err error) int {
	switch {
	case errors.Is(err, errors.ErrCommandNotFound), errors.Is(err, errors.ErrContainerNotFound):
		return http.StatusNotFound
	case errors.Is(err, errors.ErrInvalidCommandID), errors.Is(err, errors.ErrEmptyImage):
		return http.StatusBadRequest
	case errors.Is(err, errors.ErrDockerUnavailable):
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}

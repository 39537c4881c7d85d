package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/go-chi/chi/v5"

	"dockhand/internal/app/errors"
	"dockhand/internal/app/source"
)

// LogMessage is one line pushed over the logs websocket
type LogMessage struct {
	Timestamp time.Time `json:"timestamp"`
	Stream    string    `json:"stream"`
	Message   string    `json:"message"`
}

const maxCloseReason = 120

// streamLogs upgrades to a websocket and follows a container's logs until either side goes away
func (h *handler) streamLogs(w http.ResponseWriter, r *http.Request) {
	tail := h.tail

	if v := r.URL.Query().Get("tail"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, errors.ErrInvalidRequestFormat)
			return
		}

		tail = n
	}

	src := source.NewDockerSource(h.docker, chi.URLParam(r, "id"), tail, true, h.log)

	// Resolve before upgrading so a missing container is a plain 404
	if _, err := src.Open(r.Context()); err != nil {
		h.fail(w, err)
		return
	}

	waitCtx, cancelWait := context.WithTimeout(r.Context(), h.streamWait)
	err := h.streams.Acquire(waitCtx)

	cancelWait()

	if err != nil {
		h.log.Warn().Msgf("No free log stream slot for '%s'", src.Name())
		writeError(w, http.StatusServiceUnavailable, errors.ErrTooManyStreams)

		return
	}
	defer h.streams.Release()

	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		h.log.Warn().Err(err).Msg("Failed to accept websocket")
		return
	}
	defer conn.CloseNow()

	ctx, cancel := context.WithCancel(conn.CloseRead(r.Context()))
	defer cancel()

	h.log.Debug().Msgf("Streaming '%s' to %s", src.Name(), r.RemoteAddr)

	err = src.Stream(ctx, func(line source.Line) {
		if ctx.Err() != nil {
			return
		}

		msg := LogMessage{Timestamp: time.Now(), Stream: line.Stream, Message: line.Message}
		if err := wsjson.Write(ctx, conn, msg); err != nil {
			cancel()
		}
	})
	if err != nil {
		conn.Close(websocket.StatusInternalError, closeReason(err))
		return
	}

	conn.Close(websocket.StatusNormalClosure, "log stream ended")
}

func closeReason(err error) string {
	reason := err.Error()
	if len(reason) > maxCloseReason {
		return reason[:maxCloseReason]
	}

	return reason
}

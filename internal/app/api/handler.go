package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/go-chi/chi/v5"

	"dockhand/internal/app/commands"
	"dockhand/internal/app/docker"
	"dockhand/internal/app/errors"
	"dockhand/internal/app/notify"
	"dockhand/internal/app/worker"
	"dockhand/internal/config/logger"
)

type (
	postCommandRequest struct {
		Name    string `valid:"required"`
		Image   string `valid:"required"`
		Command string `valid:"-"`
	}

	putCommandRequest struct {
		Name    string `valid:"-"`
		Image   string `valid:"-"`
		Command string `valid:"-"`
	}

	// RunResponse is answered when a command was started
	RunResponse struct {
		ContainerID string `json:"ContainerId"`
	}
)

type handler struct {
	store      commands.Store
	docker     docker.Client
	notifier   notify.Notifier
	management bool
	tail       int
	streams    worker.Pool
	streamWait time.Duration
	log        logger.Logger
}

func (h *handler) listCommands(w http.ResponseWriter, r *http.Request) {
	list, err := h.store.Commands(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}

	writeJSON(w, http.StatusOK, list)
}

func (h *handler) createCommand(w http.ResponseWriter, r *http.Request) {
	if !h.managementEnabled(w) {
		return
	}

	var req postCommandRequest
	if !decode(w, r, &req) {
		return
	}

	command := &commands.Command{
		Name:    req.Name,
		Image:   req.Image,
		Command: req.Command,
	}

	if err := h.store.CreateCommand(r.Context(), command); err != nil {
		h.fail(w, err)
		return
	}

	h.log.Info().Msgf("Created command %d '%s'", command.ID, command.Name)
	writeJSON(w, http.StatusOK, commands.CreateResponse{ID: command.ID})

	h.notifier.Notify(notify.EventCreated, quoted(command))
}

func (h *handler) getCommand(w http.ResponseWriter, r *http.Request) {
	command, ok := h.lookup(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, command)
}

func (h *handler) updateCommand(w http.ResponseWriter, r *http.Request) {
	if !h.managementEnabled(w) {
		return
	}

	id, err := commands.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var req putCommandRequest
	if !decode(w, r, &req) {
		return
	}

	command, err := h.store.Command(r.Context(), id)
	if err != nil {
		h.fail(w, err)
		return
	}

	command.Merge(commands.Command{Name: req.Name, Image: req.Image, Command: req.Command})

	if err := h.store.UpdateCommand(r.Context(), id, command); err != nil {
		h.fail(w, err)
		return
	}

	h.log.Info().Msgf("Updated command %d '%s'", command.ID, command.Name)
	writeJSON(w, http.StatusOK, command)

	h.notifier.Notify(notify.EventUpdated, quoted(command))
}

func (h *handler) deleteCommand(w http.ResponseWriter, r *http.Request) {
	if !h.managementEnabled(w) {
		return
	}

	command, ok := h.lookup(w, r)
	if !ok {
		return
	}

	if err := h.store.DeleteCommand(r.Context(), command.ID); err != nil {
		h.fail(w, err)
		return
	}

	h.log.Info().Msgf("Deleted command %d '%s'", command.ID, command.Name)
	w.WriteHeader(http.StatusNoContent)

	h.notifier.Notify(notify.EventDeleted, quoted(command))
}

func (h *handler) runCommand(w http.ResponseWriter, r *http.Request) {
	command, ok := h.lookup(w, r)
	if !ok {
		return
	}

	id, err := h.docker.Run(r.Context(), docker.RunSpec{
		Name:    command.Name,
		Image:   command.Image,
		Command: command.Command,
	})
	if err != nil {
		h.fail(w, err)
		return
	}

	writeJSON(w, http.StatusOK, RunResponse{ContainerID: id})

	h.notifier.Notify(notify.EventStarted, quoted(command))
}

func (h *handler) lookup(w http.ResponseWriter, r *http.Request) (*commands.Command, bool) {
	id, err := commands.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return nil, false
	}

	command, err := h.store.Command(r.Context(), id)
	if err != nil {
		h.fail(w, err)
		return nil, false
	}

	return command, true
}

func (h *handler) managementEnabled(w http.ResponseWriter) bool {
	if !h.management {
		writeError(w, http.StatusServiceUnavailable, errors.ErrManagementDisabled)
		return false
	}

	return true
}

func (h *handler) fail(w http.ResponseWriter, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		h.log.Error().Err(err).Msg("Request failed")
	}

	writeError(w, status, err)
}

// decode reads and validates a JSON body, answering 400 on failure
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, errors.ErrInvalidJSON)
		return false
	}

	if _, err := govalidator.ValidateStruct(v); err != nil {
		writeError(w, http.StatusBadRequest, errors.ErrInvalidRequestFormat)
		return false
	}

	return true
}

func quoted(command *commands.Command) string {
	return fmt.Sprintf("'%s' (%d)", command.Name, command.ID)
}

package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"dockhand/internal/app/errors"
	"dockhand/internal/config"
	"dockhand/internal/config/logger"
)

// ErrorResponse is the body of every failed API call
type ErrorResponse struct {
	Err string `json:"err"`
}

// CreateResponse is the body answered by a successful create
type CreateResponse struct {
	ID CommandID `json:"Id"`
}

type client struct {
	baseURL string
	token   string
	http    *http.Client
	log     logger.Logger
}

// NewClient creates a Service that talks to a running API server at server.url
func NewClient(cfg *config.Config, log logger.Logger) Service {
	return newClient(cfg.Server.URL, cfg.Server.Token, &http.Client{Timeout: config.RequestTimeout}, log)
}

func newClient(baseURL, token string, httpClient *http.Client, log logger.Logger) *client {
	return &client{
		baseURL: baseURL,
		token:   token,
		http:    httpClient,
		log:     log.WithComponent("API_CLIENT"),
	}
}

func (c *client) Command(ctx context.Context, id CommandID) (*Command, error) {
	var command Command
	if err := c.do(ctx, http.MethodGet, commandPath(id), nil, &command); err != nil {
		return nil, err
	}

	return &command, nil
}

func (c *client) Commands(ctx context.Context) ([]Command, error) {
	commands := make([]Command, 0)
	if err := c.do(ctx, http.MethodGet, "/api/commands", nil, &commands); err != nil {
		return nil, err
	}

	return commands, nil
}

func (c *client) CreateCommand(ctx context.Context, command *Command) error {
	var created CreateResponse
	if err := c.do(ctx, http.MethodPost, "/api/commands", command, &created); err != nil {
		return err
	}

	command.ID = created.ID

	return nil
}

func (c *client) UpdateCommand(ctx context.Context, id CommandID, command *Command) error {
	return c.do(ctx, http.MethodPut, commandPath(id), command, nil)
}

func (c *client) DeleteCommand(ctx context.Context, id CommandID) error {
	return c.do(ctx, http.MethodDelete, commandPath(id), nil, nil)
}

func (c *client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader

	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}

		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}

	req.Header.Set("Accept", "application/json")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	c.log.Debug().Msgf("%s %s", method, path)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", c.baseURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return responseError(resp)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

func responseError(resp *http.Response) error {
	var body ErrorResponse
	_ = json.NewDecoder(resp.Body).Decode(&body)

	message := body.Err
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}

	switch resp.StatusCode {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", errors.ErrCommandNotFound, message)
	case http.StatusServiceUnavailable:
		return errors.ErrManagementDisabled
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", errors.ErrUnauthorized, message)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", errors.ErrForbidden, message)
	}

	return fmt.Errorf("%w %d: %s", errors.ErrUnexpectedStatus, resp.StatusCode, message)
}

func commandPath(id CommandID) string {
	return fmt.Sprintf("/api/commands/%d", id)
}

package errors

import (
	"errors"
)

var (
	ErrFailedToReadConfig  = errors.New("failed to read config file")
	ErrFailedToParseConfig = errors.New("failed to parse config file")
	ErrInvalidConfig       = errors.New("invalid configuration")

	ErrInvalidViewerBuffer  = errors.New("viewer buffer must be greater than 0")
	ErrInvalidViewerTail    = errors.New("viewer tail must be greater than 0")
	ErrInvalidFlashDuration = errors.New("viewer flash duration must not be negative")
	ErrStorePathRequired    = errors.New("store path is required")
	ErrServerAddrRequired   = errors.New("server address is required")
	ErrInvalidServerStreams = errors.New("server streams must be greater than 0")

	ErrUnknownCommand     = errors.New("unknown command")
	ErrInvalidCommandID   = errors.New("invalid command identifier")
	ErrCommandNotFound    = errors.New("command not found")
	ErrManagementDisabled = errors.New("Command management is disabled")
	ErrCommandsFailed     = errors.New("one or more commands failed")

	ErrInvalidJSON          = errors.New("invalid JSON payload")
	ErrInvalidRequestFormat = errors.New("invalid request data format")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrForbidden            = errors.New("access denied to resource")
	ErrUnexpectedStatus     = errors.New("unexpected response status")
	ErrInvalidToken         = errors.New("invalid or expired token")
	ErrSecretRequired       = errors.New("server secret is required to issue tokens")
	ErrTooManyStreams       = errors.New("too many log streams, try again later")

	ErrDockerUnavailable = errors.New("docker engine unavailable")
	ErrContainerNotFound = errors.New("container not found")
	ErrEmptyImage        = errors.New("image is required")

	ErrSourceClosed   = errors.New("log source closed")
	ErrFileRemoved    = errors.New("log file removed")
	ErrNotRegularFile = errors.New("not a regular file")

	ErrConfigExists = errors.New("config file already exists, use --force to overwrite")
)

var (
	As  = errors.As
	Is  = errors.Is
	New = errors.New
)

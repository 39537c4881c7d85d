//go:generate mockgen -source=notify.go -destination=notify_mock.go -package=notify
package notify

import (
	"fmt"
	"strings"

	"github.com/containrrr/shoutrrr"

	"dockhand/internal/config"
	"dockhand/internal/config/logger"
)

// Event names announced to the notification channels
const (
	EventCreated = "created"
	EventUpdated = "updated"
	EventDeleted = "deleted"
	EventStarted = "started"
)

// Notifier announces registry changes; delivery failures are logged and never returned
type Notifier interface {
	Notify(event, subject string)
	Enabled() bool
}

type notifier struct {
	urls []string
	send func(url, message string) error
	log  logger.Logger
}

// NewNotifier creates a notifier for notify.urls, sending through shoutrrr
func NewNotifier(cfg *config.Config, log logger.Logger) Notifier {
	return newNotifier(cfg.Notify.URLs, shoutrrr.Send, log)
}

func newNotifier(urls []string, send func(url, message string) error, log logger.Logger) *notifier {
	return &notifier{
		urls: urls,
		send: send,
		log:  log.WithComponent("NOTIFY"),
	}
}

func (n *notifier) Enabled() bool {
	return len(n.urls) > 0
}

func (n *notifier) Notify(event, subject string) {
	if !n.Enabled() {
		return
	}

	message := fmt.Sprintf("%s: command %s %s", config.AppName, subject, event)

	for _, url := range n.urls {
		if err := n.send(url, message); err != nil {
			n.log.Warn().Err(err).Msgf("Failed to notify via %s", service(url))
			continue
		}

		n.log.Debug().Msgf("Notified via %s", service(url))
	}
}

// service returns the scheme of a shoutrrr URL so credentials never reach the log
func service(url string) string {
	if idx := strings.Index(url, "://"); idx > 0 {
		return url[:idx]
	}

	return "unknown"
}

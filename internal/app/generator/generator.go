//go:generate mockgen -source=generator.go -destination=generator_mock.go -package=generator
package generator

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"go.yaml.in/yaml/v3"

	"dockhand/internal/app/errors"
	"dockhand/internal/config"
	"dockhand/internal/config/logger"
)

const header = "# dockhand configuration\n# Every key can be overridden with a DOCKHAND_<SECTION>_<KEY> environment variable\n\n"

var sectionComments = map[string]string{
	"logging": "Log level (debug, info, warn, error) and format (console, json)",
	"docker":  "Engine address; empty uses DOCKER_HOST or the default socket",
	"viewer":  "Log viewer: ring buffer size, initial tail, wrapping, autoscroll and flash duration",
	"store":   "Command registry database used by 'dockhand serve'",
	"server":  "API listen address, client URL, token secret, log stream limit and whether commands may be changed",
	"notify":  "Shoutrrr URLs announced on registry changes, e.g. slack://token@channel",
	"sentry":  "Crash reporting, disabled while dsn is empty",
}

// Generator writes the configuration template
type Generator interface {
	Generate(path string, force bool, dryRun bool) error
}

type generator struct {
	out io.Writer
	log logger.Logger
}

// NewGenerator creates a new generator instance
func NewGenerator(log logger.Logger) Generator {
	return &generator{
		out: os.Stdout,
		log: log,
	}
}

// Generate renders the default configuration to path, or to stdout on a dry run
func (g *generator) Generate(path string, force bool, dryRun bool) error {
	if !dryRun && !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", errors.ErrConfigExists, path)
		}
	}

	content, err := Render(config.DefaultConfig())
	if err != nil {
		return err
	}

	if dryRun {
		_, err := g.out.Write(content)
		return err
	}

	if err := os.WriteFile(path, content, 0o600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	g.log.Info().Msgf("Generated %s", path)

	return nil
}

// Render encodes cfg as commented yaml
func Render(cfg *config.Config) ([]byte, error) {
	var doc yaml.Node
	if err := doc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}

	for i := 0; i+1 < len(doc.Content); i += 2 {
		key, value := doc.Content[i], doc.Content[i+1]
		key.HeadComment = sectionComments[key.Value]

		if key.Value == "viewer" {
			setScalar(value, "flash", cfg.Viewer.Flash.String())
		}
	}

	var buf bytes.Buffer
	buf.WriteString(header)

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(&doc); err != nil {
		return nil, fmt.Errorf("failed to render config: %w", err)
	}

	if err := enc.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// setScalar replaces the value of key in a mapping node with a plain string
func setScalar(mapping *yaml.Node, key, value string) {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			mapping.Content[i+1].Kind = yaml.ScalarNode
			mapping.Content[i+1].Tag = "!!str"
			mapping.Content[i+1].Value = value
		}
	}
}

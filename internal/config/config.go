package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"dockhand/internal/app/errors"
)

// Config represents the application configuration
type Config struct {
	Logging struct {
		Level  string `yaml:"level" mapstructure:"level"`
		Format string `yaml:"format" mapstructure:"format"`
	} `yaml:"logging" mapstructure:"logging"`
	Docker struct {
		Host string `yaml:"host" mapstructure:"host"`
	} `yaml:"docker" mapstructure:"docker"`
	Viewer struct {
		Buffer     int           `yaml:"buffer" mapstructure:"buffer"`
		Tail       int           `yaml:"tail" mapstructure:"tail"`
		Wrap       bool          `yaml:"wrap" mapstructure:"wrap"`
		Autoscroll bool          `yaml:"autoscroll" mapstructure:"autoscroll"`
		Flash      time.Duration `yaml:"flash" mapstructure:"flash"`
	} `yaml:"viewer" mapstructure:"viewer"`
	Store struct {
		Path string `yaml:"path" mapstructure:"path"`
	} `yaml:"store" mapstructure:"store"`
	Server struct {
		Addr       string `yaml:"addr" mapstructure:"addr"`
		URL        string `yaml:"url" mapstructure:"url"`
		Secret     string `yaml:"secret" mapstructure:"secret"`
		Token      string `yaml:"token" mapstructure:"token"`
		Management bool   `yaml:"management" mapstructure:"management"`
		Streams    int    `yaml:"streams" mapstructure:"streams"`
	} `yaml:"server" mapstructure:"server"`
	Notify struct {
		URLs []string `yaml:"urls" mapstructure:"urls"`
	} `yaml:"notify" mapstructure:"notify"`
	Sentry struct {
		DSN         string `yaml:"dsn" mapstructure:"dsn"`
		Environment string `yaml:"environment" mapstructure:"environment"`
	} `yaml:"sentry" mapstructure:"sentry"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Logging.Level = LogLevel
	cfg.Logging.Format = LogFormat

	cfg.Viewer.Buffer = ViewerBuffer
	cfg.Viewer.Tail = ViewerTail
	cfg.Viewer.Wrap = true
	cfg.Viewer.Autoscroll = true
	cfg.Viewer.Flash = FlashTimeout

	cfg.Store.Path = StorePath

	cfg.Server.Addr = ServerAddr
	cfg.Server.URL = ServerURL
	cfg.Server.Management = true
	cfg.Server.Streams = ServerStreams

	cfg.Notify.URLs = []string{}

	return cfg
}

// Path returns the config file location, honouring the DOCKHAND_CONFIG override
func Path() string {
	if p := os.Getenv(EnvConfig); p != "" {
		return p
	}

	return FileName
}

// Load loads the configuration from file and environment
func Load() (*Config, error) {
	return LoadFile(Path())
}

// LoadFile loads the configuration from the given yaml file, falling back to defaults when it does not exist
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindDefaults(v, cfg)

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, errors.ErrFailedToReadConfig
	}

	if err == nil {
		if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
			return nil, errors.ErrFailedToParseConfig
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.ErrFailedToParseConfig
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}

	return cfg, nil
}

// bindDefaults registers every key so AutomaticEnv can override values absent from the file
func bindDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
	v.SetDefault("docker.host", cfg.Docker.Host)
	v.SetDefault("viewer.buffer", cfg.Viewer.Buffer)
	v.SetDefault("viewer.tail", cfg.Viewer.Tail)
	v.SetDefault("viewer.wrap", cfg.Viewer.Wrap)
	v.SetDefault("viewer.autoscroll", cfg.Viewer.Autoscroll)
	v.SetDefault("viewer.flash", cfg.Viewer.Flash)
	v.SetDefault("store.path", cfg.Store.Path)
	v.SetDefault("server.addr", cfg.Server.Addr)
	v.SetDefault("server.url", cfg.Server.URL)
	v.SetDefault("server.secret", cfg.Server.Secret)
	v.SetDefault("server.token", cfg.Server.Token)
	v.SetDefault("server.management", cfg.Server.Management)
	v.SetDefault("server.streams", cfg.Server.Streams)
	v.SetDefault("notify.urls", cfg.Notify.URLs)
	v.SetDefault("sentry.dsn", cfg.Sentry.DSN)
	v.SetDefault("sentry.environment", cfg.Sentry.Environment)
}

// normalize trims values that are commonly pasted with stray whitespace
func (c *Config) normalize() {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Server.URL = strings.TrimRight(strings.TrimSpace(c.Server.URL), "/")

	urls := make([]string, 0, len(c.Notify.URLs))
	for _, u := range c.Notify.URLs {
		if u = strings.TrimSpace(u); u != "" {
			urls = append(urls, u)
		}
	}

	c.Notify.URLs = urls
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateViewer(); err != nil {
		return err
	}

	if c.Store.Path == "" {
		return errors.ErrStorePathRequired
	}

	if c.Server.Addr == "" {
		return errors.ErrServerAddrRequired
	}

	if c.Server.Streams <= 0 {
		return errors.ErrInvalidServerStreams
	}

	return nil
}

// validateViewer validates log viewer settings
func (c *Config) validateViewer() error {
	if c.Viewer.Buffer <= 0 {
		return errors.ErrInvalidViewerBuffer
	}

	if c.Viewer.Tail <= 0 {
		return errors.ErrInvalidViewerTail
	}

	if c.Viewer.Flash < 0 {
		return errors.ErrInvalidFlashDuration
	}

	return nil
}

package state

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/Paintersrp/notes/internal/api"
	"github.com/Paintersrp/notes/internal/config"
	"github.com/Paintersrp/notes/internal/controller"
	"github.com/Paintersrp/notes/internal/locale"
	"github.com/Paintersrp/notes/internal/logging"
)

// State carries the loaded configuration and the components built from it.
// Commands receive it at construction and it is filled in by Load before any
// command runs.
type State struct {
	Config     *config.Config
	Settings   Resolved
	Home       string
	Logger     *slog.Logger
	Messages   locale.Catalog
	Client     *api.Client
	Controller *controller.Controller

	closers []func() error
}

// New returns an empty state for commands to hold until Load runs.
func New() *State {
	return &State{
		Logger:   logging.Discard(),
		Messages: locale.MustLookup(locale.Default),
	}
}

// NewState loads the config at configPath (or the default location when
// empty) and logs to stderr.
func NewState(configPath string) (*State, error) {
	s := New()
	if err := s.Load(configPath, os.Stderr); err != nil {
		return nil, err
	}
	return s, nil
}

// Load reads the config, applies flag and environment overrides from viper
// and builds the logger, API client and controller. Log records go to the
// configured log file or to logOut.
func (s *State) Load(configPath string, logOut io.Writer) error {
	home, err := GetHomeDir()
	if err != nil {
		return err
	}

	cfg, err := LoadConfig(home, configPath)
	if err != nil {
		return err
	}

	settings := Settings()

	messages, err := locale.Lookup(settings.Locale)
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.New(settings.LogLevel, settings.LogFile, logOut)
	if err != nil {
		return err
	}

	opts := []api.Option{
		api.WithTimeout(settings.Timeout),
		api.WithMessages(messages),
		api.WithLogger(logger.With("component", "api")),
	}
	if token := usableToken(settings.Token, time.Now(), logger); token != "" {
		opts = append(opts, api.WithToken(token))
	}

	client := api.NewClient(settings.BaseURL, opts...)

	s.Config = cfg
	s.Settings = settings
	s.Home = home
	s.Logger = logger
	s.Messages = messages
	s.Client = client
	s.Controller = controller.New(client, controller.WithLogger(logger.With("component", "controller")))
	s.closers = append(s.closers, closeLog)

	logger.Debug("state loaded", "config", cfg.Path(), "base_url", settings.BaseURL, "locale", messages.Code)
	return nil
}

// Resolved holds the effective values after flag and environment overrides.
type Resolved struct {
	BaseURL       string
	Timeout       time.Duration
	Locale        string
	ConfirmDelete bool
	LogLevel      string
	LogFile       string
	PreviewStyle  string
	Token         string
	S3Region      string
}

// Settings reads the effective values from viper.
func Settings() Resolved {
	timeout, err := time.ParseDuration(viper.GetString(config.KeyTimeout))
	if err != nil || timeout <= 0 {
		timeout = 10 * time.Second
	}

	return Resolved{
		BaseURL:       strings.TrimRight(viper.GetString(config.KeyBaseURL), "/"),
		Timeout:       timeout,
		Locale:        strings.ToLower(viper.GetString(config.KeyLocale)),
		ConfirmDelete: viper.GetBool(config.KeyConfirmDelete),
		LogLevel:      viper.GetString(config.KeyLogLevel),
		LogFile:       viper.GetString(config.KeyLogFile),
		PreviewStyle:  viper.GetString(config.KeyPreviewStyle),
		Token:         viper.GetString(config.KeyToken),
		S3Region:      viper.GetString(config.KeyS3Region),
	}
}

func usableToken(token string, now time.Time, logger *slog.Logger) string {
	token = strings.TrimSpace(token)
	if token == "" {
		return ""
	}

	expired, err := api.TokenExpired(token, now)
	if err != nil {
		logger.Warn("token is not a JWT, sending it as is", "err", err)
		return token
	}
	if expired {
		logger.Warn("configured token has expired and will not be sent")
		return ""
	}
	return token
}

func GetHomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory. err: %s", err)
	}

	return home, nil
}

// LoadConfig creates the config file on first run and loads it. An explicit
// configPath replaces the default location under home.
func LoadConfig(home, configPath string) (*config.Config, error) {
	if configPath == "" {
		configPath = config.GetConfigPath(home)
	}

	if err := config.EnsureConfigFile(configPath); err != nil {
		return nil, err
	}

	return config.LoadFile(configPath)
}

// Close releases the log file.
func (s *State) Close() error {
	if s == nil {
		return nil
	}

	var errs []error
	for _, c := range s.closers {
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}
	s.closers = nil

	return errors.Join(errs...)
}

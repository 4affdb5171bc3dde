package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/Paintersrp/notes/internal/constants"
	"github.com/Paintersrp/notes/internal/locale"
)

// Config is the persisted client configuration.
type Config struct {
	BaseURL       string `yaml:"base_url"                 json:"base_url"`
	Timeout       string `yaml:"timeout"                  json:"timeout"`
	Locale        string `yaml:"locale"                   json:"locale"`
	ConfirmDelete *bool  `yaml:"confirm_delete,omitempty" json:"confirm_delete"`
	LogLevel      string `yaml:"log_level"                json:"log_level"`
	LogFile       string `yaml:"log_file,omitempty"       json:"log_file"`
	PreviewStyle  string `yaml:"preview_style"            json:"preview_style"`
	Token         string `yaml:"token,omitempty"          json:"token"`
	S3Region      string `yaml:"s3_region,omitempty"      json:"s3_region"`

	path string `yaml:"-"`
}

const (
	KeyBaseURL       = "base_url"
	KeyTimeout       = "timeout"
	KeyLocale        = "locale"
	KeyConfirmDelete = "confirm_delete"
	KeyLogLevel      = "log_level"
	KeyLogFile       = "log_file"
	KeyPreviewStyle  = "preview_style"
	KeyToken         = "token"
	KeyS3Region      = "s3_region"
)

var ValidLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Keys lists every settable key in a stable order.
func Keys() []string {
	keys := []string{
		KeyBaseURL,
		KeyTimeout,
		KeyLocale,
		KeyConfirmDelete,
		KeyLogLevel,
		KeyLogFile,
		KeyPreviewStyle,
		KeyToken,
		KeyS3Region,
	}
	sort.Strings(keys)
	return keys
}

func defaults() *Config {
	confirm := true
	return &Config{
		BaseURL:       constants.DefaultBaseURL,
		Timeout:       constants.DefaultTimeout,
		Locale:        locale.Default,
		ConfirmDelete: &confirm,
		LogLevel:      "info",
		PreviewStyle:  constants.DefaultPreviewStyle,
	}
}

func (cfg *Config) ensureDefaults() {
	d := defaults()
	if strings.TrimSpace(cfg.BaseURL) == "" {
		cfg.BaseURL = d.BaseURL
	}
	if strings.TrimSpace(cfg.Timeout) == "" {
		cfg.Timeout = d.Timeout
	}
	if strings.TrimSpace(cfg.Locale) == "" {
		cfg.Locale = d.Locale
	}
	if cfg.ConfirmDelete == nil {
		cfg.ConfirmDelete = d.ConfirmDelete
	}
	if strings.TrimSpace(cfg.LogLevel) == "" {
		cfg.LogLevel = d.LogLevel
	}
	if strings.TrimSpace(cfg.PreviewStyle) == "" {
		cfg.PreviewStyle = d.PreviewStyle
	}
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
}

// Load reads the config file under home.
func Load(home string) (*Config, error) {
	return LoadFile(GetConfigPath(home))
}

// LoadFile reads the config file at path. An empty file yields the defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if len(strings.TrimSpace(string(data))) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	cfg.path = path
	cfg.ensureDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.syncViper()
	return cfg, nil
}

// Validate checks every value that has a closed set of options.
func (cfg *Config) Validate() error {
	if _, err := locale.Lookup(cfg.Locale); err != nil {
		return &KeyError{Key: KeyLocale, Value: cfg.Locale, Err: err}
	}
	if _, err := time.ParseDuration(cfg.Timeout); err != nil {
		return &KeyError{Key: KeyTimeout, Value: cfg.Timeout, Err: err}
	}
	if !ValidLogLevels[cfg.LogLevel] {
		return &KeyError{
			Key:   KeyLogLevel,
			Value: cfg.LogLevel,
			Err:   fmt.Errorf("choose from 'debug', 'info', 'warn', or 'error'"),
		}
	}
	if _, ok := glamour.DefaultStyles[cfg.PreviewStyle]; !ok {
		return &KeyError{
			Key:   KeyPreviewStyle,
			Value: cfg.PreviewStyle,
			Err:   fmt.Errorf("unknown glamour style"),
		}
	}
	if !strings.HasPrefix(cfg.BaseURL, "http://") && !strings.HasPrefix(cfg.BaseURL, "https://") {
		return &KeyError{
			Key:   KeyBaseURL,
			Value: cfg.BaseURL,
			Err:   fmt.Errorf("must be an http or https URL"),
		}
	}
	return nil
}

// syncViper registers the file values as viper defaults so flags and
// NOTES_* environment variables take precedence.
func (cfg *Config) syncViper() {
	viper.SetDefault(KeyBaseURL, cfg.BaseURL)
	viper.SetDefault(KeyTimeout, cfg.Timeout)
	viper.SetDefault(KeyLocale, cfg.Locale)
	viper.SetDefault(KeyConfirmDelete, cfg.ShouldConfirmDelete())
	viper.SetDefault(KeyLogLevel, cfg.LogLevel)
	viper.SetDefault(KeyLogFile, cfg.LogFile)
	viper.SetDefault(KeyPreviewStyle, cfg.PreviewStyle)
	viper.SetDefault(KeyToken, cfg.Token)
	viper.SetDefault(KeyS3Region, cfg.S3Region)
}

// TimeoutDuration returns the HTTP timeout.
func (cfg *Config) TimeoutDuration() time.Duration {
	d, err := time.ParseDuration(cfg.Timeout)
	if err != nil {
		d, _ = time.ParseDuration(constants.DefaultTimeout)
	}
	return d
}

func (cfg *Config) ShouldConfirmDelete() bool {
	return cfg.ConfirmDelete == nil || *cfg.ConfirmDelete
}

// Path returns the file the config was loaded from.
func (cfg *Config) Path() string {
	if cfg.path != "" {
		return cfg.path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return GetConfigPath(homeDir)
}

// Get returns the value of key as text.
func (cfg *Config) Get(key string) (string, error) {
	switch key {
	case KeyBaseURL:
		return cfg.BaseURL, nil
	case KeyTimeout:
		return cfg.Timeout, nil
	case KeyLocale:
		return cfg.Locale, nil
	case KeyConfirmDelete:
		return strconv.FormatBool(cfg.ShouldConfirmDelete()), nil
	case KeyLogLevel:
		return cfg.LogLevel, nil
	case KeyLogFile:
		return cfg.LogFile, nil
	case KeyPreviewStyle:
		return cfg.PreviewStyle, nil
	case KeyToken:
		return cfg.Token, nil
	case KeyS3Region:
		return cfg.S3Region, nil
	default:
		return "", unknownKey(key)
	}
}

// Set validates value and stores it under key. The old value is kept when
// validation fails. Call Save to persist.
func (cfg *Config) Set(key, value string) error {
	next := *cfg
	value = strings.TrimSpace(value)

	switch key {
	case KeyBaseURL:
		next.BaseURL = strings.TrimRight(value, "/")
	case KeyTimeout:
		next.Timeout = value
	case KeyLocale:
		next.Locale = strings.ToLower(value)
	case KeyConfirmDelete:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return &KeyError{Key: key, Value: value, Err: err}
		}
		next.ConfirmDelete = &b
	case KeyLogLevel:
		next.LogLevel = strings.ToLower(value)
	case KeyLogFile:
		next.LogFile = value
	case KeyPreviewStyle:
		next.PreviewStyle = value
	case KeyToken:
		next.Token = value
	case KeyS3Region:
		next.S3Region = value
	default:
		return unknownKey(key)
	}

	if err := next.Validate(); err != nil {
		return err
	}

	*cfg = next
	return nil
}

// Save writes the config back to its file.
func (cfg *Config) Save() error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	cfg.syncViper()

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	configPath := cfg.Path()
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o600)
}

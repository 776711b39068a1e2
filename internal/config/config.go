package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// configFileName is looked up in the working directory and then in the
// user config dir.
const configFileName = "quizbox.yaml"

// flagKeys maps config keys to the command-line flags that override them.
var flagKeys = map[string]string{
	"log.level": "log-level",
	"log.file":  "log-file",
}

// EnvProduction selects the production logger configuration.
const EnvProduction = "production"

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env string `mapstructure:"env"` // development or production
	Log Log    `mapstructure:"log"`
	UI  UI     `mapstructure:"ui"`
}

// Log contains logging configuration.
type Log struct {
	Level string `mapstructure:"level"` // zap level name
	File  string `mapstructure:"file"`  // log file path; empty means the default state dir
}

// UI contains terminal UI configuration.
type UI struct {
	AltScreen bool `mapstructure:"alt_screen"` // run full-screen
}

// Load reads configuration from the given file (or the first quizbox.yaml
// found in the default search paths when path is empty), QUIZBOX_* environment
// variables and, when flags is non-nil, the --log-level and --log-file flags.
// Precedence is flag, env, file, default.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	// A missing .env is fine.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		v.SetConfigFile(path)
		if filepath.Ext(path) == "" {
			v.SetConfigType("yaml")
		}
	}

	v.SetDefault("env", "development")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("ui.alt_screen", true)

	v.SetEnvPrefix("quizbox")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for key, name := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if path != "" {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that configured values are usable.
func (c *Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}
	return nil
}

// IsProduction reports whether the production environment is selected.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, EnvProduction)
}

// LogPath resolves the log file path in priority order:
// 1. log.file from config / QUIZBOX_LOG_FILE
// 2. $XDG_STATE_HOME/quizbox/quizbox.log
// 3. ~/.local/state/quizbox/quizbox.log
func (c *Config) LogPath() (string, error) {
	if c.Log.File != "" {
		return c.Log.File, ensureDir(c.Log.File)
	}

	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		stateHome = filepath.Join(home, ".local", "state")
	}

	p := filepath.Join(stateHome, "quizbox", "quizbox.log")
	return p, ensureDir(p)
}

// findConfigFile returns the first existing quizbox.yaml in the search
// paths, or "" if there is none.
func findConfigFile() string {
	candidates := []string{configFileName}
	if dir, err := configDir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, configFileName))
	}
	for _, c := range candidates {
		if fi, err := os.Stat(c); err == nil && fi.Mode().IsRegular() {
			return c
		}
	}
	return ""
}

func configDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "quizbox"), nil
}

// ensureDir creates the parent directory of path if it doesn't exist.
func ensureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}

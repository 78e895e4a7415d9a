package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	// StrategyBackup copies the input aside and restores it if the rewrite fails.
	StrategyBackup = "backup"
	// StrategyRename writes a fresh file and only renames it into place on success.
	StrategyRename = "rename"
)

// Config captures defaults the command line can override.
// Strategy: recovery policy on failure, "backup" or "rename".
// BackupDir: where the backup copy lives; empty means the system temp directory.
// LogLevel: "debug", "info", "warn" or "error".
// PreviewCues: how many cues the --preview summary shows.
type Config struct {
	LoadedFromFile bool   `json:"loadedFromFile"`
	Strategy       string `json:"strategy"`
	BackupDir      string `json:"backupDir"`
	LogLevel       string `json:"logLevel"`
	PreviewCues    int    `json:"previewCues"`
}

// Default is used for anything neither the file nor the environment sets.
func Default() Config {
	return Config{
		Strategy:    StrategyBackup,
		LogLevel:    "info",
		PreviewCues: 20,
	}
}

// Load reads a JSON config file, then a .env file, then SUBS_* environment
// variables, each overriding the last. Missing files are not an error.
func Load(path, envFile string) (Config, error) {
	conf := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &conf); err != nil {
			return conf, fmt.Errorf("unmarshal config %s: %w", path, err)
		}
		conf.LoadedFromFile = true
	case !errors.Is(err, fs.ErrNotExist):
		return conf, fmt.Errorf("read config: %w", err)
	}

	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return conf, fmt.Errorf("load %s: %w", envFile, err)
	}

	if v, ok := os.LookupEnv("SUBS_STRATEGY"); ok {
		conf.Strategy = v
	}
	if v, ok := os.LookupEnv("SUBS_BACKUP_DIR"); ok {
		conf.BackupDir = v
	}
	if v, ok := os.LookupEnv("SUBS_LOG_LEVEL"); ok {
		conf.LogLevel = v
	}
	if v, ok := os.LookupEnv("SUBS_PREVIEW_CUES"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return conf, fmt.Errorf("SUBS_PREVIEW_CUES: %w", err)
		}
		conf.PreviewCues = n
	}

	return conf, conf.Validate()
}

func (c Config) Validate() error {
	switch c.Strategy {
	case StrategyBackup, StrategyRename:
	default:
		return fmt.Errorf("unknown strategy %q (expected %s or %s)", c.Strategy, StrategyBackup, StrategyRename)
	}
	if c.PreviewCues < 0 {
		return fmt.Errorf("previewCues must not be negative, got %d", c.PreviewCues)
	}
	return nil
}

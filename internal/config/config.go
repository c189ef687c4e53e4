package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	FileName     = "cartd.yaml"
	EnvConfig    = "CARTD_CONFIG"
	DefaultStore = "sqlite"
)

type RuntimeConfig struct {
	DataDir          string        `yaml:"data_dir"`
	StoreBackend     string        `yaml:"store"`
	DBPath           string        `yaml:"db_path"`
	RecipeAPIBaseURL string        `yaml:"recipe_api_base_url"`
	RecipeTimeout    time.Duration `yaml:"recipe_timeout"`
	MaxHistoryItems  int           `yaml:"max_history_items"`
	LogFile          string        `yaml:"log_file"`
	LogLevel         string        `yaml:"log_level"`
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		DataDir:          defaultDataDir(),
		StoreBackend:     DefaultStore,
		RecipeAPIBaseURL: "https://www.themealdb.com/api/json/v1/1",
		RecipeTimeout:    8 * time.Second,
		MaxHistoryItems:  1000,
		LogLevel:         "info",
	}
}

func defaultDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil && dir != "" {
		return filepath.Join(dir, "cartd")
	}
	return ".cartd"
}

// Load layers defaults, the YAML file, .env and CARTD_* variables, in that
// order. An explicit path must exist; the implicit locations are optional.
func Load(path string) (RuntimeConfig, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return RuntimeConfig{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := DefaultRuntimeConfig()
	explicit := strings.TrimSpace(path)
	if explicit == "" {
		explicit = strings.TrimSpace(os.Getenv(EnvConfig))
	}
	if explicit != "" {
		fileCfg, err := LoadFile(explicit, cfg)
		if err != nil {
			return RuntimeConfig{}, err
		}
		cfg = fileCfg
	} else {
		dataDir := cfg.DataDir
		if v, ok := getEnvString("CARTD_DATA_DIR"); ok {
			dataDir = v
		}
		for _, candidate := range []string{FileName, filepath.Join(dataDir, FileName)} {
			fileCfg, err := LoadFile(candidate, cfg)
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			if err != nil {
				return RuntimeConfig{}, err
			}
			cfg = fileCfg
			break
		}
	}

	cfg = RuntimeConfigFromEnv(cfg)
	cfg = cfg.Resolve()
	if err := cfg.Validate(); err != nil {
		return RuntimeConfig{}, err
	}
	return cfg, nil
}

// LoadFile decodes the YAML file at path over base.
func LoadFile(path string, base RuntimeConfig) (RuntimeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RuntimeConfig{}, err
	}
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RuntimeConfig{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v, ok := getEnvString("CARTD_DATA_DIR"); ok {
		cfg.DataDir = v
	}
	if v, ok := getEnvString("CARTD_STORE"); ok {
		cfg.StoreBackend = strings.ToLower(v)
	}
	if v, ok := getEnvString("CARTD_DB_PATH"); ok {
		cfg.DBPath = v
	}
	if v, ok := getEnvString("CARTD_RECIPE_API_BASE_URL"); ok {
		cfg.RecipeAPIBaseURL = v
	}
	if v, ok := getEnvDuration("CARTD_RECIPE_TIMEOUT"); ok && v > 0 {
		cfg.RecipeTimeout = v
	}
	if v, ok := getEnvInt("CARTD_MAX_HISTORY_ITEMS"); ok && v > 0 {
		cfg.MaxHistoryItems = v
	}
	if v, ok := getEnvString("CARTD_LOG_FILE"); ok {
		cfg.LogFile = v
	}
	if v, ok := getEnvString("CARTD_LOG_LEVEL"); ok {
		cfg.LogLevel = strings.ToLower(v)
	}
	return cfg
}

// Resolve fills paths derived from DataDir.
func (c RuntimeConfig) Resolve() RuntimeConfig {
	if strings.TrimSpace(c.DataDir) == "" {
		c.DataDir = defaultDataDir()
	}
	if strings.TrimSpace(c.DBPath) == "" {
		c.DBPath = derivedDBPath(c.DataDir, c.StoreBackend)
	}
	if strings.TrimSpace(c.LogFile) == "" {
		c.LogFile = derivedLogFile(c.DataDir)
	}
	return c
}

// Override applies command line flags on a resolved config. Paths that were
// derived from the previous data dir or backend are derived again.
func (c RuntimeConfig) Override(dataDir, store string) RuntimeConfig {
	prev := c
	if v := strings.TrimSpace(dataDir); v != "" {
		c.DataDir = v
	}
	if v := strings.TrimSpace(store); v != "" {
		c.StoreBackend = strings.ToLower(v)
	}
	if c.DBPath == derivedDBPath(prev.DataDir, prev.StoreBackend) {
		c.DBPath = ""
	}
	if c.LogFile == derivedLogFile(prev.DataDir) {
		c.LogFile = ""
	}
	return c.Resolve()
}

func derivedDBPath(dataDir, backend string) string {
	if backend == "json" {
		return filepath.Join(dataDir, "store")
	}
	return filepath.Join(dataDir, "cartd.db")
}

func derivedLogFile(dataDir string) string {
	return filepath.Join(dataDir, "cartd.log")
}

func (c RuntimeConfig) Validate() error {
	switch c.StoreBackend {
	case "sqlite", "json", "memory":
	default:
		return fmt.Errorf("config: unknown store backend %q", c.StoreBackend)
	}
	if c.MaxHistoryItems <= 0 {
		return fmt.Errorf("config: max_history_items must be positive, got %d", c.MaxHistoryItems)
	}
	if c.RecipeTimeout <= 0 {
		return fmt.Errorf("config: recipe_timeout must be positive, got %s", c.RecipeTimeout)
	}
	return nil
}

func getEnvString(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	return raw, raw != ""
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

// getEnvDuration accepts Go durations ("5s") or plain seconds ("5").
func getEnvDuration(name string) (time.Duration, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	if secs, err := strconv.Atoi(raw); err == nil {
		return time.Duration(secs) * time.Second, true
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, false
	}
	return d, true
}

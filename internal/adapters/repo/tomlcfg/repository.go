package tomlcfg

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bnema/peon-ping-cli/internal/domain"
	"github.com/bnema/peon-ping-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	settingsName    = "settings"
	settingsType    = "toml"
	configPathKey   = "config.path"
	configFileMode  = 0o600
	configDirMode   = 0o700
	configFileName  = "config.toml"
	tempFilePattern = ".config-*.toml.tmp"
)

// Repository persists the user configuration as config.toml inside the hooks
// directory. An optional settings.toml in the same directory can relocate it
// via the config.path key.
type Repository struct {
	configPath string
	mu         *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.ConfigRepository = (*Repository)(nil)

func NewRepository(cfg *viper.Viper, hooksDir string) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	defaultPath := filepath.Join(hooksDir, configFileName)

	cfg.SetConfigName(settingsName)
	cfg.SetConfigType(settingsType)
	cfg.AddConfigPath(hooksDir)
	cfg.SetDefault(configPathKey, defaultPath)

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read settings file: %w", err)
		}
	}

	configPath := cfg.GetString(configPathKey)
	if configPath == "" {
		return nil, errors.New("config path is empty")
	}
	configPath, err := normalizeConfigPath(configPath)
	if err != nil {
		return nil, err
	}

	return &Repository{configPath: configPath, mu: lockForPath(configPath)}, nil
}

// Load reads the configuration. A missing or unparseable file yields the
// default configuration, never an error.
func (r *Repository) Load(ctx context.Context) (domain.Config, error) {
	if err := ctx.Err(); err != nil {
		return domain.Config{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	data, err := os.ReadFile(r.configPath)
	if err != nil {
		return domain.DefaultConfig(), nil
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return domain.DefaultConfig(), nil
	}
	file.applyDefaults()

	return fromSchema(file), nil
}

func (r *Repository) Save(ctx context.Context, cfg domain.Config) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file := toSchema(cfg)
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.configPath), configDirMode); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode config file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.configPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp config file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp config file: %w", err)
	}

	if err := tempFile.Chmod(configFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp config file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp config file: %w", err)
	}

	if err := os.Rename(tempName, r.configPath); err != nil {
		return fmt.Errorf("replace config file: %w", err)
	}

	cleanup = false
	return nil
}

func normalizeConfigPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

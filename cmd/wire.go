package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/peon-ping-cli/internal/adapters/audio"
	"github.com/bnema/peon-ping-cli/internal/adapters/notify"
	"github.com/bnema/peon-ping-cli/internal/adapters/packs"
	"github.com/bnema/peon-ping-cli/internal/adapters/repo/statefile"
	"github.com/bnema/peon-ping-cli/internal/adapters/repo/tomlcfg"
	"github.com/bnema/peon-ping-cli/internal/adapters/update"
	"github.com/bnema/peon-ping-cli/internal/application"
	"github.com/bnema/peon-ping-cli/internal/ports"
	"github.com/spf13/viper"
)

const pausedFileName = ".paused"

type app struct {
	hooksDir   string
	dispatcher *application.Dispatcher
	configRepo ports.ConfigRepository
	packRepo   ports.PackRepository
	player     ports.SoundPlayer
	notifier   ports.Notifier
	updates    *update.Checker
}

func wireApp() (*app, error) {
	hooksDir, err := resolveHooksDir()
	if err != nil {
		return nil, err
	}

	configRepo, err := tomlcfg.NewRepository(viper.New(), hooksDir)
	if err != nil {
		return nil, fmt.Errorf("wire config repository: %w", err)
	}

	stateRepo := statefile.NewRepository(hooksDir)
	packRepo := packs.NewRepository(filepath.Join(hooksDir, "packs"))

	return &app{
		hooksDir:   hooksDir,
		dispatcher: application.NewDispatcher(configRepo, stateRepo, packRepo, ports.SystemClock{}, ports.SystemRand{}),
		configRepo: configRepo,
		packRepo:   packRepo,
		player:     audio.NewPlayer(),
		notifier:   notify.NewDesktopNotifier(),
		updates:    update.NewChecker(hooksDir, envOrDefault("PEON_VERSION_URL", update.DefaultVersionURL), nil, ports.SystemClock{}),
	}, nil
}

// resolveHooksDir honors the CLAUDE_PEON_DIR override used by the installer
// and the test suite.
func resolveHooksDir() (string, error) {
	if dir := os.Getenv("CLAUDE_PEON_DIR"); dir != "" {
		return dir, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(homeDir, ".claude", "hooks", "peon-ping"), nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func (a *app) pausedPath() string {
	return filepath.Join(a.hooksDir, pausedFileName)
}

// paused reports whether the pause marker exists. Its presence is the sole
// truth; the content is never read.
func (a *app) paused() bool {
	_, err := os.Stat(a.pausedPath())
	return err == nil
}

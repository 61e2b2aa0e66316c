package statefile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/peon-ping-cli/internal/domain"
	"github.com/bnema/peon-ping-cli/internal/ports"
)

const (
	stateFileName   = ".state.json"
	stateFileMode   = 0o600
	stateDirMode    = 0o700
	tempFilePattern = ".state-*.json.tmp"
)

// Repository persists the session state document as a single JSON object,
// rewritten wholesale on every save.
type Repository struct {
	statePath string
}

var _ ports.StateRepository = (*Repository)(nil)

func NewRepository(hooksDir string) *Repository {
	return &Repository{statePath: filepath.Join(hooksDir, stateFileName)}
}

type stateSchema struct {
	AgentSessions    []string             `json:"agent_sessions,omitempty"`
	SessionPacks     map[string]string    `json:"session_packs,omitempty"`
	PromptTimestamps map[string][]float64 `json:"prompt_timestamps,omitempty"`
	LastPlayed       map[string]string    `json:"last_played,omitempty"`
}

// Load reads the state document. Missing or corrupt files yield an empty
// document, never an error.
func (r *Repository) Load(ctx context.Context) (domain.State, error) {
	if err := ctx.Err(); err != nil {
		return domain.State{}, err
	}

	data, err := os.ReadFile(r.statePath)
	if err != nil {
		return domain.State{}, nil
	}

	var file stateSchema
	if err := json.Unmarshal(data, &file); err != nil {
		return domain.State{}, nil
	}

	return domain.State{
		AgentSessions:    file.AgentSessions,
		SessionPacks:     file.SessionPacks,
		PromptTimestamps: file.PromptTimestamps,
		LastPlayed:       file.LastPlayed,
	}, nil
}

func (r *Repository) Save(ctx context.Context, state domain.State) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	file := stateSchema{
		AgentSessions:    state.AgentSessions,
		SessionPacks:     state.SessionPacks,
		PromptTimestamps: state.PromptTimestamps,
		LastPlayed:       state.LastPlayed,
	}

	data, err := json.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode state file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(r.statePath), stateDirMode); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.statePath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp state file: %w", err)
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
		return fmt.Errorf("write temp state file: %w", err)
	}

	if err := tempFile.Chmod(stateFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp state file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp state file: %w", err)
	}

	if err := os.Rename(tempName, r.statePath); err != nil {
		return fmt.Errorf("replace state file: %w", err)
	}

	cleanup = false
	return nil
}

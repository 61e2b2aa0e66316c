package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/bnema/peon-ping-cli/internal/adapters/term"
	"github.com/bnema/peon-ping-cli/internal/domain"
	"github.com/spf13/cobra"
)

// graceDelay gives fire-and-forget child processes a moment to start before
// the hook exits. The harness enforces the overall timeout.
const graceDelay = 100 * time.Millisecond

// hookPayload is the hook JSON the assistant harness writes to stdin.
type hookPayload struct {
	HookEventName    string `json:"hook_event_name"`
	NotificationType string `json:"notification_type"`
	CWD              string `json:"cwd"`
	SessionID        string `json:"session_id"`
	PermissionMode   string `json:"permission_mode"`
}

// runHook handles one hook invocation. It exits cleanly on any malformed or
// unknown input: a hook must never fail the harness that called it.
func runHook(cmd *cobra.Command, app *app) error {
	input, err := io.ReadAll(cmd.InOrStdin())
	if err != nil || len(strings.TrimSpace(string(input))) == 0 {
		return nil
	}

	var payload hookPayload
	if err := json.Unmarshal(input, &payload); err != nil {
		return nil
	}

	event := domain.Event{
		Name:             payload.HookEventName,
		NotificationType: payload.NotificationType,
		CWD:              payload.CWD,
		SessionID:        payload.SessionID,
		PermissionMode:   payload.PermissionMode,
	}

	paused := app.paused()

	// A dispatch error means only that the state write failed; the outcome
	// is still worth delivering.
	outcome, _ := app.dispatcher.Dispatch(cmd.Context(), event, paused)
	if outcome.Suppressed {
		return nil
	}

	if event.Name == domain.EventSessionStart {
		app.updates.RunBackground()
		if notice, ok := app.updates.Notice(); ok {
			fmt.Fprintln(cmd.ErrOrStderr(), notice)
		}
		if paused {
			fmt.Fprintln(cmd.ErrOrStderr(), "peon-ping: sounds paused — run 'peon resume' or 'peon toggle' to unpause")
		}
	}

	_ = term.NewTitleWriter(cmd.OutOrStdout()).SetTitle(outcome.Title)

	if outcome.SoundPath != "" && fileExists(outcome.SoundPath) {
		_ = app.player.Play(outcome.SoundPath, outcome.Volume)
	}
	if outcome.Notify {
		_ = app.notifier.Notify(outcome.NotifyMessage, outcome.Title, outcome.NotifyColor)
	}

	time.Sleep(graceDelay)
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

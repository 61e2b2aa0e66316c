package notify

import (
	"os/exec"

	"github.com/bnema/peon-ping-cli/internal/ports"
)

// DesktopNotifier shows a platform desktop notification. On platforms where
// a cheap focus check exists, the notification is skipped while the terminal
// is frontmost.
type DesktopNotifier struct{}

var _ ports.Notifier = (*DesktopNotifier)(nil)

func NewDesktopNotifier() *DesktopNotifier {
	return &DesktopNotifier{}
}

func startDetached(cmd *exec.Cmd) error {
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil
	return cmd.Start()
}

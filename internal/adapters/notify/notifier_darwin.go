//go:build darwin

package notify

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

var macTerminals = map[string]struct{}{
	"Terminal":  {},
	"iTerm2":    {},
	"Warp":      {},
	"Alacritty": {},
	"kitty":     {},
	"WezTerm":   {},
	"Ghostty":   {},
}

func (n *DesktopNotifier) Notify(message, title, color string) error {
	if terminalFocused() {
		return nil
	}

	script := fmt.Sprintf("display notification %q with title %q", message, title)
	return startDetached(exec.Command("osascript", "-e", script))
}

// terminalFocused asks System Events for the frontmost process. Errors and
// timeouts fall back to "not focused" so the notification still goes out.
func terminalFocused() bool {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	out, err := exec.CommandContext(ctx, "osascript", "-e",
		`tell application "System Events" to get name of first process whose frontmost is true`).Output()
	if err != nil {
		return false
	}

	_, ok := macTerminals[strings.TrimSpace(string(out))]
	return ok
}

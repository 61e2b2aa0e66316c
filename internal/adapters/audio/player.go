package audio

import (
	"os/exec"

	"github.com/bnema/peon-ping-cli/internal/ports"
)

// Player starts platform playback of a sound file and returns immediately.
// The hook runs on the caller's time budget, so playback is never awaited.
type Player struct{}

var _ ports.SoundPlayer = (*Player)(nil)

func NewPlayer() *Player {
	return &Player{}
}

// startDetached launches a command without waiting for it. The started
// process outlives the hook invocation.
func startDetached(cmd *exec.Cmd) error {
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil
	return cmd.Start()
}

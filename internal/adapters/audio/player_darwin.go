//go:build darwin

package audio

import (
	"fmt"
	"os/exec"
)

func (p *Player) Play(path string, volume float64) error {
	return startDetached(exec.Command("afplay", "-v", fmt.Sprintf("%g", volume), path))
}

//go:build linux

package audio

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Play prefers PulseAudio, then ALSA, then ffplay. Under WSL the file is
// handed to Windows Media Player through powershell.exe instead.
func (p *Player) Play(path string, volume float64) error {
	if isWSL() {
		return playWSL(path, volume)
	}

	if player, err := exec.LookPath("paplay"); err == nil {
		// paplay volume is 0..65536.
		vol := int(volume * 65536)
		return startDetached(exec.Command(player, fmt.Sprintf("--volume=%d", vol), path))
	}
	if player, err := exec.LookPath("aplay"); err == nil {
		return startDetached(exec.Command(player, "-q", path))
	}
	if player, err := exec.LookPath("ffplay"); err == nil {
		return startDetached(exec.Command(player, "-nodisp", "-autoexit", "-loglevel", "quiet", path))
	}

	return fmt.Errorf("no audio player found")
}

func playWSL(path string, volume float64) error {
	wpath := path
	if out, err := exec.Command("wslpath", "-w", path).Output(); err == nil {
		wpath = strings.TrimSpace(string(out))
	}
	wpath = strings.ReplaceAll(wpath, `\`, "/")

	script := fmt.Sprintf(
		"Add-Type -AssemblyName PresentationCore; "+
			"$p = New-Object System.Windows.Media.MediaPlayer; "+
			"$p.Open([Uri]::new('file:///%s')); "+
			"$p.Volume = %g; "+
			"Start-Sleep -Milliseconds 200; "+
			"$p.Play(); "+
			"Start-Sleep -Seconds 3; "+
			"$p.Close()",
		wpath, volume,
	)

	return startDetached(exec.Command("powershell.exe", "-NoProfile", "-NonInteractive", "-Command", script))
}

func isWSL() bool {
	data, err := os.ReadFile("/proc/version")
	if err != nil {
		return false
	}
	return strings.Contains(strings.ToLower(string(data)), "microsoft")
}

//go:build windows

package audio

import (
	"fmt"
	"os/exec"
	"strings"
)

func (p *Player) Play(path string, volume float64) error {
	wpath := strings.ReplaceAll(path, `\`, "/")

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

	return startDetached(exec.Command("powershell", "-NoProfile", "-NonInteractive", "-Command", script))
}

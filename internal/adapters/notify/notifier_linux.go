//go:build linux

package notify

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

var popupColors = map[string][3]int{
	"red":    {180, 0, 0},
	"blue":   {30, 80, 180},
	"yellow": {200, 160, 0},
}

// Notify uses notify-send on native Linux and a powershell.exe popup under
// WSL. There is no cheap focus check on either, so the notification always
// goes out.
func (n *DesktopNotifier) Notify(message, title, color string) error {
	if isWSL() {
		return notifyWSL(message, color)
	}

	bin, err := exec.LookPath("notify-send")
	if err != nil {
		return fmt.Errorf("no notifier found")
	}

	urgency := "normal"
	if color == "red" {
		urgency = "critical"
	}
	return startDetached(exec.Command(bin, "-u", urgency, title, message))
}

func notifyWSL(message, color string) error {
	rgb, ok := popupColors[color]
	if !ok {
		rgb = popupColors["red"]
	}
	safe := strings.ReplaceAll(message, "'", "''")

	script := fmt.Sprintf(
		"Add-Type -AssemblyName System.Windows.Forms; "+
			"Add-Type -AssemblyName System.Drawing; "+
			"$form = New-Object System.Windows.Forms.Form; "+
			"$form.FormBorderStyle = 'None'; "+
			"$form.BackColor = [System.Drawing.Color]::FromArgb(%d, %d, %d); "+
			"$form.Size = New-Object System.Drawing.Size(500, 80); "+
			"$form.TopMost = $true; "+
			"$form.ShowInTaskbar = $false; "+
			"$form.StartPosition = 'CenterScreen'; "+
			"$label = New-Object System.Windows.Forms.Label; "+
			"$label.Text = '%s'; "+
			"$label.ForeColor = [System.Drawing.Color]::White; "+
			"$label.Font = New-Object System.Drawing.Font('Segoe UI', 16, [System.Drawing.FontStyle]::Bold); "+
			"$label.TextAlign = 'MiddleCenter'; "+
			"$label.Dock = 'Fill'; "+
			"$form.Controls.Add($label); "+
			"$form.Show(); "+
			"Start-Sleep -Seconds 4; "+
			"[System.Windows.Forms.Application]::Exit()",
		rgb[0], rgb[1], rgb[2], safe,
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

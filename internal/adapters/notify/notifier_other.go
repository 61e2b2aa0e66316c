//go:build !darwin && !linux

package notify

func (n *DesktopNotifier) Notify(message, title, color string) error {
	return nil
}

package ports

// SoundPlayer starts playback of a sound file and returns without waiting
// for it to finish.
type SoundPlayer interface {
	Play(path string, volume float64) error
}

// Notifier shows a desktop notification. Implementations may skip the
// notification when the terminal already has focus.
type Notifier interface {
	Notify(message, title, color string) error
}

// TitleWriter updates the terminal tab title.
type TitleWriter interface {
	SetTitle(title string) error
}

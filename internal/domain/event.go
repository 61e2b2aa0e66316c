package domain

// Hook event names as delivered by the assistant harness.
const (
	EventSessionStart      = "SessionStart"
	EventUserPromptSubmit  = "UserPromptSubmit"
	EventStop              = "Stop"
	EventNotification      = "Notification"
	EventPermissionRequest = "PermissionRequest"
)

// Notification subtypes carried on Notification events.
const (
	NotificationPermissionPrompt = "permission_prompt"
	NotificationIdlePrompt       = "idle_prompt"
)

// PermissionModeDelegate marks a session as delegated/background. Once seen,
// the session is suppressed for the lifetime of the state document.
const PermissionModeDelegate = "delegate"

// Event is one assistant-session lifecycle occurrence, decoded from the
// harness hook payload.
type Event struct {
	Name             string
	NotificationType string
	CWD              string
	SessionID        string
	PermissionMode   string
}

func (e Event) Delegated() bool {
	return e.PermissionMode == PermissionModeDelegate
}

package domain

import (
	"fmt"
	"path/filepath"
	"regexp"
)

// Sound categories.
const (
	CategoryGreeting      = "greeting"
	CategoryAcknowledge   = "acknowledge"
	CategoryComplete      = "complete"
	CategoryError         = "error"
	CategoryPermission    = "permission"
	CategoryResourceLimit = "resource_limit"
	CategoryAnnoyed       = "annoyed"
)

// KnownCategories lists every category a config file can toggle.
var KnownCategories = []string{
	CategoryGreeting,
	CategoryAcknowledge,
	CategoryComplete,
	CategoryError,
	CategoryPermission,
	CategoryResourceLimit,
	CategoryAnnoyed,
}

// Notification color tags understood by the notifier adapters.
const (
	NotifyColorRed    = "red"
	NotifyColorBlue   = "blue"
	NotifyColorYellow = "yellow"
)

// titleMarker prefixes the tab title for events worth glancing back at.
const titleMarker = "● "

// Route is the classifier outcome for one event: which sound category to
// play, what the tab title should say, and whether to notify.
type Route struct {
	Category    string
	Status      string
	Marker      string
	Notify      bool
	NotifyColor string
	NotifyLabel string
	Handled     bool
}

// Classify maps an event to its route. Unknown events and unknown
// notification subtypes come back with Handled=false and must be dropped
// without side effects.
func Classify(e Event) Route {
	switch e.Name {
	case EventSessionStart:
		return Route{Category: CategoryGreeting, Status: "ready", Handled: true}
	case EventUserPromptSubmit:
		// Category stays empty unless the rapid-prompt check promotes it.
		return Route{Status: "working", Handled: true}
	case EventStop:
		return Route{
			Category:    CategoryComplete,
			Status:      "done",
			Marker:      titleMarker,
			Notify:      true,
			NotifyColor: NotifyColorBlue,
			NotifyLabel: "Task complete",
			Handled:     true,
		}
	case EventNotification:
		switch e.NotificationType {
		case NotificationPermissionPrompt:
			return permissionRoute()
		case NotificationIdlePrompt:
			return Route{
				Status:      "done",
				Marker:      titleMarker,
				Notify:      true,
				NotifyColor: NotifyColorYellow,
				NotifyLabel: "Waiting for input",
				Handled:     true,
			}
		default:
			return Route{}
		}
	case EventPermissionRequest:
		return permissionRoute()
	default:
		return Route{}
	}
}

func permissionRoute() Route {
	return Route{
		Category:    CategoryPermission,
		Status:      "needs approval",
		Marker:      titleMarker,
		Notify:      true,
		NotifyColor: NotifyColorRed,
		NotifyLabel: "Permission needed",
		Handled:     true,
	}
}

// Title renders the tab title for this route.
func (r Route) Title(project string) string {
	return fmt.Sprintf("%s%s: %s", r.Marker, project, r.Status)
}

// NotifyMessage renders the notification body for this route.
func (r Route) NotifyMessage(project string) string {
	return fmt.Sprintf("%s  —  %s", project, r.NotifyLabel)
}

var projectSanitizer = regexp.MustCompile(`[^a-zA-Z0-9 ._-]`)

// ProjectName derives a display name from the session working directory:
// last path segment with unsafe characters stripped, "claude" when nothing
// usable remains.
func ProjectName(cwd string) string {
	if cwd == "" {
		return "claude"
	}
	name := filepath.Base(cwd)
	if name == "." || name == string(filepath.Separator) {
		return "claude"
	}
	name = projectSanitizer.ReplaceAllString(name, "")
	if name == "" {
		return "claude"
	}
	return name
}

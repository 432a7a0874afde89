// Package platform turns terminal and process signals into typed shell events and
// delivers them to exactly one subscriber.
package platform

import "github.com/jask/appshell/internal/locale"

// BackRequest asks the shell to navigate back.
type BackRequest struct{}

// PushRoute asks the shell to open a named route, for example from a deep link.
type PushRoute struct {
	Route string
}

// LocaleChange reports a new platform locale.
type LocaleChange struct {
	Raw    string
	Locale locale.Locale
}

// MetricsChange reports new terminal dimensions.
type MetricsChange struct {
	Width  int
	Height int
}

// MemoryPressure reports that the heap crossed the configured threshold.
type MemoryPressure struct {
	HeapBytes uint64
}

// AppLifecycleState is the visibility state of the application.
type AppLifecycleState int

const (
	Resumed AppLifecycleState = iota
	Inactive
	Paused
	Detached
)

func (s AppLifecycleState) String() string {
	switch s {
	case Resumed:
		return "resumed"
	case Inactive:
		return "inactive"
	case Paused:
		return "paused"
	case Detached:
		return "detached"
	}
	return "unknown"
}

// LifecycleChange reports an application lifecycle transition.
type LifecycleChange struct {
	State AppLifecycleState
}

// Kind names an event for logs and the journal.
func Kind(ev any) string {
	switch ev.(type) {
	case BackRequest:
		return "back"
	case PushRoute:
		return "push-route"
	case LocaleChange:
		return "locale"
	case MetricsChange:
		return "metrics"
	case MemoryPressure:
		return "memory-pressure"
	case LifecycleChange:
		return "lifecycle"
	}
	return ""
}

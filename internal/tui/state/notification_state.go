package state

import "charm.land/lipgloss/v2"

// NotificationLevel represents the severity of a toast.
type NotificationLevel int

const (
	// LevelInfo is used for confirmations such as a completed move
	LevelInfo NotificationLevel = iota
	// LevelWarning is used for rejected gestures that changed nothing
	LevelWarning
	// LevelError is used for failures reported by a service
	LevelError
)

// maxToasts bounds how many toasts are kept; older ones are dropped first.
const maxToasts = 3

// Toast is a single transient message shown over the page.
type Toast struct {
	Level   NotificationLevel
	Message string
}

// NotificationState holds the toasts currently on screen.
type NotificationState struct {
	toasts       []Toast
	windowWidth  int
	windowHeight int
}

// NewNotificationState creates a new NotificationState with no toasts.
func NewNotificationState() *NotificationState {
	return &NotificationState{toasts: []Toast{}}
}

// Add appends a toast, dropping the oldest once maxToasts is exceeded.
func (s *NotificationState) Add(level NotificationLevel, message string) {
	s.toasts = append(s.toasts, Toast{Level: level, Message: message})
	if len(s.toasts) > maxToasts {
		s.toasts = s.toasts[len(s.toasts)-maxToasts:]
	}
}

// Clear removes all toasts.
func (s *NotificationState) Clear() {
	s.toasts = []Toast{}
}

// ClearLevel removes all toasts of a specific level.
func (s *NotificationState) ClearLevel(level NotificationLevel) {
	filtered := []Toast{}
	for _, t := range s.toasts {
		if t.Level != level {
			filtered = append(filtered, t)
		}
	}
	s.toasts = filtered
}

// All returns all current toasts, oldest first.
func (s *NotificationState) All() []Toast {
	return s.toasts
}

// HasAny returns true if there are any toasts.
func (s *NotificationState) HasAny() bool {
	return len(s.toasts) > 0
}

// SetWindowSize updates the window dimensions for positioning calculations.
func (s *NotificationState) SetWindowSize(width, height int) {
	s.windowWidth = width
	s.windowHeight = height
}

// GetLayers creates floating layers for all toasts.
// Toasts are stacked vertically in the top-right corner of the screen.
func (s *NotificationState) GetLayers(renderFunc func(Toast) string) []*lipgloss.Layer {
	layers := []*lipgloss.Layer{}
	if s.windowWidth == 0 {
		return layers
	}

	row := 0
	for _, t := range s.toasts {
		view := renderFunc(t)
		height := lipgloss.Height(view)
		if row+height >= s.windowHeight {
			break
		}
		col := max(s.windowWidth-lipgloss.Width(view)-1, 0)
		layers = append(layers, lipgloss.NewLayer(view).X(col).Y(row))
		row += height + 1
	}

	return layers
}

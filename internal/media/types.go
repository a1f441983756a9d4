// Package media defines shared types for the vidembed application.
package media

import "fmt"

// ServiceKind identifies a supported video hosting service.
// The zero value is Unknown and cannot be marshaled.
type ServiceKind int

const (
	Unknown ServiceKind = iota
	YouTube
	Vimeo
)

func (s ServiceKind) String() string {
	switch s {
	case YouTube:
		return "youtube"
	case Vimeo:
		return "vimeo"
	default:
		return "unknown"
	}
}

// MarshalText renders the kind as its lowercase service name.
func (s ServiceKind) MarshalText() ([]byte, error) {
	switch s {
	case YouTube, Vimeo:
		return []byte(s.String()), nil
	default:
		return nil, fmt.Errorf("unknown service kind %d", int(s))
	}
}

// UnmarshalText parses a lowercase service name.
func (s *ServiceKind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "youtube":
		*s = YouTube
	case "vimeo":
		*s = Vimeo
	default:
		return fmt.Errorf("unknown service %q", string(text))
	}
	return nil
}

// Result is the embed descriptor produced for a recognized video URL.
// A Result is only ever returned fully populated; absence is reported
// separately by the caller's ok flag.
type Result struct {
	Type  ServiceKind `json:"type"`
	Embed string      `json:"embed"` // Playable embed URL
}

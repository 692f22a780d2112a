package anim

import "fmt"

// Status reports the playback state of an Animation or a Timeline.
type Status int

const (
	// Idle means the animation has not started yet.
	Idle Status = iota
	// Running means the animation is in progress.
	Running
	// Paused means a Timeline was paused; Animation nodes never report it.
	Paused
	// Completed means the animation reached the end of its duration.
	Completed
)

var statusNames = [...]string{"idle", "running", "paused", "completed"}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return fmt.Sprintf("status(%d)", int(s))
	}
	return statusNames[s]
}

// MarshalText encodes the status by name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a status name.
func (s *Status) UnmarshalText(text []byte) error {
	for i, name := range statusNames {
		if name == string(text) {
			*s = Status(i)
			return nil
		}
	}
	return fmt.Errorf("unknown status %q", text)
}

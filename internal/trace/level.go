package trace

import "fmt"

// Level controls logging verbosity.
type Level uint8

const (
	// LevelOff disables logging.
	LevelOff   Level = iota // no output
	LevelError              // failures only
	LevelInfo               // session milestones
	LevelDebug              // per-iteration detail
)

// String returns the string representation of Level.
func (l Level) String() string {
	switch l {
	case LevelOff:
		return "off"
	case LevelError:
		return "error"
	case LevelInfo:
		return "info"
	case LevelDebug:
		return "debug"
	default:
		return "unknown"
	}
}

// ParseLevel converts a string to a Level.
func ParseLevel(s string) (Level, error) {
	switch s {
	case "off", "OFF":
		return LevelOff, nil
	case "error", "ERROR":
		return LevelError, nil
	case "info", "INFO":
		return LevelInfo, nil
	case "debug", "DEBUG":
		return LevelDebug, nil
	default:
		return LevelOff, fmt.Errorf("invalid log level: %q (expected: off|error|info|debug)", s)
	}
}

// ShouldEmit returns true if an event at the given level passes this sink level.
func (l Level) ShouldEmit(ev Level) bool {
	if l == LevelOff || ev == LevelOff {
		return false
	}
	return ev <= l
}

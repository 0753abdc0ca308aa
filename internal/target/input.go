package target

import (
	"encoding/json"
	"fmt"
)

// InputKind tags the shape of a fuzz input.
type InputKind uint8

const (
	InputPath  InputKind = iota + 1 // filesystem path
	InputText                       // free text
	InputBytes                      // arbitrary byte text
	InputStats                      // statistics map
)

// String returns the string representation of InputKind.
func (k InputKind) String() string {
	switch k {
	case InputPath:
		return "path"
	case InputText:
		return "text"
	case InputBytes:
		return "bytes"
	case InputStats:
		return "stats"
	default:
		return "unknown"
	}
}

// Input is the single positional argument handed to a target. Exactly one
// field matching Kind is populated.
type Input struct {
	Kind  InputKind
	Path  string
	Text  string
	Stats map[string]any
}

// PathInput builds a path-shaped input.
func PathInput(p string) Input { return Input{Kind: InputPath, Path: p} }

// TextInput builds a free-text input.
func TextInput(s string) Input { return Input{Kind: InputText, Text: s} }

// BytesInput builds an arbitrary-byte-text input.
func BytesInput(s string) Input { return Input{Kind: InputBytes, Text: s} }

// StatsInput builds a statistics-map input.
func StatsInput(m map[string]any) Input { return Input{Kind: InputStats, Stats: m} }

// Describe renders a best-effort serializable representation of the input for
// the failure record. Unserializable stats degrade to their %v rendering.
func (in Input) Describe() string {
	switch in.Kind {
	case InputPath:
		return in.Path
	case InputText:
		return in.Text
	case InputBytes:
		return fmt.Sprintf("<byte text len=%d>", len(in.Text))
	case InputStats:
		data, err := json.Marshal(in.Stats)
		if err != nil {
			return fmt.Sprintf("%v", in.Stats)
		}
		return string(data)
	default:
		return "<empty input>"
	}
}

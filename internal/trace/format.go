package trace

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Format represents the output format for log events.
type Format uint8

const (
	FormatText   Format = iota // human-readable text
	FormatNDJSON               // newline-delimited JSON
)

// FormatEvent formats an event according to the specified format.
func FormatEvent(ev Event, format Format) []byte {
	switch format {
	case FormatNDJSON:
		return formatNDJSON(ev)
	default:
		return formatText(ev)
	}
}

func formatNDJSON(ev Event) []byte {
	type jsonEvent struct {
		Time   string            `json:"time"`
		Seq    uint64            `json:"seq"`
		Level  string            `json:"level"`
		Name   string            `json:"name"`
		Detail string            `json:"detail,omitempty"`
		Extra  map[string]string `json:"extra,omitempty"`
	}

	j := jsonEvent{
		Time:   ev.Time.Format("2006-01-02T15:04:05.000000Z07:00"),
		Seq:    ev.Seq,
		Level:  ev.Level.String(),
		Name:   ev.Name,
		Detail: ev.Detail,
		Extra:  ev.Extra,
	}

	data, _ := json.Marshal(j)
	data = append(data, '\n')
	return data
}

// formatText formats an event as a single human-readable line:
// "15:04:05.000 ERROR failure msg key=value".
func formatText(ev Event) []byte {
	var sb strings.Builder
	sb.WriteString(ev.Time.Format("15:04:05.000"))
	sb.WriteByte(' ')
	sb.WriteString(strings.ToUpper(ev.Level.String()))
	sb.WriteByte(' ')
	sb.WriteString(ev.Name)
	if ev.Detail != "" {
		sb.WriteByte(' ')
		sb.WriteString(ev.Detail)
	}
	if len(ev.Extra) > 0 {
		keys := make([]string, 0, len(ev.Extra))
		for k := range ev.Extra {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&sb, " %s=%s", k, ev.Extra[k])
		}
	}
	sb.WriteByte('\n')
	return []byte(sb.String())
}

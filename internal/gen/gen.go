// Package gen produces the adversarial random inputs the harness feeds to
// resolved targets: short alphanumeric tokens, filesystem paths that may or
// may not exist, pseudo-source text, extended-range byte text, and
// deliberately out-of-range statistics maps.
package gen

import (
	"math/rand"
	"strings"
	"time"

	"golang.org/x/text/encoding/charmap"
)

const tokenAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// keywords is the fixed vocabulary mixed into pseudo-source text. The blend of
// real keywords and random identifiers yields text that is invalid most of the
// time and valid by accident often enough to reach deeper parser states.
var keywords = []string{
	"func", "type", "return", "if", "else", "import", "for", "while",
	"class", "def", "let", "match",
}

// Source is a seeded random input source. Not goroutine-safe; the harness is
// fully sequential so one Source serves a whole session.
type Source struct {
	rng *rand.Rand
}

// NewSource creates a Source from an explicit seed so a session can be
// reproduced. Seed 0 picks a time-based seed.
func NewSource(seed int64) *Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

// Token returns a string of n characters drawn uniformly from letters+digits.
func (s *Source) Token(n int) string {
	if n <= 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		sb.WriteByte(tokenAlphabet[s.rng.Intn(len(tokenAlphabet))])
	}
	return sb.String()
}

// Pseudocode returns tokenCount randomly chosen vocabulary entries joined by
// spaces. Three random identifiers join the keyword pool per call so the text
// never repeats across iterations.
func (s *Source) Pseudocode(tokenCount int) string {
	pool := make([]string, 0, len(keywords)+3)
	pool = append(pool, keywords...)
	pool = append(pool, s.Token(5), s.Token(8), s.Token(3))

	parts := make([]string, 0, tokenCount)
	for i := 0; i < tokenCount; i++ {
		parts = append(parts, pool[s.rng.Intn(len(pool))])
	}
	return strings.Join(parts, " ")
}

// ByteText returns a string of n characters drawn from the full printable and
// extended range. Half the time the raw high bytes are returned as-is, which
// makes the result invalid UTF-8 with high probability; otherwise the bytes
// are decoded through a legacy charmap so the result is valid UTF-8 built from
// runes hostile to ASCII-assuming targets.
func (s *Source) ByteText(n int) string {
	if n <= 0 {
		return ""
	}
	raw := make([]byte, n)
	for i := range raw {
		raw[i] = byte(0x20 + s.rng.Intn(0xE0)) // 0x20..0xFF
	}
	if s.rng.Intn(2) == 0 {
		return string(raw)
	}
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(raw)
	if err != nil {
		return string(raw)
	}
	return string(decoded)
}

// Stats returns a statistics map shaped like a report target's input, with a
// deliberately out-of-range integer field (negative values included), a float
// field, and a small list of random tokens.
func (s *Source) Stats() map[string]any {
	tokens := make([]string, 5)
	for i := range tokens {
		tokens[i] = s.Token(5)
	}
	return map[string]any{
		"file_count": s.rng.Intn(1011) - 10, // -10..1000
		"avg_tokens": s.rng.Float64() * 100,
		"top_tokens": tokens,
	}
}

// Intn exposes a bounded draw from the shared source for callers that need to
// vary input sizes.
func (s *Source) Intn(n int) int { return s.rng.Intn(n) }

package gen

import (
	"os"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTokenLengthAndAlphabet(t *testing.T) {
	s := NewSource(1)
	tok := s.Token(50)
	if len(tok) != 50 {
		t.Fatalf("expected 50 chars, got %d", len(tok))
	}
	for _, r := range tok {
		if !strings.ContainsRune(tokenAlphabet, r) {
			t.Fatalf("token contains %q outside letters+digits", r)
		}
	}
	if s.Token(0) != "" || s.Token(-3) != "" {
		t.Fatalf("non-positive length must yield empty string")
	}
}

func TestPseudocodeTokenCount(t *testing.T) {
	s := NewSource(2)
	code := s.Pseudocode(20)
	if got := len(strings.Fields(code)); got != 20 {
		t.Fatalf("expected 20 tokens, got %d in %q", got, code)
	}
}

func TestByteTextExtendedRange(t *testing.T) {
	s := NewSource(3)
	sawInvalid := false
	for i := 0; i < 64 && !sawInvalid; i++ {
		if !utf8.ValidString(s.ByteText(100)) {
			sawInvalid = true
		}
	}
	if !sawInvalid {
		t.Fatalf("expected at least one invalid-UTF8 sample over 64 draws")
	}
	if s.ByteText(0) != "" {
		t.Fatalf("zero length must yield empty string")
	}
}

func TestStatsShape(t *testing.T) {
	s := NewSource(4)
	sawNegative := false
	for i := 0; i < 2000; i++ {
		stats := s.Stats()
		fc, ok := stats["file_count"].(int)
		if !ok {
			t.Fatalf("file_count is not an int: %T", stats["file_count"])
		}
		if fc < -10 || fc > 1000 {
			t.Fatalf("file_count %d outside generator range", fc)
		}
		if fc < 0 {
			sawNegative = true
		}
		if _, ok := stats["avg_tokens"].(float64); !ok {
			t.Fatalf("avg_tokens is not a float64")
		}
		if toks := stats["top_tokens"].([]string); len(toks) != 5 {
			t.Fatalf("expected 5 top_tokens, got %d", len(toks))
		}
	}
	if !sawNegative {
		t.Fatalf("expected a negative file_count over 2000 draws")
	}
}

func TestPathAbsentWhenNotMaterialized(t *testing.T) {
	s := NewSource(5)
	p, err := s.Path(PathOptions{Ext: ".py"})
	if err != nil {
		t.Fatalf("Path: %v", err)
	}
	if _, err := os.Stat(p); !os.IsNotExist(err) {
		t.Fatalf("expected %s to be absent, stat err = %v", p, err)
	}
}

func TestPathMaterializedPayloads(t *testing.T) {
	s := NewSource(6)

	code, err := s.Path(PathOptions{Ext: ".py", Materialize: true})
	if err != nil {
		t.Fatalf("Path: %v", err)
	}
	t.Cleanup(func() { _ = os.Remove(code) })
	data, err := os.ReadFile(code)
	if err != nil {
		t.Fatalf("read materialized file: %v", err)
	}
	if !strings.Contains(string(data), "func ") {
		t.Fatalf("code extension should get source-shaped payload, got %q", data)
	}

	tab, err := s.Path(PathOptions{Ext: ".csv", Materialize: true})
	if err != nil {
		t.Fatalf("Path: %v", err)
	}
	t.Cleanup(func() { _ = os.Remove(tab) })
	data, err = os.ReadFile(tab)
	if err != nil {
		t.Fatalf("read materialized file: %v", err)
	}
	if !strings.HasPrefix(string(data), "label,value") {
		t.Fatalf("non-code extension should get tabular payload, got %q", data)
	}

	custom, err := s.Path(PathOptions{Ext: ".txt", Materialize: true, Content: "exact bytes"})
	if err != nil {
		t.Fatalf("Path: %v", err)
	}
	t.Cleanup(func() { _ = os.Remove(custom) })
	data, err = os.ReadFile(custom)
	if err != nil {
		t.Fatalf("read materialized file: %v", err)
	}
	if string(data) != "exact bytes" {
		t.Fatalf("explicit content not written verbatim: %q", data)
	}
}

func TestSourceDeterministicPerSeed(t *testing.T) {
	a, b := NewSource(42), NewSource(42)
	for i := 0; i < 10; i++ {
		if a.Token(8) != b.Token(8) {
			t.Fatalf("same seed must produce identical streams")
		}
	}
}

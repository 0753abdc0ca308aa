package fuzztests

import (
	"strings"
	"testing"

	"rattle/internal/gen"
)

const maxGenLen = 1 << 16

// FuzzGeneratorLengths drives the pure generators with arbitrary sizes and
// seeds. None of them may panic, and the basic size contracts must hold.
func FuzzGeneratorLengths(f *testing.F) {
	f.Add(int64(1), 0)
	f.Add(int64(0), 50)
	f.Add(int64(-7), 1)
	f.Add(int64(42), 4096)

	f.Fuzz(func(t *testing.T, seed int64, n int) {
		if n > maxGenLen {
			n = maxGenLen
		}
		s := gen.NewSource(seed)

		tok := s.Token(n)
		if n > 0 && len(tok) != n {
			t.Fatalf("Token(%d) returned %d chars", n, len(tok))
		}
		if n <= 0 && tok != "" {
			t.Fatalf("Token(%d) must be empty", n)
		}

		if n >= 0 && n <= 4096 {
			code := s.Pseudocode(n)
			if got := len(strings.Fields(code)); n > 0 && got != n {
				t.Fatalf("Pseudocode(%d) has %d tokens", n, got)
			}
		}

		text := s.ByteText(n)
		if n > 0 && text == "" {
			t.Fatalf("ByteText(%d) must not be empty", n)
		}

		stats := s.Stats()
		if _, ok := stats["file_count"].(int); !ok {
			t.Fatalf("Stats missing file_count")
		}
	})
}

// FuzzRegistryResolution checks that arbitrary namespace/attribute strings
// never break registration or resolution, and that a registered pair always
// resolves back to itself.
func FuzzRegistryResolution(f *testing.F) {
	f.Add("forensics/parser", "ParseSourceFile")
	f.Add("", "")
	f.Add("ns with spaces", "attr\twith\ttabs")
	f.Add("\xff\xfe", "\x00")

	f.Fuzz(func(t *testing.T, namespace, attr string) {
		namespace = clampSeed(namespace)
		attr = clampSeed(attr)

		reg := newRegistryWith(namespace, attr)
		h, ok := reg.Lookup(namespace, attr)
		if namespace == "" || attr == "" {
			if ok {
				t.Fatalf("empty namespace/attr must not register")
			}
			return
		}
		if !ok || !h.Valid() {
			t.Fatalf("registered pair (%q, %q) did not resolve", namespace, attr)
		}
	})
}

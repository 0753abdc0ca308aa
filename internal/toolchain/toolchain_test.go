package toolchain

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"rattle/internal/target"
)

func TestRegisterResolvesAllCapabilities(t *testing.T) {
	reg := target.NewRegistry()
	Register(reg)
	table := target.Resolve(reg, target.DefaultSpecs())
	if got := table.ResolvedCount(); got != len(target.Capabilities) {
		t.Fatalf("expected all %d capabilities resolved, got %d", len(target.Capabilities), got)
	}
}

func TestParseSourceFileMissing(t *testing.T) {
	err := ParseSourceFile(target.PathInput(filepath.Join(t.TempDir(), "absent.py")))
	if err == nil {
		t.Fatalf("missing file must fail")
	}
}

func TestParseSourceFileLongToken(t *testing.T) {
	p := filepath.Join(t.TempDir(), "long.py")
	long := make([]byte, maxTokenLen+1)
	for i := range long {
		long[i] = 'a'
	}
	if err := os.WriteFile(p, long, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := ParseSourceFile(target.PathInput(p)); err == nil {
		t.Fatalf("oversized token must fail")
	}
}

func TestLintEngineShapeMismatchOnText(t *testing.T) {
	err := NewLintEngine().Invoke("Run", target.TextInput("func x"))
	if !errors.Is(err, target.ErrShapeMismatch) {
		t.Fatalf("raw text must be a shape mismatch, got %v", err)
	}
}

func TestLintEngineAcceptsShortFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "ok.py")
	if err := os.WriteFile(p, []byte("short line\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := NewLintEngine().Invoke("Run", target.PathInput(p)); err != nil {
		t.Fatalf("short file should lint clean: %v", err)
	}
}

func TestComputeTokenFrequencyRejectsInvalidUTF8(t *testing.T) {
	if err := ComputeTokenFrequency(target.BytesInput("ok \xff\xfe")); err == nil {
		t.Fatalf("invalid UTF-8 must fail")
	}
	if err := ComputeTokenFrequency(target.BytesInput("plain ascii text")); err != nil {
		t.Fatalf("valid text should pass: %v", err)
	}
}

func TestReportValidatesRanges(t *testing.T) {
	r := NewReport()
	bad := target.StatsInput(map[string]any{"file_count": -1, "avg_tokens": 1.0})
	if err := r.Invoke("Generate", bad); err == nil {
		t.Fatalf("negative file_count must fail")
	}
	good := target.StatsInput(map[string]any{"file_count": 3, "avg_tokens": 12.5})
	if err := r.Invoke("Generate", good); err != nil {
		t.Fatalf("in-range stats should pass: %v", err)
	}
}

func TestMineRepo(t *testing.T) {
	if err := MineRepo(target.PathInput(filepath.Join(t.TempDir(), "gone"))); err == nil {
		t.Fatalf("missing repo path must fail")
	}
	if err := MineRepo(target.PathInput(t.TempDir())); err != nil {
		t.Fatalf("existing directory should pass: %v", err)
	}
}

// Package toolchain is a miniature in-process analysis toolchain registered
// under the candidate namespaces the resolver probes. It exists so the
// harness is demonstrable and end-to-end testable without an external
// collaborator; each target has genuine failure modes for the fuzzer to find.
package toolchain

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"rattle/internal/target"
)

// Register binds the five demo capabilities into reg.
func Register(reg *target.Registry) {
	reg.Register("forensics/parser", "ParseSourceFile", target.FuncHandle(ParseSourceFile))
	reg.Register("forensics/lint", "LintEngine", target.ClassHandle(NewLintEngine, "Run"))
	reg.Register("empirical/frequency", "ComputeTokenFrequency", target.FuncHandle(ComputeTokenFrequency))
	reg.Register("empirical/report", "Report", target.ClassHandle(NewReport, "Generate"))
	reg.Register("mining/repominer", "MineRepo", target.FuncHandle(MineRepo))
}

const maxTokenLen = 64

// ParseSourceFile reads and tokenizes a source file. It fails on missing
// files and on tokens longer than the scanner's buffer, both of which the
// generators provoke on purpose.
func ParseSourceFile(in target.Input) error {
	data, err := os.ReadFile(in.Path)
	if err != nil {
		return fmt.Errorf("parse %s: %w", in.Path, err)
	}
	for i, tok := range strings.Fields(string(data)) {
		if len(tok) > maxTokenLen {
			return fmt.Errorf("parse %s: token %d exceeds %d bytes", in.Path, i, maxTokenLen)
		}
	}
	return nil
}

// LintEngine lints source files. It only accepts paths: raw text input is a
// shape mismatch, which exercises the runner's bounded retry.
type LintEngine struct {
	maxLineLen int
}

// NewLintEngine constructs an engine with default limits.
func NewLintEngine() target.Invocable {
	return &LintEngine{maxLineLen: 200}
}

// Invoke dispatches the designated method.
func (e *LintEngine) Invoke(method string, in target.Input) error {
	if method != "Run" {
		return fmt.Errorf("lint engine has no method %q", method)
	}
	return e.Run(in)
}

// Run lints the file at the given path.
func (e *LintEngine) Run(in target.Input) error {
	if in.Kind != target.InputPath {
		return target.ErrShapeMismatch
	}
	data, err := os.ReadFile(in.Path)
	if err != nil {
		return fmt.Errorf("lint %s: %w", in.Path, err)
	}
	for i, line := range strings.Split(string(data), "\n") {
		if len(line) > e.maxLineLen {
			return fmt.Errorf("lint %s:%d: line exceeds %d bytes", in.Path, i+1, e.maxLineLen)
		}
	}
	return nil
}

// ComputeTokenFrequency counts token occurrences in text. It refuses input
// that is not valid UTF-8, which the byte-text generator produces routinely.
func ComputeTokenFrequency(in target.Input) error {
	if !utf8.ValidString(in.Text) {
		return fmt.Errorf("frequency: input is not valid UTF-8")
	}
	freq := make(map[string]int)
	for _, tok := range strings.Fields(in.Text) {
		freq[tok]++
	}
	return nil
}

// Report renders aggregate statistics. Generate validates field presence and
// numeric ranges, so out-of-range stats maps fail.
type Report struct{}

// NewReport constructs an empty report.
func NewReport() target.Invocable {
	return &Report{}
}

// Invoke dispatches the designated method.
func (r *Report) Invoke(method string, in target.Input) error {
	if method != "Generate" {
		return fmt.Errorf("report has no method %q", method)
	}
	return r.Generate(in)
}

// Generate validates and renders a statistics map.
func (r *Report) Generate(in target.Input) error {
	if in.Kind != target.InputStats {
		return target.ErrShapeMismatch
	}
	fc, ok := in.Stats["file_count"].(int)
	if !ok {
		return fmt.Errorf("report: file_count missing or not an integer")
	}
	if fc < 0 {
		return fmt.Errorf("report: file_count %d out of range", fc)
	}
	if _, ok := in.Stats["avg_tokens"].(float64); !ok {
		return fmt.Errorf("report: avg_tokens missing or not a float")
	}
	return nil
}

// MineRepo walks a repository directory. A path that does not exist or is
// not a directory is a failure, which the absent-path generator guarantees.
func MineRepo(in target.Input) error {
	info, err := os.Stat(in.Path)
	if err != nil {
		return fmt.Errorf("mine %s: %w", in.Path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("mine %s: not a directory", in.Path)
	}
	return nil
}

package target

// Capability names one logical entry point the harness stress-tests.
type Capability string

const (
	CapParser    Capability = "parser"
	CapLinter    Capability = "linter"
	CapFrequency Capability = "frequency"
	CapReport    Capability = "report"
	CapMiner     Capability = "miner"
)

// Capabilities lists the canonical capabilities in resolution order.
var Capabilities = []Capability{CapParser, CapLinter, CapFrequency, CapReport, CapMiner}

// Candidate is one (namespace, attribute) pair to probe during resolution.
type Candidate struct {
	Namespace string
	Attr      string
}

// Spec is the ordered candidate list for one canonical capability.
type Spec struct {
	Name       Capability
	Candidates []Candidate
}

// Resolved is the outcome of resolving one capability.
type Resolved struct {
	Handle Handle
	Source Candidate // which candidate matched
}

// Table maps canonical capability names to their resolution outcome. A nil
// entry means the capability stayed unresolved, which is a valid non-fatal
// state: the runner simply skips it.
type Table map[Capability]*Resolved

// ResolvedCount returns the number of non-nil entries.
func (t Table) ResolvedCount() int {
	n := 0
	for _, r := range t {
		if r != nil {
			n++
		}
	}
	return n
}

// DefaultSpecs returns the ordered candidate lists for the five canonical
// capabilities, covering the naming schemes collaborator toolchains are known
// to use. The frequency and report capabilities deliberately probe the same
// namespace under different attributes; each resolves independently.
func DefaultSpecs() []Spec {
	return []Spec{
		{Name: CapParser, Candidates: []Candidate{
			{"forensics/parser", "ParseSourceFile"},
			{"forensics/pyparser", "ParseSourceFile"},
			{"forensics/parser", "ParseObject"},
			{"forensics/pyparser", "ParseObject"},
		}},
		{Name: CapLinter, Candidates: []Candidate{
			{"forensics/lint", "LintEngine"},
			{"forensics/lintengine", "LintEngine"},
			{"forensics/lint", "Engine"},
		}},
		{Name: CapFrequency, Candidates: []Candidate{
			{"empirical/frequency", "ComputeTokenFrequency"},
			{"empirical/frequency", "TokenFrequency"},
			{"empirical/frequency", "ReportProportion"},
		}},
		{Name: CapReport, Candidates: []Candidate{
			{"empirical/report", "Report"},
			{"empirical/frequency", "Report"},
		}},
		{Name: CapMiner, Candidates: []Candidate{
			{"mining/repominer", "MineRepo"},
			{"mining/gitminer", "MineRepo"},
			{"mining/repominer", "ProcessRepo"},
			{"mining/gitminer", "ProcessRepo"},
		}},
	}
}

// Resolve probes each capability's candidates in order against the registry.
// The first hit wins and short-circuits the rest of that capability's list;
// misses are expected and swallowed. Resolution happens once at startup so
// the iteration loop never touches naming again.
func Resolve(reg *Registry, specs []Spec) Table {
	table := make(Table, len(specs))
	for _, spec := range specs {
		table[spec.Name] = nil
		for _, cand := range spec.Candidates {
			h, ok := reg.Lookup(cand.Namespace, cand.Attr)
			if !ok {
				continue
			}
			table[spec.Name] = &Resolved{Handle: h, Source: cand}
			break
		}
	}
	return table
}

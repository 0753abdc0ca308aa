// Package fuzztests houses Go fuzz harnesses that exercise the harness's own
// surfaces: the failure recorder, the input generators, and the capability
// registry. Its goal is to smoke test robustness and guard against panics on
// arbitrary inputs.
//
// Does not do: fuzzing of collaborator toolchains (that is what the rattle
// binary itself is for), corpus generation, CLI execution.
package fuzztests

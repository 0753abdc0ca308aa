package fuzztests

const maxFuzzInput = 64 << 10 // 64 KiB cap on fuzzed strings

// clampSeed bounds a corpus entry so pathological inputs cannot blow up the
// recorder's log file during fuzzing.
func clampSeed(s string) string {
	if len(s) <= maxFuzzInput {
		return s
	}
	return s[:maxFuzzInput]
}

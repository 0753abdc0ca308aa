package main

import (
	"strconv"

	"fortio.org/safecast"
)

const (
	defaultIterations = 300
	iterationsEnvVar  = "RATTLE_ITERATIONS"
)

// resolveIterations applies the configuration precedence for the iteration
// count: flag > environment > manifest > default 300. Absent or invalid
// values at one layer fall through to the next.
func resolveIterations(flagVal int, env string, m *sessionManifest) int {
	if flagVal > 0 {
		return flagVal
	}
	if env != "" {
		if n, err := strconv.Atoi(env); err == nil && n >= 0 {
			return n
		}
	}
	if m != nil && m.Config.Session.Iterations > 0 {
		if n, err := safecast.Conv[int](m.Config.Session.Iterations); err == nil {
			return n
		}
	}
	return defaultIterations
}

// resolveThrottleEvery picks the throttle cadence from the manifest, falling
// back to the controller default when unset.
func resolveThrottleEvery(m *sessionManifest) int {
	if m != nil && m.Config.Session.ThrottleEvery > 0 {
		if n, err := safecast.Conv[int](m.Config.Session.ThrottleEvery); err == nil {
			return n
		}
	}
	return 0 // controller default
}

// resolveArtifact picks an artifact path: flag wins, then manifest, then the
// built-in name.
func resolveArtifact(flagVal, manifestVal, fallback string) string {
	if flagVal != "" {
		return flagVal
	}
	if manifestVal != "" {
		return manifestVal
	}
	return fallback
}

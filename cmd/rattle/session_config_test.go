package main

import "testing"

func manifestWithIterations(n int64) *sessionManifest {
	return &sessionManifest{Config: manifestConfig{Session: manifestSession{Iterations: n}}}
}

func TestResolveIterationsPrecedence(t *testing.T) {
	cases := []struct {
		name     string
		flag     int
		env      string
		manifest *sessionManifest
		want     int
	}{
		{"flag wins", 7, "99", manifestWithIterations(500), 7},
		{"env beats manifest", 0, "99", manifestWithIterations(500), 99},
		{"env zero is a valid count", 0, "0", manifestWithIterations(500), 0},
		{"manifest beats default", 0, "", manifestWithIterations(500), 500},
		{"default", 0, "", nil, 300},
		{"invalid env falls through to manifest", 0, "lots", manifestWithIterations(500), 500},
		{"invalid env falls through to default", 0, "-3", nil, 300},
		{"garbage env falls through to default", 0, "12x", nil, 300},
	}
	for _, c := range cases {
		if got := resolveIterations(c.flag, c.env, c.manifest); got != c.want {
			t.Fatalf("%s: got %d, want %d", c.name, got, c.want)
		}
	}
}

func TestResolveThrottleEvery(t *testing.T) {
	m := &sessionManifest{Config: manifestConfig{Session: manifestSession{ThrottleEvery: 25}}}
	if got := resolveThrottleEvery(m); got != 25 {
		t.Fatalf("manifest throttle ignored: %d", got)
	}
	if got := resolveThrottleEvery(nil); got != 0 {
		t.Fatalf("no manifest must defer to controller default, got %d", got)
	}
}

func TestResolveArtifact(t *testing.T) {
	if got := resolveArtifact("flag.log", "manifest.log", "default.log"); got != "flag.log" {
		t.Fatalf("flag must win: %s", got)
	}
	if got := resolveArtifact("", "manifest.log", "default.log"); got != "manifest.log" {
		t.Fatalf("manifest must beat default: %s", got)
	}
	if got := resolveArtifact("", "", "default.log"); got != "default.log" {
		t.Fatalf("fallback lost: %s", got)
	}
}

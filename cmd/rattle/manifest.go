package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type sessionManifest struct {
	Path   string
	Root   string
	Config manifestConfig
}

type manifestConfig struct {
	Session   manifestSession   `toml:"session"`
	Artifacts manifestArtifacts `toml:"artifacts"`
}

type manifestSession struct {
	Iterations    int64 `toml:"iterations"`
	Seed          int64 `toml:"seed"`
	ThrottleEvery int64 `toml:"throttle_every"`
}

type manifestArtifacts struct {
	Log     string `toml:"log"`
	Summary string `toml:"summary"`
}

func findRattleToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "rattle.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// loadSessionManifest walks upward from startDir looking for rattle.toml.
// A missing manifest is not an error: every setting has a default.
func loadSessionManifest(startDir string) (*sessionManifest, bool, error) {
	manifestPath, ok, err := findRattleToml(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	var cfg manifestConfig
	meta, err := toml.DecodeFile(manifestPath, &cfg)
	if err != nil {
		return nil, true, fmt.Errorf("%s: failed to parse TOML: %w", manifestPath, err)
	}
	if meta.IsDefined("session", "iterations") && cfg.Session.Iterations < 0 {
		return nil, true, fmt.Errorf("%s: [session].iterations must not be negative", manifestPath)
	}
	if meta.IsDefined("session", "throttle_every") && cfg.Session.ThrottleEvery < 0 {
		return nil, true, fmt.Errorf("%s: [session].throttle_every must not be negative", manifestPath)
	}
	return &sessionManifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

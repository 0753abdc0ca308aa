package gen

import (
	"os"
	"strings"
)

// PathOptions controls Path generation.
type PathOptions struct {
	// Ext is the file extension including the dot, e.g. ".py". May be empty.
	Ext string
	// Materialize creates the file on disk. When false the returned path is
	// best-effort guaranteed not to exist at return time.
	Materialize bool
	// Content is written verbatim when materializing. When empty a default
	// payload shaped for the extension is generated.
	Content string
}

// codeExts are extensions that get a synthetic source payload instead of
// tabular text when materializing without explicit content.
var codeExts = map[string]bool{
	".py": true,
	".go": true,
	".sg": true,
	".js": true,
}

// Path returns a filesystem path in the system temp directory. The path is
// allocated through os.CreateTemp so concurrent sessions never collide; when
// not materializing the freshly created file is removed again and removal
// failure is swallowed, since a leftover file only weakens one probe.
func (s *Source) Path(opts PathOptions) (string, error) {
	f, err := os.CreateTemp("", "rattle-*"+opts.Ext)
	if err != nil {
		return "", err
	}
	p := f.Name()

	if !opts.Materialize {
		_ = f.Close()
		_ = os.Remove(p)
		return p, nil
	}

	content := opts.Content
	if content == "" {
		content = s.defaultPayload(opts.Ext)
	}
	if _, err := f.WriteString(content); err != nil {
		_ = f.Close()
		return p, err
	}
	return p, f.Close()
}

func (s *Source) defaultPayload(ext string) string {
	if codeExts[strings.ToLower(ext)] {
		return "func fuzzSample() string { return \"" + s.Token(10) + "\" }\n"
	}
	return "label,value\nA,1\nB,2\n"
}

package implementation

import (
	"net/url"
	"os"
	"path/filepath"
)

// Locator maps a (sessionId, gameId) key to a path on disk. Both
// components are path-escaped, so the mapping is deterministic and two
// distinct keys can never collide.
type Locator struct {
	baseDir string
}

func NewLocator(baseDir string) *Locator {
	return &Locator{baseDir: baseDir}
}

func (l *Locator) LocationFor(sessionId, gameId string) string {
	return filepath.Join(l.baseDir, escapeComponent(sessionId), escapeComponent(gameId)+".json")
}

// escapeComponent path-escapes a key component. PathEscape leaves "." and
// ".." alone, so those are rewritten by hand; a literal "%2E" or "%" in
// the input escapes to "%252E"/"%25", keeping the mapping injective.
func escapeComponent(s string) string {
	switch esc := url.PathEscape(s); esc {
	case "":
		return "%"
	case ".":
		return "%2E"
	case "..":
		return "%2E%2E"
	default:
		return esc
	}
}

// EnsureScope creates the containing directory for a location. Safe to
// call concurrently for the same location; never deletes anything.
func (l *Locator) EnsureScope(location string) error {
	return os.MkdirAll(filepath.Dir(location), 0o755)
}

package xps

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

func isPathSeparator(r rune) bool {
	return r == '/' || r == '\\'
}

// parentPath returns the directory part of p. It fails for an empty path and
// for a bare root, which have no parent. Both separators are accepted since
// exporters store Windows paths.
func parentPath(p string) (string, bool) {
	trimmed := strings.TrimRightFunc(p, isPathSeparator)
	if trimmed == "" {
		return "", false
	}
	i := strings.LastIndexFunc(trimmed, isPathSeparator)
	if i < 0 {
		return "", true
	}
	parent := strings.TrimRightFunc(trimmed[:i], isPathSeparator)
	if parent == "" {
		return trimmed[:1], true
	}
	return parent, true
}

// TextureFileName strips the directory from a stored texture path: the
// parent directory string is removed, then every separator.
func TextureFileName(p string) (string, error) {
	parent, ok := parentPath(p)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrPathGetParent, p)
	}
	if !utf8.ValidString(parent) {
		return "", fmt.Errorf("%w: %q", ErrPathToStr, parent)
	}
	name := p
	if parent != "" {
		name = strings.ReplaceAll(name, parent, "")
	}
	name = strings.ReplaceAll(name, "\\", "/")
	return strings.ReplaceAll(name, "/", ""), nil
}

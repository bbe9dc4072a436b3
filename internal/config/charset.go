package config

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// DefaultEncoding maps every byte to the character with the same code.
const DefaultEncoding = "ISO 8859-1"

var charsetAliases = map[string]string{
	"latin1": "iso88591",
	"cp1251": "windows1251",
	"cp1252": "windows1252",
	"cp437":  "ibmcodepage437",
}

func normalizeCharsetName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if r == ' ' || r == '-' || r == '_' {
			continue
		}
		b.WriteRune(r)
	}
	if alias, ok := charsetAliases[b.String()]; ok {
		return alias
	}
	return b.String()
}

// Charset returns the single-byte character map with the given name, as
// printed by the charmap package ("ISO 8859-1", "Windows 1251", ...).
// Case, spaces, dashes and underscores are ignored. An empty name selects
// DefaultEncoding.
func Charset(name string) (*charmap.Charmap, error) {
	if strings.TrimSpace(name) == "" {
		name = DefaultEncoding
	}
	want := normalizeCharsetName(name)
	for _, enc := range charmap.All {
		cm, ok := enc.(*charmap.Charmap)
		if !ok {
			continue
		}
		if normalizeCharsetName(cm.String()) == want {
			return cm, nil
		}
	}
	return nil, fmt.Errorf("unknown encoding %q", name)
}

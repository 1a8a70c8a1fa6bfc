package config

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Names produced from article titles could be very long, leave room for
// extension and directory.
const maxFileNameBytes = 200

const badFileName = "_bad_file_name_"

// cleanName drops control characters and runes listed in forbidden, then
// limits name length on a rune boundary.
func cleanName(in, forbidden string) string {
	out := strings.TrimSpace(strings.Map(func(sym rune) rune {
		if unicode.IsControl(sym) || strings.ContainsRune(forbidden, sym) {
			return -1
		}
		return sym
	}, in))
	if len(out) > maxFileNameBytes {
		cut := maxFileNameBytes
		for cut > 0 && !utf8.RuneStart(out[cut]) {
			cut--
		}
		out = strings.TrimSpace(out[:cut])
	}
	return out
}

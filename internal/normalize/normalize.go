// Package normalize derives the canonical comparison key used for
// duplicate-name detection on categorias and fornecedores. Both services must
// share this single implementation so that their duplicate checks agree.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD and removes combining diacritical marks
// (unicode category Mn), then recomposes to NFC.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Nome maps a display name to its canonical lookup key:
//  1. trim surrounding whitespace;
//  2. Unicode-decompose and strip combining diacritical marks;
//  3. lower-case;
//  4. strip one trailing "s" (naive singularization).
//
// An empty string maps to an empty string. Pure and deterministic.
// Not idempotent in general: each application strips at most one trailing "s",
// so a name ending in "ss" loses one "s" per call.
func Nome(nome string) string {
	out, _, err := transform.String(stripMarks, strings.TrimSpace(nome))
	if err != nil {
		// Removal transforms cannot fail on valid UTF-8; fall back to the input.
		out = strings.TrimSpace(nome)
	}
	out = strings.ToLower(out)
	out = strings.TrimSuffix(out, "s")
	return out
}

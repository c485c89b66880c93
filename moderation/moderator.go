// Package moderation scans inbound message text against a configured list
// of flagged terms using an Aho-Corasick automaton, so the scan stays linear
// in the message length regardless of how many terms are configured.
package moderation

import (
	"strings"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

type Moderator struct {
	matcher      *goahocorasick.Machine
	censoredChar rune
}

// NewModerator builds the automaton from a normalized copy of the flagged
// terms. Matching is case- and accent-insensitive.
func NewModerator(flaggedTerms []string, censoredChar rune) (Moderator, error) {
	patterns := make([][]rune, len(flaggedTerms))
	for i, term := range flaggedTerms {
		patterns[i] = normalizeRunes([]rune(term))
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return Moderator{}, err
	}
	return Moderator{matcher: m, censoredChar: censoredChar}, nil
}

// Scan returns the distinct flagged terms found in text, in match order.
func (m *Moderator) Scan(text string) []string {
	normalized := normalizeRunes([]rune(text))
	if len(normalized) == 0 {
		return nil
	}

	spans := m.matcher.MultiPatternSearch(normalized, false)
	if len(spans) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(spans))
	var terms []string
	for _, span := range spans {
		term := string(span.Word)
		if _, dup := seen[term]; dup {
			continue
		}
		seen[term] = struct{}{}
		terms = append(terms, term)
	}
	return terms
}

// Censor replaces every flagged span in text with the censor character.
func (m *Moderator) Censor(text string) string {
	runes := []rune(text)
	normalized := normalizeRunes(runes)
	if len(normalized) != len(runes) {
		// Normalization is rune-for-rune, lengths always agree.
		return text
	}

	spans := m.matcher.MultiPatternSearch(normalized, false)
	for _, span := range spans {
		for i := span.Pos; i < span.Pos+len(span.Word) && i < len(runes); i++ {
			runes[i] = m.censoredChar
		}
	}
	return string(runes)
}

// normalizeRunes lowercases and strips diacritics rune-for-rune so match
// positions map back onto the original text.
func normalizeRunes(in []rune) []rune {
	out := make([]rune, len(in))
	for i, r := range in {
		r = unicode.ToLower(r)
		if replacement, ok := diacritics[r]; ok {
			r = replacement
		}
		out[i] = r
	}
	return out
}

var diacritics = func() map[rune]rune {
	table := map[rune]string{
		'a': "àáâãäå", 'c': "ç", 'e': "èéêë",
		'i': "ìíîï", 'n': "ñ", 'o': "òóôõö",
		'u': "ùúûü", 'y': "ýÿ",
	}
	m := make(map[rune]rune)
	for base, variants := range table {
		for _, variant := range strings.ToLower(variants) {
			m[variant] = base
		}
	}
	return m
}()

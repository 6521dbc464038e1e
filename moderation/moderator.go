// Package moderation implements the client-side muted-words filter. Words
// are matched with an Aho-Corasick automaton over a normalized view of the
// text (lowercased, separators stripped), so "sp-am" still matches "spam";
// masking is applied back onto the original runes.
package moderation

import (
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"

	"social-sync/errors"
)

type Moderator struct {
	matcher  *goahocorasick.Machine
	maskRune rune
}

type textMapping struct {
	normalized []rune
	origIdx    []int
}

func NewModerator(mutedWords []string, maskRune rune) (*Moderator, error) {
	if len(mutedWords) == 0 {
		return nil, errors.ErrEmptyWords
	}

	patterns := make([][]rune, len(mutedWords))
	for i, word := range mutedWords {
		patterns[i] = normalizeRunes([]rune(word))
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	return &Moderator{matcher: m, maskRune: maskRune}, nil
}

// Censor masks every muted span and reports whether anything matched.
func (m *Moderator) Censor(original string) (string, bool) {
	mapping := normalize(original)
	if len(mapping.normalized) == 0 {
		return original, false
	}

	spans := m.matcher.MultiPatternSearch(mapping.normalized, false)
	if len(spans) == 0 {
		return original, false
	}

	origRunes := []rune(original)
	for _, span := range spans {
		start := span.Pos
		end := start + len(span.Word)
		if start < 0 || end > len(mapping.origIdx) {
			continue
		}
		for i := mapping.origIdx[start]; i <= mapping.origIdx[end-1]; i++ {
			origRunes[i] = m.maskRune
		}
	}
	return string(origRunes), true
}

// Matches reports whether the text contains any muted word.
func (m *Moderator) Matches(text string) bool {
	mapping := normalize(text)
	if len(mapping.normalized) == 0 {
		return false
	}
	return len(m.matcher.MultiPatternSearch(mapping.normalized, true)) > 0
}

// normalize lowercases the text and drops separator noise, tracking the
// original rune position of every kept rune for masking.
func normalize(input string) textMapping {
	origRunes := []rune(input)
	mapping := textMapping{
		normalized: make([]rune, 0, len(origRunes)),
		origIdx:    make([]int, 0, len(origRunes)),
	}
	for i, r := range origRunes {
		if isNoise(r) {
			continue
		}
		mapping.normalized = append(mapping.normalized, unicode.ToLower(r))
		mapping.origIdx = append(mapping.origIdx, i)
	}
	return mapping
}

func normalizeRunes(input []rune) []rune {
	out := make([]rune, 0, len(input))
	for _, r := range input {
		if isNoise(r) {
			continue
		}
		out = append(out, unicode.ToLower(r))
	}
	return out
}

func isNoise(r rune) bool {
	return unicode.IsSpace(r) || unicode.IsPunct(r)
}

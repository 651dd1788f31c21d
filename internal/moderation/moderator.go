// Package moderation screens candidate keywords against a forbidden-term
// blocklist with an allow-list override for benign carriers.
package moderation

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Moderator decides whether a candidate keyword is admissible. It holds its
// term lists for its whole lifetime; construction fails upstream if the lists
// cannot be loaded, so a Moderator never silently allows everything.
type Moderator struct {
	forbidden []string
	allowed   []string
}

// New creates a Moderator from explicit term lists. Terms are canonicalized
// once here so IsAdmissible only canonicalizes its input.
func New(forbidden, allowed []string) *Moderator {
	m := &Moderator{
		forbidden: make([]string, 0, len(forbidden)),
		allowed:   make([]string, 0, len(allowed)),
	}
	for _, t := range forbidden {
		if c := canonical(t); c != "" {
			m.forbidden = append(m.forbidden, c)
		}
	}
	for _, t := range allowed {
		if c := canonical(t); c != "" {
			m.allowed = append(m.allowed, c)
		}
	}
	return m
}

// IsAdmissible reports whether the keyword is free of forbidden terms.
// Allow-listed terms are stripped first: an innocuous word that happens to
// contain a forbidden fragment must not trip the blocklist, so its legitimate
// carriers are removed before the substring scan runs. Pure predicate.
func (m *Moderator) IsAdmissible(text string) bool {
	s := canonical(text)
	for _, a := range m.allowed {
		s = strings.ReplaceAll(s, a, "")
	}
	for _, f := range m.forbidden {
		if strings.Contains(s, f) {
			return false
		}
	}
	return true
}

// canonical lowercases and NFC-normalizes a term. The word lists mix composed
// and decomposed Hangul, which must compare equal.
func canonical(s string) string {
	return norm.NFC.String(strings.ToLower(strings.TrimSpace(s)))
}

package typograf

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Go's regexp has no lookaround, so contextual rules pair a pattern with
// explicit before/after rune predicates instead. Matches are collected
// against one text snapshot and the output is assembled in a single sweep,
// keeping every protected-range offset valid throughout the rule.

// runeBefore returns the rune ending at byte offset i.
func runeBefore(s string, i int) (rune, bool) {
	if i <= 0 || i > len(s) {
		return 0, false
	}
	r, size := utf8.DecodeLastRuneInString(s[:i])
	if size == 0 {
		return 0, false
	}
	return r, true
}

// runeAt returns the rune starting at byte offset i.
func runeAt(s string, i int) (rune, bool) {
	if i < 0 || i >= len(s) {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(s[i:])
	if size == 0 {
		return 0, false
	}
	return r, true
}

// replaceMatches rewrites every match of re, skipping matches that touch a
// protected range. repl receives the matched text and its span; returning
// the match unchanged leaves the text alone.
func replaceMatches(text string, ctx RuleContext, re *regexp.Regexp, repl func(match string, start, end int) string) string {
	spans := re.FindAllStringIndex(text, -1)
	if len(spans) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for _, span := range spans {
		start, end := span[0], span[1]
		b.WriteString(text[last:start])
		if ctx.overlapsProtected(start, end) {
			b.WriteString(text[start:end])
		} else {
			b.WriteString(repl(text[start:end], start, end))
		}
		last = end
	}
	b.WriteString(text[last:])
	return b.String()
}

// replaceSubmatches is replaceMatches with access to submatch spans. groups
// holds pairs of byte offsets as produced by FindAllStringSubmatchIndex.
func replaceSubmatches(text string, ctx RuleContext, re *regexp.Regexp, repl func(match string, groups []int) string) string {
	spans := re.FindAllStringSubmatchIndex(text, -1)
	if len(spans) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for _, span := range spans {
		start, end := span[0], span[1]
		b.WriteString(text[last:start])
		if ctx.overlapsProtected(start, end) {
			b.WriteString(text[start:end])
		} else {
			b.WriteString(repl(text[start:end], span))
		}
		last = end
	}
	b.WriteString(text[last:])
	return b.String()
}

// applyUntilStable reruns fn until output stops changing, bounded by limit.
// Rules whose matches consume the separator needed by the next overlapping
// match (chained short-word gluing) converge in two or three passes.
func applyUntilStable(text string, limit int, fn func(string) string) string {
	for i := 0; i < limit; i++ {
		next := fn(text)
		if next == text {
			return text
		}
		text = next
	}
	return text
}

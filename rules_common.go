package typograf

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

func commonRules() []Rule {
	return []Rule{
		{
			ID: "common/case/caps",
			Names: map[Locale]string{
				LocaleEnglish: "Fix caps lock",
				LocaleRussian: "Исправление CAPS LOCK",
			},
			Locale:   LocaleCommon,
			Group:    GroupCase,
			Enabled:  false,
			Priority: 5,
			Apply:    fixCapsLock,
		},
		{
			ID: "common/special/ellipsis",
			Names: map[Locale]string{
				LocaleEnglish: "Ellipsis",
				LocaleRussian: "Многоточие",
			},
			Locale:   LocaleCommon,
			Group:    GroupSpecial,
			Enabled:  true,
			Priority: 40,
			Apply:    replaceEllipsis,
		},
		{
			ID: "common/punct/double",
			Names: map[Locale]string{
				LocaleEnglish: "Collapse repeated punctuation",
				LocaleRussian: "Повторяющиеся знаки",
			},
			Locale:   LocaleCommon,
			Group:    GroupPunctuation,
			Enabled:  true,
			Priority: 44,
			Apply:    collapseRepeatedPunctuation,
		},
		{
			ID: "common/space/collapse",
			Names: map[Locale]string{
				LocaleEnglish: "Collapse repeated spaces",
				LocaleRussian: "Лишние пробелы",
			},
			Locale:   LocaleCommon,
			Group:    GroupSpaces,
			Enabled:  true,
			Priority: 48,
			Apply:    collapseSpaces,
		},
		{
			ID: "common/space/punctuation",
			Names: map[Locale]string{
				LocaleEnglish: "Spaces around punctuation",
				LocaleRussian: "Пробелы у знаков препинания",
			},
			Locale:   LocaleCommon,
			Group:    GroupSpaces,
			Enabled:  true,
			Priority: 52,
			Apply:    fixPunctuationSpaces,
		},
		{
			ID: "common/number/range",
			Names: map[Locale]string{
				LocaleEnglish: "Numeric ranges",
				LocaleRussian: "Числовые диапазоны",
			},
			Locale:   LocaleCommon,
			Group:    GroupNumbers,
			Enabled:  true,
			Priority: 60,
			Apply:    fixNumericRanges,
		},
		{
			ID: "common/layout/orphan",
			Names: map[Locale]string{
				LocaleEnglish: "Glue last words",
				LocaleRussian: "Висячие слова",
			},
			Locale:  LocaleCommon,
			Group:   GroupLayout,
			Enabled: false,
			// Runs last so the non-breaking spaces it inserts are not
			// stripped by earlier space rules.
			Priority: 900,
			Apply:    glueOrphanWords,
		},
	}
}

// Five uppercase letters is the shortest run worth fixing; anything below
// is likely an acronym.
var capsWordPattern = regexp.MustCompile(`\p{Lu}{5,}`)

// fixCapsLock rewrites all-caps words using locale aware casing: the word
// keeps a capital at sentence starts and is lowered elsewhere.
func fixCapsLock(text string, ctx RuleContext) string {
	lower := cases.Lower(localeTag(ctx.Locale))
	title := cases.Title(localeTag(ctx.Locale))

	return replaceMatches(text, ctx, capsWordPattern, func(match string, start, end int) string {
		if r, ok := runeBefore(text, start); ok && unicode.IsLetter(r) {
			return match
		}
		if r, ok := runeAt(text, end); ok && unicode.IsLetter(r) {
			return match
		}
		if atSentenceStart(text, start) {
			return title.String(match)
		}
		return lower.String(match)
	})
}

// atSentenceStart reports whether the word starting at offset opens a
// sentence: only whitespace, quotes or brackets separate it from the text
// start or from sentence-final punctuation.
func atSentenceStart(text string, offset int) bool {
	for offset > 0 {
		r, ok := runeBefore(text, offset)
		if !ok {
			return true
		}
		switch {
		case r == '\n', r == '.', r == '!', r == '?', r == '…', r == ':':
			return true
		case unicode.IsSpace(r), strings.ContainsRune(`«„“"'([{—–-`, r):
			offset -= len(string(r))
		default:
			return false
		}
	}
	return true
}

var ellipsisPattern = regexp.MustCompile(`\.{3,}`)

func replaceEllipsis(text string, ctx RuleContext) string {
	return replaceMatches(text, ctx, ellipsisPattern, func(string, int, int) string {
		return "…"
	})
}

var (
	repeatedSeparatorPattern  = regexp.MustCompile(`([,;:])[,;:]+`)
	repeatedTerminatorPattern = regexp.MustCompile(`([!?])(?:[!?]){3,}`)
)

// collapseRepeatedPunctuation drops stuttered separators and caps runs of
// exclamation or question marks at three.
func collapseRepeatedPunctuation(text string, ctx RuleContext) string {
	text = replaceSubmatches(text, ctx, repeatedSeparatorPattern, func(_ string, groups []int) string {
		return text[groups[2]:groups[3]]
	})
	ctx.Protected = FindProtectedRanges(text)
	return replaceSubmatches(text, ctx, repeatedTerminatorPattern, func(match string, groups []int) string {
		mark := match[groups[2]-groups[0] : groups[3]-groups[0]]
		return strings.Repeat(mark, 3)
	})
}

var (
	midlineSpaceRunPattern = regexp.MustCompile(`(\S)[ \t]{2,}`)
	trailingSpacePattern   = regexp.MustCompile(`[ \t]+(\r?\n|$)`)
)

// collapseSpaces squeezes mid-line runs of spaces and tabs to one space
// and strips trailing whitespace. Leading indentation is left alone.
func collapseSpaces(text string, ctx RuleContext) string {
	text = replaceMatches(text, ctx, midlineSpaceRunPattern, func(match string, _, _ int) string {
		_, size := utf8.DecodeRuneInString(match)
		return match[:size] + " "
	})
	ctx.Protected = FindProtectedRanges(text)
	return replaceSubmatches(text, ctx, trailingSpacePattern, func(match string, groups []int) string {
		return match[groups[2]-groups[0]:]
	})
}

var (
	spaceBeforePunctPattern = regexp.MustCompile(`[ \t]+([,.])`)
	missingSpacePattern     = regexp.MustCompile(`([,;!?])(\pL)`)
)

// fixPunctuationSpaces removes whitespace before commas and periods and
// restores the missing space after a separator followed by a letter.
// Decimal commas stay intact because a digit neighbor is not a letter.
func fixPunctuationSpaces(text string, ctx RuleContext) string {
	text = replaceSubmatches(text, ctx, spaceBeforePunctPattern, func(match string, groups []int) string {
		return match[groups[2]-groups[0]:]
	})
	ctx.Protected = FindProtectedRanges(text)
	return replaceSubmatches(text, ctx, missingSpacePattern, func(match string, groups []int) string {
		letter := match[groups[3]-groups[2]:]
		if r, _ := utf8.DecodeRuneInString(letter); isCJK(r) {
			// CJK scripts do not space their punctuation; the width
			// rules own those marks.
			return match
		}
		return match[:groups[3]-groups[2]] + " " + letter
	})
}

func isCJK(r rune) bool {
	return unicode.Is(unicode.Han, r) ||
		unicode.Is(unicode.Hiragana, r) ||
		unicode.Is(unicode.Katakana, r)
}

var numericRangePattern = regexp.MustCompile(`(\d)-(\d)`)

// fixNumericRanges replaces the hyphen between two numerals with an en
// dash. Chained hyphen groups (dates, phone numbers) are left alone, as is
// anything inside a protected range.
func fixNumericRanges(text string, ctx RuleContext) string {
	return replaceMatches(text, ctx, numericRangePattern, func(match string, start, end int) string {
		if partOfHyphenChain(text, start, end) {
			return match
		}
		return match[:1] + "–" + match[2:]
	})
}

// partOfHyphenChain reports whether the digit-hyphen-digit match extends a
// longer hyphenated digit sequence such as 2020-01-02.
func partOfHyphenChain(text string, start, end int) bool {
	i := start
	for i > 0 {
		r, ok := runeBefore(text, i)
		if !ok || !unicode.IsDigit(r) {
			break
		}
		i--
	}
	if r, ok := runeBefore(text, i); ok && r == '-' {
		return true
	}
	i = end
	for i < len(text) {
		r, ok := runeAt(text, i)
		if !ok || !unicode.IsDigit(r) {
			break
		}
		i++
	}
	if r, ok := runeAt(text, i); ok && r == '-' {
		return true
	}
	return false
}

// glueOrphanWords joins the last two tokens of every line holding at least
// three space-separated tokens with a non-breaking space, keeping a lone
// short word from wrapping onto its own line.
func glueOrphanWords(text string, _ RuleContext) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		trimmed := strings.TrimRight(line, " \t")
		suffix := line[len(trimmed):]

		tokens := strings.FieldsFunc(trimmed, func(r rune) bool {
			return r == ' ' || r == '\t'
		})
		if len(tokens) < 3 {
			continue
		}

		idx := strings.LastIndexAny(trimmed, " \t")
		if idx < 0 {
			continue
		}
		// Already glued: the segment after the last plain space carries a
		// non-breaking space, so a rerun would chain one more pair per pass.
		if strings.ContainsRune(trimmed[idx+1:], '\u00A0') {
			continue
		}
		lines[i] = trimmed[:idx] + " " + trimmed[idx+1:] + suffix
	}
	return strings.Join(lines, "\n")
}

package typograf

import (
	"regexp"
	"strings"
	"unicode"
)

func frenchRules() []Rule {
	return []Rule{
		{
			ID: "fr/quotes/guillemets",
			Names: map[Locale]string{
				LocaleEnglish: "Guillemet quotes",
				LocaleFrench:  "Guillemets",
			},
			Locale:   LocaleFrench,
			Group:    GroupQuotes,
			Enabled:  true,
			Priority: 30,
			Apply:    frenchGuillemets,
		},
		{
			ID: "fr/dash/em",
			Names: map[Locale]string{
				LocaleEnglish: "Em dash",
				LocaleFrench:  "Tiret cadratin",
			},
			Locale:   LocaleFrench,
			Group:    GroupDashes,
			Enabled:  true,
			Priority: 35,
			Apply:    spacedEmDash,
		},
		{
			ID: "fr/space/punctuation",
			Names: map[Locale]string{
				LocaleEnglish: "French punctuation spacing",
				LocaleFrench:  "Espaces de ponctuation",
			},
			Locale:   LocaleFrench,
			Group:    GroupSpaces,
			Enabled:  true,
			Priority: 52,
			Apply:    frenchPunctuationSpaces,
		},
		{
			ID: "fr/number/decimal-comma",
			Names: map[Locale]string{
				LocaleEnglish: "Decimal comma",
				LocaleFrench:  "Virgule décimale",
			},
			Locale:   LocaleFrench,
			Group:    GroupNumbers,
			Enabled:  true,
			Priority: 64,
			Apply:    decimalComma,
		},
	}
}

var (
	afterOpenGuillemet   = regexp.MustCompile(`«[ \x{A0}\x{202F}]*`)
	beforeCloseGuillemet = regexp.MustCompile(`[ \x{A0}\x{202F}]*»`)
)

// Interior guillemet padding is stripped before reclassification:
// otherwise the whitespace it adds makes a correct closing guillemet look
// like an opener on the next run.
var guillemetPadding = strings.NewReplacer(
	"« ", "«", "« ", "«", "« ", "«",
	" »", "»", " »", "»", " »", "»",
)

// frenchGuillemets reclassifies quotes to « » with curly doubles inside,
// then pads the guillemet interiors with narrow non-breaking spaces.
func frenchGuillemets(text string, ctx RuleContext) string {
	text = guillemetPadding.Replace(text)
	ctx.Protected = FindProtectedRanges(text)
	text = reclassifyQuotes(text, ctx, frenchQuoteStyle, baseQuoteMarks)
	ctx.Protected = FindProtectedRanges(text)
	text = replaceMatches(text, ctx, afterOpenGuillemet, func(string, int, int) string {
		return "« "
	})
	ctx.Protected = FindProtectedRanges(text)
	return replaceMatches(text, ctx, beforeCloseGuillemet, func(string, int, int) string {
		return " »"
	})
}

var (
	// High punctuation takes a narrow non-breaking space, the colon a
	// full non-breaking space.
	beforeHighPunctPattern = regexp.MustCompile(`[ \t\x{A0}\x{202F}]*([;!?])`)
	beforeColonPattern     = regexp.MustCompile(`[ \t\x{A0}\x{202F}]*(:)`)
)

func frenchPunctuationSpaces(text string, ctx RuleContext) string {
	text = replaceSubmatches(text, ctx, beforeHighPunctPattern, func(match string, groups []int) string {
		mark := text[groups[2]:groups[3]]
		if repeatedMark(text, groups[2], groups[3]) {
			return match
		}
		return " " + mark
	})
	ctx.Protected = FindProtectedRanges(text)
	return replaceSubmatches(text, ctx, beforeColonPattern, func(match string, groups []int) string {
		if betweenDigits(text, groups[2], groups[3]) {
			// Clock times keep their colon tight.
			return match
		}
		return " :"
	})
}

// repeatedMark reports whether the mark at [start, end) extends a run of
// identical marks, as in !! or ?!.
func repeatedMark(text string, start, end int) bool {
	if r, ok := runeBefore(text, start); ok && (r == '!' || r == '?' || r == ';') {
		return true
	}
	if r, ok := runeAt(text, end); ok && (r == '!' || r == '?') {
		return true
	}
	return false
}

func betweenDigits(text string, start, end int) bool {
	before, okBefore := runeBefore(text, start)
	after, okAfter := runeAt(text, end)
	return okBefore && okAfter && unicode.IsDigit(before) && unicode.IsDigit(after)
}

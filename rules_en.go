package typograf

import "regexp"

func englishRules() []Rule {
	return []Rule{
		{
			ID: "en/quotes/curly",
			Names: map[Locale]string{
				LocaleEnglish: "Curly quotes",
			},
			Locale:   LocaleEnglish,
			Group:    GroupQuotes,
			Enabled:  true,
			Priority: 30,
			Apply:    englishQuotes,
		},
		{
			ID: "en/dash/em",
			Names: map[Locale]string{
				LocaleEnglish: "Em and en dashes",
			},
			Locale:   LocaleEnglish,
			Group:    GroupDashes,
			Enabled:  true,
			Priority: 35,
			Apply:    englishDashes,
		},
	}
}

var (
	tripleHyphenPattern = regexp.MustCompile(`---`)
	doubleHyphenPattern = regexp.MustCompile(`--`)
	spacedHyphenPattern = regexp.MustCompile(`[ \t]-[ \t]`)
)

// englishDashes follows American convention: --- and a spaced hyphen
// become a closed-up em dash, -- becomes an en dash.
func englishDashes(text string, ctx RuleContext) string {
	text = replaceMatches(text, ctx, tripleHyphenPattern, func(string, int, int) string {
		return "—"
	})
	ctx.Protected = FindProtectedRanges(text)
	text = replaceMatches(text, ctx, doubleHyphenPattern, func(string, int, int) string {
		return "–"
	})
	ctx.Protected = FindProtectedRanges(text)
	return replaceMatches(text, ctx, spacedHyphenPattern, func(string, int, int) string {
		return "—"
	})
}

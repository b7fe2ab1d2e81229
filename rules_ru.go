package typograf

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

func russianRules() []Rule {
	return []Rule{
		{
			ID: "ru/yo/basic",
			Names: map[Locale]string{
				LocaleEnglish: "Yo restoration",
				LocaleRussian: "Буква ё",
			},
			Locale:   LocaleRussian,
			Group:    GroupYo,
			Enabled:  true,
			Priority: 25,
			Apply:    restoreYo,
		},
		{
			ID: "ru/quotes/guillemets",
			Names: map[Locale]string{
				LocaleEnglish: "Guillemet quotes",
				LocaleRussian: "Кавычки-ёлочки",
			},
			Locale:   LocaleRussian,
			Group:    GroupQuotes,
			Enabled:  true,
			Priority: 30,
			Apply: func(text string, ctx RuleContext) string {
				return reclassifyQuotes(text, ctx, russianQuoteStyle, baseQuoteMarks)
			},
		},
		{
			ID: "ru/dash/em",
			Names: map[Locale]string{
				LocaleEnglish: "Em dash",
				LocaleRussian: "Тире",
			},
			Locale:   LocaleRussian,
			Group:    GroupDashes,
			Enabled:  true,
			Priority: 35,
			Apply:    spacedEmDash,
		},
		{
			ID: "ru/punct/abbr",
			Names: map[Locale]string{
				LocaleEnglish: "Abbreviation spacing",
				LocaleRussian: "Сокращения",
			},
			Locale:   LocaleRussian,
			Group:    GroupPunctuation,
			Enabled:  true,
			Priority: 44,
			Apply:    fixAbbreviations,
		},
		{
			ID: "ru/space/short-words",
			Names: map[Locale]string{
				LocaleEnglish: "Glue short words",
				LocaleRussian: "Предлоги и союзы",
			},
			Locale:   LocaleRussian,
			Group:    GroupSpaces,
			Enabled:  true,
			Priority: 54,
			Apply:    glueShortWords,
		},
		{
			ID: "ru/number/units",
			Names: map[Locale]string{
				LocaleEnglish: "Glue numbers to units",
				LocaleRussian: "Числа и единицы",
			},
			Locale:   LocaleRussian,
			Group:    GroupNumbers,
			Enabled:  true,
			Priority: 62,
			Apply:    glueNumberUnits,
		},
		{
			ID: "ru/number/decimal-comma",
			Names: map[Locale]string{
				LocaleEnglish: "Decimal comma",
				LocaleRussian: "Десятичная запятая",
			},
			Locale:   LocaleRussian,
			Group:    GroupNumbers,
			Enabled:  true,
			Priority: 64,
			Apply:    decimalComma,
		},
		{
			ID: "ru/currency/ruble",
			Names: map[Locale]string{
				LocaleEnglish: "Ruble sign",
				LocaleRussian: "Знак рубля",
			},
			Locale:   LocaleRussian,
			Group:    GroupCurrency,
			Enabled:  false,
			Priority: 66,
			Apply:    rubleSign,
		},
	}
}

// Words whose ё is unambiguous; forms where е is also a valid word (все,
// нее, осел) never belong here.
var yoWords = map[string]string{
	"еще":       "ещё",
	"ее":        "её",
	"елка":      "ёлка",
	"елки":      "ёлки",
	"желтый":    "жёлтый",
	"зеленый":   "зелёный",
	"легкий":    "лёгкий",
	"веселый":   "весёлый",
	"тяжелый":   "тяжёлый",
	"твердый":   "твёрдый",
	"черный":    "чёрный",
	"серьезный": "серьёзный",
	"объем":     "объём",
	"прием":     "приём",
	"подъем":    "подъём",
	"расчет":    "расчёт",
	"отчет":     "отчёт",
	"причем":    "причём",
	"зачет":     "зачёт",
	"партнер":   "партнёр",
	"актер":     "актёр",
}

var cyrillicWordPattern = regexp.MustCompile(`[а-яёА-ЯЁ]+`)

// restoreYo replaces е with ё in dictionary words, keeping the original
// capitalization of the first letter.
func restoreYo(text string, ctx RuleContext) string {
	return replaceMatches(text, ctx, cyrillicWordPattern, func(match string, _, _ int) string {
		replacement, ok := yoWords[strings.ToLower(match)]
		if !ok {
			return match
		}
		if first, _ := utf8.DecodeRuneInString(match); unicode.IsUpper(first) {
			head, headSize := utf8.DecodeRuneInString(replacement)
			return string(unicode.ToUpper(head)) + replacement[headSize:]
		}
		return replacement
	})
}

var (
	dialogDashPattern = regexp.MustCompile(`(?m)^[-–—][ \t]+`)
	spacedDashPattern = regexp.MustCompile(`[ \x{A0}](?:--?|–|—)[ \t]`)
)

// spacedEmDash normalizes hyphens standing in for dashes: a non-breaking
// space glues the dash to the preceding word, and dialogue dashes at line
// starts become em dashes.
func spacedEmDash(text string, ctx RuleContext) string {
	text = replaceMatches(text, ctx, dialogDashPattern, func(string, int, int) string {
		return "— "
	})
	ctx.Protected = FindProtectedRanges(text)
	return replaceMatches(text, ctx, spacedDashPattern, func(string, int, int) string {
		return " — "
	})
}

var abbrPattern = regexp.MustCompile(`(?i)([тн])\.[ \x{A0}]?([едпкэ])\.`)

// Valid second letters per leading letter: т.е. т.д. т.п. т.к. and н.э.
var abbrCombos = map[string]string{"т": "едпк", "н": "э"}

// fixAbbreviations restores the non-breaking space inside compressed
// two-letter abbreviations (т.е. → т. е.).
func fixAbbreviations(text string, ctx RuleContext) string {
	return replaceSubmatches(text, ctx, abbrPattern, func(match string, groups []int) string {
		start := groups[0]
		if r, ok := runeBefore(text, start); ok && isCyrillicLetter(r) {
			return match
		}
		first := text[groups[2]:groups[3]]
		second := text[groups[4]:groups[5]]
		valid, ok := abbrCombos[strings.ToLower(first)]
		if !ok || !strings.Contains(valid, strings.ToLower(second)) {
			return match
		}
		return first + ". " + second + "."
	})
}

var shortWordPattern = regexp.MustCompile(`(?i)(^|[\s\x{A0}(«„—])` +
	`(в|во|на|не|но|и|а|с|со|к|ко|у|о|об|от|до|за|по|под|при|для|из|без|же|ли|бы|то) `)

// glueShortWords attaches short prepositions and conjunctions to the next
// word with a non-breaking space. Each match consumes the separator the
// next overlapping match needs, so the pattern runs to a fixed point with
// a small iteration cap.
func glueShortWords(text string, _ RuleContext) string {
	return applyUntilStable(text, 3, func(s string) string {
		ctx := RuleContext{Protected: FindProtectedRanges(s)}
		return replaceSubmatches(s, ctx, shortWordPattern, func(match string, groups []int) string {
			prefixLen := groups[3] - groups[2]
			wordLen := groups[5] - groups[4]
			return match[:prefixLen+wordLen] + " "
		})
	})
}

var unitPattern = regexp.MustCompile(`(\d)[ \t]+` +
	`(млрд|млн|тыс|мин|сек|мес|кг|мг|мм|мл|км|см|дм|гг|шт|чел|руб|коп|год|лет|г|м|л|т|ч|с)`)

// glueNumberUnits joins a numeral to its unit word with a non-breaking
// space so the pair never splits across lines.
func glueNumberUnits(text string, ctx RuleContext) string {
	return replaceSubmatches(text, ctx, unitPattern, func(match string, groups []int) string {
		if r, ok := runeAt(text, groups[1]); ok && isCyrillicLetter(r) {
			// Unit is a prefix of a longer word.
			return match
		}
		digit := match[:groups[3]-groups[2]]
		unit := text[groups[4]:groups[5]]
		return digit + " " + unit
	})
}

var decimalPattern = regexp.MustCompile(`\d+\.\d+`)

// decimalComma converts a decimal point to the comma used in Russian and
// French numerals. Dotted multi-part literals (IP addresses, versions) are
// already protected; a neighborhood check catches anything the patterns
// missed.
func decimalComma(text string, ctx RuleContext) string {
	return replaceMatches(text, ctx, decimalPattern, func(match string, start, end int) string {
		if r, ok := runeBefore(text, start); ok && (r == '.' || r == ',') {
			return match
		}
		if r, ok := runeAt(text, end); ok && r == '.' {
			if next, ok := runeAt(text, end+1); ok && unicode.IsDigit(next) {
				return match
			}
		}
		return strings.Replace(match, ".", ",", 1)
	})
}

var rublePattern = regexp.MustCompile(`(\d)[ \x{A0}]?(руб\.?|р\.)`)

// rubleSign replaces the руб. abbreviation after a numeral with the ruble
// currency sign.
func rubleSign(text string, ctx RuleContext) string {
	return replaceSubmatches(text, ctx, rublePattern, func(match string, groups []int) string {
		if r, ok := runeAt(text, groups[1]); ok && isCyrillicLetter(r) {
			return match
		}
		return match[:groups[3]-groups[2]] + " ₽"
	})
}

func isCyrillicLetter(r rune) bool {
	return r >= 0x0400 && r <= 0x04FF
}

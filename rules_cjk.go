package typograf

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/width"
)

func chineseRules() []Rule {
	return []Rule{
		{
			ID: "zh/quotes/corner",
			Names: map[Locale]string{
				LocaleEnglish: "Corner bracket quotes",
				LocaleChinese: "直角引号",
			},
			Locale:   LocaleChinese,
			Group:    GroupQuotes,
			Enabled:  true,
			Priority: 30,
			Apply:    cornerQuotes,
		},
		{
			ID: "zh/space/latin",
			Names: map[Locale]string{
				LocaleEnglish: "Space between CJK and Latin",
				LocaleChinese: "中英文间距",
			},
			Locale:   LocaleChinese,
			Group:    GroupSpaces,
			Enabled:  true,
			Priority: 56,
			Apply:    spaceCJKLatin,
		},
		{
			ID: "zh/width/punctuation",
			Names: map[Locale]string{
				LocaleEnglish: "Fullwidth punctuation",
				LocaleChinese: "全角标点",
			},
			Locale:   LocaleChinese,
			Group:    GroupWidth,
			Enabled:  true,
			Priority: 58,
			Apply:    chineseFullwidthPunctuation,
		},
	}
}

func japaneseRules() []Rule {
	return []Rule{
		{
			ID: "ja/quotes/corner",
			Names: map[Locale]string{
				LocaleEnglish:  "Corner bracket quotes",
				LocaleJapanese: "鉤括弧",
			},
			Locale:   LocaleJapanese,
			Group:    GroupQuotes,
			Enabled:  true,
			Priority: 30,
			Apply:    cornerQuotes,
		},
		{
			ID: "ja/space/fullwidth",
			Names: map[Locale]string{
				LocaleEnglish:  "Remove spaces between fullwidth characters",
				LocaleJapanese: "全角間の空白除去",
			},
			Locale:   LocaleJapanese,
			Group:    GroupSpaces,
			Enabled:  true,
			Priority: 56,
			Apply:    removeFullwidthSpaces,
		},
		{
			ID: "ja/width/punctuation",
			Names: map[Locale]string{
				LocaleEnglish:  "Fullwidth punctuation",
				LocaleJapanese: "全角約物",
			},
			Locale:   LocaleJapanese,
			Group:    GroupWidth,
			Enabled:  true,
			Priority: 58,
			Apply:    japaneseFullwidthPunctuation,
		},
	}
}

var (
	cjkThenLatinPattern = regexp.MustCompile(`([\p{Han}\p{Hiragana}\p{Katakana}])([A-Za-z0-9])`)
	latinThenCJKPattern = regexp.MustCompile(`([A-Za-z0-9])([\p{Han}\p{Hiragana}\p{Katakana}])`)
)

// spaceCJKLatin inserts the conventional thin separating space between
// ideographs and adjacent Latin letters or digits.
func spaceCJKLatin(text string, ctx RuleContext) string {
	text = replaceSubmatches(text, ctx, cjkThenLatinPattern, func(match string, groups []int) string {
		split := groups[3] - groups[2]
		return match[:split] + " " + match[split:]
	})
	ctx.Protected = FindProtectedRanges(text)
	return replaceSubmatches(text, ctx, latinThenCJKPattern, func(match string, groups []int) string {
		split := groups[3] - groups[2]
		return match[:split] + " " + match[split:]
	})
}

var fullwidthGapPattern = regexp.MustCompile(
	`([\p{Han}\p{Hiragana}\p{Katakana}。、！？」』])[ ]+([\p{Han}\p{Hiragana}\p{Katakana}「『])`)

// removeFullwidthSpaces drops ASCII spaces separating two fullwidth
// characters; Japanese text does not space its words.
func removeFullwidthSpaces(text string, ctx RuleContext) string {
	return applyUntilStable(text, 3, func(s string) string {
		ctx := RuleContext{Locale: ctx.Locale, Protected: FindProtectedRanges(s)}
		return replaceSubmatches(s, ctx, fullwidthGapPattern, func(match string, groups []int) string {
			first := s[groups[2]:groups[3]]
			second := s[groups[4]:groups[5]]
			return first + second
		})
	})
}

// Ideographic stops replace the Latin period; everything else maps through
// the width transformer.
func chineseFullwidthPunctuation(text string, ctx RuleContext) string {
	return widenPunctuationAfterCJK(text, ctx, map[rune]string{'.': "。", ',': "，"})
}

func japaneseFullwidthPunctuation(text string, ctx RuleContext) string {
	return widenPunctuationAfterCJK(text, ctx, map[rune]string{'.': "。", ',': "、"})
}

var halfwidthPunctPattern = regexp.MustCompile(`[,.!?:;()]`)

// isCJKContext additionally accepts CJK punctuation and fullwidth forms,
// so a halfwidth mark after a closing bracket still widens.
func isCJKContext(r rune) bool {
	return isCJK(r) || (r >= 0x3000 && r <= 0x303F) || (r >= 0xFF00 && r <= 0xFFEF)
}

// widenPunctuationAfterCJK converts halfwidth punctuation that directly
// follows a CJK character to its fullwidth form. Comma and period use the
// locale's own glyphs; the rest go through x/text/width.
func widenPunctuationAfterCJK(text string, ctx RuleContext, overrides map[rune]string) string {
	return replaceMatches(text, ctx, halfwidthPunctPattern, func(match string, start, end int) string {
		prev, ok := runeBefore(text, start)
		if !ok || !isCJKContext(prev) {
			return match
		}
		r, _ := utf8.DecodeRuneInString(match)
		if replacement, ok := overrides[r]; ok {
			// A dotted numeral after an ideograph is still a numeral.
			if next, ok := runeAt(text, end); ok && r == '.' && next >= '0' && next <= '9' {
				return match
			}
			return replacement
		}
		widened := width.Widen.String(match)
		if widened == match || strings.ContainsRune(widened, utf8.RuneError) {
			return match
		}
		return widened
	})
}

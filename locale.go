package typograf

import (
	"strings"

	"golang.org/x/text/language"
)

// ParseLocale resolves a user supplied locale identifier to one of the
// supported locales. Full BCP-47 tags collapse to their base language, so
// "ru-RU", "zh_CN" and "ja-JP" all resolve. Empty, "auto" and unrecognized
// values report false, which callers treat as "detect from text".
func ParseLocale(value string) (Locale, bool) {
	normalized := strings.ToLower(normalizeLocale(value))
	if normalized == "" || normalized == "auto" {
		return "", false
	}

	if locale := Locale(normalized); locale.Valid() {
		return locale, true
	}

	tag, err := language.Parse(normalized)
	if err != nil {
		return "", false
	}

	base, confidence := tag.Base()
	if confidence == language.No {
		return "", false
	}

	if locale := Locale(base.String()); locale.Valid() {
		return locale, true
	}
	return "", false
}

// normalizeLocale normalizes a single locale identifier by replacing
// underscores with hyphens and trimming whitespace.
func normalizeLocale(locale string) string {
	return strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
}

// localeTag maps a supported locale to its x/text language tag, used by
// case transformations that need language aware rules.
func localeTag(locale Locale) language.Tag {
	switch locale {
	case LocaleRussian:
		return language.Russian
	case LocaleFrench:
		return language.French
	case LocaleChinese:
		return language.SimplifiedChinese
	case LocaleJapanese:
		return language.Japanese
	default:
		return language.English
	}
}

package typograf

import "unicode"

// French diacritics that distinguish French from plain-Latin text. Plain
// Latin letters are counted separately so the ratio stays meaningful.
var frenchDiacritics = map[rune]struct{}{
	'à': {}, 'â': {}, 'ä': {}, 'ç': {}, 'é': {}, 'è': {}, 'ê': {}, 'ë': {},
	'î': {}, 'ï': {}, 'ô': {}, 'ö': {}, 'ù': {}, 'û': {}, 'ü': {}, 'ÿ': {},
	'œ': {}, 'æ': {},
	'À': {}, 'Â': {}, 'Ä': {}, 'Ç': {}, 'É': {}, 'È': {}, 'Ê': {}, 'Ë': {},
	'Î': {}, 'Ï': {}, 'Ô': {}, 'Ö': {}, 'Ù': {}, 'Û': {}, 'Ü': {}, 'Ÿ': {},
	'Œ': {}, 'Æ': {},
}

// DetectLocale classifies text into a supported locale using a single-pass
// code point histogram. It is a fast heuristic, not a language classifier:
// mixed-script text is decided by a fixed priority order, not a vote.
// Digits and punctuation are not classifiable, so purely numeric text falls
// through to English.
func DetectLocale(text string) Locale {
	var cyrillic, cjk, kana, french, latin, total int

	for _, r := range text {
		switch {
		case r >= 0x0400 && r <= 0x04FF:
			cyrillic++
		case r >= 0x3040 && r <= 0x30FF:
			kana++
		case (r >= 0x4E00 && r <= 0x9FFF) || (r >= 0x3400 && r <= 0x4DBF) ||
			(r >= 0xF900 && r <= 0xFAFF):
			cjk++
		default:
			if _, ok := frenchDiacritics[r]; ok {
				french++
				break
			}
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				latin++
				break
			}
			continue
		}
		total++
	}

	if total == 0 {
		return LocaleEnglish
	}

	// Kana beats CJK ideographs: Japanese mixes kanji and kana, and kana
	// presence is the reliable signal.
	if float64(kana)/float64(total) > 0.05 {
		return LocaleJapanese
	}
	if float64(cjk)/float64(total) > 0.2 {
		return LocaleChinese
	}
	if float64(cyrillic)/float64(total) > 0.2 {
		return LocaleRussian
	}
	if french > 0 && float64(french)/float64(french+latin) > 0.03 {
		return LocaleFrench
	}
	if latin > 0 && hasFrenchPunctuationSpacing(text) {
		return LocaleFrench
	}
	return LocaleEnglish
}

// hasFrenchPunctuationSpacing reports whether any whitespace immediately
// precedes ; : ! or ?, the French spacing convention.
func hasFrenchPunctuationSpacing(text string) bool {
	var prev rune
	for _, r := range text {
		switch r {
		case ';', ':', '!', '?':
			if unicode.IsSpace(prev) {
				return true
			}
		}
		prev = r
	}
	return false
}

package typograf

import "testing"

func TestDetectLocale(t *testing.T) {
	cases := []struct {
		name string
		text string
		want Locale
	}{
		{"russian", "Привет, как дела?", LocaleRussian},
		{"chinese", "你好世界，这是一个测试", LocaleChinese},
		{"japanese kana beats kanji", "こんにちは世界、テストです", LocaleJapanese},
		{"empty", "", LocaleEnglish},
		{"digits only", "12345", LocaleEnglish},
		{"mixed cyrillic dominates", "Привет world, как дела today?", LocaleRussian},
		{"plain english", "Hello there, how are you today?", LocaleEnglish},
		{"french diacritics", "Le café est très agréable en été", LocaleFrench},
		{"french punctuation spacing", "Est-ce que tu viens demain ?", LocaleFrench},
		{"punctuation only", "?!...", LocaleEnglish},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DetectLocale(tc.text); got != tc.want {
				t.Fatalf("DetectLocale(%q) = %q, want %q", tc.text, got, tc.want)
			}
		})
	}
}

func TestDetectLocaleNeverFails(t *testing.T) {
	inputs := []string{
		"\x00\x01\x02",
		"�",
		"   \t\n",
		"🙂🙂🙂",
	}
	for _, input := range inputs {
		if got := DetectLocale(input); !got.Valid() {
			t.Fatalf("DetectLocale(%q) = %q, want a valid locale", input, got)
		}
	}
}

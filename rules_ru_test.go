package typograf

import "testing"

func applyRusRule(t *testing.T, id, text string) string {
	t.Helper()
	rule, ok := defaultRegistry.Rule(id)
	if !ok {
		t.Fatalf("rule %q not in catalog", id)
	}
	ctx := RuleContext{Locale: LocaleRussian, Protected: FindProtectedRanges(text)}
	return rule.Apply(text, ctx)
}

func TestRestoreYo(t *testing.T) {
	cases := []struct{ in, want string }{
		{"еще раз", "ещё раз"},
		{"Еще раз", "Ещё раз"},
		{"зеленый и черный", "зелёный и чёрный"},
		{"полный расчет", "полный расчёт"},
		{"все на месте", "все на месте"}, // ambiguous, never touched
		{"ещё", "ещё"},
	}
	for _, tc := range cases {
		if got := applyRusRule(t, "ru/yo/basic", tc.in); got != tc.want {
			t.Fatalf("restoreYo(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSpacedEmDash(t *testing.T) {
	cases := []struct{ in, want string }{
		{"осень - пора дождей", "осень — пора дождей"},
		{"осень -- пора", "осень — пора"},
		{"- Привет, - сказал он", "— Привет, — сказал он"},
		{"уже — верно", "уже — верно"},
		{"из-за леса", "из-за леса"},
	}
	for _, tc := range cases {
		if got := applyRusRule(t, "ru/dash/em", tc.in); got != tc.want {
			t.Fatalf("spacedEmDash(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFixAbbreviations(t *testing.T) {
	cases := []struct{ in, want string }{
		{"яблоки, груши и т.д.", "яблоки, груши и т. д."},
		{"т.е. немедленно", "т. е. немедленно"},
		{"до н.э.", "до н. э."},
		{"нет.да", "нет.да"},
		{"т. е. уже верно", "т. е. уже верно"},
	}
	for _, tc := range cases {
		if got := applyRusRule(t, "ru/punct/abbr", tc.in); got != tc.want {
			t.Fatalf("fixAbbreviations(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestGlueShortWords(t *testing.T) {
	cases := []struct{ in, want string }{
		{"я пошел в лес", "я пошел в лес"},
		{"не в саду", "не в саду"},
		{"И снова утро", "И снова утро"},
		{"кофе из Бразилии для всех", "кофе из Бразилии для всех"},
		{"словарь и поиск по нему", "словарь и поиск по нему"},
	}
	for _, tc := range cases {
		if got := applyRusRule(t, "ru/space/short-words", tc.in); got != tc.want {
			t.Fatalf("glueShortWords(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestGlueShortWordsChainConverges(t *testing.T) {
	// Each match consumes the separator the next one needs; the rule must
	// reach all of them within its iteration cap.
	got := applyRusRule(t, "ru/space/short-words", "и не по делу")
	want := "и не по делу"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestGlueNumberUnits(t *testing.T) {
	cases := []struct{ in, want string }{
		{"весит 5 кг ровно", "весит 5 кг ровно"},
		{"через 10 лет", "через 10 лет"},
		{"5 километров", "5 километров"}, // unit must not prefix a longer word
		{"цена 1000 руб сегодня", "цена 1000 руб сегодня"},
	}
	for _, tc := range cases {
		if got := applyRusRule(t, "ru/number/units", tc.in); got != tc.want {
			t.Fatalf("glueNumberUnits(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDecimalComma(t *testing.T) {
	cases := []struct{ in, want string }{
		{"равно 3.14 примерно", "равно 3,14 примерно"},
		{"адрес 192.168.1.1 тут", "адрес 192.168.1.1 тут"},
		{"версия 1.2.3 вышла", "версия 1.2.3 вышла"},
		{"уже 3,14 готово", "уже 3,14 готово"},
	}
	for _, tc := range cases {
		if got := applyRusRule(t, "ru/number/decimal-comma", tc.in); got != tc.want {
			t.Fatalf("decimalComma(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRubleSign(t *testing.T) {
	cases := []struct{ in, want string }{
		{"цена 1000 руб. за штуку", "цена 1000 ₽ за штуку"},
		{"около 50 руб сейчас", "около 50 ₽ сейчас"},
		{"нет рублей вовсе", "нет рублей вовсе"},
	}
	for _, tc := range cases {
		if got := applyRusRule(t, "ru/currency/ruble", tc.in); got != tc.want {
			t.Fatalf("rubleSign(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

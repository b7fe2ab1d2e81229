package typograf

import "testing"

func ruCtx() RuleContext {
	return RuleContext{Locale: LocaleRussian}
}

func TestReclassifyQuotesRussianNesting(t *testing.T) {
	got := reclassifyQuotes(`"Он сказал "привет" нам"`, ruCtx(), russianQuoteStyle, baseQuoteMarks)
	want := "«Он сказал „привет” нам»"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestReclassifyQuotesAlreadyCorrect(t *testing.T) {
	input := "Он сказал «привет»"
	if got := reclassifyQuotes(input, ruCtx(), russianQuoteStyle, baseQuoteMarks); got != input {
		t.Fatalf("correct text changed: %q", got)
	}
}

func TestReclassifyQuotesBackToBackOpeners(t *testing.T) {
	got := reclassifyQuotes(`""вложено" сразу"`, ruCtx(), russianQuoteStyle, baseQuoteMarks)
	want := "«„вложено” сразу»"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestReclassifyQuotesDepthClampsAtZero(t *testing.T) {
	// An unmatched closer maps to the outer closing glyph and must not
	// corrupt classification of what follows.
	got := reclassifyQuotes(`слово" дальше "цитата"`, ruCtx(), russianQuoteStyle, baseQuoteMarks)
	want := "слово» дальше «цитата»"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestReclassifyQuotesDeepNestingReusesInnerGlyphs(t *testing.T) {
	// A single depth counter cannot express more than two visually
	// distinct levels; level two reuses the inner pair.
	got := reclassifyQuotes(`"a "b "c" b" a"`, ruCtx(), russianQuoteStyle, baseQuoteMarks)
	want := "«a „b „c” b” a»"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestReclassifyQuotesAfterBracket(t *testing.T) {
	got := reclassifyQuotes(`(см. "пример")`, ruCtx(), russianQuoteStyle, baseQuoteMarks)
	want := "(см. «пример»)"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestReclassifyQuotesSkipsProtectedRanges(t *testing.T) {
	input := `значение "0x1F" и текст`
	ctx := RuleContext{Locale: LocaleRussian, Protected: FindProtectedRanges(input)}
	got := reclassifyQuotes(input, ctx, russianQuoteStyle, baseQuoteMarks)
	want := "значение «0x1F» и текст"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEnglishQuotes(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"doubles", `He said "hello" to us`, "He said “hello” to us"},
		{"apostrophe", `don't stop`, "don’t stop"},
		{"singles", `He said 'hi' quietly`, "He said ‘hi’ quietly"},
		{"apostrophe inside doubles", `"I'm fine," he said`, "“I’m fine,” he said"},
		{"no depth switching", `"outer "inner" outer"`, "“outer “inner” outer”"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := RuleContext{Locale: LocaleEnglish, Protected: FindProtectedRanges(tc.in)}
			if got := englishQuotes(tc.in, ctx); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestCornerQuotes(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"unspaced toggle", `他说"你好"`, "他说「你好」"},
		{"existing brackets untouched", "彼は「こんにちは」と言った", "彼は「こんにちは」と言った"},
		{"nested straight with space", `"他说 "你好""`, "「他说 『你好』」"},
		{"nested existing brackets", "「外「内」还有」", "「外『内』还有」"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := RuleContext{Locale: LocaleChinese, Protected: FindProtectedRanges(tc.in)}
			if got := cornerQuotes(tc.in, ctx); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

package typograf

import "testing"

func applyFrenchRule(t *testing.T, id, text string) string {
	t.Helper()
	rule, ok := defaultRegistry.Rule(id)
	if !ok {
		t.Fatalf("rule %q not in catalog", id)
	}
	ctx := RuleContext{Locale: LocaleFrench, Protected: FindProtectedRanges(text)}
	return rule.Apply(text, ctx)
}

func TestFrenchGuillemets(t *testing.T) {
	cases := []struct{ in, want string }{
		{`Il a dit "bonjour" hier`, "Il a dit « bonjour » hier"},
		{"déjà « correct » ici", "déjà « correct » ici"},
		{"«serré»", "« serré »"},
	}
	for _, tc := range cases {
		if got := applyFrenchRule(t, "fr/quotes/guillemets", tc.in); got != tc.want {
			t.Fatalf("frenchGuillemets(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFrenchPunctuationSpaces(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Viens-tu demain?", "Viens-tu demain ?"},
		{"Attention !", "Attention !"},
		{"Liste : premier point", "Liste : premier point"},
		{"rendez-vous à 12:30 pile", "rendez-vous à 12:30 pile"},
		{"déjà ? oui", "déjà ? oui"},
	}
	for _, tc := range cases {
		if got := applyFrenchRule(t, "fr/space/punctuation", tc.in); got != tc.want {
			t.Fatalf("frenchPunctuationSpaces(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFrenchPipeline(t *testing.T) {
	got := Apply(`Il a demandé: "pourquoi pas?"`, Settings{Locale: "fr"})
	want := "Il a demandé : « pourquoi pas ? »"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

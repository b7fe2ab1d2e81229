package typograf

import "strings"

// Apply corrects the typography of text using the shipped catalog. It is
// the sole transformation entry point: deterministic, side-effect free and
// total over any string input. Settings supply the locale choice and
// per-rule overrides; everything else uses shipped defaults.
func Apply(text string, settings Settings) string {
	return defaultEngine.Apply(text, settings)
}

var defaultEngine = &Typograf{registry: defaultRegistry}

// Apply corrects the typography of text. Call settings are merged over the
// engine's baseline: an explicit locale wins over the configured default,
// and per-rule overrides stack on top of configured ones.
func (t *Typograf) Apply(text string, settings Settings) string {
	if strings.TrimSpace(text) == "" {
		return text
	}

	locale := t.resolveLocale(text, settings)

	current := text
	for _, rule := range t.registry.ForLocale(locale) {
		if !t.ruleEnabled(rule, settings) {
			continue
		}
		// Prior rules may have shifted byte offsets, so ranges are
		// recomputed against the current text before every rule.
		ctx := RuleContext{
			Locale:    locale,
			Protected: FindProtectedRanges(current),
		}
		current = rule.Apply(current, ctx)
	}
	return current
}

// Process applies the engine's baseline settings, the convenience form for
// callers configured once via options.
func (t *Typograf) Process(text string) string {
	return t.Apply(text, t.settings)
}

func (t *Typograf) resolveLocale(text string, settings Settings) Locale {
	if locale, ok := ParseLocale(settings.Locale); ok {
		return locale
	}
	if locale, ok := ParseLocale(t.settings.Locale); ok {
		return locale
	}
	if t.defaultLocale.Valid() {
		return t.defaultLocale
	}
	return DetectLocale(text)
}

func (t *Typograf) ruleEnabled(rule Rule, settings Settings) bool {
	if value, ok := settings.Rules[rule.ID]; ok {
		return value
	}
	return t.settings.enabled(rule)
}

package typograf

import (
	"fmt"
	"sort"
)

// Registry is the immutable rule catalog. It is populated once during
// construction and only read afterwards, so concurrent callers need no
// locking.
type Registry struct {
	rules    []Rule
	byID     map[string]int
	byLocale map[Locale][]Rule
}

// NewRegistry builds a registry from rules in catalog order. Rule ids must
// be unique across the whole catalog and every rule needs an Apply
// function.
func NewRegistry(rules ...Rule) (*Registry, error) {
	registry := &Registry{
		rules:    append([]Rule(nil), rules...),
		byID:     make(map[string]int, len(rules)),
		byLocale: make(map[Locale][]Rule),
	}

	for i, rule := range registry.rules {
		if rule.Apply == nil {
			return nil, fmt.Errorf("%w: %q", ErrNilRule, rule.ID)
		}
		if _, exists := registry.byID[rule.ID]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateRule, rule.ID)
		}
		registry.byID[rule.ID] = i
	}

	for _, locale := range []Locale{LocaleRussian, LocaleEnglish, LocaleFrench, LocaleChinese, LocaleJapanese} {
		registry.byLocale[locale] = selectRules(registry.rules, locale)
	}

	return registry, nil
}

// selectRules filters to {locale, common} and sorts by priority ascending,
// keeping catalog order on ties.
func selectRules(rules []Rule, locale Locale) []Rule {
	selected := make([]Rule, 0, len(rules))
	for _, rule := range rules {
		if rule.Locale == locale || rule.Locale == LocaleCommon {
			selected = append(selected, rule)
		}
	}
	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].Priority < selected[j].Priority
	})
	return selected
}

// All returns every rule in catalog order.
func (r *Registry) All() []Rule {
	return append([]Rule(nil), r.rules...)
}

// ForLocale returns the rules applicable to locale (locale-specific plus
// common), sorted by execution priority.
func (r *Registry) ForLocale(locale Locale) []Rule {
	if rules, ok := r.byLocale[locale]; ok {
		return append([]Rule(nil), rules...)
	}
	return selectRules(r.rules, locale)
}

// Rule looks up a rule by id.
func (r *Registry) Rule(id string) (Rule, bool) {
	if i, ok := r.byID[id]; ok {
		return r.rules[i], true
	}
	return Rule{}, false
}

// defaultRegistry holds the shipped catalog, concatenated once at load.
var defaultRegistry = mustRegistry()

func mustRegistry() *Registry {
	catalog := make([]Rule, 0, 32)
	catalog = append(catalog, commonRules()...)
	catalog = append(catalog, russianRules()...)
	catalog = append(catalog, englishRules()...)
	catalog = append(catalog, frenchRules()...)
	catalog = append(catalog, chineseRules()...)
	catalog = append(catalog, japaneseRules()...)

	registry, err := NewRegistry(catalog...)
	if err != nil {
		panic(err)
	}
	return registry
}

// AllRules returns the shipped catalog in catalog order.
func AllRules() []Rule {
	return defaultRegistry.All()
}

// RulesForLocale returns the shipped rules applicable to locale, sorted by
// execution priority. Used by settings UIs to render toggles.
func RulesForLocale(locale Locale) []Rule {
	return defaultRegistry.ForLocale(locale)
}

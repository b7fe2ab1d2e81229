package typograf

// Locale identifies a typography convention. LocaleCommon is not a real
// language; it tags rules that apply regardless of the resolved locale.
type Locale string

const (
	LocaleRussian  Locale = "ru"
	LocaleEnglish  Locale = "en"
	LocaleFrench   Locale = "fr"
	LocaleChinese  Locale = "zh"
	LocaleJapanese Locale = "ja"
	LocaleCommon   Locale = "common"
)

// Valid reports whether l names a concrete language locale.
func (l Locale) Valid() bool {
	switch l {
	case LocaleRussian, LocaleEnglish, LocaleFrench, LocaleChinese, LocaleJapanese:
		return true
	}
	return false
}

// Group categorizes rules for presentation; it has no effect on execution.
type Group string

const (
	GroupQuotes      Group = "quotes"
	GroupDashes      Group = "dashes"
	GroupSpaces      Group = "spaces"
	GroupNumbers     Group = "numbers"
	GroupCurrency    Group = "currency"
	GroupPunctuation Group = "punctuation"
	GroupCase        Group = "case"
	GroupSpecial     Group = "special"
	GroupYo          Group = "yo"
	GroupWidth       Group = "width"
	GroupLayout      Group = "layout"
)

// ProtectedRange is a half-open [Start, End) byte interval of a specific
// text snapshot that no rule may mutate. Ranges become meaningless as soon
// as the text they were computed against changes.
type ProtectedRange struct {
	Start int
	End   int
}

// Contains reports whether offset falls inside the range.
func (r ProtectedRange) Contains(offset int) bool {
	return offset >= r.Start && offset < r.End
}

// RuleContext carries the per-application state a rule may consult. It is
// rebuilt before every rule run because earlier rules shift byte offsets.
type RuleContext struct {
	Locale    Locale
	Protected []ProtectedRange
}

// IsProtected reports whether the byte offset lies in any protected range.
func (ctx RuleContext) IsProtected(offset int) bool {
	for _, r := range ctx.Protected {
		if r.Contains(offset) {
			return true
		}
		if r.Start > offset {
			break
		}
	}
	return false
}

// overlapsProtected reports whether [start, end) intersects any range.
func (ctx RuleContext) overlapsProtected(start, end int) bool {
	for _, r := range ctx.Protected {
		if r.Start < end && start < r.End {
			return true
		}
		if r.Start >= end {
			break
		}
	}
	return false
}

// ApplyFunc transforms text. Implementations must be pure: same input and
// context always yield the same output, no side effects, no panics for any
// well-formed string.
type ApplyFunc func(text string, ctx RuleContext) string

// Rule is a single stateless transformation in the catalog.
type Rule struct {
	// ID is the stable namespaced identifier, e.g. "ru/quotes/guillemets".
	// Unique across the whole registry.
	ID string
	// Names maps locales to display names for settings UIs.
	Names map[Locale]string
	// Locale scopes the rule; LocaleCommon rules apply everywhere.
	Locale Locale
	Group  Group
	// Enabled is the shipped default, overridable per call via Settings.
	Enabled bool
	// Priority orders execution, lower first. Ties keep catalog order.
	Priority int
	Apply    ApplyFunc
}

// Name returns the display name for the locale, falling back to English
// and then to the rule id.
func (r Rule) Name(locale Locale) string {
	if name, ok := r.Names[locale]; ok {
		return name
	}
	if name, ok := r.Names[LocaleEnglish]; ok {
		return name
	}
	return r.ID
}

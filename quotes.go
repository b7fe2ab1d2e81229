package typograf

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// quoteStyle is a locale's emission table: the glyph pair used at nesting
// depth 0 and the pair used at every deeper level.
type quoteStyle struct {
	outerOpen  rune
	outerClose rune
	innerOpen  rune
	innerClose rune
}

var (
	// Russian per GOST: guillemets outside, low-high pair inside. The
	// inner closer is the curly right double quote, distinct from the
	// inner opener.
	russianQuoteStyle = quoteStyle{'«', '»', '„', '”'}
	// French guillemets outside, curly doubles inside. Interior spacing
	// is added by a follow-up pass in the French rule.
	frenchQuoteStyle = quoteStyle{'«', '»', '“', '”'}
)

// Quote glyph variants normalized by each locale's rule. CJK rules add the
// corner brackets on top of this set.
var baseQuoteMarks = map[rune]struct{}{
	'"': {}, '«': {}, '»': {}, '„': {}, '“': {}, '”': {}, '‟': {},
	'‹': {}, '›': {},
}

// isOpeningContext reports whether a quote marker following r should be
// classified as opening.
func isOpeningContext(r rune) bool {
	return unicode.IsSpace(r) || r == '(' || r == '[' || r == '{'
}

// reclassifyQuotes is the quote state machine: every glyph in marks is
// treated as one neutral marker, then a single left-to-right scan assigns
// each marker an opening or closing role and emits the style's glyph for
// the current nesting depth.
//
// A marker opens when it starts the text, follows whitespace or an opening
// bracket, or follows a just-emitted opening glyph (back-to-back nested
// openers). Everything else closes. Depth is a single clamped counter, not
// a stack: unbalanced input yields locally sensible output rather than an
// error, and the scan always terminates.
func reclassifyQuotes(text string, ctx RuleContext, style quoteStyle, marks map[rune]struct{}) string {
	var b strings.Builder
	b.Grow(len(text))

	depth := 0
	var prev rune
	atStart := true

	for i, r := range text {
		if _, isMark := marks[r]; !isMark || ctx.overlapsProtected(i, i+utf8.RuneLen(r)) {
			b.WriteRune(r)
			prev = r
			atStart = false
			continue
		}

		opening := atStart || isOpeningContext(prev) ||
			prev == style.outerOpen || prev == style.innerOpen

		var emit rune
		if opening {
			if depth == 0 {
				emit = style.outerOpen
			} else {
				emit = style.innerOpen
			}
			depth++
		} else {
			depth--
			if depth <= 0 {
				depth = 0
				emit = style.outerClose
			} else {
				emit = style.innerClose
			}
		}

		b.WriteRune(emit)
		prev = emit
		atStart = false
	}
	return b.String()
}

// Contraction apostrophes sit between word characters and are not quote
// delimiters; they are rewritten before any open/close classification.
var apostrophePattern = regexp.MustCompile(`(\w)'(\w)`)

// englishQuotes converts straight quotes to curly English quotes. Doubles
// become “ ” and singles ‘ ’ by the same opening/closing classification as
// the nesting styles, but without depth-based glyph switching.
func englishQuotes(text string, ctx RuleContext) string {
	text = replaceMatches(text, ctx, apostrophePattern, func(match string, _, _ int) string {
		// \w is ASCII in RE2, so both neighbors are single bytes.
		return match[:1] + "’" + match[2:]
	})
	ctx.Protected = FindProtectedRanges(text)
	text = reclassifyQuotes(text, ctx, quoteStyle{'“', '”', '“', '”'}, baseQuoteMarks)
	ctx.Protected = FindProtectedRanges(text)
	return reclassifyQuotes(text, ctx, quoteStyle{'‘', '’', '‘', '’'}, map[rune]struct{}{'\'': {}})
}

// A nested pair of outer corner brackets; the inner pair is rewritten to
// white corner brackets by cornerQuotes.
var nestedCornerPattern = regexp.MustCompile(`「([^「」]*)「([^「」]*)」`)

// cornerQuotes converts Western quote glyphs to CJK corner brackets.
// Corner brackets already present pass through untouched: they are
// directional, so reclassifying them could only corrupt correct text.
//
// CJK text does not space its quotes, so the generic opening predicate is
// widened: a marker with nothing open always opens. Nesting is handled by
// a secondary pass over already-emitted outer brackets rather than the
// depth counter, since CJK typography rarely nests beyond one level.
func cornerQuotes(text string, ctx RuleContext) string {
	var b strings.Builder
	b.Grow(len(text))

	depth := 0
	var prev rune
	atStart := true

	for i, r := range text {
		if _, isMark := baseQuoteMarks[r]; !isMark || ctx.overlapsProtected(i, i+utf8.RuneLen(r)) {
			b.WriteRune(r)
			prev = r
			atStart = false
			continue
		}

		opening := depth == 0 || atStart || isOpeningContext(prev) ||
			prev == '「' || prev == '『'

		if opening {
			b.WriteRune('「')
			prev = '「'
			depth++
		} else {
			b.WriteRune('」')
			prev = '」'
			depth--
		}
		atStart = false
	}

	return applyUntilStable(b.String(), 3, func(s string) string {
		return nestedCornerPattern.ReplaceAllString(s, "「$1『$2』")
	})
}

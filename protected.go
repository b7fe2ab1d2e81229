package typograf

import (
	"regexp"
	"sort"
)

var (
	urlPattern     = regexp.MustCompile(`https?://[^\s<>«»"']+|\bwww\.[^\s<>«»"']+`)
	emailPattern   = regexp.MustCompile(`[0-9A-Za-z._%+-]+@[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)+`)
	ipv4Pattern    = regexp.MustCompile(`\b\d{1,3}(?:\.\d{1,3}){3}\b`)
	versionPattern = regexp.MustCompile(`\bv?\d+\.\d+\.\d+(?:\.\d+)?\b`)
	hexPattern     = regexp.MustCompile(`\b0[xX][0-9a-fA-F]+\b`)
)

// protectedPatterns run in a fixed order; match spans from every pattern
// are unioned. Overlap between patterns is tolerated because consumers only
// check point containment, never interval arithmetic.
var protectedPatterns = []*regexp.Regexp{
	urlPattern,
	emailPattern,
	ipv4Pattern,
	versionPattern,
	hexPattern,
}

// FindProtectedRanges scans text for substrings no rule may mutate (URLs,
// emails, IPv4 addresses, version strings, hex literals) and returns their
// byte spans sorted by start offset. Total function, never fails. The
// result is only valid for this exact text value; callers must recompute
// after every mutation.
func FindProtectedRanges(text string) []ProtectedRange {
	var ranges []ProtectedRange
	for _, pattern := range protectedPatterns {
		for _, span := range pattern.FindAllStringIndex(text, -1) {
			ranges = append(ranges, ProtectedRange{Start: span[0], End: span[1]})
		}
	}

	sort.Slice(ranges, func(i, j int) bool {
		if ranges[i].Start != ranges[j].Start {
			return ranges[i].Start < ranges[j].Start
		}
		return ranges[i].End < ranges[j].End
	})
	return ranges
}

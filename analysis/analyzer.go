package analysis

import (
	"strings"
	"unicode/utf8"

	"github.com/poiesic/docvault/core"
)

const (
	// UnknownTitle is emitted when the first line doesn't look like a header.
	UnknownTitle = "Unknown Title"

	// UnknownVendor is emitted when no vendor line is found.
	UnknownVendor = "Unknown Vendor"

	// maxTitleLength is the exclusive upper bound on a first line's trimmed
	// rune count for it to be taken as the document title. Longer first
	// lines are assumed to be body text, not headers.
	maxTitleLength = 70

	// vendorScanLines is how many leading lines are scanned for a
	// "vendor:" marker.
	vendorScanLines = 10
)

// categoryRule maps a category to the keywords that select it.
type categoryRule struct {
	category core.Category
	keywords []string
}

// categoryRules is ordered: the first category with any keyword present in
// the lowercased text wins, so declaration order is the tie-break.
var categoryRules = []categoryRule{
	{core.CategoryEngineering, []string{"technical", "construction"}},
	{core.CategoryFinancial, []string{"financial", "revenue"}},
	{core.CategoryLegal, []string{"legal", "contract"}},
	{core.CategorySafety, []string{"safety", "incident"}},
}

// AnalyzeContent derives a title, vendor, and category from raw extracted
// text. It is a pure function, total over its domain: empty or malformed
// text yields the default triple (UnknownTitle, UnknownVendor,
// CategoryGeneral) rather than an error.
func AnalyzeContent(text string) (title, vendor string, category core.Category) {
	title = UnknownTitle
	vendor = UnknownVendor
	category = core.CategoryGeneral

	lines := strings.Split(text, "\n")

	if first := strings.TrimSpace(lines[0]); first != "" && utf8.RuneCountInString(first) < maxTitleLength {
		title = first
	}

	scan := lines
	if len(scan) > vendorScanLines {
		scan = scan[:vendorScanLines]
	}
	for _, line := range scan {
		if strings.Contains(strings.ToLower(line), "vendor:") {
			_, after, _ := strings.Cut(line, ":")
			vendor = strings.TrimSpace(after)
			break
		}
	}

	lower := strings.ToLower(text)
	for _, rule := range categoryRules {
		if containsAny(lower, rule.keywords) {
			category = rule.category
			break
		}
	}

	return title, vendor, category
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

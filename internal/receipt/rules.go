package receipt

import (
	"regexp"
	"strings"
)

// SkipReason identifies which rule disqualified a line from being a
// merchant candidate. Keeping the rules as an explicit ordered list with
// one reason per rule makes the heuristic auditable rule-by-rule.
type SkipReason string

const (
	// SkipNone means the line passed every rule.
	SkipNone SkipReason = ""
	// SkipBoilerplate matches marketing and feedback boilerplate.
	SkipBoilerplate SkipReason = "boilerplate"
	// SkipURL matches web addresses.
	SkipURL SkipReason = "url"
	// SkipAllDigits matches lines made up entirely of digits.
	SkipAllDigits SkipReason = "all-digits"
	// SkipReceiptWord matches the words receipts print about themselves.
	SkipReceiptWord SkipReason = "receipt-word"
	// SkipStoreNumber matches store-number markers.
	SkipStoreNumber SkipReason = "store-number"
	// SkipSeparator matches decorative separator runs.
	SkipSeparator SkipReason = "separator"
	// SkipTooShort matches lines under 3 characters.
	SkipTooShort SkipReason = "too-short"
	// SkipTooLong matches lines over 50 characters.
	SkipTooLong SkipReason = "too-long"
)

type skipRule struct {
	matches func(line, lower string) bool
	reason  SkipReason
}

var (
	feedbackPattern  = regexp.MustCompile(`give.*feedback`)
	allDigitsPattern = regexp.MustCompile(`^\d+$`)
	separatorPattern = regexp.MustCompile(`^[*\-=]+$`)
)

// skipRules is evaluated in order; the first matching rule wins.
var skipRules = []skipRule{
	{
		reason: SkipBoilerplate,
		matches: func(_, lower string) bool {
			return feedbackPattern.MatchString(lower) || strings.Contains(lower, "survey.")
		},
	},
	{
		reason: SkipURL,
		matches: func(_, lower string) bool {
			return strings.Contains(lower, "www.") || strings.Contains(lower, "http")
		},
	},
	{
		reason: SkipAllDigits,
		matches: func(line, _ string) bool {
			return allDigitsPattern.MatchString(line)
		},
	},
	{
		reason: SkipReceiptWord,
		matches: func(_, lower string) bool {
			return strings.Contains(lower, "receipt") || strings.Contains(lower, "thank you")
		},
	},
	{
		reason: SkipStoreNumber,
		matches: func(_, lower string) bool {
			return strings.Contains(lower, "store #")
		},
	},
	{
		reason: SkipSeparator,
		matches: func(line, _ string) bool {
			return separatorPattern.MatchString(line)
		},
	},
	{
		reason: SkipTooShort,
		matches: func(line, _ string) bool {
			return len(line) < 3
		},
	},
	{
		reason: SkipTooLong,
		matches: func(line, _ string) bool {
			return len(line) > 50
		},
	},
}

// SkipReasonFor returns the reason a line is disqualified as a merchant
// candidate, or SkipNone if it qualifies.
func SkipReasonFor(line string) SkipReason {
	lower := strings.ToLower(line)
	for _, rule := range skipRules {
		if rule.matches(line, lower) {
			return rule.reason
		}
	}
	return SkipNone
}

// Package receipt turns raw OCR text into a structured candidate
// transaction. Every extraction is best-effort: a heuristic that finds
// nothing leaves its field unset, it never produces an error.
package receipt

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/harperdean/scrip/internal/model"
)

// maxItems caps how many leftover lines are kept as informational items.
const maxItems = 9

var (
	totalLinePattern    = regexp.MustCompile(`(?i)\b(?:total|amount due|balance due)\b[^\d]*(\d+\.\d{2})\b`)
	amountPattern       = regexp.MustCompile(`\$?\s*(\d+\.\d{2})\b`)
	datePattern         = regexp.MustCompile(`(\d{1,2}[/\-]\d{1,2}[/\-]\d{2,4})|(\d{4}[/\-]\d{1,2}[/\-]\d{1,2})`)
	merchantNamePattern = regexp.MustCompile(`^[A-Za-z\s&'\-]+$`)
)

// Parser extracts structured fields from receipt text. The known-merchant
// list is fixed at construction so tests can substitute fixtures.
type Parser struct {
	knownMerchants []string
}

// Option configures a Parser.
type Option func(*Parser)

// WithKnownMerchants replaces the built-in brand list.
func WithKnownMerchants(merchants []string) Option {
	return func(p *Parser) {
		p.knownMerchants = make([]string, len(merchants))
		copy(p.knownMerchants, merchants)
	}
}

// NewParser creates a receipt parser with the default known-merchant list.
func NewParser(opts ...Option) *Parser {
	p := &Parser{knownMerchants: DefaultKnownMerchants()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse extracts merchant, total, date, and leftover item lines from raw
// OCR text. It never fails; fields whose heuristics find no match are
// left nil.
func (p *Parser) Parse(rawText string) model.ParsedReceipt {
	lines := nonEmptyLines(rawText)

	parsed := model.ParsedReceipt{RawText: rawText}
	parsed.Total = extractTotal(rawText, lines)
	parsed.Merchant = p.extractMerchant(lines)
	parsed.Date = extractDate(rawText)

	if len(lines) > 1 {
		items := lines[1:]
		if len(items) > maxItems {
			items = items[:maxItems]
		}
		parsed.Items = items
	}

	return parsed
}

func nonEmptyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

// extractTotal runs three fallback tiers: a labelled total line, any line
// mentioning "total", then the maximum amount anywhere in the text.
// Candidates that are zero, negative, or unparseable are discarded.
func extractTotal(text string, lines []string) *float64 {
	// Tier 1: a line labelled total / amount due / balance due.
	for _, line := range lines {
		if m := totalLinePattern.FindStringSubmatch(line); m != nil {
			if amount, ok := parseAmount(m[1]); ok {
				return &amount
			}
		}
	}

	// Tier 2: any line mentioning "total", first amount on it.
	for _, line := range lines {
		if !strings.Contains(strings.ToLower(line), "total") {
			continue
		}
		if m := amountPattern.FindStringSubmatch(line); m != nil {
			if amount, ok := parseAmount(m[1]); ok {
				return &amount
			}
		}
	}

	// Tier 3: the largest amount anywhere in the text.
	var best *float64
	for _, m := range amountPattern.FindAllStringSubmatch(text, -1) {
		amount, ok := parseAmount(m[1])
		if !ok {
			continue
		}
		if best == nil || amount > *best {
			v := amount
			best = &v
		}
	}
	return best
}

func parseAmount(s string) (float64, bool) {
	amount, err := strconv.ParseFloat(s, 64)
	if err != nil || amount <= 0 {
		return 0, false
	}
	return amount, true
}

// extractMerchant walks lines top to bottom, skipping boilerplate via the
// ordered rule list, and accepts either a known brand or a plausible
// name-looking line. When nothing qualifies it falls back to the first
// non-empty line.
func (p *Parser) extractMerchant(lines []string) *string {
	if len(lines) == 0 {
		return nil
	}

	for _, line := range lines {
		if SkipReasonFor(line) != SkipNone {
			continue
		}

		lower := strings.ToLower(line)
		for _, brand := range p.knownMerchants {
			if strings.Contains(lower, brand) {
				name := titleCase(brand)
				return &name
			}
		}

		if len(line) > 3 && merchantNamePattern.MatchString(line) {
			name := line
			return &name
		}
	}

	fallback := lines[0]
	return &fallback
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// dateLayouts are tried in order: US month-first, then day-first for
// tokens whose first field cannot be a month, then the ISO-like form.
var dateLayouts = []string{
	"1/2/2006",
	"1/2/06",
	"2/1/2006",
	"2/1/06",
	"2006/1/2",
}

// extractDate finds the first date-looking token and parses it as a
// calendar date. Tokens that do not resolve to a real date are dropped.
func extractDate(text string) *time.Time {
	token := datePattern.FindString(text)
	if token == "" {
		return nil
	}

	normalized := strings.ReplaceAll(token, "-", "/")
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, normalized); err == nil {
			return &t
		}
	}
	return nil
}

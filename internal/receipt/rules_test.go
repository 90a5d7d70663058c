package receipt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkipReasonFor(t *testing.T) {
	tests := []struct {
		name string
		line string
		want SkipReason
	}{
		{name: "feedback boilerplate", line: "Give us your feedback!", want: SkipBoilerplate},
		{name: "survey boilerplate", line: "Complete our survey.", want: SkipBoilerplate},
		{name: "www url", line: "www.store.com", want: SkipURL},
		{name: "http url", line: "visit http://store.com", want: SkipURL},
		{name: "all digits", line: "1234567890", want: SkipAllDigits},
		{name: "receipt word", line: "CUSTOMER RECEIPT", want: SkipReceiptWord},
		{name: "thank you", line: "Thank you for shopping", want: SkipReceiptWord},
		{name: "store number", line: "Store #4521", want: SkipStoreNumber},
		{name: "asterisk separator", line: "************", want: SkipSeparator},
		{name: "dash separator", line: "------------", want: SkipSeparator},
		{name: "equals separator", line: "============", want: SkipSeparator},
		{name: "mixed separator", line: "**--==**", want: SkipSeparator},
		{name: "too short", line: "AB", want: SkipTooShort},
		{name: "too long", line: "This line is much much much much much too long to be a merchant name", want: SkipTooLong},
		{name: "plausible merchant", line: "Corner Bakery", want: SkipNone},
		{name: "merchant with address digits", line: "Corner Bakery 12 Main St", want: SkipNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SkipReasonFor(tt.line))
		})
	}
}

func TestSkipRules_OrderIsStable(t *testing.T) {
	// A line can trip several rules; the first in the ordered list wins.
	// This line is both feedback boilerplate and a URL; boilerplate is
	// checked first.
	assert.Equal(t, SkipBoilerplate, SkipReasonFor("give feedback at www.store.com"))

	// Short separator runs hit the separator rule before the length rule.
	assert.Equal(t, SkipSeparator, SkipReasonFor("--"))
}

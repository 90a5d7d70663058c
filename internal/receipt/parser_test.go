package receipt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_TypicalReceipt(t *testing.T) {
	parser := NewParser()

	parsed := parser.Parse("Store Name\nTotal: $45.67\n01/15/2024")

	require.NotNil(t, parsed.Merchant)
	assert.Equal(t, "Store Name", *parsed.Merchant)

	require.NotNil(t, parsed.Total)
	assert.InDelta(t, 45.67, *parsed.Total, 1e-9)

	require.NotNil(t, parsed.Date)
	assert.Equal(t, time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC), *parsed.Date)

	assert.Equal(t, "Store Name\nTotal: $45.67\n01/15/2024", parsed.RawText)
}

func TestParse_KnownMerchantTitleCased(t *testing.T) {
	parser := NewParser()

	parsed := parser.Parse("WALMART SUPERCENTER\nMilk $3.99\nBread $2.50\nTOTAL $6.49")

	require.NotNil(t, parsed.Merchant)
	assert.Equal(t, "Walmart", *parsed.Merchant)

	require.NotNil(t, parsed.Total)
	assert.InDelta(t, 6.49, *parsed.Total, 1e-9)
}

func TestParse_LabelledTotalBeatsLargerAmount(t *testing.T) {
	// The labelled total line must win even when another line carries a
	// larger amount.
	parser := NewParser()

	parsed := parser.Parse("WALMART SUPERCENTER\nMilk $3.99\nCashback $20.00\nTOTAL $6.49")

	require.NotNil(t, parsed.Total)
	assert.InDelta(t, 6.49, *parsed.Total, 1e-9)
}

func TestParse_TotalTiers(t *testing.T) {
	tests := []struct {
		want *float64
		name string
		text string
	}{
		{
			name: "tier 1 labelled total line",
			text: "Corner Shop\nSubtotal $10.00\nTotal: $12.34",
			want: floatPtr(12.34),
		},
		{
			name: "tier 1 amount due",
			text: "Corner Shop\nAmount Due $31.50\nTendered $40.00",
			want: floatPtr(31.50),
		},
		{
			name: "tier 1 balance due",
			text: "Corner Shop\nBalance due: 7.25",
			want: floatPtr(7.25),
		},
		{
			name: "tier 2 amount before the word total",
			text: "Corner Shop\n19.99 GRAND TOTAL",
			want: floatPtr(19.99),
		},
		{
			name: "tier 3 max of all amounts",
			text: "Corner Shop\nMilk 3.99\nSteak 15.75\nBread 2.50",
			want: floatPtr(15.75),
		},
		{
			name: "no amounts at all",
			text: "Corner Shop\nno prices here",
			want: nil,
		},
		{
			name: "integer prices are not currency",
			text: "Corner Shop\nItem 12\nItem 450",
			want: nil,
		},
		{
			name: "three decimal places rejected",
			text: "Corner Shop\nWeight 1.234",
			want: nil,
		},
		{
			name: "zero amount discarded",
			text: "Corner Shop\nTotal 0.00\nItem 5.25",
			want: floatPtr(5.25),
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
	}

	parser := NewParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed := parser.Parse(tt.text)
			if tt.want == nil {
				assert.Nil(t, parsed.Total)
				return
			}
			require.NotNil(t, parsed.Total)
			assert.InDelta(t, *tt.want, *parsed.Total, 1e-9)
		})
	}
}

func TestParse_SubtotalLineDoesNotMatchTierOne(t *testing.T) {
	// "subtotal" has no word boundary before "total", so tier 1 must not
	// fire on it; tier 2 still accepts it as a line containing "total".
	parser := NewParser()

	parsed := parser.Parse("Shop\nSubtotal 8.00\nTax 0.50")

	require.NotNil(t, parsed.Total)
	assert.InDelta(t, 8.00, *parsed.Total, 1e-9)
}

func TestParse_MerchantSkipsBoilerplate(t *testing.T) {
	text := "***************\n" +
		"Give us your feedback at\n" +
		"www.example.com/survey\n" +
		"RECEIPT\n" +
		"Store #1234\n" +
		"98765\n" +
		"Rosie's Diner\n" +
		"Coffee 2.50\n"

	parser := NewParser()
	parsed := parser.Parse(text)

	require.NotNil(t, parsed.Merchant)
	assert.Equal(t, "Rosie's Diner", *parsed.Merchant)
}

func TestParse_MerchantFallsBackToFirstLine(t *testing.T) {
	// Nothing qualifies, so the first non-empty line wins even though it
	// would otherwise be skipped.
	parser := NewParser()

	parsed := parser.Parse("www.shopsite.com\n12345\n===")

	require.NotNil(t, parsed.Merchant)
	assert.Equal(t, "www.shopsite.com", *parsed.Merchant)
}

func TestParse_MerchantEmptyText(t *testing.T) {
	parser := NewParser()

	parsed := parser.Parse("")

	assert.Nil(t, parsed.Merchant)
	assert.Nil(t, parsed.Total)
	assert.Nil(t, parsed.Date)
	assert.Empty(t, parsed.Items)
	assert.Empty(t, parsed.RawText)
}

func TestParse_InjectedKnownMerchants(t *testing.T) {
	parser := NewParser(WithKnownMerchants([]string{"rosie's diner"}))

	parsed := parser.Parse("ROSIE'S DINER EST 1952\nCoffee 2.50")

	require.NotNil(t, parsed.Merchant)
	assert.Equal(t, "Rosie's Diner", *parsed.Merchant)
}

func TestParse_Dates(t *testing.T) {
	tests := []struct {
		want *time.Time
		name string
		text string
	}{
		{
			name: "us slash date",
			text: "Shop\n01/15/2024",
			want: datePtr(2024, time.January, 15),
		},
		{
			name: "us dash date",
			text: "Shop\n1-15-24",
			want: datePtr(2024, time.January, 15),
		},
		{
			name: "day first when month impossible",
			text: "Shop\n25/12/2024",
			want: datePtr(2024, time.December, 25),
		},
		{
			name: "iso-like date",
			text: "Shop\n2024/01/15",
			want: datePtr(2024, time.January, 15),
		},
		{
			name: "iso with dashes",
			text: "Shop\n2024-03-07",
			want: datePtr(2024, time.March, 7),
		},
		{
			name: "first match wins",
			text: "Shop\n02/01/2024\n03/05/2024",
			want: datePtr(2024, time.February, 1),
		},
		{
			name: "invalid calendar date unset",
			text: "Shop\n13/45/2024",
			want: nil,
		},
		{
			name: "no date",
			text: "Shop\nno dates here",
			want: nil,
		},
	}

	parser := NewParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed := parser.Parse(tt.text)
			if tt.want == nil {
				assert.Nil(t, parsed.Date)
				return
			}
			require.NotNil(t, parsed.Date)
			assert.True(t, tt.want.Equal(*parsed.Date),
				"want %v, got %v", tt.want, parsed.Date)
		})
	}
}

func TestParse_ItemsCappedAtNine(t *testing.T) {
	text := "Shop\na\nb\nc\nd\ne\nf\ng\nh\ni\nj\nk"

	parser := NewParser()
	parsed := parser.Parse(text)

	assert.Len(t, parsed.Items, 9)
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f", "g", "h", "i"}, parsed.Items)
}

func TestParse_ItemsPreserveOrderAndSkipBlanks(t *testing.T) {
	parser := NewParser()

	parsed := parser.Parse("Shop\n\nMilk 3.99\n\n  \nBread 2.50\n")

	assert.Equal(t, []string{"Milk 3.99", "Bread 2.50"}, parsed.Items)
}

func TestParse_NeverPanics(t *testing.T) {
	inputs := []string{
		"",
		"\n\n\n",
		"$",
		"total",
		"....",
		"99/99/9999",
		"total: total: total:",
		string([]byte{0xff, 0xfe, 0x00}),
	}

	parser := NewParser()
	for _, input := range inputs {
		assert.NotPanics(t, func() {
			parsed := parser.Parse(input)
			assert.Equal(t, input, parsed.RawText)
		})
	}
}

func floatPtr(f float64) *float64 { return &f }

func datePtr(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

package model

import "time"

// ParsedReceipt is the best-effort structured view of a receipt's OCR
// text. Every field except RawText is optional: a nil pointer means the
// corresponding heuristic found nothing, which is a normal outcome and
// never an error.
type ParsedReceipt struct {
	Date     *time.Time
	Merchant *string
	Total    *float64
	RawText  string
	Items    []string
}

// HasMerchant reports whether a merchant line was extracted.
func (r *ParsedReceipt) HasMerchant() bool {
	return r.Merchant != nil && *r.Merchant != ""
}

// MerchantOrEmpty returns the extracted merchant or "".
func (r *ParsedReceipt) MerchantOrEmpty() string {
	if r.Merchant == nil {
		return ""
	}
	return *r.Merchant
}

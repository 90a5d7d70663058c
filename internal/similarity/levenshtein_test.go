package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{name: "both empty", a: "", b: "", want: 0},
		{name: "empty to word", a: "", b: "walmart", want: 7},
		{name: "word to empty", a: "walmart", b: "", want: 7},
		{name: "identical", a: "starbucks", b: "starbucks", want: 0},
		{name: "single substitution", a: "cat", b: "bat", want: 1},
		{name: "single insertion", a: "walmart", b: "wallmart", want: 1},
		{name: "single deletion", a: "target", b: "targe", want: 1},
		{name: "ocr misread hyphen", a: "wal-mart", b: "walmart", want: 1},
		{name: "kitten sitting", a: "kitten", b: "sitting", want: 3},
		{name: "completely different", a: "abc", b: "xyz", want: 3},
		{name: "unicode runes", a: "café", b: "cafe", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Distance(tt.a, tt.b))
		})
	}
}

func TestDistance_Symmetry(t *testing.T) {
	pairs := [][2]string{
		{"walmart", "wal-mart"},
		{"", "costco"},
		{"kroger", "krogr"},
		{"shell", "chevron"},
	}

	for _, p := range pairs {
		assert.Equal(t, Distance(p[0], p[1]), Distance(p[1], p[0]),
			"distance(%q,%q) should be symmetric", p[0], p[1])
	}
}

func TestDistance_SelfIsZero(t *testing.T) {
	for _, s := range []string{"", "a", "whole foods", "trader joe's"} {
		assert.Zero(t, Distance(s, s))
	}
}

func TestRatio(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{name: "both empty is identical", a: "", b: "", want: 1.0},
		{name: "identical", a: "walmart", b: "walmart", want: 1.0},
		{name: "no overlap", a: "abc", b: "xyz", want: 0.0},
		{name: "one edit in eight", a: "wallmart", b: "walmart", want: 1.0 - 1.0/8.0},
		{name: "empty vs word", a: "", b: "target", want: 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Ratio(tt.a, tt.b), 1e-9)
		})
	}
}

func TestRatio_Bounds(t *testing.T) {
	pairs := [][2]string{
		{"walmart supercenter", "walmart"},
		{"a", "abcdefghij"},
		{"", ""},
		{"7-eleven", "7 eleven"},
	}

	for _, p := range pairs {
		r := Ratio(p[0], p[1])
		assert.GreaterOrEqual(t, r, 0.0)
		assert.LessOrEqual(t, r, 1.0)
	}
}

package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/harperdean/scrip/internal/model"
)

func TestCalculateAccuracy(t *testing.T) {
	groceries := model.Category{ID: 1, Name: "Groceries"}
	dining := model.Category{ID: 2, Name: "Dining"}

	tests := []struct {
		name        string
		predictions []model.Category
		actual      []model.Category
		want        float64
	}{
		{
			name:        "all correct",
			predictions: []model.Category{groceries, dining},
			actual:      []model.Category{groceries, dining},
			want:        100,
		},
		{
			name:        "all wrong",
			predictions: []model.Category{groceries, groceries},
			actual:      []model.Category{dining, dining},
			want:        0,
		},
		{
			name:        "half right",
			predictions: []model.Category{groceries, dining},
			actual:      []model.Category{groceries, groceries},
			want:        50,
		},
		{
			name:        "mismatched lengths",
			predictions: []model.Category{groceries},
			actual:      []model.Category{groceries, dining},
			want:        0,
		},
		{
			name:        "empty inputs",
			predictions: nil,
			actual:      nil,
			want:        0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, CalculateAccuracy(tt.predictions, tt.actual), 0.0001)
		})
	}
}

func TestCalculateAccuracyComparesByID(t *testing.T) {
	// Same ID with different display fields still counts as a match.
	pred := model.Category{ID: 1, Name: "Groceries", Icon: "🛒"}
	act := model.Category{ID: 1, Name: "Groceries"}

	assert.InDelta(t, 100.0, CalculateAccuracy([]model.Category{pred}, []model.Category{act}), 0.0001)
}

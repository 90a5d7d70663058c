package classify

import "github.com/harperdean/scrip/internal/model"

// CalculateAccuracy returns the percentage (0-100) of predictions whose
// category ID matches the ground truth at the same index. Mismatched
// lengths return 0 as a defined sentinel; this is offline keyword-tuning
// support, not a live code path, so it favors availability over
// strictness.
func CalculateAccuracy(predictions, actual []model.Category) float64 {
	if len(predictions) != len(actual) {
		return 0
	}
	if len(predictions) == 0 {
		return 0
	}

	correct := 0
	for i := range predictions {
		if predictions[i].ID == actual[i].ID {
			correct++
		}
	}

	return float64(correct) / float64(len(predictions)) * 100
}

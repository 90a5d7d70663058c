// Package similarity provides string edit distance and a derived
// similarity ratio, used by the categorizer's fuzzy keyword matching.
package similarity

// Distance returns the Levenshtein edit distance between a and b: the
// minimum number of single-character insertions, deletions, and
// substitutions needed to transform one into the other.
//
// The full dynamic-programming table is O(len(a)*len(b)) in time and
// space. Inputs here are merchant names and keywords, tens of characters
// at most, so the quadratic cost is not a concern; callers feeding it
// longer strings should bound them first.
func Distance(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)

	matrix := make([][]int, len(ra)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(rb)+1)
		matrix[i][0] = i
	}
	for j := 0; j <= len(rb); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			if ra[i-1] == rb[j-1] {
				matrix[i][j] = matrix[i-1][j-1]
				continue
			}
			matrix[i][j] = min(
				matrix[i-1][j-1]+1, // substitution
				min(matrix[i][j-1]+1, matrix[i-1][j]+1),
			)
		}
	}

	return matrix[len(ra)][len(rb)]
}

// Ratio returns a similarity score in [0,1] derived from the edit
// distance: 1 - distance/max(len). Two empty strings are identical, so
// the ratio is 1.
func Ratio(a, b string) float64 {
	ra := []rune(a)
	rb := []rune(b)

	maxLen := len(ra)
	if len(rb) > maxLen {
		maxLen = len(rb)
	}
	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(Distance(a, b))/float64(maxLen)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

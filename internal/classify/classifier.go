// Package classify scores transactions against keyword-tagged categories
// and picks the best match. Scoring is additive: every rule that applies
// to a keyword contributes points, and a category's score is the sum over
// all its keywords.
package classify

import (
	"regexp"
	"sort"
	"strings"

	"github.com/harperdean/scrip/internal/model"
	"github.com/harperdean/scrip/internal/similarity"
)

// Merchant matches are strong category signals, so they dominate the
// weights; description text is noisy and weighted low; fuzzy matching
// compensates for OCR misreads without letting noise clear the
// acceptance threshold.
const (
	scoreExactMerchant    = 100
	scorePrefixMerchant   = 80
	scoreWordMerchant     = 50
	scoreSubstrMerchant   = 30
	scoreAllWordsMerchant = 40
	scoreWordDescription  = 15
	scoreSubstrDesc       = 8
	scoreFuzzyHigh        = 60
	scoreFuzzyMid         = 40
	scoreFuzzyLow         = 20

	// acceptThreshold is the minimum total score a category needs before
	// it is preferred over the Discretionary fallback.
	acceptThreshold = 10
)

// TransactionText carries the two free-text fields scored per transaction.
type TransactionText struct {
	Description string
	Merchant    string
}

// Classifier assigns categories to transactions by keyword scoring.
// It holds no mutable state and is safe for concurrent use.
type Classifier struct{}

// NewClassifier creates a keyword classifier.
func NewClassifier() *Classifier {
	return &Classifier{}
}

type scoredCategory struct {
	category *model.Category
	score    int
}

// Categorize scores every category's keywords against the merchant and
// description and returns the best match. It returns nil only when both
// inputs are empty, or when no category clears the threshold and the set
// has no Discretionary fallback.
func (c *Classifier) Categorize(description, merchant string, categories []model.Category) *model.Category {
	if description == "" && merchant == "" {
		return nil
	}

	merchantLower := strings.ToLower(strings.TrimSpace(merchant))
	descLower := strings.ToLower(strings.TrimSpace(description))

	scores := make([]scoredCategory, 0, len(categories))
	for i := range categories {
		scores = append(scores, scoredCategory{
			category: &categories[i],
			score:    scoreCategory(&categories[i], merchantLower, descLower),
		})
	}

	// Stable sort: input order breaks ties.
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].score > scores[j].score
	})

	if len(scores) > 0 && scores[0].score >= acceptThreshold {
		return scores[0].category
	}

	return model.FindDiscretionary(categories)
}

func scoreCategory(cat *model.Category, merchantLower, descLower string) int {
	score := 0
	for _, keyword := range cat.Keywords {
		score += scoreKeyword(keyword, merchantLower, descLower)
	}
	return score
}

func scoreKeyword(keyword, merchantLower, descLower string) int {
	keywordLower := strings.ToLower(keyword)
	keywordWords := strings.Fields(keywordLower)

	if merchantLower == keywordLower {
		return scoreExactMerchant
	}
	if strings.HasPrefix(merchantLower, keywordLower) {
		return scorePrefixMerchant
	}

	score := 0
	if matchesWholeWord(keywordLower, merchantLower) {
		score += scoreWordMerchant
	} else if strings.Contains(merchantLower, keywordLower) {
		score += scoreSubstrMerchant
	}

	if len(keywordWords) > 1 && allWordsContained(keywordWords, merchantLower) {
		score += scoreAllWordsMerchant
	}

	if matchesWholeWord(keywordLower, descLower) {
		score += scoreWordDescription
	} else if strings.Contains(descLower, keywordLower) {
		score += scoreSubstrDesc
	}

	switch ratio := similarity.Ratio(merchantLower, keywordLower); {
	case ratio > 0.8:
		score += scoreFuzzyHigh
	case ratio > 0.7:
		score += scoreFuzzyMid
	case ratio > 0.6:
		score += scoreFuzzyLow
	}

	return score
}

func matchesWholeWord(keyword, text string) bool {
	if keyword == "" || text == "" {
		return false
	}
	pattern, err := regexp.Compile(`\b` + regexp.QuoteMeta(keyword) + `\b`)
	if err != nil {
		return false
	}
	return pattern.MatchString(text)
}

func allWordsContained(words []string, text string) bool {
	for _, w := range words {
		if !strings.Contains(text, w) {
			return false
		}
	}
	return true
}

// CategorizeBatch applies Categorize elementwise, substituting the
// Discretionary category for any nil result. Output order and length
// match the input. The category set is expected to contain a
// Discretionary entry; without one, unmatched elements are zero-valued.
func (c *Classifier) CategorizeBatch(txns []TransactionText, categories []model.Category) []model.Category {
	fallback := model.FindDiscretionary(categories)

	results := make([]model.Category, len(txns))
	for i, txn := range txns {
		match := c.Categorize(txn.Description, txn.Merchant, categories)
		if match == nil {
			match = fallback
		}
		if match != nil {
			results[i] = *match
		}
	}
	return results
}

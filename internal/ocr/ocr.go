// Package ocr defines the contract with the external optical character
// recognition engine. The engine itself is an external capability: this
// package only shapes its input and output and surfaces its failures as
// typed errors.
package ocr

import (
	"context"
	"fmt"
)

// Result is the recognized text for one image plus the engine's
// confidence in it, on a 0-100 scale. Text is untrusted free-form input
// with no assumed structure.
type Result struct {
	Text       string
	Confidence float64
}

// Extractor produces recognized text from an image on disk. Extraction
// is the one long-running boundary in the pipeline; implementations must
// honor context cancellation.
type Extractor interface {
	Extract(ctx context.Context, imagePath string) (*Result, error)
}

// ExtractionError indicates the engine could not process an image
// (corrupt or unsupported format, engine failure).
type ExtractionError struct {
	Err       error
	ImagePath string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to extract text from %s: %v", e.ImagePath, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError wraps an engine failure for an image.
func NewExtractionError(imagePath string, err error) error {
	return &ExtractionError{ImagePath: imagePath, Err: err}
}

package ocr

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

// CommandExtractor shells out to an external OCR binary (tesseract by
// default) and captures its stdout as the recognized text. The engine is
// deliberately kept outside the process; swapping engines is a config
// change, not a code change.
type CommandExtractor struct {
	// Binary is the OCR executable to run.
	Binary string
	// Args are passed before the image path. With no args, tesseract's
	// stdout mode is assumed.
	Args []string
}

// NewCommandExtractor creates an extractor that runs the given binary.
// An empty binary defaults to "tesseract".
func NewCommandExtractor(binary string, args ...string) *CommandExtractor {
	if binary == "" {
		binary = "tesseract"
	}
	return &CommandExtractor{Binary: binary, Args: args}
}

// Extract runs the OCR binary against the image and returns its output.
// External engines invoked this way report no per-page confidence, so
// the result carries a neutral 100.
func (e *CommandExtractor) Extract(ctx context.Context, imagePath string) (*Result, error) {
	if _, err := os.Stat(imagePath); err != nil {
		return nil, NewExtractionError(imagePath, err)
	}

	args := make([]string, 0, len(e.Args)+2)
	args = append(args, e.Args...)
	args = append(args, imagePath)
	if e.Binary == "tesseract" && len(e.Args) == 0 {
		args = append(args, "stdout")
	}

	cmd := exec.CommandContext(ctx, e.Binary, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	slog.Debug("running OCR engine", "binary", e.Binary, "image", imagePath)
	if err := cmd.Run(); err != nil {
		slog.Debug("OCR engine failed", "stderr", strings.TrimSpace(stderr.String()))
		return nil, NewExtractionError(imagePath, err)
	}

	return &Result{
		Text:       stdout.String(),
		Confidence: 100,
	}, nil
}

package ocr

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSidecarExtractorReadsAdjacentFile(t *testing.T) {
	dir := t.TempDir()
	imagePath := filepath.Join(dir, "receipt.png")
	text := "Walmart\nTotal: $6.49\n01/15/2024\n"
	require.NoError(t, os.WriteFile(imagePath+".txt", []byte(text), 0o644))

	e := NewSidecarExtractor()
	result, err := e.Extract(context.Background(), imagePath)
	require.NoError(t, err)
	assert.Equal(t, text, result.Text)
	assert.InDelta(t, 100.0, result.Confidence, 0.0001)
}

func TestSidecarExtractorAcceptsTextPathDirectly(t *testing.T) {
	dir := t.TempDir()
	textPath := filepath.Join(dir, "receipt.txt")
	require.NoError(t, os.WriteFile(textPath, []byte("Corner Shop"), 0o644))

	e := NewSidecarExtractor()
	result, err := e.Extract(context.Background(), textPath)
	require.NoError(t, err)
	assert.Equal(t, "Corner Shop", result.Text)
}

func TestSidecarExtractorMissingFile(t *testing.T) {
	e := NewSidecarExtractor()
	_, err := e.Extract(context.Background(), filepath.Join(t.TempDir(), "missing.png"))
	require.Error(t, err)

	var extractErr *ExtractionError
	require.ErrorAs(t, err, &extractErr)
	assert.Contains(t, extractErr.ImagePath, "missing.png")
}

func TestSidecarExtractorCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e := NewSidecarExtractor()
	_, err := e.Extract(ctx, "receipt.png")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCommandExtractorMissingImage(t *testing.T) {
	e := NewCommandExtractor("")
	_, err := e.Extract(context.Background(), filepath.Join(t.TempDir(), "missing.png"))
	require.Error(t, err)

	var extractErr *ExtractionError
	assert.ErrorAs(t, err, &extractErr)
}

func TestCommandExtractorDefaultsBinary(t *testing.T) {
	e := NewCommandExtractor("")
	assert.Equal(t, "tesseract", e.Binary)
}

func TestExtractionErrorUnwraps(t *testing.T) {
	inner := errors.New("engine exploded")
	err := NewExtractionError("receipt.png", inner)

	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "receipt.png")
}

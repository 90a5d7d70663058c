package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/harperdean/scrip/internal/ocr"
	"github.com/harperdean/scrip/internal/storage"
)

// initStorage opens the configured database and brings the schema (and
// seeded default categories) up to date.
func initStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".local", "share", "scrip", "scrip.db")
	}

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to migrate storage: %w", err)
	}

	return store, nil
}

// createExtractor builds the configured OCR collaborator.
func createExtractor() ocr.Extractor {
	engine := viper.GetString("ocr.engine")
	if engine == "sidecar" {
		return ocr.NewSidecarExtractor()
	}

	binary := viper.GetString("ocr.binary")
	args := viper.GetStringSlice("ocr.args")
	return ocr.NewCommandExtractor(binary, args...)
}

// newTransactionID mints an ID for locally created transactions.
func newTransactionID(now time.Time) string {
	return fmt.Sprintf("txn-%d", now.UnixNano())
}

// readTextArg reads receipt text from a file path, or stdin when the
// argument is "-".
func readTextArg(arg string) (string, error) {
	if arg == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(arg)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", arg, err)
	}
	return string(data), nil
}

// confirm prompts for a yes/no answer on stdin, defaulting to yes.
func confirm(prompt string) bool {
	fmt.Printf("%s [Y/n] ", prompt)
	var answer string
	if _, err := fmt.Scanln(&answer); err != nil {
		return true
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "" || answer == "y" || answer == "yes"
}

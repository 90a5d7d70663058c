package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperdean/scrip/internal/model"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadLabeledCSV(t *testing.T) {
	path := writeTempFile(t, "labeled.csv",
		"merchant,description,category\n"+
			"Walmart,weekly groceries,Groceries\n"+
			"Starbucks, latte ,Dining Out\n")

	rows, err := readLabeledCSV(path)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Walmart", rows[0].merchant)
	assert.Equal(t, "weekly groceries", rows[0].description)
	assert.Equal(t, "Groceries", rows[0].category)
	assert.Equal(t, "latte", rows[1].description, "fields are trimmed")
}

func TestReadLabeledCSVNoHeader(t *testing.T) {
	path := writeTempFile(t, "labeled.csv", "Walmart,milk,Groceries\n")

	rows, err := readLabeledCSV(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Walmart", rows[0].merchant)
}

func TestReadLabeledCSVShortRow(t *testing.T) {
	path := writeTempFile(t, "labeled.csv", "Walmart,milk,Groceries\nStarbucks,latte\n")

	_, err := readLabeledCSV(path)
	assert.Error(t, err)
}

func TestReadTransactionsCSV(t *testing.T) {
	path := writeTempFile(t, "txns.csv",
		"date,merchant,description,amount\n"+
			"2024-01-15,Walmart,Milk and bread,6.49\n"+
			"2024-02-01,Shell,Fuel,41.20\n")

	txns, err := readTransactionsCSV(path)
	require.NoError(t, err)
	require.Len(t, txns, 2)

	assert.Equal(t, "Walmart", txns[0].Merchant)
	assert.Equal(t, "Milk and bread", txns[0].Description)
	assert.InDelta(t, 6.49, txns[0].Amount, 0.0001)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), txns[0].Date)
	assert.NotEmpty(t, txns[0].Hash)
	assert.NotEqual(t, txns[0].Hash, txns[1].Hash)
}

func TestReadTransactionsCSVRejectsBadRows(t *testing.T) {
	badDate := writeTempFile(t, "bad-date.csv", "01/15/2024,Walmart,milk,6.49\n")
	_, err := readTransactionsCSV(badDate)
	assert.Error(t, err)

	badAmount := writeTempFile(t, "bad-amount.csv", "2024-01-15,Walmart,milk,six dollars\n")
	_, err = readTransactionsCSV(badAmount)
	assert.Error(t, err)
}

func TestSplitKeywords(t *testing.T) {
	assert.Equal(t, []string{"walmart", "whole foods"}, splitKeywords("walmart, whole foods"))
	assert.Equal(t, []string{"cafe"}, splitKeywords(" cafe ,, "))
	assert.Nil(t, splitKeywords(""))
}

func TestBuildTransaction(t *testing.T) {
	total := 45.67
	merchant := "Store Name"
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	parsed := model.ParsedReceipt{
		Merchant: &merchant,
		Total:    &total,
		Date:     &date,
		Items:    []string{"Milk 3.99", "Bread 2.50", "Eggs 4.00"},
	}
	category := &model.Category{ID: 1, Name: "Groceries"}

	txn := buildTransaction(parsed, category, "from the corner store", "raw text")
	assert.Equal(t, "Store Name", txn.Merchant)
	assert.InDelta(t, 45.67, txn.Amount, 0.0001)
	assert.Equal(t, date, txn.Date)
	assert.Equal(t, 1, txn.CategoryID)
	assert.Equal(t, "from the corner store", txn.Notes)
	assert.Equal(t, "raw text", txn.RawOCRText)
	assert.Equal(t, "Milk 3.99, Bread 2.50", txn.Description, "first two items")
	assert.NotEmpty(t, txn.ID)
}

func TestBuildTransactionMinimalReceipt(t *testing.T) {
	txn := buildTransaction(model.ParsedReceipt{}, nil, "", "raw")
	assert.Empty(t, txn.Merchant)
	assert.Zero(t, txn.Amount)
	assert.Zero(t, txn.CategoryID)
	assert.False(t, txn.Date.IsZero(), "falls back to the current time")
}

func TestReadTextArg(t *testing.T) {
	path := writeTempFile(t, "receipt.txt", "Walmart\nTotal 6.49\n")

	text, err := readTextArg(path)
	require.NoError(t, err)
	assert.Equal(t, "Walmart\nTotal 6.49\n", text)

	_, err = readTextArg(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/harperdean/scrip/internal/receipt"
)

func parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <textfile|->",
		Short: "Parse raw receipt text and print the extracted fields",
		Long: `Run the receipt parsing heuristics over already-recognized text (a file,
or stdin with "-") without touching OCR or the database. Useful for
inspecting what a scan would extract.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readTextArg(args[0])
			if err != nil {
				return err
			}

			parser := receipt.NewParser()
			parsed := parser.Parse(text)
			printParsed(parsed, nil)
			return nil
		},
	}
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harperdean/scrip/internal/classify"
	"github.com/harperdean/scrip/internal/cli"
	"github.com/harperdean/scrip/internal/common"
)

func categorizeCmd() *cobra.Command {
	var (
		merchant    string
		description string
	)

	cmd := &cobra.Command{
		Use:   "categorize",
		Short: "Suggest a category for a transaction",
		Long: `Score the stored categories' keywords against a merchant name and
description and print the best match. Purely advisory; nothing is saved.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if merchant == "" && description == "" {
				return common.NewUserError("provide --merchant and/or --description", nil)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			categories, err := store.GetCategories(ctx)
			if err != nil {
				return fmt.Errorf("failed to load categories: %w", err)
			}
			if len(categories) == 0 {
				return common.ErrNoCategories
			}

			classifier := classify.NewClassifier()
			category := classifier.Categorize(description, merchant, categories)
			if category == nil {
				fmt.Println(cli.FormatWarning("no category matched"))
				return nil
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("%s %s", category.Icon, category.Name)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&merchant, "merchant", "m", "", "merchant name")
	cmd.Flags().StringVarP(&description, "description", "d", "", "free-text description")

	return cmd
}

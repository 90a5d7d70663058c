package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/harperdean/scrip/internal/cli"
	"github.com/harperdean/scrip/internal/common"
	"github.com/harperdean/scrip/internal/model"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage spending categories",
		Long:  `List, add, and delete spending categories and edit their keyword lists.`,
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(addCategoryCmd())
	cmd.AddCommand(keywordsCmd())
	cmd.AddCommand(deleteCategoryCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			categories, err := store.GetCategories(ctx)
			if err != nil {
				return fmt.Errorf("failed to get categories: %w", err)
			}
			if len(categories) == 0 {
				fmt.Println(cli.InfoStyle.Render("No categories found. Use 'scrip categories add' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\n",
				cli.BoldStyle.Render("ID"),
				cli.BoldStyle.Render("Name"),
				cli.BoldStyle.Render("Keywords"))

			for _, cat := range categories {
				keywords := strings.Join(cat.Keywords, ", ")
				if keywords == "" {
					keywords = cli.SubtleStyle.Render("(none)")
				}
				fmt.Fprintf(w, "%d\t%s %s\t%s\n", cat.ID, cat.Icon, cat.Name, keywords)
			}
			return nil
		},
	}
}

func addCategoryCmd() *cobra.Command {
	var (
		icon     string
		color    string
		keywords []string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			name := args[0]

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			existing, err := store.GetCategoryByName(ctx, name)
			if err != nil {
				return fmt.Errorf("failed to check existing category: %w", err)
			}
			if existing != nil {
				return common.NewUserError(fmt.Sprintf("category %q already exists", name), common.ErrDuplicateEntry)
			}

			category, err := store.CreateCategory(ctx, name, icon, color, keywords)
			if err != nil {
				return fmt.Errorf("failed to create category: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Created category %q (ID: %d)", category.Name, category.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&icon, "icon", "", "emoji icon for the category")
	cmd.Flags().StringVar(&color, "color", "", "hex display color")
	cmd.Flags().StringSliceVar(&keywords, "keywords", nil, "comma-separated matching keywords")

	return cmd
}

func keywordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keywords <category>",
		Short: "Show or edit a category's keywords",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <category> <keyword,keyword,...>",
		Short: "Replace a category's keyword list",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			category, err := resolveCategory(cmd, store, args[0])
			if err != nil {
				return err
			}

			keywords := splitKeywords(args[1])
			if err := store.UpdateCategoryKeywords(ctx, category.ID, keywords); err != nil {
				return fmt.Errorf("failed to update keywords: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Updated keywords for %q (%d keywords)", category.Name, len(keywords))))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show <category>",
		Short: "Show a category's keyword list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := initStorage(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			category, err := resolveCategory(cmd, store, args[0])
			if err != nil {
				return err
			}

			fmt.Printf("%s %s\n", category.Icon, cli.BoldStyle.Render(category.Name))
			for _, keyword := range category.Keywords {
				fmt.Printf("  %s\n", keyword)
			}
			return nil
		},
	})

	return cmd
}

func deleteCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <category>",
		Short: "Delete a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			category, err := resolveCategory(cmd, store, args[0])
			if err != nil {
				return err
			}
			if category.IsDiscretionary() {
				return common.NewUserError("the Discretionary fallback category cannot be deleted", nil)
			}

			if err := store.DeleteCategory(ctx, category.ID); err != nil {
				return fmt.Errorf("failed to delete category: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted category %q", category.Name)))
			return nil
		},
	}
}

// resolveCategory accepts a category name or numeric ID.
func resolveCategory(cmd *cobra.Command, store categoryLookup, arg string) (*model.Category, error) {
	ctx := cmd.Context()

	if id, err := strconv.Atoi(arg); err == nil {
		category, err := store.GetCategoryByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to look up category: %w", err)
		}
		if category == nil {
			return nil, common.NewUserError(fmt.Sprintf("category %d not found", id), common.ErrNotFound)
		}
		return category, nil
	}

	category, err := store.GetCategoryByName(ctx, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to look up category: %w", err)
	}
	if category == nil {
		return nil, common.NewUserError(fmt.Sprintf("category %q not found", arg), common.ErrNotFound)
	}
	return category, nil
}

type categoryLookup interface {
	GetCategoryByID(ctx context.Context, id int) (*model.Category, error)
	GetCategoryByName(ctx context.Context, name string) (*model.Category, error)
}

func splitKeywords(s string) []string {
	var keywords []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			keywords = append(keywords, trimmed)
		}
	}
	return keywords
}

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"reelcat/internal/catalog"
	"reelcat/internal/config"
)

func newAuthorsCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "authors",
		Short: "List catalog authors",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, st catalog.Store) error {
				authors, err := st.ReadAllAuthors(cmd.Context())
				if err != nil {
					return err
				}
				if jsonOut {
					return writeJSON(cmd, authors)
				}
				if len(authors) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "Catalog has no authors")
					return nil
				}
				rows := make([][]string, 0, len(authors))
				for _, author := range authors {
					rows = append(rows, []string{
						strconv.FormatInt(author.ID, 10),
						author.Name,
						strconv.Itoa(len(author.Videos)),
					})
				}
				out := renderTable(
					[]string{"ID", "Name", "Videos"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignRight},
				)
				fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of a table")
	return cmd
}

func newCategoriesCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List catalog categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, st catalog.Store) error {
				categories, err := st.ReadAllCategories(cmd.Context())
				if err != nil {
					return err
				}
				if jsonOut {
					return writeJSON(cmd, categories)
				}
				if len(categories) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "Catalog has no categories")
					return nil
				}
				rows := make([][]string, 0, len(categories))
				for _, category := range categories {
					rows = append(rows, []string{
						strconv.FormatInt(category.ID, 10),
						category.Name,
					})
				}
				out := renderTable(
					[]string{"ID", "Name"},
					rows,
					[]columnAlignment{alignRight, alignLeft},
				)
				fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of a table")
	return cmd
}

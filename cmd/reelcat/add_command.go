package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"reelcat/internal/catalog"
	"reelcat/internal/config"
)

func newAddCommand(ctx *commandContext) *cobra.Command {
	var authorID int64
	var categoriesFlag string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new video to an author",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catIDs, err := parseCategoryIDs(categoriesFlag)
			if err != nil {
				return err
			}
			return ctx.withStore(func(cfg *config.Config, st catalog.Store) error {
				mutator, err := ctx.newMutator(cfg, st)
				if err != nil {
					return err
				}
				id, err := mutator.Create(cmd.Context(), args[0], catIDs, authorID)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Created video %d\n", id)
				return nil
			})
		},
	}

	cmd.Flags().Int64Var(&authorID, "author", 0, "ID of the author receiving the video")
	cmd.Flags().StringVar(&categoriesFlag, "categories", "", "Comma-separated category IDs")
	_ = cmd.MarkFlagRequired("author")
	return cmd
}

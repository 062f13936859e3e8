package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"reelcat/internal/catalog"
	"reelcat/internal/config"
)

func newEditCommand(ctx *commandContext) *cobra.Command {
	var name string
	var categoriesFlag string
	var authorID int64

	cmd := &cobra.Command{
		Use:   "edit <video-id>",
		Short: "Edit a video's name or categories, or move it to another author",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			videoID, err := parseVideoID(args[0])
			if err != nil {
				return err
			}
			return ctx.withStore(func(cfg *config.Config, st catalog.Store) error {
				authors, err := st.ReadAllAuthors(cmd.Context())
				if err != nil {
					return err
				}
				video, owner, err := findVideo(authors, videoID)
				if err != nil {
					return err
				}

				newName := video.Name
				if cmd.Flags().Changed("name") {
					newName = name
				}
				catIDs := video.CatIDs
				if cmd.Flags().Changed("categories") {
					catIDs, err = parseCategoryIDs(categoriesFlag)
					if err != nil {
						return err
					}
				}
				targetID := owner.ID
				if cmd.Flags().Changed("author") {
					targetID = authorID
				}

				mutator, err := ctx.newMutator(cfg, st)
				if err != nil {
					return err
				}
				if err := mutator.Update(cmd.Context(), video, newName, catIDs, targetID, owner.ID); err != nil {
					return err
				}
				if targetID != owner.ID {
					fmt.Fprintf(cmd.OutOrStdout(), "Moved video %d to author %d\n", videoID, targetID)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "Updated video %d\n", videoID)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New display name")
	cmd.Flags().StringVar(&categoriesFlag, "categories", "", "Comma-separated category IDs")
	cmd.Flags().Int64Var(&authorID, "author", 0, "ID of the author to move the video to")
	return cmd
}

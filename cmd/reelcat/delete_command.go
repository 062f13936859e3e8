package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"reelcat/internal/catalog"
	"reelcat/internal/config"
)

func newDeleteCommand(ctx *commandContext) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <video-id>",
		Short: "Delete a video from the catalog",
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

				if !yes {
					fmt.Fprintf(cmd.OutOrStdout(),
						"Would delete %q (video %d, author %s); rerun with --yes to confirm\n",
						video.Name, video.ID, owner.Name)
					return nil
				}

				mutator, err := ctx.newMutator(cfg, st)
				if err != nil {
					return err
				}
				if err := mutator.Delete(cmd.Context(), catalog.FlatVideo{
					ID:     video.ID,
					Name:   video.Name,
					Author: owner.Name,
				}); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted video %d\n", videoID)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Delete without confirmation")
	return cmd
}

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"reelcat/internal/catalog"
	"reelcat/internal/config"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var filter string
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all videos with resolved categories and best quality",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, st catalog.Store) error {
				authors, err := st.ReadAllAuthors(cmd.Context())
				if err != nil {
					return err
				}
				categories, err := st.ReadAllCategories(cmd.Context())
				if err != nil {
					return err
				}
				videos, err := catalog.Flatten(authors, categories)
				if err != nil {
					return err
				}
				if filter != "" {
					videos = filterVideos(videos, filter)
				}

				if jsonOut {
					return writeJSON(cmd, videos)
				}
				if len(videos) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "Catalog is empty")
					return nil
				}

				rows := make([][]string, 0, len(videos))
				for _, video := range videos {
					rows = append(rows, []string{
						strconv.FormatInt(video.ID, 10),
						video.Name,
						video.Author,
						strings.Join(video.Categories, ", "),
						video.HighestQualityFormat,
						video.ReleaseDate,
					})
				}
				out := renderTable(
					[]string{"ID", "Name", "Author", "Categories", "Best Quality", "Released"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft, alignLeft},
				)
				fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "Show only videos whose name contains this text")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of a table")
	return cmd
}

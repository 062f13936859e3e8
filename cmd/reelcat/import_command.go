package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"reelcat/internal/catalog"
	"reelcat/internal/store"
)

// catalogSnapshot is the JSON import shape: the same document a REST
// catalog service serves, with both collections side by side.
type catalogSnapshot struct {
	Authors    []catalog.Author   `json:"authors"`
	Categories []catalog.Category `json:"categories"`
}

func newImportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Seed the local SQLite catalog from a JSON snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if cfg.Store.Backend != "sqlite" {
				return errors.New(`import requires store.backend = "sqlite"`)
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read snapshot: %w", err)
			}
			var snapshot catalogSnapshot
			if err := json.Unmarshal(data, &snapshot); err != nil {
				return fmt.Errorf("parse snapshot: %w", err)
			}

			st, err := store.OpenSQLiteFromConfig(cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.Seed(cmd.Context(), snapshot.Authors, snapshot.Categories); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d authors and %d categories\n",
				len(snapshot.Authors), len(snapshot.Categories))
			return nil
		},
	}
}

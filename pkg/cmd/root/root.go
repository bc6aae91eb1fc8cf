package root

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/xewelus/obsidian-fm/internal/constants"
	"github.com/xewelus/obsidian-fm/internal/state"
	"github.com/xewelus/obsidian-fm/pkg/cmd/childcount"
	"github.com/xewelus/obsidian-fm/pkg/cmd/list"
	"github.com/xewelus/obsidian-fm/pkg/cmd/stats"
	"github.com/xewelus/obsidian-fm/pkg/cmd/values"
)

func NewCmdRoot(s *state.State) (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:     "obsidian-fm",
		Aliases: []string{"fm"},
		Version: constants.Version,
		Short:   "Inventory and query YAML frontmatter across an Obsidian vault.",
		Long: heredoc.Doc(`
			obsidian-fm scans a vault of markdown notes, indexes the YAML
			frontmatter of every note, and answers attribute usage, value
			distribution, and note lookup queries over the result.

			  obsidian-fm stats
			  obsidian-fm values --attribute tags
			  obsidian-fm list --attribute status --value draft
		`),
		SilenceUsage: true,
	}

	cmd.PersistentFlags().
		StringP(
			"vault-path",
			"p",
			"",
			"Path to the vault to scan (overrides the configured vaultdir).",
		)
	viper.BindPFlag("vaultdir", cmd.PersistentFlags().Lookup("vault-path"))

	cmd.AddCommand(
		stats.NewCmdStats(s),
		values.NewCmdValues(s),
		list.NewCmdList(s),
		childcount.NewCmdChildCount(s),
	)

	return cmd, nil
}

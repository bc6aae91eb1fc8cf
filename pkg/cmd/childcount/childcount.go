package childcount

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/xewelus/obsidian-fm/internal/state"
)

func NewCmdChildCount(s *state.State) *cobra.Command {
	var (
		hub        string
		parentAttr string
		refsAttr   string
	)

	cmd := &cobra.Command{
		Use:   "child-count",
		Short: "Print the combined child count (parent + refs) for a hub note.",
		Long: heredoc.Doc(`
			The child-count command counts the notes that point at a hub
			value through either the parent attribute or the refs list. The
			output is a single integer so it can be used from scripts.

			Examples:
			  obsidian-fm child-count --hub "[[Learn]]"
			  obsidian-fm child-count --hub "[[Work]]" --parent-attribute up
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(s, hub, parentAttr, refsAttr)
		},
	}

	cmd.Flags().StringVar(&hub, "hub", "", "Hub value to count children for")
	cmd.MarkFlagRequired("hub")
	cmd.Flags().
		StringVar(&parentAttr, "parent-attribute", "parent", "Frontmatter attribute used for the hierarchy parent")
	cmd.Flags().
		StringVar(&refsAttr, "refs-attribute", "refs", "Frontmatter attribute used for the refs list")

	return cmd
}

func run(s *state.State, hub, parentAttr, refsAttr string) error {
	a, err := s.Analyze()
	if err != nil {
		return err
	}

	fmt.Println(a.ChildCount(hub, parentAttr, refsAttr))
	return nil
}

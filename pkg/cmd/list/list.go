package list

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/xewelus/obsidian-fm/internal/pathutil"
	"github.com/xewelus/obsidian-fm/internal/state"
	"github.com/xewelus/obsidian-fm/pkg/shared/flags"
)

var valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

func NewCmdList(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notes and values for a specific attribute.",
		Long: heredoc.Doc(`
			Without --value, the list command groups notes by each value the
			attribute holds. With --value, it lists only the notes holding
			that value.

			Examples:
			  obsidian-fm list --attribute status
			  obsidian-fm list --attribute status --value draft
			  obsidian-fm list -a tags --limit-values 5 --limit-notes 3
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, s)
		},
	}

	flags.AddAttribute(cmd)
	flags.AddValue(cmd)
	flags.AddLimit(cmd, "limit", "Total max notes (when filtering by value)")
	flags.AddLimit(cmd, "limit-values", "Max number of attribute values to show")
	flags.AddLimit(cmd, "limit-notes", "Max notes to show per attribute value")

	return cmd
}

func run(cmd *cobra.Command, s *state.State) error {
	attribute, err := flags.HandleAttribute(cmd)
	if err != nil {
		return err
	}

	value, err := flags.HandleValue(cmd)
	if err != nil {
		return err
	}

	a, err := s.Analyze()
	if err != nil {
		return err
	}

	vault := s.VaultDir()

	if value != nil {
		limit, err := flags.HandleLimit(cmd, "limit")
		if err != nil {
			return err
		}

		files, err := a.FilesFor(attribute, value, limit)
		if err != nil {
			return err
		}

		if len(files) == 0 {
			fmt.Printf("No notes found with %s=%v\n", attribute, value)
			return nil
		}

		fmt.Printf("\nNotes with %s=%v (Total: %d)\n\n", attribute, value, len(files))
		for _, path := range files {
			fmt.Printf("  - %s\n", pathutil.VaultRelative(vault, path))
		}
		return nil
	}

	limitValues, err := flags.HandleLimit(cmd, "limit-values")
	if err != nil {
		return err
	}
	limitNotes, err := flags.HandleLimit(cmd, "limit-notes")
	if err != nil {
		return err
	}

	entries, err := a.ValuesWithFiles(attribute, limitValues, limitNotes)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Printf("No values found for attribute '%s'\n", attribute)
		return nil
	}

	fmt.Printf("\nValues for attribute '%s'\n", attribute)
	for _, entry := range entries {
		fmt.Printf("\n%s (%d notes):\n", valueStyle.Render(entry.Value.String()), entry.Count)
		for _, path := range entry.Files {
			fmt.Printf("  - %s\n", pathutil.VaultRelative(vault, path))
		}
		if remaining := entry.Count - len(entry.Files); remaining > 0 {
			fmt.Printf("  ... and %d more\n", remaining)
		}
	}
	return nil
}

/*
Copyright © 2024 Ryan Painter paintersrp@gmail.com

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package values

import (
	"fmt"
	"strconv"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/xewelus/obsidian-fm/internal/state"
	"github.com/xewelus/obsidian-fm/pkg/shared/flags"
)

func NewCmdValues(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "values",
		Short: "Show the observed values for an attribute with counts.",
		Long: heredoc.Doc(`
			The values command lists every distinct value an attribute holds
			across the vault, most frequent first. List-valued attributes
			count each list item separately.

			Examples:
			  obsidian-fm values --attribute status
			  obsidian-fm values -a tags --limit 10
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, s)
		},
	}

	flags.AddAttribute(cmd)
	flags.AddLimit(cmd, "limit", "Max number of values to show")

	return cmd
}

func run(cmd *cobra.Command, s *state.State) error {
	attribute, err := flags.HandleAttribute(cmd)
	if err != nil {
		return err
	}

	limit, err := flags.HandleLimit(cmd, "limit")
	if err != nil {
		return err
	}

	a, err := s.Analyze()
	if err != nil {
		return err
	}

	counts, err := a.ValuesFor(attribute, limit)
	if err != nil {
		return err
	}

	if len(counts) == 0 {
		fmt.Printf("No values found for attribute '%s'\n", attribute)
		return nil
	}

	rows := make([][]string, 0, len(counts))
	for _, vc := range counts {
		rows = append(rows, []string{vc.Value.String(), strconv.Itoa(vc.Count)})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == 0 {
				return lipgloss.NewStyle().Bold(true).Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers(fmt.Sprintf("Values for '%s'", attribute), "Count").
		Rows(rows...)

	fmt.Println(t.Render())
	return nil
}

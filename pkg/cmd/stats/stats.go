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
package stats

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	yamlv2 "gopkg.in/yaml.v2"

	"github.com/xewelus/obsidian-fm/internal/state"
)

func NewCmdStats(s *state.State) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show usage statistics for all frontmatter attributes.",
		Long: heredoc.Doc(`
			The stats command scans the vault and reports how many notes use
			each frontmatter attribute, alongside the overall file counts.

			Examples:
			  obsidian-fm stats
			  obsidian-fm stats --format yaml
			  obsidian-fm stats --vault-path ~/notes
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(s, format)
		},
	}

	cmd.Flags().
		StringVarP(&format, "format", "f", "table", "Output format: table or yaml")

	return cmd
}

type attrCount struct {
	name  string
	count int
}

func run(s *state.State, format string) error {
	if format != "table" && format != "yaml" {
		return fmt.Errorf("invalid format %q, expected table or yaml", format)
	}

	a, err := s.Analyze()
	if err != nil {
		return err
	}

	stats := a.AttributeStats()
	if len(stats) == 0 {
		fmt.Println("No frontmatter attributes found.")
		return nil
	}

	sorted := make([]attrCount, 0, len(stats))
	for name, count := range stats {
		sorted = append(sorted, attrCount{name: name, count: count})
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].count != sorted[j].count {
			return sorted[i].count > sorted[j].count
		}
		return sorted[i].name < sorted[j].name
	})

	if format == "yaml" {
		return printYAML(a.TotalFiles(), a.FilesWithFrontmatter(), sorted)
	}

	fmt.Printf("\nTotal files: %d\n", a.TotalFiles())
	fmt.Printf("Files with frontmatter: %d\n\n", a.FilesWithFrontmatter())

	rows := make([][]string, 0, len(sorted))
	for _, ac := range sorted {
		rows = append(rows, []string{ac.name, strconv.Itoa(ac.count)})
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
		Headers("Attribute", "Count").
		Rows(rows...)

	fmt.Println(t.Render())
	return nil
}

// printYAML emits an order-preserving document; a plain map would lose the
// count-descending ordering on marshal.
func printYAML(total, withFrontmatter int, sorted []attrCount) error {
	attrs := make(yamlv2.MapSlice, 0, len(sorted))
	for _, ac := range sorted {
		attrs = append(attrs, yamlv2.MapItem{Key: ac.name, Value: ac.count})
	}

	doc := yamlv2.MapSlice{
		{Key: "total_files", Value: total},
		{Key: "files_with_frontmatter", Value: withFrontmatter},
		{Key: "attributes", Value: attrs},
	}

	out, err := yamlv2.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal stats: %w", err)
	}

	fmt.Print(string(out))
	return nil
}

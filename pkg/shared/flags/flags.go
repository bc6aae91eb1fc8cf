package flags

import (
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/xewelus/obsidian-fm/internal/frontmatter"
)

func AddAttribute(cmd *cobra.Command) {
	cmd.Flags().StringP("attribute", "a", "", "Frontmatter attribute to query")
	cmd.MarkFlagRequired("attribute")
}

func HandleAttribute(cmd *cobra.Command) (string, error) {
	return cmd.Flags().GetString("attribute")
}

func AddLimit(cmd *cobra.Command, name, usage string) {
	cmd.Flags().Int(name, 0, usage)
}

// HandleLimit distinguishes an omitted limit (nil, unlimited) from an
// explicitly supplied one; validation of the supplied value is the query
// engine's job.
func HandleLimit(cmd *cobra.Command, name string) (*int, error) {
	if !cmd.Flags().Changed(name) {
		return nil, nil
	}

	limit, err := cmd.Flags().GetInt(name)
	if err != nil {
		return nil, err
	}
	return &limit, nil
}

func AddValue(cmd *cobra.Command) {
	cmd.Flags().StringP("value", "v", "", "Filter by a specific attribute value")
}

// HandleValue decodes the raw flag text as a single YAML scalar so typed
// frontmatter values still match: --value 5 finds an integer 5, --value
// "'5'" the string, and --value null an explicit YAML null. Returns nil
// when the flag was not set.
func HandleValue(cmd *cobra.Command) (any, error) {
	if !cmd.Flags().Changed("value") {
		return nil, nil
	}

	raw, err := cmd.Flags().GetString("value")
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(raw) == "" {
		// An empty flag filters for the empty string, not YAML null.
		return raw, nil
	}

	var decoded any
	if err := yaml.Unmarshal([]byte(raw), &decoded); err != nil {
		// Not a clean scalar; fall back to the literal text.
		return raw, nil
	}
	if decoded == nil {
		return frontmatter.Null(), nil
	}
	return decoded, nil
}

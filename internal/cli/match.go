package cli

import (
	"encoding/json"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"

	"github.com/threadtone/threadtone/internal/colour"
)

var (
	// Match command flags
	matchDistance string
	matchTop      int
	matchCatalogs []string
	matchFormat   string
)

// matchCmd represents the match command
var matchCmd = &cobra.Command{
	Use:   "match <hex-colour>",
	Short: "Find the closest thread colours to a colour",
	Long: `Match a single colour against the thread catalogs.

An exact RGB match wins outright; otherwise the closest threads under the
selected perceptual distance algorithm are reported with their similarity
percentage.

Examples:
  # Best match across all built-in catalogs
  threadtone match "#e63946"

  # Top 5 matches using Lab-Euclidean distance, DMC only
  threadtone match --top 5 --distance lab --catalog DMC "#2a9d8f"`,
	Args: cobra.ExactArgs(1),
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().StringVar(&matchDistance, "distance", string(colour.AlgorithmCIEDE2000), "distance algorithm (euclidean, lab, ciede2000)")
	matchCmd.Flags().IntVarP(&matchTop, "top", "k", 1, "number of matches to return")
	matchCmd.Flags().StringSliceVar(&matchCatalogs, "catalog", nil, "catalog to match against: built-in name or JSON file (default: all built-ins)")
	matchCmd.Flags().StringVarP(&matchFormat, "format", "f", "table", "output format (table, json)")
}

// runMatch executes the match command.
func runMatch(cmd *cobra.Command, args []string) error {
	c, err := colorful.Hex(args[0])
	if err != nil {
		return fmt.Errorf("invalid colour %q: %w", args[0], err)
	}
	r, g, b := c.RGB255()
	query := colour.RGB{R: r, G: g, B: b}

	algorithm := colour.DistanceAlgorithm(matchDistance)
	if !colour.IsValidAlgorithm(algorithm) {
		return fmt.Errorf("unknown distance algorithm %q (valid: %v)", matchDistance, colour.ValidAlgorithms())
	}

	set, err := resolveCatalogSet(matchCatalogs)
	if err != nil {
		return err
	}

	matches, err := set.FindTopMatches(query, matchTop, algorithm)
	if err != nil {
		return err
	}

	if matchFormat == "json" {
		data, err := json.MarshalIndent(matches, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode matches: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	table := NewTable([]string{"", "Code", "Catalog", "Name", "Colour", "Distance", "Match"})
	for _, m := range matches {
		table.AddRow([]string{
			swatch(m.Thread.RGB, true),
			m.Thread.Code,
			m.Thread.Catalog,
			m.Thread.Name,
			m.Thread.RGB.Hex(),
			fmt.Sprintf("%.2f", m.Distance),
			fmt.Sprintf("%.1f%%", m.Similarity),
		})
	}
	fmt.Print(table.Render())
	return nil
}

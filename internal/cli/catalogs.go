package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/threadtone/threadtone/internal/catalog"
)

var catalogsFormat string

// catalogsCmd represents the catalogs command
var catalogsCmd = &cobra.Command{
	Use:   "catalogs",
	Short: "List the built-in thread catalogs",
	Long: `List the thread catalogs shipped with the binary and their entry counts.

Custom catalogs can be supplied to quantize/match via --catalog with a JSON
file of the shape:

  {"name": "Sulky", "threads": [{"code": "1001", "name": "White", "hex": "#ffffff"}]}`,
	RunE: runCatalogs,
}

func init() {
	catalogsCmd.Flags().StringVarP(&catalogsFormat, "format", "f", "table", "output format (table, json)")
}

// runCatalogs executes the catalogs command.
func runCatalogs(cmd *cobra.Command, args []string) error {
	set := catalog.Builtin()

	if catalogsFormat == "json" {
		type entry struct {
			Name    string `json:"name"`
			Threads int    `json:"threads"`
		}
		entries := make([]entry, 0, len(set.Catalogs()))
		for _, c := range set.Catalogs() {
			entries = append(entries, entry{Name: c.Name, Threads: len(c.Threads)})
		}
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode catalogs: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	table := NewTable([]string{"Catalog", "Threads"})
	for _, c := range set.Catalogs() {
		table.AddRow([]string{c.Name, fmt.Sprintf("%d", len(c.Threads))})
	}
	fmt.Print(table.Render())
	return nil
}

package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/nagygr/shortcuts/internal/model"
	"github.com/nagygr/shortcuts/internal/render"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered applications",
	Long:  `List the applications in the registry, in registry order, with their resolved config paths.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

// listEntry represents a registered application for display.
type listEntry struct {
	Index  int    `json:"index"`
	Name   string `json:"name"`
	Config string `json:"config"`
	Path   string `json:"path"`
	Syntax string `json:"syntax"`
}

func runList(cmd *cobra.Command, args []string) error {
	p, err := loadPipeline(cmd.OutOrStdout(), render.ModePlain)
	if err != nil {
		return err
	}

	entries := lo.Map(p.Applications(), func(app model.Application, i int) listEntry {
		return listEntry{
			Index:  i,
			Name:   app.Name,
			Config: app.Config,
			Path:   p.Resolve(app),
			Syntax: app.Syntax,
		}
	})

	if listJSON {
		return printListJSON(cmd, entries)
	}
	if len(entries) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No applications configured in %s\n", p.RegistryPath())
		return nil
	}
	return printListTable(cmd, entries)
}

func printListTable(cmd *cobra.Command, entries []listEntry) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "INDEX\tNAME\tPATH")
	for _, e := range entries {
		fmt.Fprintf(w, "%d\t%s\t%s\n", e.Index, e.Name, e.Path)
	}
	return w.Flush()
}

func printListJSON(cmd *cobra.Command, entries []listEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}

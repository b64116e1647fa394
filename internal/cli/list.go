package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List MCP servers registered with the hosts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inst, err := newInstaller()
			if err != nil {
				return err
			}
			merged := inst.ReadMerged()

			if jsonOutput {
				printJSON(merged.Servers)
				return nil
			}
			if len(merged.Servers) == 0 {
				fmt.Println("No MCP servers installed")
				return nil
			}

			names := make([]string, 0, len(merged.Servers))
			for name := range merged.Servers {
				names = append(names, name)
			}
			sort.Strings(names)

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tRUNTIME\tCOMMAND")
			for _, name := range names {
				entry := merged.Servers[name]
				fmt.Fprintf(w, "%s\t%s\t%s %s\n", name, entry.Runtime, entry.Command, strings.Join(entry.Args, " "))
			}
			return w.Flush()
		},
	}
}

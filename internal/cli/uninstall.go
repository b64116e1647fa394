package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newUninstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "uninstall <package>",
		Short: "Remove an MCP server from both hosts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pkg := args[0]
			inst, err := newInstaller()
			if err != nil {
				return err
			}
			removed, err := inst.Uninstall(pkg)
			if err != nil {
				return fmt.Errorf("failed to uninstall %s: %w", pkg, err)
			}
			if !removed {
				// Informational no-op, not an error: nothing was written.
				if jsonOutput {
					printJSON(map[string]string{"status": "not-installed", "package": pkg})
				} else {
					infoLabel.Printf("%s is not installed\n", pkg)
				}
				return nil
			}
			if jsonOutput {
				printJSON(map[string]string{"status": "uninstalled", "package": pkg})
			} else {
				okLabel.Printf("Uninstalled %s from both hosts\n", pkg)
			}
			return nil
		},
	}
}

package cli

import (
	"github.com/spf13/cobra"
)

func newInstalledCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "installed <package>",
		Short: "Check whether an MCP server is installed (exit code 1 when not)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pkg := args[0]
			inst, err := newInstaller()
			if err != nil {
				return err
			}
			ok := inst.IsInstalled(pkg)
			if jsonOutput {
				printJSON(map[string]bool{"installed": ok})
			} else if ok {
				okLabel.Printf("%s is installed\n", pkg)
			} else {
				infoLabel.Printf("%s is not installed\n", pkg)
			}
			if !ok {
				return ErrAlreadyHandled
			}
			return nil
		},
	}
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"mcp/installer/internal/hosts"
	"mcp/installer/internal/install"
)

func newInstallCmd() *cobra.Command {
	var (
		runtimeFlag string
		envPairs    []string
		envFile     string
	)

	cmd := &cobra.Command{
		Use:   "install <package>",
		Short: "Register an MCP server with both hosts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pkg := args[0]

			// --env flags win over --env-file entries on key collisions.
			env := map[string]string{}
			if envFile != "" {
				fileEnv, err := install.LoadEnvFile(envFile)
				if err != nil {
					return err
				}
				for k, v := range fileEnv {
					env[k] = v
				}
			}
			flagEnv, err := install.ParseEnvAssignments(envPairs)
			if err != nil {
				return err
			}
			for k, v := range flagEnv {
				env[k] = v
			}

			override, err := parseRuntime(runtimeFlag)
			if err != nil {
				return err
			}

			inst, err := newInstaller()
			if err != nil {
				return err
			}
			if err := inst.Install(cmd.Context(), pkg, env, override); err != nil {
				return fmt.Errorf("failed to install %s: %w", pkg, err)
			}

			if jsonOutput {
				printJSON(map[string]string{"status": "installed", "server": install.ServerName(pkg)})
			} else {
				okLabel.Printf("Installed %s for both hosts\n", pkg)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&runtimeFlag, "runtime", "", "Override the package runtime (node or python)")
	cmd.Flags().StringArrayVar(&envPairs, "env", nil, "Environment override as KEY=VALUE (repeatable)")
	cmd.Flags().StringVar(&envFile, "env-file", "", "Load environment overrides from a dotenv file")
	return cmd
}

func parseRuntime(s string) (hosts.Runtime, error) {
	switch s {
	case "":
		return "", nil
	case string(hosts.RuntimeNode):
		return hosts.RuntimeNode, nil
	case string(hosts.RuntimePython):
		return hosts.RuntimePython, nil
	default:
		return "", fmt.Errorf("unknown runtime %q, want node or python", s)
	}
}

// Package cli implements the mcp-install command surface.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"mcp/installer/internal/hosts"
	"mcp/installer/internal/install"
	"mcp/installer/internal/registry"
)

var (
	// Global flags
	jsonOutput bool
	verbose    bool
)

// ErrAlreadyHandled marks errors whose message has already been shown (or that
// only carry an exit code); Execute exits non-zero without printing them.
var ErrAlreadyHandled = errors.New("already handled")

var okLabel = color.New(color.FgGreen)
var errorLabel = color.New(color.FgRed)
var infoLabel = color.New(color.FgYellow)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mcp-install [command] [flags]",
	Short: "Install MCP servers for Claude Desktop and the Amazon Q CLI",
	Long: `mcp-install manages the MCP server registrations of two AI-assistant
hosts: Claude Desktop and the Amazon Q CLI. Server entries are kept in sync
across both hosts' config files; every other setting in those files is left
untouched.

Examples:
  # Install a node-runtime server
  mcp-install install @modelcontextprotocol/server-filesystem

  # Install a Python server with environment overrides
  mcp-install install mcp-server-fetch --runtime python --env API_KEY=secret

  # Remove a server from both hosts
  mcp-install uninstall @modelcontextprotocol/server-filesystem`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&jsonOutput, "json", "j", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newInstallCmd())
	rootCmd.AddCommand(newUninstallCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newInstalledCmd())
	rootCmd.AddCommand(newVersionCmd())
}

// newInstaller wires the default host path table, the registry client, and the
// subprocess runner into an Installer.
func newInstaller() (*install.Installer, error) {
	paths, err := hosts.DefaultPaths()
	if err != nil {
		return nil, fmt.Errorf("failed to locate host config paths: %w", err)
	}
	return install.New(paths, registry.NewClient(""), nil), nil
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, ErrAlreadyHandled) {
			os.Exit(1)
		}
		if jsonOutput {
			printJSON(map[string]string{"error": err.Error()})
		} else {
			errorLabel.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func printJSON(v any) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		errorLabel.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	fmt.Println(string(b))
}

package hosts

import (
	"os"
	"path/filepath"
	"runtime"
)

const (
	claudeDir        = "Claude"
	claudeConfigFile = "claude_desktop_config.json"
)

// Paths is the host config path table. Construct it once (usually via
// DefaultPaths) and pass it to operations; nothing in this package reads
// hidden global state.
type Paths struct {
	Primary   string // Claude Desktop
	Secondary string // Amazon Q CLI
}

// DefaultPaths computes the per-platform config file location for both hosts.
// Paths are computed, never checked for existence.
func DefaultPaths() (Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Paths{}, err
	}
	return Paths{
		Primary:   claudeDesktopPath(home),
		Secondary: filepath.Join(home, ".aws", "amazonq", "mcp.json"),
	}, nil
}

// claudeDesktopPath returns Claude Desktop's config location: %APPDATA% on
// Windows, Application Support on macOS, and XDG_CONFIG_HOME (default
// ~/.config) on Linux.
func claudeDesktopPath(home string) string {
	switch runtime.GOOS {
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, claudeDir, claudeConfigFile)
		}
		return filepath.Join(home, "AppData", "Roaming", claudeDir, claudeConfigFile)
	case "linux":
		base := os.Getenv("XDG_CONFIG_HOME")
		if base == "" {
			base = filepath.Join(home, ".config")
		}
		return filepath.Join(base, claudeDir, claudeConfigFile)
	default:
		return filepath.Join(home, "Library", "Application Support", claudeDir, claudeConfigFile)
	}
}

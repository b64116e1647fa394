package install

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"mcp/installer/internal/hosts"
)

const (
	nodeLauncher   = "npx"
	pythonLauncher = "uvx"

	// launcherLookupTimeout bounds the shell lookup for the Python launcher.
	// Past it the bare executable name is used instead.
	launcherLookupTimeout = 5 * time.Second
)

// deriveCommand picks the launcher executable and argument shape for a package
// under the given runtime: node runs through npx -y, python through the uvx
// launcher.
func (i *Installer) deriveCommand(ctx context.Context, rt hosts.Runtime, pkg string) (string, []string) {
	if rt == hosts.RuntimePython {
		return i.pythonLauncherPath(ctx), []string{pkg}
	}
	return nodeLauncher, []string{"-y", pkg}
}

// pythonLauncherPath resolves the absolute path of the Python launcher via a
// shell lookup. Lookup failure is not an error: the bare name is returned and
// resolution is left to the host's PATH at launch time.
func (i *Installer) pythonLauncherPath(ctx context.Context) string {
	ctx, cancel := context.WithTimeout(ctx, launcherLookupTimeout)
	defer cancel()

	out, err := i.runner.Run(ctx, "which", pythonLauncher)
	if err != nil {
		log.Debug().Err(err).Str("launcher", pythonLauncher).Msg("launcher lookup failed, using bare name")
		return pythonLauncher
	}
	resolved := strings.TrimSpace(out)
	if resolved == "" {
		return pythonLauncher
	}
	return resolved
}

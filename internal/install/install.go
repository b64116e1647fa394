// Package install implements the install, uninstall, and query operations over
// the two hosts' config files. Every operation is a full read-merge-write
// cycle; no state is held between calls beyond the filesystem itself.
package install

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"mcp/installer/internal/hosts"
	"mcp/installer/internal/registry"
)

// PackageResolver supplies runtime metadata for a package name. The concrete
// implementation lives in internal/registry; this package only needs the
// lookup.
type PackageResolver interface {
	Resolve(ctx context.Context, name string) (*registry.Package, error)
}

// Installer mutates both hosts' server registrations through their config
// files.
type Installer struct {
	paths    hosts.Paths
	resolver PackageResolver
	runner   Runner
}

// New constructs an Installer over the given host path table. A nil runner
// selects ExecRunner.
func New(paths hosts.Paths, resolver PackageResolver, runner Runner) *Installer {
	if runner == nil {
		runner = ExecRunner{}
	}
	return &Installer{paths: paths, resolver: resolver, runner: runner}
}

// ServerName derives the config key for a package: every "/" becomes "-", so
// scoped names like "@scope/pkg" turn into a single flat key shared by both
// hosts.
func ServerName(pkg string) string {
	return strings.ReplaceAll(pkg, "/", "-")
}

// Install registers a server entry for pkg in both host configs. An empty
// override means the runtime comes from the package registry, defaulting to
// node when the registry has no answer.
func (i *Installer) Install(ctx context.Context, pkg string, env map[string]string, override hosts.Runtime) error {
	merged := hosts.ReadMerged(i.paths)

	rt := override
	if rt == "" {
		rt = i.lookupRuntime(ctx, pkg)
	}
	command, args := i.deriveCommand(ctx, rt, pkg)

	if env == nil {
		env = map[string]string{}
	}
	merged.Servers[ServerName(pkg)] = hosts.ServerEntry{
		Runtime: rt,
		Command: command,
		Args:    args,
		Env:     env,
	}
	return hosts.Write(i.paths, merged)
}

// lookupRuntime asks the registry for the package's declared runtime. Any
// failure, including an unknown package, falls back to node.
func (i *Installer) lookupRuntime(ctx context.Context, pkg string) hosts.Runtime {
	if i.resolver == nil {
		return hosts.RuntimeNode
	}
	p, err := i.resolver.Resolve(ctx, pkg)
	if err != nil {
		log.Debug().Err(err).Str("package", pkg).Msg("runtime lookup failed, defaulting to node")
		return hosts.RuntimeNode
	}
	if hosts.Runtime(p.Runtime) == hosts.RuntimePython {
		return hosts.RuntimePython
	}
	return hosts.RuntimeNode
}

// Uninstall removes pkg's server entry from both host configs. Entries may be
// keyed by the dash form or, for installs predating name normalization, the
// raw slash form; any present form is removed. Returns false without touching
// the filesystem when no entry exists.
func (i *Installer) Uninstall(pkg string) (bool, error) {
	merged := hosts.ReadMerged(i.paths)

	removed := false
	for _, key := range []string{ServerName(pkg), pkg} {
		if _, ok := merged.Servers[key]; ok {
			delete(merged.Servers, key)
			removed = true
		}
	}
	if !removed {
		return false, nil
	}
	return true, hosts.Write(i.paths, merged)
}

// IsInstalled reports whether pkg has a server entry under either name form.
func (i *Installer) IsInstalled(pkg string) bool {
	merged := hosts.ReadMerged(i.paths)
	if _, ok := merged.Servers[ServerName(pkg)]; ok {
		return true
	}
	_, ok := merged.Servers[pkg]
	return ok
}

// ReadMerged returns the merged view of both host configs.
func (i *Installer) ReadMerged() hosts.MergedConfig {
	return hosts.ReadMerged(i.paths)
}

// WriteMerged writes a merged config back to both hosts.
func (i *Installer) WriteMerged(merged hosts.MergedConfig) error {
	return hosts.Write(i.paths, merged)
}

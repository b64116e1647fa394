// Package hosts reads, merges, and writes the MCP server registries of the two
// supported hosts: Claude Desktop and the Amazon Q CLI. Each host owns one JSON
// config file; this package manages only the mcpServers key and round-trips
// everything else untouched.
package hosts

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
)

// Runtime is the execution environment category a server launches under.
type Runtime string

const (
	RuntimeNode   Runtime = "node"
	RuntimePython Runtime = "python"
)

const serversKey = "mcpServers"

// ServerEntry describes how a host launches one MCP server process.
type ServerEntry struct {
	Runtime Runtime           `json:"runtime"`
	Command string            `json:"command"`
	Args    []string          `json:"args"`
	Env     map[string]string `json:"env"`
}

// normalizeEntry coerces absent args/env to empty values so entries compare
// and serialize uniformly regardless of which host's file they came from.
func normalizeEntry(e ServerEntry) ServerEntry {
	if e.Args == nil {
		e.Args = []string{}
	}
	if e.Env == nil {
		e.Env = map[string]string{}
	}
	return e
}

// HostConfig is one host's on-disk configuration: the managed server map plus
// every other top-level key the host owns. Extra keys are kept as raw bytes so
// they round-trip verbatim.
type HostConfig struct {
	Servers map[string]ServerEntry
	Extra   map[string]json.RawMessage
}

// NewHostConfig returns an empty config with both maps allocated.
func NewHostConfig() HostConfig {
	return HostConfig{
		Servers: map[string]ServerEntry{},
		Extra:   map[string]json.RawMessage{},
	}
}

// Parse decodes a host config document. Unknown top-level keys land in Extra
// untouched; a missing or null mcpServers key parses as an empty map.
func Parse(data []byte) (HostConfig, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return NewHostConfig(), fmt.Errorf("failed to parse config JSON: %w", err)
	}
	cfg := NewHostConfig()
	for key, raw := range doc {
		if key == serversKey {
			if err := json.Unmarshal(raw, &cfg.Servers); err != nil {
				return NewHostConfig(), fmt.Errorf("invalid %s value: %w", serversKey, err)
			}
			if cfg.Servers == nil {
				cfg.Servers = map[string]ServerEntry{}
			}
			for name, e := range cfg.Servers {
				cfg.Servers[name] = normalizeEntry(e)
			}
			continue
		}
		cfg.Extra[key] = raw
	}
	return cfg, nil
}

// Read loads one host's config file. The policy is fail-open: a missing file
// or unparseable content yields an empty config, so corruption in one host's
// file never blocks install or uninstall for the other host. Parse failures
// are logged, not returned.
func Read(path string) HostConfig {
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Warn().Err(err).Str("path", path).Msg("unable to read host config, treating as empty")
		}
		return NewHostConfig()
	}
	cfg, err := Parse(data)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("malformed host config, treating as empty")
		return NewHostConfig()
	}
	return cfg
}

package hosts

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func tempPaths(t *testing.T) Paths {
	t.Helper()
	dir := t.TempDir()
	return Paths{
		Primary:   filepath.Join(dir, "claude", "claude_desktop_config.json"),
		Secondary: filepath.Join(dir, "amazonq", "mcp.json"),
	}
}

func TestWrite_CreatesDirectoriesAndFiles(t *testing.T) {
	p := tempPaths(t)
	merged := MergedConfig{Servers: map[string]ServerEntry{
		"s": entry(RuntimeNode, "npx", "-y", "s"),
	}}

	require.NoError(t, Write(p, merged))

	for _, path := range []string{p.Primary, p.Secondary} {
		cfg := Read(path)
		require.Equal(t, merged.Servers, cfg.Servers)
	}
}

func TestWrite_RoundTripPreservesHostKeys(t *testing.T) {
	p := tempPaths(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(p.Primary), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Dir(p.Secondary), 0o755))
	require.NoError(t, os.WriteFile(p.Primary, []byte(`{
		"globalShortcut": "Ctrl+Space",
		"mcpServers": {"a": {"runtime": "node", "command": "npx", "args": ["-y", "a"]}}
	}`), 0o644))
	require.NoError(t, os.WriteFile(p.Secondary, []byte(`{
		"profile": "default",
		"mcpServers": {"b": {"runtime": "python", "command": "uvx", "args": ["b"]}}
	}`), 0o644))

	merged := ReadMerged(p)
	require.NoError(t, Write(p, merged))

	primary := Read(p.Primary)
	secondary := Read(p.Secondary)

	// Both hosts end up with the identical merged server map.
	require.Equal(t, merged.Servers, primary.Servers)
	require.Equal(t, merged.Servers, secondary.Servers)
	require.Len(t, primary.Servers, 2)

	// Each host keeps its own unrelated keys, and only its own.
	require.JSONEq(t, `"Ctrl+Space"`, string(primary.Extra["globalShortcut"]))
	require.NotContains(t, primary.Extra, "profile")
	require.JSONEq(t, `"default"`, string(secondary.Extra["profile"]))
	require.NotContains(t, secondary.Extra, "globalShortcut")
}

func TestWrite_PrettyPrinted(t *testing.T) {
	p := tempPaths(t)
	merged := MergedConfig{Servers: map[string]ServerEntry{
		"s": entry(RuntimeNode, "npx", "-y", "s"),
	}}
	require.NoError(t, Write(p, merged))

	data, err := os.ReadFile(p.Primary)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(data), "{\n  \""))
	require.Contains(t, string(data), "\"mcpServers\"")
}

func TestWrite_MalformedExistingFileTreatedAsEmpty(t *testing.T) {
	p := tempPaths(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(p.Primary), 0o755))
	require.NoError(t, os.WriteFile(p.Primary, []byte(`{broken`), 0o644))

	merged := MergedConfig{Servers: map[string]ServerEntry{
		"s": entry(RuntimeNode, "npx", "-y", "s"),
	}}
	require.NoError(t, Write(p, merged))

	cfg := Read(p.Primary)
	require.Equal(t, merged.Servers, cfg.Servers)
	require.Empty(t, cfg.Extra)
}

func TestWrite_NilServerMap(t *testing.T) {
	p := tempPaths(t)
	require.NoError(t, Write(p, MergedConfig{}))

	data, err := os.ReadFile(p.Secondary)
	require.NoError(t, err)
	require.Contains(t, string(data), `"mcpServers": {}`)
}

func TestWrite_SecondHostFailureSurfacesAfterFirstLands(t *testing.T) {
	dir := t.TempDir()
	blocked := filepath.Join(dir, "blocked")
	// A regular file where the secondary's directory should be makes MkdirAll fail.
	require.NoError(t, os.WriteFile(blocked, nil, 0o644))
	p := Paths{
		Primary:   filepath.Join(dir, "claude", "claude_desktop_config.json"),
		Secondary: filepath.Join(blocked, "amazonq", "mcp.json"),
	}

	merged := MergedConfig{Servers: map[string]ServerEntry{
		"s": entry(RuntimeNode, "npx", "-y", "s"),
	}}
	err := Write(p, merged)
	require.Error(t, err)

	// Partial application: the primary write already landed.
	cfg := Read(p.Primary)
	require.Equal(t, merged.Servers, cfg.Servers)
}

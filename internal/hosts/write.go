package hosts

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Write persists the merged server map into both host files, primary first.
// Each file is rebuilt from its own on-disk extra keys plus the shared server
// map, so after a successful write the two hosts hold identical mcpServers
// while keeping their independent host-owned settings. Writes are sequential
// and not transactional: a failure on the second host surfaces after the first
// write has already landed.
func Write(p Paths, merged MergedConfig) error {
	for _, path := range []string{p.Primary, p.Secondary} {
		if err := writeHostFile(path, merged.Servers); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}
	return nil
}

func writeHostFile(path string, servers map[string]ServerEntry) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	normalized := make(map[string]ServerEntry, len(servers))
	for name, e := range servers {
		normalized[name] = normalizeEntry(e)
	}
	servers = normalized

	// Re-read the target file here rather than trusting the caller's view:
	// everything except mcpServers is host-owned and must carry over untouched.
	current := Read(path)

	doc := make(map[string]json.RawMessage, len(current.Extra)+1)
	for key, raw := range current.Extra {
		doc[key] = raw
	}
	rawServers, err := json.Marshal(servers)
	if err != nil {
		return fmt.Errorf("failed to marshal server map: %w", err)
	}
	doc[serversKey] = rawServers

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return replaceFile(path, append(data, '\n'))
}

// replaceFile overwrites path in full through a temp file in the same
// directory and a rename, so a crash mid-write never leaves a truncated
// config behind.
func replaceFile(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".config-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		tmp.Close()
		os.Remove(tmpPath)
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}

package hosts

import "encoding/json"

// MergedConfig is the transient union of both hosts' configurations. It is
// never written to disk as its own file; it only drives Write.
type MergedConfig struct {
	Servers map[string]ServerEntry
	Extra   map[string]json.RawMessage
}

// Merge combines the two hosts' configs into one logical view. The primary
// host is the tie-break authority: its extra keys and server entries win every
// collision with the secondary's.
func Merge(primary, secondary HostConfig) MergedConfig {
	merged := MergedConfig{
		Servers: map[string]ServerEntry{},
		Extra:   map[string]json.RawMessage{},
	}
	for key, raw := range primary.Extra {
		merged.Extra[key] = raw
	}
	for key, raw := range secondary.Extra {
		if _, ok := merged.Extra[key]; !ok {
			merged.Extra[key] = raw
		}
	}
	for name, entry := range primary.Servers {
		merged.Servers[name] = entry
	}
	for name, entry := range secondary.Servers {
		if _, ok := merged.Servers[name]; !ok {
			merged.Servers[name] = entry
		}
	}
	return merged
}

// ReadMerged reads both host files and merges them, primary first.
func ReadMerged(p Paths) MergedConfig {
	return Merge(Read(p.Primary), Read(p.Secondary))
}

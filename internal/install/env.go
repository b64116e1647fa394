package install

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/joho/godotenv"
)

// EnvArgs converts an environment-variable map into CLI flag pairs: each key
// is lower-cased with underscores turned into hyphens and emitted as
// "--<flag> <value>". Keys are emitted in sorted order so the output is
// deterministic.
func EnvArgs(env map[string]string) []string {
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := make([]string, 0, len(env)*2)
	for _, k := range keys {
		flag := strings.ReplaceAll(strings.ToLower(k), "_", "-")
		args = append(args, "--"+flag, env[k])
	}
	return args
}

// ParseEnvAssignments parses repeated KEY=VALUE flag values into a map.
func ParseEnvAssignments(pairs []string) (map[string]string, error) {
	env := map[string]string{}
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid environment assignment %q, want KEY=VALUE", pair)
		}
		env[key] = value
	}
	return env, nil
}

// LoadEnvFile reads KEY=VALUE pairs from a dotenv-style file.
func LoadEnvFile(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read env file: %w", err)
	}
	env, err := godotenv.UnmarshalBytes(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse env file: %w", err)
	}
	return env, nil
}

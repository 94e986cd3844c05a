package inference

import (
	"os"
	"slices"
	"strings"
)

// InferCommand picks the command for an invocation that names none. A first
// argument that is a .json file or an existing directory means "check",
// unless it is one of the given command names.
func InferCommand(args []string, commands []string) (string, []string) {
	if len(args) == 0 {
		return "", nil
	}

	first := args[0]
	if strings.HasPrefix(first, "-") || slices.Contains(commands, first) {
		return "", args
	}

	if strings.HasSuffix(strings.ToLower(first), ".json") {
		return "check", args
	}
	if info, err := os.Stat(first); err == nil && info.IsDir() {
		return "check", args
	}

	return "", args
}

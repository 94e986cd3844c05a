// Command asclient checks and re-encodes analysis server protocol messages.
//
// Usage:
//
//	asclient check [--quiet] <path>...
//	asclient vocab [name]
//	asclient validate <vocabulary> <token>
//	asclient roundtrip [--result-kind KIND] <file>
//	asclient frame [--id ID] <params-file>
//	asclient config show|init
//	asclient scenario <file-or-dir>...
//
// Every command accepts --verbose to copy log entries to stderr. A first
// argument naming a .json file or a directory runs check, unless it is also
// the name of a command.
package main

import (
	"os"

	"github.com/asclient/asclient/internal/cli/commands"
)

func main() {
	os.Exit(commands.Execute())
}

// cmd/maeplot/main.go
package main

import (
	cmd "github.com/mwiater/maeplot/internal/cli"
)

// Set at build time with -ldflags "-X main.version=...".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	setVersionInfo = cmd.SetVersionInfo
	executeCmd     = cmd.Execute
)

// main starts the maeplot CLI by handing the build information to the cobra
// root command and executing it.
func main() {
	setVersionInfo(version, commit, date)
	executeCmd()
}

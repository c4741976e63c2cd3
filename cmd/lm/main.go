// lm is the bootstrap launcher. Every invocation installs the bundled
// platform binary if needed, seeds missing configuration files, and
// forwards all arguments to the installed executable.
package main

import (
	"github.com/lmprep/lmprep/internal/cli"
)

func main() {
	cli.Execute()
}

// lmprep is the maintenance CLI for the lm launcher: explicit install,
// status, uninstall, and self-update.
package main

import (
	"github.com/lmprep/lmprep/internal/admin"
)

func main() {
	admin.Execute()
}

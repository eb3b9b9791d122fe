// Command nodegraph opens the sample node graph in a window or inspects its
// layout headlessly.
package main

import (
	"embed"
	"os"
)

//go:embed themes/*.toml
var themeFS embed.FS

func main() {
	if err := execute(); err != nil {
		os.Exit(1)
	}
}

// Command zfxc compiles ZFX source into register-based bytecode.
package main

import (
	"fmt"
	"os"

	"github.com/sonicyouth98/poczfx/cmd/zfxc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

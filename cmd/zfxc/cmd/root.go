package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "zfxc",
	Short: "ZFX expression compiler",
	Long: `zfxc compiles ZFX source — a small expression-statement language over
attribute symbols (@name), parameter symbols ($name), and numeric
literals — into linear register-based bytecode.

The pipeline is tokenizer -> parser -> lowerer -> scanner -> emitter, run
to completion for a single source string with no partial output on
failure.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

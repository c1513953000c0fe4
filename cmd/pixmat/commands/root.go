package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	version string
	commit  string
	date    string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pixmat",
	Short: "Pixmat - content documents for remote pixel-matrix displays",
	Long: `Pixmat builds JSON content documents for low-resolution remote
pixel-matrix displays such as LED matrices.

A document is a sequence of frames holding pixels, text, shapes and
images. Pixmat renders declarative YAML scene files or single image
files into the wire format the display controller consumes.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", v, c, d)
}

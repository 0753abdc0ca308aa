package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"rattle/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "rattle",
	Short: "Black-box fuzzing gate for analysis toolchains",
	Long:  `Rattle feeds registered analysis targets adversarial random inputs and fails the build when any of them break`,
}

// main initializes the CLI by setting the command version, registering
// subcommands and persistent flags, and then executes the root command.
// If command execution returns an error, the process exits with status code 1.
func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(targetsCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().String("log-level", "info", "log verbosity (off|error|info|debug)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether the file is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

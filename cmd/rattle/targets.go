package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"rattle/internal/target"
	"rattle/internal/toolchain"
)

var targetsCmd = &cobra.Command{
	Use:   "targets [flags]",
	Short: "Show which target capabilities resolve",
	Long:  `Targets probes every capability's candidate list against the registry and prints the resolution table`,
	Args:  cobra.NoArgs,
	RunE:  runTargets,
}

func init() {
	targetsCmd.Flags().Bool("demo", false, "register the built-in demo toolchain")
}

func runTargets(cmd *cobra.Command, args []string) error {
	demo, _ := cmd.Flags().GetBool("demo")

	reg := target.Default
	if demo {
		toolchain.Register(reg)
	}
	table := target.Resolve(reg, target.DefaultSpecs())

	useColor := colorEnabled(cmd)
	resolved := color.New(color.FgGreen)
	absent := color.New(color.FgYellow)
	if !useColor {
		resolved.DisableColor()
		absent.DisableColor()
	}

	out := cmd.OutOrStdout()
	for _, cap := range target.Capabilities {
		r := table[cap]
		if r == nil {
			fmt.Fprintf(out, "%-12s %s\n", cap, absent.Sprint("absent"))
			continue
		}
		fmt.Fprintf(out, "%-12s %s %s.%s\n", cap, resolved.Sprint("resolved"), r.Source.Namespace, r.Source.Attr)
	}
	if table.ResolvedCount() == 0 && !demo {
		fmt.Fprintln(os.Stderr, "no capabilities resolved; try --demo or link a collaborator toolchain")
	}
	return nil
}

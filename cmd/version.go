package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"
)

// version is set via -ldflags at build time.
var version = "(devel)"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the current version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "quizbox", displayVersion(version))
		},
	}
}

// displayVersion normalizes release versions to canonical semver ("1.2" → "v1.2.0").
// Anything that isn't semver (e.g. "(devel)") is returned unchanged.
func displayVersion(v string) string {
	candidate := v
	if len(candidate) > 0 && candidate[0] != 'v' {
		candidate = "v" + candidate
	}
	if !semver.IsValid(candidate) {
		return v
	}
	return semver.Canonical(candidate)
}

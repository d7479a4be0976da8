package cmd

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Set with -ldflags "-X github.com/kamusis/docnav/cmd.version=..." at release.
var (
	version   = "dev"
	commit    = ""
	buildDate = ""
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show docnav version and build information",
	Args:  cobra.NoArgs,
	RunE:  runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion(_ *cobra.Command, _ []string) error {
	v, c, d := buildInfo()
	fmt.Printf("Version:    %s\n", v)
	fmt.Printf("Commit:     %s\n", emptyAsNA(c))
	fmt.Printf("Build Date: %s\n", emptyAsNA(d))
	fmt.Printf("Go Version: %s\n", runtime.Version())
	fmt.Printf("OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
	return nil
}

// buildInfo returns the linker-provided values, filling gaps from the
// module and VCS data embedded by `go install`.
func buildInfo() (ver, rev, date string) {
	ver, rev, date = version, commit, buildDate
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	if ver == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		ver = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if rev == "" {
				rev = s.Value
			}
		case "vcs.time":
			if date == "" {
				date = s.Value
			}
		}
	}
	return
}

func emptyAsNA(s string) string {
	if s == "" {
		return "n/a"
	}
	return s
}

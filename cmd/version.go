package cmd

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/abhisek/webdev100/internal/curriculum"
	"github.com/abhisek/webdev100/internal/selfupdate"
)

// version is set via -ldflags at build time.
var version = selfupdate.DevVersion

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "webdev100", version)

		verbose, _ := cmd.Flags().GetBool("verbose")
		if !verbose {
			return nil
		}

		goVersion := runtime.Version()
		if info, ok := debug.ReadBuildInfo(); ok && info.GoVersion != "" {
			goVersion = info.GoVersion
		}
		fmt.Fprintf(out, "go:       %s\n", goVersion)
		fmt.Fprintf(out, "platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)

		cat, err := curriculum.Default()
		if err != nil {
			return fmt.Errorf("embedded curriculum: %w", err)
		}
		fmt.Fprintf(out, "lessons:  %d embedded\n", cat.Len())
		return nil
	},
}

func init() {
	versionCmd.Flags().BoolP("verbose", "v", false, "Also print toolchain, platform and curriculum details")
}

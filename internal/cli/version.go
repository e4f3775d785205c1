package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  `Display version information for numeral and the Go toolchain it was built with.`,
	Run: func(cmd *cobra.Command, args []string) {
		w := cmd.OutOrStdout()

		fmt.Fprintf(w, "numeral version %s\n", rootCmd.Version)
		fmt.Fprintf(w, "Go version: %s\n", runtime.Version())
		fmt.Fprintf(w, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

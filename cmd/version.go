package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/haierkeys/memos-mirror/internal/app"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print out version info and exit",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("v%s ( Git:%s ) BuildTime:%s\n", app.Version, app.GitTag, app.BuildTime)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

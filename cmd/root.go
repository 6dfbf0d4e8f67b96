package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/haierkeys/memos-mirror/global"
)

var configDefault string

var rootCmd = &cobra.Command{
	Use:   "memos-mirror",
	Short: global.Name,
	Long:  "One-way mirror of a remote Memos instance into a local markdown tree.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute(c string) {
	configDefault = c
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	internalApp "github.com/haierkeys/memos-mirror/internal/app"
	"github.com/haierkeys/memos-mirror/pkg/storage"
)

func init() {
	var configFile string
	var dryRun bool

	var syncCommand = &cobra.Command{
		Use:   "sync [-c config_file] [--dry-run]",
		Short: "Run one mirror pass and exit",
		Run: func(cmd *cobra.Command, args []string) {
			cfgPath, err := resolveConfig(configFile)
			if err != nil {
				bootstrapLogger.Error("config file auto create error", zap.Error(err))
				os.Exit(1)
			}

			cfg, _, err := internalApp.LoadConfig(cfgPath)
			if err != nil {
				bootstrapLogger.Error("config load error", zap.Error(err))
				os.Exit(1)
			}
			if dryRun {
				cfg.Storage.Type = storage.Memory
			}

			a, err := internalApp.NewApp(cfg)
			if err != nil {
				bootstrapLogger.Error("service start err", zap.Error(err))
				os.Exit(1)
			}
			defer a.Close()

			res, err := a.Syncer.Run(context.Background())
			if err != nil {
				a.Logger().Error("sync failed", zap.Error(err))
				os.Exit(1)
			}

			fmt.Printf("synced %d/%d memos, %d resources downloaded (%s)\n",
				res.Synced, res.Total, res.Downloaded,
				res.FinishedAt.Sub(res.StartedAt).Round(time.Millisecond))
			if dryRun {
				fmt.Println("dry run: nothing was written to the configured storage")
			}
		},
	}

	syncCommand.Flags().StringVarP(&configFile, "config", "c", "", "config file path")
	syncCommand.Flags().BoolVar(&dryRun, "dry-run", false, "fetch and render without writing to the configured storage")
	rootCmd.AddCommand(syncCommand)
}

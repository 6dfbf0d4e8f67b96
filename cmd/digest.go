package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	internalApp "github.com/haierkeys/memos-mirror/internal/app"
	"github.com/haierkeys/memos-mirror/pkg/llm"
)

func init() {
	var configFile string
	var lang string

	var digestCommand = &cobra.Command{
		Use:   "digest [-c config_file] [--lang tag]",
		Short: "Write a weekly digest of this week's memos",
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
			if lang != "" {
				tag, err := language.Parse(lang)
				if err != nil {
					bootstrapLogger.Error("invalid language tag", zap.String("lang", lang), zap.Error(err))
					os.Exit(1)
				}
				cfg.LLM.TargetLanguage = tag.String()
			}

			a, err := internalApp.NewApp(cfg)
			if err != nil {
				bootstrapLogger.Error("service start err", zap.Error(err))
				os.Exit(1)
			}
			defer a.Close()

			provider, err := llm.New(&cfg.LLM, a.Logger())
			if err != nil {
				a.Logger().Error("llm init failed", zap.Error(err))
				os.Exit(1)
			}

			ctx := context.Background()
			all, err := a.Client.FetchAll(ctx, cfg.Sync.MaxRecords)
			if err != nil {
				a.Logger().Error("fetch failed", zap.Error(err))
				os.Exit(1)
			}

			now := time.Now()
			year, week := now.ISOWeek()
			var contents []string
			for i := range all {
				y, w := all[i].CreatedAt().ISOWeek()
				if y == year && w == week {
					contents = append(contents, all[i].Content)
				}
			}
			if len(contents) == 0 {
				fmt.Println("no memos this week, no digest produced")
				return
			}

			digest := provider.DigestMany(ctx, contents)
			if digest == "" {
				fmt.Println("no digest produced")
				return
			}

			dir := fmt.Sprintf("digests/%d", year)
			if err := a.Store.CreateDir(dir); err != nil {
				a.Logger().Error("digest dir failed", zap.Error(err))
				os.Exit(1)
			}
			path := fmt.Sprintf("%s/W%02d.md", dir, week)
			if _, err := a.Store.SendContent(path, []byte(digest), now); err != nil {
				a.Logger().Error("digest write failed", zap.String("path", path), zap.Error(err))
				os.Exit(1)
			}
			fmt.Printf("digest of %d memos written to %s\n", len(contents), path)
		},
	}

	digestCommand.Flags().StringVarP(&configFile, "config", "c", "", "config file path")
	digestCommand.Flags().StringVar(&lang, "lang", "", "digest language tag, e.g. en or zh-Hans")
	rootCmd.AddCommand(digestCommand)
}

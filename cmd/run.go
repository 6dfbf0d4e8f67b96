package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/radovskyb/watcher"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	internalApp "github.com/haierkeys/memos-mirror/internal/app"
	"github.com/haierkeys/memos-mirror/internal/task"
)

type runFlags struct {
	dir    string
	config string
}

// daemon couples the app container with its task scheduler so a config
// reload can tear both down and rebuild them.
type daemon struct {
	app   *internalApp.App
	sched *task.Scheduler
}

func newDaemon(cfgPath string) (*daemon, error) {
	cfg, _, err := internalApp.LoadConfig(cfgPath)
	if err != nil {
		return nil, err
	}
	a, err := internalApp.NewApp(cfg)
	if err != nil {
		return nil, err
	}

	d := &daemon{
		app:   a,
		sched: task.NewScheduler(a.Logger()),
	}
	if err := d.sched.AddTask(task.NewSyncTask(a.Syncer, cfg.Sync.Interval(), a.Logger())); err != nil {
		a.Close()
		return nil, err
	}
	d.sched.Start()
	return d, nil
}

func (d *daemon) stop() {
	d.sched.Stop()
	if err := d.app.Close(); err != nil {
		d.app.Logger().Warn("app close error", zap.Error(err))
	}
}

func init() {
	runEnv := new(runFlags)

	var runCommand = &cobra.Command{
		Use:   "run [-c config_file] [-d working_dir]",
		Short: "Run the mirror on its configured cadence",
		Run: func(cmd *cobra.Command, args []string) {
			if len(runEnv.dir) > 0 {
				if err := os.Chdir(runEnv.dir); err != nil {
					bootstrapLogger.Error("failed to change the current working directory", zap.Error(err))
					return
				}
				bootstrapLogger.Info("working directory changed", zap.String("dir", runEnv.dir))
			}

			cfgPath, err := resolveConfig(runEnv.config)
			if err != nil {
				bootstrapLogger.Error("config file auto create error", zap.Error(err))
				return
			}

			cfg, _, err := internalApp.LoadConfig(cfgPath)
			if err != nil {
				bootstrapLogger.Error("config load error", zap.Error(err))
				return
			}

			// Manual cadence: one pass and exit.
			if cfg.Sync.Cadence == "manual" {
				a, err := internalApp.NewApp(cfg)
				if err != nil {
					bootstrapLogger.Error("service start err", zap.Error(err))
					os.Exit(1)
				}
				defer a.Close()
				if _, err := a.Syncer.Run(context.Background()); err != nil {
					a.Logger().Error("sync failed", zap.Error(err))
					os.Exit(1)
				}
				return
			}

			d, err := newDaemon(cfgPath)
			if err != nil {
				bootstrapLogger.Error("service start err", zap.Error(err))
				return
			}

			go watchConfig(cfgPath, &d)

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			<-quit
			bootstrapLogger.Info("received shutdown signal, stopping")
			d.stop()
		},
	}

	runCommand.Flags().StringVarP(&runEnv.dir, "dir", "d", "", "working directory")
	runCommand.Flags().StringVarP(&runEnv.config, "config", "c", "", "config file path")
	rootCmd.AddCommand(runCommand)
}

// watchConfig restarts the daemon when the config file is written.
func watchConfig(cfgPath string, d **daemon) {
	w := watcher.New()
	w.SetMaxEvents(1)
	w.FilterOps(watcher.Write)

	go func() {
		for {
			select {
			case event := <-w.Event:
				bootstrapLogger.Info("config changed, restarting",
					zap.String("event", event.Op.String()),
					zap.String("file", event.Path))

				(*d).stop()
				next, err := newDaemon(cfgPath)
				if err != nil {
					bootstrapLogger.Error("service restart err", zap.Error(err))
					continue
				}
				*d = next

			case err := <-w.Error:
				bootstrapLogger.Error("config watcher error", zap.Error(err))
			case <-w.Closed:
				bootstrapLogger.Info("config watcher closed")
				return
			}
		}
	}()

	if err := w.Add(cfgPath); err != nil {
		bootstrapLogger.Error("config watcher file error", zap.Error(err))
		return
	}
	if err := w.Start(time.Second * 5); err != nil {
		bootstrapLogger.Error("config watcher start error", zap.Error(err))
	}
}

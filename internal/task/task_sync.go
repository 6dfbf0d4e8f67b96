package task

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/haierkeys/memos-mirror/internal/mirror"
)

// SyncTask runs the mirror on a fixed cadence.
type SyncTask struct {
	syncer   *mirror.Syncer
	interval time.Duration
	logger   *zap.Logger
}

func NewSyncTask(syncer *mirror.Syncer, interval time.Duration, logger *zap.Logger) *SyncTask {
	return &SyncTask{syncer: syncer, interval: interval, logger: logger}
}

func (t *SyncTask) Name() string { return "sync" }

func (t *SyncTask) Spec() string {
	return fmt.Sprintf("@every %s", t.interval)
}

func (t *SyncTask) IsStartupRun() bool { return true }

func (t *SyncTask) Run(ctx context.Context) error {
	res, err := t.syncer.Run(ctx)
	if err != nil {
		return err
	}
	if res.Shared {
		t.logger.Info("sync joined an in-flight run")
	}
	return nil
}

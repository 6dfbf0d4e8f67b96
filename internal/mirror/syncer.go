package mirror

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/haierkeys/memos-mirror/internal/memos"
	"github.com/haierkeys/memos-mirror/pkg/storage"
)

// Config carries the parameters of one sync target.
type Config struct {
	APIURL      string `yaml:"api-url"`
	AccessToken string `yaml:"access-token"`
	RootDir     string `yaml:"root-dir" default:"memos"`
	MaxRecords  int    `yaml:"max-records" default:"1000"`
}

// Recorder persists sync history. All methods tolerate being skipped:
// the syncer works identically with a nil Recorder.
type Recorder interface {
	CreateRun(startedAt time.Time) (int64, error)
	FinishRun(id int64, total, synced, downloaded int, status, message string) error
	UpsertMemoState(m *memos.Memo, docPath string) error
}

// Result summarizes one completed run.
type Result struct {
	Total      int
	Synced     int
	Downloaded int
	// Shared marks a call that joined an already-running sync instead
	// of starting its own.
	Shared     bool
	StartedAt  time.Time
	FinishedAt time.Time
}

// Syncer is the one-way mirror orchestrator: fetch every memo, derive
// its local path, materialize its attachments, render and write its
// document. Memos are processed sequentially, newest first.
type Syncer struct {
	cfg    Config
	client *memos.Client
	store  storage.Storager
	mat    *Materializer
	rec    Recorder
	logger *zap.Logger
	group  singleflight.Group
}

func New(cfg Config, client *memos.Client, store storage.Storager, rec Recorder, logger *zap.Logger) *Syncer {
	return &Syncer{
		cfg:    cfg,
		client: client,
		store:  store,
		mat:    NewMaterializer(client, store, logger),
		rec:    rec,
		logger: logger,
	}
}

// Run executes one sync pass. Concurrent calls collapse onto a single
// in-flight run; the joined callers get the same Result marked Shared.
func (s *Syncer) Run(ctx context.Context) (*Result, error) {
	v, err, shared := s.group.Do("sync", func() (interface{}, error) {
		return s.run(ctx)
	})
	if err != nil {
		return nil, err
	}
	res := v.(*Result)
	if shared {
		joined := *res
		joined.Shared = true
		return &joined, nil
	}
	return res, nil
}

func (s *Syncer) run(ctx context.Context) (*Result, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}

	res := &Result{StartedAt: time.Now()}
	runID := s.recordStart(res.StartedAt)

	list, err := s.client.FetchAll(ctx, s.cfg.MaxRecords)
	if err != nil {
		s.recordFinish(runID, res, "failed", err.Error())
		return nil, err
	}
	res.Total = len(list)

	ensured := make(map[string]bool)
	for i := range list {
		if err := s.syncMemo(ctx, &list[i], ensured, res); err != nil {
			s.recordFinish(runID, res, "failed", err.Error())
			return nil, err
		}
		res.Synced++
	}

	res.FinishedAt = time.Now()
	s.recordFinish(runID, res, "ok", "")
	s.logger.Info("sync finished",
		zap.Int("total", res.Total),
		zap.Int("synced", res.Synced),
		zap.Int("downloaded", res.Downloaded),
		zap.Duration("elapsed", res.FinishedAt.Sub(res.StartedAt)))
	return res, nil
}

func (s *Syncer) syncMemo(ctx context.Context, m *memos.Memo, ensured map[string]bool, res *Result) error {
	created := m.CreatedAt()
	dir := s.cfg.RootDir + "/" + DatePath(created)
	if err := s.ensureDir(dir, ensured); err != nil {
		return err
	}

	var resolved []ResolvedResource
	if len(m.Resources) > 0 {
		resDir := dir + "/resources"
		if err := s.ensureDir(resDir, ensured); err != nil {
			return err
		}
		for i := range m.Resources {
			r := &m.Resources[i]
			path, downloaded := s.mat.Materialize(ctx, r, resDir, created)
			if downloaded {
				res.Downloaded++
			}
			resolved = append(resolved, ResolvedResource{Ref: *r, LocalPath: path})
		}
	}

	docPath := dir + "/" + DocFilename(m.Content, m.Name, created)
	body := RenderDocument(m, resolved, docPath)
	if _, err := s.store.SendContent(docPath, []byte(body), m.UpdatedAt()); err != nil {
		return &WriteError{Path: docPath, Err: err}
	}

	if s.rec != nil {
		if err := s.rec.UpsertMemoState(m, docPath); err != nil {
			s.logger.Warn("memo state record failed", zap.String("memo", m.Name), zap.Error(err))
		}
	}

	s.logger.Debug("memo synced",
		zap.String("memo", m.Name),
		zap.String("path", docPath),
		zap.Int("resources", len(resolved)))
	return nil
}

func (s *Syncer) ensureDir(dir string, ensured map[string]bool) error {
	if ensured[dir] {
		return nil
	}
	if err := s.store.CreateDir(dir); err != nil {
		return &WriteError{Path: dir, Err: err}
	}
	ensured[dir] = true
	return nil
}

func (s *Syncer) validate() error {
	if strings.TrimSpace(s.cfg.APIURL) == "" {
		return &ConfigError{Reason: "api-url is required"}
	}
	if strings.TrimSpace(s.cfg.AccessToken) == "" {
		return &ConfigError{Reason: "access-token is required"}
	}
	return nil
}

func (s *Syncer) recordStart(startedAt time.Time) int64 {
	if s.rec == nil {
		return 0
	}
	id, err := s.rec.CreateRun(startedAt)
	if err != nil {
		s.logger.Warn("sync run record failed", zap.Error(err))
	}
	return id
}

func (s *Syncer) recordFinish(id int64, res *Result, status, message string) {
	if s.rec == nil || id == 0 {
		return
	}
	if err := s.rec.FinishRun(id, res.Total, res.Synced, res.Downloaded, status, message); err != nil {
		s.logger.Warn("sync run record failed", zap.Error(err))
	}
}

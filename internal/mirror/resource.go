package mirror

import (
	"bytes"
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/haierkeys/memos-mirror/internal/memos"
	"github.com/haierkeys/memos-mirror/pkg/storage"
)

// Materializer downloads memo attachments into the local store.
// Downloads are idempotent: a resource already present at its derived
// path is never fetched again.
type Materializer struct {
	client *memos.Client
	store  storage.Storager
	logger *zap.Logger
}

func NewMaterializer(client *memos.Client, store storage.Storager, logger *zap.Logger) *Materializer {
	return &Materializer{client: client, store: store, logger: logger}
}

// Materialize ensures one resource exists under dir and returns its
// local path plus whether a download actually happened. A failed
// download is not fatal: it is logged and an empty path is returned so
// the document can still be written without the attachment link.
func (mt *Materializer) Materialize(ctx context.Context, r *memos.Resource, dir string, modTime time.Time) (string, bool) {
	pathKey := dir + "/" + ResourceFilename(r)
	if mt.store.IsExist(pathKey) {
		return pathKey, false
	}

	data, contentType, err := mt.client.DownloadResource(ctx, r.ShortID(), r.Filename)
	if err != nil {
		mt.logger.Warn("resource download failed",
			zap.String("resource", r.Name),
			zap.String("filename", r.Filename),
			zap.Error(err))
		return "", false
	}

	if _, err := mt.store.SendFile(pathKey, bytes.NewReader(data), contentType, modTime); err != nil {
		mt.logger.Warn("resource store failed",
			zap.String("resource", r.Name),
			zap.String("path", pathKey),
			zap.Error(err))
		return "", false
	}

	mt.logger.Debug("resource materialized",
		zap.String("path", pathKey),
		zap.Int("bytes", len(data)))
	return pathKey, true
}

package webdav

import (
	"io"
	"os"
	"time"

	"github.com/haierkeys/memos-mirror/pkg/fileurl"

	"github.com/pkg/errors"
)

func (w *WebDAV) key(pathKey string) string {
	return fileurl.PathSuffixCheckAdd(w.Config.CustomPath, "/") + pathKey
}

func (w *WebDAV) IsExist(pathKey string) bool {
	_, err := w.Client.Stat(w.key(pathKey))
	return err == nil
}

func (w *WebDAV) CreateDir(pathKey string) error {
	if err := w.Client.MkdirAll(w.key(pathKey), 0755); err != nil {
		return errors.Wrap(err, "webdav")
	}
	return nil
}

func (w *WebDAV) SendContent(pathKey string, content []byte, modTime time.Time) (string, error) {
	fileKey := w.key(pathKey)
	if err := w.Client.Write(fileKey, content, os.ModePerm); err != nil {
		return "", errors.Wrap(err, "webdav")
	}
	return fileKey, nil
}

func (w *WebDAV) SendFile(pathKey string, file io.Reader, contentType string, modTime time.Time) (string, error) {
	content, err := io.ReadAll(file)
	if err != nil {
		return "", errors.Wrap(err, "webdav")
	}
	return w.SendContent(pathKey, content, modTime)
}

package local_fs

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
)

func (l *LocalFS) fullPath(pathKey string) string {
	return filepath.Join(l.Config.SavePath, filepath.FromSlash(pathKey))
}

func (l *LocalFS) IsExist(pathKey string) bool {
	_, err := os.Stat(l.fullPath(pathKey))
	return err == nil
}

func (l *LocalFS) CreateDir(pathKey string) error {
	if err := os.MkdirAll(l.fullPath(pathKey), os.ModePerm); err != nil {
		return errors.Wrap(err, "local_fs")
	}
	return nil
}

func (l *LocalFS) SendContent(pathKey string, content []byte, modTime time.Time) (string, error) {
	dst := l.fullPath(pathKey)
	if err := os.MkdirAll(filepath.Dir(dst), os.ModePerm); err != nil {
		return "", errors.Wrap(err, "local_fs")
	}
	if err := os.WriteFile(dst, content, 0644); err != nil {
		return "", errors.Wrap(err, "local_fs")
	}
	if !modTime.IsZero() {
		_ = os.Chtimes(dst, modTime, modTime)
	}
	return dst, nil
}

func (l *LocalFS) SendFile(pathKey string, file io.Reader, contentType string, modTime time.Time) (string, error) {
	content, err := io.ReadAll(file)
	if err != nil {
		return "", errors.Wrap(err, "local_fs")
	}
	return l.SendContent(pathKey, content, modTime)
}

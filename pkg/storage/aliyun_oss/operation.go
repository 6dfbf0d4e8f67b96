package aliyun_oss

import (
	"bytes"
	"io"
	"time"

	"github.com/haierkeys/memos-mirror/pkg/fileurl"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/pkg/errors"
)

func (p *OSS) key(pathKey string) string {
	return fileurl.PathSuffixCheckAdd(p.Config.CustomPath, "/") + pathKey
}

func (p *OSS) IsExist(pathKey string) bool {
	exist, err := p.Bucket.IsObjectExist(p.key(pathKey))
	return err == nil && exist
}

// CreateDir is a no-op: OSS has a flat keyspace.
func (p *OSS) CreateDir(pathKey string) error {
	return nil
}

func (p *OSS) SendContent(pathKey string, content []byte, modTime time.Time) (string, error) {
	fileKey := p.key(pathKey)
	if err := p.Bucket.PutObject(fileKey, bytes.NewReader(content)); err != nil {
		return "", errors.Wrap(err, "aliyun_oss")
	}
	return fileKey, nil
}

func (p *OSS) SendFile(pathKey string, file io.Reader, contentType string, modTime time.Time) (string, error) {
	fileKey := p.key(pathKey)
	var opts []oss.Option
	if contentType != "" {
		opts = append(opts, oss.ContentType(contentType))
	}
	if err := p.Bucket.PutObject(fileKey, file, opts...); err != nil {
		return "", errors.Wrap(err, "aliyun_oss")
	}
	return fileKey, nil
}

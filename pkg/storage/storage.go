// Package storage abstracts the local mirror file store behind a small
// capability interface so the sync pipeline can write to a local vault,
// a WebDAV share or an object store without knowing which.
package storage

import (
	"io"
	"time"

	"github.com/haierkeys/memos-mirror/pkg/storage/aliyun_oss"
	"github.com/haierkeys/memos-mirror/pkg/storage/aws_s3"
	"github.com/haierkeys/memos-mirror/pkg/storage/local_fs"
	"github.com/haierkeys/memos-mirror/pkg/storage/memory_fs"
	"github.com/haierkeys/memos-mirror/pkg/storage/webdav"

	"github.com/pkg/errors"
)

type Type = string

const (
	LOCAL  Type = "localfs"
	WebDAV Type = "webdav"
	S3     Type = "s3"
	OSS    Type = "oss"
	Memory Type = "memoryfs"
)

var TypeMap = map[Type]bool{
	LOCAL:  true,
	WebDAV: true,
	S3:     true,
	OSS:    true,
	Memory: true,
}

var ErrInvalidType = errors.New("invalid storage type")

// Config is the unified storage configuration.
type Config struct {
	Type Type `yaml:"type" default:"localfs"`

	// Local FS
	SavePath string `yaml:"save-path" default:"storage/vault"`

	// WebDAV / S3-compatible endpoint
	Endpoint string `yaml:"endpoint"`

	// WebDAV
	User     string `yaml:"user"`
	Password string `yaml:"password"`

	// Cloud storage (S3 / OSS)
	Region          string `yaml:"region"`
	BucketName      string `yaml:"bucket-name"`
	AccessKeyID     string `yaml:"access-key-id"`
	AccessKeySecret string `yaml:"access-key-secret"`

	// CustomPath is prepended to every key on remote backends.
	CustomPath string `yaml:"custom-path"`
}

// Storager is the hierarchical file-store capability the sync pipeline
// depends on. Keys are slash-separated paths relative to the store root.
type Storager interface {
	// IsExist reports whether a key already holds content.
	IsExist(pathKey string) bool
	// CreateDir ensures a directory exists. A no-op on flat keyspaces.
	CreateDir(pathKey string) error
	// SendContent creates or overwrites a text document.
	SendContent(pathKey string, content []byte, modTime time.Time) (string, error)
	// SendFile writes a binary file from a reader.
	SendFile(pathKey string, file io.Reader, contentType string, modTime time.Time) (string, error)
}

// NewClient builds a Storager for the configured backend type.
func NewClient(config *Config) (Storager, error) {
	if config == nil {
		return nil, ErrInvalidType
	}

	switch config.Type {
	case LOCAL:
		return local_fs.NewClient(&local_fs.Config{
			SavePath: config.SavePath,
		})
	case WebDAV:
		return webdav.NewClient(&webdav.Config{
			Endpoint:   config.Endpoint,
			User:       config.User,
			Password:   config.Password,
			CustomPath: config.CustomPath,
		})
	case S3:
		return aws_s3.NewClient(&aws_s3.Config{
			Endpoint:        config.Endpoint,
			Region:          config.Region,
			BucketName:      config.BucketName,
			AccessKeyID:     config.AccessKeyID,
			AccessKeySecret: config.AccessKeySecret,
			CustomPath:      config.CustomPath,
		})
	case OSS:
		return aliyun_oss.NewClient(&aliyun_oss.Config{
			Endpoint:        config.Endpoint,
			BucketName:      config.BucketName,
			AccessKeyID:     config.AccessKeyID,
			AccessKeySecret: config.AccessKeySecret,
			CustomPath:      config.CustomPath,
		})
	case Memory:
		return memory_fs.NewClient(), nil
	}
	return nil, errors.Wrap(ErrInvalidType, config.Type)
}

package aliyun_oss

import (
	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/pkg/errors"
)

type Config struct {
	Endpoint        string `yaml:"endpoint"`
	BucketName      string `yaml:"bucket-name"`
	AccessKeyID     string `yaml:"access-key-id"`
	AccessKeySecret string `yaml:"access-key-secret"`
	CustomPath      string `yaml:"custom-path"`
}

type OSS struct {
	Client *oss.Client
	Bucket *oss.Bucket
	Config *Config
}

func NewClient(conf *Config) (*OSS, error) {
	client, err := oss.New(conf.Endpoint, conf.AccessKeyID, conf.AccessKeySecret)
	if err != nil {
		return nil, errors.Wrap(err, "aliyun_oss")
	}
	bucket, err := client.Bucket(conf.BucketName)
	if err != nil {
		return nil, errors.Wrap(err, "aliyun_oss")
	}
	return &OSS{
		Client: client,
		Bucket: bucket,
		Config: conf,
	}, nil
}

package webdav

import (
	"github.com/studio-b12/gowebdav"
)

type Config struct {
	Endpoint   string `yaml:"endpoint"`
	User       string `yaml:"user"`
	Password   string `yaml:"password"`
	CustomPath string `yaml:"custom-path"`
}

// WebDAV mirrors files onto a WebDAV share.
type WebDAV struct {
	Client *gowebdav.Client
	Config *Config
}

func NewClient(conf *Config) (*WebDAV, error) {
	c := gowebdav.NewClient(conf.Endpoint, conf.User, conf.Password)
	if err := c.Connect(); err != nil {
		return nil, err
	}
	return &WebDAV{
		Client: c,
		Config: conf,
	}, nil
}

package local_fs

type Config struct {
	SavePath string `yaml:"save-path" default:"storage/vault"`
}

// LocalFS stores mirror files on the local filesystem under SavePath.
type LocalFS struct {
	Config *Config
}

func NewClient(conf *Config) (*LocalFS, error) {
	return &LocalFS{Config: conf}, nil
}

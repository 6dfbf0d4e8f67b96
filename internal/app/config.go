// Package app provides the application container wiring configuration,
// logging, storage, persistence and the sync engine together.
package app

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/haierkeys/memos-mirror/internal/dao"
	"github.com/haierkeys/memos-mirror/internal/mirror"
	"github.com/haierkeys/memos-mirror/pkg/llm"
	"github.com/haierkeys/memos-mirror/pkg/logger"
	"github.com/haierkeys/memos-mirror/pkg/storage"
	"github.com/haierkeys/memos-mirror/pkg/util"
)

// AppConfig is the full application configuration.
type AppConfig struct {
	File     string         `yaml:"-"`
	Log      logger.Config  `yaml:"log"`
	Sync     SyncConfig     `yaml:"sync"`
	Storage  storage.Config `yaml:"storage"`
	Database dao.Config     `yaml:"database"`
	LLM      llm.Config     `yaml:"llm"`
}

// SyncConfig configures the mirror target and cadence.
type SyncConfig struct {
	// APIURL is the versioned API base, e.g. https://host/api/v1.
	// A bare host URL is normalized by appending /api/v1.
	APIURL      string `yaml:"api-url" validate:"required,url"`
	AccessToken string `yaml:"access-token" validate:"required"`
	// RootDir is the top directory of the mirror tree in the store.
	RootDir string `yaml:"root-dir" default:"memos"`
	// Cadence is "manual" (run once per invocation) or "auto"
	// (recurring on IntervalMinutes).
	Cadence string `yaml:"cadence" default:"manual" validate:"oneof=manual auto"`
	// IntervalMinutes is the auto cadence period.
	IntervalMinutes int `yaml:"interval-minutes" default:"30" validate:"min=1"`
	// MaxRecords caps how many memos one run fetches.
	MaxRecords int `yaml:"max-records" default:"1000" validate:"min=1"`
}

var apiVersionSuffix = regexp.MustCompile(`/api/v\d+$`)

// NormalizedAPIURL returns the API URL with a guaranteed version
// suffix.
func (c *SyncConfig) NormalizedAPIURL() string {
	u := strings.TrimRight(strings.TrimSpace(c.APIURL), "/")
	if u == "" || apiVersionSuffix.MatchString(u) {
		return u
	}
	return u + "/api/v1"
}

// Interval returns the auto cadence period as a duration.
func (c *SyncConfig) Interval() time.Duration {
	return time.Duration(c.IntervalMinutes) * time.Minute
}

// MirrorConfig converts the sync section into the engine's config.
func (c *SyncConfig) MirrorConfig() mirror.Config {
	return mirror.Config{
		APIURL:      c.NormalizedAPIURL(),
		AccessToken: c.AccessToken,
		RootDir:     c.RootDir,
		MaxRecords:  c.MaxRecords,
	}
}

// Validate checks the sync section against its constraints.
func (c *AppConfig) Validate() error {
	if err := validator.New().Struct(&c.Sync); err != nil {
		return errors.Wrap(err, "config validation failed")
	}
	if _, err := util.ParseDuration(c.Database.ConnMaxLifetime); c.Database.Enabled && err != nil {
		return errors.Wrap(err, "config validation failed")
	}
	return nil
}

// LoadConfig loads the configuration from a file, filling defaults
// before and after parsing so empty fields fall back too.
func LoadConfig(f string) (*AppConfig, string, error) {
	realpath, err := filepath.Abs(f)
	if err != nil {
		return nil, "", err
	}
	realpath = filepath.Clean(realpath)

	c := new(AppConfig)
	c.File = realpath

	if err := defaults.Set(c); err != nil {
		return nil, realpath, errors.Wrap(err, "set default config failed")
	}

	file, err := os.ReadFile(realpath)
	if err != nil {
		return nil, realpath, errors.Wrap(err, "read config file failed")
	}

	if err := yaml.Unmarshal(file, c); err != nil {
		return nil, realpath, errors.Wrap(err, "parse config file failed")
	}

	// defaults.Set only touches zero values, so a second pass fills
	// fields the YAML left empty.
	if err := defaults.Set(c); err != nil {
		return nil, realpath, errors.Wrap(err, "re-set default config failed")
	}

	return c, realpath, nil
}

// Save writes the configuration back to its file.
func (c *AppConfig) Save() error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "marshal config failed")
	}
	if err := os.WriteFile(c.File, data, 0644); err != nil {
		return errors.Wrap(err, "write config file failed")
	}
	return nil
}

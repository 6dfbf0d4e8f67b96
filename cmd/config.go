package cmd

import (
	"os"

	"go.uber.org/zap"

	"github.com/haierkeys/memos-mirror/pkg/fileurl"
)

// resolveConfig picks the configuration file to use. An explicit path
// wins; otherwise the usual locations are probed, and as a last resort
// the embedded default is written out so a first run self-initializes.
func resolveConfig(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	for _, candidate := range []string{
		"config/config-dev.yaml",
		"config.yaml",
		"config/config.yaml",
	} {
		if fileurl.IsExist(candidate) {
			return candidate, nil
		}
	}

	path := "config/config.yaml"
	bootstrapLogger.Warn("config file not found, creating default config")

	if err := fileurl.CreatePath(path, os.ModePerm); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(configDefault), 0666); err != nil {
		return "", err
	}
	bootstrapLogger.Info("config file auto created", zap.String("path", path))
	return path, nil
}

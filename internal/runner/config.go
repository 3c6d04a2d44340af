package runner

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/phishcheck"
	fileutil "github.com/projectdiscovery/utils/file"
)

func defaultProfilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, fmt.Sprintf(".config/phishcheck/profile_%v.yaml", version))
}

// loadProfile reads the analysis profile at path
// when path is empty the default profile is used and created if missing
func loadProfile(path string) (*phishcheck.Config, error) {
	if path != "" {
		return phishcheck.NewConfig(path)
	}
	defaultPath := defaultProfilePath()
	if defaultPath == "" {
		cfg := phishcheck.DefaultConfig
		return &cfg, nil
	}
	if fileutil.FileExists(defaultPath) {
		cfg, err := phishcheck.NewConfig(defaultPath)
		if err == nil {
			return cfg, nil
		}
		gologger.Warning().Msgf("ignoring invalid default profile %v: %v", defaultPath, err)
	} else if err := os.MkdirAll(filepath.Dir(defaultPath), 0700); err == nil {
		if err := phishcheck.GenerateSample(defaultPath); err != nil {
			gologger.Error().Msgf("failed to save default profile to %v got: %v", defaultPath, err)
		}
	}
	cfg := phishcheck.DefaultConfig
	return &cfg, nil
}

package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/MKhiriev/go-master-password/models"
)

const (
	defaultClipboardClearTimeout = 20 * time.Second
	defaultLogLevel              = "info"
	defaultDBFile                = "sites.db"
	appDirName                   = "mpw"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			DefaultType:           models.DefaultPasswordType,
			DefaultCounter:        models.DefaultCounter,
			ClipboardClearTimeout: defaultClipboardClearTimeout,
		},
		Storage: Storage{
			DB: DB{DSN: defaultDSN()},
		},
		Log: Log{
			Level: defaultLogLevel,
			File:  filepath.Join(defaultDir(), "mpw.log"),
		},
	}
}

// defaultDir is the per-user application directory, or the working
// directory when the OS reports none.
func defaultDir() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return "."
	}
	return filepath.Join(dir, appDirName)
}

func defaultDSN() string {
	return filepath.Join(defaultDir(), defaultDBFile)
}

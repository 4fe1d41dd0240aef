package config

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"

	"github.com/MKhiriev/go-master-password/models"
)

// Flag names shared by every command.
const (
	FlagConfig         = "config"
	FlagUserName       = "username"
	FlagDSN            = "db"
	FlagLogLevel       = "log-level"
	FlagLogFile        = "log-file"
	FlagDefaultType    = "default-type"
	FlagDefaultCounter = "default-counter"
	FlagClipboardClear = "clipboard-clear"
)

// Flags holds the values of the configuration flags registered on a
// command's persistent flag set. Unset flags stay zero and let later
// sources fill the field.
type Flags struct {
	ConfigPath     string
	UserName       string
	DSN            string
	LogLevel       string
	LogFile        string
	DefaultType    string
	DefaultCounter uint32
	ClipboardClear time.Duration
}

// Register binds the configuration flags to fs.
//
// Flags:
//
//	-c/--config        json file path with configs
//	-u/--username      master password user name
//	--db               site store DSN (sqlite path or postgres:// URL)
//	--log-level        log level (debug, info, warn, error)
//	--log-file         log file used by the terminal UI
//	--default-type     password type for new sites
//	--default-counter  counter for new sites
//	--clipboard-clear  clipboard clear timeout (e.g. "20s")
func (f *Flags) Register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.ConfigPath, FlagConfig, "c", "", "JSON config file path")
	fs.StringVarP(&f.UserName, FlagUserName, "u", "", "Master password user name")
	fs.StringVar(&f.DSN, FlagDSN, "", "Site store DSN (sqlite file or postgres:// URL)")
	fs.StringVar(&f.LogLevel, FlagLogLevel, "", "Log level (debug, info, warn, error)")
	fs.StringVar(&f.LogFile, FlagLogFile, "", "Log file for the terminal UI")
	fs.StringVar(&f.DefaultType, FlagDefaultType, "", "Password type for new sites (maximum, long, medium, short, basic, pin)")
	fs.Uint32Var(&f.DefaultCounter, FlagDefaultCounter, 0, "Counter for new sites")
	fs.DurationVar(&f.ClipboardClear, FlagClipboardClear, 0, "Clear the clipboard this long after copying (e.g. 20s)")
}

func (f *Flags) toConfig() (*StructuredConfig, error) {
	var passwordType models.PasswordType
	if f.DefaultType != "" {
		parsed, err := models.ParsePasswordType(f.DefaultType)
		if err != nil {
			return nil, fmt.Errorf("flag --%s: %w", FlagDefaultType, err)
		}
		passwordType = parsed
	}

	return &StructuredConfig{
		App: App{
			UserName:              f.UserName,
			DefaultType:           passwordType,
			DefaultCounter:        f.DefaultCounter,
			ClipboardClearTimeout: f.ClipboardClear,
		},
		Storage: Storage{
			DB: DB{DSN: f.DSN},
		},
		Log: Log{
			Level: f.LogLevel,
			File:  f.LogFile,
		},
		JSONFilePath: f.ConfigPath,
	}, nil
}

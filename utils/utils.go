package utils

import (
	"os"

	"gopkg.in/ini.v1"
)

const INI_FILE = "crysedit.ini"

// Get_savefile_dir decides where save files live: the "dir" key in
// crysedit.ini if present, otherwise the current directory.  A --dir
// command-line override is the caller's business.
func Get_savefile_dir() string {
	cfg, err := ini.Load(INI_FILE)
	if err == nil {
		// Classic read of values, default section can be represented as empty string
		dir := cfg.Section("").Key("dir").String()
		if dir != "" {
			return dir
		}
	}

	wd, _ := os.Getwd()
	return wd
}

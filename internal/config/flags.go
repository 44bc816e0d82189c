package config

import (
	"flag"

	"github.com/MKhiriev/cryptfile/models"
)

// ParseFlags parses all configuration flags. Positional arguments after the
// flags are the operation targets.
//
// Flags:
//
//	-e encrypt the listed files
//	-d decrypt the listed containers
//	-ed encrypt the listed directories
//	-dd decrypt the listed containers (alias of -d; the container itself
//	    records whether it holds a directory)
//	-c compress directories before encryption (slows down the process)
//	-r remove the original file or directory after a successful operation
//	-history show the N most recent journal entries and exit
//	-p operation password (prefer the interactive prompt)
//	-journal operation journal SQLite path
//	-log log file path
//	-config json file path with configs
func ParseFlags() *Config {
	var encryptFiles, decryptFiles bool
	var encryptDirs, decryptDirs bool
	var compress, remove bool
	var history uint64
	var password string
	var journalDSN string
	var logPath string
	var jsonConfigPath string

	flag.BoolVar(&encryptFiles, "e", false, "Encrypt files")
	flag.BoolVar(&decryptFiles, "d", false, "Decrypt containers")
	flag.BoolVar(&encryptDirs, "ed", false, "Encrypt directories")
	flag.BoolVar(&decryptDirs, "dd", false, "Decrypt containers (directory alias)")
	flag.BoolVar(&compress, "c", false, "Compress directories before encryption")
	flag.BoolVar(&remove, "r", false, "Remove originals after success")
	flag.Uint64Var(&history, "history", 0, "Show the N most recent journal entries and exit")
	flag.StringVar(&password, "p", "", "Operation password (omit to be prompted)")
	flag.StringVar(&journalDSN, "journal", "", "Operation journal SQLite path")
	flag.StringVar(&logPath, "log", "", "Log file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path")

	flag.Parse()

	run := Run{
		Compress: compress,
		Remove:   remove,
		Targets:  flag.Args(),
		History:  history,
	}

	switch {
	case encryptFiles:
		run.Mode = models.ModeEncrypt
	case encryptDirs:
		run.Mode = models.ModeEncrypt
		run.Directory = true
	case decryptFiles:
		run.Mode = models.ModeDecrypt
	case decryptDirs:
		run.Mode = models.ModeDecrypt
		run.Directory = true
	}

	if moreThanOne(encryptFiles, decryptFiles, encryptDirs, decryptDirs) {
		// Conflicting selectors cancel out; validation reports the miss.
		run.Mode = 0
		run.Directory = false
	}

	return &Config{
		App: App{
			Password: password,
			LogPath:  logPath,
		},
		Storage: Storage{
			Journal: Journal{
				DSN: journalDSN,
			},
		},
		Run:          run,
		JSONFilePath: jsonConfigPath,
	}
}

func moreThanOne(flags ...bool) bool {
	count := 0
	for _, f := range flags {
		if f {
			count++
		}
	}
	return count > 1
}

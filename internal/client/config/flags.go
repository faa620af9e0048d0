package config

import (
	"flag"
	"os"
	"time"

	"github.com/safetytracker/tracker/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-a string   backend base URL
//	-d string   local database path
//	-t int      request timeout in seconds
//	-l string   log level
//
// os.Args is filtered through flagx.FilterArgs first so -c/-config and other
// foreign flags do not trip the parser.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-t", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "base URL of the backend")
	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "local database file")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}

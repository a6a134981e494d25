package config

import (
	"flag"
	"os"
	"time"

	"github.com/sanyogchangmai/Anime-Facts-Webpage/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
//	-m string   mode: development or production
//	-d string   development API base URL
//	-p string   production API base URL
//	-s string   session database path
//	-l string   log level: debug, info, warn, error
//	-t int      request timeout in seconds (0 waits forever)
//
// Only these flags are parsed; -c and -e belong to the JSON and dotenv loaders.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-m", "-d", "-p", "-s", "-l", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	mode := fs.String("m", string(cfg.Mode), "mode: development or production")
	fs.StringVar(&cfg.DevAPIURL, "d", cfg.DevAPIURL, "development API base URL")
	fs.StringVar(&cfg.ProdAPIURL, "p", cfg.ProdAPIURL, "production API base URL")
	fs.StringVar(&cfg.StoragePath, "s", cfg.StoragePath, "session database path")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds), 0 waits forever")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.Mode = Mode(*mode)
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
}

package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sanyogchangmai/Anime-Facts-Webpage/internal/flagx"
)

const defaultEnvFile = ".env"

const (
	envMode           = "ANIMEFACTS_MODE"
	envDevAPIURL      = "ANIMEFACTS_DEV_API_URL"
	envProdAPIURL     = "ANIMEFACTS_PROD_API_URL"
	envStoragePath    = "ANIMEFACTS_STORE"
	envLogLevel       = "ANIMEFACTS_LOG_LEVEL"
	envRequestTimeout = "ANIMEFACTS_REQUEST_TIMEOUT"
)

// parseEnv overlays cfg with variables from a dotenv file and then from the
// process environment, which wins. The file is -e/-env, or ".env" in the
// working directory when present. A missing explicit file panics, as does
// an unparsable timeout.
func parseEnv(cfg *Config) {
	file := flagx.EnvFileFlags()
	explicit := file != ""
	if !explicit {
		file = defaultEnvFile
	}

	vars, err := godotenv.Read(file)
	if err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			panic(err)
		}
		vars = map[string]string{}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := vars[key]
		return v, ok
	}

	if v, ok := lookup(envMode); ok {
		cfg.Mode = Mode(v)
	}
	if v, ok := lookup(envDevAPIURL); ok {
		cfg.DevAPIURL = v
	}
	if v, ok := lookup(envProdAPIURL); ok {
		cfg.ProdAPIURL = v
	}
	if v, ok := lookup(envStoragePath); ok {
		cfg.StoragePath = v
	}
	if v, ok := lookup(envLogLevel); ok {
		cfg.LogLevel = v
	}
	if v, ok := lookup(envRequestTimeout); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.RequestTimeout = d
	}
}

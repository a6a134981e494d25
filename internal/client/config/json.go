package config

import (
	"encoding/json"
	"os"

	"github.com/sanyogchangmai/Anime-Facts-Webpage/internal/flagx"
	"github.com/sanyogchangmai/Anime-Facts-Webpage/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish "absent" from "empty".
type JsonConfig struct {
	Mode           *string         `json:"mode"`
	DevAPIURL      *string         `json:"dev_api_url"`
	ProdAPIURL     *string         `json:"prod_api_url"`
	StoragePath    *string         `json:"storage_path"`
	LogLevel       *string         `json:"log_level"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
}

// parseJson overlays cfg with the JSON file named by -c/-config. Without
// the flag it does nothing. Read and decode errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.Mode != nil {
		cfg.Mode = Mode(*jc.Mode)
	}
	if jc.DevAPIURL != nil {
		cfg.DevAPIURL = *jc.DevAPIURL
	}
	if jc.ProdAPIURL != nil {
		cfg.ProdAPIURL = *jc.ProdAPIURL
	}
	if jc.StoragePath != nil {
		cfg.StoragePath = *jc.StoragePath
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
}

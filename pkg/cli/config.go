package cli

import (
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	ServerURL string
	DataDir   string
}

// loadConfig reads ~/.farmlog/config.yaml when present and falls back to
// defaults otherwise. FARMLOG_* environment variables override both.
func loadConfig() Config {
	base := defaultBase()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(base)
	v.SetEnvPrefix("FARMLOG")
	v.AutomaticEnv()

	v.SetDefault("server_url", "http://localhost:8080")
	v.SetDefault("data_dir", base)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("[cfg] reading config: %v", err)
		}
	}

	return Config{
		ServerURL: v.GetString("server_url"),
		DataDir:   v.GetString("data_dir"),
	}
}

func defaultBase() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".farmlog"
	}
	return filepath.Join(home, ".farmlog")
}

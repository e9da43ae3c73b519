package utils

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Fetch modes for the two upstream calls per search.
const (
	FetchSequential = "sequential"
	FetchConcurrent = "concurrent"
)

type Config struct {
	App      AppConfig
	Upstream UpstreamConfig
	Search   SearchConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type UpstreamConfig struct {
	BaseURL string
	// 0 means no client timeout; the search flow imposes none of its own.
	Timeout time.Duration
}

type SearchConfig struct {
	RecLimit    int
	FetchMode   string
	Suggestions []string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "movie-scout")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("UPSTREAM_BASE_URL", "http://localhost:5000")
	viper.SetDefault("UPSTREAM_TIMEOUT_SECONDS", 0)
	viper.SetDefault("SEARCH_REC_LIMIT", 19)
	viper.SetDefault("FETCH_MODE", FetchSequential)
	viper.SetDefault("SUGGESTIONS", "Inception,Interstellar,The Dark Knight,Avatar")

	if err := viper.ReadInConfig(); err != nil {
		// No .env file: run on defaults and environment variables
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	viper.AutomaticEnv()

	fetchMode := strings.ToLower(strings.TrimSpace(viper.GetString("FETCH_MODE")))
	if fetchMode != FetchConcurrent {
		fetchMode = FetchSequential
	}

	var suggestions []string
	for _, s := range strings.Split(viper.GetString("SUGGESTIONS"), ",") {
		if s = strings.TrimSpace(s); s != "" {
			suggestions = append(suggestions, s)
		}
	}

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Upstream: UpstreamConfig{
			BaseURL: strings.TrimRight(viper.GetString("UPSTREAM_BASE_URL"), "/"),
			Timeout: time.Duration(viper.GetInt("UPSTREAM_TIMEOUT_SECONDS")) * time.Second,
		},
		Search: SearchConfig{
			RecLimit:    viper.GetInt("SEARCH_REC_LIMIT"),
			FetchMode:   fetchMode,
			Suggestions: suggestions,
		},
	}

	return config, nil
}

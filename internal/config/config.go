package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mindreel/mindreel/internal/ports/adapters/together"
)

type Config struct {
	Port      string
	MediaDir  string
	MaxFrames int

	TogetherAPIKey       string
	TogetherModel        string
	TogetherBaseURL      string
	TogetherAllowedHosts []string

	CaptionLangs []string

	YTDLPPath   string
	FFmpegPath  string
	FFprobePath string

	LogMode string
}

func Load() (Config, error) {
	cfg := Config{}

	cfg.Port = envOrDefault("PORT", "8000")
	cfg.MediaDir = envOrDefault("MEDIA_DIR", "downloads")

	maxFrames, err := parseIntEnv("MAX_FRAMES", 10)
	if err != nil {
		return Config{}, fmt.Errorf("parse MAX_FRAMES: %w", err)
	}
	cfg.MaxFrames = maxFrames

	cfg.TogetherAPIKey = os.Getenv("TOGETHER_API_KEY")
	cfg.TogetherModel = envOrDefault("TOGETHER_MODEL", "mistralai/Mistral-7B-Instruct-v0.1")
	cfg.TogetherBaseURL = envOrDefault("TOGETHER_BASE_URL", "https://api.together.xyz")
	cfg.TogetherAllowedHosts = splitList(os.Getenv("TOGETHER_ALLOWED_HOSTS"))

	cfg.CaptionLangs = splitList(envOrDefault("CAPTION_LANGS", "en,hi"))

	cfg.YTDLPPath = envOrDefault("YTDLP_PATH", "yt-dlp")
	cfg.FFmpegPath = envOrDefault("FFMPEG_PATH", "ffmpeg")
	cfg.FFprobePath = envOrDefault("FFPROBE_PATH", "ffprobe")

	cfg.LogMode = envOrDefault("LOG_MODE", "development")

	return cfg, nil
}

func (c Config) Validate() error {
	if c.TogetherAPIKey == "" {
		return errors.New("TOGETHER_API_KEY is required (set it in .env)")
	}
	if c.MediaDir == "" {
		return errors.New("media dir is empty")
	}
	if c.MaxFrames <= 0 {
		return fmt.Errorf("max frames must be > 0")
	}
	if len(c.CaptionLangs) == 0 {
		return fmt.Errorf("at least one caption language is required")
	}
	return together.ValidateBaseURL(c.TogetherBaseURL, c.TogetherAllowedHosts)
}

func envOrDefault(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func parseIntEnv(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	return strconv.Atoi(value)
}

func splitList(s string) []string {
	var out []string
	for _, v := range strings.Split(s, ",") {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
// The seed URL list is compiled in (see scraper/wholesale) and is not
// configurable at runtime.
type Config struct {
	SQLitePath string
	JSONLPath  string

	FetchMode    string // "render" (headless browser) or "static" (plain GET)
	RenderWaitMs int
	ChromeBin    string
	UserAgent    string

	Debug bool
}

const defaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 " +
	"(KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		SQLitePath: getEnv("SQLITE_PATH", "./output/wholesale.db"),
		JSONLPath:  getEnv("JSONL_OUTPUT_PATH", "./output/listings.jsonl"),

		FetchMode:    getEnv("FETCH_MODE", "render"),
		RenderWaitMs: getEnvInt("RENDER_WAIT_MS", 2000),
		ChromeBin:    getEnv("CHROME_BIN", ""),
		UserAgent:    getEnv("USER_AGENT", defaultUserAgent),

		Debug: getEnvBool("DEBUG", false),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		b, err := strconv.ParseBool(val)
		if err == nil {
			return b
		}
	}
	return fallback
}

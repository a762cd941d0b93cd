package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"local"`
	Storage    Storage    `yaml:"storage"`
	Branding   Branding   `yaml:"branding"`
	HTTPServer HTTPServer `yaml:"http_server"`
}

// Storage selects the SQL driver and its connection parameters. The sqlite3
// driver uses Path only; the postgres driver uses the remaining fields.
type Storage struct {
	Driver   string `yaml:"driver" env-default:"sqlite3"`
	Path     string `yaml:"path" env-default:"./meet_planner.db"`
	Host     string `yaml:"host" env-default:"localhost"`
	Port     int    `yaml:"port" env-default:"5432"`
	User     string `yaml:"user" env-default:"postgres"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	DBName   string `yaml:"dbname" env-default:"meet_planner"`
	SSLMode  string `yaml:"sslmode" env-default:"disable"`
}

// Branding holds the literal constants shown in the page chrome.
type Branding struct {
	GitHubURL   string `yaml:"github_url"`
	LinkedInURL string `yaml:"linkedin_url"`
	Tagline     string `yaml:"tagline"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env-default:"localhost:8080"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

func MustLoad() *Config {
	// .env may supply CONFIG_PATH and DB_PASSWORD; missing file is fine.
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/local.yaml"
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return &cfg
}

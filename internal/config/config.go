package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultHost         = "127.0.0.1"
	DefaultPort         = 5000
	DefaultTemplatesDir = "templates"
	DefaultStaticDir    = "static"
)

type Config struct {
	Host         string
	Port         int
	Debug        bool
	TemplatesDir string
	StaticDir    string
}

// Addr is the listen address for the http server.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Load reads the optional .env files and builds a Config from the environment.
// A missing .env file is fine, everything has a default.
func Load(filenames ...string) (Config, error) {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}

	for _, name := range filenames {
		err := godotenv.Load(name)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", name, err)
		}
	}

	return FromEnv()
}

func FromEnv() (Config, error) {
	cfg := Config{
		Host:         getenv("HOST", DefaultHost),
		Port:         DefaultPort,
		TemplatesDir: getenv("TEMPLATES_DIR", DefaultTemplatesDir),
		StaticDir:    getenv("STATIC_DIR", DefaultStaticDir),
	}

	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil || p < 0 || p > 65535 {
			return Config{}, fmt.Errorf("invalid PORT %q", port)
		}
		cfg.Port = p
	}

	if debug := os.Getenv("DEBUG"); debug != "" {
		d, err := strconv.ParseBool(debug)
		if err != nil {
			return Config{}, fmt.Errorf("invalid DEBUG %q: %w", debug, err)
		}
		cfg.Debug = d
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

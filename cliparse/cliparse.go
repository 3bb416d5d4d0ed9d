package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

// Store type constants
const (
	StoreJSON     = "json"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
)

type Config struct {
	Port          int
	StoreType     string
	StorePath     string
	DatabaseURL   string
	AdminNickname string
	AllowedOrigin string
}

// ParseFlags validates flags and sets defaults
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("gift-draw", flag.ContinueOnError)

	// Network and storage config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.StoreType, "t", "", "Store type (json, sqlite or postgres)")
	fs.StringVar(&cfg.StorePath, "f", "", "Flat-file path for the json store")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL for sqlite/postgres stores")

	// Identity and CORS
	fs.StringVar(&cfg.AdminNickname, "admin", "", "Administrator nickname")
	fs.StringVar(&cfg.AllowedOrigin, "origin", "", "Allowed CORS origin")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3000 // default
		}
	}

	if cfg.StoreType == "" {
		cfg.StoreType = os.Getenv("STORE_TYPE")
		if cfg.StoreType == "" {
			cfg.StoreType = StoreJSON
		}
	}
	switch cfg.StoreType {
	case StoreJSON, StoreSQLite, StorePostgres:
	default:
		return Config{}, errors.New("store type must be json, sqlite or postgres")
	}

	if cfg.StorePath == "" {
		cfg.StorePath = os.Getenv("STORE_PATH")
		if cfg.StorePath == "" {
			cfg.StorePath = "./users.json"
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" && cfg.StoreType != StoreJSON {
		return Config{}, errors.New("database URL required for sqlite/postgres stores (use -d or DATABASE_URL env)")
	}

	if cfg.AdminNickname == "" {
		cfg.AdminNickname = os.Getenv("ADMIN_NICKNAME")
		if cfg.AdminNickname == "" {
			cfg.AdminNickname = "shiwei"
		}
	}

	if cfg.AllowedOrigin == "" {
		cfg.AllowedOrigin = os.Getenv("ALLOWED_ORIGIN")
		if cfg.AllowedOrigin == "" {
			cfg.AllowedOrigin = "http://localhost:3001"
		}
	}

	return cfg, nil
}

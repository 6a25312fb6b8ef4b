package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

type Config struct {
	Port        int
	CatalogPath string
}

// ParseFlags validates flags and sets the port and catalog path
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("vote-server", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.CatalogPath, "c", "", "Vote catalog YAML file")

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
			cfg.Port = 3327 // default
		}
	}

	if cfg.CatalogPath == "" {
		cfg.CatalogPath = os.Getenv("VOTE_CATALOG")
	}
	if cfg.CatalogPath == "" {
		cfg.CatalogPath = "votes.yaml"
	}

	return cfg, nil
}

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3327)
  - CatalogPath: Vote catalog YAML file (default: votes.yaml)

# CLI Flags

	-p  Server port
	-c  Vote catalog file

# Environment Variables

Flags fall back to environment variables:

	PORT         → -p
	VOTE_CATALOG → -c

CLI flags take precedence over environment variables. main loads a local
.env file before parsing, so either place works for development.
*/
package cliparse

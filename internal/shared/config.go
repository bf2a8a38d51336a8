package shared

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// DefaultConfigPath is the credential file used when no path is given.
const DefaultConfigPath = "config.json"

// Environment variables consulted when an env file is in use.
const (
	EnvClientID     = "SPOTIFY_CLIENT_ID"
	EnvClientSecret = "SPOTIFY_CLIENT_SECRET"
)

// Credentials holds the Spotify client-credentials pair.
type Credentials struct {
	ClientID     string `json:"SPOTIFY_CLIENT_ID" toml:"SPOTIFY_CLIENT_ID"`
	ClientSecret string `json:"SPOTIFY_CLIENT_SECRET" toml:"SPOTIFY_CLIENT_SECRET"`
}

// Validate reports [ErrMissingCredentials] when either value is empty.
func (c *Credentials) Validate() error {
	if c.ClientID == "" || c.ClientSecret == "" {
		return fmt.Errorf("%w: client_id and client_secret are required", ErrMissingCredentials)
	}
	return nil
}

// Map returns the credentials keyed the way services expect them.
func (c *Credentials) Map() map[string]string {
	return map[string]string{
		"client_id":     c.ClientID,
		"client_secret": c.ClientSecret,
	}
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// SaveCredentials writes the credentials to path, replacing any existing file.
//
// Files ending in .toml are written as TOML, everything else as indented JSON.
func SaveCredentials(path string, creds *Credentials) error {
	var data []byte
	if isTOML(path) {
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(creds); err != nil {
			return fmt.Errorf("failed to encode config: %w", err)
		}
		data = buf.Bytes()
	} else {
		var err error
		if data, err = json.MarshalIndent(creds, "", "    "); err != nil {
			return fmt.Errorf("failed to encode config: %w", err)
		}
		data = append(data, '\n')
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func readCredentials(path string) (*Credentials, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMissingConfig, err)
	}

	var creds Credentials
	if isTOML(path) {
		err = toml.Unmarshal(data, &creds)
	} else {
		err = json.Unmarshal(data, &creds)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse %s: %w", ErrMissingConfig, path, err)
	}
	return &creds, nil
}

// LoadCredentials reads and validates the credential file at path.
//
// A missing or malformed file wraps [ErrMissingConfig]; empty values wrap [ErrMissingCredentials].
func LoadCredentials(path string) (*Credentials, error) {
	return ResolveCredentials(path, "")
}

// ResolveCredentials reads the credential file at path and, when envFile is set, overrides its values from the
// environment: process variables first, then the dotenv file.
//
// A missing credential file is tolerated when the environment supplies both values.
func ResolveCredentials(path, envFile string) (*Credentials, error) {
	creds, err := readCredentials(path)
	if envFile == "" {
		if err != nil {
			return nil, err
		}
		return creds, creds.Validate()
	}

	env, envErr := godotenv.Read(envFile)
	if envErr != nil {
		return nil, fmt.Errorf("%w: failed to read env file %s: %w", ErrMissingConfig, envFile, envErr)
	}

	if creds == nil {
		creds = &Credentials{}
	}
	lookup := func(key string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return env[key]
	}
	if v := lookup(EnvClientID); v != "" {
		creds.ClientID = v
	}
	if v := lookup(EnvClientSecret); v != "" {
		creds.ClientSecret = v
	}

	if err != nil && (creds.ClientID == "" || creds.ClientSecret == "") {
		return nil, err
	}
	return creds, creds.Validate()
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads NCBI credentials from a directory of plain-text
// files. Each file holds one value; surrounding whitespace is trimmed.
//
// Recognized files: ncbi-api-key, ncbi-email.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pdiddy/pubmed-papers/pkg/types"
)

// File names inside the secrets directory.
const (
	APIKeyFile = "ncbi-api-key"
	EmailFile  = "ncbi-email"
)

// Credentials identify this tool to NCBI. Both fields are optional.
type Credentials struct {
	APIKey string
	Email  string
}

// Load reads the credential files in dir. A missing directory or missing
// files are not errors. Unreadable files are logged and skipped.
func Load(dir string, log zerolog.Logger) (Credentials, error) {
	var creds Credentials
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return creds, nil
		}
		return creds, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return creds, fmt.Errorf("secrets path %s is not a directory", dir)
	}

	creds.APIKey = readValue(dir, APIKeyFile, log)
	creds.Email = readValue(dir, EmailFile, log)
	return creds, nil
}

func readValue(dir, name string, log zerolog.Logger) string {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("secret", name).Msg("could not read secret")
		}
		return ""
	}
	return strings.TrimSpace(string(data))
}

// Apply copies credentials into cfg where cfg has no value yet, so flags
// and config files take precedence over the secrets directory.
func (c Credentials) Apply(cfg *types.PubMedConfig) {
	if cfg.APIKey == "" {
		cfg.APIKey = c.APIKey
	}
	if cfg.Email == "" {
		cfg.Email = c.Email
	}
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package secrets

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pubmed-papers/pkg/types"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(t *testing.T) string
		want   Credentials
		errMsg string
	}{
		{
			name: "reads key files and trims whitespace",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, APIKeyFile, "  abc123def  \n")
				writeFile(t, dir, EmailFile, "user@example.com\n")
				writeFile(t, dir, "unrelated-key", "ignored")
				return dir
			},
			want: Credentials{APIKey: "abc123def", Email: "user@example.com"},
		},
		{
			name: "missing directory yields empty credentials",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "does-not-exist")
			},
		},
		{
			name: "missing files are not errors",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, EmailFile, "only@example.com")
				return dir
			},
			want: Credentials{Email: "only@example.com"},
		},
		{
			name: "whitespace-only file is empty",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, APIKeyFile, "   \n\t  ")
				return dir
			},
		},
		{
			name: "file instead of directory",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, "secrets", "x")
				return filepath.Join(dir, "secrets")
			},
			errMsg: "not a directory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := tt.setup(t)
			got, err := Load(dir, zerolog.Nop())
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadUnreadableFile(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("file permissions are not enforced for root")
	}
	dir := t.TempDir()
	writeFile(t, dir, EmailFile, "user@example.com")

	badPath := filepath.Join(dir, APIKeyFile)
	require.NoError(t, os.WriteFile(badPath, []byte("secret"), 0o000))
	t.Cleanup(func() { os.Chmod(badPath, 0o644) })

	var logs bytes.Buffer
	got, err := Load(dir, zerolog.New(&logs))
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", got.Email)
	assert.Empty(t, got.APIKey)
	assert.Contains(t, logs.String(), APIKeyFile)
}

func TestApply(t *testing.T) {
	creds := Credentials{APIKey: "from-file", Email: "file@example.com"}

	cfg := types.PubMedConfig{Email: "flag@example.com"}
	creds.Apply(&cfg)

	assert.Equal(t, "from-file", cfg.APIKey)
	assert.Equal(t, "flag@example.com", cfg.Email)
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

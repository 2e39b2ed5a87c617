// Package credcache persists the last successful login to a local JSON
// file so the presentation layer can pre-fill the login form. It is a
// single-slot convenience cache and never drives authentication.
package credcache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Credentials is the cached login pair. The password field carries the
// stored hash, never the plaintext.
type Credentials struct {
	PatientID    string `json:"patient_id"`
	PasswordHash string `json:"password"`
}

// FileCache stores the pair in a single JSON file.
type FileCache struct {
	path string
}

// NewFileCache creates the parent directory if missing.
func NewFileCache(path string) (*FileCache, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("credential cache path is required")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create cache dir: %w", err)
		}
	}
	return &FileCache{path: path}, nil
}

// Save fully overwrites any prior content with the supplied pair.
func (c *FileCache) Save(creds Credentials) error {
	data, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("encode credentials: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0o600); err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	return nil
}

// Load returns the cached pair. A missing, unreadable or malformed file
// resolves to "no saved credentials", never an error.
func (c *FileCache) Load() (Credentials, bool) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return Credentials{}, false
	}
	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return Credentials{}, false
	}
	if creds.PatientID == "" {
		return Credentials{}, false
	}
	return creds, true
}

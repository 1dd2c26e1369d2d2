package server

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	gossh "golang.org/x/crypto/ssh"
)

// EnsureHostKey generates an ed25519 host key at path unless one exists.
// It reports whether a new key was written.
func EnsureHostKey(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("failed to stat host key: %w", err)
	}

	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return false, fmt.Errorf("failed to generate host key: %w", err)
	}

	block, err := gossh.MarshalPrivateKey(priv, "tetristerm host key")
	if err != nil {
		return false, fmt.Errorf("failed to marshal host key: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return false, fmt.Errorf("failed to create host key directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return false, fmt.Errorf("failed to create host key: %w", err)
	}
	defer f.Close()

	if err := pem.Encode(f, block); err != nil {
		return false, fmt.Errorf("failed to write host key: %w", err)
	}

	return true, nil
}

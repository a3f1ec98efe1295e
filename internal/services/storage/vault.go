// Package storage provides transparent, optionally age-encrypted access to
// the plan data directory. Encryption is off by default; once enabled, every
// JSON file in the directory is scrypt-encrypted at rest and the vault must
// be unlocked with the password before reads succeed.
package storage

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"filippo.io/age"
)

const (
	// ageHeader is the prefix of age-encrypted files
	ageHeader = "age-encryption.org"

	// markerFile indicates encryption is enabled for the directory
	markerFile = ".encrypted"

	// verifyFile is decrypted to validate the password before use
	verifyFile = ".encryption-verify"

	// verifyMagic is the expected plaintext of the verify file
	verifyMagic = `{"magic":"goalplan-encryption-verify","version":1}`
)

// Vault mediates file access for the plan directory, encrypting and
// decrypting transparently when enabled
type Vault struct {
	baseDir   string
	encrypted bool
	identity  *age.ScryptIdentity
	recipient *age.ScryptRecipient
	mu        sync.RWMutex
}

// Open creates a Vault over the given directory, detecting whether
// encryption was previously enabled
func Open(baseDir string) (*Vault, error) {
	v := &Vault{baseDir: baseDir}
	if _, err := os.Stat(filepath.Join(baseDir, markerFile)); err == nil {
		v.encrypted = true
	}
	return v, nil
}

// BaseDir returns the directory the vault manages
func (v *Vault) BaseDir() string { return v.baseDir }

// IsEncrypted reports whether encryption is enabled for the directory
func (v *Vault) IsEncrypted() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.encrypted
}

// IsUnlocked reports whether reads can currently succeed
func (v *Vault) IsUnlocked() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return !v.encrypted || v.identity != nil
}

// Unlock validates the password against the verify file and keeps the
// identity in memory for subsequent reads and writes
func (v *Vault) Unlock(password string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.encrypted {
		return nil
	}

	identity, err := age.NewScryptIdentity(password)
	if err != nil {
		return fmt.Errorf("failed to create identity: %w", err)
	}

	encrypted, err := os.ReadFile(filepath.Join(v.baseDir, verifyFile))
	if err != nil {
		return fmt.Errorf("failed to read verification file: %w", err)
	}

	decrypted, err := decryptData(encrypted, identity)
	if err != nil {
		return fmt.Errorf("incorrect password")
	}
	if string(decrypted) != verifyMagic {
		return fmt.Errorf("incorrect password (verification failed)")
	}

	v.identity = identity
	v.recipient, _ = age.NewScryptRecipient(password)
	return nil
}

// Lock clears the encryption key from memory
func (v *Vault) Lock() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.identity = nil
	v.recipient = nil
}

// ReadFile reads a file, decrypting it when necessary
func (v *Vault) ReadFile(path string) ([]byte, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if isAgeEncrypted(data) {
		if v.identity == nil {
			return nil, fmt.Errorf("file is encrypted but vault is locked")
		}
		return decryptData(data, v.identity)
	}
	return data, nil
}

// WriteFile writes a file atomically, encrypting it when enabled
func (v *Vault) WriteFile(path string, data []byte, perm os.FileMode) error {
	v.mu.RLock()
	defer v.mu.RUnlock()

	if v.shouldSkipEncryption(path) {
		return atomicWrite(path, data, perm)
	}
	if v.encrypted && v.recipient != nil {
		encrypted, err := encryptData(data, v.recipient)
		if err != nil {
			return fmt.Errorf("failed to encrypt: %w", err)
		}
		data = encrypted
	}
	return atomicWrite(path, data, perm)
}

// OpenFile returns a reader over the decrypted contents; used by backup to
// stream plaintext into archives
func (v *Vault) OpenFile(path string) (io.ReadCloser, error) {
	data, err := v.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

// atomicWrite writes via a temp file and rename so readers never observe a
// partial plan file
func atomicWrite(path string, data []byte, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, perm); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}

// shouldSkipEncryption excludes the bookkeeping files themselves
func (v *Vault) shouldSkipEncryption(path string) bool {
	base := filepath.Base(path)
	return base == markerFile || base == verifyFile
}

// isAgeEncrypted checks for the age encryption header
func isAgeEncrypted(data []byte) bool {
	return len(data) > len(ageHeader) && string(data[:len(ageHeader)]) == ageHeader
}

// isPlanFile limits encryption migration to the JSON files this app owns
func isPlanFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

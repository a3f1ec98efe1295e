package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"filippo.io/age"
)

// EnableEncryption encrypts every plan file under the base directory with
// the given password and leaves the vault unlocked
func (v *Vault) EnableEncryption(password string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.encrypted {
		return fmt.Errorf("encryption is already enabled")
	}
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}

	recipient, err := age.NewScryptRecipient(password)
	if err != nil {
		return fmt.Errorf("failed to create recipient: %w", err)
	}
	identity, err := age.NewScryptIdentity(password)
	if err != nil {
		return fmt.Errorf("failed to create identity: %w", err)
	}

	// Verification file first, so an interrupted migration is detectable
	verifyPath := filepath.Join(v.baseDir, verifyFile)
	encrypted, err := encryptData([]byte(verifyMagic), recipient)
	if err != nil {
		return fmt.Errorf("failed to encrypt verification file: %w", err)
	}
	if err := os.WriteFile(verifyPath, encrypted, 0644); err != nil {
		return fmt.Errorf("failed to write verification file: %w", err)
	}

	var planFiles []string
	err = filepath.Walk(v.baseDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || v.shouldSkipEncryption(path) || !isPlanFile(path) {
			return nil
		}
		planFiles = append(planFiles, path)
		return nil
	})
	if err != nil {
		os.Remove(verifyPath)
		return fmt.Errorf("failed to scan files: %w", err)
	}

	for _, path := range planFiles {
		if err := v.encryptFile(path, recipient); err != nil {
			v.rollbackEncryption(planFiles, identity)
			os.Remove(verifyPath)
			return fmt.Errorf("failed to encrypt %s: %w", filepath.Base(path), err)
		}
	}

	markerPath := filepath.Join(v.baseDir, markerFile)
	if err := os.WriteFile(markerPath, []byte("encrypted"), 0644); err != nil {
		return fmt.Errorf("failed to create marker file: %w", err)
	}

	v.encrypted = true
	v.identity = identity
	v.recipient = recipient
	return nil
}

// DisableEncryption decrypts every encrypted file back to plaintext; the
// current password is required
func (v *Vault) DisableEncryption(password string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.encrypted {
		return fmt.Errorf("encryption is not enabled")
	}

	identity, err := age.NewScryptIdentity(password)
	if err != nil {
		return fmt.Errorf("failed to create identity: %w", err)
	}

	verifyPath := filepath.Join(v.baseDir, verifyFile)
	encrypted, err := os.ReadFile(verifyPath)
	if err != nil {
		return fmt.Errorf("failed to read verification file: %w", err)
	}
	decrypted, err := decryptData(encrypted, identity)
	if err != nil || string(decrypted) != verifyMagic {
		return fmt.Errorf("incorrect password")
	}

	var encryptedFiles []string
	err = filepath.Walk(v.baseDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil // skip unreadable files
		}
		if isAgeEncrypted(data) {
			encryptedFiles = append(encryptedFiles, path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to scan files: %w", err)
	}

	for _, path := range encryptedFiles {
		if err := v.decryptFile(path, identity); err != nil {
			return fmt.Errorf("failed to decrypt %s: %w", filepath.Base(path), err)
		}
	}

	os.Remove(filepath.Join(v.baseDir, markerFile))
	os.Remove(verifyPath)

	v.encrypted = false
	v.identity = nil
	v.recipient = nil
	return nil
}

// encryptFile encrypts a single file in place
func (v *Vault) encryptFile(path string, recipient *age.ScryptRecipient) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if isAgeEncrypted(data) {
		return nil
	}
	encrypted, err := encryptData(data, recipient)
	if err != nil {
		return err
	}
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, encrypted, 0644); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}

// decryptFile decrypts a single file in place
func (v *Vault) decryptFile(path string, identity *age.ScryptIdentity) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if !isAgeEncrypted(data) {
		return nil
	}
	decrypted, err := decryptData(data, identity)
	if err != nil {
		return err
	}
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, decrypted, 0644); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}

// rollbackEncryption decrypts any files already encrypted by a failed
// EnableEncryption run (best effort)
func (v *Vault) rollbackEncryption(paths []string, identity *age.ScryptIdentity) {
	for _, path := range paths {
		_ = v.decryptFile(path, identity)
	}
}

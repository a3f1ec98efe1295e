// Package backup serves archive download/restore and the encryption
// lifecycle endpoints for the plan data directory.
package backup

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"goalplan/internal/config"
	httputil "goalplan/internal/http"
	"goalplan/internal/services/storage"
	"goalplan/internal/services/store"
)

var (
	cfg       *config.Config
	vault     *storage.Vault
	planStore *store.PlanStore
)

// Initialize sets up the backup package with required dependencies
func Initialize(c *config.Config, v *storage.Vault, ps *store.PlanStore) {
	cfg = c
	vault = v
	planStore = ps
}

func HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func HandleKillServer(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("Server shutting down...\n"))
	log.Println("Received /killme request, shutting down")
	go func() {
		time.Sleep(100 * time.Millisecond)
		os.Exit(0)
	}()
}

func HandleBackup(w http.ResponseWriter, r *http.Request) {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("goalplan_backup_%s.zip", timestamp)

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))

	zw := zip.NewWriter(w)
	defer zw.Close()

	dataDir := cfg.DataDirectory
	err := filepath.Walk(dataDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		// Only plan JSON files belong in a backup; bookkeeping files and
		// temp files stay behind
		base := filepath.Base(path)
		if base == ".encrypted" || base == ".encryption-verify" {
			return nil
		}
		if !strings.HasSuffix(strings.ToLower(base), ".json") {
			return nil
		}

		relPath, err := filepath.Rel(dataDir, path)
		if err != nil {
			return err
		}

		f, err := zw.Create(relPath)
		if err != nil {
			return err
		}

		// Read via the vault so backups are always plaintext and portable
		file, err := vault.OpenFile(path)
		if err != nil {
			return err
		}
		defer file.Close()

		_, err = io.Copy(f, file)
		return err
	})

	if err != nil {
		log.Printf("Error creating backup: %v", err)
		// Headers are already written; nothing left to do but log
	}
}

func HandleRestore(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(50 << 20); err != nil {
		httputil.ErrorResponse(w, "File too large", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		httputil.ErrorResponse(w, "Error reading file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if !strings.HasSuffix(strings.ToLower(header.Filename), ".zip") {
		httputil.ErrorResponse(w, "Only ZIP backup files are allowed", http.StatusBadRequest)
		return
	}

	content, err := io.ReadAll(file)
	if err != nil {
		httputil.ErrorResponse(w, "Error reading file", http.StatusInternalServerError)
		return
	}

	zipReader, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		httputil.ErrorResponse(w, "Invalid ZIP file", http.StatusBadRequest)
		return
	}

	restoredCount := 0
	for _, zipFile := range zipReader.File {
		if zipFile.FileInfo().IsDir() {
			continue
		}
		if !strings.HasSuffix(strings.ToLower(zipFile.Name), ".json") {
			continue
		}

		// Use only the base name to prevent path traversal
		baseName := filepath.Base(zipFile.Name)
		if strings.Contains(baseName, "..") {
			continue
		}

		rc, err := zipFile.Open()
		if err != nil {
			log.Printf("Error opening zip entry %s: %v", zipFile.Name, err)
			continue
		}

		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			log.Printf("Error reading zip entry %s: %v", zipFile.Name, err)
			continue
		}

		// Restored content must be a valid JSON document before it can
		// replace plan state
		if !json.Valid(data) {
			log.Printf("Skipping zip entry %s: not valid JSON", zipFile.Name)
			continue
		}

		// Write via the vault so encryption re-applies when enabled
		destPath := filepath.Join(cfg.DataDirectory, baseName)
		if err := vault.WriteFile(destPath, data, 0644); err != nil {
			log.Printf("Error writing file %s: %v", destPath, err)
			continue
		}

		restoredCount++
		log.Printf("Restored file: %s", baseName)
	}

	if restoredCount == 0 {
		httputil.ErrorResponse(w, "No plan files found in backup", http.StatusBadRequest)
		return
	}

	// Reload in-memory state from the restored files
	if err := planStore.Load(); err != nil {
		log.Printf("Error reloading plan after restore: %v", err)
		httputil.ErrorResponse(w, "Restore succeeded but reload failed", http.StatusInternalServerError)
		return
	}

	log.Printf("Restore complete: %d files restored", restoredCount)
	httputil.JSON(w, http.StatusOK, map[string]int{"restored": restoredCount})
}

func HandleEncryptionStatus(w http.ResponseWriter, r *http.Request) {
	httputil.JSON(w, http.StatusOK, map[string]bool{
		"encrypted": vault.IsEncrypted(),
		"unlocked":  vault.IsUnlocked(),
	})
}

type passwordRequest struct {
	Password string `json:"password"`
}

func HandleEnableEncryption(w http.ResponseWriter, r *http.Request) {
	var req passwordRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.ErrorResponse(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := vault.EnableEncryption(req.Password); err != nil {
		httputil.ErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	log.Println("Encryption enabled for data directory")
	httputil.JSON(w, http.StatusOK, map[string]bool{"encrypted": true})
}

func HandleDisableEncryption(w http.ResponseWriter, r *http.Request) {
	var req passwordRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.ErrorResponse(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := vault.DisableEncryption(req.Password); err != nil {
		httputil.ErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	log.Println("Encryption disabled for data directory")
	httputil.JSON(w, http.StatusOK, map[string]bool{"encrypted": false})
}

func HandleUnlock(w http.ResponseWriter, r *http.Request) {
	var req passwordRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.ErrorResponse(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := vault.Unlock(req.Password); err != nil {
		httputil.ErrorResponse(w, err.Error(), http.StatusUnauthorized)
		return
	}

	// Plan state could not be read while locked
	if err := planStore.Load(); err != nil {
		log.Printf("Error loading plan after unlock: %v", err)
		httputil.ErrorResponse(w, "unlocked but plan load failed", http.StatusInternalServerError)
		return
	}

	httputil.JSON(w, http.StatusOK, map[string]bool{"unlocked": true})
}

func HandleLock(w http.ResponseWriter, r *http.Request) {
	vault.Lock()
	httputil.JSON(w, http.StatusOK, map[string]bool{"unlocked": false})
}

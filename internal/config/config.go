package config

import (
	"log"
	"os"
	"path/filepath"
)

// Config holds application configuration
type Config struct {
	// Server settings
	ListenAddr string `json:"listen_addr"`
	Debug      bool   `json:"debug"`

	// Directories
	DataDirectory   string `json:"data_directory"`
	BackupDirectory string `json:"backup_directory"`

	// File paths
	CatalogFile string `json:"catalog_file"` // empty means the embedded catalog
}

// DefaultConfig returns configuration with sensible defaults
func DefaultConfig() *Config {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}

	return &Config{
		ListenAddr:      ":8080",
		Debug:           false,
		DataDirectory:   filepath.Join(wd, "data"),
		BackupDirectory: filepath.Join(wd, "data", "backups"),
		CatalogFile:     "",
	}
}

// Load loads configuration from environment variables
func Load() *Config {
	cfg := DefaultConfig()

	if addr := os.Getenv("GOALPLAN_LISTEN_ADDR"); addr != "" {
		cfg.ListenAddr = addr
	}
	if debug := os.Getenv("GOALPLAN_DEBUG"); debug == "true" || debug == "1" {
		cfg.Debug = true
	}
	if dataDir := os.Getenv("GOALPLAN_DATA_DIR"); dataDir != "" {
		cfg.DataDirectory = dataDir
		cfg.BackupDirectory = filepath.Join(dataDir, "backups")
	}
	if catalog := os.Getenv("GOALPLAN_CATALOG_FILE"); catalog != "" {
		cfg.CatalogFile = catalog
	}

	cfg.ensureDirectories()

	return cfg
}

// ensureDirectories creates required directories if they don't exist
func (c *Config) ensureDirectories() {
	dirs := []string{
		c.DataDirectory,
		c.BackupDirectory,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Printf("Warning: could not create directory %s: %v", dir, err)
		}
	}
}

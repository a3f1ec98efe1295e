package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/term"

	"goalplan/internal/config"
	"goalplan/internal/handlers/backup"
	"goalplan/internal/handlers/plan"
	httputil "goalplan/internal/http"
	"goalplan/internal/services/marketdata"
	"goalplan/internal/services/storage"
	"goalplan/internal/services/store"
	"goalplan/internal/version"
)

func main() {
	initEncryption := flag.Bool("init-encryption", false, "encrypt the data directory and exit")
	showVersion := flag.Bool("version", false, "print version information and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Get().String())
		return
	}

	cfg := config.Load()

	vault, err := storage.Open(cfg.DataDirectory)
	if err != nil {
		log.Fatalf("Failed to open data directory: %v", err)
	}

	if *initEncryption {
		if err := runInitEncryption(vault); err != nil {
			log.Fatalf("Encryption setup failed: %v", err)
		}
		log.Println("Encryption enabled. Restart the server and unlock via the API.")
		return
	}

	catalog, err := marketdata.Load(cfg.CatalogFile)
	if err != nil {
		log.Fatalf("Failed to load market catalog: %v", err)
	}

	planStore := store.New(vault, cfg.DataDirectory)
	if vault.IsUnlocked() {
		if err := planStore.Load(); err != nil {
			log.Fatalf("Failed to load plan: %v", err)
		}
	} else {
		log.Println("Data directory is encrypted; unlock via POST /api/encryption/unlock")
	}

	plan.Initialize(planStore, catalog)
	backup.Initialize(cfg, vault, planStore)

	r := newRouter(vault)

	log.Printf("Starting Goal Planner on %s", cfg.ListenAddr)
	log.Printf("Data directory: %s", cfg.DataDirectory)
	if v := version.Get().Check(); v != "" {
		log.Println(v)
	}
	log.Fatal(http.ListenAndServe(cfg.ListenAddr, r))
}

func newRouter(vault *storage.Vault) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))

	// Reads fail while the vault is locked; surface that as 423 instead of
	// letting every handler discover it separately
	r.Use(requireUnlocked(vault))

	r.Get("/api/health", backup.HandleHealth)
	r.Get("/api/version", handleVersion)
	r.Get("/killme", backup.HandleKillServer)

	r.Route("/api/profile", func(r chi.Router) {
		r.Get("/", plan.HandleGetProfile)
		r.Put("/", plan.HandlePutProfile)
	})

	r.Route("/api/goals", func(r chi.Router) {
		r.Get("/", plan.HandleListGoals)
		r.Post("/", plan.HandleCreateGoal)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", plan.HandleGetGoal)
			r.Put("/", plan.HandleUpdateGoal)
			r.Delete("/", plan.HandleDeleteGoal)
			r.Get("/metrics", plan.HandleGoalMetrics)
			r.Get("/allocation", plan.HandleGoalAllocation)
			r.Get("/scenarios", plan.HandleGoalScenarios)
			r.Get("/scenarios/{kind}", plan.HandleGoalScenario)
		})
	})

	r.Get("/api/plan/health", plan.HandleFinancialHealth)
	r.Get("/api/templates", plan.HandleGoalTemplates)
	r.Get("/api/market", plan.HandleMarketData)
	r.Get("/api/export", plan.HandleExport)

	r.Get("/api/backup", backup.HandleBackup)
	r.Post("/api/restore", backup.HandleRestore)

	r.Route("/api/encryption", func(r chi.Router) {
		r.Get("/status", backup.HandleEncryptionStatus)
		r.Post("/enable", backup.HandleEnableEncryption)
		r.Post("/disable", backup.HandleDisableEncryption)
		r.Post("/unlock", backup.HandleUnlock)
		r.Post("/lock", backup.HandleLock)
	})

	return r
}

// lockExempt lists paths that must work while the vault is locked
var lockExempt = map[string]bool{
	"/api/health":             true,
	"/api/version":            true,
	"/api/encryption/status":  true,
	"/api/encryption/unlock":  true,
	"/api/encryption/disable": true,
	"/killme":                 true,
}

func requireUnlocked(vault *storage.Vault) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !vault.IsUnlocked() && !lockExempt[r.URL.Path] {
				httputil.ErrorResponse(w, "data directory is locked", http.StatusLocked)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func handleVersion(w http.ResponseWriter, r *http.Request) {
	httputil.JSON(w, http.StatusOK, version.Get())
}

// runInitEncryption prompts for a password twice and encrypts the data
// directory in place
func runInitEncryption(vault *storage.Vault) error {
	if vault.IsEncrypted() {
		return fmt.Errorf("data directory is already encrypted")
	}

	fmt.Print("Enter encryption password (min 8 characters): ")
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}

	fmt.Print("Confirm password: ")
	confirm, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}

	if string(password) != string(confirm) {
		return fmt.Errorf("passwords do not match")
	}

	return vault.EnableEncryption(string(password))
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/jafarshop/storeconnect/internal/config"
	"github.com/jafarshop/storeconnect/internal/domain"
	"github.com/jafarshop/storeconnect/internal/kvstore"
	"github.com/jafarshop/storeconnect/internal/template"
)

func main() {
	force := len(os.Args) > 1 && os.Args[1] == "--force"

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	kv, err := kvstore.NewFileStore(afero.NewOsFs(), cfg.DataDir, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open data directory: %v\n", err)
		os.Exit(1)
	}

	store := template.NewStore(kv, logger)

	if store.Seeded() && !force {
		fmt.Println("Templates already seeded. Re-run with --force to overwrite with the built-in defaults.")
		os.Exit(1)
	}

	set, err := store.ResetAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to seed templates: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Seeded %d message templates into %s:\n\n", len(set), cfg.DataDir)
	for _, status := range domain.AllOrderStatuses {
		tmpl := set[status]
		state := "disabled"
		if tmpl.Enabled {
			state = "enabled"
		}
		fmt.Printf("  %-12s %-8s %s\n", status, state, tmpl.Subject)
	}
}

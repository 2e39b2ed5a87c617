package main

import (
	"log"
	"log/slog"
	"os"

	"medimatch/internal/app"
	"medimatch/internal/config"
	"medimatch/internal/util"
	"medimatch/pkg/catalog"
	"medimatch/pkg/credcache"
	"medimatch/pkg/store"
)

func main() {
	cfgPath := ""
	if len(os.Args) > 1 {
		cfgPath = os.Args[1]
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	util.InitLogger(cfg.LogLevel)

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		log.Fatalf("failed to load catalog: %v", err)
	}
	slog.Info("catalog loaded", "entries", cat.Len())

	dataStore, err := store.NewGormStore(cfg.DatabasePath, store.WithResetOnOpen(cfg.ResetOnStart))
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer dataStore.Close()

	cache, err := credcache.NewFileCache(cfg.CredentialCachePath)
	if err != nil {
		log.Fatalf("failed to init credential cache: %v", err)
	}

	core, err := app.New(app.Config{
		Catalog: cat,
		Store:   dataStore,
		Cache:   cache,
	})
	if err != nil {
		log.Fatalf("failed to init app: %v", err)
	}

	runShell(core)
}

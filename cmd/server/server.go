package main

import (
	"fmt"
	"io/fs"
	"log"
	"net/http"

	"ygodeck"
	"ygodeck/internal/archive"
	"ygodeck/internal/catalog"
	"ygodeck/internal/config"
	"ygodeck/internal/deck"
	"ygodeck/internal/handlers"
	"ygodeck/internal/store"
)

// App is the wired web UI
type App struct {
	Handler http.Handler
	Model   *deck.Model
	Bus     *handlers.EventBus

	kv store.KV
}

// SetupServer wires storage, the catalog client and the router from cfg
func SetupServer(cfg *config.Config) (*App, error) {
	kv, err := store.Open(cfg.Storage.Backend, cfg.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.Storage.Backend, err)
	}
	log.Printf("💾 Using %s storage %s", cfg.Storage.Backend, cfg.Storage.Path)

	bus := handlers.NewEventBus()
	model := deck.NewModel(store.NewDeckStore(kv), deck.WithNotifier(bus))

	client := catalog.New(catalog.Options{
		BaseURL:   cfg.Catalog.BaseURL,
		Timeout:   cfg.Catalog.Timeout,
		RateLimit: cfg.Catalog.RateLimit,
		Burst:     cfg.Catalog.RateLimitBurst,
		UserAgent: cfg.Catalog.UserAgent,
	})
	fetcher := archive.NewHTTPFetcher(cfg.Images.Timeout, cfg.Images.RateLimit, cfg.Catalog.UserAgent)

	static, err := fs.Sub(ygodeck.StaticFS, "static")
	if err != nil {
		kv.Close()
		return nil, fmt.Errorf("static assets: %w", err)
	}

	h := handlers.New(model, bus, client, fetcher, cfg)
	router := handlers.SetupRouter(h, cfg, &handlers.RouterOptions{Static: static})

	return &App{Handler: router, Model: model, Bus: bus, kv: kv}, nil
}

// Close releases the deck store
func (a *App) Close() error {
	return a.kv.Close()
}

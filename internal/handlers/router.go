package handlers

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"ygodeck/internal/config"
	"ygodeck/internal/diag"
	localMiddleware "ygodeck/internal/middleware"
)

// RouterOptions allows customization of router setup for tests
type RouterOptions struct {
	DisableRateLimiting  bool
	DisableRequestLogger bool
	CustomMiddleware     []func(http.Handler) http.Handler
	Static               fs.FS // served under /static/, defaults to the static directory
}

// SetupRouter creates the application router with all routes and middleware
func SetupRouter(h *Handler, cfg *config.Config, opts *RouterOptions) *chi.Mux {
	if opts == nil {
		opts = &RouterOptions{}
	}

	static := http.FileServer(http.Dir("static"))
	if opts.Static != nil {
		static = http.FileServer(http.FS(opts.Static))
	}

	r := chi.NewRouter()

	if !opts.DisableRequestLogger {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Recoverer)
	r.Use(localMiddleware.RequestSizeLimiter(cfg.Server.MaxRequestSize))
	r.Use(localMiddleware.SecurityHeaders())

	if !opts.DisableRateLimiting && cfg.Server.RateLimit > 0 {
		rateLimiter := localMiddleware.NewRateLimiter(cfg.Server.RateLimit, cfg.Server.RateLimitBurst)
		r.Use(rateLimiter.Middleware())
	}

	for _, mw := range opts.CustomMiddleware {
		r.Use(mw)
	}

	searchOnce := localMiddleware.Exclusive("search", diag.MsgSearchBusy)
	imagesOnce := localMiddleware.Exclusive("images", diag.MsgDownloadBusy)

	// Long-lived streams and downloads run without the request timeout
	r.Get("/sse/deck", ValidateSignals(h.StreamDeck))
	r.Method(http.MethodGet, "/deck/images.zip", imagesOnce(http.HandlerFunc(h.DownloadImages)))
	r.Method(http.MethodGet, "/search", searchOnce(ValidateSignals(h.Search)))

	r.Group(func(r chi.Router) {
		if cfg.Server.RequestTimeout > 0 {
			r.Use(middleware.Timeout(cfg.Server.RequestTimeout))
		}

		r.Handle("/static/*", http.StripPrefix("/static/", static))

		r.Get("/", h.Home)
		r.Get("/card/{id}", ValidateSignals(h.CardDetails))
		r.Get("/card/{id}/image", h.CardImage)

		r.Post("/deck/add/{id}", h.AddCard)
		r.Post("/deck/mode/{mode}", h.SetMode)
		r.Post("/deck/qty/{index}/{op}", h.ChangeQty)
		r.Post("/deck/remove/{index}", h.RemoveEntry)
		r.Post("/deck/clear", h.ClearDeck)

		r.Get("/deck/export.txt", h.ExportText)
		r.Get("/deck/export.json", h.ExportJSON)
		r.Get("/deck/qr.png", h.ExportQR)
	})

	r.Get("/health/live", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Get("/health/ready", func(w http.ResponseWriter, r *http.Request) {
		if h.deck == nil || h.catalog == nil {
			http.Error(w, "Not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}

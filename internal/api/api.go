package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/susu3304/geoguess/internal/config"
	"github.com/susu3304/geoguess/internal/guess"
	"github.com/susu3304/geoguess/internal/logging"
	"github.com/susu3304/geoguess/internal/metrics"
)

type API struct {
	router  *mux.Router
	service *guess.Service
	config  *config.Config
	server  *http.Server
}

func New(cfg *config.Config, svc *guess.Service) *API {
	api := &API{
		router:  mux.NewRouter(),
		service: svc,
		config:  cfg,
	}

	api.setupRoutes()
	return api
}

func (a *API) setupRoutes() {
	a.router.Use(metrics.Middleware)

	a.router.HandleFunc("/", a.handleHome).Methods("GET")
	a.router.HandleFunc("/health", a.handleHealth).Methods("GET")
	a.router.Handle("/metrics", metrics.Handler()).Methods("GET")

	// Game endpoints
	a.router.HandleFunc("/random-location", a.handleRandomLocation).Methods("GET")
	a.router.HandleFunc("/guess", a.handleGuess).Methods("POST")
	a.router.HandleFunc("/street-view-url", a.handleStreetViewURL).Methods("GET")

	a.router.NotFoundHandler = http.HandlerFunc(a.handleNotFound)
	a.router.MethodNotAllowedHandler = http.HandlerFunc(a.handleMethodNotAllowed)
}

// Handler returns the router wrapped in CORS, panic recovery, access logging
// and request ids, outermost last.
func (a *API) Handler() http.Handler {
	corsOptions := cors.Options{
		AllowedOrigins: a.config.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
	}

	var h http.Handler = a.router
	h = cors.New(corsOptions).Handler(h)
	h = a.recoverer(h)
	h = accessLog(h)
	h = requestID(h)
	return h
}

// Start serves until Shutdown is called.
func (a *API) Start() error {
	a.server = &http.Server{
		Addr:              a.config.WebBind,
		Handler:           a.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	logging.Info("API server listening", "addr", "http://"+a.config.WebBind)
	if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests.
func (a *API) Shutdown(ctx context.Context) error {
	if a.server == nil {
		return nil
	}
	return a.server.Shutdown(ctx)
}

package router

import (
	"net/http"

	_ "pet-health-log/internal/docs"
	"pet-health-log/internal/domain/pets"
	"pet-health-log/internal/domain/profiles"
	"pet-health-log/internal/middleware"
	"pet-health-log/internal/platform/logger"
	"pet-health-log/internal/ports/store"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Store es obligatorio (memory, postgres, sqlite o rest; lo arma cmd/).
	Store store.Client

	// Logger puede ser nil (no loguea).
	Logger logger.Logger
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Services por módulo
	petsSvc := pets.NewService(opts.Store, log)
	profilesSvc := profiles.NewService(opts.Store, log)

	// Rutas por módulo
	pets.RegisterRoutes(r, petsSvc)
	profiles.RegisterRoutes(r, profilesSvc)

	return r
}

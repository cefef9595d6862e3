package server

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"peopledir/internal/config"
	"peopledir/internal/handlers"
	"peopledir/internal/middlewares"
	"peopledir/internal/query"
	"peopledir/internal/repositories"
	"peopledir/internal/routes"
	"peopledir/internal/services"
)

// New wires the application onto a gin engine and returns the configured
// HTTP server.
func New(cfg *config.Config, pool *pgxpool.Pool, log zerolog.Logger) *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      NewRouter(cfg, pool, log),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}
}

// NewRouter builds the gin engine with all middleware and routes attached.
// Integration tests drive it directly without binding a port.
func NewRouter(cfg *config.Config, pool *pgxpool.Pool, log zerolog.Logger) *gin.Engine {
	if cfg.Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middlewares.RequestID())
	router.Use(middlewares.RequestLogger(log))
	router.Use(gin.Recovery())
	router.Use(cors.New(corsConfig(cfg.Server.CORSOrigins)))

	limits := query.Limits{
		DefaultPerPage: cfg.API.DefaultPerPage,
		MaxPerPage:     cfg.API.MaxPerPage,
	}

	// Dependency injection
	personRepo := repositories.NewPersonRepository(pool)
	addressRepo := repositories.NewAddressRepository(pool)
	phoneRepo := repositories.NewPhoneRepository(pool)

	personService := services.NewPersonService(personRepo)
	addressService := services.NewAddressService(addressRepo, personRepo)
	phoneService := services.NewPhoneService(phoneRepo, personRepo)

	personHandler := handlers.NewPersonHandler(personService, limits, log)
	addressHandler := handlers.NewAddressHandler(addressService, limits, log)
	phoneHandler := handlers.NewPhoneHandler(phoneService, limits, log)

	routes.RegisterRoutes(router, personHandler, addressHandler, phoneHandler)

	return router
}

func corsConfig(origins string) cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", middlewares.RequestIDHeader}

	var allowed []string
	for _, origin := range strings.Split(origins, ",") {
		origin = strings.TrimSpace(origin)
		if origin == "*" {
			corsCfg.AllowAllOrigins = true
			return corsCfg
		}
		if origin != "" {
			allowed = append(allowed, origin)
		}
	}
	corsCfg.AllowOrigins = allowed

	return corsCfg
}

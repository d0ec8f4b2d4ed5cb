package httpserver

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"errorviews/internal/middleware"
	"errorviews/internal/model"
	"errorviews/internal/resolver"
	resolverHTTP "errorviews/internal/resolver/delivery/http"
	"errorviews/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Error resolution
	profile  model.Profile
	resolver ResolverConfig
	state    resolver.State

	// Built by setupResolverDomain
	resolverHandler resolverHTTP.Handler
	mw              middleware.Middleware

	rateLimitPerMin int
}

// ResolverConfig configures the mapping table and the views the resolver renders.
type ResolverConfig struct {
	Enabled            bool
	MappingsFile       string
	DatabaseView       string
	ExceptionAttribute string
	DefaultErrorView   string
	StatusCodes        map[string]int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Profile  model.Profile
	Resolver ResolverConfig

	// Admin toggle rate limit per client IP
	RateLimitPerMin int
}

// New creates a new HTTPServer instance with every route mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		profile:         cfg.Profile,
		resolver:        cfg.Resolver,
		rateLimitPerMin: cfg.RateLimitPerMin,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	ctx := context.Background()
	srv.logRoutes(ctx)

	if err := srv.setupResolverDomain(ctx); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if !srv.profile.Strategy.Valid() {
		return errors.New("profile strategy is invalid")
	}
	if !srv.profile.Source.Valid() {
		return errors.New("mapping source is invalid")
	}
	return nil
}

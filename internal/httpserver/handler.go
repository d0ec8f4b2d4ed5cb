package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"errorviews/internal/model"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

// registerMiddlewares installs, outermost first: recovery, request attributes, the
// default error page, the broken filter and the engine-level resolver.
func (srv HTTPServer) registerMiddlewares() {
	h := srv.resolverHandler

	srv.gin.Use(
		h.Recovery(),
		srv.mw.RequestID(),
		srv.mw.Diagnostics(),
		h.ErrorPage(),
		srv.mw.BrokenFilter(),
	)

	// Global advice resolves every route with exception handlers in scope.
	// Otherwise the engine only applies status declarations and the mapping table.
	if srv.profile.Strategy.Global() {
		srv.gin.Use(h.Advice())
	} else {
		srv.gin.Use(h.Resolve())
	}

	srv.gin.NoRoute(h.NoRoute)

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "Resolver strategy: %s (production)", srv.profile.Strategy)
	} else {
		srv.l.Infof(ctx, "Resolver strategy: %s (%s)", srv.profile.Strategy, srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()
	root := &srv.gin.RouterGroup

	srv.setupPageDomain(ctx, root)
	srv.setupShopDomain(ctx, root)
	srv.setupResolverRoutes(ctx, root)

	return nil
}

// logRoutes sends gin's route registration output through the service logger.
func (srv HTTPServer) logRoutes(ctx context.Context) {
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {
		srv.l.Debugf(ctx, "Route %-6s %-45s --> %s (%d handlers)", httpMethod, absolutePath, handlerName, nuHandlers)
	}
}

// Handler exposes the engine, for tests and embedding.
func (srv HTTPServer) Handler() *gin.Engine {
	return srv.gin
}

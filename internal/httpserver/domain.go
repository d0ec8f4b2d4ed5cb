package httpserver

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"errorviews/internal/middleware"
	"errorviews/internal/model"
	"errorviews/internal/page"
	"errorviews/internal/resolver"
	resolverHTTP "errorviews/internal/resolver/delivery/http"
	"errorviews/internal/resolver/mapping"
	resolverUC "errorviews/internal/resolver/usecase"
	shopHTTP "errorviews/internal/shop/delivery/http"
)

// setupResolverDomain builds the resolver from configuration: state, mapping table,
// policy, use case and its HTTP handler. The request middlewares share its state.
func (srv *HTTPServer) setupResolverDomain(ctx context.Context) error {
	// 1. State and mapping table
	srv.state = resolver.NewState(srv.resolver.Enabled)
	table, err := mapping.Load(mapping.Options{
		Source:       srv.profile.Source,
		File:         srv.resolver.MappingsFile,
		DatabaseView: srv.resolver.DatabaseView,
	})
	if err != nil {
		return fmt.Errorf("httpserver.setupResolverDomain: %w", err)
	}

	// 2. Policy
	policy := resolver.DefaultPolicy()
	if srv.resolver.ExceptionAttribute != "" {
		policy.ExceptionAttribute = srv.resolver.ExceptionAttribute
	}
	for view, code := range srv.resolver.StatusCodes {
		policy.StatusCodes[view] = code
	}

	// 3. UseCase
	uc := resolverUC.New(srv.l, srv.state, table, policy)

	// 4. HTTP Handler and middlewares
	srv.resolverHandler = resolverHTTP.New(srv.l, uc, srv.resolver.DefaultErrorView)
	srv.mw = middleware.New(srv.l, srv.profile, srv.state, srv.rateLimitPerMin)

	srv.l.Infof(ctx, "Resolver domain registered: profile %s (%s), %d mappings, mapping table %s",
		srv.profile.ID(), srv.profile, table.Len(), model.SwitchState(srv.state.Enabled()))
	return nil
}

// setupShopDomain registers the demo controller. Exception handlers that are not global
// are scoped to its routes.
func (srv HTTPServer) setupShopDomain(ctx context.Context, rg *gin.RouterGroup) {
	h := shopHTTP.New(srv.l)

	var advice []gin.HandlerFunc
	if srv.profile.Strategy.Advice() && !srv.profile.Strategy.Global() {
		advice = append(advice, srv.resolverHandler.Advice())
	}
	shopHTTP.RegisterRoutes(rg, h, advice...)

	srv.l.Infof(ctx, "Shop domain registered (%d controller handlers)", len(advice))
}

func (srv HTTPServer) setupPageDomain(ctx context.Context, rg *gin.RouterGroup) {
	page.RegisterRoutes(rg, page.New(srv.l))
	srv.l.Infof(ctx, "Page domain registered")
}

func (srv HTTPServer) setupResolverRoutes(ctx context.Context, rg *gin.RouterGroup) {
	resolverHTTP.RegisterRoutes(rg, srv.resolverHandler, srv.mw.RateLimit())
	srv.l.Infof(ctx, "Resolver admin routes registered")
}

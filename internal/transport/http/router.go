package httptransport

import (
	"log/slog"

	"github.com/ErlanBelekov/wanderstore/internal/transport/http/handler"
	"github.com/ErlanBelekov/wanderstore/internal/transport/http/middleware"
	"github.com/ErlanBelekov/wanderstore/internal/transport/http/views"
	"github.com/gin-gonic/gin"
	sloggin "github.com/samber/slog-gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

type Handlers struct {
	Auth    *handler.AuthHandler
	Catalog *handler.CatalogHandler
	Cart    *handler.CartHandler
	Travel  *handler.TravelHandler
}

type RouterConfig struct {
	ServiceName string
	HSTS        bool
}

func NewRouter(cfg RouterConfig, logger *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Security(cfg.HSTS))
	r.Use(otelgin.Middleware(cfg.ServiceName))
	r.Use(sloggin.New(logger))
	r.Use(middleware.Metrics())

	r.SetHTMLTemplate(views.Templates())
	r.NoRoute(handler.NotFound)

	requireIdentity := middleware.RequireIdentity(verifier, logger)
	optionalIdentity := middleware.OptionalIdentity(verifier, logger)

	// Public auth pages
	r.GET("/login", optionalIdentity, h.Auth.LoginPage)
	r.POST("/login", h.Auth.Login)
	r.GET("/register", optionalIdentity, h.Auth.RegisterPage)
	r.POST("/register", h.Auth.Register)
	r.GET("/logout", h.Auth.Logout)

	// Catalogue, readable anonymously
	catalog := r.Group("", optionalIdentity)
	catalog.GET("/products", h.Catalog.List)
	catalog.GET("/product/:id", h.Catalog.Get)

	// Everything tied to an account
	private := r.Group("", requireIdentity)
	private.GET("/", h.Travel.Home)
	private.POST("/add", h.Travel.AddCountry)
	private.POST("/user", h.Auth.SwitchUser)
	private.POST("/new", h.Auth.NewMember)
	private.GET("/cart", h.Cart.View)
	private.POST("/cart/add", h.Cart.Add)

	return r
}

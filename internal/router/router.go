package router

import (
	"net/http"
	"time"

	docs "github.com/eventbudget/backend/api"
	"github.com/eventbudget/backend/internal/config"
	"github.com/eventbudget/backend/internal/controllers/healthz"
	"github.com/eventbudget/backend/internal/controllers/root"
	v1 "github.com/eventbudget/backend/internal/controllers/v1"
	"github.com/eventbudget/backend/internal/controllers/version"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// This is set at build time, see main.go.
var apiVersion = "0.0.0"

// SetVersion sets the version reported by the API.
func SetVersion(v string) {
	if v != "" {
		apiVersion = v
	}
}

type httpError struct {
	Error string `json:"error" example:"this HTTP method is not allowed for the endpoint you called"`
}

// Config sets up the router with all middlewares.
//
// The returned teardown function must be called when the router
// is not used anymore.
func Config(cfg *config.Config) (*gin.Engine, func(), error) {
	url := cfg.BaseURL()

	// Set up the router and middlewares
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(URLMiddleware(url))
	r.Use(MetricsMiddleware())
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, httpError{
			Error: "this HTTP method is not allowed for the endpoint you called",
		})
	})
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, logger zerolog.Logger) zerolog.Logger {
			return logger.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	// CORS settings
	if len(cfg.CORSAllowOrigins) > 0 {
		log.Debug().Strs("allowOrigins", cfg.CORSAllowOrigins).Msg("CORS")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORSAllowOrigins,
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(_, _, _ string, _ int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	log.Debug().Str("API Base URL", url.String()).Str("Host", url.Host).Str("Path", url.Path).Msg("Router")
	log.Info().Str("version", apiVersion).Msg("Router")

	docs.SwaggerInfo.Host = url.Host
	docs.SwaggerInfo.BasePath = url.Path
	docs.SwaggerInfo.Title = "Event Budget"
	docs.SwaggerInfo.Version = apiVersion
	docs.SwaggerInfo.Description = "Budget tracking for events: budgets, expenditures, transfers and reports."

	err := registerPrometheusMetrics()
	if err != nil {
		return nil, func() {}, err
	}

	teardown := func() {
		if !unregisterPrometheusMetrics() {
			log.Error().Msg("could not unregister prometheus metrics")
		}
	}

	return r, teardown, nil
}

// AttachRoutes attaches the API routes to the router group that is passed in.
// Separating this from Config() allows us to attach it to different
// paths for different use cases.
func AttachRoutes(cfg *config.Config, group *gin.RouterGroup) {
	// Register versioned routes
	root.RegisterRoutes(group.Group(""))
	version.RegisterRoutes(group.Group("/version"), apiVersion)
	healthz.RegisterRoutes(group.Group("/healthz"))

	group.GET("/metrics", gin.WrapH(promhttp.Handler()))
	group.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// pprof performance profiles
	if cfg.EnablePprof {
		pprof.RouteRegister(group, "debug/pprof")
	}

	// API v1 setup
	v1Group := group.Group("/v1")
	v1.RegisterRootRoutes(v1Group.Group(""))
	v1.RegisterEventRoutes(v1Group.Group("/events"))
	v1.RegisterExpenditureRoutes(v1Group.Group("/expenditures"))
	v1.RegisterTransferRoutes(v1Group.Group("/transfers"))
	v1.RegisterSnapshotRoutes(v1Group.Group("/snapshot"))
	v1.RegisterImportRoutes(v1Group.Group("/import"))
	v1.RegisterExportRoutes(v1Group.Group("/export"), apiVersion)
}

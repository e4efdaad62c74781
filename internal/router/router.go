package router

import (
	"errors"
	"net/http"

	docs "github.com/fintrack-api/backend/api"
	"github.com/fintrack-api/backend/internal/auth"
	"github.com/fintrack-api/backend/internal/config"
	"github.com/fintrack-api/backend/internal/controllers/healthz"
	"github.com/fintrack-api/backend/internal/controllers/root"
	v1 "github.com/fintrack-api/backend/internal/controllers/v1"
	"github.com/fintrack-api/backend/internal/controllers/version"
	"github.com/fintrack-api/backend/internal/httputil"
	"github.com/fintrack-api/backend/internal/report"
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

// This is set at build time.
var apiVersion = "0.0.0"

var (
	errMethodNotAllowed = errors.New("this HTTP method is not allowed for the endpoint you called")
	errRouteNotFound    = errors.New("there is no endpoint at this path")
)

// Services are the dependencies of the API handlers.
type Services struct {
	Issuer  *auth.Issuer
	Google  auth.Provider
	Reports *report.Service
}

// Config creates the gin engine with all middlewares.
//
// The returned teardown function must be called when the engine is not
// used anymore, it unregisters the Prometheus metrics.
func Config(cfg config.Config) (*gin.Engine, func(), error) {
	r := gin.New()

	// Client IPs are only used for rate limiting, where the
	// connection address is the one to trust
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(URLMiddleware(cfg.APIURL))
	r.NoMethod(func(c *gin.Context) {
		httputil.NewError(c, http.StatusMethodNotAllowed, errMethodNotAllowed)
	})
	r.NoRoute(func(c *gin.Context) {
		httputil.NewError(c, http.StatusNotFound, errRouteNotFound)
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

	if err := registerPrometheusMetrics(); err != nil {
		return nil, func() {}, err
	}
	teardown := func() {
		unregisterPrometheusMetrics()
	}
	r.Use(MetricsMiddleware())

	if len(cfg.CORSAllowOrigins) > 0 {
		log.Debug().Strs("CORS Allowed Origins", cfg.CORSAllowOrigins).Msg("Router")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORSAllowOrigins,
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PATCH", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
			AllowCredentials: true,
		}))
	}

	if cfg.RateLimitRPS > 0 {
		log.Debug().Float64("rps", cfg.RateLimitRPS).Int("burst", cfg.RateLimitBurst).Msg("Rate limit")
		r.Use(RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst))
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy
	_ = r.SetTrustedProxies([]string{})

	if cfg.EnablePprof {
		pprof.Register(r, cfg.APIURL.Path+"/debug/pprof")
	}

	log.Debug().Str("API Base URL", cfg.APIURL.String()).Str("Host", cfg.APIURL.Host).Str("Path", cfg.APIURL.Path).Msg("Router")
	log.Info().Str("version", apiVersion).Msg("Router")

	docs.SwaggerInfo.Host = cfg.APIURL.Host
	docs.SwaggerInfo.BasePath = cfg.APIURL.Path
	docs.SwaggerInfo.Title = "FinTrack"
	docs.SwaggerInfo.Version = apiVersion
	docs.SwaggerInfo.Description = "The backend for FinTrack, a personal finance tracker with monthly reports."

	return r, teardown, nil
}

// AttachRoutes attaches the API routes to the router group that is passed in.
func AttachRoutes(group *gin.RouterGroup, s Services) {
	root.RegisterRoutes(group)
	version.RegisterRoutes(group.Group("/version"), apiVersion)
	healthz.RegisterRoutes(group.Group("/healthz"))

	group.GET("/metrics", gin.WrapH(promhttp.Handler()))
	group.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	co := v1.NewController(s.Issuer, s.Google, s.Reports)
	co.RegisterAuthRoutes(group.Group("/auth"))

	authed := group.Group("")
	authed.Use(auth.Middleware(s.Issuer))
	{
		v1.RegisterCategoryRoutes(authed.Group("/categories"))
		v1.RegisterTransactionRoutes(authed.Group("/transactions"))
		v1.RegisterBudgetRoutes(authed.Group("/budgets"))
		co.RegisterReportRoutes(authed.Group("/reports"))
	}
}

package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/fintrack-api/backend/internal/auth"
	"github.com/fintrack-api/backend/internal/config"
	"github.com/fintrack-api/backend/internal/models"
	"github.com/fintrack-api/backend/internal/report"
	"github.com/fintrack-api/backend/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

//	@title						FinTrack
//	@description				The backend for FinTrack, a personal finance tracker with monthly reports.
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and the API token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// gin uses debug as the default mode, the configuration
	// defaults to release for security reasons
	gin.SetMode(cfg.GinMode)

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	output := io.Writer(os.Stdout)
	if (cfg.LogFormat == "" && gin.IsDebugging()) || cfg.LogFormat == "human" {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	// Log lines are additionally written to a rotating file if configured
	if cfg.LogFile != "" {
		output = io.MultiWriter(output, &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    100,
			MaxAge:     7,
			MaxBackups: 3,
			Compress:   true,
		})
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	if dsn := cfg.PostgresDSN(); dsn != "" {
		err = models.ConnectPostgres(dsn)
	} else {
		// Create data directory
		err = os.MkdirAll(filepath.Dir(cfg.DatabaseDSN), os.ModePerm)
		if err != nil {
			log.Fatal().Msg(err.Error())
		}

		err = models.Connect(cfg.DatabaseDSN)
	}
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	r, teardown, err := router.Config(cfg)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	defer teardown()

	router.AttachRoutes(r.Group(cfg.APIURL.Path), router.Services{
		Issuer:  auth.NewIssuer(cfg.JWTSecret, cfg.JWTExpiresIn),
		Google:  auth.NewGoogle(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURI),
		Reports: report.NewService(report.NewGormStore(models.DB), report.WithTimeout(cfg.ReportTimeout)),
	})

	if err := r.Run(); err != nil {
		log.Error().Msg(err.Error())
	}
}

package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	v1 "github.com/riven-app/backend/internal/controllers/v1"
	"github.com/riven-app/backend/internal/ledger"
	"github.com/riven-app/backend/internal/models"
	"github.com/riven-app/backend/internal/rates"
	"github.com/riven-app/backend/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	// Create data directory
	dataDir := filepath.Join(".", "data")
	err := os.MkdirAll(dataDir, os.ModePerm)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Connect to the database and migrate the schema
	err = models.Connect("data/riven.db")
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	engine := ledger.New(models.DB)
	provider := rates.NewMonobankClient()

	// Pull current quotes once at startup. Provider failures are
	// logged and the defaults stay in effect.
	err = engine.RefreshRates(context.Background(), provider)
	if err != nil {
		log.Error().Err(err).Msg("startup rate refresh failed")
	}

	// Re-pull quotes periodically when an interval is configured,
	// e.g. RATE_REFRESH_INTERVAL=1h
	if interval, ok := os.LookupEnv("RATE_REFRESH_INTERVAL"); ok {
		duration, err := time.ParseDuration(interval)
		if err != nil {
			log.Fatal().Str("RATE_REFRESH_INTERVAL", interval).Msg(err.Error())
		}

		go func() {
			for range time.Tick(duration) {
				err := engine.RefreshRates(context.Background(), provider)
				if err != nil {
					log.Error().Err(err).Msg("periodic rate refresh failed")
				}
			}
		}()
	}

	r, teardown, err := router.Config()
	defer teardown()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	router.AttachRoutes(v1.NewController(engine, provider), r.Group("/"))

	if err := r.Run(); err != nil {
		log.Fatal().Msg(err.Error())
	}
}

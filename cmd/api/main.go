package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/beacondev/echobridge/pkg/alexa"
	"github.com/beacondev/echobridge/pkg/api"
	"github.com/beacondev/echobridge/pkg/cache"
	"github.com/beacondev/echobridge/pkg/control"
	"github.com/beacondev/echobridge/pkg/db"
	"github.com/beacondev/echobridge/pkg/resolve"
	"github.com/beacondev/echobridge/pkg/schema"

	_ "github.com/beacondev/echobridge/docs"
)

// @title           EchoBridge API
// @version         1.0
// @description     REST bridge for smart home control through an Alexa-compatible upstream

// @host      localhost:8080
// @BasePath  /api/v1
// @schemes   http https

func main() {
	// Configure logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Session credentials may come from a local .env file
	_ = godotenv.Load()

	// Parse flags
	dbPath := flag.String("db", "", "Path to database file (default: ~/.config/echobridge/echobridge.db)")
	baseURL := flag.String("base-url", "", "Upstream API base URL (default: "+alexa.DefaultBaseURL+")")
	strict := flag.Bool("strict", false, "Error on ambiguous device selection instead of picking the first match")
	flag.Parse()

	ctx := context.Background()

	// Open database
	database, err := db.Open(*dbPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}
	defer func() {
		if err := database.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close database")
		}
	}()

	log.Info().Str("path", database.Path()).Msg("Database opened")

	// Run migrations
	if err := database.Migrate(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to run database migrations")
	}

	// Bootstrap if needed (first run)
	needsBootstrap, err := database.NeedsBootstrap(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to check bootstrap status")
	}
	if needsBootstrap {
		log.Info().Msg("First run detected, bootstrapping database...")
		if err := database.Bootstrap(ctx); err != nil {
			log.Fatal().Err(err).Msg("Failed to bootstrap database")
		}
		log.Info().Msg("Database bootstrapped successfully")
	}

	// Load configuration
	cfg, err := database.ActiveConfig(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log.Info().
		Str("profile", cfg.Profile.Name).
		Str("timezone", cfg.Timezone()).
		Str("api_address", cfg.APIAddress()).
		Msg("Configuration loaded")

	// Upstream client. Missing credentials are not fatal: the health
	// endpoint reports them and every upstream call fails cleanly.
	creds := alexa.CredentialsFromEnv()
	if !creds.Valid() {
		log.Warn().Msg("Upstream credentials not configured; set " + alexa.EnvCookie + " and " + alexa.EnvCSRF)
	}
	client := alexa.NewClient(*baseURL, creds, cache.New(cache.DefaultTTL))

	policy := resolve.AutoSelectFirst
	if *strict {
		policy = resolve.ErrorOnAmbiguous
	}
	resolver := resolve.New(client, policy)

	dayStart, dayEnd := cfg.DayWindow()
	dispatcher := control.New(client, resolver, control.Config{
		Timezone:     cfg.Timezone(),
		Sender:       cfg.AnnounceSender(),
		DayStartHour: dayStart,
		DayEndHour:   dayEnd,
	})

	validator := schema.NewValidator()

	// Create and start API router
	router := api.NewRouter(dispatcher, validator, database)

	// Handle shutdown gracefully
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Info().Msg("Shutting down...")
		if err := database.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close database")
		}
		os.Exit(0)
	}()

	// Start server
	addr := cfg.APIAddress()
	log.Info().Str("address", addr).Msg("Starting API server")

	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}

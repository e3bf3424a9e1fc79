package main

import (
	"context"
	"flag"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/beacondev/echobridge/pkg/alexa"
	"github.com/beacondev/echobridge/pkg/cache"
	"github.com/beacondev/echobridge/pkg/control"
	"github.com/beacondev/echobridge/pkg/db"
	bridgemcp "github.com/beacondev/echobridge/pkg/mcp"
	"github.com/beacondev/echobridge/pkg/resolve"
	"github.com/beacondev/echobridge/pkg/schema"
)

func main() {
	// Logging must go to stderr — stdout is the MCP transport
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

	// Upstream client and control stack
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

	// Create and start MCP server
	mcpServer := bridgemcp.NewServer(dispatcher, validator)

	log.Info().Msg("Starting MCP server on stdio")

	if err := mcpServer.ServeStdio(); err != nil {
		log.Fatal().Err(err).Msg("MCP server failed")
	}
}

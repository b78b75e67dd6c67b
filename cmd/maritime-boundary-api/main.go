package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"runtime/debug"

	"github.com/go-chi/chi/v5"
	"github.com/oceanbound/maritime-boundary-api/internal/pkg/application/boundaries"
	"github.com/oceanbound/maritime-boundary-api/internal/pkg/application/detection"
	"github.com/oceanbound/maritime-boundary-api/internal/pkg/infrastructure/logging"
	"github.com/oceanbound/maritime-boundary-api/internal/pkg/infrastructure/repositories/database"
	boundariesdb "github.com/oceanbound/maritime-boundary-api/internal/pkg/infrastructure/repositories/database/boundaries"
	"github.com/oceanbound/maritime-boundary-api/internal/pkg/infrastructure/router"
	"github.com/oceanbound/maritime-boundary-api/internal/pkg/infrastructure/tracing"
	"github.com/oceanbound/maritime-boundary-api/internal/pkg/presentation/api"
	"github.com/oceanbound/maritime-boundary-api/internal/pkg/presentation/gui"
	"github.com/rs/zerolog"
)

const serviceName string = "maritime-boundary-api"

func main() {
	serviceVersion := version()

	ctx, logger := logging.NewLogger(context.Background(), serviceName, serviceVersion)
	logger.Info().Msg("starting up ...")

	cleanup, err := tracing.Init(ctx, logger, serviceName, serviceVersion)
	exitIf(err, logger, "failed to init tracing")
	defer cleanup()

	devMode := flag.Bool("devmode", false, "run with an in memory database")
	configFilePath := flag.String("config", envOrDefault("CONFIG_FILE", ""), "path to the detection configuration file")
	flag.Parse()

	cfg, err := loadDetectionConfig(*configFilePath)
	exitIf(err, logger, "failed to load detection configuration")

	connector := database.NewPostgreSQLConnector(ctx, database.LoadConfigFromEnv())
	if *devMode {
		logger.Warn().Msg("devmode enabled, using in memory database")
		connector = database.NewSQLiteConnector(ctx)
	}

	repository, err := boundariesdb.NewRepository(connector)
	exitIf(err, logger, "failed to connect to database")

	svc := boundaries.New(detection.New(cfg), repository)

	r := setupRouter(ctx, serviceName, svc)

	port := envOrDefault("SERVICE_PORT", "8080")
	logger.Info().Str("port", port).Msg("listening for incoming connections")

	err = http.ListenAndServe(":"+port, r)
	exitIf(err, logger, "failed to start request router")
}

func setupRouter(ctx context.Context, serviceName string, svc boundaries.BoundaryService) *chi.Mux {
	r := router.New(serviceName)

	log := logging.GetLoggerFromContext(ctx)
	gui.RegisterHandlers(log, r, svc)

	return api.RegisterHandlers(ctx, r, svc)
}

func loadDetectionConfig(path string) (*detection.Config, error) {
	if path == "" {
		return detection.DefaultConfig(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", path, err)
	}

	return detection.NewConfig(f)
}

func version() string {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}

	infoMap := map[string]string{}
	for _, s := range buildInfo.Settings {
		infoMap[s.Key] = s.Value
	}

	sha := infoMap["vcs.revision"]
	if infoMap["vcs.modified"] == "true" {
		sha += "+"
	}

	if sha == "" {
		sha = "unknown"
	}

	return sha
}

func envOrDefault(name, defaultValue string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return defaultValue
}

func exitIf(err error, logger zerolog.Logger, msg string) {
	if err != nil {
		logger.Fatal().Err(err).Msg(msg)
	}
}

// README: Entry point; loads config, wires the pipeline, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"wayfarer/internal/ai"
	"wayfarer/internal/config"
	httptransport "wayfarer/internal/http"
	"wayfarer/internal/infra"
	"wayfarer/internal/maps"
	"wayfarer/internal/modules/briefing"
	"wayfarer/internal/modules/conversation"
	"wayfarer/internal/prompt"
	"wayfarer/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := infra.NewLogger(cfg.Env)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Firebase.ProjectID == "" {
		logger.Fatal("WAYFARER_FIREBASE_PROJECT is required")
	}
	verifier, err := infra.NewFirebaseVerifier(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsFile)
	if err != nil {
		logger.Fatal("firebase init", zap.Error(err))
	}

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		logger.Fatal("postgres init", zap.Error(err))
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	compiler := buildCompiler(cfg.Maps.APIKey, logger)

	generator, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey, cfg.AI.Model)
	if err != nil {
		logger.Fatal("gemini init", zap.Error(err))
	}
	defer generator.Close()

	template, err := prompt.LoadTemplate(cfg.Prompt.TemplatePath)
	if err != nil {
		logger.Fatal("template load", zap.Error(err))
	}

	convoSvc := conversation.NewService(
		conversation.NewStore(dbPool),
		conversation.NewHistoryStore(redisClient),
	)

	planner := service.NewPlanner(compiler, generator, convoSvc, template, logger)

	srv := httptransport.NewServer(httptransport.ServerDeps{
		Planner:  planner,
		Verifier: verifier,
		Logger:   logger,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: srv.Routes()}

	go func() {
		<-ctx.Done()
		_ = server.Shutdown(context.Background())
	}()

	logger.Info("listening", zap.String("addr", cfg.HTTP.Addr))
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server", zap.Error(err))
	}
}

// buildCompiler wires the full context pipeline when a Maps key is configured
// and falls back to the unconfigured compiler otherwise. The unconfigured
// compiler never touches the network.
func buildCompiler(apiKey string, logger *zap.Logger) *briefing.Compiler {
	if apiKey == "" {
		logger.Warn("GOOGLE_MAPS_API_KEY not set, destination context disabled")
		return briefing.NewUnconfiguredCompiler(logger)
	}
	client, err := maps.NewClient(apiKey)
	if err != nil {
		logger.Warn("maps client init failed, destination context disabled", zap.Error(err))
		return briefing.NewUnconfiguredCompiler(logger)
	}

	limits := briefing.DefaultLimits()
	geo := maps.NewGeocodingService(client, logger)
	places := maps.NewPlacesService(client, logger)
	finder := briefing.NewAttractionFinder(geo, places, limits, logger)
	recommender := briefing.NewRestaurantRecommender(places, limits, logger)
	return briefing.NewCompiler(places, finder, recommender, logger)
}

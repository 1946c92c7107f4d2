package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"ngram-go/internal/config"
	"ngram-go/internal/controller"
	"ngram-go/internal/handler"
	"ngram-go/internal/service"
	"ngram-go/pkg/mcp"
)

func main() {
	var appConfigPath = flag.String("app", "app.yaml", "Path to app configuration file")
	var demo = flag.Bool("demo", false, "Run the eager vs lazy generation demo and exit")
	flag.Parse()

	if *demo {
		GramDemo()
		return
	}

	cfgZap := zap.NewProductionConfig()
	cfgZap.Level.SetLevel(zapcore.DebugLevel)
	cfgZap.OutputPaths = []string{"stdout", "all.log"}
	logger, err := cfgZap.Build()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	defer logger.Sync()

	cfg, err := config.LoadConfig(*appConfigPath)
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	logger.Info("Configuration loaded successfully", zap.Any("config", cfg))

	gramService := service.NewGramService(
		cfg.NGram.NRange,
		cfg.NGram.Delimiter,
		cfg.App.NumRowWorkers,
		logger,
	)
	logger.Info("N-gram service initialized",
		zap.Ints("n_range", cfg.NGram.NRange),
		zap.Int("row_workers", cfg.App.NumRowWorkers))

	gramController := controller.NewGramController(gramService, logger)
	mcpServer := mcp.NewGramServer(gramService, cfg, logger)

	router := handler.SetupRouter(gramController, mcpServer, logger)

	logger.Info("Starting server", zap.Int("port", cfg.App.Port))
	if err := http.ListenAndServe(fmt.Sprintf(":%d", cfg.App.Port), router); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"rivermarsh-server/internal/engine"
	"rivermarsh-server/internal/env"
	"rivermarsh-server/internal/infrastructure/manifest"
	"rivermarsh-server/internal/server"
	"rivermarsh-server/internal/version"
	"rivermarsh-server/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	var seed int64
	var biome string
	var manifestPath string
	flag.Int64Var(&seed, "seed", 0, "Master world seed (0 for random)")
	flag.StringVar(&biome, "biome", "marsh", "Starting biome (marsh, forest, desert, tundra, savanna, mountain, scrubland)")
	flag.StringVar(&manifestPath, "manifest", "", "Path to a species manifest extending the built-in catalog")
	flag.Parse()

	logger.Log.Info("Starting Rivermarsh...")
	logger.Log.Info(version.String())

	cfg := engine.NewConfig()
	cfg.Biome = env.BiomeType(biome)
	if seed != 0 {
		cfg.Seed = seed
		logger.Log.Infof("🎲 Using explicit Master Seed: %d", seed)
	} else {
		logger.Log.Infof("🎲 Using random Master Seed: %d", cfg.Seed)
	}

	port := os.Getenv("RM_PORT")
	if port == "" {
		port = "8080"
	}

	// 2. Инициализация ядра с конфигом
	svc, err := engine.NewService(cfg)
	if err != nil {
		logger.Log.Fatal("Service init error: ", err)
	}

	if manifestPath != "" {
		if err := manifest.Load(manifestPath, svc.Sim.Catalog); err != nil {
			logger.Log.Fatal("Manifest load error: ", err)
		}
	}

	svc.Start()

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// 3. Запуск сервера
	srv := server.New(svc, port)

	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.Fatal("Server start error: ", err)
		}
	}()

	<-stop
	logger.Log.Info("Shutting down...")
	svc.Stop()
	logger.Log.Info("Done.")
}

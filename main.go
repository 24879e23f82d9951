package main

import (
	"context"
	"net/http"

	"gogokodo/config"
	"gogokodo/config/database"
	"gogokodo/pkg/logger"
	"gogokodo/router"
	"gogokodo/store"
)

func main() {
	logger.Init()
	defer logger.Log.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Sugar.Fatalf("Invalid configuration: %v", err)
	}

	db := database.Connect(cfg)
	defer db.Close()

	kv := store.NewPostgres(db)
	if err := kv.EnsureSchema(context.Background()); err != nil {
		logger.Sugar.Fatalf("Failed to prepare key-value schema: %v", err)
	}

	handler := router.Setup(cfg, kv)

	logger.Sugar.Infof("GoGoKodo backend listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		logger.Sugar.Fatalf("Server stopped: %v", err)
	}
}

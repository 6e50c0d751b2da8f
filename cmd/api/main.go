package main

import (
	"log"

	"go.uber.org/zap"

	"resume-chat-backend/internal/bootstrap"
	"resume-chat-backend/internal/shared/config"
	"resume-chat-backend/internal/shared/server"
)

func main() {
	cfg := config.Load()

	app, err := bootstrap.Build(cfg)
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}
	defer app.Log.Sync()

	addr := server.Addr(cfg.Port)
	app.Log.Info("starting api server", zap.String("addr", addr), zap.String("env", cfg.Env))

	if err := app.Router.Run(addr); err != nil {
		app.Log.Fatal("server error", zap.Error(err))
	}
}

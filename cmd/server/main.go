// @title        wvt wallet vault API
// @version      1.0
// @description  HD wallet generation and encrypted export service
// @BasePath     /
package main

import (
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"

	"wvt/internal/api"
	"wvt/internal/config"
	"wvt/internal/crypto"
	"wvt/internal/logger"
)

func main() {
	if err := config.Init(); err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}
	cfg := config.Get()

	if err := logger.Init(cfg.LogPath, cfg.LogDebug); err != nil {
		os.Stderr.WriteString("failed to init logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	log := logger.L()

	// Refuse to start without a secure random source: every wallet
	// generation and every fresh salt/IV depends on it.
	source, err := crypto.RandomSourceName()
	if err != nil {
		log.Fatal("no secure random source available", zap.Error(err))
	}
	log.Info("random source selected", zap.String("provider", source))

	router, err := api.SetupRouter()
	if err != nil {
		log.Fatal("failed to set up router", zap.Error(err))
	}

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Info("server starting",
		zap.String("port", cfg.Port),
		zap.String("network", cfg.Network),
		zap.String("addressKind", cfg.AddressKind))

	if err := server.ListenAndServe(); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

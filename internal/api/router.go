package api

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "wvt/docs" // swagger spec registration
	"wvt/internal/handler"
)

// SetupRouter sets up router with handlers
func SetupRouter() (http.Handler, error) {
	walletHandler := handler.NewWalletHandler()
	secretHandler := handler.NewSecretHandler()

	mux := http.NewServeMux()

	// Swagger UI
	mux.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	// Wallet endpoints
	mux.HandleFunc("/wallet/generate", walletHandler.Generate)
	mux.HandleFunc("/wallet/restore", walletHandler.Restore)
	mux.HandleFunc("/wallet/export", walletHandler.Export)
	mux.HandleFunc("/wallet/import", walletHandler.Import)
	mux.HandleFunc("/wallet/inspect", walletHandler.Inspect)

	// Text secret endpoints
	mux.HandleFunc("/secret/encrypt", secretHandler.Encrypt)
	mux.HandleFunc("/secret/decrypt", secretHandler.Decrypt)

	return RecoveryMiddleware(LoggingMiddleware(mux)), nil
}

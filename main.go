package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"go.uber.org/zap"

	"shopbot/document"
	"shopbot/logic"
	"shopbot/session"
	"shopbot/suggest"
)

const Domain = "shopbot"

var logger *zap.Logger

func main() {
	var err error
	logger, err = zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	catalog := logic.DefaultCatalog()
	if path := os.Getenv("CATALOG_PATH"); path != "" {
		catalog, err = logic.LoadCatalog(path)
		if err != nil {
			logger.Fatal("failed to load catalog", zap.String("path", path), zap.Error(err))
		}
		logger.Info("catalog loaded", zap.String("path", path), zap.Int("products", len(catalog.All())))
	}

	var suggester logic.Suggester
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		gemini, err := suggest.NewGemini(context.Background(), key, os.Getenv("GEMINI_MODEL"))
		if err != nil {
			logger.Fatal("failed to create gemini client", zap.Error(err))
		}
		defer gemini.Close()
		suggester = gemini
		logger.Info("gemini suggester enabled")
	}

	store, err := session.NewStore()
	if err != nil {
		logger.Fatal("failed to create session store", zap.Error(err))
	}

	srv := newServer(
		logic.NewShopLogic(catalog, document.NewPDFRenderer(), suggester),
		catalog,
		store,
	)

	logger.Info("shop assistant started", zap.String("domain", Domain), zap.String("port", port))

	if err := http.ListenAndServe(fmt.Sprintf(":%s", port), srv.router()); err != nil {
		logger.Fatal("failed to serve", zap.Error(err))
	}
}
